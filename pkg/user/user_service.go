package user

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/pkg/jwt"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		ListUsers(ctx context.Context) ([]domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		hashCost       int
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		hashCost:       bcrypt.DefaultCost,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return domain.AuthResponse{}, domain.ErrMissingCredentials
	}
	if req.Role != domain.RoleGiver && req.Role != domain.RoleTaker {
		return domain.AuthResponse{}, domain.ErrInvalidRole
	}

	exists, err := s.userRepository.CheckUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	return s.session(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return domain.AuthResponse{}, domain.ErrMissingCredentials
	}

	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.AuthResponse{}, domain.ErrWrongPassword
		}
		return domain.AuthResponse{}, err
	}

	return s.session(user)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, domain.UserResponse{
			ID:    u.ID.String(),
			Email: u.Email,
			Role:  u.Role,
		})
	}
	return res, nil
}

func (s *userService) session(user *entities.User) (domain.AuthResponse, error) {
	sessionUser := domain.SessionUser{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
	token, err := s.jwtService.GenerateSessionToken(sessionUser)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{User: sessionUser, Token: token}, nil
}

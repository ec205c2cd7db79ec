package jwt

import (
	"Food-Sharing-Platform/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionTTL matches the lifetime of the session cookie.
const SessionTTL = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateSessionToken(user domain.SessionUser) (string, error)
		ParseSessionToken(token string) (domain.SessionUser, error)
	}

	jwtSessionClaim struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "YEMEK-PLATFORMU",
		ttl:       SessionTTL,
		now:       time.Now,
	}
}

func (j *jwtService) GenerateSessionToken(user domain.SessionUser) (string, error) {
	now := j.now()
	claims := jwtSessionClaim{
		user.ID,
		user.Email,
		user.Role,
		jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ParseSessionToken(token string) (domain.SessionUser, error) {
	t_Token, err := jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.SessionUser{}, domain.ErrTokenExpired
		}
		return domain.SessionUser{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.SessionUser{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtSessionClaim)
	if claims.Email == "" {
		return domain.SessionUser{}, domain.ErrTokenInvalid
	}

	return domain.SessionUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

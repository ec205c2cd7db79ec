package domain

import (
	"fmt"
)

var (
	MessageSuccessRegister = "registration successful"
	MessageSuccessLogin    = "login successful"
	MessageSuccessLogout   = "logout successful"
	MessageSuccessGetUsers = "users retrieved successfully"
	MessageSuccessGetMe    = "session retrieved successfully"

	MessageFailedRegister = "failed to register"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetUsers = "failed to retrieve users"

	ErrMissingCredentials = fmt.Errorf("%w: email, password and role are required", ErrInvalidInput)
	ErrInvalidRole        = fmt.Errorf("%w: role must be %s or %s", ErrInvalidInput, RoleGiver, RoleTaker)
	ErrUserAlreadyExists  = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrWrongPassword      = fmt.Errorf("%w: wrong password", ErrUnauthorized)
)

// Login and register redirect error indicators.
const (
	LoginErrorWrongPassword = "wrong_password"
	LoginErrorUserNotFound  = "user_not_found"
	LoginErrorMissingInfo   = "missing_info"
	LoginErrorUserExists    = "user_exists"
)

type (
	RegisterRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required"`
		Role     string `json:"role" form:"role" validate:"required,oneof=yemek_veren yemek_alan"`
	}

	LoginRequest struct {
		Email    string `json:"email" form:"email" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	AuthResponse struct {
		User  SessionUser `json:"user"`
		Token string      `json:"token"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
)

// LandingPage is where a user of the given role goes after signing in.
func LandingPage(role string) string {
	if role == RoleTaker {
		return "/yemek_alanlar.html"
	}
	return "/yemek_verenler"
}

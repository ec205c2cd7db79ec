package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/internal/middleware"
	"Food-Sharing-Platform/internal/utils/metrics"
	"Food-Sharing-Platform/pkg/jwt"
	"Food-Sharing-Platform/pkg/user"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		ListUsers(c *fiber.Ctx) error
	}

	SessionCookie struct {
		Name   string
		Secure bool
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		cookie      SessionCookie
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, cookie SessionCookie) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
		cookie:      cookie,
	}
}

func loginPageError(indicator string) string {
	return "/Ana_Sayfa.html?error=" + indicator
}

// authFailure redirects interactive callers back to the landing page with an indicator.
func authFailure(c *fiber.Ctx, message string, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.FailureResponse(c, message, err)
	}

	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return c.Redirect(loginPageError(domain.LoginErrorUserExists))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Redirect(loginPageError(domain.LoginErrorUserNotFound))
	case errors.Is(err, domain.ErrWrongPassword):
		return c.Redirect(loginPageError(domain.LoginErrorWrongPassword))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Redirect(loginPageError(domain.LoginErrorMissingInfo))
	default:
		return replyText(c, err, message)
	}
}

func (h *userHandler) setSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(jwt.SessionTTL),
		MaxAge:   int(jwt.SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *userHandler) authenticated(c *fiber.Ctx, res domain.AuthResponse, code int, message string) error {
	h.setSession(c, res.Token)
	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, code, message)
	}
	return c.Redirect(domain.LandingPage(res.User.Role))
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return authFailure(c, domain.MessageFailedBodyRequest, invalid(err))
	}

	if err := h.validator.Struct(req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return authFailure(c, domain.MessageFailedRegister, invalid(err))
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return authFailure(c, domain.MessageFailedRegister, err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return h.authenticated(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return authFailure(c, domain.MessageFailedBodyRequest, invalid(err))
	}

	if err := h.validator.Struct(req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return authFailure(c, domain.MessageFailedLogin, invalid(err))
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return authFailure(c, domain.MessageFailedLogin, err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return h.authenticated(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Logout works with or without a session.
func (h *userHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(h.cookie.Name)
	middleware.SetNoCache(c)

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
	}
	return c.Redirect("/")
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	current, _ := middleware.CurrentUser(c)
	return presenters.SuccessResponse(c, current, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *userHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, users, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

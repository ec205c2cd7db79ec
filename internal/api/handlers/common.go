package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/internal/middleware"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// invalid marks a parse or validation failure as bad input.
func invalid(err error) error {
	return errors.Join(domain.ErrInvalidInput, err)
}

// replyText answers an interactive caller with a plain message. Input problems become
// "Eksik bilgi" and server side failures "DB error"; other errors use text.
func replyText(c *fiber.Ctx, err error, text string) error {
	code := presenters.StatusCode(err)
	switch {
	case code >= fiber.StatusInternalServerError:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return presenters.TextResponse(c, code, domain.MessageDBError)
	case errors.Is(err, domain.ErrInvalidInput):
		return presenters.TextResponse(c, code, domain.MessageMissingInfo)
	default:
		return presenters.TextResponse(c, code, text)
	}
}

func sessionEmail(c *fiber.Ctx) string {
	user, _ := middleware.CurrentUser(c)
	return user.Email
}

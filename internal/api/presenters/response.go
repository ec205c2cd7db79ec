package presenters

import (
	"Food-Sharing-Platform/domain"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the JSON error envelope. Details of server side failures are
// logged and replaced by the generic message.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		if code >= fiber.StatusInternalServerError {
			log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
			res.Error = domain.MessageDBError
		} else {
			res.Error = err.Error()
		}
	}
	return c.Status(code).JSON(res)
}

// FailureResponse derives the status code from err.
func FailureResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusCode(err), message, err)
}

// TextResponse answers interactive callers that expect a plain message.
func TextResponse(c *fiber.Ctx, code int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

func StatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// WantsJSON reports whether the caller is programmatic: an XHR request or one whose
// Accept header asks for JSON.
func WantsJSON(c *fiber.Ctx) bool {
	if c.XHR() {
		return true
	}
	return strings.Contains(strings.ToLower(c.Get(fiber.HeaderAccept)), "json")
}

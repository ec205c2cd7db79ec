package presenters

import (
	"Food-Sharing-Platform/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{domain.ErrMissingFoodFields, fiber.StatusBadRequest},
		{domain.ErrWrongPassword, fiber.StatusUnauthorized},
		{domain.ErrFoodNotFound, fiber.StatusNotFound},
		{domain.ErrUserAlreadyExists, fiber.StatusConflict},
		{domain.StoreFailure(errors.New("disk full")), fiber.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", domain.ErrLocationNotFound), fiber.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), "%v", tc.err)
	}
}

func TestWantsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprint(WantsJSON(c)))
	})

	check := func(header, value string) string {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	assert.Equal(t, "false", check("", ""))
	assert.Equal(t, "false", check("Accept", "text/html"))
	assert.Equal(t, "true", check("Accept", "application/json"))
	assert.Equal(t, "true", check("X-Requested-With", "XMLHttpRequest"))
}

func TestErrorResponse_HidesStoreDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FailureResponse(c, "failed", domain.StoreFailure(errors.New("secret table name")))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, domain.MessageDBError, body.Error)
}

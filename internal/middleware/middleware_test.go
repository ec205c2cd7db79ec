package middleware

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/pkg/jwt"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, jwt.JWTService) {
	jwtService := jwt.NewJWTService("test-secret")
	m := NewMiddleware("yemek_session")

	app := fiber.New()
	app.Get("/private", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		user, _ := CurrentUser(c)
		return c.SendString(user.Email)
	})
	app.Get("/public", m.OptionalAuth(jwtService), func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.SendString("guest")
		}
		return c.SendString(user.Email)
	})
	return app, jwtService
}

func TestAuthMiddleware_JSONCallerGets401(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Auth required", body["error"])
}

func TestAuthMiddleware_BrowserGetsInterstitial(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/Ana_Sayfa.html")
}

func TestAuthMiddleware_AcceptsCookieAndBearer(t *testing.T) {
	app, jwtService := newTestApp()
	token, err := jwtService.GenerateSessionToken(domain.SessionUser{ID: "1", Email: "a@x.com", Role: domain.RoleGiver})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: "yemek_session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", string(body))

	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RejectsTamperedToken(t *testing.T) {
	app, _ := newTestApp()
	token, err := jwt.NewJWTService("other").GenerateSessionToken(domain.SessionUser{Email: "a@x.com"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuth(t *testing.T) {
	app, jwtService := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/public", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "guest", string(body))

	token, err := jwtService.GenerateSessionToken(domain.SessionUser{Email: "b@x.com"})
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/public", nil)
	req.AddCookie(&http.Cookie{Name: "yemek_session", Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "b@x.com", string(body))
}

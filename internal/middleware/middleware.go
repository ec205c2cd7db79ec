package middleware

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const sessionUserKey = "session_user"

const loginRequiredPage = `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="UTF-8">
<meta http-equiv="refresh" content="3;url=/Ana_Sayfa.html">
<title>Giriş Gerekli</title>
</head>
<body>
<h1>Erişim Reddedildi</h1>
<p>Bu sayfayı görüntülemek için lütfen giriş yapınız.</p>
<p>3 saniye içinde ana sayfaya yönlendiriliyorsunuz...</p>
<a href="/Ana_Sayfa.html">Hemen Git</a>
</body>
</html>`

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuth(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		cookieName string
	}
)

func NewMiddleware(cookieName string) Middleware {
	return &middleware{cookieName: cookieName}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	})
}

// AuthMiddleware rejects requests without a valid session. Protected responses are
// never cached.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		SetNoCache(c)

		user, err := m.sessionUser(c, jwtService)
		if err != nil {
			if presenters.WantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": domain.MessageAuthRequired})
			}
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusUnauthorized).SendString(loginRequiredPage)
		}

		setSessionUser(c, user)
		return c.Next()
	}
}

func (m *middleware) OptionalAuth(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := m.sessionUser(c, jwtService); err == nil {
			setSessionUser(c, user)
		}
		return c.Next()
	}
}

func (m *middleware) sessionUser(c *fiber.Ctx, jwtService jwt.JWTService) (domain.SessionUser, error) {
	token := c.Cookies(m.cookieName)
	if token == "" {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if token == "" {
		return domain.SessionUser{}, domain.ErrTokenInvalid
	}
	return jwtService.ParseSessionToken(token)
}

func setSessionUser(c *fiber.Ctx, user domain.SessionUser) {
	c.Locals(sessionUserKey, user)
	c.Locals("user_id", user.ID)
	c.Locals("email", user.Email)
	c.Locals("role", user.Role)
}

// CurrentUser returns the session user attached by AuthMiddleware or OptionalAuth.
func CurrentUser(c *fiber.Ctx) (domain.SessionUser, bool) {
	user, ok := c.Locals(sessionUserKey).(domain.SessionUser)
	return user, ok
}

func SetNoCache(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, private")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
}

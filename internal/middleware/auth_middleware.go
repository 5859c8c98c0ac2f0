package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/amassarte/pizzeria-backend/internal/service"
)

// AuthCookieName is the cookie carrying the signed admin session token.
const AuthCookieName = "admin_token"

// RequireAdmin guards admin routes. The token is read from the auth cookie,
// the Authorization header, or a token query parameter (EventSource cannot
// set headers).
func RequireAdmin(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No autenticado",
			})
		}

		sessionID, err := auth.ValidateToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sesión inválida o expirada",
			})
		}

		c.Locals("session_id", sessionID)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(AuthCookieName); cookie != "" {
		return cookie
	}

	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return c.Query("token")
}

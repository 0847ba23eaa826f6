package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/utils"
)

// RequireAuth guards admin routes with a bearer token check.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("Missing Authorization header")
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.NewUnauthorized("Invalid Authorization format")
		}

		claims, err := utils.VerifyToken(parts[1], secret)
		if err != nil {
			return apperrors.NewUnauthorized("Invalid or expired token")
		}

		c.Locals("subject", claims.Subject)
		return c.Next()
	}
}

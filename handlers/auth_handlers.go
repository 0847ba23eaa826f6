package handlers

import (
	"crypto/subtle"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/utils"
)

// LoginRequest defines the expected body for the admin login endpoint.
type LoginRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

// Login handles POST /api/v1/login. A correct admin password yields a bearer
// token for the guarded dashboard routes.
func (h *ApplicationHandler) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return apperrors.NewValidation(fmt.Sprintf("Cannot parse login body: %v", err))
	}

	if err := validate.Struct(payload); err != nil {
		return apperrors.NewValidation("Password is required")
	}

	if subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.Config.AdminPassword)) != 1 {
		h.Logger.Warn("Login attempt with invalid password")
		return apperrors.NewUnauthorized("Invalid password")
	}

	token, err := utils.GenerateToken([]byte(h.Config.JWTSecret), h.Config.JWTExpiry)
	if err != nil {
		return apperrors.NewStore("Could not issue token", err)
	}

	h.Logger.Info("Admin logged in")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged in successfully",
		"token":   token,
	})
}

package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithJSON sends a success envelope with an entity under the given key
// (e.g. "project", "messages", "data").
func RespondWithJSON(c *fiber.Ctx, statusCode int, message string, key string, payload interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if key != "" {
		body[key] = payload
	}
	return c.Status(statusCode).JSON(body)
}

// FormatValidationErrors flattens validator/v10 errors into a single
// user-facing message.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	var fields []string
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}
	return fmt.Sprintf("Please provide all details! Missing or invalid: %s", strings.Join(fields, ", "))
}

// SanitizeInput trims surrounding whitespace from form values.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}

package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status code alongside a user-facing message.
// Handlers return these; the fiber ErrorHandler in main.go translates them
// into the response envelope.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation reports missing or malformed client input.
func NewValidation(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

// NewNotFound reports an id that does not resolve to a record.
func NewNotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

// NewUnauthorized reports a missing or invalid credential.
func NewUnauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

// NewAsset reports a failure from the external asset store.
func NewAsset(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}

// NewStore reports a failure from the document store.
func NewStore(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}

// ErrorHandler is the single error-to-response translator installed on the
// fiber app. Every failure surfaces here as {success:false, message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *AppError
	var fiberErr *fiber.Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

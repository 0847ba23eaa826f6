package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/internal/store"
	"portfolio/admin-backend/utils"
)

// SendMessageRequest defines the expected body for the public contact form.
type SendMessageRequest struct {
	SenderName string `json:"sender_name" form:"sender_name" validate:"required"`
	Subject    string `json:"subject" form:"subject" validate:"required"`
	Message    string `json:"message" form:"message" validate:"required"`
}

// SendMessage handles POST /api/v1/message/send.
func (h *ApplicationHandler) SendMessage(c *fiber.Ctx) error {
	h.Logger.Info("Received request to send a message")

	payload := new(SendMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return apperrors.NewValidation(fmt.Sprintf("Cannot parse message body: %v", err))
	}

	payload.SenderName = utils.SanitizeInput(payload.SenderName)
	payload.Subject = utils.SanitizeInput(payload.Subject)
	payload.Message = utils.SanitizeInput(payload.Message)

	if err := validate.Struct(payload); err != nil {
		return apperrors.NewValidation("Please fill the full form!")
	}

	doc := map[string]interface{}{
		"sender_name": payload.SenderName,
		"subject":     payload.Subject,
		"message":     payload.Message,
		"created_at":  time.Now(),
	}

	created, err := h.Messages.Create(c.Context(), doc)
	if err != nil {
		return apperrors.NewStore("Could not send message", err)
	}

	h.Logger.Infof("Message %s stored from sender %s", created.ID, created.SenderName)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
		"data":    created,
	})
}

// GetAllMessages handles GET /api/v1/message/getall.
func (h *ApplicationHandler) GetAllMessages(c *fiber.Ctx) error {
	messages, err := h.Messages.FindAll(c.Context())
	if err != nil {
		return apperrors.NewStore("Could not retrieve messages", err)
	}

	h.Logger.Infof("Successfully fetched %d messages", len(messages))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

// DeleteMessage handles DELETE /api/v1/message/delete/:id.
func (h *ApplicationHandler) DeleteMessage(c *fiber.Ctx) error {
	messageID := c.Params("id")
	h.Logger.Infof("Received request to delete message %s", messageID)

	if _, err := h.Messages.FindByID(c.Context(), messageID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return apperrors.NewNotFound("Message already deleted or not found!")
		}
		return apperrors.NewStore("Could not fetch message", err)
	}

	if err := h.Messages.DeleteByID(c.Context(), messageID); err != nil {
		return apperrors.NewStore("Could not delete message", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Message deleted successfully",
	})
}

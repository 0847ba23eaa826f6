package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a contact-form message sent through the public site.
type Message struct {
	ID         uuid.UUID `json:"id,omitempty"`
	SenderName string    `json:"sender_name"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

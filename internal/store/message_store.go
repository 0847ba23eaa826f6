package store

import (
	"context"
	"encoding/json"
	"fmt"

	supa "github.com/supabase-community/supabase-go"

	"portfolio/admin-backend/models"
)

const messagesTable = "messages"

// MessageStore is the typed record-store client for contact messages.
type MessageStore struct {
	db *supa.Client
}

func NewMessageStore(db *supa.Client) *MessageStore {
	return &MessageStore{db: db}
}

// Create inserts a new message and returns the stored representation.
func (s *MessageStore) Create(ctx context.Context, doc map[string]interface{}) (*models.Message, error) {
	body, _, err := s.db.From(messagesTable).
		Insert(doc, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}

	var results []models.Message
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding inserted message: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("insert returned no message representation")
	}
	return &results[0], nil
}

// FindByID fetches a single message, returning ErrRecordNotFound if the id
// does not resolve.
func (s *MessageStore) FindByID(ctx context.Context, id string) (*models.Message, error) {
	body, _, err := s.db.From(messagesTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching message %s: %w", id, err)
	}

	var results []models.Message
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding message %s: %w", id, err)
	}
	if len(results) == 0 {
		return nil, ErrRecordNotFound
	}
	return &results[0], nil
}

// FindAll returns every message record.
func (s *MessageStore) FindAll(ctx context.Context) ([]models.Message, error) {
	body, _, err := s.db.From(messagesTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}

	var results []models.Message
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding messages: %w", err)
	}
	return results, nil
}

// DeleteByID removes a message record.
func (s *MessageStore) DeleteByID(ctx context.Context, id string) error {
	_, _, err := s.db.From(messagesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("deleting message %s: %w", id, err)
	}
	return nil
}

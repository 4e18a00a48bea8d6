package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// MessageRepository handles data API operations for conversation messages
type MessageRepository struct {
	db *postgrest.Client
}

// NewMessageRepository creates a message repository over a scoped session
func NewMessageRepository(sess *supabase.Session) *MessageRepository {
	return &MessageRepository{db: sess.DB()}
}

// ListByConversation lists messages newest first. A non-empty cursor is
// an exclusive upper bound on created_at, so the next page starts
// strictly before the last seen row.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string, limit int, cursor string) ([]models.Message, error) {
	query := r.db.From("messages").
		Select("*", "", false).
		Eq("conversation_id", conversationID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "")
	if cursor != "" {
		query = query.Lt("created_at", cursor)
	}

	data, _, err := query.ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := []models.Message{}
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// Insert appends a message and returns the stored row
func (r *MessageRepository) Insert(ctx context.Context, conversationID, senderID, content, msgType string) (*models.Message, error) {
	row := map[string]any{
		"conversation_id": conversationID,
		"sender_id":       senderID,
		"content":         content,
		"type":            msgType,
	}

	data, _, err := r.db.From("messages").
		Insert(row, false, "", "representation", "").
		Single().
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	var message models.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	return &message, nil
}

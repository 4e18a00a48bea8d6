package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// NotificationRepository handles data API operations for notifications
type NotificationRepository struct {
	db *postgrest.Client
}

// NewNotificationRepository creates a notification repository over a scoped session
func NewNotificationRepository(sess *supabase.Session) *NotificationRepository {
	return &NotificationRepository{db: sess.DB()}
}

// ListForUser lists the user's notifications newest first, optionally
// narrowed to unread (read_at is null) only.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	query := ownedBy(r.db.From("notifications").Select("*", "", false), userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if unreadOnly {
		query = query.Is("read_at", "null")
	}

	data, _, err := query.ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := []models.Notification{}
	if err := json.Unmarshal(data, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// SetRead stamps or clears read_at on the given ids, restricted to rows
// the principal owns. Ids outside the caller's ownership update zero
// rows; that is still reported as success.
func (r *NotificationRepository) SetRead(ctx context.Context, userID string, ids []string, read bool) error {
	patch := map[string]any{"read_at": nil}
	if read {
		patch["read_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	_, _, err := ownedBy(
		r.db.From("notifications").Update(patch, "minimal", "").In("id", ids),
		userID,
	).ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update notifications: %w", err)
	}
	return nil
}

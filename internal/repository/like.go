package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// likeConflictKey is the declared uniqueness constraint for likes:
// re-issuing a like for the same pair overwrites the kind.
const likeConflictKey = "liker_id,target_id"

// LikeRepository handles data API operations for like edges
type LikeRepository struct {
	db *postgrest.Client
}

// NewLikeRepository creates a like repository over a scoped session
func NewLikeRepository(sess *supabase.Session) *LikeRepository {
	return &LikeRepository{db: sess.DB()}
}

// Upsert inserts or overwrites the like edge keyed by (liker, target)
func (r *LikeRepository) Upsert(ctx context.Context, like *models.Like) error {
	_, _, err := r.db.From("likes").
		Upsert(like, likeConflictKey, "minimal", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert like: %w", err)
	}
	return nil
}

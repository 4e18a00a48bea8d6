package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// MatchRepository handles data API operations for matches.
// Matches are read-only from this service's point of view.
type MatchRepository struct {
	db *postgrest.Client
}

// NewMatchRepository creates a match repository over a scoped session
func NewMatchRepository(sess *supabase.Session) *MatchRepository {
	return &MatchRepository{db: sess.DB()}
}

// ExistsBetween reports whether a match row exists for the pair,
// regardless of which side the row stores as user_a.
func (r *MatchRepository) ExistsBetween(ctx context.Context, a, b string) (bool, error) {
	pairFilter := fmt.Sprintf(
		"and(user_a.eq.%s,user_b.eq.%s),and(user_a.eq.%s,user_b.eq.%s)",
		a, b, b, a,
	)

	data, _, err := r.db.From("matches").
		Select("id", "", false).
		Or(pairFilter, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check match: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, fmt.Errorf("failed to decode match check: %w", err)
	}
	return len(rows) > 0, nil
}

// ListForUser lists matches where the user is either participant,
// newest activity first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID string) ([]models.Match, error) {
	sideFilter := fmt.Sprintf("user_a.eq.%s,user_b.eq.%s", userID, userID)

	data, _, err := r.db.From("matches").
		Select("*", "", false).
		Or(sideFilter, "").
		Order("last_activity_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := []models.Match{}
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}
	return matches, nil
}

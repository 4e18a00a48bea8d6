package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// ProfileRepository handles data API operations for profiles
type ProfileRepository struct {
	db *postgrest.Client
}

// NewProfileRepository creates a profile repository over a scoped session
func NewProfileRepository(sess *supabase.Session) *ProfileRepository {
	return &ProfileRepository{db: sess.DB()}
}

// GetByID retrieves a single profile by user id
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	data, _, err := r.db.From("profiles").
		Select("*", "", false).
		Eq("id", id).
		Single().
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// Update partially updates the profile owned by id and returns the
// updated row. Profiles are keyed by the principal id itself, so the
// ownership filter is the primary-key equality.
func (r *ProfileRepository) Update(ctx context.Context, id string, patch map[string]any) (*models.Profile, error) {
	data, _, err := r.db.From("profiles").
		Update(patch, "representation", "").
		Eq("id", id).
		Single().
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// Feed lists up to limit profiles excluding the caller's own.
// Preference-based filtering is a known placeholder upstream.
func (r *ProfileRepository) Feed(ctx context.Context, excludeID string, limit int) ([]models.Profile, error) {
	data, _, err := r.db.From("profiles").
		Select("*", "", false).
		Neq("id", excludeID).
		Limit(limit, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed profiles: %w", err)
	}

	profiles := []models.Profile{}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode feed profiles: %w", err)
	}
	return profiles, nil
}

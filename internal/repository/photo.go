package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"

	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

// PhotoRepository handles data API and object storage operations for photos
type PhotoRepository struct {
	db      *postgrest.Client
	storage *storage_go.Client
	bucket  string
}

// NewPhotoRepository creates a photo repository over a scoped session
func NewPhotoRepository(sess *supabase.Session) *PhotoRepository {
	return &PhotoRepository{
		db:      sess.DB(),
		storage: sess.Storage(),
		bucket:  sess.Bucket(),
	}
}

// ListForUser lists the user's photos ordered by position
func (r *PhotoRepository) ListForUser(ctx context.Context, userID string) ([]models.Photo, error) {
	data, _, err := ownedBy(r.db.From("photos").Select("*", "", false), userID).
		Order("position", &postgrest.OrderOpts{Ascending: true}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	photos := []models.Photo{}
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}

// GetOwnedStoragePath resolves the storage path of a photo, but only if
// the row belongs to the principal. A miss is indistinguishable from a
// foreign row on purpose.
func (r *PhotoRepository) GetOwnedStoragePath(ctx context.Context, userID, photoID string) (string, error) {
	data, _, err := ownedBy(
		r.db.From("photos").Select("storage_path", "", false).Eq("id", photoID),
		userID,
	).Single().ExecuteWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("photo not found: %w", err)
	}

	var row struct {
		StoragePath string `json:"storage_path"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return "", fmt.Errorf("failed to decode photo: %w", err)
	}
	return row.StoragePath, nil
}

// Delete removes the photo row, restricted to rows the principal owns
func (r *PhotoRepository) Delete(ctx context.Context, userID, photoID string) error {
	_, _, err := ownedBy(
		r.db.From("photos").Delete("minimal", "").Eq("id", photoID),
		userID,
	).ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// CreateSignedUpload creates a one-time signed upload destination for path
func (r *PhotoRepository) CreateSignedUpload(path string) (*models.SignedUpload, error) {
	resp, err := r.storage.CreateSignedUploadUrl(r.bucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create signed upload url: %w", err)
	}
	return &models.SignedUpload{URL: resp.Url, Path: path}, nil
}

// RemoveObject deletes the backing object for a photo
func (r *PhotoRepository) RemoveObject(path string) error {
	if _, err := r.storage.RemoveFile(r.bucket, []string{path}); err != nil {
		return fmt.Errorf("failed to remove storage object: %w", err)
	}
	return nil
}

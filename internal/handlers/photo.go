package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// PhotoHandler handles the photo routes
type PhotoHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(client *supabase.Client) *PhotoHandler {
	return &PhotoHandler{
		client:   client,
		validate: validate.New(),
	}
}

// UploadPhotoRequest is the body for POST /api/v1/photos
type UploadPhotoRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

// List handles GET /api/v1/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	photos := repository.NewPhotoRepository(sess)
	list, err := photos.ListForUser(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to list photos")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "photos_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// Upload handles POST /api/v1/photos. The upload destination is
// namespaced by the caller id and a fresh random identifier, so a
// caller can never sign a path outside its own prefix.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	var req UploadPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	path := principal.ID + "/" + uuid.New().String()

	photos := repository.NewPhotoRepository(sess)
	signed, err := photos.CreateSignedUpload(path)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to create signed upload URL")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "signed_url_failed", http.StatusInternalServerError))
		return
	}

	log.Info().Str("user_id", principal.ID).Str("path", path).Msg("Signed upload URL created")

	respondJSON(w, http.StatusOK, signed)
}

// Delete handles DELETE /api/v1/photos?id=... It resolves the
// caller-owned row first, removes the backing object, then deletes the
// record. A row the caller does not own reads as not found.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	photoID := r.URL.Query().Get("id")
	if photoID == "" {
		httperr.Write(w, httperr.InvalidRequest("missing id"))
		return
	}

	photos := repository.NewPhotoRepository(sess)
	storagePath, err := photos.GetOwnedStoragePath(ctx, principal.ID, photoID)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("photo_id", photoID).Msg("Failed to resolve photo")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "photo_not_found", http.StatusBadRequest))
		return
	}

	if err := photos.RemoveObject(storagePath); err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("photo_id", photoID).Msg("Failed to remove storage object")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "photo_delete_failed", http.StatusInternalServerError))
		return
	}

	if err := photos.Delete(ctx, principal.ID, photoID); err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("photo_id", photoID).Msg("Failed to delete photo record")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "photo_delete_failed", http.StatusInternalServerError))
		return
	}

	log.Info().Str("user_id", principal.ID).Str("photo_id", photoID).Msg("Photo deleted")

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// ProfileHandler handles the caller's own profile routes
type ProfileHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(client *supabase.Client) *ProfileHandler {
	return &ProfileHandler{
		client:   client,
		validate: validate.New(),
	}
}

// UpdateProfileRequest is the body for PATCH /api/v1/profile. All
// fields are optional; strict decoding rejects anything not listed.
type UpdateProfileRequest struct {
	Username    *string         `json:"username" validate:"omitempty,min=3,max=30"`
	DisplayName *string         `json:"display_name" validate:"omitempty,max=100"`
	Bio         *string         `json:"bio" validate:"omitempty,max=500"`
	Gender      *string         `json:"gender" validate:"omitempty,oneof=male female other"`
	Birthdate   *string         `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Location    *string         `json:"location"`
	Preferences json.RawMessage `json:"preferences"`
}

// changes collects the fields actually present into an update payload
func (r *UpdateProfileRequest) changes() map[string]any {
	patch := map[string]any{}
	if r.Username != nil {
		patch["username"] = *r.Username
	}
	if r.DisplayName != nil {
		patch["display_name"] = *r.DisplayName
	}
	if r.Bio != nil {
		patch["bio"] = *r.Bio
	}
	if r.Gender != nil {
		patch["gender"] = *r.Gender
	}
	if r.Birthdate != nil {
		patch["birthdate"] = *r.Birthdate
	}
	if r.Location != nil {
		patch["location"] = *r.Location
	}
	if r.Preferences != nil {
		patch["preferences"] = r.Preferences
	}
	return patch
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	profiles := repository.NewProfileRepository(sess)
	profile, err := profiles.GetByID(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to fetch profile")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "profile_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Update handles PATCH /api/v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	patch := req.changes()
	if len(patch) == 0 {
		httperr.Write(w, httperr.InvalidRequest("no fields to update"))
		return
	}

	profiles := repository.NewProfileRepository(sess)
	profile, err := profiles.Update(ctx, principal.ID, patch)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to update profile")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "profile_update_failed", http.StatusBadRequest))
		return
	}

	log.Info().Str("user_id", principal.ID).Msg("Profile updated")

	respondJSON(w, http.StatusOK, profile)
}

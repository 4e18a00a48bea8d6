package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/models"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// LikeHandler handles the like/superlike/pass route
type LikeHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(client *supabase.Client) *LikeHandler {
	return &LikeHandler{
		client:   client,
		validate: validate.New(),
	}
}

// LikeRequest is the body for POST /api/v1/like
type LikeRequest struct {
	TargetID string `json:"targetId" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,oneof=like superlike pass"`
}

// LikeResponse reports whether a match exists for the pair
type LikeResponse struct {
	Matched bool `json:"matched"`
}

// Create handles POST /api/v1/like
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	var req LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	likes := repository.NewLikeRepository(sess)
	like := &models.Like{
		LikerID:  principal.ID,
		TargetID: req.TargetID,
		Type:     req.Type,
	}
	if err := likes.Upsert(ctx, like); err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("target_id", req.TargetID).Msg("Failed to upsert like")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "like_failed", http.StatusBadRequest))
		return
	}

	// Best-effort read after the write; match creation is owned by the
	// platform, not this service. A failed check reports no match.
	matches := repository.NewMatchRepository(sess)
	matched, err := matches.ExistsBetween(ctx, principal.ID, req.TargetID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", principal.ID).Str("target_id", req.TargetID).Msg("Match check failed after like")
		matched = false
	}

	log.Info().
		Str("user_id", principal.ID).
		Str("target_id", req.TargetID).
		Str("type", req.Type).
		Bool("matched", matched).
		Msg("Like recorded")

	respondJSON(w, http.StatusOK, LikeResponse{Matched: matched})
}

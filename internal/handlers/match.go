package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
)

// MatchHandler handles the match listing route
type MatchHandler struct {
	client *supabase.Client
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(client *supabase.Client) *MatchHandler {
	return &MatchHandler{client: client}
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	matches := repository.NewMatchRepository(sess)
	list, err := matches.ListForUser(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to list matches")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "matches_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, list)
}

package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
)

// feedLimit caps how many candidate profiles a single feed fetch returns
const feedLimit = 20

// FeedHandler handles the discovery feed route
type FeedHandler struct {
	client *supabase.Client
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(client *supabase.Client) *FeedHandler {
	return &FeedHandler{client: client}
}

// List handles GET /api/v1/feed
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	profiles := repository.NewProfileRepository(sess)
	feed, err := profiles.Feed(ctx, principal.ID, feedLimit)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to fetch feed")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "feed_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, feed)
}

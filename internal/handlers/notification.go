package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// NotificationHandler handles the notification routes
type NotificationHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(client *supabase.Client) *NotificationHandler {
	return &NotificationHandler{
		client:   client,
		validate: validate.New(),
	}
}

// MarkReadRequest is the body for PATCH /api/v1/notifications.
// Read is a pointer so an explicit false survives the required check.
type MarkReadRequest struct {
	Ids  []string `json:"ids" validate:"required,min=1,dive,uuid"`
	Read *bool    `json:"read" validate:"required"`
}

// List handles GET /api/v1/notifications. A present `unread` query flag
// means unread only; absence means all.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	unreadOnly := r.URL.Query().Has("unread")

	notifications := repository.NewNotificationRepository(sess)
	list, err := notifications.ListForUser(ctx, principal.ID, unreadOnly)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to list notifications")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "notifications_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// MarkRead handles PATCH /api/v1/notifications
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)

	var req MarkReadRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	notifications := repository.NewNotificationRepository(sess)
	if err := notifications.SetRead(ctx, principal.ID, req.Ids, *req.Read); err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Msg("Failed to update notifications")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "notifications_update_failed", http.StatusBadRequest))
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

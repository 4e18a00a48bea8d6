package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/repository"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// defaultMessagePageSize is the page size when the client sends no limit
const defaultMessagePageSize = 30

// MessageHandler handles the conversation message routes
type MessageHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(client *supabase.Client) *MessageHandler {
	return &MessageHandler{
		client:   client,
		validate: validate.New(),
	}
}

// SendMessageRequest is the body for POST /api/v1/conversations/{id}/messages
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	Type    string `json:"type" validate:"omitempty,oneof=text image system"`
}

// List handles GET /api/v1/conversations/{id}/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)
	conversationID := chi.URLParam(r, "id")

	limit := defaultMessagePageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			httperr.Write(w, httperr.InvalidRequest("limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	cursor := r.URL.Query().Get("cursor")

	messages := repository.NewMessageRepository(sess)
	list, err := messages.ListByConversation(ctx, conversationID, limit, cursor)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("conversation_id", conversationID).Msg("Failed to list messages")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "messages_fetch_failed", http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// Create handles POST /api/v1/conversations/{id}/messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := middleware.Principal(ctx)
	sess := middleware.Session(ctx)
	conversationID := chi.URLParam(r, "id")

	var req SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}
	if req.Type == "" {
		req.Type = "text"
	}

	messages := repository.NewMessageRepository(sess)
	message, err := messages.Insert(ctx, conversationID, principal.ID, req.Content, req.Type)
	if err != nil {
		log.Error().Err(err).Str("user_id", principal.ID).Str("conversation_id", conversationID).Msg("Failed to send message")
		httperr.Write(w, storeError(err, h.client.BaseURL(), "message_failed", http.StatusBadRequest))
		return
	}

	respondJSON(w, http.StatusOK, message)
}

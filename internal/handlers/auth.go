package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/supabase-community/gotrue-go/types"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/supabase"
	"dating-app-backend/internal/validate"
)

// AuthHandler handles the public authentication routes
type AuthHandler struct {
	client   *supabase.Client
	validate *validate.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *supabase.Client) *AuthHandler {
	return &AuthHandler{
		client:   client,
		validate: validate.New(),
	}
}

// LoginRequest is the body for POST /api/v1/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body for POST /api/v1/auth/signup
type SignupRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	resp, err := h.client.Auth().SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		if supabase.IsUnreachable(err) {
			log.Error().Err(err).Msg("Identity provider unreachable during login")
			httperr.Write(w, httperr.Unreachable(h.client.BaseURL()))
			return
		}
		httperr.Write(w, httperr.New(http.StatusBadRequest, "login_failed", err.Error()))
		return
	}

	log.Info().Str("user_id", resp.User.ID.String()).Msg("User logged in")

	respondJSON(w, http.StatusOK, map[string]any{
		"session": resp.Session,
		"user":    resp.User,
	})
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, httperr.InvalidRequest("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperr.Write(w, httperr.InvalidRequest(err.Error()))
		return
	}

	signup := types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
	}
	if req.DisplayName != nil {
		signup.Data = map[string]interface{}{"display_name": *req.DisplayName}
	}

	resp, err := h.client.Auth().Signup(signup)
	if err != nil {
		if supabase.IsUnreachable(err) {
			log.Error().Err(err).Msg("Identity provider unreachable during signup")
			httperr.Write(w, httperr.Unreachable(h.client.BaseURL()))
			return
		}
		httperr.Write(w, httperr.New(http.StatusBadRequest, "signup_failed", err.Error()))
		return
	}

	log.Info().Str("email", req.Email).Msg("User signed up")

	respondJSON(w, http.StatusOK, map[string]any{"user": resp})
}

// Package httperr defines the error envelope every route responds with.
// All failures, regardless of origin, are serialized as
// {"error":{"code":"...","message":"...","details":...}}.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is an API-level error carrying the HTTP status to respond with,
// a stable machine-readable code and a human-readable message.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status, code and message
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// InvalidRequest is a 400 for malformed or constraint-violating input
func InvalidRequest(message string) *Error {
	return New(http.StatusBadRequest, "invalid_request", message)
}

// Unauthorized is a 401 for a missing or invalid credential
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "unauthorized", message)
}

// Internal is a 500 for anything unanticipated
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "internal", message)
}

// Unreachable is the 503 reserved for transport-level failures reaching
// the platform. The configured base URL is included so an operator can
// tell a misconfiguration from an outage.
func Unreachable(baseURL string) *Error {
	return &Error{
		Status:  http.StatusServiceUnavailable,
		Code:    "supabase_unreachable",
		Message: "supabase is unreachable",
		Details: map[string]string{"url": baseURL},
	}
}

type envelope struct {
	Error body `json:"error"`
}

type body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Write serializes err to w. Errors that are not *Error are reported as
// an opaque 500 so internal details never leak to clients.
func Write(w http.ResponseWriter, err error) {
	apiErr := &Error{}
	if !errors.As(err, &apiErr) {
		apiErr = Internal("internal server error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(envelope{Error: body{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}})
}

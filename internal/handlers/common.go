package handlers

import (
	"encoding/json"
	"net/http"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/supabase"
)

// respondJSON writes v as a JSON response body
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON strictly decodes the request body into dst. Unknown fields
// are rejected so a partially-valid payload is never partially processed.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// storeError classifies a failed platform call: a transport-level
// failure becomes the 503 unreachable error (with the configured base
// URL for the operator), anything else keeps the route's own failure
// code and status with the upstream message attached.
func storeError(err error, baseURL string, code string, status int) *httperr.Error {
	if supabase.IsUnreachable(err) {
		return httperr.Unreachable(baseURL)
	}
	return httperr.New(status, code, err.Error())
}

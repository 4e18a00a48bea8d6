package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"dating-app-backend/internal/httperr"
	"dating-app-backend/internal/models"
	"dating-app-backend/internal/supabase"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	sessionKey   contextKey = "session"
)

// Auth is the session resolver gate for protected routes. It exchanges
// the bearer token with the identity provider for a verified principal
// and stores the principal plus a scoped data-access session on the
// request context. No external store call happens before this gate.
func Auth(client *supabase.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperr.Write(w, httperr.Unauthorized("Missing Authorization header"))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			user, err := client.Auth().WithToken(token).GetUser()
			if err != nil {
				if supabase.IsUnreachable(err) {
					log.Error().Err(err).Msg("Identity provider unreachable")
					httperr.Write(w, httperr.Unreachable(client.BaseURL()))
					return
				}
				httperr.Write(w, httperr.Unauthorized("Invalid token"))
				return
			}
			if user == nil {
				httperr.Write(w, httperr.Unauthorized("Invalid token"))
				return
			}

			principal := models.Principal{
				ID:    user.ID.String(),
				Email: user.Email,
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			ctx = context.WithValue(ctx, sessionKey, client.Session(token))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Principal extracts the authenticated identity from the context
func Principal(ctx context.Context) models.Principal {
	p, ok := ctx.Value(principalKey).(models.Principal)
	if !ok {
		return models.Principal{}
	}
	return p
}

// Session extracts the scoped data-access handle from the context
func Session(ctx context.Context) *supabase.Session {
	s, ok := ctx.Value(sessionKey).(*supabase.Session)
	if !ok {
		return nil
	}
	return s
}

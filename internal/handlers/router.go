package handlers

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"dating-app-backend/internal/config"
	"dating-app-backend/internal/middleware"
	"dating-app-backend/internal/supabase"
)

// NewRouter assembles the full API surface. Auth routes are public;
// everything else sits behind the session resolver.
func NewRouter(cfg *config.Config, client *supabase.Client) *chi.Mux {
	authHandler := NewAuthHandler(client)
	feedHandler := NewFeedHandler(client)
	likeHandler := NewLikeHandler(client)
	matchHandler := NewMatchHandler(client)
	notificationHandler := NewNotificationHandler(client)
	photoHandler := NewPhotoHandler(client)
	profileHandler := NewProfileHandler(client)
	messageHandler := NewMessageHandler(client)

	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/signup", authHandler.Signup)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(client))
			r.Get("/feed", feedHandler.List)
			r.Post("/like", likeHandler.Create)
			r.Get("/matches", matchHandler.List)
			r.Get("/notifications", notificationHandler.List)
			r.Patch("/notifications", notificationHandler.MarkRead)
			r.Get("/photos", photoHandler.List)
			r.Post("/photos", photoHandler.Upload)
			r.Delete("/photos", photoHandler.Delete)
			r.Get("/profile", profileHandler.Get)
			r.Patch("/profile", profileHandler.Update)
			r.Get("/conversations/{id}/messages", messageHandler.List)
			r.Post("/conversations/{id}/messages", messageHandler.Create)
		})
	})

	return r
}

// Package supabase builds the clients for the managed platform: the
// identity provider (GoTrue), the relational data API (PostgREST) and
// object storage. The data and storage clients are always scoped to a
// caller's bearer token so the platform can apply its own row-level
// authorization as a second line of defense.
package supabase

import (
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"

	"dating-app-backend/internal/config"
)

const (
	authPath    = "/auth/v1"
	restPath    = "/rest/v1"
	storagePath = "/storage/v1"
)

// Client is the process-wide factory, constructed once at startup.
// It holds the anonymous identity client and mints per-request sessions.
type Client struct {
	baseURL string
	anonKey string
	bucket  string
	auth    gotrue.Client
}

// New creates a Client from the platform configuration
func New(cfg config.SupabaseConfig) *Client {
	auth := gotrue.New("supabase", cfg.AnonKey).
		WithCustomGoTrueURL(cfg.URL + authPath)

	return &Client{
		baseURL: cfg.URL,
		anonKey: cfg.AnonKey,
		bucket:  cfg.StorageBucket,
		auth:    auth,
	}
}

// BaseURL returns the configured platform base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Auth returns the anonymous identity client. Callers needing an
// authenticated view should use WithToken on the returned client.
func (c *Client) Auth() gotrue.Client {
	return c.auth
}

// Session mints a scoped data-access handle bound to accessToken.
// A session is built per request and never reused across requests.
func (c *Client) Session(accessToken string) *Session {
	rest := postgrest.NewClient(c.baseURL+restPath, "public", map[string]string{
		"apikey": c.anonKey,
	}).SetAuthToken(accessToken)

	storage := storage_go.NewClient(c.baseURL+storagePath, accessToken, map[string]string{
		"apikey": c.anonKey,
	})

	return &Session{rest: rest, storage: storage, bucket: c.bucket}
}

// Session is a per-request handle over the data API and object storage,
// authorized as one specific caller.
type Session struct {
	rest    *postgrest.Client
	storage *storage_go.Client
	bucket  string
}

// DB returns the scoped PostgREST client
func (s *Session) DB() *postgrest.Client {
	return s.rest
}

// Storage returns the scoped object storage client
func (s *Session) Storage() *storage_go.Client {
	return s.storage
}

// Bucket returns the media bucket name
func (s *Session) Bucket() string {
	return s.bucket
}

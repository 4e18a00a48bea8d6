package models

import (
	"encoding/json"
	"time"
)

// Principal is the authenticated identity resolved for a request.
// It is never persisted by this service.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile represents a user's dating profile row
type Profile struct {
	ID          string          `json:"id"`
	Username    *string         `json:"username,omitempty"`
	DisplayName *string         `json:"display_name,omitempty"`
	Bio         *string         `json:"bio,omitempty"`
	Gender      *string         `json:"gender,omitempty"`
	Birthdate   *string         `json:"birthdate,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Like is a directed edge from one user to another.
// The (liker_id, target_id) pair is the upsert key.
type Like struct {
	LikerID  string `json:"liker_id"`
	TargetID string `json:"target_id"`
	Type     string `json:"type"`
}

// Match is an undirected pairing of two users. Matches are created by
// the platform when reciprocal likes exist; this service only reads them.
type Match struct {
	ID             string    `json:"id"`
	UserA          string    `json:"user_a"`
	UserB          string    `json:"user_b"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Message belongs to a conversation and is immutable once created
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
}

// Notification belongs to a user; a nil ReadAt means unread
type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	ReadAt    *time.Time      `json:"read_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// Photo is an ordered per-user media reference
type Photo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	StoragePath string    `json:"storage_path"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignedUpload is a one-time upload destination for a photo
type SignedUpload struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account identified by its API key.
// The key is issued once at registration and never shown again.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"-"` // Never serialize
	CreatedAt time.Time `json:"created_at"`
}

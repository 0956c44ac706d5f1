package domain

import "time"

// User is an auth collaborator record, not a core aggregate.
// Handlers must never serialize it directly; the hash would leak.
type User struct {
	ID           string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"password_hash"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

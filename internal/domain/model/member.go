package model

import (
	"time"
)

// Member is the single story record a user may submit about themselves.
type Member struct {
	ID           string    `json:"id"`
	UserID       *string   `json:"user_id"` // nil once the owning account is deleted
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FavoriteSong string    `json:"favorite_song"`
	Story        string    `json:"story"`
	CreatedAt    time.Time `json:"created_at"`
}

// MemberWithOwner is a Member joined with its owner's identity for the
// public listing. Owner fields are null for orphaned records.
type MemberWithOwner struct {
	Member
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

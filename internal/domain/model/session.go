package model

import (
	"time"
)

// Session is the server-side record behind an opaque cookie token. Username
// and role are snapshots taken at login; a role change only takes effect on
// the user's next login.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its fixed expiry. The
// TTL is not sliding: activity never extends it.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsAdmin reports whether the session was established by an admin.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

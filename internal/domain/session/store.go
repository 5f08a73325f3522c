// Package session owns the lifecycle of server-side login sessions. The
// middleware only reads them; creation happens at login and destruction at
// logout or expiry.
package session

import (
	"context"

	"swiftie_sanctuary/internal/domain/model"
)

type Store interface {
	// Create persists a new session under its opaque token.
	Create(ctx context.Context, s *model.Session) error

	// Get returns the live session for token, or common.ErrNotFound when the
	// token is unknown or the session has expired.
	Get(ctx context.Context, token string) (*model.Session, error)

	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired prunes expired sessions and returns how many were
	// removed. Backends whose entries expire on their own may return 0.
	DeleteExpired(ctx context.Context) (int64, error)
}

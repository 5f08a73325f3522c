package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
	"swiftie_sanctuary/internal/domain/session"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

type contextKey string

const (
	UserIDCtxKey   contextKey = "userID"
	UsernameCtxKey contextKey = "username"
	UserRoleCtxKey contextKey = "userRole"
)

// SessionMiddleware resolves the session cookie into request context. The
// guards below only read what the loader put there.
type SessionMiddleware struct {
	sessions session.Store
	logger   *slog.Logger
}

func NewSessionMiddleware(sessions session.Store, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, logger: logger}
}

// Loader looks up the session for the request's cookie, if any, and places
// the login-time identity snapshot into the context. It never rejects the
// request itself; public routes see an anonymous context.
func (m *SessionMiddleware) Loader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				m.logger.Error("session lookup failed", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDCtxKey, sess.UserID)
		ctx = context.WithValue(ctx, UsernameCtxKey, sess.Username)
		ctx = context.WithValue(ctx, UserRoleCtxKey, sess.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that carry no authenticated session.
func (m *SessionMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly rejects authenticated sessions whose role snapshot is not admin.
// The role was cached at login; a role change applies on the next login.
func (m *SessionMiddleware) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(UserRoleCtxKey).(string)
		if !ok || role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// Helper to get user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}

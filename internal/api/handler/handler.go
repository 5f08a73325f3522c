package handler

import (
	"log/slog"
	"net/http"

	"swiftie_sanctuary/internal/common"
)

// CookiePolicy controls how the session cookie is issued. Production runs
// cross-site (Secure + SameSite=None); development keeps Lax over plain HTTP.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int // seconds
}

// respondServiceError maps a service error onto the wire. Anything that maps
// to a 5xx is logged with full detail here and reaches the client only as a
// generic message.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" failed", "error", err)
	}
	common.RespondWithError(w, status, common.ClientMessage(err))
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"swiftie_sanctuary/internal/api/middleware"
	"swiftie_sanctuary/internal/app/service"
	"swiftie_sanctuary/internal/common"
)

// UserHandler is the admin surface over the credential store.
type UserHandler struct {
	userService *service.UserService
	sessions    *middleware.SessionMiddleware
	logger      *slog.Logger
}

func NewUserHandler(us *service.UserService, sessions *middleware.SessionMiddleware, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: us, sessions: sessions, logger: logger}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(admin chi.Router) {
		admin.Use(h.sessions.RequireAuth)
		admin.Use(h.sessions.AdminOnly)
		admin.Get("/", h.listUsers)             // GET /api/users
		admin.Delete("/{userID}", h.deleteUser) // DELETE /api/users/{id}
	})
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "listing users", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	userID := chi.URLParam(r, "userID")

	message, err := h.userService.Delete(r.Context(), userID, callerID)
	if err != nil {
		respondServiceError(w, h.logger, "deleting user", err)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, message)
}

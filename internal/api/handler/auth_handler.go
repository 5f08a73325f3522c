package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"swiftie_sanctuary/internal/api/middleware"
	"swiftie_sanctuary/internal/app/service"
	"swiftie_sanctuary/internal/common"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     CookiePolicy
	logger      *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, cookies CookiePolicy, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/auth/status", h.status)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, "registration", err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, sess, err := h.authService.Login(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, "login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   h.cookies.MaxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		h.logger.Error("logout failed", "error", err)
		common.RespondWithError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
	common.RespondWithMessage(w, http.StatusOK, "Logged out successfully")
}

type authStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}

// status is a pure read of the session context; it never fails.
func (h *AuthHandler) status(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithJSON(w, http.StatusOK, authStatusResponse{Authenticated: false})
		return
	}

	username, _ := middleware.GetUsernameFromContext(r.Context())
	role, _ := middleware.GetUserRoleFromContext(r.Context())
	common.RespondWithJSON(w, http.StatusOK, authStatusResponse{
		Authenticated: true,
		UserID:        userID,
		Username:      username,
		Role:          role,
	})
}

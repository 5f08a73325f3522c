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

type MemberHandler struct {
	memberService *service.MemberService
	sessions      *middleware.SessionMiddleware
	logger        *slog.Logger
}

func NewMemberHandler(ms *service.MemberService, sessions *middleware.SessionMiddleware, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{memberService: ms, sessions: sessions, logger: logger}
}

func (h *MemberHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listMembers) // GET /api/members

	r.Group(func(authed chi.Router) {
		authed.Use(h.sessions.RequireAuth)
		authed.Post("/", h.createMember) // POST /api/members
	})

	r.Group(func(admin chi.Router) {
		admin.Use(h.sessions.RequireAuth)
		admin.Use(h.sessions.AdminOnly)
		admin.Put("/{memberID}", h.updateMember)    // PUT /api/members/{id}
		admin.Delete("/{memberID}", h.deleteMember) // DELETE /api/members/{id}
	})
}

func (h *MemberHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "listing members", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) createMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := h.memberService.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, h.logger, "creating member", err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) updateMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	var req service.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := h.memberService.Update(r.Context(), memberID, req)
	if err != nil {
		respondServiceError(w, h.logger, "updating member", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) deleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	if err := h.memberService.Delete(r.Context(), memberID); err != nil {
		respondServiceError(w, h.logger, "deleting member", err)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Member deleted successfully")
}

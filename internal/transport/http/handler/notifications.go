package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nownpp/wonder-science-hub/internal/application/notification"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
	"github.com/nownpp/wonder-science-hub/internal/transport/http/middleware"
)

// NotificationHandler handles the announcement and voting endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns live announcements visible to the caller. Students see rows
// targeted at their grade plus untargeted ones; teachers see everything.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	grade := ""
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Role != middleware.RoleTeacher {
		grade = claims.Grade
	}
	notifications, err := h.svc.List(r.Context(), grade)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	n, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "announcement deleted"})
}

func (h *NotificationHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.CastVote(r.Context(), chi.URLParam(r, "id"), claims.UserID(), req.Vote); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "vote recorded"})
}

func (h *NotificationHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.svc.ListVotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, votes)
}

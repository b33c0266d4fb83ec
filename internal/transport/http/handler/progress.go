package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nownpp/wonder-science-hub/internal/application/progress"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
	"github.com/nownpp/wonder-science-hub/internal/transport/http/middleware"
)

// ProgressHandler handles the student progress endpoints.
type ProgressHandler struct {
	svc progress.Service
}

func NewProgressHandler(svc progress.Service) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// Upsert records an update against the caller's own progress row.
func (h *ProgressHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.UpsertProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	record, err := h.svc.Upsert(r.Context(), claims.UserID(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// List returns the caller's progress records.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	records, err := h.svc.ListByUser(r.Context(), claims.UserID())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

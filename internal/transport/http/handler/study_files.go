package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nownpp/wonder-science-hub/internal/application/catalog"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
)

// StudyFileHandler handles the downloadable study material endpoints.
type StudyFileHandler struct {
	svc catalog.Service
}

func NewStudyFileHandler(svc catalog.Service) *StudyFileHandler {
	return &StudyFileHandler{svc: svc}
}

func (h *StudyFileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.ListFiles(r.Context(), filterFromQuery(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (h *StudyFileHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.GetFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *StudyFileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStudyFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	f, err := h.svc.CreateFile(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *StudyFileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStudyFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.UpdateFile(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "file updated"})
}

func (h *StudyFileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFile(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "file deleted"})
}

func (h *StudyFileHandler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordDownload(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "download recorded"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nownpp/wonder-science-hub/internal/application/catalog"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
)

// VideoHandler handles the video catalog endpoints.
type VideoHandler struct {
	svc catalog.Service
}

func NewVideoHandler(svc catalog.Service) *VideoHandler { return &VideoHandler{svc: svc} }

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListVideos(r.Context(), filterFromQuery(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	v, err := h.svc.CreateVideo(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.UpdateVideo(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "video updated"})
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "video deleted"})
}

// RecordView bumps the view counter; fired by the player on start.
func (h *VideoHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordView(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "view recorded"})
}

// filterFromQuery reads the shared category/grade list filters.
func filterFromQuery(r *http.Request) catalog.Filter {
	return catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Grade:    r.URL.Query().Get("grade"),
	}
}

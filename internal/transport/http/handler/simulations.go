package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nownpp/wonder-science-hub/internal/application/catalog"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
)

// SimulationHandler handles the interactive simulation endpoints.
type SimulationHandler struct {
	svc catalog.Service
}

func NewSimulationHandler(svc catalog.Service) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

func (h *SimulationHandler) List(w http.ResponseWriter, r *http.Request) {
	sims, err := h.svc.ListSimulations(r.Context(), filterFromQuery(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sims)
}

func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSimulation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SimulationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s, err := h.svc.CreateSimulation(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *SimulationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.UpdateSimulation(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "simulation updated"})
}

func (h *SimulationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSimulation(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "simulation deleted"})
}

func (h *SimulationHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordPlay(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "play recorded"})
}

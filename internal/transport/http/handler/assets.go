package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nownpp/wonder-science-hub/internal/application/asset"
)

// AssetHandler handles thumbnail and document uploads backed by S3.
type AssetHandler struct {
	svc asset.Service
}

func NewAssetHandler(svc asset.Service) *AssetHandler { return &AssetHandler{svc: svc} }

func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer f.Close()

	uploaded, err := h.svc.Upload(r.Context(), chi.URLParam(r, "folder"), header.Filename, f, header.Header.Get("Content-Type"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploaded)
}

// Link returns a fresh presigned download URL for a stored asset.
func (h *AssetHandler) Link(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key parameter")
		return
	}
	url, err := h.svc.Link(r.Context(), key)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key parameter")
		return
	}
	if err := h.svc.Remove(r.Context(), key); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "asset deleted"})
}

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Pagajob/easyold-sub001/internal/storage"
)

// MediaHandler issues upload URLs for condition-report captures and, when the
// local backend is in use, serves the upload and download endpoints those
// URLs point at.
type MediaHandler struct {
	backend storage.Backend
	local   *storage.LocalBackend // nil when running against GCS
}

func NewMediaHandler(backend storage.Backend, local *storage.LocalBackend) *MediaHandler {
	return &MediaHandler{backend: backend, local: local}
}

func (h *MediaHandler) Register(router *mux.Router) {
	router.HandleFunc("/media/upload-url", h.GenerateUploadURL).Methods("POST")
}

// RegisterLocalStorageRoutes registers the endpoints backing local upload
// URLs. Not registered when GCS serves uploads directly.
func (h *MediaHandler) RegisterLocalStorageRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/upload/{token}", h.HandleUpload).Methods("PUT")
	router.HandleFunc("/files/{key:.*}", h.HandleDownload).Methods("GET")
}

type uploadURLRequest struct {
	ReservationID int32  `json:"reservation_id"`
	Slot          string `json:"slot"`
	ContentType   string `json:"content_type"`
}

func (h *MediaHandler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	if req.ReservationID <= 0 || req.Slot == "" {
		writeBadRequest(w, "reservation_id and slot are required")
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	ext := ".jpg"
	if req.ContentType == "image/png" {
		ext = ".png"
	}
	key := fmt.Sprintf("reports/reservation-%d/%s-%s%s", req.ReservationID, req.Slot, uuid.New().String(), ext)

	url, err := h.backend.GenerateUploadURL(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"upload_url": url,
		"key":        key,
	})
}

// HandleUpload accepts PUT bodies addressed by local upload URLs.
func (h *MediaHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if h.local == nil {
		http.Error(w, "Local storage not enabled", http.StatusNotFound)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "text/html", "application/pdf":
	default:
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.local.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored object back to the caller.
func (h *MediaHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if h.local == nil {
		http.Error(w, "Local storage not enabled", http.StatusNotFound)
		return
	}

	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "Missing key", http.StatusBadRequest)
		return
	}

	file, err := h.local.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".html":
		contentType = "text/html"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

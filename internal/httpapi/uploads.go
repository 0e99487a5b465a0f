package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"imagevault/internal/models"
	"imagevault/internal/services"
)

const maxUploadMemory = 32 << 20 // 32 MiB

type createUploadResponse struct {
	Upload    *models.Upload `json:"upload"`
	UploadURL string         `json:"uploadUrl"`
}

// handleCreateUpload accepts multipart form data: an "image" file part and a
// "metadata" field holding a JSON string {title, tags}.
func (s *Server) handleCreateUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Missing image", "An 'image' file part is required")
		return
	}
	file.Close()

	var meta services.UploadMetadata
	if raw := r.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "Invalid metadata", "metadata must be a JSON string")
			return
		}
	}

	// Server-assigned filename; the client name is kept as OriginalName.
	storedName := uuid.NewString() + filepath.Ext(header.Filename)

	up, url, err := s.uploads.Create(r.Context(), services.UploadParams{
		Filename:     storedName,
		OriginalName: header.Filename,
		Mimetype:     header.Header.Get("Content-Type"),
		Size:         header.Size,
	}, meta)
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUploadResponse{Upload: up, UploadURL: url})
}

func (s *Server) handleListUploads(w http.ResponseWriter, r *http.Request) {
	list, err := s.uploads.List(r.Context())
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleUploadURL hands out a presigned download URL for a stored object.
func (s *Server) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid upload ID", "ID must be a positive integer")
		return
	}

	url, err := s.uploads.DownloadURL(r.Context(), id)
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

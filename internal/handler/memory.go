package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/memories"
)

// multipart field names for memory uploads
const (
	photoFormField   = "photo"
	captionFormField = "caption"
)

// HandleUploadMemory accepts a multipart photo upload with an optional
// caption
// @Summary Upload a memory
// @Tags memories
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo file"
// @Param caption formData string false "Caption"
// @Success 201 {object} domain.Memory
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/memories [post]
func HandleUploadMemory(memoryService memories.Service, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.Warn("Failed to parse upload form", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		file, header, err := r.FormFile(photoFormField)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgPhotoRequired)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		caption := r.FormValue(captionFormField)

		memory, err := memoryService.Add(r.Context(), UserIDFromContext(r.Context()), caption, contentType, file)
		if err != nil {
			respondServiceError(w, r, "Upload memory", err)
			return
		}
		respondJSON(w, http.StatusCreated, memory)
	}
}

// HandleListMemories returns the photo wall newest-first
func HandleListMemories(memoryService memories.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := memoryService.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List memories", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetMemoryPhoto streams the photo bytes for a memory
func HandleGetMemoryPhoto(memoryService memories.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		reader, fileID, err := memoryService.OpenPhoto(r.Context(), chi.URLParam(r, "memoryID"))
		if err != nil {
			respondServiceError(w, r, "Get memory photo", err)
			return
		}
		defer reader.Close()

		if contentType := mime.TypeByExtension(filepath.Ext(fileID)); contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if _, err := io.Copy(w, reader); err != nil {
			log.Error("Failed to stream memory photo", "file_id", fileID, "error", err)
		}
	}
}

// HandleDeleteMemory removes a memory (uploader only)
func HandleDeleteMemory(memoryService memories.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := memoryService.Delete(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "memoryID"))
		if err != nil {
			respondServiceError(w, r, "Delete memory", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMemoryDeleted})
	}
}

package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/somchaidev/activity-calendar/internal/service"
	"github.com/somchaidev/activity-calendar/internal/validation"
)

// Multipart form parsing buffers bodies above this in temp files.
const maxFormMemory = 32 << 20

type uploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *uploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart batch under the "files" field and stores
// every file it can. A response is successful as long as at least one
// file made it to a store.
func (h *uploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondError(w, http.StatusBadRequest, "no files provided")
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unreadable file: "+header.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unreadable file: "+header.Filename)
			return
		}

		files = append(files, service.UploadFile{
			Name:     header.Filename,
			MimeType: validation.DetectMimeType(header.Header.Get("Content-Type"), data),
			Data:     data,
		})
	}

	result, err := h.uploadService.UploadBatch(r.Context(), files)
	if err != nil {
		var failed *service.UploadFailedError
		if errors.As(err, &failed) {
			respondJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "All file uploads failed",
				"details": failed.Details,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	payload := map[string]any{
		"success": true,
		"files":   result.Files,
	}
	if len(result.PartialErrors) > 0 {
		payload["partialErrors"] = result.PartialErrors
	}
	respondJSON(w, http.StatusOK, payload)
}

// Delete removes a stored attachment. Deletion is best effort: the
// calendar entry referencing the file is already gone by the time this
// is called, so the response is always a success.
func (h *uploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileID  string `json:"fileId"`
		Storage string `json:"storage"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FileID == "" {
		respondError(w, http.StatusBadRequest, "fileId is required")
		return
	}

	h.uploadService.DeleteAttachment(r.Context(), req.FileID, req.Storage)

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

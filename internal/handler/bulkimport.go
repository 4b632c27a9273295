package handler

import (
	"log/slog"
	"net/http"

	"github.com/somchaidev/activity-calendar/internal/service"
)

type importHandler struct {
	importService *service.ImportService
}

func NewImportHandler(importService *service.ImportService) *importHandler {
	return &importHandler{importService: importService}
}

func (h *importHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req service.ImportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.importService.Generate(req)
	if err != nil {
		slog.Error("bulk import", "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"created": result.Created,
		"skipped": result.Skipped,
		"days":    result.Days,
	})
}

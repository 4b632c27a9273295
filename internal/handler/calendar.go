package handler

import (
	"log/slog"
	"net/http"

	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/service"
)

// calendarHandler serves the calendar collections. Writes
// replace the whole collection, matching how the editing UI saves.
type calendarHandler struct {
	calendarService *service.CalendarService
}

func NewCalendarHandler(calendarService *service.CalendarService) *calendarHandler {
	return &calendarHandler{calendarService: calendarService}
}

func (h *calendarHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.calendarService.Days()
	if err != nil {
		slog.Error("list days", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load days")
		return
	}
	respondJSON(w, http.StatusOK, days)
}

func (h *calendarHandler) ReplaceDays(w http.ResponseWriter, r *http.Request) {
	var days []*model.Day
	if err := decodeJSON(r, &days); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.calendarService.ReplaceDays(days); err != nil {
		slog.Error("replace days", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save days")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *calendarHandler) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var day model.Day
	if err := decodeJSON(r, &day); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if day.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.calendarService.UpsertDay(&day); err != nil {
		slog.Error("upsert day", "error", err, "id", day.ID)
		respondError(w, http.StatusInternalServerError, "failed to save day")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "day": day})
}

func (h *calendarHandler) ListYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.calendarService.Years()
	if err != nil {
		slog.Error("list years", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load years")
		return
	}
	respondJSON(w, http.StatusOK, years)
}

func (h *calendarHandler) ReplaceYears(w http.ResponseWriter, r *http.Request) {
	var years []*model.Year
	if err := decodeJSON(r, &years); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.calendarService.ReplaceYears(years); err != nil {
		slog.Error("replace years", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save years")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *calendarHandler) ReplaceMonths(w http.ResponseWriter, r *http.Request) {
	var months []*model.Month
	if err := decodeJSON(r, &months); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.calendarService.ReplaceMonths(months); err != nil {
		slog.Error("replace months", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save months")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *calendarHandler) ListMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.calendarService.Months()
	if err != nil {
		slog.Error("list months", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load months")
		return
	}
	respondJSON(w, http.StatusOK, months)
}

func (h *calendarHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.calendarService.Users()
	if err != nil {
		slog.Error("list users", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	// Passwords stay in the payload: saving the user list replaces every
	// row, so a listing without them would wipe credentials on the next
	// save. The user manager is itself behind auth.
	respondJSON(w, http.StatusOK, users)
}

func (h *calendarHandler) ReplaceUsers(w http.ResponseWriter, r *http.Request) {
	var users []*model.User
	if err := decodeJSON(r, &users); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.calendarService.ReplaceUsers(users); err != nil {
		slog.Error("replace users", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save users")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *calendarHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.calendarService.Settings()
	if err != nil {
		slog.Error("get settings", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *calendarHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.calendarService.SaveSettings(&settings); err != nil {
		slog.Error("save settings", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

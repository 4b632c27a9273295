package routes

import (
	"net/http"

	"github.com/somchaidev/activity-calendar/internal/app"
	"github.com/somchaidev/activity-calendar/internal/handler"
	"github.com/somchaidev/activity-calendar/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	calendar := handler.NewCalendarHandler(app.CalendarService)
	bulkImport := handler.NewImportHandler(app.ImportService)
	upload := handler.NewUploadHandler(app.UploadService)
	health := handler.NewHealthHandler(app.DB)

	requireAuth := middleware.RequireAuth(app.AuthService)
	rateLimiter := middleware.RateLimitLogin()

	mux := http.NewServeMux()

	// Locally stored attachments
	mux.Handle("GET /uploads/", handler.Uploads(app.LocalStore.Dir()))

	// Public API
	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("GET /api/days", calendar.ListDays)
	mux.HandleFunc("GET /api/years", calendar.ListYears)
	mux.HandleFunc("GET /api/months", calendar.ListMonths)
	mux.HandleFunc("GET /api/settings", calendar.GetSettings)

	// Editor API (token required)
	mux.HandleFunc("POST /api/days", requireAuth(calendar.ReplaceDays))
	mux.HandleFunc("PUT /api/days", requireAuth(calendar.UpsertDay))
	mux.HandleFunc("POST /api/days/import", requireAuth(bulkImport.Import))
	mux.HandleFunc("GET /api/users", requireAuth(calendar.ListUsers))
	mux.HandleFunc("POST /api/users", requireAuth(calendar.ReplaceUsers))
	mux.HandleFunc("POST /api/years", requireAuth(calendar.ReplaceYears))
	mux.HandleFunc("POST /api/months", requireAuth(calendar.ReplaceMonths))
	mux.HandleFunc("POST /api/settings", requireAuth(calendar.SaveSettings))
	mux.HandleFunc("POST /api/upload", requireAuth(upload.Upload))
	mux.HandleFunc("DELETE /api/upload", requireAuth(upload.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}

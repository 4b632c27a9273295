package middleware

import (
	"net/http"
	"strings"

	"github.com/somchaidev/activity-calendar/internal/ctxkeys"
	"github.com/somchaidev/activity-calendar/internal/model"
	"github.com/somchaidev/activity-calendar/internal/service"
)

// RequireAuth rejects requests that do not carry a valid Bearer token.
// The authenticated user is added to the request context.
func RequireAuth(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}

			claims, err := authService.VerifyToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			user := &model.User{}
			if id, ok := claims["user_id"].(string); ok {
				user.ID = id
			}
			if username, ok := claims["username"].(string); ok {
				user.Username = username
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next(w, r.WithContext(ctx))
		}
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
}

package middlewares

import (
	"net/http"

	"github.com/rukundohamza104/radical-design-ltd/internal/services"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

// SessionHeader carries the opaque admin session id on protected routes.
const SessionHeader = "x-admin-session"

// RequireAdminSession rejects requests whose session header does not name an
// active admin session.
func RequireAdminSession(store services.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" || !store.IsActive(sessionID) {
				utils.SendJSONError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package auth

import (
	"log/slog"
	"net/http"

	"hrportal/internal"
)

// Guard enforces admin scope on routes. Self-scope routes do not go through
// the guard; their queries are always filtered by the session employee ID and
// never by a path-supplied identifier.
type Guard struct {
	logger *slog.Logger
}

func NewGuard(logger *slog.Logger) *Guard {
	return &Guard{logger: logger}
}

// RequireAdmin aborts with 403 before any record subsystem is touched when the
// caller is not an admin.
func (g *Guard) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac, ok := internal.AuthFromContext(r.Context())
			if !ok {
				g.logger.Warn("admin check failed: no auth context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !ac.IsAdmin {
				g.logger.WarnContext(r.Context(), "access denied: admin required",
					"employee_id", ac.EmployeeID)
				http.Error(w, "Forbidden: admin access required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

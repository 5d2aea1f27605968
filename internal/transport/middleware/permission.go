package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/authz"
)

// EntityGuard builds route middleware from the permission matrix. It runs
// after the auth middleware, which put the session user into context.
type EntityGuard struct {
	logger *slog.Logger
}

func NewEntityGuard(logger *slog.Logger) *EntityGuard {
	return &EntityGuard{logger: logger}
}

func (g *EntityGuard) require(check func(*authz.User) bool, what string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !check(user.Access()) {
				g.logger.WarnContext(r.Context(), "access denied",
					"user_id", user.ID,
					"required", what,
					"path", r.URL.Path)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireEntityEdit gates mutating routes for one entity kind.
func (g *EntityGuard) RequireEntityEdit(kind authz.EntityKind) func(http.Handler) http.Handler {
	return g.require(func(u *authz.User) bool {
		return authz.ShouldShowInteractiveElements(u, kind)
	}, "edit:"+string(kind))
}

// RequireAdmin gates administrative routes.
func (g *EntityGuard) RequireAdmin() func(http.Handler) http.Handler {
	return g.require(func(u *authz.User) bool {
		return authz.HasAnyPrivilege(u, authz.PrivilegeAdmin)
	}, "admin")
}

// RequireUserManagement gates the user and sector administration routes.
func (g *EntityGuard) RequireUserManagement() func(http.Handler) http.Handler {
	return g.require(authz.CanEditUsers, "user-management")
}

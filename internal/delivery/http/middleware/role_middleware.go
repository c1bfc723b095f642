package middleware

import (
	"net/http"
	"strings"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/pkg/response"
)

// RequireRole lets through accounts whose Rol description matches one of roles,
// ignoring case. Superusers always pass.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			usuario, ok := GetCurrentUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !usuario.IsSuperuser && !hasRole(usuario, roles) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(usuario *entity.Usuario, roles []string) bool {
	if usuario.Rol == nil {
		return false
	}
	for _, role := range roles {
		if strings.EqualFold(usuario.Rol.Descripcion, role) {
			return true
		}
	}
	return false
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RolAdministrador)(next)
}

// RequireGestion allows administrators and managers
func RequireGestion(next http.Handler) http.Handler {
	return RequireRole(entity.RolAdministrador, entity.RolGerente)(next)
}

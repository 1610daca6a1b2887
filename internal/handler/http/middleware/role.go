package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
)

// RequireOwner gates the financially sensitive surfaces: catalogs, payroll
// and reporting. Admins never reach these routes.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		if role != string(user.RoleOwner) {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

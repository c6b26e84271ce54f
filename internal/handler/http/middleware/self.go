package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
)

// SelfOrAdmin lets a caller reach routes keyed by another employee's id
// only when the caller is an administrator.
func SelfOrAdmin(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if target := chi.URLParam(r, param); target != id.EmployeeID && !id.IsAdmin {
				response.HandleError(w, employee.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

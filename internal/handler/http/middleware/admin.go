package middleware

import (
	"net/http"

	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !id.IsAdmin {
			response.HandleError(w, auth.ErrAdminPrivilegeNeeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}

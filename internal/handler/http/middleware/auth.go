package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
	"github.com/hrsvr/hr-backend-go/internal/pkg/jwt"
)

// EmployeeResolver loads the employee behind a verified token.
type EmployeeResolver interface {
	Resolve(ctx context.Context, employeeID string) (employee.Employee, error)
}

type identityKey struct{}

// IdentityFromContext returns the principal stored by AuthRequired.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok
}

// WithIdentity stores the principal in ctx.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// AuthRequired runs after jwtauth.Verifier. It requires an access token whose
// employee still exists and stores the resolved identity in the context.
func AuthRequired(resolver EmployeeResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims[jwt.ClaimType].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			employeeID, _ := claims[jwt.ClaimEmployeeID].(string)
			emp, err := resolver.Resolve(r.Context(), employeeID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			isAdmin, _ := claims[jwt.ClaimIsAdmin].(bool)
			ctx := WithIdentity(r.Context(), auth.Identity{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				IsAdmin:    isAdmin,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

package auth

import (
	"context"

	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login authenticates an employee id and password and issues an access token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Resolve returns the employee behind an authenticated employee id.
	Resolve(ctx context.Context, employeeID string) (employee.Employee, error)

	// SignupTest registers an employee with the default leave entitlement.
	SignupTest(ctx context.Context, req SignupRequest) (SignupResponse, error)
}

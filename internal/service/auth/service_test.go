package auth

import (
	"context"
	"testing"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/jwt"
	"github.com/hrsvr/hr-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

func newTestService(t *testing.T, adminIDs ...string) (auth.AuthService, jwt.Service) {
	t.Helper()

	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)

	svc := NewAuthService(
		memory.NewStore().Employees(),
		jwtService,
		config.AuthConfig{AdminEmployeeIDs: adminIDs},
		config.DefaultPolicy(),
	)
	return svc, jwtService
}

func TestSignupTest_ThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newTestService(t, "E001")

	resp, err := svc.SignupTest(ctx, auth.SignupRequest{EmployeeID: "E001", Password: "password123", Name: "김철수"})
	require.NoError(t, err)
	assert.Equal(t, "E001", resp.EmployeeID)

	token, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "E001", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	decoded, err := jwtService.JWTAuth().Decode(token.AccessToken)
	require.NoError(t, err)
	isAdmin, ok := decoded.PrivateClaims()[jwt.ClaimIsAdmin].(bool)
	require.True(t, ok)
	assert.True(t, isAdmin)

	emp, err := svc.Resolve(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, "김철수", emp.Name)
	require.NotNil(t, emp.TotalLeaveDays)
	assert.Equal(t, 15.0, *emp.TotalLeaveDays)
}

func TestSignupTest_DuplicateID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	req := auth.SignupRequest{EmployeeID: "E002", Password: "pw1234", Name: "이영희"}
	_, err := svc.SignupTest(ctx, req)
	require.NoError(t, err)

	_, err = svc.SignupTest(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.SignupTest(ctx, auth.SignupRequest{EmployeeID: "E003", Password: "correct-pw", Name: "박민수"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"wrong password", auth.LoginRequest{EmployeeID: "E003", Password: "wrong-pw"}},
		{"unknown employee", auth.LoginRequest{EmployeeID: "E999", Password: "correct-pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestLogin_NonAdminClaim(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newTestService(t, "ADMIN")

	_, err := svc.SignupTest(ctx, auth.SignupRequest{EmployeeID: "E004", Password: "pw1234", Name: "최지원"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, auth.LoginRequest{EmployeeID: "E004", Password: "pw1234"})
	require.NoError(t, err)

	decoded, err := jwtService.JWTAuth().Decode(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, false, decoded.PrivateClaims()[jwt.ClaimIsAdmin])
}

func TestResolve_DeletedEmployee(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Resolve(context.Background(), "E404")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogin_EmptyPasswordHash(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)
	svc := NewAuthService(store.Employees(), jwtService, config.AuthConfig{}, config.DefaultPolicy())

	_, err = store.Employees().Create(ctx, employee.Employee{ID: "E005", Name: "무비번"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{EmployeeID: "E005", Password: "anything"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/jwt"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const tokenTypeBearer = "bearer"

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	adminEmployeeIDs []string
	defaultLeaveDays float64
}

func NewAuthService(
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	authConfig config.AuthConfig,
	policy config.PolicyConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		adminEmployeeIDs:   authConfig.AdminEmployeeIDs,
		defaultLeaveDays:   policy.DefaultLeaveDays,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.PasswordHash == nil || *emp.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	isAdmin := validator.IsInSlice(emp.ID, a.adminEmployeeIDs)
	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, isAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("employee logged in", "employee_id", emp.ID, "is_admin", isAdmin)

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Resolve implements auth.AuthService.
func (a *AuthServiceImpl) Resolve(ctx context.Context, employeeID string) (employee.Employee, error) {
	if employeeID == "" {
		return employee.Employee{}, auth.ErrInvalidToken
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, auth.ErrInvalidToken
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve employee: %w", err)
	}
	return emp, nil
}

// SignupTest implements auth.AuthService.
func (a *AuthServiceImpl) SignupTest(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignupResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	leaveDays := a.defaultLeaveDays
	created, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		ID:             req.EmployeeID,
		Name:           req.Name,
		PasswordHash:   &hashed,
		Status:         employee.StatusActive,
		TotalLeaveDays: &leaveDays,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeExists) {
			return auth.SignupResponse{}, err
		}
		return auth.SignupResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("test employee registered", "employee_id", created.ID)

	return auth.SignupResponse{
		Message:    fmt.Sprintf("테스트 유저 생성 완료! ID: %s, 이름: %s", created.ID, created.Name),
		EmployeeID: created.ID,
	}, nil
}

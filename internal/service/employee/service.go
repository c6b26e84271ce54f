package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	policy       config.PolicyConfig
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, policy config.PolicyConfig) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		policy:       policy,
		now:          time.Now,
	}
}

// GetDetail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetDetail(ctx context.Context, employeeID string) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return s.placeholder(employeeID), nil
		}
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	joinDate := "-"
	if emp.HireDate != nil {
		joinDate = utils.DateKey(*emp.HireDate)
	}

	return employee.EmployeeDetailResponse{
		EmployeeID:     emp.ID,
		Name:           emp.Name,
		Department:     utils.OrDash(emp.Department),
		Position:       utils.OrDash(emp.Position),
		Email:          utils.OrDash(emp.Email),
		Phone:          utils.OrDash(emp.PhoneNumber),
		JoinDate:       joinDate,
		Status:         emp.Status,
		TotalLeaveDays: emp.LeaveEntitlement(s.policy.DefaultLeaveDays),
	}, nil
}

// placeholder keeps the profile page rendering for ids without a row.
func (s *EmployeeServiceImpl) placeholder(employeeID string) employee.EmployeeDetailResponse {
	return employee.EmployeeDetailResponse{
		EmployeeID:     employeeID,
		Name:           employee.UnknownName,
		Department:     "-",
		Position:       "-",
		Email:          "-",
		Phone:          "-",
		JoinDate:       utils.DateKey(s.now().In(s.policy.Loc())),
		Status:         "-",
		TotalLeaveDays: s.policy.DefaultLeaveDays,
	}
}

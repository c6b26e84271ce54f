package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	application.ApplicationRepository
	employee.EmployeeRepository
	policy config.PolicyConfig
}

func NewLeaveService(
	applicationRepository application.ApplicationRepository,
	employeeRepository employee.EmployeeRepository,
	policy config.PolicyConfig,
) leave.LeaveService {
	return &LeaveServiceImpl{
		ApplicationRepository: applicationRepository,
		EmployeeRepository:    employeeRepository,
		policy:                policy,
	}
}

// MyStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) MyStatus(ctx context.Context, employeeID string) (leave.LeaveStatusResponse, error) {
	entitlement := s.policy.DefaultLeaveDays

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	switch {
	case err == nil:
		entitlement = emp.LeaveEntitlement(s.policy.DefaultLeaveDays)
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return leave.LeaveStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	approved, err := s.ApplicationRepository.ListByEmployeeAndStatus(ctx, employeeID, application.StatusApproved)
	if err != nil {
		return leave.LeaveStatusResponse{}, fmt.Errorf("failed to list approved applications: %w", err)
	}
	usage := leave.Tally(approved)

	items := make([]leave.LeaveItem, 0, len(leave.Kinds))
	for i, kind := range leave.Kinds {
		item := leave.LeaveItem{
			ID:       i + 1,
			Name:     string(kind),
			UsedDays: usage[kind],
		}
		if kind == leave.KindAnnual {
			item.TotalDays = entitlement
			item.RemainingDays = leave.Balance(entitlement, usage)
		}
		items = append(items, item)
	}

	return leave.LeaveStatusResponse{
		TotalUsedAll: usage[leave.KindAnnual],
		Leaves:       items,
	}, nil
}

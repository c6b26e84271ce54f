package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/dashboard"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/domain/leave"
	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
	"github.com/hrsvr/hr-backend-go/internal/pkg/worktime"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	application.ApplicationRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy        config.PolicyConfig
	standardClose worktime.Clock
	now           func() time.Time
}

func NewDashboardService(
	applicationRepository application.ApplicationRepository,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	policy config.PolicyConfig,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		ApplicationRepository: applicationRepository,
		AttendanceRepository:  attendanceRepository,
		EmployeeRepository:    employeeRepository,
		policy:                policy,
		standardClose:         worktime.MustParseClock(policy.StandardClose),
		now:                   time.Now,
	}
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, employeeID string) (dashboard.SummaryResponse, error) {
	now := s.now().In(s.policy.Loc())
	monthStart, monthEnd := utils.MonthRange(now.Year(), now.Month(), s.policy.Loc())

	var (
		requestCount int
		outingCount  int
		records      []attendance.Attendance
		approved     []application.Application
		entitlement  = s.policy.DefaultLeaveDays
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Requests this month
	g.Go(func() error {
		count, err := s.ApplicationRepository.CountByEmployeeSince(gCtx, employeeID, monthStart, nil)
		if err != nil {
			return fmt.Errorf("count requests: %w", err)
		}
		requestCount = count
		return nil
	})

	// 2. Outings this month
	g.Go(func() error {
		count, err := s.ApplicationRepository.CountByEmployeeSince(gCtx, employeeID, monthStart, application.OutingTypes)
		if err != nil {
			return fmt.Errorf("count outings: %w", err)
		}
		outingCount = count
		return nil
	})

	// 3. Attendance this month
	g.Go(func() error {
		data, err := s.AttendanceRepository.ListByEmployee(gCtx, employeeID, monthStart, utils.DateOnly(monthEnd))
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		records = data
		return nil
	})

	// 4. Leave entitlement and approved applications
	g.Go(func() error {
		emp, err := s.EmployeeRepository.GetByID(gCtx, employeeID)
		switch {
		case err == nil:
			entitlement = emp.LeaveEntitlement(s.policy.DefaultLeaveDays)
		case !errors.Is(err, employee.ErrEmployeeNotFound):
			return fmt.Errorf("get employee: %w", err)
		}

		apps, err := s.ApplicationRepository.ListByEmployeeAndStatus(gCtx, employeeID, application.StatusApproved)
		if err != nil {
			return fmt.Errorf("list approved applications: %w", err)
		}
		approved = apps
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	var work, overtime time.Duration
	for _, r := range records {
		if !r.IsComplete() {
			continue
		}
		res := worktime.Compute(*r.ClockIn, *r.ClockOut, s.standardClose)
		work += res.Work
		overtime += res.Overtime
	}

	return dashboard.SummaryResponse{
		MyRequestCount:  requestCount,
		WorkTimeSummary: fmt.Sprintf("%dh / %dh", worktime.WholeHours(work), worktime.WholeHours(overtime)),
		LeaveBalance:    leave.Balance(entitlement, leave.Tally(approved)),
		OutingCount:     outingCount,
	}, nil
}

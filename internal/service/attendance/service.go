package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/metrics"
	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
	"github.com/hrsvr/hr-backend-go/internal/pkg/worktime"
)

const idPrefix = "ATT-"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy        config.PolicyConfig
	standardClose worktime.Clock
	metrics       *metrics.MetricsCollection
	now           func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	policy config.PolicyConfig,
	mc *metrics.MetricsCollection,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		policy:               policy,
		standardClose:        worktime.MustParseClock(policy.StandardClose),
		metrics:              mc,
		now:                  time.Now,
	}
}

// localNow is the current wall clock in the configured zone, to the second.
func (s *AttendanceServiceImpl) localNow() time.Time {
	return s.now().In(s.policy.Loc()).Truncate(time.Second)
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	now := s.localNow()
	today := utils.DateOnly(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedIn
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	method := attendance.MethodPC
	location := req.Location
	record := attendance.Attendance{
		ID:              idPrefix + id.String(),
		EmployeeID:      req.EmployeeID,
		Date:            today,
		ClockIn:         &now,
		ClockInLocation: &location,
		Method:          &method,
	}

	if _, err := s.AttendanceRepository.Create(ctx, record); err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.ClockResponse{}, err
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.metrics.ClockIn()
	slog.Info("clock-in recorded", "employee_id", req.EmployeeID, "attendance_id", record.ID)

	return attendance.ClockResponse{
		Message: "출근 처리되었습니다.",
		Date:    utils.DateKey(now),
		Time:    now.Format("15:04:05"),
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	now := s.localNow()

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, utils.DateOnly(now))
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.ClockResponse{}, attendance.ErrAttendanceNotFound
	}
	if record.ClockOut != nil {
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedOut
	}

	if err := s.AttendanceRepository.UpdateClockOut(ctx, record.ID, now, req.Location); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) || errors.Is(err, attendance.ErrAlreadyClockedOut) {
			return attendance.ClockResponse{}, err
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to record clock-out: %w", err)
	}

	s.metrics.ClockOut()
	slog.Info("clock-out recorded", "employee_id", req.EmployeeID, "attendance_id", record.ID)

	return attendance.ClockResponse{
		Message: "퇴근 처리되었습니다.",
		Date:    utils.DateKey(now),
		Time:    now.Format("15:04:05"),
	}, nil
}

// GetWeekly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeekly(ctx context.Context, employeeID string, reference time.Time) ([]attendance.WeeklyStatus, error) {
	if reference.IsZero() {
		reference = s.localNow()
	}
	monday := utils.WeekStart(reference)
	sunday := monday.AddDate(0, 0, 6)

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly attendance: %w", err)
	}
	byDay := indexByDay(records)

	week := make([]attendance.WeeklyStatus, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		item := attendance.WeeklyStatus{
			Date:      fmt.Sprintf("%s(%s)", day.Format("01/02"), utils.KoreanWeekday(day)),
			WorkTime:  "-",
			Overtime:  "-",
			TotalTime: "-",
		}

		if rec, ok := byDay[utils.DateKey(day)]; ok && rec.IsComplete() {
			res := worktime.Compute(*rec.ClockIn, *rec.ClockOut, s.standardClose)
			item.WorkTime = worktime.FormatHHMM(res.Work)
			item.Overtime = worktime.FormatHHMM(res.Overtime)
			item.TotalTime = worktime.FormatHHMM(res.Total())
		}
		week = append(week, item)
	}

	return week, nil
}

// GetMonthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthly(ctx context.Context, req attendance.MonthlyRequest) (attendance.MonthlyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyResponse{}, err
	}

	userName := employee.UnknownName
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	switch {
	case err == nil:
		userName = emp.Name
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return attendance.MonthlyResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	loc := s.policy.Loc()
	month := time.Month(req.Month)
	first, last := utils.MonthRange(req.Year, month, loc)

	records, err := s.AttendanceRepository.ListByEmployee(ctx, req.EmployeeID, first, utils.DateOnly(last))
	if err != nil {
		return attendance.MonthlyResponse{}, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	byDay := indexByDay(records)

	today := utils.DateOnly(s.localNow())
	days := utils.DaysIn(req.Year, month)

	resp := attendance.MonthlyResponse{
		UserName: userName,
		Stats: attendance.MonthlyStats{
			Total:  days,
			Actual: len(records),
		},
		Records: make([]attendance.MonthlyRecord, 0, days),
	}

	for d := 1; d <= days; d++ {
		curr := time.Date(req.Year, month, d, 0, 0, 0, 0, loc)
		item := attendance.MonthlyRecord{
			Date:             curr.Format("2006.01.02"),
			DayOfWeek:        utils.KoreanWeekday(curr),
			ClockInTime:      "-",
			ClockInLocation:  "-",
			ClockOutTime:     "-",
			ClockOutLocation: "-",
			TotalWorkTime:    "-",
			Status:           attendance.StatusUnprocessed,
		}

		rec, ok := byDay[utils.DateKey(curr)]
		switch {
		case ok:
			if rec.ClockIn != nil {
				item.ClockInTime = rec.ClockIn.Format("15:04")
				item.ClockInLocation = utils.SimplifyLocation(deref(rec.ClockInLocation))
			}
			if rec.ClockOut != nil {
				item.ClockOutTime = rec.ClockOut.Format("15:04")
				item.ClockOutLocation = utils.SimplifyLocation(deref(rec.ClockOutLocation))
			}
			if rec.IsComplete() {
				item.TotalWorkTime = worktime.FormatHHMM(rec.ClockOut.Sub(*rec.ClockIn))
				item.Status = attendance.StatusComplete
				resp.Stats.Normal++
			} else if rec.ClockIn != nil {
				item.Status = attendance.StatusMissingCheckout
				resp.Stats.Unprocessed++
			}
		case utils.IsWeekend(curr):
			item.Status = attendance.StatusNone
		case curr.Before(today):
			item.Status = attendance.StatusAbsent
			resp.Stats.Unprocessed++
		default:
			item.Status = attendance.StatusNone
		}

		resp.Records = append(resp.Records, item)
	}

	return resp, nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.DailyAttendanceRow, error) {
	if date.IsZero() {
		date = s.localNow()
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, utils.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	rows := make([]attendance.DailyAttendanceRow, 0, len(records))
	for _, rec := range records {
		row := attendance.DailyAttendanceRow{
			Date:   rec.Date.Format("01/02"),
			Name:   rec.EmployeeID,
			Dept:   utils.OrDash(rec.EmployeeDepartment),
			Rank:   utils.OrDash(rec.EmployeePosition),
			In:     "-",
			InLoc:  utils.OrDash(rec.ClockInLocation),
			Out:    "-",
			OutLoc: utils.OrDash(rec.ClockOutLocation),
			Status: rec.RecordStatus(),
		}
		if rec.EmployeeName != nil {
			row.Name = *rec.EmployeeName
		} else {
			row.Dept, row.Rank = "-", "-"
		}
		if rec.ClockIn != nil {
			row.In = rec.ClockIn.Format("15:04")
		}
		if rec.ClockOut != nil {
			row.Out = rec.ClockOut.Format("15:04")
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func indexByDay(records []attendance.Attendance) map[string]attendance.Attendance {
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byDay[utils.DateKey(r.Date)] = r
	}
	return byDay
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

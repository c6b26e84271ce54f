package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record for the employee.
	ClockIn(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// ClockOut closes today's record for the employee.
	ClockOut(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// GetWeekly returns Monday..Sunday of the week containing reference.
	GetWeekly(ctx context.Context, employeeID string, reference time.Time) ([]WeeklyStatus, error)

	// GetMonthly returns one row per calendar day of the month.
	GetMonthly(ctx context.Context, req MonthlyRequest) (MonthlyResponse, error)

	// ListByDate returns every employee's record for one day (admin).
	ListByDate(ctx context.Context, date time.Time) ([]DailyAttendanceRow, error)
}

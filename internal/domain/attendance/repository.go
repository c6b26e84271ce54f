package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a clock-in record. A second record for the same
	// employee and date yields ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when the employee has no record on date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// UpdateClockOut sets the clock-out time and location of a record. A
	// record that already has a clock-out yields ErrAlreadyClockedOut.
	UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error

	// ListByEmployee returns the employee's records with from <= date <= to, oldest first.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListByDate returns every record on date, joined with the employee where one exists.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}

package attendance

import "time"

// Daily status labels shared by the monthly report and the admin day view.
const (
	StatusComplete        = "정상처리"
	StatusMissingCheckout = "퇴근미처리"
	StatusAbsent          = "결근"
	StatusUnprocessed     = "미처리"
	StatusNone            = "-"
)

const MethodPC = "PC"

type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	ClockIn          *time.Time
	ClockOut         *time.Time
	ClockInLocation  *string
	ClockOutLocation *string
	Method           *string

	// Join
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

// IsComplete reports whether both clock events are present.
func (a *Attendance) IsComplete() bool {
	return a.ClockIn != nil && a.ClockOut != nil
}

// RecordStatus classifies a stored record without looking at the calendar.
func (a *Attendance) RecordStatus() string {
	switch {
	case a.IsComplete():
		return StatusComplete
	case a.ClockIn != nil:
		return StatusMissingCheckout
	default:
		return StatusNone
	}
}

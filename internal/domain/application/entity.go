package application

import (
	"strings"
	"time"
)

// Statuses written by submission and by administrators. Any other string an
// administrator sets is stored as is.
const (
	StatusPending  = "대기"
	StatusApproved = "승인"
	StatusRejected = "반려"

	// DisplayApproved is how an approved application is shown in admin lists.
	DisplayApproved = "승인완료"
)

// Known application types. Free-form types are accepted as well.
const (
	TypeAnnualLeave  = "연차"
	TypeHalfDayAM    = "오전 반차"
	TypeHalfDayPM    = "오후 반차"
	TypeSickLeave    = "병가"
	TypeBereavement  = "경조사 휴가"
	TypeBusinessTrip = "출장"
	TypeOuting       = "외출"
	TypeAway         = "이석"
)

// OutingTypes are counted by the dashboard's outing widget.
var OutingTypes = []string{TypeAway, TypeOuting, TypeBusinessTrip}

var leaveKeywords = []string{"휴가", "연차", "반차", "병가"}

type Application struct {
	ID         string
	Seq        int64
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     string
	CreatedAt  time.Time

	// Join; EmployeeName is nil when the employee row is missing.
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

// Duration is end minus start.
func (a *Application) Duration() time.Duration {
	return a.EndDate.Sub(a.StartDate)
}

// CalendarDays counts whole days between start and end plus one, the way a
// leave request spanning Monday to Wednesday counts as three days.
func (a *Application) CalendarDays() int {
	return int(a.Duration()/(24*time.Hour)) + 1
}

// DisplayStatus maps the stored status to its admin list label.
func DisplayStatus(status string) string {
	if status == StatusApproved {
		return DisplayApproved
	}
	return status
}

// IsLeaveLike reports whether the type belongs on the leave calendar.
func IsLeaveLike(applicationType string) bool {
	for _, kw := range leaveKeywords {
		if strings.Contains(applicationType, kw) {
			return true
		}
	}
	return false
}

// IsHalfDay reports AM/PM half-day leave types.
func IsHalfDay(applicationType string) bool {
	return strings.Contains(applicationType, "반차")
}

// IsCancellation reports types that cancel a previous leave.
func IsCancellation(applicationType string) bool {
	return strings.Contains(applicationType, "취소")
}

package employee

import "time"

const (
	StatusActive = "재직"

	// UnknownName is shown when a joined employee row is missing.
	UnknownName = "알 수 없음"
)

type Employee struct {
	ID             string
	Name           string
	PasswordHash   *string
	Department     *string
	Position       *string
	Email          *string
	PhoneNumber    *string
	HireDate       *time.Time
	Status         string
	TotalLeaveDays *float64
}

// LeaveEntitlement returns the employee's annual leave days, or fallback
// when none is recorded.
func (e *Employee) LeaveEntitlement(fallback float64) float64 {
	if e == nil || e.TotalLeaveDays == nil || *e.TotalLeaveDays == 0 {
		return fallback
	}
	return *e.TotalLeaveDays
}

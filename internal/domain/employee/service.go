package employee

import "context"

type EmployeeService interface {
	// GetDetail never fails for a missing employee; it returns a placeholder
	// profile instead.
	GetDetail(ctx context.Context, employeeID string) (EmployeeDetailResponse, error)
}

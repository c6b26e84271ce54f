package leave

import "context"

type LeaveService interface {
	// MyStatus returns the four-bucket leave breakdown of an employee.
	MyStatus(ctx context.Context, employeeID string) (LeaveStatusResponse, error)
}

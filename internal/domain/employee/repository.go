package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Employee, error)
	// Create returns ErrEmployeeExists on a duplicate id.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}

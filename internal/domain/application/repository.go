package application

import (
	"context"
	"time"
)

// ListFilter narrows the admin application list. From/To bound start_date
// inclusively; Query matches employee name or department by substring.
type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Query string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)

	// GetByID looks up by application id and returns ErrApplicationNotFound
	// when missing. The result carries the joined employee fields.
	GetByID(ctx context.Context, id string) (Application, error)

	// GetBySeq looks up by the numeric surrogate key.
	GetBySeq(ctx context.Context, seq int64) (Application, error)

	UpdateStatus(ctx context.Context, id string, status string) error

	// List returns joined applications, newest first.
	List(ctx context.Context, filter ListFilter) ([]Application, error)

	// ListByEmployeeSince returns the employee's applications created at or
	// after since, newest first.
	ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]Application, error)

	// ListByEmployeeAndStatus returns every application of the employee with the given status.
	ListByEmployeeAndStatus(ctx context.Context, employeeID string, status string) ([]Application, error)

	// CountByEmployeeSince counts applications created at or after since.
	// A non-empty types restricts the count to those exact types.
	CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int, error)

	// ListOverlapping returns joined applications with start <= to and end >= from.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]Application, error)
}

package dashboard

import "context"

type DashboardService interface {
	// GetSummary builds the current month's dashboard for one employee.
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)
}

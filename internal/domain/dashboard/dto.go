package dashboard

// SummaryResponse is the personal dashboard for the current month.
type SummaryResponse struct {
	MyRequestCount  int     `json:"myRequestCount"`
	WorkTimeSummary string  `json:"workTimeSummary"` // "{work}h / {overtime}h"
	LeaveBalance    float64 `json:"leaveBalance"`
	OutingCount     int     `json:"outingCount"`
}

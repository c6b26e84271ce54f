package leave

type LeaveItem struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	TotalDays     float64 `json:"total_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
}

type LeaveStatusResponse struct {
	TotalUsedAll float64     `json:"total_used_all"`
	Leaves       []LeaveItem `json:"leaves"`
}

package employee

type EmployeeDetailResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	JoinDate       string  `json:"join_date"`
	Status         string  `json:"status"`
	TotalLeaveDays float64 `json:"total_leave_days"`
}

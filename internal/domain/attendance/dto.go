package attendance

import (
	"strings"
	"unicode/utf8"

	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

// ========================================
// CLOCK IN / OUT
// ========================================

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
	Location   string `json:"location"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if utf8.RuneCountInString(r.Location) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		r.Location = "-"
	}
	return nil
}

type ClockResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM:SS
}

// ========================================
// WEEKLY STATUS
// ========================================

type WeeklyStatus struct {
	Date      string `json:"date"` // MM/DD(요일)
	WorkTime  string `json:"workTime"`
	Overtime  string `json:"overtime"`
	TotalTime string `json:"totalTime"`
}

// ========================================
// MONTHLY REPORT
// ========================================

type MonthlyRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1900 and 9999",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyStats struct {
	Total       int `json:"total"`
	Normal      int `json:"normal"`
	Unprocessed int `json:"unprocessed"`
	Actual      int `json:"actual"`
}

type MonthlyRecord struct {
	Date             string `json:"date"` // YYYY.MM.DD
	DayOfWeek        string `json:"dayOfWeek"`
	ClockInTime      string `json:"clockInTime"`
	ClockInLocation  string `json:"clockInLocation"`
	ClockOutTime     string `json:"clockOutTime"`
	ClockOutLocation string `json:"clockOutLocation"`
	TotalWorkTime    string `json:"totalWorkTime"`
	Status           string `json:"status"`
}

type MonthlyResponse struct {
	UserName string          `json:"userName"`
	Stats    MonthlyStats    `json:"stats"`
	Records  []MonthlyRecord `json:"records"`
}

// ========================================
// ADMIN DAY VIEW
// ========================================

type DailyAttendanceRow struct {
	Date   string `json:"date"` // MM/DD
	Name   string `json:"name"`
	Dept   string `json:"dept"`
	Rank   string `json:"rank"`
	In     string `json:"in"`
	InLoc  string `json:"inLoc"`
	Out    string `json:"out"`
	OutLoc string `json:"outLoc"`
	Status string `json:"status"`
}

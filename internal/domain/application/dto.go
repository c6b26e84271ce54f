package application

import (
	"time"
	"unicode/utf8"

	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

// ========================================
// SUBMIT
// ========================================

type SubmitRequest struct {
	EmployeeID      string `json:"employee_id"`
	ApplicationType string `json:"application_type"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Reason          string `json:"reason"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Validate checks required fields and parses the dates in loc.
func (r *SubmitRequest) Validate(loc *time.Location) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ApplicationType) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_type",
			Message: "application_type is required",
		})
	} else if utf8.RuneCountInString(r.ApplicationType) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "application_type",
			Message: "application_type must not exceed 50 characters",
		})
	}

	start, ok := validator.ParseDateTime(r.StartDate, loc)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS",
		})
	}

	end, ok := validator.ParseDateTime(r.EndDate, loc)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Start, r.End = start, end
	return nil
}

type SubmitResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

// ========================================
// STATUS UPDATE
// ========================================

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "application id is required",
		})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusResponse struct {
	Message string `json:"message"`
}

// ========================================
// ADMIN LIST
// ========================================

type ListRequest struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
	Query string
}

// ToFilter validates the request and resolves it into a filter in loc.
// The date range only applies when both ends are given.
func (r *ListRequest) ToFilter(loc *time.Location) (ListFilter, error) {
	var errs validator.ValidationErrors
	filter := ListFilter{Query: r.Query}

	if r.Start != "" && r.End != "" {
		from, ok := validator.ParseDateIn(r.Start, loc)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be in YYYY-MM-DD format",
			})
		}
		to, ok := validator.ParseDateIn(r.End, loc)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be in YYYY-MM-DD format",
			})
		}
		if len(errs) == 0 {
			to = utils.EndOfDay(to)
			filter.From, filter.To = &from, &to
		}
	}

	if len(errs) > 0 {
		return ListFilter{}, errs
	}
	return filter, nil
}

type ApplicationRow struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // M/D(요일)
	Name      string   `json:"name"`
	Dept      string   `json:"dept"`
	Rank      string   `json:"rank"`
	Category  Category `json:"category"`
	Type      string   `json:"type"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Duration  string   `json:"duration"`
	Status    string   `json:"status"`
}

// ApplicationRecord is the stored application as the approval widget reads it.
type ApplicationRecord struct {
	ApplicationID   string    `json:"application_id"`
	EmployeeID      string    `json:"employee_id"`
	ApplicationType string    `json:"application_type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Reason          *string   `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ========================================
// RECENT (PERSONAL)
// ========================================

type RecentApplication struct {
	Type        string `json:"type"`
	StartDate   string `json:"startDate"` // YYYY.MM.DD
	EndDate     string `json:"endDate"`
	Duration    string `json:"duration"`
	RequestDate string `json:"requestDate"`
	Status      string `json:"status"`
}

// ========================================
// LEAVE SCHEDULE
// ========================================

type ScheduleRequest struct {
	Year  int
	Month int
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

func (r *ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Start != "" && r.End != "" {
		if _, ok := validator.IsValidDate(r.Start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be in YYYY-MM-DD format",
			})
		}
		if _, ok := validator.IsValidDate(r.End); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Month != 0 && (r.Month < 1 || r.Month > 12) {
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

type ScheduleItem struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // M/D(요일)
	Name      string    `json:"name"`
	Dept      string    `json:"dept"`
	Rank      string    `json:"rank"`
	Item      string    `json:"item"`
	Type      string    `json:"type"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Duration  string    `json:"duration"`
	Status    string    `json:"status"`
	RawDate   time.Time `json:"raw_date"`
}

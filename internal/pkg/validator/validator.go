package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Single wraps one field error.
func Single(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ParseDateIn parses "YYYY-MM-DD" as midnight in loc.
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	return date, err == nil
}

// DateTimeLayouts are the accepted application date/time inputs, in the
// order they are tried.
var DateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDateTime tries each of DateTimeLayouts in order and returns the first
// match, interpreted in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Employee ids are short codes such as "E001" or "2024-0001".
var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

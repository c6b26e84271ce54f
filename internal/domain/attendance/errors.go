package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
	ErrAttendanceNotFound = errors.New("no clock-in record for today")
)

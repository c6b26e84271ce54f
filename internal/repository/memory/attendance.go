package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
)

type attendanceRepository struct {
	s *Store
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := utils.DateKey(record.Date)
	for _, a := range r.s.attendance {
		if a.EmployeeID == record.EmployeeID && utils.DateKey(a.Date) == key {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	r.s.attendance = append(r.s.attendance, record)
	return record, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := utils.DateKey(date)
	for _, a := range r.s.attendance {
		if a.EmployeeID == employeeID && utils.DateKey(a.Date) == key {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *attendanceRepository) UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.attendance {
		if r.s.attendance[i].ID == id {
			if r.s.attendance[i].ClockOut != nil {
				return attendance.ErrAlreadyClockedOut
			}
			out, loc := clockOut, location
			r.s.attendance[i].ClockOut = &out
			r.s.attendance[i].ClockOutLocation = &loc
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	lo, hi := utils.DateKey(from), utils.DateKey(to)
	var records []attendance.Attendance
	for _, a := range r.s.attendance {
		key := utils.DateKey(a.Date)
		if a.EmployeeID == employeeID && key >= lo && key <= hi {
			records = append(records, a)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return utils.DateKey(records[i].Date) < utils.DateKey(records[j].Date)
	})
	return records, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := utils.DateKey(date)
	var records []attendance.Attendance
	for _, a := range r.s.attendance {
		if utils.DateKey(a.Date) != key {
			continue
		}
		a.EmployeeName, a.EmployeeDepartment, a.EmployeePosition = r.s.joinEmployee(a.EmployeeID)
		records = append(records, a)
	}
	return records, nil
}

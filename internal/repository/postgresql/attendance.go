package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.attendance_id, a.employee_id, a.attendance_date,
	a.attendance_in_time, a.attendance_out_time,
	a.in_location, a.out_location, a.attendance_method
`

func scanAttendance(row pgx.Row, dest *attendance.Attendance, extra ...any) error {
	fields := []any{
		&dest.ID,
		&dest.EmployeeID,
		&dest.Date,
		&dest.ClockIn,
		&dest.ClockOut,
		&dest.ClockInLocation,
		&dest.ClockOutLocation,
		&dest.Method,
	}
	return row.Scan(append(fields, extra...)...)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			attendance_id, employee_id, attendance_date,
			attendance_in_time, attendance_out_time,
			in_location, out_location, attendance_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.EmployeeID, record.Date,
		record.ClockIn, record.ClockOut,
		record.ClockInLocation, record.ClockOutLocation, record.Method,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.employee_id = $1 AND a.attendance_date = $2
	`

	var record attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	return &record, nil
}

// UpdateClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET attendance_out_time = $2, out_location = $3
		WHERE attendance_id = $1 AND attendance_out_time IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, clockOut, location)
	if err != nil {
		return fmt.Errorf("update clock-out: %w", err)
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	var closed bool
	err = q.QueryRow(ctx, `SELECT attendance_out_time IS NOT NULL FROM attendance WHERE attendance_id = $1`, id).Scan(&closed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("check clock-out: %w", err)
	}
	if closed {
		return attendance.ErrAlreadyClockedOut
	}
	return attendance.ErrAttendanceNotFound
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.employee_id = $1 AND a.attendance_date >= $2 AND a.attendance_date <= $3
		ORDER BY a.attendance_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var record attendance.Attendance
		if err := scanAttendance(rows, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `, e.name, e.department, e.position
		FROM attendance a
		LEFT JOIN employees e ON a.employee_id = e.employee_id
		WHERE a.attendance_date = $1
		ORDER BY a.attendance_in_time ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var record attendance.Attendance
		if err := scanAttendance(rows, &record,
			&record.EmployeeName,
			&record.EmployeeDepartment,
			&record.EmployeePosition,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

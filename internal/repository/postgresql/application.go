package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `
	ap.application_id, ap.id, ap.employee_id, ap.application_type,
	ap.start_date, ap.end_date, ap.reason, ap.status, ap.created_at
`

const applicationJoinColumns = applicationColumns + `, e.name, e.department, e.position`

func scanApplication(row pgx.Row, dest *application.Application, joined bool) error {
	fields := []any{
		&dest.ID,
		&dest.Seq,
		&dest.EmployeeID,
		&dest.Type,
		&dest.StartDate,
		&dest.EndDate,
		&dest.Reason,
		&dest.Status,
		&dest.CreatedAt,
	}
	if joined {
		fields = append(fields, &dest.EmployeeName, &dest.EmployeeDepartment, &dest.EmployeePosition)
	}
	return row.Scan(fields...)
}

func collectApplications(rows pgx.Rows, joined bool) ([]application.Application, error) {
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		var app application.Application
		if err := scanApplication(rows, &app, joined); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Create implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (
			application_id, employee_id, application_type,
			start_date, end_date, reason, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.EmployeeID, app.Type,
		app.StartDate, app.EndDate, app.Reason, app.Status, app.CreatedAt,
	).Scan(&app.Seq)
	if err != nil {
		return application.Application{}, fmt.Errorf("create application: %w", err)
	}

	return app, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	return r.getOne(ctx, "ap.application_id = $1", id)
}

// GetBySeq implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetBySeq(ctx context.Context, seq int64) (application.Application, error) {
	return r.getOne(ctx, "ap.id = $1", seq)
}

func (r *applicationRepositoryImpl) getOne(ctx context.Context, where string, arg any) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications ap
		LEFT JOIN employees e ON ap.employee_id = e.employee_id
		WHERE %s
	`, applicationJoinColumns, where)

	var app application.Application
	if err := scanApplication(q.QueryRow(ctx, query, arg), &app, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE applications SET status = $2 WHERE application_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return application.ErrApplicationNotFound
	}
	return nil
}

// List implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.From != nil && filter.To != nil {
		baseWhere += fmt.Sprintf(" AND ap.start_date >= $%d AND ap.start_date <= $%d", argIdx, argIdx+1)
		args = append(args, *filter.From, *filter.To)
		argIdx += 2
	}

	if filter.Query != "" {
		baseWhere += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.department ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications ap
		LEFT JOIN employees e ON ap.employee_id = e.employee_id
		%s
		ORDER BY ap.created_at DESC
	`, applicationJoinColumns, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return collectApplications(rows, true)
}

// ListByEmployeeSince implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `
		FROM applications ap
		WHERE ap.employee_id = $1 AND ap.created_at >= $2
		ORDER BY ap.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("list recent applications: %w", err)
	}
	return collectApplications(rows, false)
}

// ListByEmployeeAndStatus implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByEmployeeAndStatus(ctx context.Context, employeeID string, status string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `
		FROM applications ap
		WHERE ap.employee_id = $1 AND ap.status = $2
		ORDER BY ap.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, status)
	if err != nil {
		return nil, fmt.Errorf("list applications by status: %w", err)
	}
	return collectApplications(rows, false)
}

// CountByEmployeeSince implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM applications WHERE employee_id = $1 AND created_at >= $2`
	args := []any{employeeID, since}
	if len(types) > 0 {
		query += ` AND application_type = ANY($3)`
		args = append(args, types)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}

// ListOverlapping implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListOverlapping(ctx context.Context, from, to time.Time) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationJoinColumns + `
		FROM applications ap
		LEFT JOIN employees e ON ap.employee_id = e.employee_id
		WHERE ap.start_date <= $2 AND ap.end_date >= $1
		ORDER BY ap.start_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list overlapping applications: %w", err)
	}
	return collectApplications(rows, true)
}

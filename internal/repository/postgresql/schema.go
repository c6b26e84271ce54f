package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id      TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		password         TEXT,
		department       TEXT,
		position         TEXT,
		email            TEXT,
		phone_number     TEXT,
		hire_date        DATE,
		status           TEXT NOT NULL DEFAULT '재직',
		total_leave_days DOUBLE PRECISION DEFAULT 15.0
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		attendance_id       TEXT PRIMARY KEY,
		employee_id         TEXT NOT NULL,
		attendance_date     DATE NOT NULL,
		attendance_in_time  TIMESTAMP,
		attendance_out_time TIMESTAMP,
		in_location         TEXT,
		out_location        TEXT,
		attendance_method   TEXT,
		CONSTRAINT attendance_employee_date_key UNIQUE (employee_id, attendance_date)
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id               BIGSERIAL UNIQUE,
		application_id   TEXT PRIMARY KEY,
		employee_id      TEXT NOT NULL,
		application_type TEXT NOT NULL,
		start_date       TIMESTAMP NOT NULL,
		end_date         TIMESTAMP NOT NULL,
		reason           TEXT,
		status           TEXT NOT NULL DEFAULT '대기',
		created_at       TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_employee_created ON applications (employee_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_start_date ON applications (start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (attendance_date)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS applications`,
	`DROP TABLE IF EXISTS attendance`,
	`DROP TABLE IF EXISTS employees`,
}

// Migrate creates the tables and indexes when they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, db)
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(txCtx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		slog.Info("schema migrated", "statements", len(schemaStatements))
		return nil
	})
}

// Reset drops every table and recreates the schema in one transaction.
func Reset(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, db)
		for _, stmt := range dropStatements {
			if _, err := q.Exec(txCtx, stmt); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		}
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(txCtx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		slog.Warn("database reset", "tables", len(dropStatements))
		return nil
	})
}

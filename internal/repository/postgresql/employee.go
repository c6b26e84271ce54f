package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, password, department, position, email,
			   phone_number, hire_date, status, total_leave_days
		FROM employees
		WHERE employee_id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.PasswordHash,
		&e.Department,
		&e.Position,
		&e.Email,
		&e.PhoneNumber,
		&e.HireDate,
		&e.Status,
		&e.TotalLeaveDays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}

	query := `
		INSERT INTO employees (
			employee_id, name, password, department, position, email,
			phone_number, hire_date, status, total_leave_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.PasswordHash,
		newEmployee.Department, newEmployee.Position, newEmployee.Email,
		newEmployee.PhoneNumber, newEmployee.HireDate, newEmployee.Status,
		newEmployee.TotalLeaveDays,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return newEmployee, nil
}

package memory

import (
	"context"

	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	s *Store
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[newEmployee.ID]; ok {
		return employee.Employee{}, employee.ErrEmployeeExists
	}
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	r.s.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

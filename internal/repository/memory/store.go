// Package memory keeps employees, attendance and applications in process
// memory. It backs the service tests and `serve --store=memory`.
package memory

import (
	"sync"

	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
)

// Store is shared by the repositories so applications and attendance can be
// joined with employees the way the SQL store does.
type Store struct {
	mu           sync.RWMutex
	employees    map[string]employee.Employee
	attendance   []attendance.Attendance
	applications []application.Application
	nextSeq      int64
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
	}
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{s}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{s}
}

func (s *Store) Applications() application.ApplicationRepository {
	return &applicationRepository{s}
}

// joinEmployee returns name, department and position pointers, all nil when
// the employee is unknown. Callers hold s.mu.
func (s *Store) joinEmployee(id string) (*string, *string, *string) {
	e, ok := s.employees[id]
	if !ok {
		return nil, nil, nil
	}
	name := e.Name
	return &name, e.Department, e.Position
}

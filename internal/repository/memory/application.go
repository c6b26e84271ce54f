package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

type applicationRepository struct {
	s *Store
}

func (r *applicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextSeq++
	app.Seq = r.s.nextSeq
	r.s.applications = append(r.s.applications, app)
	return app, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	return r.find(func(a application.Application) bool { return a.ID == id })
}

func (r *applicationRepository) GetBySeq(ctx context.Context, seq int64) (application.Application, error) {
	return r.find(func(a application.Application) bool { return a.Seq == seq })
}

func (r *applicationRepository) find(match func(application.Application) bool) (application.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.applications {
		if match(a) {
			return r.joined(a), nil
		}
	}
	return application.Application{}, application.ErrApplicationNotFound
}

func (r *applicationRepository) joined(a application.Application) application.Application {
	a.EmployeeName, a.EmployeeDepartment, a.EmployeePosition = r.s.joinEmployee(a.EmployeeID)
	return a
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.applications {
		if r.s.applications[i].ID == id {
			r.s.applications[i].Status = status
			return nil
		}
	}
	return application.ErrApplicationNotFound
}

func (r *applicationRepository) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	return r.collect(func(a application.Application) bool {
		if filter.From != nil && filter.To != nil {
			if a.StartDate.Before(*filter.From) || a.StartDate.After(*filter.To) {
				return false
			}
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			name := strings.ToLower(deref(a.EmployeeName))
			dept := strings.ToLower(deref(a.EmployeeDepartment))
			if !strings.Contains(name, q) && !strings.Contains(dept, q) {
				return false
			}
		}
		return true
	}, newestFirst), nil
}

func (r *applicationRepository) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]application.Application, error) {
	return r.collect(func(a application.Application) bool {
		return a.EmployeeID == employeeID && !a.CreatedAt.Before(since)
	}, newestFirst), nil
}

func (r *applicationRepository) ListByEmployeeAndStatus(ctx context.Context, employeeID string, status string) ([]application.Application, error) {
	return r.collect(func(a application.Application) bool {
		return a.EmployeeID == employeeID && a.Status == status
	}, earliestStart), nil
}

func (r *applicationRepository) CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int, error) {
	apps := r.collect(func(a application.Application) bool {
		if a.EmployeeID != employeeID || a.CreatedAt.Before(since) {
			return false
		}
		return len(types) == 0 || validator.IsInSlice(a.Type, types)
	}, newestFirst)
	return len(apps), nil
}

func (r *applicationRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]application.Application, error) {
	return r.collect(func(a application.Application) bool {
		return !a.StartDate.After(to) && !a.EndDate.Before(from)
	}, earliestStart), nil
}

func (r *applicationRepository) collect(keep func(application.Application) bool, less func(a, b application.Application) bool) []application.Application {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var apps []application.Application
	for _, a := range r.s.applications {
		a = r.joined(a)
		if keep(a) {
			apps = append(apps, a)
		}
	}
	sort.SliceStable(apps, func(i, j int) bool { return less(apps[i], apps[j]) })
	return apps
}

func newestFirst(a, b application.Application) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func earliestStart(a, b application.Application) bool {
	return a.StartDate.Before(b.StartDate)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

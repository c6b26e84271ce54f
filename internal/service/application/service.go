package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/pkg/metrics"
	"github.com/hrsvr/hr-backend-go/internal/pkg/utils"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
	"github.com/hrsvr/hr-backend-go/internal/pkg/worktime"
)

const (
	idPrefix = "APP-"

	halfDayDuration = "04:00"
	itemLeave       = "휴가"
	itemLeaveCancel = "휴가취소"
)

type ApplicationServiceImpl struct {
	application.ApplicationRepository
	policy  config.PolicyConfig
	metrics *metrics.MetricsCollection
	now     func() time.Time
}

func NewApplicationService(
	applicationRepository application.ApplicationRepository,
	policy config.PolicyConfig,
	mc *metrics.MetricsCollection,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		ApplicationRepository: applicationRepository,
		policy:                policy,
		metrics:               mc,
		now:                   time.Now,
	}
}

func (s *ApplicationServiceImpl) localNow() time.Time {
	return s.now().In(s.policy.Loc()).Truncate(time.Second)
}

// Submit implements application.ApplicationService.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, req application.SubmitRequest) (application.SubmitResponse, error) {
	if err := req.Validate(s.policy.Loc()); err != nil {
		return application.SubmitResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return application.SubmitResponse{}, fmt.Errorf("failed to generate application id: %w", err)
	}

	app := application.Application{
		ID:         idPrefix + id.String(),
		EmployeeID: req.EmployeeID,
		Type:       req.ApplicationType,
		StartDate:  req.Start,
		EndDate:    req.End,
		Status:     application.StatusPending,
		CreatedAt:  s.localNow(),
	}
	if req.Reason != "" {
		reason := req.Reason
		app.Reason = &reason
	}

	created, err := s.ApplicationRepository.Create(ctx, app)
	if err != nil {
		return application.SubmitResponse{}, fmt.Errorf("failed to create application: %w", err)
	}

	category := application.Categorize(created.Type)
	s.metrics.ApplicationSubmitted(string(category))
	slog.Info("application submitted",
		"application_id", created.ID,
		"employee_id", created.EmployeeID,
		"category", category,
	)

	return application.SubmitResponse{
		Message:       "신청이 완료되었습니다.",
		ApplicationID: created.ID,
	}, nil
}

// lookup finds an application by id, then by surrogate key for numeric ids.
func (s *ApplicationServiceImpl) lookup(ctx context.Context, id string) (application.Application, error) {
	app, err := s.ApplicationRepository.GetByID(ctx, id)
	if err == nil {
		return app, nil
	}
	if !errors.Is(err, application.ErrApplicationNotFound) || !validator.IsNumeric(id) {
		return application.Application{}, err
	}

	seq, parseErr := strconv.ParseInt(id, 10, 64)
	if parseErr != nil {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return s.ApplicationRepository.GetBySeq(ctx, seq)
}

// UpdateStatus implements application.ApplicationService.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, req application.UpdateStatusRequest) (application.UpdateStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return application.UpdateStatusResponse{}, err
	}

	app, err := s.lookup(ctx, req.ID)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return application.UpdateStatusResponse{}, err
		}
		return application.UpdateStatusResponse{}, fmt.Errorf("failed to get application: %w", err)
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, app.ID, req.Status); err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return application.UpdateStatusResponse{}, err
		}
		return application.UpdateStatusResponse{}, fmt.Errorf("failed to update application status: %w", err)
	}

	s.metrics.StatusUpdated(req.Status)
	slog.Info("application status updated", "application_id", app.ID, "from", app.Status, "to", req.Status)

	return application.UpdateStatusResponse{
		Message: fmt.Sprintf("상태가 '%s'(으)로 변경되었습니다.", req.Status),
	}, nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context, req application.ListRequest) ([]application.ApplicationRow, error) {
	filter, err := req.ToFilter(s.policy.Loc())
	if err != nil {
		return nil, err
	}

	apps, err := s.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	rows := make([]application.ApplicationRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, toRow(app))
	}
	return rows, nil
}

// Detail implements application.ApplicationService.
func (s *ApplicationServiceImpl) Detail(ctx context.Context, id string) (application.ApplicationRow, error) {
	app, err := s.lookup(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return application.ApplicationRow{}, err
		}
		return application.ApplicationRow{}, fmt.Errorf("failed to get application: %w", err)
	}
	return toRow(app), nil
}

// All implements application.ApplicationService.
func (s *ApplicationServiceImpl) All(ctx context.Context) ([]application.ApplicationRecord, error) {
	apps, err := s.ApplicationRepository.List(ctx, application.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	records := make([]application.ApplicationRecord, 0, len(apps))
	for _, app := range apps {
		records = append(records, application.ApplicationRecord{
			ApplicationID:   app.ID,
			EmployeeID:      app.EmployeeID,
			ApplicationType: app.Type,
			StartDate:       app.StartDate,
			EndDate:         app.EndDate,
			Reason:          app.Reason,
			Status:          app.Status,
			CreatedAt:       app.CreatedAt,
		})
	}
	return records, nil
}

// Recent implements application.ApplicationService.
func (s *ApplicationServiceImpl) Recent(ctx context.Context, employeeID string) ([]application.RecentApplication, error) {
	since := s.localNow().AddDate(0, 0, -s.policy.RecentApplicationDays)

	apps, err := s.ApplicationRepository.ListByEmployeeSince(ctx, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}

	recent := make([]application.RecentApplication, 0, len(apps))
	for _, app := range apps {
		recent = append(recent, application.RecentApplication{
			Type:        app.Type,
			StartDate:   app.StartDate.Format("2006.01.02"),
			EndDate:     app.EndDate.Format("2006.01.02"),
			Duration:    "-",
			RequestDate: app.CreatedAt.Format("2006.01.02"),
			Status:      app.Status,
		})
	}
	return recent, nil
}

// LeaveSchedule implements application.ApplicationService.
func (s *ApplicationServiceImpl) LeaveSchedule(ctx context.Context, req application.ScheduleRequest) ([]application.ScheduleItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := s.scheduleWindow(req)

	apps, err := s.ApplicationRepository.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave schedule: %w", err)
	}

	items := make([]application.ScheduleItem, 0, len(apps))
	for _, app := range apps {
		if !application.IsLeaveLike(app.Type) {
			continue
		}

		row := toRow(app)
		item := application.ScheduleItem{
			ID:        row.ID,
			Date:      row.Date,
			Name:      row.Name,
			Dept:      row.Dept,
			Rank:      row.Rank,
			Item:      itemLeave,
			Type:      app.Type,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Duration:  scheduleDuration(app),
			Status:    row.Status,
			RawDate:   app.StartDate,
		}
		if application.IsCancellation(app.Type) {
			item.Item = itemLeaveCancel
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RawDate.Before(items[j].RawDate)
	})
	return items, nil
}

// scheduleWindow resolves an explicit start/end range, else year/month, else
// the current month. Validate has already checked the formats.
func (s *ApplicationServiceImpl) scheduleWindow(req application.ScheduleRequest) (time.Time, time.Time) {
	loc := s.policy.Loc()

	if req.Start != "" && req.End != "" {
		from, _ := validator.ParseDateIn(req.Start, loc)
		to, _ := validator.ParseDateIn(req.End, loc)
		return from, utils.EndOfDay(to)
	}
	if req.Year != 0 && req.Month != 0 {
		return utils.MonthRange(req.Year, time.Month(req.Month), loc)
	}
	now := s.localNow()
	return utils.MonthRange(now.Year(), now.Month(), loc)
}

func scheduleDuration(app application.Application) string {
	switch {
	case application.IsHalfDay(app.Type):
		return halfDayDuration
	case app.Duration() >= 8*time.Hour:
		return ""
	default:
		return worktime.FormatHHMM(app.Duration())
	}
}

func toRow(app application.Application) application.ApplicationRow {
	row := application.ApplicationRow{
		ID:        app.ID,
		Date:      utils.ShortKoreanDate(app.StartDate),
		Name:      app.EmployeeID,
		Dept:      "-",
		Rank:      "-",
		Category:  application.Categorize(app.Type),
		Type:      app.Type,
		StartTime: app.StartDate.Format("15:04"),
		EndTime:   app.EndDate.Format("15:04"),
		Duration:  worktime.FormatHHMM(app.Duration()),
		Status:    application.DisplayStatus(app.Status),
	}
	if app.EmployeeName != nil {
		row.Name = *app.EmployeeName
		row.Dept = utils.OrDash(app.EmployeeDepartment)
		row.Rank = utils.OrDash(app.EmployeePosition)
	}
	return row
}

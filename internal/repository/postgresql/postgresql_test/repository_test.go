package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, repo employee.EmployeeRepository, id, name, dept string) {
	t.Helper()
	days := 15.0
	_, err := repo.Create(context.Background(), employee.Employee{
		ID:             id,
		Name:           name,
		PasswordHash:   strPtr("hash"),
		Department:     strPtr(dept),
		Position:       strPtr("사원"),
		Status:         employee.StatusActive,
		TotalLeaveDays: &days,
	})
	require.NoError(t, err)
}

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	seedEmployee(t, repo, "E001", "김철수", "개발팀")

	t.Run("GetByID", func(t *testing.T) {
		emp, err := repo.GetByID(ctx, "E001")
		require.NoError(t, err)
		assert.Equal(t, "김철수", emp.Name)
		assert.Equal(t, 15.0, emp.LeaveEntitlement(0))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "E999")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{ID: "E001", Name: "중복", Status: employee.StatusActive})
		assert.ErrorIs(t, err, employee.ErrEmployeeExists)
	})
}

func TestAttendanceRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	empRepo := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	seedEmployee(t, empRepo, "E001", "김철수", "개발팀")

	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	in := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	method := attendance.MethodPC

	_, err := repo.Create(ctx, attendance.Attendance{
		ID:              "ATT-1",
		EmployeeID:      "E001",
		Date:            day,
		ClockIn:         &in,
		ClockInLocation: strPtr("서울특별시 강남구"),
		Method:          &method,
	})
	require.NoError(t, err)

	t.Run("SecondClockInSameDay", func(t *testing.T) {
		_, err := repo.Create(ctx, attendance.Attendance{ID: "ATT-2", EmployeeID: "E001", Date: day, ClockIn: &in})
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	})

	t.Run("GetByEmployeeAndDate", func(t *testing.T) {
		rec, err := repo.GetByEmployeeAndDate(ctx, "E001", day)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Nil(t, rec.ClockOut)

		missing, err := repo.GetByEmployeeAndDate(ctx, "E001", day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("UpdateClockOut", func(t *testing.T) {
		out := time.Date(2024, 3, 6, 19, 30, 0, 0, time.UTC)
		require.NoError(t, repo.UpdateClockOut(ctx, "ATT-1", out, "서울특별시 강남구"))

		rec, err := repo.GetByEmployeeAndDate(ctx, "E001", day)
		require.NoError(t, err)
		require.NotNil(t, rec.ClockOut)
		assert.True(t, out.Equal(*rec.ClockOut))

		later := out.Add(time.Hour)
		assert.ErrorIs(t, repo.UpdateClockOut(ctx, "ATT-1", later, "집"), attendance.ErrAlreadyClockedOut)
		rec, err = repo.GetByEmployeeAndDate(ctx, "E001", day)
		require.NoError(t, err)
		assert.True(t, out.Equal(*rec.ClockOut))

		assert.ErrorIs(t, repo.UpdateClockOut(ctx, "ATT-missing", out, ""), attendance.ErrAttendanceNotFound)
	})

	t.Run("ListByEmployeeAndDate", func(t *testing.T) {
		records, err := repo.ListByEmployee(ctx, "E001", day.AddDate(0, 0, -2), day.AddDate(0, 0, 4))
		require.NoError(t, err)
		assert.Len(t, records, 1)

		rows, err := repo.ListByDate(ctx, day)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].EmployeeName)
		assert.Equal(t, "김철수", *rows[0].EmployeeName)
	})
}

func TestApplicationRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	empRepo := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewApplicationRepository(setup.DB)
	ctx := context.Background()

	seedEmployee(t, empRepo, "E001", "김철수", "개발팀")
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	apps := []application.Application{
		{
			ID:         "APP-1",
			EmployeeID: "E001",
			Type:       application.TypeAnnualLeave,
			StartDate:  time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
			Reason:     strPtr("여행"),
			Status:     application.StatusPending,
			CreatedAt:  created,
		},
		{
			ID:         "APP-2",
			EmployeeID: "E001",
			Type:       application.TypeOuting,
			StartDate:  time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 3, 20, 16, 0, 0, 0, time.UTC),
			Status:     application.StatusPending,
			CreatedAt:  created.Add(time.Hour),
		},
		{
			ID:         "APP-3",
			EmployeeID: "E404",
			Type:       application.TypeBusinessTrip,
			StartDate:  time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			Status:     application.StatusPending,
			CreatedAt:  created.Add(2 * time.Hour),
		},
	}
	for i, app := range apps {
		saved, err := repo.Create(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), saved.Seq)
	}

	t.Run("GetByIDAndSeq", func(t *testing.T) {
		app, err := repo.GetByID(ctx, "APP-1")
		require.NoError(t, err)
		require.NotNil(t, app.EmployeeName)
		assert.Equal(t, "김철수", *app.EmployeeName)

		bySeq, err := repo.GetBySeq(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "APP-2", bySeq.ID)

		orphan, err := repo.GetByID(ctx, "APP-3")
		require.NoError(t, err)
		assert.Nil(t, orphan.EmployeeName)

		_, err = repo.GetByID(ctx, "APP-404")
		assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, "APP-1", application.StatusApproved))

		approved, err := repo.ListByEmployeeAndStatus(ctx, "E001", application.StatusApproved)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, "APP-1", approved[0].ID)
	})

	t.Run("List", func(t *testing.T) {
		all, err := repo.List(ctx, application.ListFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "APP-3", all[0].ID)

		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
		march, err := repo.List(ctx, application.ListFilter{From: &from, To: &to, Query: "개발"})
		require.NoError(t, err)
		assert.Len(t, march, 2)
	})

	t.Run("Counts", func(t *testing.T) {
		count, err := repo.CountByEmployeeSince(ctx, "E001", created, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		outings, err := repo.CountByEmployeeSince(ctx, "E001", created, application.OutingTypes)
		require.NoError(t, err)
		assert.Equal(t, 1, outings)

		recent, err := repo.ListByEmployeeSince(ctx, "E001", created.Add(30*time.Minute))
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, "APP-2", recent[0].ID)
	})

	t.Run("ListOverlapping", func(t *testing.T) {
		from := time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
		apps, err := repo.ListOverlapping(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.Equal(t, "APP-1", apps[0].ID)
	})
}

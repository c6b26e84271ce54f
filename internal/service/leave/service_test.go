package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/leave"
	"github.com/hrsvr/hr-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewLeaveService(store.Applications(), store.Employees(), config.DefaultPolicy())

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	apps := []application.Application{
		{ID: "APP-1", Type: application.TypeAnnualLeave, StartDate: day(2), EndDate: day(3), Status: application.StatusApproved},
		{ID: "APP-2", Type: application.TypeHalfDayPM, StartDate: day(7), EndDate: day(7), Status: application.StatusApproved},
		{ID: "APP-3", Type: application.TypeSickLeave, StartDate: day(9), EndDate: day(9), Status: application.StatusApproved},
		{ID: "APP-4", Type: application.TypeBereavement, StartDate: day(13), EndDate: day(15), Status: application.StatusApproved},
		{ID: "APP-5", Type: application.TypeAnnualLeave, StartDate: day(20), EndDate: day(24), Status: application.StatusPending},
	}
	for _, app := range apps {
		app.EmployeeID = "E001"
		_, err := store.Applications().Create(ctx, app)
		require.NoError(t, err)
	}

	status, err := svc.MyStatus(ctx, "E001")
	require.NoError(t, err)

	assert.Equal(t, 2.5, status.TotalUsedAll)
	require.Len(t, status.Leaves, 4)

	assert.Equal(t, leave.LeaveItem{ID: 1, Name: "연차휴가", TotalDays: 15, UsedDays: 2.5, RemainingDays: 12.5}, status.Leaves[0])
	assert.Equal(t, leave.LeaveItem{ID: 2, Name: "경조사휴가", UsedDays: 3}, status.Leaves[1])
	assert.Equal(t, leave.LeaveItem{ID: 3, Name: "병가휴가", UsedDays: 1}, status.Leaves[2])
	assert.Equal(t, leave.LeaveItem{ID: 4, Name: "공가 휴가"}, status.Leaves[3])
}

package employee

import (
	"context"
	"testing"
	"time"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDetail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	policy := config.DefaultPolicy()
	policy.Location = time.UTC
	svc := NewEmployeeService(store.Employees(), policy).(*EmployeeServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC) }

	dept, email := "개발팀", "kim@example.com"
	hired := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	_, err := store.Employees().Create(ctx, employee.Employee{
		ID:         "E001",
		Name:       "김철수",
		Department: &dept,
		Email:      &email,
		HireDate:   &hired,
	})
	require.NoError(t, err)

	t.Run("existing employee", func(t *testing.T) {
		detail, err := svc.GetDetail(ctx, "E001")
		require.NoError(t, err)
		assert.Equal(t, employee.EmployeeDetailResponse{
			EmployeeID:     "E001",
			Name:           "김철수",
			Department:     "개발팀",
			Position:       "-",
			Email:          "kim@example.com",
			Phone:          "-",
			JoinDate:       "2021-01-04",
			Status:         employee.StatusActive,
			TotalLeaveDays: 15,
		}, detail)
	})

	t.Run("missing employee returns placeholder", func(t *testing.T) {
		detail, err := svc.GetDetail(ctx, "E404")
		require.NoError(t, err)
		assert.Equal(t, "E404", detail.EmployeeID)
		assert.Equal(t, employee.UnknownName, detail.Name)
		assert.Equal(t, "2024-06-03", detail.JoinDate)
		assert.Equal(t, 15.0, detail.TotalLeaveDays)
	})
}

package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		input string
		want  Category
	}{
		{"연차", CategoryLeave},
		{"경조사 휴가", CategoryLeave},
		{"휴가 정정", CategoryLeave},
		{"외근", CategoryOutside},
		{"출장", CategoryBusinessTrip},
		{"연장근무", CategoryOvertime},
		{"휴일 근무", CategoryOvertime},
		{"출퇴근 수정", CategoryCorrection},
		{"기록 정정", CategoryCorrection},
		{"오전 반차", CategoryOther},
		{"외출", CategoryOther},
		{"", CategoryOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Categorize(c.input), c.input)
	}
}

func TestIsLeaveLike(t *testing.T) {
	for _, s := range []string{"연차", "오후 반차", "병가", "경조사 휴가", "휴가취소"} {
		assert.True(t, IsLeaveLike(s), s)
	}
	for _, s := range []string{"출장", "외출", "이석", "연장근무"} {
		assert.False(t, IsLeaveLike(s), s)
	}
}

func TestDisplayStatus(t *testing.T) {
	assert.Equal(t, DisplayApproved, DisplayStatus(StatusApproved))
	assert.Equal(t, StatusPending, DisplayStatus(StatusPending))
	assert.Equal(t, "보류", DisplayStatus("보류"))
}

func TestCalendarDays(t *testing.T) {
	a := Application{
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, a.CalendarDays())

	a.EndDate = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, a.CalendarDays())
}

func TestSubmitRequest_Validate(t *testing.T) {
	req := SubmitRequest{
		EmployeeID:      "E001",
		ApplicationType: "연차",
		StartDate:       "2025-03-10",
		EndDate:         "2025-03-12 18:00",
	}
	require.NoError(t, req.Validate(time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), req.Start)
	assert.Equal(t, time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC), req.End)

	bad := SubmitRequest{EmployeeID: "E001", ApplicationType: "연차", StartDate: "03/10/2025", EndDate: "2025-03-12"}
	err := bad.Validate(time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

func TestListRequest_ToFilter(t *testing.T) {
	req := ListRequest{Start: "2025-03-01", End: "2025-03-31", Query: "개발"}
	filter, err := req.ToFilter(time.UTC)
	require.NoError(t, err)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC), *filter.To)
	assert.Equal(t, "개발", filter.Query)

	onlyStart := ListRequest{Start: "2025-03-01"}
	filter, err = onlyStart.ToFilter(time.UTC)
	require.NoError(t, err)
	assert.Nil(t, filter.From)

	// 2025-03-09 is 23 hours long in New York
	if ny, err := time.LoadLocation("America/New_York"); err == nil {
		dst := ListRequest{Start: "2025-03-09", End: "2025-03-09"}
		filter, err = dst.ToFilter(ny)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 9, 23, 59, 59, 0, ny), *filter.To)
	}

	bad := ListRequest{Start: "2025-3-1", End: "2025-03-31"}
	_, err = bad.ToFilter(time.UTC)
	assert.Error(t, err)
}

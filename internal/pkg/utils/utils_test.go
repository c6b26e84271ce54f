package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyLocation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "-"},
		{"-", "-"},
		{"서울특별시 강남구 테헤란로 123", "서울특별시 강남구"},
		{"경기도 성남시 분당구 정자동 178-1", "성남시 분당구"},
		{"대한민국 세종로 1", "대한민국 세종로 1"},
		{"부산광역시", "부산광역시"},
		{"Remote office", "Remote office"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SimplifyLocation(c.input), c.input)
	}
}

func TestOrDash(t *testing.T) {
	empty := ""
	dept := "개발팀"
	assert.Equal(t, "-", OrDash(nil))
	assert.Equal(t, "-", OrDash(&empty))
	assert.Equal(t, "개발팀", OrDash(&dept))
}

func TestWeekStart(t *testing.T) {
	// 2025-03-12 is a Wednesday
	wed := time.Date(2025, 3, 12, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStart(wed))

	sun := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStart(sun))

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, WeekStart(mon))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 30, DaysIn(2025, time.April))
	assert.Equal(t, 31, DaysIn(2025, time.December))
}

func TestShortKoreanDate(t *testing.T) {
	assert.Equal(t, "3/10(월)", ShortKoreanDate(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "일", KoreanWeekday(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
}

package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var closeAt18 = Clock{Hour: 18}

func at(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name         string
		in, out      time.Time
		wantWork     time.Duration
		wantOvertime time.Duration
	}{
		{"regular day", at(9, 0), at(18, 0), 9 * time.Hour, 0},
		{"leaves early", at(9, 0), at(17, 30), 8*time.Hour + 30*time.Minute, 0},
		{"stays late", at(9, 0), at(20, 15), 11*time.Hour + 15*time.Minute, 2*time.Hour + 15*time.Minute},
		{"starts after close", at(19, 0), at(21, 0), 2 * time.Hour, 2 * time.Hour},
		{"one minute over", at(8, 0), at(18, 1), 10*time.Hour + time.Minute, time.Minute},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Compute(c.in, c.out, closeAt18)
			assert.Equal(t, c.wantWork, res.Work)
			assert.Equal(t, c.wantOvertime, res.Overtime)
		})
	}
}

func TestCompute_OvertimeProperty(t *testing.T) {
	for inHour := 6; inHour <= 22; inHour++ {
		for outHour := inHour; outHour <= 23; outHour++ {
			in, out := at(inHour, 0), at(outHour, 30)
			res := Compute(in, out, closeAt18)

			close := at(18, 0)
			if !out.After(close) {
				assert.Zero(t, res.Overtime)
				continue
			}
			from := in
			if close.After(in) {
				from = close
			}
			assert.Equal(t, out.Sub(from), res.Overtime)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	assert.Equal(t, "00:00", FormatHHMM(0))
	assert.Equal(t, "09:00", FormatHHMM(9*time.Hour))
	assert.Equal(t, "08:59", FormatHHMM(8*time.Hour+59*time.Minute+59*time.Second))
	assert.Equal(t, "48:00", FormatHHMM(48*time.Hour))
	assert.Equal(t, "00:00", FormatHHMM(-time.Hour))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("17:45")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 17, Minute: 45}, c)
	assert.Equal(t, "17:45", c.String())

	_, err = ParseClock("5pm")
	assert.Error(t, err)
}

func TestWholeHours(t *testing.T) {
	assert.Equal(t, int64(7), WholeHours(7*time.Hour+59*time.Minute))
}

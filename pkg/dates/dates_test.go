package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain month addition",
			start:    date(2024, time.March, 15),
			months:   2,
			expected: date(2024, time.May, 15),
		},
		{
			name:     "zero months is identity",
			start:    date(2024, time.March, 15),
			months:   0,
			expected: date(2024, time.March, 15),
		},
		{
			name:     "jan 31 clamps to leap february",
			start:    date(2024, time.January, 31),
			months:   1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "jan 31 clamps to non-leap february",
			start:    date(2023, time.January, 31),
			months:   1,
			expected: date(2023, time.February, 28),
		},
		{
			name:     "crosses year boundary",
			start:    date(2024, time.November, 10),
			months:   3,
			expected: date(2025, time.February, 10),
		},
		{
			name:     "many years out",
			start:    date(2024, time.January, 15),
			months:   600,
			expected: date(2074, time.January, 15),
		},
		{
			name:     "may 31 clamps to june 30",
			start:    date(2024, time.May, 31),
			months:   1,
			expected: date(2024, time.June, 30),
		},
		{
			name:     "negative months",
			start:    date(2024, time.March, 31),
			months:   -1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "negative months across year boundary",
			start:    date(2024, time.February, 10),
			months:   -3,
			expected: date(2023, time.November, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2024-01-05", FormatISO(date(2024, time.January, 5)))
	assert.Equal(t, "2026-12-31", FormatISO(date(2026, time.December, 31)))
}

package dates

import "time"

// AddMonths adds k calendar months to t preserving the day of month. When the
// target month is shorter than the source day, the result clamps to the last
// day of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, k int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + k
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// Go's integer division truncates toward zero; normalize so the
		// month index stays in [0, 11].
		targetYear = year + (totalMonths-11)/12
		targetMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := DaysInMonth(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatISO renders a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

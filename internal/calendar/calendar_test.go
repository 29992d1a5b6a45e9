package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysCoversFullWeeks(t *testing.T) {
	// May 2024 starts on a Wednesday and ends on a Friday, so the grid runs
	// Apr 28 (Sunday) through Jun 1 (Saturday).
	days := Days(date(2024, time.May, 15))

	require.Len(t, days, 35)
	assert.Equal(t, date(2024, time.April, 28), days[0])
	assert.Equal(t, date(2024, time.June, 1), days[len(days)-1])
	assert.Equal(t, time.Sunday, days[0].Weekday())
	assert.Equal(t, time.Saturday, days[len(days)-1].Weekday())

	// Consecutive dates, no gaps
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestDaysGridSizes(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int
	}{
		{date(2015, time.February, 10), 28}, // Feb 2015 starts on Sunday, exactly 4 weeks
		{date(2024, time.May, 1), 35},
		{date(2024, time.June, 30), 42}, // Jun 2024 starts on Saturday
	}
	for _, c := range cases {
		days := Days(c.in)
		assert.Len(t, days, c.want, "grid for %s", c.in.Format(DateKeyLayout))
		assert.Zero(t, len(days)%7)
	}
}

func TestMonthShiftClampsDay(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 29), NextMonth(date(2024, time.January, 31)))
	assert.Equal(t, date(2023, time.February, 28), NextMonth(date(2023, time.January, 31)))
	assert.Equal(t, date(2024, time.February, 29), PreviousMonth(date(2024, time.March, 31)))

	// Plain dates shift without clamping
	assert.Equal(t, date(2024, time.June, 15), NextMonth(date(2024, time.May, 15)))
	assert.Equal(t, date(2024, time.April, 15), PreviousMonth(date(2024, time.May, 15)))
}

func TestMonthShiftRollsYear(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 10), NextMonth(date(2024, time.December, 10)))
	assert.Equal(t, date(2023, time.December, 10), PreviousMonth(date(2024, time.January, 10)))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2024年5月", MonthLabel(date(2024, time.May, 15)))
	assert.Equal(t, "2024年12月", MonthLabel(date(2024, time.December, 1)))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(date(2024, time.May, 1), date(2024, time.May, 31)))
	assert.False(t, SameMonth(date(2024, time.May, 1), date(2024, time.June, 1)))
	assert.False(t, SameMonth(date(2023, time.May, 1), date(2024, time.May, 1)))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2024, time.May, 4)))  // Saturday
	assert.True(t, IsWeekend(date(2024, time.May, 5)))  // Sunday
	assert.False(t, IsWeekend(date(2024, time.May, 7))) // Tuesday
}

func TestDayNamesStartSunday(t *testing.T) {
	require.Len(t, DayNames, 7)
	assert.Equal(t, "日", DayNames[0])
	assert.Equal(t, "土", DayNames[6])
}

func TestIsHolidayNeverPanics(t *testing.T) {
	// Jan 1 is a holiday in the bundled dataset; an ordinary weekday is not.
	assert.True(t, IsHoliday(date(2024, time.January, 1)))
	assert.False(t, IsHoliday(date(2024, time.May, 7)))
}

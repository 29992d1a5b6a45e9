package services

import (
	"testing"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthActivitiesBucketsByDate(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.May, 20), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	// Leading grid day from the previous month still renders
	createActivity(t, db, day(2024, time.April, 29), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	// Outside the visible grid entirely
	createActivity(t, db, day(2024, time.March, 1), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	view, err := MonthActivities(db, day(2024, time.May, 15))
	require.NoError(t, err)

	assert.Equal(t, "2024年5月", view.Label)
	assert.Equal(t, "2024-04-15", view.PreviousMonth)
	assert.Equal(t, "2024-06-15", view.NextMonth)
	assert.Equal(t, []string{"日", "月", "火", "水", "木", "金", "土"}, view.DayNames)
	require.Len(t, view.Days, 35)

	byDate := make(map[string]CalendarDay, len(view.Days))
	for _, d := range view.Days {
		byDate[d.Date] = d
	}

	assert.Len(t, byDate["2024-05-03"].Activities, 2)
	assert.Len(t, byDate["2024-05-20"].Activities, 1)
	assert.Len(t, byDate["2024-04-29"].Activities, 1)
	assert.False(t, byDate["2024-04-29"].InMonth)
	assert.True(t, byDate["2024-05-03"].InMonth)

	// Days with nothing planned carry an empty slice, never null
	require.Contains(t, byDate, "2024-05-07")
	assert.NotNil(t, byDate["2024-05-07"].Activities)
	assert.Empty(t, byDate["2024-05-07"].Activities)

	// The March activity is invisible
	_, ok := byDate["2024-03-01"]
	assert.False(t, ok)

	// May 3 is Constitution Memorial Day
	assert.True(t, byDate["2024-05-03"].Holiday)
	assert.True(t, byDate["2024-05-04"].Weekend)
	assert.False(t, byDate["2024-05-07"].Weekend)
}

func TestMonthActivitiesEmptyMonth(t *testing.T) {
	db := newTestDB(t)
	newActivityFixture(t, db)

	view, err := MonthActivities(db, day(2024, time.February, 10))
	require.NoError(t, err)
	require.NotEmpty(t, view.Days)
	for _, d := range view.Days {
		assert.NotNil(t, d.Activities)
		assert.Empty(t, d.Activities)
	}
}

func TestWeekRangeStartsMonday(t *testing.T) {
	// Wednesday
	start, end := weekRange(day(2024, time.May, 15))
	assert.Equal(t, day(2024, time.May, 13), start)
	assert.Equal(t, day(2024, time.May, 19), end)

	// Sunday belongs to the week that started the previous Monday
	start, end = weekRange(day(2024, time.May, 19))
	assert.Equal(t, day(2024, time.May, 13), start)
	assert.Equal(t, day(2024, time.May, 19), end)

	// Monday starts its own week
	start, _ = weekRange(day(2024, time.May, 13))
	assert.Equal(t, day(2024, time.May, 13), start)
}

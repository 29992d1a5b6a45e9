package services

import (
	"testing"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	createSupporter(t, db, "応募中の人", models.SupporterStatusApplicationReceived, nil, nil)
	createServiceUser(t, db, "二人目", "東区")

	// Wednesday May 15 2024; its Monday-start week runs May 13-19
	now := day(2024, time.May, 15)
	todays := createActivity(t, db, now, fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	inWeek := createActivity(t, db, day(2024, time.May, 17), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.May, 25), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	stats := GetDashboardStats(db, zap.NewNop(), now)

	assert.Equal(t, int64(2), stats.TotalSupporters)
	assert.Equal(t, int64(1), stats.RegisteredSupporters)
	assert.Equal(t, int64(2), stats.TotalServiceUsers)
	assert.Equal(t, int64(3), stats.TotalActivities)

	require.Len(t, stats.TodayActivities, 1)
	assert.Equal(t, todays.ID, stats.TodayActivities[0].ID)

	require.Len(t, stats.WeekActivities, 2)
	assert.Equal(t, todays.ID, stats.WeekActivities[0].ID)
	assert.Equal(t, inWeek.ID, stats.WeekActivities[1].ID)
}

func TestGetDashboardStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	seedStatuses(t, db)

	stats := GetDashboardStats(db, zap.NewNop(), day(2024, time.May, 15))

	assert.Zero(t, stats.TotalSupporters)
	assert.Zero(t, stats.TotalActivities)
	assert.NotNil(t, stats.TodayActivities, "previews are empty slices, never null")
	assert.NotNil(t, stats.WeekActivities)
}

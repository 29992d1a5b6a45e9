package services

import (
	"testing"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type activityFixture struct {
	statuses  map[string]models.ActivityStatus
	skill     models.Skill
	slot      models.TimeSlot
	supporter models.Supporter
	user      models.ServiceUser
}

func newActivityFixture(t *testing.T, db *gorm.DB) activityFixture {
	t.Helper()
	statuses := seedStatuses(t, db)
	skill := createSkill(t, db, "家事援助")
	slot := createSlot(t, db, "金曜午後", 5, "afternoon")
	return activityFixture{
		statuses:  statuses,
		skill:     skill,
		slot:      slot,
		supporter: createSupporter(t, db, "山本太郎", models.SupporterStatusRegistered, []models.Skill{skill}, []models.TimeSlot{slot}),
		user:      createServiceUser(t, db, "伊藤文子", "西区"),
	}
}

func TestListActivitiesDateRange(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	createActivity(t, db, day(2024, time.April, 30), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	inRange := createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.June, 1), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	activities, err := ListActivities(db, ActivityFilters{DateFrom: "2024-05-01", DateTo: "2024-05-31"})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, inRange.ID, activities[0].ID)

	// Bounds are inclusive
	activities, err = ListActivities(db, ActivityFilters{DateFrom: "2024-05-03", DateTo: "2024-05-03"})
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestListActivitiesAllSentinel(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.May, 10), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	// "all" behaves exactly like no filter
	activities, err := ListActivities(db, ActivityFilters{Supporter: FilterAll, ServiceUser: FilterAll, Status: FilterAll})
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	activities, err = ListActivities(db, ActivityFilters{Status: fx.statuses[models.ActivityStatusCompleted].ID})
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestListActivitiesRelatedNameSearch(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	otherSkill := createSkill(t, db, "外出支援")
	otherUser := createServiceUser(t, db, "加藤みどり", "北区")
	target := createActivity(t, db, day(2024, time.May, 3), fx.supporter, otherUser, otherSkill, fx.slot, scheduled)
	createActivity(t, db, day(2024, time.May, 4), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	// Search spans supporter, service user, and skill names
	activities, err := ListActivities(db, ActivityFilters{Search: "加藤"})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, target.ID, activities[0].ID)

	activities, err = ListActivities(db, ActivityFilters{Search: "外出"})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, target.ID, activities[0].ID)

	// The supporter matches both rows
	activities, err = ListActivities(db, ActivityFilters{Search: "山本"})
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	// No match yields empty, not everything
	activities, err = ListActivities(db, ActivityFilters{Search: "存在しない"})
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestListActivitiesOrder(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)
	scheduled := fx.statuses[models.ActivityStatusScheduled]

	older := createActivity(t, db, day(2024, time.May, 1), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)
	newer := createActivity(t, db, day(2024, time.May, 20), fx.supporter, fx.user, fx.skill, fx.slot, scheduled)

	activities, err := ListActivities(db, ActivityFilters{})
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, newer.ID, activities[0].ID, "newest date first")
	assert.Equal(t, older.ID, activities[1].ID)
}

func TestCompleteActivityAppendsReport(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)

	activity := models.Activity{
		ActivityDate:  toDate(day(2024, time.May, 3)),
		Notes:         "事前のメモ",
		SupporterID:   fx.supporter.ID,
		ServiceUserID: fx.user.ID,
		SkillID:       fx.skill.ID,
		TimeSlotID:    fx.slot.ID,
		StatusID:      fx.statuses[models.ActivityStatusScheduled].ID,
	}
	require.NoError(t, db.Omit("Supporter", "ServiceUser", "Skill", "TimeSlot", "Status").Create(&activity).Error)

	completed, err := CompleteActivity(db, activity.ID, "買い物に同行した")
	require.NoError(t, err)
	assert.Equal(t, models.ActivityStatusCompleted, completed.Status.Name)
	assert.Equal(t, "事前のメモ\n\n【活動報告】\n買い物に同行した", completed.Notes)

	// Completing again appends another report block
	completed, err = CompleteActivity(db, activity.ID, "追加の報告")
	require.NoError(t, err)
	assert.Contains(t, completed.Notes, "【活動報告】\n買い物に同行した")
	assert.Contains(t, completed.Notes, "【活動報告】\n追加の報告")
}

func TestCompleteActivityWithoutPriorNotes(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)

	activity := createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, fx.statuses[models.ActivityStatusScheduled])

	completed, err := CompleteActivity(db, activity.ID, "完了")
	require.NoError(t, err)
	assert.Equal(t, "【活動報告】\n完了", completed.Notes, "no leading blank block when notes were empty")
}

func TestCompleteActivityMissingStatusRow(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)

	activity := createActivity(t, db, day(2024, time.May, 3), fx.supporter, fx.user, fx.skill, fx.slot, fx.statuses[models.ActivityStatusScheduled])
	require.NoError(t, db.Where("name = ?", models.ActivityStatusCompleted).Delete(&models.ActivityStatus{}).Error)

	_, err := CompleteActivity(db, activity.ID, "報告")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed status is not registered")
}

func TestCompleteActivityNotFound(t *testing.T) {
	db := newTestDB(t)
	newActivityFixture(t, db)

	_, err := CompleteActivity(db, "missing", "報告")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateActivityRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	fx := newActivityFixture(t, db)

	_, err := CreateActivity(db, ActivityInput{
		SupporterID:   fx.supporter.ID,
		ServiceUserID: fx.user.ID,
		SkillID:       fx.skill.ID,
		TimeSlotID:    fx.slot.ID,
		StatusID:      fx.statuses[models.ActivityStatusScheduled].ID,
		ActivityDate:  "03/05/2024",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid activity_date")
}

func TestDeleteActivityNotFound(t *testing.T) {
	db := newTestDB(t)
	newActivityFixture(t, db)

	_, err := DeleteActivity(db, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

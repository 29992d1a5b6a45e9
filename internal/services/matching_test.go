package services

import (
	"testing"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSupportersRequiresEveryCriterion(t *testing.T) {
	db := newTestDB(t)
	seedStatuses(t, db)

	cooking := createSkill(t, db, "調理")
	shopping := createSkill(t, db, "買い物")
	monAM := createSlot(t, db, "月曜午前", 1, "morning")
	tuePM := createSlot(t, db, "火曜午後", 2, "afternoon")

	both := createSupporter(t, db, "両方できる", models.SupporterStatusRegistered,
		[]models.Skill{cooking, shopping}, []models.TimeSlot{monAM, tuePM})
	createSupporter(t, db, "調理のみ", models.SupporterStatusRegistered,
		[]models.Skill{cooking}, []models.TimeSlot{monAM, tuePM})
	createSupporter(t, db, "時間帯不足", models.SupporterStatusRegistered,
		[]models.Skill{cooking, shopping}, []models.TimeSlot{monAM})

	matched, err := MatchSupporters(db, []string{cooking.ID, shopping.ID}, []string{monAM.ID, tuePM.ID})
	require.NoError(t, err)
	require.Len(t, matched, 1, "only the superset supporter satisfies every criterion")
	assert.Equal(t, both.ID, matched[0].ID)
}

func TestMatchSupportersEmptyCriteria(t *testing.T) {
	db := newTestDB(t)
	seedStatuses(t, db)

	skill := createSkill(t, db, "調理")
	slot := createSlot(t, db, "月曜午前", 1, "morning")
	createSupporter(t, db, "登録済み", models.SupporterStatusRegistered,
		[]models.Skill{skill}, []models.TimeSlot{slot})

	matched, err := MatchSupporters(db, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, matched, "no criteria yield an empty result, not the full roster")
}

func TestMatchSupportersEligibilityStatuses(t *testing.T) {
	db := newTestDB(t)
	seedStatuses(t, db)

	skill := createSkill(t, db, "見守り")

	createSupporter(t, db, "A応募中", models.SupporterStatusApplicationReceived, []models.Skill{skill}, nil)
	interviewed := createSupporter(t, db, "B面談済み", models.SupporterStatusInterviewed, []models.Skill{skill}, nil)
	registered := createSupporter(t, db, "C登録済み", models.SupporterStatusRegistered, []models.Skill{skill}, nil)
	createSupporter(t, db, "D休止中", models.SupporterStatusSuspended, []models.Skill{skill}, nil)

	matched, err := MatchSupporters(db, []string{skill.ID}, nil)
	require.NoError(t, err)
	require.Len(t, matched, 2)

	// Name order
	assert.Equal(t, interviewed.ID, matched[0].ID)
	assert.Equal(t, registered.ID, matched[1].ID)
}

func TestMatchSupportersCompletedCounts(t *testing.T) {
	db := newTestDB(t)
	statuses := seedStatuses(t, db)

	skill := createSkill(t, db, "送迎")
	slot := createSlot(t, db, "水曜午前", 3, "morning")
	supporter := createSupporter(t, db, "運転手", models.SupporterStatusRegistered,
		[]models.Skill{skill}, []models.TimeSlot{slot})
	user := createServiceUser(t, db, "利用者", "東区")

	createActivity(t, db, day(2024, time.May, 1), supporter, user, skill, slot, statuses[models.ActivityStatusCompleted])
	createActivity(t, db, day(2024, time.May, 8), supporter, user, skill, slot, statuses[models.ActivityStatusCompleted])
	// Scheduled and cancelled activities never count
	createActivity(t, db, day(2024, time.May, 15), supporter, user, skill, slot, statuses[models.ActivityStatusScheduled])
	createActivity(t, db, day(2024, time.May, 22), supporter, user, skill, slot, statuses[models.ActivityStatusCancelled])

	matched, err := MatchSupporters(db, []string{skill.ID}, nil)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, int64(2), matched[0].CompletedActivities)
}

func TestMatchSupportersMissingCompletedStatus(t *testing.T) {
	db := newTestDB(t)
	// No statuses seeded at all

	skill := createSkill(t, db, "掃除")
	createSupporter(t, db, "名前", models.SupporterStatusRegistered, []models.Skill{skill}, nil)

	matched, err := MatchSupporters(db, []string{skill.ID}, nil)
	require.NoError(t, err, "a missing completed status must not fail the search")
	require.Len(t, matched, 1)
	assert.Zero(t, matched[0].CompletedActivities)
}

func TestMatchSupportersDeduplicatesCriteria(t *testing.T) {
	db := newTestDB(t)
	seedStatuses(t, db)

	skill := createSkill(t, db, "傾聴")
	supporter := createSupporter(t, db, "名前", models.SupporterStatusRegistered, []models.Skill{skill}, nil)

	matched, err := MatchSupporters(db, []string{skill.ID, skill.ID, ""}, nil)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, supporter.ID, matched[0].ID)
}

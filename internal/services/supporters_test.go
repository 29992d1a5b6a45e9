package services

import (
	"testing"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateSupporterWithLinks(t *testing.T) {
	db := newTestDB(t)
	skill := createSkill(t, db, "調理")
	slot := createSlot(t, db, "月曜午前", 1, "morning")

	supporter, err := CreateSupporter(db, SupporterInput{
		Name:        "中村咲",
		Status:      models.SupporterStatusApplicationReceived,
		SkillIDs:    []string{skill.ID, skill.ID}, // duplicate ids collapse
		ScheduleIDs: []string{slot.ID},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, supporter.ID)
	require.Len(t, supporter.Skills, 1)
	assert.Equal(t, skill.ID, supporter.Skills[0].ID)
	require.Len(t, supporter.TimeSlots, 1)

	var joinRows int64
	require.NoError(t, db.Model(&models.SupporterSkill{}).Count(&joinRows).Error)
	assert.Equal(t, int64(1), joinRows)
}

func TestUpdateSupporterReplacesLinks(t *testing.T) {
	db := newTestDB(t)
	oldSkill := createSkill(t, db, "調理")
	newSkill := createSkill(t, db, "掃除")
	slot := createSlot(t, db, "月曜午前", 1, "morning")
	supporter := createSupporter(t, db, "中村咲", models.SupporterStatusRegistered,
		[]models.Skill{oldSkill}, []models.TimeSlot{slot})

	updated, err := UpdateSupporter(db, supporter.ID, SupporterInput{
		Name:     "中村咲",
		Status:   models.SupporterStatusRegistered,
		SkillIDs: []string{newSkill.ID},
		// Schedules omitted: the availability set is cleared, not kept
	})
	require.NoError(t, err)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, newSkill.ID, updated.Skills[0].ID)
	assert.Empty(t, updated.TimeSlots)

	var skillRows int64
	require.NoError(t, db.Model(&models.SupporterSkill{}).Where("supporter_id = ?", supporter.ID).Count(&skillRows).Error)
	assert.Equal(t, int64(1), skillRows, "old join rows are gone")
}

func TestUpdateSupporterNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateSupporter(db, "missing", SupporterInput{
		Name:   "誰か",
		Status: models.SupporterStatusRegistered,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListSupportersFilters(t *testing.T) {
	db := newTestDB(t)
	cooking := createSkill(t, db, "調理")
	cleaning := createSkill(t, db, "掃除")
	monAM := createSlot(t, db, "月曜午前", 1, "morning")
	tuePM := createSlot(t, db, "火曜午後", 2, "afternoon")

	tanaka := createSupporter(t, db, "田中花子", models.SupporterStatusRegistered,
		[]models.Skill{cooking}, []models.TimeSlot{monAM})
	tanaka.Area = "中央区"
	require.NoError(t, db.Save(&tanaka).Error)

	sato := createSupporter(t, db, "佐藤一郎", models.SupporterStatusSuspended,
		[]models.Skill{cleaning}, []models.TimeSlot{tuePM})
	sato.Area = "北区"
	require.NoError(t, db.Save(&sato).Error)

	// Case-insensitive name substring
	supporters, err := ListSupporters(db, SupporterFilters{Search: "田中"})
	require.NoError(t, err)
	require.Len(t, supporters, 1)
	assert.Equal(t, tanaka.ID, supporters[0].ID)

	// Status filter, "all" sentinel on the rest
	supporters, err = ListSupporters(db, SupporterFilters{Status: models.SupporterStatusSuspended, Area: FilterAll, Skill: FilterAll})
	require.NoError(t, err)
	require.Len(t, supporters, 1)
	assert.Equal(t, sato.ID, supporters[0].ID)

	// Skill filter matches by name over the loaded skill set
	supporters, err = ListSupporters(db, SupporterFilters{Skill: "調理"})
	require.NoError(t, err)
	require.Len(t, supporters, 1)
	assert.Equal(t, tanaka.ID, supporters[0].ID)

	// Time slot filter runs against the join table
	supporters, err = ListSupporters(db, SupporterFilters{TimeSlot: tuePM.ID})
	require.NoError(t, err)
	require.Len(t, supporters, 1)
	assert.Equal(t, sato.ID, supporters[0].ID)

	// Area filter
	supporters, err = ListSupporters(db, SupporterFilters{Area: "中央区"})
	require.NoError(t, err)
	require.Len(t, supporters, 1)
	assert.Equal(t, tanaka.ID, supporters[0].ID)

	// No filters at all
	supporters, err = ListSupporters(db, SupporterFilters{})
	require.NoError(t, err)
	assert.Len(t, supporters, 2)
}

func TestDeleteSupporterCleansJoins(t *testing.T) {
	db := newTestDB(t)
	skill := createSkill(t, db, "調理")
	slot := createSlot(t, db, "月曜午前", 1, "morning")
	supporter := createSupporter(t, db, "中村咲", models.SupporterStatusRegistered,
		[]models.Skill{skill}, []models.TimeSlot{slot})

	affected, err := DeleteSupporter(db, supporter.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var skillRows, scheduleRows int64
	require.NoError(t, db.Model(&models.SupporterSkill{}).Count(&skillRows).Error)
	require.NoError(t, db.Model(&models.SupporterSchedule{}).Count(&scheduleRows).Error)
	assert.Zero(t, skillRows)
	assert.Zero(t, scheduleRows)

	_, err = DeleteSupporter(db, supporter.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// services_test.go
//
// Shared in-memory database setup and fixtures for the service tests.

package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Supporter{},
		&models.ServiceUser{},
		&models.Skill{},
		&models.TimeSlot{},
		&models.ActivityStatus{},
		&models.Activity{},
		&models.SupporterSkill{},
		&models.SupporterSchedule{},
	))
	return db
}

// seedStatuses inserts the four lifecycle statuses and returns them by name.
func seedStatuses(t *testing.T, db *gorm.DB) map[string]models.ActivityStatus {
	t.Helper()
	statuses := make(map[string]models.ActivityStatus)
	for _, name := range []string{
		models.ActivityStatusScheduled,
		models.ActivityStatusCompleted,
		models.ActivityStatusCancelled,
		models.ActivityStatusTentative,
	} {
		status := models.ActivityStatus{Name: name}
		require.NoError(t, db.Create(&status).Error)
		statuses[name] = status
	}
	return statuses
}

func createSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, IsActive: true}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func createSlot(t *testing.T, db *gorm.DB, displayName string, dayOfWeek int, period string) models.TimeSlot {
	t.Helper()
	slot := models.TimeSlot{DisplayName: displayName, DayOfWeek: dayOfWeek, Period: period}
	require.NoError(t, db.Create(&slot).Error)
	return slot
}

func createSupporter(t *testing.T, db *gorm.DB, name, status string, skills []models.Skill, slots []models.TimeSlot) models.Supporter {
	t.Helper()
	supporter := models.Supporter{Name: name, Status: status, Skills: skills, TimeSlots: slots}
	require.NoError(t, db.Create(&supporter).Error)
	return supporter
}

func createServiceUser(t *testing.T, db *gorm.DB, name, area string) models.ServiceUser {
	t.Helper()
	user := models.ServiceUser{Name: name, Area: area}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createActivity(t *testing.T, db *gorm.DB, day time.Time, supporter models.Supporter, user models.ServiceUser, skill models.Skill, slot models.TimeSlot, status models.ActivityStatus) models.Activity {
	t.Helper()
	activity := models.Activity{
		ActivityDate:  datatypes.Date(day),
		SupporterID:   supporter.ID,
		ServiceUserID: user.ID,
		SkillID:       skill.ID,
		TimeSlotID:    slot.ID,
		StatusID:      status.ID,
	}
	require.NoError(t, db.Omit("Supporter", "ServiceUser", "Skill", "TimeSlot", "Status").Create(&activity).Error)
	return activity
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(t)
}

// data.go
//
// Domain fixtures shared by integration tests.

package helpers

import (
	"testing"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTestSkill creates a skill and returns it
func CreateTestSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, IsActive: true}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("Failed to create skill %s: %v", name, err)
	}
	return skill
}

// CreateTestTimeSlot creates a time slot and returns it
func CreateTestTimeSlot(t *testing.T, db *gorm.DB, displayName string, dayOfWeek int, period string) models.TimeSlot {
	t.Helper()
	slot := models.TimeSlot{DisplayName: displayName, DayOfWeek: dayOfWeek, Period: period}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("Failed to create time slot %s: %v", displayName, err)
	}
	return slot
}

// CreateTestSupporter creates a supporter with the given skills and
// availability and returns it
func CreateTestSupporter(t *testing.T, db *gorm.DB, name, status string, skills []models.Skill, slots []models.TimeSlot) models.Supporter {
	t.Helper()
	supporter := models.Supporter{
		Name:      name,
		Status:    status,
		Skills:    skills,
		TimeSlots: slots,
	}
	if err := db.Create(&supporter).Error; err != nil {
		t.Fatalf("Failed to create supporter %s: %v", name, err)
	}
	return supporter
}

// CreateTestServiceUser creates a service user and returns it
func CreateTestServiceUser(t *testing.T, db *gorm.DB, name, area string) models.ServiceUser {
	t.Helper()
	user := models.ServiceUser{Name: name, Area: area}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create service user %s: %v", name, err)
	}
	return user
}

// FindActivityStatus looks up a seeded activity status by name
func FindActivityStatus(t *testing.T, db *gorm.DB, name string) models.ActivityStatus {
	t.Helper()
	var status models.ActivityStatus
	if err := db.Where("name = ?", name).First(&status).Error; err != nil {
		t.Fatalf("Failed to find activity status %s: %v", name, err)
	}
	return status
}

// CreateTestActivity creates an activity on the given date and returns it
func CreateTestActivity(t *testing.T, db *gorm.DB, date time.Time, supporter models.Supporter, user models.ServiceUser, skill models.Skill, slot models.TimeSlot, status models.ActivityStatus) models.Activity {
	t.Helper()
	activity := models.Activity{
		ActivityDate:  datatypes.Date(date),
		SupporterID:   supporter.ID,
		ServiceUserID: user.ID,
		SkillID:       skill.ID,
		TimeSlotID:    slot.ID,
		StatusID:      status.ID,
	}
	if err := db.Omit("Supporter", "ServiceUser", "Skill", "TimeSlot", "Status").Create(&activity).Error; err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}
	return activity
}

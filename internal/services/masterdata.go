// masterdata.go
//
// CRUD for the settings-screen entities: skills, time slots, and activity
// statuses.

package services

import (
	"github.com/kizunaworks/sasaeru/internal/models"
	"gorm.io/gorm"
)

// SkillInput carries a skill create/update form.
type SkillInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	IsActive bool   `json:"is_active"`
}

// TimeSlotInput carries a time-slot create/update form.
type TimeSlotInput struct {
	DisplayName string `json:"display_name" validate:"required"`
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	Period      string `json:"period" validate:"required"`
}

// ActivityStatusInput carries an activity-status create/update form.
type ActivityStatusInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ListSkills returns skills ordered by category then name. With activeOnly,
// inactive skills are excluded.
func ListSkills(db *gorm.DB, activeOnly bool) ([]models.Skill, error) {
	query := db.Model(&models.Skill{}).Order("category, name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var skills []models.Skill
	if err := query.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill creates a skill. is_active must be selected explicitly, or a
// false value is dropped for the column default and the row comes back active.
func CreateSkill(db *gorm.DB, in SkillInput) (*models.Skill, error) {
	skill := models.Skill{Name: in.Name, Category: in.Category, IsActive: in.IsActive}
	if err := db.Select("ID", "Name", "Category", "IsActive", "CreatedAt", "UpdatedAt").Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkill replaces a skill's fields.
func UpdateSkill(db *gorm.DB, id string, in SkillInput) (*models.Skill, error) {
	var skill models.Skill
	if err := db.Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":      in.Name,
		"category":  in.Category,
		"is_active": in.IsActive,
	}
	if err := db.Model(&skill).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// DeleteSkill removes a skill.
func DeleteSkill(db *gorm.DB, id string) (int64, error) {
	return deleteByID(db, &models.Skill{}, id)
}

// ListTimeSlots returns time slots ordered by day of week then period.
func ListTimeSlots(db *gorm.DB) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := db.Order("day_of_week, period").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateTimeSlot creates a time slot.
func CreateTimeSlot(db *gorm.DB, in TimeSlotInput) (*models.TimeSlot, error) {
	slot := models.TimeSlot{DisplayName: in.DisplayName, DayOfWeek: in.DayOfWeek, Period: in.Period}
	if err := db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// UpdateTimeSlot replaces a time slot's fields.
func UpdateTimeSlot(db *gorm.DB, id string, in TimeSlotInput) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := db.Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"display_name": in.DisplayName,
		"day_of_week":  in.DayOfWeek,
		"period":       in.Period,
	}
	if err := db.Model(&slot).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteTimeSlot removes a time slot.
func DeleteTimeSlot(db *gorm.DB, id string) (int64, error) {
	return deleteByID(db, &models.TimeSlot{}, id)
}

// ListActivityStatuses returns activity statuses ordered by creation time.
func ListActivityStatuses(db *gorm.DB) ([]models.ActivityStatus, error) {
	var statuses []models.ActivityStatus
	if err := db.Order("created_at, id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// CreateActivityStatus creates an activity status.
func CreateActivityStatus(db *gorm.DB, in ActivityStatusInput) (*models.ActivityStatus, error) {
	status := models.ActivityStatus{Name: in.Name, Description: in.Description}
	if err := db.Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// UpdateActivityStatus replaces an activity status's fields.
func UpdateActivityStatus(db *gorm.DB, id string, in ActivityStatusInput) (*models.ActivityStatus, error) {
	var status models.ActivityStatus
	if err := db.Where("id = ?", id).First(&status).Error; err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
	}
	if err := db.Model(&status).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// DeleteActivityStatus removes an activity status.
func DeleteActivityStatus(db *gorm.DB, id string) (int64, error) {
	return deleteByID(db, &models.ActivityStatus{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id string) (int64, error) {
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return res.RowsAffected, nil
}

// supporters.go
//
// Supporter listing, lookup, and form-save semantics. Join rows for skills
// and schedules are replaced wholesale on every save, never diffed.

package services

import (
	"strings"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"gorm.io/gorm"
)

// FilterAll is the sentinel meaning "no filter on this field".
const FilterAll = "all"

// SupporterFilters narrows the supporter list. Zero values and the "all"
// sentinel leave the corresponding field unfiltered.
type SupporterFilters struct {
	Search   string
	Status   string
	Area     string
	Skill    string // skill name, matched against the materialized skill set
	TimeSlot string // time slot id
}

// SupporterInput carries a supporter create/update form.
type SupporterInput struct {
	Name        string   `json:"name" validate:"required"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Address     string   `json:"address"`
	Area        string   `json:"area"`
	Status      string   `json:"status" validate:"required,oneof=application_received interviewed registered suspended"`
	Notes       string   `json:"notes"`
	SkillIDs    []string `json:"skills"`
	ScheduleIDs []string `json:"schedules"`
}

// ListSupporters returns supporters matching the filters, newest first, with
// skills and schedules preloaded. The skill filter matches by name and runs
// over the fetched rows; everything else is pushed to the store.
func ListSupporters(db *gorm.DB, f SupporterFilters) ([]models.Supporter, error) {
	query := db.Preload("Skills").Preload("TimeSlots")

	if f.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if hasFilter(f.Status) {
		query = query.Where("status = ?", f.Status)
	}
	if hasFilter(f.Area) {
		query = query.Where("area = ?", f.Area)
	}
	if hasFilter(f.TimeSlot) {
		query = query.Where(
			"id IN (?)",
			db.Model(&models.SupporterSchedule{}).Select("supporter_id").Where("time_slot_id = ?", f.TimeSlot),
		)
	}

	var supporters []models.Supporter
	if err := query.Order("created_at DESC, id").Find(&supporters).Error; err != nil {
		return nil, err
	}

	if hasFilter(f.Skill) {
		filtered := supporters[:0]
		for _, s := range supporters {
			for _, skill := range s.Skills {
				if skill.Name == f.Skill {
					filtered = append(filtered, s)
					break
				}
			}
		}
		supporters = filtered
	}

	return utils.UniqueBy(supporters, func(s models.Supporter) string { return s.ID }), nil
}

// GetSupporter returns one supporter with relations, or gorm.ErrRecordNotFound.
func GetSupporter(db *gorm.DB, id string) (*models.Supporter, error) {
	var supporter models.Supporter
	err := db.Preload("Skills").Preload("TimeSlots").
		Where("id = ?", id).First(&supporter).Error
	if err != nil {
		return nil, err
	}
	return &supporter, nil
}

// CreateSupporter creates a supporter and its join rows in one transaction.
func CreateSupporter(db *gorm.DB, in SupporterInput) (*models.Supporter, error) {
	supporter := models.Supporter{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		Area:    in.Area,
		Status:  in.Status,
		Notes:   in.Notes,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Skills", "TimeSlots").Create(&supporter).Error; err != nil {
			return err
		}
		return replaceSupporterLinks(tx, supporter.ID, in.SkillIDs, in.ScheduleIDs)
	})
	if err != nil {
		return nil, err
	}

	return GetSupporter(db, supporter.ID)
}

// UpdateSupporter replaces a supporter's scalar fields and join rows.
func UpdateSupporter(db *gorm.DB, id string, in SupporterInput) (*models.Supporter, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var supporter models.Supporter
		if err := tx.Where("id = ?", id).First(&supporter).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":    in.Name,
			"phone":   in.Phone,
			"email":   in.Email,
			"address": in.Address,
			"area":    in.Area,
			"status":  in.Status,
			"notes":   in.Notes,
		}
		if err := tx.Model(&supporter).Updates(updates).Error; err != nil {
			return err
		}

		// Delete-then-reinsert, not a diff
		if err := tx.Where("supporter_id = ?", id).Delete(&models.SupporterSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("supporter_id = ?", id).Delete(&models.SupporterSchedule{}).Error; err != nil {
			return err
		}
		return replaceSupporterLinks(tx, id, in.SkillIDs, in.ScheduleIDs)
	})
	if err != nil {
		return nil, err
	}

	return GetSupporter(db, id)
}

// DeleteSupporter removes a supporter and its join rows.
func DeleteSupporter(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supporter_id = ?", id).Delete(&models.SupporterSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("supporter_id = ?", id).Delete(&models.SupporterSchedule{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Supporter{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func replaceSupporterLinks(tx *gorm.DB, supporterID string, skillIDs, scheduleIDs []string) error {
	for _, skillID := range utils.Unique(skillIDs) {
		link := models.SupporterSkill{SupporterID: supporterID, SkillID: skillID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	for _, slotID := range utils.Unique(scheduleIDs) {
		link := models.SupporterSchedule{SupporterID: supporterID, TimeSlotID: slotID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// hasFilter reports whether a categorical filter value is a real constraint
// rather than empty or the "all" sentinel.
func hasFilter(value string) bool {
	return value != "" && value != FilterAll
}

// matching.go
//
// Supporter matching: set containment over materialized skill and
// availability sets, annotated with lifetime completed-activity counts.

package services

import (
	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"gorm.io/gorm"
)

// MatchedSupporter is a matching-search result row.
type MatchedSupporter struct {
	models.Supporter
	CompletedActivities int64 `json:"completed_activities"`
}

// MatchSupporters returns supporters whose skill set contains every id in
// skillIDs AND whose availability set contains every id in slotIDs. With no
// criteria at all the result is empty: the search screen prompts for at least
// one criterion instead of dumping the roster. Only supporters whose status
// is registered or interviewed are candidates.
//
// Results are ordered by name then id; the store imposes no business
// ordering of its own.
func MatchSupporters(db *gorm.DB, skillIDs, slotIDs []string) ([]MatchedSupporter, error) {
	skillIDs = utils.Unique(skillIDs)
	slotIDs = utils.Unique(slotIDs)
	if len(skillIDs) == 0 && len(slotIDs) == 0 {
		return []MatchedSupporter{}, nil
	}

	var candidates []models.Supporter
	err := db.Preload("Skills").Preload("TimeSlots").
		Where("status IN ?", []string{models.SupporterStatusRegistered, models.SupporterStatusInterviewed}).
		Order("name, id").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	matched := make([]MatchedSupporter, 0, len(candidates))
	for _, supporter := range candidates {
		if !containsAllSkills(supporter, skillIDs) {
			continue
		}
		if !containsAllSlots(supporter, slotIDs) {
			continue
		}

		count, err := completedActivityCount(db, supporter.ID)
		if err != nil {
			return nil, err
		}
		matched = append(matched, MatchedSupporter{Supporter: supporter, CompletedActivities: count})
	}

	return matched, nil
}

// completedActivityCount counts activities for the supporter in the
// "completed" status. A missing completed status row counts as zero rather
// than failing the search.
func completedActivityCount(db *gorm.DB, supporterID string) (int64, error) {
	var completed models.ActivityStatus
	if err := db.Where("name = ?", models.ActivityStatusCompleted).First(&completed).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}

	var count int64
	err := db.Model(&models.Activity{}).
		Where("supporter_id = ? AND status_id = ?", supporterID, completed.ID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func containsAllSkills(s models.Supporter, skillIDs []string) bool {
	for _, want := range skillIDs {
		found := false
		for _, skill := range s.Skills {
			if skill.ID == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsAllSlots(s models.Supporter, slotIDs []string) bool {
	for _, want := range slotIDs {
		found := false
		for _, slot := range s.TimeSlots {
			if slot.ID == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

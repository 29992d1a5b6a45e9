// activities.go
//
// Activity listing with store-side predicate composition plus an in-memory
// related-name search, CRUD, and the completion flow.

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kizunaworks/sasaeru/internal/calendar"
	"github.com/kizunaworks/sasaeru/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ActivityFilters narrows the activity list. Equality and range predicates
// run at the store; Search is a case-insensitive substring match across the
// related supporter/service-user/skill names applied after the fetch.
type ActivityFilters struct {
	Search      string
	Supporter   string
	ServiceUser string
	Status      string
	DateFrom    string // YYYY-MM-DD inclusive
	DateTo      string // YYYY-MM-DD inclusive
}

// ActivityInput carries an activity create/update form.
type ActivityInput struct {
	SupporterID   string `json:"supporter_id" validate:"required"`
	ServiceUserID string `json:"service_user_id" validate:"required"`
	SkillID       string `json:"skill_id" validate:"required"`
	TimeSlotID    string `json:"time_slot_id" validate:"required"`
	StatusID      string `json:"status_id" validate:"required"`
	ActivityDate  string `json:"activity_date" validate:"required,datetime=2006-01-02"`
	TimeNotes     string `json:"time_notes"`
	Notes         string `json:"notes"`
}

// activityPreloads expands every relation an activity row renders with.
func activityPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Supporter").Preload("ServiceUser").
		Preload("Skill").Preload("TimeSlot").Preload("Status")
}

// ListActivities returns activities matching the filters, newest date first.
func ListActivities(db *gorm.DB, f ActivityFilters) ([]models.Activity, error) {
	query := activityPreloads(db.Model(&models.Activity{}))

	if hasFilter(f.Supporter) {
		query = query.Where("supporter_id = ?", f.Supporter)
	}
	if hasFilter(f.ServiceUser) {
		query = query.Where("service_user_id = ?", f.ServiceUser)
	}
	if hasFilter(f.Status) {
		query = query.Where("status_id = ?", f.Status)
	}
	from, okFrom := parseDateFilter(f.DateFrom)
	to, okTo := parseDateFilter(f.DateTo)
	if okFrom || okTo {
		if db.Dialector.Name() == "mysql" {
			query = query.Clauses(hints.UseIndex("idx_activities_activity_date"))
		}
		if okFrom {
			query = query.Where("activity_date >= ?", from)
		}
		if okTo {
			query = query.Where("activity_date <= ?", to)
		}
	}

	var activities []models.Activity
	if err := query.Order("activity_date DESC, created_at DESC").Find(&activities).Error; err != nil {
		return nil, err
	}

	return searchActivities(activities, f.Search), nil
}

// searchActivities keeps activities whose supporter, service user, or skill
// name contains the query, case-insensitively. An empty query keeps
// everything.
func searchActivities(activities []models.Activity, search string) []models.Activity {
	if search == "" {
		return activities
	}
	needle := strings.ToLower(search)
	matched := activities[:0]
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a.Supporter.Name), needle) ||
			strings.Contains(strings.ToLower(a.ServiceUser.Name), needle) ||
			strings.Contains(strings.ToLower(a.Skill.Name), needle) {
			matched = append(matched, a)
		}
	}
	return matched
}

// GetActivity returns one activity with relations, or gorm.ErrRecordNotFound.
func GetActivity(db *gorm.DB, id string) (*models.Activity, error) {
	var activity models.Activity
	if err := activityPreloads(db).Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// CreateActivity creates an activity from a validated form.
func CreateActivity(db *gorm.DB, in ActivityInput) (*models.Activity, error) {
	date, err := parseActivityDate(in.ActivityDate)
	if err != nil {
		return nil, err
	}

	activity := models.Activity{
		ActivityDate:  date,
		TimeNotes:     in.TimeNotes,
		Notes:         in.Notes,
		SupporterID:   in.SupporterID,
		ServiceUserID: in.ServiceUserID,
		SkillID:       in.SkillID,
		TimeSlotID:    in.TimeSlotID,
		StatusID:      in.StatusID,
	}
	if err := db.Omit("Supporter", "ServiceUser", "Skill", "TimeSlot", "Status").
		Create(&activity).Error; err != nil {
		return nil, err
	}
	return GetActivity(db, activity.ID)
}

// UpdateActivity replaces an activity's fields.
func UpdateActivity(db *gorm.DB, id string, in ActivityInput) (*models.Activity, error) {
	date, err := parseActivityDate(in.ActivityDate)
	if err != nil {
		return nil, err
	}

	var activity models.Activity
	if err := db.Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"activity_date":   date,
		"time_notes":      in.TimeNotes,
		"notes":           in.Notes,
		"supporter_id":    in.SupporterID,
		"service_user_id": in.ServiceUserID,
		"skill_id":        in.SkillID,
		"time_slot_id":    in.TimeSlotID,
		"status_id":       in.StatusID,
	}
	if err := db.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetActivity(db, id)
}

// DeleteActivity removes an activity.
func DeleteActivity(db *gorm.DB, id string) (int64, error) {
	res := db.Where("id = ?", id).Delete(&models.Activity{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return res.RowsAffected, nil
}

// CompleteActivity marks an activity completed and appends the report text to
// its notes. Completion is a status change plus a notes append; there is no
// separate completion record.
func CompleteActivity(db *gorm.DB, id, report string) (*models.Activity, error) {
	var activity models.Activity
	if err := db.Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}

	var completed models.ActivityStatus
	if err := db.Where("name = ?", models.ActivityStatusCompleted).First(&completed).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("completed status is not registered")
		}
		return nil, err
	}

	notes := "【活動報告】\n" + report
	if activity.Notes != "" {
		notes = activity.Notes + "\n\n" + notes
	}

	updates := map[string]interface{}{
		"status_id": completed.ID,
		"notes":     notes,
	}
	if err := db.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetActivity(db, id)
}

// parseDateFilter parses an optional YYYY-MM-DD filter value. A blank or
// unparseable value means "no constraint".
func parseDateFilter(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(calendar.DateKeyLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseActivityDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(calendar.DateKeyLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid activity_date %q: %w", value, err)
	}
	return datatypes.Date(t), nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is one scheduled or occurred engagement between one supporter and
// one service user, tagged with a skill, a time slot, and a status. All five
// foreign keys are non-null.
type Activity struct {
	ID            string         `gorm:"type:char(36);primaryKey" json:"id"`
	ActivityDate  datatypes.Date `gorm:"not null;index:idx_activities_activity_date" json:"activity_date"`
	TimeNotes     string         `gorm:"size:255" json:"time_notes"`
	Notes         string         `json:"notes"`
	SupporterID   string         `gorm:"type:char(36);not null;index" json:"supporter_id"`
	ServiceUserID string         `gorm:"type:char(36);not null;index" json:"service_user_id"`
	SkillID       string         `gorm:"type:char(36);not null" json:"skill_id"`
	TimeSlotID    string         `gorm:"type:char(36);not null" json:"time_slot_id"`
	StatusID      string         `gorm:"type:char(36);not null;index" json:"status_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Supporter   Supporter      `gorm:"foreignKey:SupporterID" json:"supporter"`
	ServiceUser ServiceUser    `gorm:"foreignKey:ServiceUserID" json:"service_user"`
	Skill       Skill          `gorm:"foreignKey:SkillID" json:"skill"`
	TimeSlot    TimeSlot       `gorm:"foreignKey:TimeSlotID" json:"time_slot"`
	Status      ActivityStatus `gorm:"foreignKey:StatusID" json:"status"`
}

// TableName overrides the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Date returns the activity date as a time.Time at midnight.
func (a *Activity) Date() time.Time {
	return time.Time(a.ActivityDate)
}

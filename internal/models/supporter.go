package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supporter registration statuses, in lifecycle order.
const (
	SupporterStatusApplicationReceived = "application_received"
	SupporterStatusInterviewed         = "interviewed"
	SupporterStatusRegistered          = "registered"
	SupporterStatusSuspended           = "suspended"
)

// SupporterStatuses lists every valid supporter status.
var SupporterStatuses = []string{
	SupporterStatusApplicationReceived,
	SupporterStatusInterviewed,
	SupporterStatusRegistered,
	SupporterStatusSuspended,
}

// Supporter represents a volunteer who performs activities for service users.
type Supporter struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Address   string    `gorm:"size:255" json:"address"`
	Area      string    `gorm:"size:255;index" json:"area"`
	Status    string    `gorm:"size:32;not null;default:application_received;index" json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Skills    []Skill    `gorm:"many2many:supporter_skills;" json:"skills"`
	TimeSlots []TimeSlot `gorm:"many2many:supporter_schedules;" json:"time_slots"`
}

// TableName overrides the table name for Supporter
func (Supporter) TableName() string {
	return "supporters"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (s *Supporter) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SupporterSkill is a join row linking a supporter to a skill. Rows are
// replaced wholesale when a supporter is saved, never diffed.
type SupporterSkill struct {
	SupporterID string `gorm:"type:char(36);primaryKey"`
	SkillID     string `gorm:"type:char(36);primaryKey"`
}

// TableName overrides the table name for SupporterSkill
func (SupporterSkill) TableName() string {
	return "supporter_skills"
}

// SupporterSchedule is a join row linking a supporter to an availability
// time slot. Replaced wholesale on save, like SupporterSkill.
type SupporterSchedule struct {
	SupporterID string `gorm:"type:char(36);primaryKey"`
	TimeSlotID  string `gorm:"type:char(36);primaryKey"`
}

// TableName overrides the table name for SupporterSchedule
func (SupporterSchedule) TableName() string {
	return "supporter_schedules"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity status names seeded at startup. ActivityStatus.Name is free text,
// but these four are the conventional lifecycle values.
const (
	ActivityStatusScheduled = "scheduled"
	ActivityStatusCompleted = "completed"
	ActivityStatusCancelled = "cancelled"
	ActivityStatusTentative = "tentative"
)

// Skill is a named category of support a supporter can provide.
type Skill struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category  string    `gorm:"size:255" json:"category"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TimeSlot is a named recurring availability window (day of week + period).
type TimeSlot struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	DisplayName string    `gorm:"size:255;not null" json:"display_name"`
	DayOfWeek   int       `gorm:"not null;index:idx_time_slot_window,unique" json:"day_of_week"`
	Period      string    `gorm:"size:32;not null;index:idx_time_slot_window,unique" json:"period"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for TimeSlot
func (TimeSlot) TableName() string {
	return "time_slots"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ActivityStatus is a lifecycle state an activity can be in.
type ActivityStatus struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for ActivityStatus
func (ActivityStatus) TableName() string {
	return "activity_statuses"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (s *ActivityStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

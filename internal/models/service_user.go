package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceUser represents a care recipient matched with supporters.
type ServiceUser struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Phone        string    `gorm:"size:32" json:"phone"`
	Email        string    `gorm:"size:255" json:"email"`
	Address      string    `gorm:"size:255" json:"address"`
	Area         string    `gorm:"size:255;index" json:"area"`
	SpecialNotes string    `json:"special_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name for ServiceUser
func (ServiceUser) TableName() string {
	return "service_users"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (u *ServiceUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DateTime    time.Time `gorm:"not null" json:"dateTime"`
	Location    string    `gorm:"not null" json:"location"`
	Organizer   string    `gorm:"not null" json:"organizer"`
	Theme       string    `json:"theme"`
	Description string    `json:"description"`
	Status      string    `gorm:"type:varchar(64)" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the event id. Ids are never reassigned afterwards.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

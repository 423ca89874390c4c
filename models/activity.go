package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID uuid.UUID `gorm:"type:uuid;index;not null"`

	Type        string `gorm:"type:varchar(20);not null"` // system, customer, appointment, finance, marketing
	Title       string `gorm:"not null"`
	Description string
	Icon        string `gorm:"type:varchar(30)"`
	Color       string `gorm:"type:varchar(10)"`

	gorm.Model
}

func (a *Activity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title    string `gorm:"not null"`
	Category string `gorm:"default:'General'"`
	Content  string `gorm:"type:text"`

	gorm.Model
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

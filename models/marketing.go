package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarketingContent struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string     `gorm:"not null"`
	Platforms   StringList `gorm:"type:jsonb;default:'[]'"`          // facebook, instagram, ...
	Type        string     `gorm:"type:varchar(30)"`                 // post, story, promotion
	Status      string     `gorm:"type:varchar(20);default:'draft'"` // draft, scheduled, published
	Text        string     `gorm:"type:text"`
	Tags        StringList `gorm:"type:jsonb;default:'[]'"`
	Notes       string
	PublishDate string `gorm:"type:varchar(10)"` // "2006-01-02"
	PublishTime string `gorm:"type:varchar(5)"`  // "15:04"
	PublishedAt *time.Time

	gorm.Model
}

func (m *MarketingContent) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

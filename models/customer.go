package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Phone       string `gorm:"not null;uniqueIndex:idx_laundry_phone,priority:2"`
	Email       string
	Address     string
	Preferences string // e.g. "fold", "hang-dry", "eco-detergent"
	Status      string `gorm:"type:varchar(20);default:'active'"` // 'active' or 'inactive'
	LastVisit   *time.Time
	LastContact *time.Time
	TotalSpent  float64 `gorm:"type:decimal(10,2);default:0.0"`

	Notes []CustomerNote `gorm:"foreignKey:CustomerID"`
	Tags  StringList     `gorm:"type:jsonb;default:'[]'"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

type CustomerNote struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (n *CustomerNote) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}

package models

import (
	"github.com/google/uuid"
)

type Laundry struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"not null"`
	Address          string
	WorkingHours     JSONB `gorm:"type:jsonb;default:'{}'"`
	SMSNotifications bool  `gorm:"default:false"`

	Users     []User     `gorm:"foreignKey:LaundryID"`
	Customers []Customer `gorm:"foreignKey:LaundryID"`
}

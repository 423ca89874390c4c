package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinancialRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Type        string    `gorm:"type:varchar(20);not null"` // 'revenue' or 'expense'
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Category    string    `gorm:"not null"`
	Date        time.Time `gorm:"index;not null"`
	Description string

	gorm.Model
}

func (r *FinancialRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// FinancialGoal is the per-laundry monthly target singleton.
type FinancialGoal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	LaundryID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	MonthlyRevenue  float64 `gorm:"type:decimal(10,2);default:10000"`
	MonthlyExpenses float64 `gorm:"type:decimal(10,2);default:4000"`
	TargetProfit    float64 `gorm:"type:decimal(10,2);default:6000"`

	gorm.Model
}

func (g *FinancialGoal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlyIncome is a precomputed aggregate row maintained by the finance
// scheduler, never derived on the read path.
type MonthlyIncome struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Year     int     `gorm:"not null;uniqueIndex:idx_income_year_month,priority:1" json:"year"`
	Month    int     `gorm:"not null;uniqueIndex:idx_income_year_month,priority:2" json:"month"`
	Revenue  float64 `gorm:"type:decimal(10,2);default:0.0" json:"revenue"`
	Projects int     `gorm:"default:0" json:"projects"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *MonthlyIncome) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

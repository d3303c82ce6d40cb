package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`

	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `gorm:"not null" json:"status"`
	Budget      float64    `gorm:"type:decimal(10,2);default:0.0" json:"budget"`

	Client *Client `gorm:"foreignKey:ClientID" json:"-"`

	Documents []Document `gorm:"foreignKey:ProjectID" json:"-"`
	Files     []FileItem `gorm:"foreignKey:ProjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

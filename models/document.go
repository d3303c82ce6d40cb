package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`

	Name    string `gorm:"not null" json:"name"`
	Type    string `gorm:"not null" json:"type"`
	FileURL string `gorm:"not null" json:"file_url"`

	Client  *Client  `gorm:"foreignKey:ClientID" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name     string `gorm:"not null" json:"name"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`

	Projects  []Project  `gorm:"foreignKey:ClientID" json:"-"`
	Documents []Document `gorm:"foreignKey:ClientID" json:"-"`
	Invoices  []Invoice  `gorm:"foreignKey:ClientID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"client_id"`
	ProjectID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"project_id"`
	DocumentID *uuid.UUID `gorm:"type:uuid;index" json:"document_id"`

	Number  string    `gorm:"uniqueIndex;not null" json:"number"`
	Amount  float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date    time.Time `gorm:"not null" json:"date"`
	DueDate time.Time `gorm:"not null" json:"due_date"`
	Status  string    `gorm:"not null" json:"status"`

	Client   *Client   `gorm:"foreignKey:ClientID" json:"-"`
	Project  *Project  `gorm:"foreignKey:ProjectID" json:"-"`
	Document *Document `gorm:"foreignKey:DocumentID" json:"-"`

	Payments []Payment `gorm:"foreignKey:InvoiceID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

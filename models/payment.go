package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`

	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date          time.Time `gorm:"not null" json:"date"`
	PaymentMethod string    `json:"payment_method"`

	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

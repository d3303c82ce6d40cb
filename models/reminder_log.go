// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records every overdue-invoice reminder the finance scheduler
// attempted, sent or not.
type ReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`

	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	SentAt       time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

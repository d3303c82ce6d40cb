package models

import (
	"freelancedesk-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`

	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`

	gorm.Model
}

// Assign the UUID and hash the password before the row is written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

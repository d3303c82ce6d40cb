package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileItem is an uploaded file attached (optionally) to a project.
// Size is the human-readable display string, not a byte count.
type FileItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`

	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type"`
	Size    string `json:"size"`
	FileURL string `json:"file_url"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FileItem) TableName() string { return "files" }

func (f *FileItem) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

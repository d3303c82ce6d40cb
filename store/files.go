package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileView is a file row with its optional project relation flattened.
type FileView struct {
	models.FileItem
	ProjectName string `json:"projectName"`
}

func flattenFile(f models.FileItem) FileView {
	view := FileView{FileItem: f}
	if f.Project != nil {
		view.ProjectName = f.Project.Name
	}
	return view
}

// Files returns every file newest-first with the project embedded and
// flattened.
func Files(db *gorm.DB) ([]FileView, error) {
	var files []models.FileItem
	if err := db.Preload("Project").
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}

	views := make([]FileView, 0, len(files))
	for _, f := range files {
		views = append(views, flattenFile(f))
	}
	return views, nil
}

// ProjectFiles returns one project's files newest-first, or an empty list
// without querying when projectID is absent.
func ProjectFiles(db *gorm.DB, projectID uuid.UUID) ([]FileView, error) {
	if projectID == uuid.Nil {
		return []FileView{}, nil
	}

	var files []models.FileItem
	if err := db.Preload("Project").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}

	views := make([]FileView, 0, len(files))
	for _, f := range files {
		views = append(views, flattenFile(f))
	}
	return views, nil
}

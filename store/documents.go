package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentView is a document row with its client and project relations
// flattened. Both relations are optional by schema.
type DocumentView struct {
	models.Document
	ClientName    string `json:"clientName"`
	ClientCompany string `json:"clientCompany"`
	ProjectName   string `json:"projectName"`
}

func flattenDocument(d models.Document) DocumentView {
	view := DocumentView{Document: d}
	if d.Client != nil {
		view.ClientName = d.Client.Name
		view.ClientCompany = d.Client.Company
	}
	if d.Project != nil {
		view.ProjectName = d.Project.Name
	}
	return view
}

// Documents returns every document newest-first with client and project
// embedded and flattened.
func Documents(db *gorm.DB) ([]DocumentView, error) {
	var documents []models.Document
	if err := db.Preload("Client").Preload("Project").
		Order("created_at DESC").
		Find(&documents).Error; err != nil {
		return nil, err
	}

	views := make([]DocumentView, 0, len(documents))
	for _, d := range documents {
		views = append(views, flattenDocument(d))
	}
	return views, nil
}

// ProjectDocuments returns one project's documents newest-first, or an empty
// list without querying when projectID is absent.
func ProjectDocuments(db *gorm.DB, projectID uuid.UUID) ([]DocumentView, error) {
	if projectID == uuid.Nil {
		return []DocumentView{}, nil
	}

	var documents []models.Document
	if err := db.Preload("Client").Preload("Project").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&documents).Error; err != nil {
		return nil, err
	}

	views := make([]DocumentView, 0, len(documents))
	for _, d := range documents {
		views = append(views, flattenDocument(d))
	}
	return views, nil
}

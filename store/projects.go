package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectView is a project row with its client relation flattened. A project
// without a client keeps empty-string client fields.
type ProjectView struct {
	models.Project
	ClientName    string `json:"clientName"`
	ClientCompany string `json:"clientCompany"`
	StatusDisplay string `json:"statusDisplay"`
}

func flattenProject(p models.Project) ProjectView {
	view := ProjectView{
		Project:       p,
		StatusDisplay: models.DisplayProjectStatus(p.Status),
	}
	if p.Client != nil {
		view.ClientName = p.Client.Name
		view.ClientCompany = p.Client.Company
	}
	return view
}

// Projects returns every project newest-first with the client embedded and
// flattened. An optional stored-form status narrows the list.
func Projects(db *gorm.DB, status string) ([]ProjectView, error) {
	query := db.Preload("Client").Order("start_date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, flattenProject(p))
	}
	return views, nil
}

// Project returns one project by id with the client flattened, or nil when
// id is absent.
func Project(db *gorm.DB, id uuid.UUID) (*ProjectView, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	var project models.Project
	if err := db.Preload("Client").First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}

	view := flattenProject(project)
	return &view, nil
}

// ClientProjects returns one client's projects newest-first, or an empty
// list without querying when clientID is absent.
func ClientProjects(db *gorm.DB, clientID uuid.UUID) ([]ProjectView, error) {
	if clientID == uuid.Nil {
		return []ProjectView{}, nil
	}

	var projects []models.Project
	if err := db.Preload("Client").
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, flattenProject(p))
	}
	return views, nil
}

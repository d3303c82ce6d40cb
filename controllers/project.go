package controllers

import (
	"errors"
	"net/http"
	"time"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/store"
	"freelancedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProjectInput defines the expected JSON structure for creating a project
type CreateProjectInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	ClientID    *uuid.UUID `json:"client_id"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
	Budget      float64    `json:"budget" binding:"min=0"`
}

// UpdateProjectInput defines the expected JSON structure for updating a project
type UpdateProjectInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ClientID    *uuid.UUID `json:"client_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status"`
	Budget      *float64   `json:"budget"`
}

// CreateProject creates a new project
func CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate client exists when a client is attached
	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.First(&client, "id = ?", *input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	status := models.NormalizeProjectStatus(input.Status)
	if status == "" {
		status = string(models.ProjectInProgress)
	}

	project := models.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		ClientID:    input.ClientID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
		Budget:      input.Budget,
	}

	if err := config.DB.Create(&project).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjects retrieves all projects, newest first. The optional status
// query parameter accepts either vocabulary (stored or display form).
func GetProjects(c *gin.Context) {
	status := ""
	if raw := c.Query("status"); raw != "" {
		status = models.NormalizeProjectStatus(raw)
	}

	projects, err := store.Projects(config.DB, status)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject retrieves a specific project by ID
func GetProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	project, err := store.Project(config.DB, projectUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectDocuments retrieves one project's documents, newest first
func GetProjectDocuments(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	documents, err := store.ProjectDocuments(config.DB, projectUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetProjectFiles retrieves one project's files, newest first
func GetProjectFiles(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	files, err := store.ProjectFiles(config.DB, projectUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// UpdateProject updates an existing project
func UpdateProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var input UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var project models.Project
	if err := config.DB.First(&project, "id = ?", projectUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.First(&client, "id = ?", *input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		project.ClientID = input.ClientID
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Status != nil {
		project.Status = models.NormalizeProjectStatus(*input.Status)
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}

	if err := config.DB.Save(&project).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project
func DeleteProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	result := config.DB.Where("id = ?", projectUUID).Delete(&models.Project{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

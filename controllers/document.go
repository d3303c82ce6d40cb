package controllers

import (
	"errors"
	"net/http"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/store"
	"freelancedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateDocumentInput defines the expected JSON structure for creating a document
type CreateDocumentInput struct {
	Name      string     `json:"name" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	ClientID  *uuid.UUID `json:"client_id"`
	ProjectID *uuid.UUID `json:"project_id"`
	FileURL   string     `json:"file_url" binding:"required"`
}

// UpdateDocumentInput defines the expected JSON structure for updating a document
type UpdateDocumentInput struct {
	Name      *string    `json:"name"`
	Type      *string    `json:"type"`
	ClientID  *uuid.UUID `json:"client_id"`
	ProjectID *uuid.UUID `json:"project_id"`
	FileURL   *string    `json:"file_url"`
}

// CreateDocument creates a new document
func CreateDocument(c *gin.Context) {
	var input CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	document := models.Document{
		ID:        uuid.New(),
		Name:      input.Name,
		Type:      input.Type,
		ClientID:  input.ClientID,
		ProjectID: input.ProjectID,
		FileURL:   input.FileURL,
	}

	if err := config.DB.Create(&document).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocuments retrieves all documents, newest first
func GetDocuments(c *gin.Context) {
	documents, err := store.Documents(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// UpdateDocument updates an existing document
func UpdateDocument(c *gin.Context) {
	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	var input UpdateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var document models.Document
	if err := config.DB.First(&document, "id = ?", documentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		document.Name = *input.Name
	}
	if input.Type != nil {
		document.Type = *input.Type
	}
	if input.ClientID != nil {
		document.ClientID = input.ClientID
	}
	if input.ProjectID != nil {
		document.ProjectID = input.ProjectID
	}
	if input.FileURL != nil {
		document.FileURL = *input.FileURL
	}

	if err := config.DB.Save(&document).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update document")
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument deletes a document
func DeleteDocument(c *gin.Context) {
	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	result := config.DB.Where("id = ?", documentUUID).Delete(&models.Document{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

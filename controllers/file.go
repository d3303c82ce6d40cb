package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/storage"
	"freelancedesk-backend/store"
	"freelancedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateFileInput defines the expected JSON structure for registering a file
type CreateFileInput struct {
	Name      string     `json:"name" binding:"required"`
	Type      string     `json:"type"`
	Size      string     `json:"size"`
	ProjectID *uuid.UUID `json:"project_id"`
	FileURL   string     `json:"file_url" binding:"required"`
}

// UpdateFileInput defines the expected JSON structure for updating a file
type UpdateFileInput struct {
	Name      *string    `json:"name"`
	ProjectID *uuid.UUID `json:"project_id"`
}

// CreateFile registers an uploaded file
func CreateFile(c *gin.Context) {
	var input CreateFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	file := models.FileItem{
		ID:        uuid.New(),
		Name:      input.Name,
		Type:      input.Type,
		Size:      input.Size,
		ProjectID: input.ProjectID,
		FileURL:   input.FileURL,
	}

	if err := config.DB.Create(&file).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create file")
		return
	}

	c.JSON(http.StatusCreated, file)
}

// GetFiles retrieves all files, newest first
func GetFiles(c *gin.Context) {
	files, err := store.Files(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve files")
		return
	}

	c.JSON(http.StatusOK, files)
}

// UpdateFile updates an existing file record
func UpdateFile(c *gin.Context) {
	fileUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid file ID format")
		return
	}

	var input UpdateFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var file models.FileItem
	if err := config.DB.First(&file, "id = ?", fileUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "File not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		file.Name = *input.Name
	}
	if input.ProjectID != nil {
		file.ProjectID = input.ProjectID
	}

	if err := config.DB.Save(&file).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update file")
		return
	}

	c.JSON(http.StatusOK, file)
}

// DeleteFile deletes a file record
func DeleteFile(c *gin.Context) {
	fileUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid file ID format")
		return
	}

	result := config.DB.Where("id = ?", fileUUID).Delete(&models.FileItem{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "File not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// UploadFile stores raw file bytes and returns the durable retrieval URL to
// be kept verbatim in a document or file record.
func UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file in request")
		return
	}

	src, err := header.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer src.Close()

	url, err := storage.Default().Save(header.Filename, src)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":     header.Filename,
		"size":     humanSize(header.Size),
		"type":     header.Header.Get("Content-Type"),
		"file_url": url,
	})
}

func humanSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

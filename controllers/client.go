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

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Industry *string `json:"industry"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
}

// CreateClient creates a new client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := models.Client{
		ID:       uuid.New(),
		Name:     input.Name,
		Company:  input.Company,
		Industry: input.Industry,
		Email:    input.Email,
		Phone:    input.Phone,
		Status:   input.Status,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients ordered by name
func GetClients(c *gin.Context) {
	clients, err := store.Clients(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := store.Client(config.DB, clientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// GetClientProjects retrieves one client's projects, newest first
func GetClientProjects(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	projects, err := store.ClientProjects(config.DB, clientUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.Industry != nil {
		client.Industry = *input.Industry
	}
	if input.Email != nil {
		if *input.Email != "" && !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		client.Email = *input.Email
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Status != nil {
		client.Status = *input.Status
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient deletes a client
func DeleteClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	result := config.DB.Where("id = ?", clientUUID).Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

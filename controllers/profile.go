package controllers

import (
	"net/http"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      user.Name,
		"email":     user.Email,
		"lastLogin": user.LastLogin,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// controllers/invoice.go
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

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	Number     string     `json:"number" binding:"required"`
	ClientID   uuid.UUID  `json:"client_id" binding:"required"`
	ProjectID  uuid.UUID  `json:"project_id" binding:"required"`
	DocumentID *uuid.UUID `json:"document_id"`
	Amount     float64    `json:"amount" binding:"required,min=0"`
	Date       time.Time  `json:"date" binding:"required"`
	DueDate    time.Time  `json:"due_date" binding:"required"`
	Status     string     `json:"status"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	Number     *string    `json:"number"`
	ClientID   *uuid.UUID `json:"client_id"`
	ProjectID  *uuid.UUID `json:"project_id"`
	DocumentID *uuid.UUID `json:"document_id"`
	Amount     *float64   `json:"amount" binding:"omitempty,min=0"`
	Date       *time.Time `json:"date"`
	DueDate    *time.Time `json:"due_date"`
	Status     *string    `json:"status"`
}

// CreateInvoice creates a new invoice
func CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate client exists
	var client models.Client
	if err := config.DB.First(&client, "id = ?", input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate project exists
	var project models.Project
	if err := config.DB.First(&project, "id = ?", input.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	status := models.NormalizeInvoiceStatus(input.Status)
	if status == "" {
		status = string(models.InvoiceDraft)
	}

	invoice := models.Invoice{
		ID:         uuid.New(),
		Number:     input.Number,
		ClientID:   input.ClientID,
		ProjectID:  input.ProjectID,
		DocumentID: input.DocumentID,
		Amount:     input.Amount,
		Date:       input.Date,
		DueDate:    input.DueDate,
		Status:     status,
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves all invoices, newest first. The optional status
// query parameter accepts either vocabulary (stored or display form).
func GetInvoices(c *gin.Context) {
	status := ""
	if raw := c.Query("status"); raw != "" {
		status = models.NormalizeInvoiceStatus(raw)
	}

	invoices, err := store.Invoices(config.DB, status)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := store.Invoice(config.DB, invoiceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates an existing invoice
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Number != nil {
		invoice.Number = *input.Number
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
		invoice.ClientID = *input.ClientID
	}
	if input.ProjectID != nil {
		var project models.Project
		if err := config.DB.First(&project, "id = ?", *input.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Project not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		invoice.ProjectID = *input.ProjectID
	}
	if input.DocumentID != nil {
		invoice.DocumentID = input.DocumentID
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Status != nil {
		invoice.Status = models.NormalizeInvoiceStatus(*input.Status)
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice together with its payments
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.Payment{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice payments")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

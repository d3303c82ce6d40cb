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

// CreatePaymentsInput defines the expected JSON structure for recording
// payments against one or more invoices
type CreatePaymentsInput struct {
	InvoiceIDs    []uuid.UUID `json:"invoiceIds" binding:"required,min=1"`
	Date          *time.Time  `json:"date"`
	PaymentMethod string      `json:"paymentMethod"`
}

// CreatePayments records one payment per selected invoice and flips each
// invoice to Paid. The payment insert and the status update are one unit of
// work: a failure on either side rolls back the whole batch, so an invoice
// can never end up paid without its payment row or vice versa.
func CreatePayments(c *gin.Context) {
	var input CreatePaymentsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	paymentDate := time.Now()
	if input.Date != nil {
		paymentDate = *input.Date
	}

	method := input.PaymentMethod
	if method == "" {
		method = "Bank Transfer"
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	payments := make([]models.Payment, 0, len(input.InvoiceIDs))
	for _, invoiceID := range input.InvoiceIDs {
		var invoice models.Invoice
		if err := tx.First(&invoice, "id = ?", invoiceID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Invoice not found: "+invoiceID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		if invoice.Status == string(models.InvoicePaid) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusConflict, "Invoice already paid: "+invoice.Number)
			return
		}

		payment := models.Payment{
			ID:            uuid.New(),
			InvoiceID:     invoice.ID,
			Amount:        invoice.Amount,
			Date:          paymentDate,
			PaymentMethod: method,
		}

		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
			return
		}

		if err := tx.Model(&models.Invoice{}).Where("id = ?", invoice.ID).
			Update("status", string(models.InvoicePaid)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice status")
			return
		}

		payments = append(payments, payment)
	}

	tx.Commit()

	c.JSON(http.StatusCreated, payments)
}

// GetPayments retrieves all payments, newest first
func GetPayments(c *gin.Context) {
	payments, err := store.Payments(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// DeletePayment deletes a payment
func DeletePayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	result := config.DB.Where("id = ?", paymentUUID).Delete(&models.Payment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

package controllers

import (
	"net/http"
	"time"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/store"
	"freelancedesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetMonthlyIncome returns the precomputed income series in chronological
// order. The aggregate rows are maintained by the finance scheduler.
func GetMonthlyIncome(c *gin.Context) {
	incomes, err := store.MonthlyIncomes(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve monthly income")
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// GetDashboardOverview returns the headline numbers for the dashboard page
func GetDashboardOverview(c *gin.Context) {
	var totalClients int64
	config.DB.Model(&models.Client{}).Count(&totalClients)

	var activeProjects int64
	config.DB.Model(&models.Project{}).
		Where("status = ?", string(models.ProjectInProgress)).
		Count(&activeProjects)

	var unpaidInvoices int64
	var unpaidTotal float64
	config.DB.Model(&models.Invoice{}).
		Where("status IN ?", []string{
			string(models.InvoicePending),
			string(models.InvoiceOverdue),
		}).
		Count(&unpaidInvoices)
	config.DB.Model(&models.Invoice{}).
		Where("status IN ?", []string{
			string(models.InvoicePending),
			string(models.InvoiceOverdue),
		}).
		Select("COALESCE(SUM(amount), 0)").Scan(&unpaidTotal)

	firstOfMonth := utils.BeginningOfMonth(time.Now())
	var monthRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("date >= ?", firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	c.JSON(http.StatusOK, gin.H{
		"totalClients":   totalClients,
		"activeProjects": activeProjects,
		"unpaidInvoices": unpaidInvoices,
		"unpaidTotal":    unpaidTotal,
		"monthRevenue":   monthRevenue,
	})
}

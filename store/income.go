package store

import (
	"freelancedesk-backend/models"

	"gorm.io/gorm"
)

// MonthlyIncomes returns the precomputed income series in chronological
// order. No relation to embed; the aggregate table is already flat.
func MonthlyIncomes(db *gorm.DB) ([]models.MonthlyIncome, error) {
	var incomes []models.MonthlyIncome
	if err := db.Order("year").Order("month").Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

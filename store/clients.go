// Package store holds the read accessors: one function per logical list,
// each issuing a relation-embedded query and returning display-ready rows
// with the embedded relation flattened onto the record. Accessors are
// read-only and never swallow a database error. Accessors that depend on a
// filter value short-circuit to an empty result when the filter is absent
// (uuid.Nil) instead of querying.
package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clients returns every client ordered by name.
func Clients(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	if err := db.Order("name").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Client returns a single client by id, or nil when id is absent.
func Client(db *gorm.DB, id uuid.UUID) (*models.Client, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var client models.Client
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

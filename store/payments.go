package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentView is a payment row with its invoice relation flattened, plus the
// client and project reached through that invoice. A payment whose invoice
// is missing keeps empty-string fields for all three.
type PaymentView struct {
	models.Payment
	InvoiceNumber string `json:"invoiceNumber"`
	ClientName    string `json:"clientName"`
	ClientCompany string `json:"clientCompany"`
	ProjectName   string `json:"projectName"`
}

// Payments returns every payment newest-first. The client and project hang
// off the invoice, not the payment, so after the embedded invoice read the
// distinct client and project ids are collected and resolved with one
// batched read per table rather than one pair of reads per payment.
func Payments(db *gorm.DB) ([]PaymentView, error) {
	var payments []models.Payment
	if err := db.Preload("Invoice").
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	clientIDs := make([]uuid.UUID, 0, len(payments))
	projectIDs := make([]uuid.UUID, 0, len(payments))
	seenClients := make(map[uuid.UUID]bool)
	seenProjects := make(map[uuid.UUID]bool)
	for _, p := range payments {
		if p.Invoice == nil {
			continue
		}
		if !seenClients[p.Invoice.ClientID] {
			seenClients[p.Invoice.ClientID] = true
			clientIDs = append(clientIDs, p.Invoice.ClientID)
		}
		if !seenProjects[p.Invoice.ProjectID] {
			seenProjects[p.Invoice.ProjectID] = true
			projectIDs = append(projectIDs, p.Invoice.ProjectID)
		}
	}

	clientsByID := make(map[uuid.UUID]models.Client, len(clientIDs))
	if len(clientIDs) > 0 {
		var clients []models.Client
		if err := db.Where("id IN ?", clientIDs).Find(&clients).Error; err != nil {
			return nil, err
		}
		for _, c := range clients {
			clientsByID[c.ID] = c
		}
	}

	projectsByID := make(map[uuid.UUID]models.Project, len(projectIDs))
	if len(projectIDs) > 0 {
		var projects []models.Project
		if err := db.Where("id IN ?", projectIDs).Find(&projects).Error; err != nil {
			return nil, err
		}
		for _, p := range projects {
			projectsByID[p.ID] = p
		}
	}

	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		view := PaymentView{Payment: p}
		if p.Invoice != nil {
			view.InvoiceNumber = p.Invoice.Number
			if client, ok := clientsByID[p.Invoice.ClientID]; ok {
				view.ClientName = client.Name
				view.ClientCompany = client.Company
			}
			if project, ok := projectsByID[p.Invoice.ProjectID]; ok {
				view.ProjectName = project.Name
			}
		}
		views = append(views, view)
	}
	return views, nil
}

package store

import (
	"freelancedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceView is an invoice row with its client, project and document
// relations flattened. The document relation is optional by schema.
type InvoiceView struct {
	models.Invoice
	ClientName    string `json:"clientName"`
	ClientCompany string `json:"clientCompany"`
	ProjectName   string `json:"projectName"`
	DocumentName  string `json:"documentName"`
	StatusDisplay string `json:"statusDisplay"`
}

func flattenInvoice(i models.Invoice) InvoiceView {
	view := InvoiceView{
		Invoice:       i,
		StatusDisplay: models.DisplayInvoiceStatus(i.Status),
	}
	if i.Client != nil {
		view.ClientName = i.Client.Name
		view.ClientCompany = i.Client.Company
	}
	if i.Project != nil {
		view.ProjectName = i.Project.Name
	}
	if i.Document != nil {
		view.DocumentName = i.Document.Name
	}
	return view
}

// Invoices returns every invoice newest-first with client, project and
// document embedded and flattened. An optional stored-form status narrows
// the list.
func Invoices(db *gorm.DB, status string) ([]InvoiceView, error) {
	query := db.Preload("Client").Preload("Project").Preload("Document").
		Order("date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}

	views := make([]InvoiceView, 0, len(invoices))
	for _, i := range invoices {
		views = append(views, flattenInvoice(i))
	}
	return views, nil
}

// Invoice returns one invoice by id with its relations flattened, or nil
// when id is absent.
func Invoice(db *gorm.DB, id uuid.UUID) (*InvoiceView, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	var invoice models.Invoice
	if err := db.Preload("Client").Preload("Project").Preload("Document").
		First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}

	view := flattenInvoice(invoice)
	return &view, nil
}

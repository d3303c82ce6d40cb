package client

import (
	"context"
	"net/url"
	"time"

	"freelancedesk-backend/models"
	"freelancedesk-backend/store"

	"github.com/google/uuid"
)

// ClientParams is the payload for creating or updating a client. Nil fields
// are left unchanged on update.
type ClientParams struct {
	Name     *string `json:"name,omitempty"`
	Company  *string `json:"company,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type ProjectParams struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
}

type DocumentParams struct {
	Name      *string    `json:"name,omitempty"`
	Type      *string    `json:"type,omitempty"`
	ClientID  *uuid.UUID `json:"client_id,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	FileURL   *string    `json:"file_url,omitempty"`
}

type FileParams struct {
	Name      *string    `json:"name,omitempty"`
	Type      *string    `json:"type,omitempty"`
	Size      *string    `json:"size,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	FileURL   *string    `json:"file_url,omitempty"`
}

type InvoiceParams struct {
	Number     *string    `json:"number,omitempty"`
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Amount     *float64   `json:"amount,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Status     *string    `json:"status,omitempty"`
}

type PaymentParams struct {
	InvoiceIDs    []uuid.UUID `json:"invoiceIds"`
	Date          *time.Time  `json:"date,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
}

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := c.do(ctx, "GET", "/api/clients", nil, &clients)
	return clients, err
}

func (c *Client) CreateClient(ctx context.Context, params ClientParams) (*models.Client, error) {
	var created models.Client
	err := c.do(ctx, "POST", "/api/clients", params, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uuid.UUID, params ClientParams) error {
	return c.do(ctx, "PUT", "/api/clients/"+id.String(), params, nil)
}

func (c *Client) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", "/api/clients/"+id.String(), nil, nil)
}

func (c *Client) ClientProjects(ctx context.Context, clientID uuid.UUID) ([]store.ProjectView, error) {
	var projects []store.ProjectView
	err := c.do(ctx, "GET", "/api/clients/"+clientID.String()+"/projects", nil, &projects)
	return projects, err
}

// Projects lists projects, optionally narrowed by status. The status may be
// given in display form; it is translated to its stored form before the
// request, like every write path.
func (c *Client) Projects(ctx context.Context, status string) ([]store.ProjectView, error) {
	path := "/api/projects"
	if status != "" {
		path += "?status=" + url.QueryEscape(models.NormalizeProjectStatus(status))
	}
	var projects []store.ProjectView
	err := c.do(ctx, "GET", path, nil, &projects)
	return projects, err
}

func (c *Client) Project(ctx context.Context, id uuid.UUID) (*store.ProjectView, error) {
	var project store.ProjectView
	err := c.do(ctx, "GET", "/api/projects/"+id.String(), nil, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, params ProjectParams) (*models.Project, error) {
	if params.Status != nil {
		stored := models.NormalizeProjectStatus(*params.Status)
		params.Status = &stored
	}
	var created models.Project
	err := c.do(ctx, "POST", "/api/projects", params, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, params ProjectParams) error {
	if params.Status != nil {
		stored := models.NormalizeProjectStatus(*params.Status)
		params.Status = &stored
	}
	return c.do(ctx, "PUT", "/api/projects/"+id.String(), params, nil)
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", "/api/projects/"+id.String(), nil, nil)
}

func (c *Client) Documents(ctx context.Context) ([]store.DocumentView, error) {
	var documents []store.DocumentView
	err := c.do(ctx, "GET", "/api/documents", nil, &documents)
	return documents, err
}

func (c *Client) ProjectDocuments(ctx context.Context, projectID uuid.UUID) ([]store.DocumentView, error) {
	var documents []store.DocumentView
	err := c.do(ctx, "GET", "/api/projects/"+projectID.String()+"/documents", nil, &documents)
	return documents, err
}

func (c *Client) CreateDocument(ctx context.Context, params DocumentParams) (*models.Document, error) {
	var created models.Document
	err := c.do(ctx, "POST", "/api/documents", params, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDocument(ctx context.Context, id uuid.UUID, params DocumentParams) error {
	return c.do(ctx, "PUT", "/api/documents/"+id.String(), params, nil)
}

func (c *Client) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", "/api/documents/"+id.String(), nil, nil)
}

func (c *Client) Files(ctx context.Context) ([]store.FileView, error) {
	var files []store.FileView
	err := c.do(ctx, "GET", "/api/files", nil, &files)
	return files, err
}

func (c *Client) ProjectFiles(ctx context.Context, projectID uuid.UUID) ([]store.FileView, error) {
	var files []store.FileView
	err := c.do(ctx, "GET", "/api/projects/"+projectID.String()+"/files", nil, &files)
	return files, err
}

func (c *Client) CreateFile(ctx context.Context, params FileParams) (*models.FileItem, error) {
	var created models.FileItem
	err := c.do(ctx, "POST", "/api/files", params, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", "/api/files/"+id.String(), nil, nil)
}

// Invoices lists invoices, optionally narrowed by a display- or stored-form
// status.
func (c *Client) Invoices(ctx context.Context, status string) ([]store.InvoiceView, error) {
	path := "/api/invoices"
	if status != "" {
		path += "?status=" + url.QueryEscape(models.NormalizeInvoiceStatus(status))
	}
	var invoices []store.InvoiceView
	err := c.do(ctx, "GET", path, nil, &invoices)
	return invoices, err
}

func (c *Client) CreateInvoice(ctx context.Context, params InvoiceParams) (*models.Invoice, error) {
	if params.Status != nil {
		stored := models.NormalizeInvoiceStatus(*params.Status)
		params.Status = &stored
	}
	var created models.Invoice
	err := c.do(ctx, "POST", "/api/invoices", params, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id uuid.UUID, params InvoiceParams) error {
	if params.Status != nil {
		stored := models.NormalizeInvoiceStatus(*params.Status)
		params.Status = &stored
	}
	return c.do(ctx, "PUT", "/api/invoices/"+id.String(), params, nil)
}

func (c *Client) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", "/api/invoices/"+id.String(), nil, nil)
}

func (c *Client) Payments(ctx context.Context) ([]store.PaymentView, error) {
	var payments []store.PaymentView
	err := c.do(ctx, "GET", "/api/payments", nil, &payments)
	return payments, err
}

// CreatePayments records a payment for each selected invoice; the server
// flips the invoices to Paid in the same transaction.
func (c *Client) CreatePayments(ctx context.Context, params PaymentParams) ([]models.Payment, error) {
	var created []models.Payment
	err := c.do(ctx, "POST", "/api/payments", params, &created)
	return created, err
}

func (c *Client) MonthlyIncome(ctx context.Context) ([]models.MonthlyIncome, error) {
	var incomes []models.MonthlyIncome
	err := c.do(ctx, "GET", "/api/income/monthly", nil, &incomes)
	return incomes, err
}

package models

import "log"

// Project and invoice statuses are closed vocabularies. Rows are stored with
// the English form; the UI speaks the Russian display form. Both directions
// go through the maps below; a value missing from its map is passed through
// unchanged and logged so legacy rows keep rendering.

type ProjectStatus string

const (
	ProjectReady      ProjectStatus = "Ready"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectFrozen     ProjectStatus = "Frozen"
	ProjectCanceled   ProjectStatus = "Canceled"
)

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

var ProjectStatuses = []ProjectStatus{
	ProjectReady,
	ProjectInProgress,
	ProjectFrozen,
	ProjectCanceled,
}

var InvoiceStatuses = []InvoiceStatus{
	InvoiceDraft,
	InvoicePending,
	InvoicePaid,
	InvoiceOverdue,
}

var projectStatusDisplay = map[ProjectStatus]string{
	ProjectReady:      "Готов",
	ProjectInProgress: "В процессе",
	ProjectFrozen:     "Заморожен",
	ProjectCanceled:   "Отменен",
}

var projectStatusStored = map[string]ProjectStatus{
	"Готов":      ProjectReady,
	"В процессе": ProjectInProgress,
	"Заморожен":  ProjectFrozen,
	"Отменен":    ProjectCanceled,
}

var invoiceStatusDisplay = map[InvoiceStatus]string{
	InvoiceDraft:   "Черновик",
	InvoicePending: "Ожидает",
	InvoicePaid:    "Оплачен",
	InvoiceOverdue: "Просрочен",
}

var invoiceStatusStored = map[string]InvoiceStatus{
	"Черновик":  InvoiceDraft,
	"Ожидает":   InvoicePending,
	"Оплачен":   InvoicePaid,
	"Просрочен": InvoiceOverdue,
}

// DisplayProjectStatus returns the display form of a stored project status.
// Rows written before the vocabulary was closed may carry "Completed"; it
// renders as Готов.
func DisplayProjectStatus(stored string) string {
	if stored == "Completed" {
		return projectStatusDisplay[ProjectReady]
	}
	if display, ok := projectStatusDisplay[ProjectStatus(stored)]; ok {
		return display
	}
	log.Printf("[STATUS] unmapped project status %q passed through", stored)
	return stored
}

// StoredProjectStatus returns the stored form of a display project status.
func StoredProjectStatus(display string) string {
	if stored, ok := projectStatusStored[display]; ok {
		return string(stored)
	}
	log.Printf("[STATUS] unmapped project status %q passed through", display)
	return display
}

// DisplayInvoiceStatus returns the display form of a stored invoice status.
func DisplayInvoiceStatus(stored string) string {
	if display, ok := invoiceStatusDisplay[InvoiceStatus(stored)]; ok {
		return display
	}
	log.Printf("[STATUS] unmapped invoice status %q passed through", stored)
	return stored
}

// StoredInvoiceStatus returns the stored form of a display invoice status.
func StoredInvoiceStatus(display string) string {
	if stored, ok := invoiceStatusStored[display]; ok {
		return string(stored)
	}
	log.Printf("[STATUS] unmapped invoice status %q passed through", display)
	return display
}

// NormalizeProjectStatus maps a status arriving from the UI to its stored
// form. Stored-form values are accepted as-is so API clients can speak
// either vocabulary.
func NormalizeProjectStatus(s string) string {
	if ValidProjectStatus(s) {
		return s
	}
	return StoredProjectStatus(s)
}

// NormalizeInvoiceStatus maps a status arriving from the UI to its stored
// form, accepting stored-form values as-is.
func NormalizeInvoiceStatus(s string) string {
	if ValidInvoiceStatus(s) {
		return s
	}
	return StoredInvoiceStatus(s)
}

// ValidProjectStatus reports whether s is a member of the closed project
// status vocabulary.
func ValidProjectStatus(s string) bool {
	_, ok := projectStatusDisplay[ProjectStatus(s)]
	return ok
}

// ValidInvoiceStatus reports whether s is a member of the closed invoice
// status vocabulary.
func ValidInvoiceStatus(s string) bool {
	_, ok := invoiceStatusDisplay[InvoiceStatus(s)]
	return ok
}

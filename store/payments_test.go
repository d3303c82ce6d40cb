package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentsBatchesRelationChase(t *testing.T) {
	db, mock := newMockDB(t)

	clientID := uuid.New()
	projectID := uuid.New()
	invoiceA := uuid.New()
	invoiceB := uuid.New()
	date := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	// Two payments against two invoices of the same client/project must
	// resolve in exactly four reads: payments, invoices, clients, projects.
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(uuid.New().String(), invoiceA.String(), 5000.0, date, "Bank Transfer", date).
			AddRow(uuid.New().String(), invoiceB.String(), 2500.0, date, "Credit Card", date))
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows(invoiceColumns).
			AddRow(invoiceA.String(), clientID.String(), projectID.String(), nil, "INV-2024-001", 5000.0, date, date, "Paid", date, date).
			AddRow(invoiceB.String(), clientID.String(), projectID.String(), nil, "INV-2024-002", 2500.0, date, date, "Paid", date, date))
	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(clientID.String(), "Acme", "Acme LLC", "", "", "", "", date))
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), clientID.String(), "Rebrand", "", date, nil, "Ready", 0.0, date))

	views, err := Payments(db)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "INV-2024-001", views[0].InvoiceNumber)
	assert.Equal(t, "Acme", views[0].ClientName)
	assert.Equal(t, "Acme LLC", views[0].ClientCompany)
	assert.Equal(t, "Rebrand", views[0].ProjectName)
	assert.Equal(t, "INV-2024-002", views[1].InvoiceNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentsMissingInvoiceDefaultsToEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	date := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(uuid.New().String(), uuid.New().String(), 1000.0, date, "Bank Transfer", date))
	// The invoice row is gone; no client or project read should follow.
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	views, err := Payments(db)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "", views[0].InvoiceNumber)
	assert.Equal(t, "", views[0].ClientName)
	assert.Equal(t, "", views[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentsEmptyTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows(paymentColumns))

	views, err := Payments(db)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle backed by sqlmock so accessors can be
// exercised without a database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

var clientColumns = []string{"id", "name", "company", "industry", "email", "phone", "status", "created_at"}

var projectColumns = []string{"id", "client_id", "name", "description", "start_date", "end_date", "status", "budget", "created_at"}

var documentColumns = []string{"id", "client_id", "project_id", "name", "type", "file_url", "created_at", "updated_at"}

var fileColumns = []string{"id", "project_id", "name", "type", "size", "file_url", "created_at", "updated_at"}

var invoiceColumns = []string{"id", "client_id", "project_id", "document_id", "number", "amount", "date", "due_date", "status", "created_at", "updated_at"}

var paymentColumns = []string{"id", "invoice_id", "amount", "date", "payment_method", "created_at"}

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"freelancedesk-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTest points config.DB at a sqlmock-backed gorm handle for the
// duration of one test.
func setupTest(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		conn.Close()
	})

	return mock
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var invoiceTestColumns = []string{"id", "client_id", "project_id", "document_id", "number", "amount", "date", "due_date", "status", "created_at", "updated_at"}

var projectTestColumns = []string{"id", "client_id", "name", "description", "start_date", "end_date", "status", "budget", "created_at"}

var clientTestColumns = []string{"id", "name", "company", "industry", "email", "phone", "status", "created_at"}

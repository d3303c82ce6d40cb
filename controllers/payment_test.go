package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRouter() *gin.Engine {
	r := gin.New()
	r.POST("/payments", CreatePayments)
	return r
}

func TestCreatePaymentsMarksInvoicesPaid(t *testing.T) {
	mock := setupTest(t)
	router := paymentRouter()

	invoiceA := uuid.New()
	invoiceB := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	for i, id := range []uuid.UUID{invoiceA, invoiceB} {
		mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
			WithArgs(id.String(), 1).
			WillReturnRows(sqlmock.NewRows(invoiceTestColumns).
				AddRow(id.String(), uuid.New().String(), uuid.New().String(), nil,
					fmt.Sprintf("INV-2024-00%d", i+1), 1500.0, now, now, "Pending", now, now))
		mock.ExpectExec(`INSERT INTO "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "invoices" SET`).
			WithArgs("Paid", sqlmock.AnyArg(), id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	w := performRequest(router, http.MethodPost, "/payments", gin.H{
		"invoiceIds":    []string{invoiceA.String(), invoiceB.String()},
		"paymentMethod": "Credit Card",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Credit Card")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentsRejectsAlreadyPaid(t *testing.T) {
	mock := setupTest(t)
	router := paymentRouter()

	invoiceID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WithArgs(invoiceID.String(), 1).
		WillReturnRows(sqlmock.NewRows(invoiceTestColumns).
			AddRow(invoiceID.String(), uuid.New().String(), uuid.New().String(), nil,
				"INV-2024-003", 900.0, now, now, "Paid", now, now))
	mock.ExpectRollback()

	w := performRequest(router, http.MethodPost, "/payments", gin.H{
		"invoiceIds": []string{invoiceID.String()},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INV-2024-003")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentsRollsBackWhenInvoiceMissing(t *testing.T) {
	mock := setupTest(t)
	router := paymentRouter()

	present := uuid.New()
	missing := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WithArgs(present.String(), 1).
		WillReturnRows(sqlmock.NewRows(invoiceTestColumns).
			AddRow(present.String(), uuid.New().String(), uuid.New().String(), nil,
				"INV-2024-004", 400.0, now, now, "Pending", now, now))
	mock.ExpectExec(`INSERT INTO "payments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "invoices" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WithArgs(missing.String(), 1).
		WillReturnRows(sqlmock.NewRows(invoiceTestColumns))
	mock.ExpectRollback()

	w := performRequest(router, http.MethodPost, "/payments", gin.H{
		"invoiceIds": []string{present.String(), missing.String()},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentsRequiresInvoiceIDs(t *testing.T) {
	mock := setupTest(t)
	router := paymentRouter()

	w := performRequest(router, http.MethodPost, "/payments", gin.H{
		"invoiceIds": []string{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func clientRouter() *gin.Engine {
	r := gin.New()
	r.POST("/clients", CreateClient)
	r.DELETE("/clients/:id", DeleteClient)
	return r
}

func TestCreateClientPersistsRow(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "clients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(router, http.MethodPost, "/clients", gin.H{
		"name":    "Acme",
		"company": "Acme LLC",
		"email":   "billing@acme.test",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientRequiresName(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	w := performRequest(router, http.MethodPost, "/clients", gin.H{
		"company": "Acme LLC",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientRejectsBadEmail(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	w := performRequest(router, http.MethodPost, "/clients", gin.H{
		"name":  "Acme",
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClientNotFound(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "clients"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := performRequest(router, http.MethodDelete, "/clients/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClientRemovesRow(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "clients"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(router, http.MethodDelete, "/clients/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClientRejectsMalformedID(t *testing.T) {
	mock := setupTest(t)
	router := clientRouter()

	w := performRequest(router, http.MethodDelete, "/clients/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsFlattensBothRelations(t *testing.T) {
	db, mock := newMockDB(t)

	clientID := uuid.New()
	projectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "documents"`).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(uuid.New().String(), clientID.String(), projectID.String(), "Contract", "contract", "/uploads/a.pdf", now, now))
	// Preloads fire alphabetically: clients before projects.
	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(clientID.String(), "Acme", "Acme LLC", "", "", "", "Active", now))
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), clientID.String(), "Rebrand", "", now, nil, "In Progress", 0.0, now))

	views, err := Documents(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Contract", views[0].Name)
	assert.Equal(t, "Acme", views[0].ClientName)
	assert.Equal(t, "Acme LLC", views[0].ClientCompany)
	assert.Equal(t, "Rebrand", views[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentsNullRelationsDefaultToEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "documents"`).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(uuid.New().String(), nil, nil, "Loose note", "other", "/uploads/b.pdf", now, now))

	views, err := Documents(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "", views[0].ClientName)
	assert.Equal(t, "", views[0].ClientCompany)
	assert.Equal(t, "", views[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDocumentsAbsentFilterShortCircuits(t *testing.T) {
	db, mock := newMockDB(t)

	views, err := ProjectDocuments(db, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

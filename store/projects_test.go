package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsFlattensClient(t *testing.T) {
	db, mock := newMockDB(t)

	projectID := uuid.New()
	clientID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), clientID.String(), "Landing page", "", start, nil, "In Progress", 1500.0, start))
	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(clientID.String(), "Acme", "Acme LLC", "", "", "", "", start))

	views, err := Projects(db, "")
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Landing page", views[0].Name)
	assert.Equal(t, "Acme", views[0].ClientName)
	assert.Equal(t, "Acme LLC", views[0].ClientCompany)
	assert.Equal(t, "В процессе", views[0].StatusDisplay)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectsMissingClientDefaultsToEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// client_id is NULL, so no client read should happen at all
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(uuid.New().String(), nil, "Internal tooling", "", start, nil, "Ready", 0.0, start))

	views, err := Projects(db, "")
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "", views[0].ClientName)
	assert.Equal(t, "", views[0].ClientCompany)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectsStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE status = \$1`).
		WithArgs("In Progress").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(uuid.New().String(), nil, "Ongoing work", "", start, nil, "In Progress", 0.0, start))

	views, err := Projects(db, "In Progress")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "In Progress", views[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectAbsentIDShortCircuits(t *testing.T) {
	db, mock := newMockDB(t)

	view, err := Project(db, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, view)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientProjectsAbsentFilterShortCircuits(t *testing.T) {
	db, mock := newMockDB(t)

	views, err := ClientProjects(db, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectsIdempotentReads(t *testing.T) {
	db, mock := newMockDB(t)

	projectID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT \* FROM "projects"`).
			WillReturnRows(sqlmock.NewRows(projectColumns).
				AddRow(projectID.String(), nil, "Landing page", "", start, nil, "Ready", 0.0, start))
	}

	first, err := Projects(db, "")
	require.NoError(t, err)
	second, err := Projects(db, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientProjectsScopedQuery(t *testing.T) {
	db, mock := newMockDB(t)

	clientID := uuid.New()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE client_id = \$1`).
		WithArgs(clientID.String()).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(uuid.New().String(), clientID.String(), "Rebrand", "", start, nil, "Frozen", 0.0, start))
	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(clientID.String(), "Acme", "", "", "", "", "", start))

	views, err := ClientProjects(db, clientID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Acme", views[0].ClientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

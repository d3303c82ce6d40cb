package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesFlattensProject(t *testing.T) {
	db, mock := newMockDB(t)

	projectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "files"`).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(uuid.New().String(), projectID.String(), "logo.png", "image/png", "24 KB", "/uploads/c.png", now, now))
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(projectID.String(), uuid.New().String(), "Rebrand", "", now, nil, "In Progress", 0.0, now))

	views, err := Files(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "logo.png", views[0].Name)
	assert.Equal(t, "Rebrand", views[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilesNullProjectDefaultsToEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "files"`).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(uuid.New().String(), nil, "scan.pdf", "application/pdf", "1.2 MB", "/uploads/d.pdf", now, now))

	views, err := Files(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "", views[0].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectFilesAbsentFilterShortCircuits(t *testing.T) {
	db, mock := newMockDB(t)

	views, err := ProjectFiles(db, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

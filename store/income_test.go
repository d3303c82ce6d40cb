package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incomeColumns = []string{"id", "year", "month", "revenue", "projects", "created_at"}

func TestMonthlyIncomesChronological(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "monthly_incomes" ORDER BY year,month`).
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(uuid.New().String(), 2023, 12, 4200.0, 2, now).
			AddRow(uuid.New().String(), 2024, 1, 5100.0, 3, now))

	incomes, err := MonthlyIncomes(db)
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	assert.Equal(t, 2023, incomes[0].Year)
	assert.Equal(t, 12, incomes[0].Month)
	assert.Equal(t, 2024, incomes[1].Year)
	assert.InDelta(t, 5100.0, incomes[1].Revenue, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

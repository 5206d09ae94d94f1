package repositories

import (
	"testing"
	"time"

	"MailCheck/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRecordRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "validation_records"`).
		WithArgs("test@example.com", true, 0, 0, "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	record := &models.ValidationRecord{
		Email:   "test@example.com",
		IsValid: true,
	}
	err := repo.Create(record)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "validation_records" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_valid", "error_count", "warning_count", "suggestion", "created_at"}).
			AddRow(2, "b@example.com", false, 1, 0, "", now).
			AddRow(1, "a@example.com", true, 0, 0, "", now))

	records, err := repo.Recent(2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b@example.com", records[0].Email)
	assert.False(t, records[0].IsValid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Stats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "validation_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "validation_records" WHERE is_valid = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "validation_records" WHERE suggestion <> ''`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	stats, err := repo.Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(7), stats.Valid)
	assert.Equal(t, int64(3), stats.Invalid)
	assert.Equal(t, int64(2), stats.Suggested)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_DeleteOlderThan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "validation_records" WHERE created_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	deleted, err := repo.DeleteOlderThan(cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

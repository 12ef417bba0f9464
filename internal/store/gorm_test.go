package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockBackend(t *testing.T) (*GormBackend, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewGormBackend(db), mock
}

func TestGormBackendGet(t *testing.T) {
	b, mock := newMockBackend(t)

	rows := sqlmock.NewRows([]string{"entry_key", "value", "updated_at"}).
		AddRow("doctors", []byte(`[{"username":"dr.smith"}]`), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `kv_entries` WHERE entry_key = \\?").WillReturnRows(rows)

	got, err := b.Get(context.Background(), "doctors")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"dr.smith"}]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendGetMissing(t *testing.T) {
	b, mock := newMockBackend(t)

	mock.ExpectQuery("SELECT \\* FROM `kv_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"entry_key", "value", "updated_at"}))

	_, err := b.Get(context.Background(), "admins")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendSetUpserts(t *testing.T) {
	b, mock := newMockBackend(t)

	mock.ExpectExec("INSERT INTO `kv_entries` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, b.Set(context.Background(), "currentDoctor", []byte("dr.smith")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendDelete(t *testing.T) {
	b, mock := newMockBackend(t)

	mock.ExpectExec("DELETE FROM `kv_entries` WHERE entry_key = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, b.Delete(context.Background(), "currentDoctor"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendQueryError(t *testing.T) {
	b, mock := newMockBackend(t)

	mock.ExpectQuery("SELECT \\* FROM `kv_entries`").WillReturnError(assert.AnError)

	_, err := b.Get(context.Background(), "patients")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDB(DatabaseConfig{Driver: "sqlite", DSN: "x"})
	assert.Error(t, err)
}

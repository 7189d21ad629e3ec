package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"preview-tracker/internal/pkg/config"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, getLogLevel("info"))
	assert.Equal(t, logger.Warn, getLogLevel("warn"))
	assert.Equal(t, logger.Error, getLogLevel("error"))
	assert.Equal(t, logger.Silent, getLogLevel(""))
}

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(&config.DatabaseConfig{Driver: "postgres", URL: "postgres://localhost/previews"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = dialectorFor(&config.DatabaseConfig{Driver: "mysql", URL: "root@tcp(localhost:3306)/previews"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = dialectorFor(&config.DatabaseConfig{Driver: "sqlserver"})
	assert.Error(t, err)
}

func TestEnsureStatusTypePostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TYPE preview_status AS ENUM ('ready', 'down', 'error')")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, ensureStatusType(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureStatusTypeMySQLIsNoop(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	require.NoError(t, ensureStatusType(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package database

import (
	"errors"
	"testing"
	"time"

	"bankoffice/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return &DB{DB: gdb}, mock
}

func TestHealthCheck(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectPing()
	assert.NoError(t, db.HealthCheck())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err := db.HealthCheck()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClose(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectClose()
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupTestDBMigratesSchema(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{
		"roles", "users", "branches", "account_types",
		"customers", "accounts", "transactions",
		"beneficiaries", "doc_types", "documents",
	} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestAccountAssociationsResolveAsBelongsTo(t *testing.T) {
	db := SetupTestDB(t)

	// Reference tables must keep their own primary keys after migration;
	// a reversed association would rewrite branch_id as an integer FK
	// and the seed insert of "BR001" would fail.
	customer := CreateTestCustomer(t, db)
	account := CreateTestAccount(t, db, customer.CustomerID, 1, "5000")

	var loaded models.Account
	err := db.Preload("Branch").Preload("AccountType").Preload("Customer").
		First(&loaded, account.AccountID).Error
	require.NoError(t, err)

	require.NotNil(t, loaded.Branch)
	assert.Equal(t, "BR001", loaded.Branch.BranchID)
	assert.Equal(t, "Main Branch", loaded.Branch.BranchName)

	require.NotNil(t, loaded.AccountType)
	assert.Equal(t, models.AccountTypeSavings, loaded.AccountType.TypeName)

	require.NotNil(t, loaded.Customer)
	assert.Equal(t, customer.CustomerID, loaded.Customer.CustomerID)
}

func TestCreatePersistsInactiveFlag(t *testing.T) {
	db := SetupTestDB(t)

	customer := CreateTestCustomer(t, db)
	doc := &models.Document{
		Content:    []byte("scan"),
		CustomerID: customer.CustomerID,
		DocTypeID:  1,
		IsActive:   false,
	}
	require.NoError(t, db.Create(doc).Error)

	var stored models.Document
	require.NoError(t, db.First(&stored, doc.DocID).Error)
	assert.False(t, stored.IsActive, "inserted inactive row must stay inactive")
}

func TestWaitForDatabase(t *testing.T) {
	origRetries, origInterval := maxRetries, retryInterval
	maxRetries, retryInterval = 2, 10*time.Millisecond
	defer func() { maxRetries, retryInterval = origRetries, origInterval }()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()
	runner := NewMigrationRunner(sqlDB)
	assert.NoError(t, runner.WaitForDatabase())

	mock.ExpectPing().WillReturnError(errors.New("dial refused"))
	mock.ExpectPing().WillReturnError(errors.New("dial refused"))
	assert.Error(t, runner.WaitForDatabase())
}

func TestRunMigrationsSkipsWhenDirectoryMissing(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	runner := NewMigrationRunner(sqlDB)
	runner.migrationsPath = "does/not/exist"

	applied, err := runner.RunMigrations()
	assert.NoError(t, err)
	assert.False(t, applied, "a missing directory cannot own the schema")
}

func TestRunMigrationsIfEnabledDisabledByDefault(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "false")

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	applied, err := RunMigrationsIfEnabled(sqlDB)
	assert.NoError(t, err)
	assert.False(t, applied)
}

func newBareSqliteDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return &DB{DB: gdb}
}

func TestEnsureSchemaBuildsTablesWithoutMigrations(t *testing.T) {
	db := newBareSqliteDB(t)
	require.False(t, db.Migrator().HasTable("accounts"))

	require.NoError(t, db.EnsureSchema(false))

	assert.True(t, db.Migrator().HasTable("accounts"))
	assert.True(t, db.Migrator().HasTable("transactions"))
	assert.True(t, db.Migrator().HasTable("branches"))
}

func TestEnsureSchemaTrustsAppliedMigrations(t *testing.T) {
	db := newBareSqliteDB(t)

	require.NoError(t, db.EnsureSchema(true))

	assert.False(t, db.Migrator().HasTable("accounts"))
}

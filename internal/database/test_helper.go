package database

import (
	"fmt"
	"testing"
	"time"

	"bankoffice/internal/config"
	"bankoffice/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	SeedReferenceData(t, testDB)

	return testDB
}

// SeedReferenceData inserts the branches and account types every test
// scenario depends on. Type 1 is Savings, type 2 is Current.
func SeedReferenceData(t *testing.T, db *DB) {
	t.Helper()

	types := []models.AccountType{
		{TypeID: 1, TypeName: models.AccountTypeSavings, IsActive: true},
		{TypeID: 2, TypeName: models.AccountTypeCurrent, IsActive: true},
	}
	for i := range types {
		if err := db.Create(&types[i]).Error; err != nil {
			t.Fatalf("failed to seed account type: %v", err)
		}
	}

	branches := []models.Branch{
		{BranchID: "BR001", BranchName: "Main Branch", IsActive: true},
		{BranchID: "BR002", BranchName: "City Branch", IsActive: true},
	}
	for i := range branches {
		if err := db.Create(&branches[i]).Error; err != nil {
			t.Fatalf("failed to seed branch: %v", err)
		}
	}

	docTypes := []models.DocType{
		{DocTypeID: 1, DocType: "Passport", IsActive: true},
		{DocTypeID: 2, DocType: "Utility Bill", IsActive: true},
	}
	for i := range docTypes {
		if err := db.Create(&docTypes[i]).Error; err != nil {
			t.Fatalf("failed to seed doc type: %v", err)
		}
	}
}

func CreateTestUser(t *testing.T, db *DB, username, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		IsActive: true,
		RoleID:   1,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCustomer(t *testing.T, db *DB) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		AddressLine1: gofakeit.Street(),
		Pincode:      gofakeit.Zip(),
		PhoneNumber:  gofakeit.Phone(),
		EmailAddress: gofakeit.Email(),
		DateOfBirth:  time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		City:         gofakeit.City(),
		Country:      gofakeit.Country(),
		IsActive:     true,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestAccount(t *testing.T, db *DB, customerID int, typeID int, balance string) *models.Account {
	t.Helper()

	amount, err := decimal.NewFromString(balance)
	if err != nil {
		t.Fatalf("invalid test balance %q: %v", balance, err)
	}

	account := &models.Account{
		Balance:         amount,
		WithdrawalQuota: 10,
		DepositQuota:    10,
		IsActive:        true,
		CustomerID:      customerID,
		TypeID:          typeID,
		BranchID:        "BR001",
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"documents",
		"beneficiaries",
		"transactions",
		"accounts",
		"customers",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

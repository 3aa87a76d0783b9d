package repositories

import (
	"bankoffice/internal/models"

	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines account persistence operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id int64) (*models.Account, error)
	GetByCustomerID(customerID int) ([]models.Account, error)
	Delete(id int64) error
}

// TransactionRepositoryInterface defines the fund transfer engine and
// transaction history lookups
type TransactionRepositoryInterface interface {
	FundTransfer(sourceID, destID int64, amount decimal.Decimal) error
	ListByAccount(accountID int64) ([]models.Transaction, error)
}

// BeneficiaryRepositoryInterface defines beneficiary persistence operations
type BeneficiaryRepositoryInterface interface {
	Add(beneficiary *models.Beneficiary) error
	ListByAccount(accountID int64) ([]models.Beneficiary, error)
	Delete(id int) error
}

// CustomerRepositoryInterface defines customer persistence operations
type CustomerRepositoryInterface interface {
	GetActiveByID(id int) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(id int, updates *models.CustomerUpdate) (*models.Customer, error)
}

// UserRepositoryInterface defines user credential operations
type UserRepositoryInterface interface {
	GetByUsername(username string) (*models.User, error)
	ChangePassword(username, newPassword string) error
}

// DocumentRepositoryInterface defines document retrieval operations
type DocumentRepositoryInterface interface {
	GetByCustomerID(customerID int) ([]models.Document, error)
}

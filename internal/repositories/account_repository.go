package repositories

import (
	"errors"
	"fmt"

	"bankoffice/internal/config"
	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"gorm.io/gorm"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db     *gorm.DB
	policy *config.PolicyConfig
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB, policy *config.PolicyConfig) AccountRepositoryInterface {
	return &accountRepository{
		db:     db,
		policy: policy,
	}
}

// Create opens a new account after verifying the branch, the account
// type, the owning customer and the opening balance floor.
func (r *accountRepository) Create(account *models.Account) error {
	if err := account.Validate(); err != nil {
		return apperrors.NewDomainf(apperrors.ValidationRequiredField, "%s", err.Error())
	}

	var branch models.Branch
	if err := r.db.Where("branch_id = ? AND is_active = ?", account.BranchID, true).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.AccountBranchNotFound)
		}
		return fmt.Errorf("failed to look up branch: %w", err)
	}

	var accountType models.AccountType
	if err := r.db.Where("type_id = ? AND is_active = ?", account.TypeID, true).
		First(&accountType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.AccountTypeNotFound)
		}
		return fmt.Errorf("failed to look up account type: %w", err)
	}

	var customer models.Customer
	if err := r.db.Where("customer_id = ? AND is_active = ?", account.CustomerID, true).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.AccountCustomerNotFound)
		}
		return fmt.Errorf("failed to look up customer: %w", err)
	}

	if account.Balance.LessThan(r.policy.MinBalance(account.TypeID)) {
		return apperrors.NewDomain(apperrors.AccountOpeningBalanceLow)
	}

	account.IsActive = true
	if account.WithdrawalQuota == 0 {
		account.WithdrawalQuota = r.policy.WithdrawalQuota
	}
	if account.DepositQuota == 0 {
		account.DepositQuota = r.policy.DepositQuota
	}

	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an active account. A soft-deleted account and a
// missing account report different conditions.
func (r *accountRepository) GetByID(id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("account_id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDomain(apperrors.AccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !account.IsActive {
		return nil, apperrors.NewDomain(apperrors.AccountDeleted)
	}

	return &account, nil
}

// GetByCustomerID retrieves all active accounts for a customer
func (r *accountRepository) GetByCustomerID(customerID int) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("customer_id = ? AND is_active = ?", customerID, true).
		Order("account_id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// Delete soft deletes an account by clearing its active flag. Deleting a
// missing or already-deleted account is an error, not a no-op.
func (r *accountRepository) Delete(id int64) error {
	result := r.db.Model(&models.Account{}).
		Where("account_id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewDomain(apperrors.AccountNotFound)
	}

	return nil
}

package repositories

import (
	"errors"
	"fmt"
	"time"

	"bankoffice/internal/config"
	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/metrics"
	"bankoffice/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface. It
// hosts the fund transfer engine: precondition checks run in a fixed
// order and the debit, credit and transaction insert commit atomically.
type transactionRepository struct {
	db      *gorm.DB
	policy  *config.PolicyConfig
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB, policy *config.PolicyConfig, m *metrics.Metrics) TransactionRepositoryInterface {
	return &transactionRepository{
		db:      db,
		policy:  policy,
		metrics: m,
	}
}

// FundTransfer moves amount from the source account to the destination
// account. Preconditions are checked in order: same account, amount,
// source existence, destination existence, balance floor. The first
// violated rule is reported and nothing is written.
func (r *transactionRepository) FundTransfer(sourceID, destID int64, amount decimal.Decimal) error {
	start := time.Now()

	err := r.executeTransfer(sourceID, destID, amount)

	status := "success"
	if err != nil {
		status = "failed"
	}
	if r.metrics != nil {
		r.metrics.RecordTransfer(status, amount.InexactFloat64(), time.Since(start))
	}

	return err
}

func (r *transactionRepository) executeTransfer(sourceID, destID int64, amount decimal.Decimal) error {
	if sourceID == destID {
		return apperrors.NewDomain(apperrors.TransferSameAccount)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewDomain(apperrors.TransferInvalidAmount)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var source models.Account
		if err := tx.Where("account_id = ? AND is_active = ?", sourceID, true).
			First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewDomain(apperrors.TransferSourceNotFound)
			}
			return fmt.Errorf("failed to load source account: %w", err)
		}

		var dest models.Account
		if err := tx.Where("account_id = ? AND is_active = ?", destID, true).
			First(&dest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewDomain(apperrors.TransferDestinationNotFound)
			}
			return fmt.Errorf("failed to load destination account: %w", err)
		}

		floor := r.policy.MinBalance(source.TypeID)
		if source.Balance.Sub(amount).LessThan(floor) {
			return apperrors.NewDomainf(apperrors.TransferInsufficientBalance,
				"Insufficient balance in %s account.", r.typeName(tx, source.TypeID))
		}

		if err := source.Debit(amount); err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}
		if err := dest.Credit(amount); err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		if err := tx.Model(&models.Account{}).
			Where("account_id = ?", source.AccountID).
			Update("balance", source.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}

		if err := tx.Model(&models.Account{}).
			Where("account_id = ?", dest.AccountID).
			Update("balance", dest.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		record := &models.Transaction{
			Amount:             amount,
			Time:               time.Now().UTC(),
			SourceAccountID:    sourceID,
			DestinationAccount: destID,
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		return nil
	})
}

// typeName resolves the account type name for the insufficient balance
// message. Falls back to the raw ID when the type row is missing.
func (r *transactionRepository) typeName(tx *gorm.DB, typeID int) string {
	var accountType models.AccountType
	if err := tx.Where("type_id = ?", typeID).First(&accountType).Error; err != nil {
		return fmt.Sprintf("type %d", typeID)
	}
	return accountType.TypeName
}

// ListByAccount returns every transaction where the account appears as
// either leg, newest first. An empty history is an empty slice.
func (r *transactionRepository) ListByAccount(accountID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("source_acc = ? OR dest_acc = ?", accountID, accountID).
		Order("time DESC, transaction_id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

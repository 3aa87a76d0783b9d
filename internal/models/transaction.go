package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("transaction amount must be positive")

// Transaction is one completed transfer leg: a debit from the source
// account paired with a credit to the destination account. Rows are
// append-only and never updated.
type Transaction struct {
	TransactionID      int64           `gorm:"primaryKey;autoIncrement" json:"transactionId"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Time               time.Time       `gorm:"not null;index" json:"time"`
	SourceAccountID    int64           `gorm:"column:source_acc;not null;index" json:"sourceAccountId"`
	DestinationAccount int64           `gorm:"column:dest_acc;not null;index" json:"destinationAccountId"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Time.IsZero() {
		t.Time = time.Now().UTC()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.SourceAccountID <= 0 {
		return errors.New("source account ID is required")
	}

	if t.DestinationAccount <= 0 {
		return errors.New("destination account ID is required")
	}

	if t.SourceAccountID == t.DestinationAccount {
		return errors.New("source and destination accounts must differ")
	}

	return nil
}

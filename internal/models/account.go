package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBalance   = errors.New("balance cannot be negative")
	ErrAccountNotActive = errors.New("account is not active")
	ErrInvalidDebit     = errors.New("debit amount must be positive")
	ErrInvalidCredit    = errors.New("credit amount must be positive")
)

// Account represents a bank account. Balance is the only mutable field
// after creation; deletion flips IsActive instead of removing the row.
type Account struct {
	AccountID       int64           `gorm:"primaryKey;autoIncrement" json:"accountId"`
	Balance         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	WithdrawalQuota int             `gorm:"not null" json:"withdrawalQuota"`
	DepositQuota    int             `gorm:"not null" json:"depositQuota"`
	IsActive        bool            `gorm:"not null" json:"isActive"`
	CustomerID      int             `gorm:"not null;index" json:"customerId"`
	TypeID          int             `gorm:"not null" json:"typeId"`
	BranchID        string          `gorm:"type:varchar(11);not null" json:"branchId"`

	// Associations
	Customer    *Customer    `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	AccountType *AccountType `gorm:"foreignKey:TypeID;references:TypeID" json:"-"`
	Branch      *Branch      `gorm:"foreignKey:BranchID;references:BranchID" json:"-"`
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.CustomerID <= 0 {
		return errors.New("customer ID is required")
	}

	if a.TypeID <= 0 {
		return errors.New("account type ID is required")
	}

	if a.BranchID == "" {
		return errors.New("branch ID is required")
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// Debit removes amount from the account balance
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.IsActive {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDebit
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the account balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.IsActive {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidCredit
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

package models

import (
	"errors"
	"strings"
)

// Beneficiary is a saved payee for an account. Deleting a beneficiary
// flips IsActive; the row is retained.
type Beneficiary struct {
	BenefID      int    `gorm:"primaryKey;autoIncrement" json:"benefId"`
	BenefName    string `gorm:"type:varchar(100);not null" json:"benefName"`
	BenefAccount int64  `gorm:"not null" json:"benefAccount"`
	BenefIFSC    string `gorm:"type:varchar(11);not null" json:"benefIfsc"`
	AccountID    int64  `gorm:"not null;index" json:"accountId"`
	IsActive     bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the table name for Beneficiary
func (b *Beneficiary) TableName() string {
	return "beneficiaries"
}

// Validate validates the beneficiary fields
func (b *Beneficiary) Validate() error {
	if strings.TrimSpace(b.BenefName) == "" {
		return errors.New("beneficiary name is required")
	}

	if b.BenefAccount <= 0 {
		return errors.New("beneficiary account is required")
	}

	if b.AccountID <= 0 {
		return errors.New("owning account ID is required")
	}

	return nil
}

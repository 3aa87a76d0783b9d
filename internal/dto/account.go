package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest is the payload for opening a new account
type CreateAccountRequest struct {
	Balance    decimal.Decimal `json:"balance" validate:"non_negative_amount"`
	CustomerID int             `json:"customerId" validate:"required,positive_id"`
	TypeID     int             `json:"typeId" validate:"required,positive_id"`
	BranchID   string          `json:"branchId" validate:"required,branch_code"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	AccountID       int64  `json:"accountId"`
	Balance         string `json:"balance"`
	WithdrawalQuota int    `json:"withdrawalQuota"`
	DepositQuota    int    `json:"depositQuota"`
	CustomerID      int    `json:"customerId"`
	TypeID          int    `json:"typeId"`
	BranchID        string `json:"branchId"`
}

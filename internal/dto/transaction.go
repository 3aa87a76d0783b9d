package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransferRequest is the payload for moving funds between accounts
type FundTransferRequest struct {
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
}

// FundTransferResponse confirms a completed transfer
type FundTransferResponse struct {
	Message string `json:"message"`
}

// TransactionResponse represents one ledger entry in an account's history
type TransactionResponse struct {
	TransactionID        int64     `json:"transactionId"`
	Amount               string    `json:"amount"`
	Time                 time.Time `json:"time"`
	SourceAccountID      int64     `json:"sourceAccountId"`
	DestinationAccountID int64     `json:"destinationAccountId"`
}

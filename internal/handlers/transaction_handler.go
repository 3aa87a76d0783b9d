package handlers

import (
	"net/http"

	"bankoffice/internal/dto"
	"bankoffice/internal/errors"
	"bankoffice/internal/models"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles fund transfers and transaction history
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
	}
}

// FundTransfer moves funds between two accounts. Non-positive IDs or
// amount are rejected before the engine runs; engine failures surface
// as a 500 carrying the engine's message.
func (h *TransactionHandler) FundTransfer(c echo.Context) error {
	var req dto.FundTransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral,
			errors.WithMessage("Invalid input parameters."))
	}

	if req.SourceAccountID <= 0 || req.DestinationAccountID <= 0 ||
		req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.ValidationGeneral,
			errors.WithMessage("Invalid input parameters."))
	}

	if err := h.transactionRepo.FundTransfer(
		req.SourceAccountID, req.DestinationAccountID, req.Amount); err != nil {
		if domainErr := errors.AsDomain(err); domainErr != nil {
			errorResponse := errors.NewDomainErrorResponse(domainErr, getTraceID(c))
			errorResponse.Error.Message = "Fund transfer failed. " + domainErr.Message
			return c.JSON(http.StatusInternalServerError, errorResponse)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FundTransferResponse{
		Message: "Fund transfer successful.",
	})
}

// ListTransactions returns an account's transaction history, newest first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	accountID, ok := parseInt64Param(c, "accountId")
	if !ok || accountID <= 0 {
		return SendError(c, errors.TransactionInvalidAccount)
	}

	transactions, err := h.transactionRepo.ListByAccount(accountID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	if len(transactions) == 0 {
		return SendError(c, errors.TransactionNoneFound)
	}

	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, dto.TransactionResponse{
			TransactionID:        tx.TransactionID,
			Amount:               tx.Amount.StringFixed(2),
			Time:                 tx.Time,
			SourceAccountID:      tx.SourceAccountID,
			DestinationAccountID: tx.DestinationAccount,
		})
	}
	return responses
}

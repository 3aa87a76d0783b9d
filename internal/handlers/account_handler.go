package handlers

import (
	"net/http"

	"bankoffice/internal/dto"
	"bankoffice/internal/errors"
	"bankoffice/internal/metrics"
	"bankoffice/internal/models"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountRepo repositories.AccountRepositoryInterface
	metrics     *metrics.Metrics
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountRepo repositories.AccountRepositoryInterface, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// CreateAccount opens a new account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account := &models.Account{
		Balance:    req.Balance,
		CustomerID: req.CustomerID,
		TypeID:     req.TypeID,
		BranchID:   req.BranchID,
	}

	if err := h.accountRepo.Create(account); err != nil {
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.AccountCreated()
	}

	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// GetAccount returns one active account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, ok := parseInt64Param(c, "id")
	if !ok || accountID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// GetAccountsByCustomer returns all active accounts of a customer
func (h *AccountHandler) GetAccountsByCustomer(c echo.Context) error {
	customerID, ok := parseIntParam(c, "id")
	if !ok || customerID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	accounts, err := h.accountRepo.GetByCustomerID(customerID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	if len(accounts) == 0 {
		return SendError(c, errors.AccountNoneForCustomer)
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// DeleteAccount soft deletes an account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, ok := parseInt64Param(c, "id")
	if !ok || accountID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.accountRepo.Delete(accountID); err != nil {
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.AccountDeleted()
	}

	return c.NoContent(http.StatusNoContent)
}

func toAccountResponse(account *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		AccountID:       account.AccountID,
		Balance:         account.Balance.StringFixed(2),
		WithdrawalQuota: account.WithdrawalQuota,
		DepositQuota:    account.DepositQuota,
		CustomerID:      account.CustomerID,
		TypeID:          account.TypeID,
		BranchID:        account.BranchID,
	}
}

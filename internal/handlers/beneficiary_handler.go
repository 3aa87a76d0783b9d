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

// BeneficiaryHandler handles beneficiary-related HTTP requests
type BeneficiaryHandler struct {
	beneficiaryRepo repositories.BeneficiaryRepositoryInterface
	metrics         *metrics.Metrics
}

// NewBeneficiaryHandler creates a new beneficiary handler
func NewBeneficiaryHandler(beneficiaryRepo repositories.BeneficiaryRepositoryInterface, m *metrics.Metrics) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryRepo: beneficiaryRepo,
		metrics:         m,
	}
}

// CreateBeneficiary registers a beneficiary for an account
func (h *BeneficiaryHandler) CreateBeneficiary(c echo.Context) error {
	var req dto.CreateBeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	beneficiary := &models.Beneficiary{
		BenefName:    req.BenefName,
		BenefAccount: req.BenefAccount,
		BenefIFSC:    req.BenefIFSC,
		AccountID:    req.AccountID,
	}

	if err := h.beneficiaryRepo.Add(beneficiary); err != nil {
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.BeneficiaryOperation("create")
	}

	return c.JSON(http.StatusCreated, toBeneficiaryResponse(beneficiary))
}

// ListBeneficiaries returns the active beneficiaries of an account
func (h *BeneficiaryHandler) ListBeneficiaries(c echo.Context) error {
	accountID, ok := parseInt64Param(c, "accountId")
	if !ok {
		return SendError(c, errors.BeneficiaryInvalidAccount)
	}

	beneficiaries, err := h.beneficiaryRepo.ListByAccount(accountID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	responses := make([]dto.BeneficiaryResponse, 0, len(beneficiaries))
	for i := range beneficiaries {
		responses = append(responses, toBeneficiaryResponse(&beneficiaries[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// DeleteBeneficiary soft deletes a beneficiary by its ID
func (h *BeneficiaryHandler) DeleteBeneficiary(c echo.Context) error {
	beneficiaryID, ok := parseIntParam(c, "id")
	if !ok {
		return SendError(c, errors.BeneficiaryInvalidID)
	}

	if err := h.beneficiaryRepo.Delete(beneficiaryID); err != nil {
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.BeneficiaryOperation("delete")
	}

	return c.NoContent(http.StatusNoContent)
}

func toBeneficiaryResponse(beneficiary *models.Beneficiary) dto.BeneficiaryResponse {
	return dto.BeneficiaryResponse{
		BenefID:      beneficiary.BenefID,
		BenefName:    beneficiary.BenefName,
		BenefAccount: beneficiary.BenefAccount,
		BenefIFSC:    beneficiary.BenefIFSC,
		AccountID:    beneficiary.AccountID,
	}
}

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

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
	metrics      *metrics.Metrics
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo repositories.CustomerRepositoryInterface, m *metrics.Metrics) *CustomerHandler {
	return &CustomerHandler{
		customerRepo: customerRepo,
		metrics:      m,
	}
}

// GetActiveCustomer returns one active customer by ID
func (h *CustomerHandler) GetActiveCustomer(c echo.Context) error {
	customerID, ok := parseIntParam(c, "id")
	if !ok || customerID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	customer, err := h.customerRepo.GetActiveByID(customerID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// CreateCustomer creates a new customer
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := &models.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		AddressLine3: req.AddressLine3,
		Pincode:      req.Pincode,
		PhoneNumber:  req.PhoneNumber,
		EmailAddress: req.EmailAddress,
		DateOfBirth:  req.DateOfBirth,
		City:         req.City,
		Country:      req.Country,
	}

	if err := h.customerRepo.Create(customer); err != nil {
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.CustomerCreated()
	}

	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// UpdateCustomer applies a partial update to an active customer
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID, ok := parseIntParam(c, "id")
	if !ok || customerID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	var updates models.CustomerUpdate
	if err := c.Bind(&updates); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	customer, err := h.customerRepo.Update(customerID, &updates)
	if err != nil {
		if errors.IsCode(err, errors.CustomerNotFound) {
			return sendRepositoryError(c, err)
		}
		if domainErr := errors.AsDomain(err); domainErr != nil {
			return SendDomainError(c, domainErr)
		}
		return SendError(c, errors.CustomerUpdateFailed)
	}

	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func toCustomerResponse(customer *models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerID:   customer.CustomerID,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		AddressLine1: customer.AddressLine1,
		AddressLine2: customer.AddressLine2,
		AddressLine3: customer.AddressLine3,
		Pincode:      customer.Pincode,
		PhoneNumber:  customer.PhoneNumber,
		EmailAddress: customer.EmailAddress,
		DateOfBirth:  customer.DateOfBirth,
		City:         customer.City,
		Country:      customer.Country,
	}
}

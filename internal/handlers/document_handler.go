package handlers

import (
	"net/http"

	"bankoffice/internal/dto"
	"bankoffice/internal/errors"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
)

// DocumentHandler handles document retrieval HTTP requests
type DocumentHandler struct {
	documentRepo repositories.DocumentRepositoryInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentRepo repositories.DocumentRepositoryInterface) *DocumentHandler {
	return &DocumentHandler{
		documentRepo: documentRepo,
	}
}

// ListDocuments returns the active documents of a customer
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	customerID, ok := parseIntParam(c, "customerId")
	if !ok || customerID <= 0 {
		return SendError(c, errors.ValidationInvalidID)
	}

	documents, err := h.documentRepo.GetByCustomerID(customerID)
	if err != nil {
		return sendRepositoryError(c, err)
	}

	responses := make([]dto.DocumentResponse, 0, len(documents))
	for _, doc := range documents {
		response := dto.DocumentResponse{
			DocID:      doc.DocID,
			Content:    doc.Content,
			CustomerID: doc.CustomerID,
		}
		if doc.DocType != nil {
			response.DocType = doc.DocType.DocType
		}
		responses = append(responses, response)
	}

	return c.JSON(http.StatusOK, responses)
}

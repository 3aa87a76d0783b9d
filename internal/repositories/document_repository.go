package repositories

import (
	"fmt"

	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"gorm.io/gorm"
)

// documentRepository implements DocumentRepositoryInterface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepositoryInterface {
	return &documentRepository{
		db: db,
	}
}

// GetByCustomerID returns the active documents of a customer together
// with their document types
func (r *documentRepository) GetByCustomerID(customerID int) ([]models.Document, error) {
	var documents []models.Document
	if err := r.db.Preload("DocType").
		Where("customer_id = ? AND is_active = ?", customerID, true).
		Order("doc_id ASC").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	if len(documents) == 0 {
		return nil, apperrors.NewDomain(apperrors.DocumentNoneFound)
	}

	return documents, nil
}

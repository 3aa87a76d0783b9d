package repositories

import (
	"errors"
	"fmt"
	"strings"

	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{
		db: db,
	}
}

// GetActiveByID retrieves a customer. Missing and soft-deleted rows both
// report not found.
func (r *customerRepository) GetActiveByID(id int) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("customer_id = ? AND is_active = ?", id, true).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDomain(apperrors.CustomerNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// Create creates a new customer
func (r *customerRepository) Create(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return apperrors.NewDomainf(apperrors.ValidationRequiredField, "%s", err.Error())
	}

	customer.IsActive = true
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Update applies a partial update to an active customer. Only present,
// non-blank fields overwrite stored values; a missing or soft-deleted
// customer leaves the row untouched.
func (r *customerRepository) Update(id int, updates *models.CustomerUpdate) (*models.Customer, error) {
	var customer models.Customer

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ? AND is_active = ?", id, true).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewDomain(apperrors.CustomerNotFound)
			}
			return fmt.Errorf("failed to get customer for update: %w", err)
		}

		applyString := func(dst *string, src *string) {
			if src != nil && strings.TrimSpace(*src) != "" {
				*dst = *src
			}
		}

		applyString(&customer.FirstName, updates.FirstName)
		applyString(&customer.LastName, updates.LastName)
		applyString(&customer.AddressLine1, updates.AddressLine1)
		applyString(&customer.AddressLine2, updates.AddressLine2)
		applyString(&customer.AddressLine3, updates.AddressLine3)
		applyString(&customer.Pincode, updates.Pincode)
		applyString(&customer.PhoneNumber, updates.PhoneNumber)
		applyString(&customer.EmailAddress, updates.EmailAddress)
		applyString(&customer.City, updates.City)
		applyString(&customer.Country, updates.Country)

		if updates.DateOfBirth != nil && !updates.DateOfBirth.IsZero() {
			customer.DateOfBirth = *updates.DateOfBirth
		}

		if err := tx.Save(&customer).Error; err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

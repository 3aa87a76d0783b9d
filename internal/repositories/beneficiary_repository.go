package repositories

import (
	"errors"
	"fmt"
	"strings"

	apperrors "bankoffice/internal/errors"
	"bankoffice/internal/models"

	"gorm.io/gorm"
)

// beneficiaryRepository implements BeneficiaryRepositoryInterface
type beneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository creates a new beneficiary repository
func NewBeneficiaryRepository(db *gorm.DB) BeneficiaryRepositoryInterface {
	return &beneficiaryRepository{
		db: db,
	}
}

// Add registers a beneficiary for an account. The owning account and the
// beneficiary's target account must both exist as active accounts, the
// declared branch code must exist, and a still-active duplicate for the
// same pair is rejected.
func (r *beneficiaryRepository) Add(beneficiary *models.Beneficiary) error {
	if err := beneficiary.Validate(); err != nil {
		if strings.TrimSpace(beneficiary.BenefName) == "" {
			return apperrors.NewDomain(apperrors.BeneficiaryNameRequired)
		}
		return apperrors.NewDomainf(apperrors.ValidationRequiredField, "%s", err.Error())
	}

	var owner models.Account
	if err := r.db.Where("account_id = ? AND is_active = ?", beneficiary.AccountID, true).
		First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.BeneficiaryOwnerNotFound)
		}
		return fmt.Errorf("failed to look up owning account: %w", err)
	}

	var target models.Account
	if err := r.db.Where("account_id = ? AND is_active = ?", beneficiary.BenefAccount, true).
		First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.BeneficiaryTargetNotFound)
		}
		return fmt.Errorf("failed to look up beneficiary account: %w", err)
	}

	var branch models.Branch
	if err := r.db.Where("branch_id = ? AND is_active = ?", beneficiary.BenefIFSC, true).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewDomain(apperrors.BeneficiaryBranchNotFound)
		}
		return fmt.Errorf("failed to look up beneficiary branch: %w", err)
	}

	var count int64
	if err := r.db.Model(&models.Beneficiary{}).
		Where("account_id = ? AND benef_account = ? AND is_active = ?",
			beneficiary.AccountID, beneficiary.BenefAccount, true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for duplicate beneficiary: %w", err)
	}
	if count > 0 {
		return apperrors.NewDomain(apperrors.BeneficiaryDuplicate)
	}

	beneficiary.IsActive = true
	if err := r.db.Create(beneficiary).Error; err != nil {
		return fmt.Errorf("failed to create beneficiary: %w", err)
	}

	return nil
}

// ListByAccount returns the active beneficiaries of an account. Zero
// active beneficiaries for an existing account is reported as a distinct
// condition rather than an empty result.
func (r *beneficiaryRepository) ListByAccount(accountID int64) ([]models.Beneficiary, error) {
	if accountID <= 0 {
		return nil, apperrors.NewDomain(apperrors.BeneficiaryInvalidAccount)
	}

	var account models.Account
	if err := r.db.Where("account_id = ? AND is_active = ?", accountID, true).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDomain(apperrors.BeneficiaryAccountMissing)
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	var beneficiaries []models.Beneficiary
	if err := r.db.Where("account_id = ? AND is_active = ?", accountID, true).
		Order("benef_id ASC").Find(&beneficiaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}

	if len(beneficiaries) == 0 {
		return nil, apperrors.NewDomain(apperrors.BeneficiaryNoneFound)
	}

	return beneficiaries, nil
}

// Delete soft deletes a beneficiary by its own ID. Missing or already
// inactive beneficiaries are reported, not silently ignored.
func (r *beneficiaryRepository) Delete(id int) error {
	if id <= 0 {
		return apperrors.NewDomain(apperrors.BeneficiaryInvalidID)
	}

	result := r.db.Model(&models.Beneficiary{}).
		Where("benef_id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to delete beneficiary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewDomain(apperrors.BeneficiaryNotFound)
	}

	return nil
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDomain(t *testing.T) {
	err := NewDomain(TransferSameAccount)

	assert.Equal(t, TransferSameAccount, err.Code)
	assert.Equal(t, "Source account same as Destination account.", err.Error())
}

func TestNewDomainf(t *testing.T) {
	err := NewDomainf(UserPasswordTooShort, "Password must be at least %d characters long.", 8)

	assert.Equal(t, UserPasswordTooShort, err.Code)
	assert.Equal(t, "Password must be at least 8 characters long.", err.Error())
}

func TestAsDomain(t *testing.T) {
	domainErr := NewDomain(AccountNotFound)
	wrapped := fmt.Errorf("loading account: %w", domainErr)

	assert.Equal(t, domainErr, AsDomain(domainErr))
	assert.Equal(t, domainErr, AsDomain(wrapped))
	assert.Nil(t, AsDomain(errors.New("plain error")))
	assert.Nil(t, AsDomain(nil))
}

func TestIsCode(t *testing.T) {
	err := NewDomain(BeneficiaryNotFound)

	assert.True(t, IsCode(err, BeneficiaryNotFound))
	assert.False(t, IsCode(err, BeneficiaryDuplicate))
	assert.False(t, IsCode(errors.New("plain error"), BeneficiaryNotFound))
	assert.False(t, IsCode(nil, BeneficiaryNotFound))
}

func TestDomainError_Is(t *testing.T) {
	err := NewDomainf(TransferInsufficientBalance, "Insufficient balance in %s account.", "Current")

	// Comparison is by code, the message may differ
	assert.True(t, errors.Is(err, NewDomain(TransferInsufficientBalance)))
	assert.False(t, errors.Is(err, NewDomain(TransferSourceNotFound)))
}

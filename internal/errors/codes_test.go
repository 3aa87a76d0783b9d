package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Transfer Same Account",
			code:     TransferSameAccount,
			expected: "Source account same as Destination account.",
		},
		{
			name:     "Transfer Invalid Amount",
			code:     TransferInvalidAmount,
			expected: "Amount must be greater than zero.",
		},
		{
			name:     "Account Deleted",
			code:     AccountDeleted,
			expected: "Account was deleted by the user",
		},
		{
			name:     "Account None For Customer",
			code:     AccountNoneForCustomer,
			expected: "Accounts not found.",
		},
		{
			name:     "Beneficiary Owner Not Found",
			code:     BeneficiaryOwnerNotFound,
			expected: "Main account does not exist in Accounts.",
		},
		{
			name:     "Beneficiary Not Found",
			code:     BeneficiaryNotFound,
			expected: "Beneficiary not found or is already inactive.",
		},
		{
			name:     "Transaction None Found",
			code:     TransactionNoneFound,
			expected: "No transactions found for the given account ID.",
		},
		{
			name:     "Customer Not Found",
			code:     CustomerNotFound,
			expected: "Customer not found.",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for unregistered codes
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage(ErrorCode("BOGUS_999"))
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode tests error code validation
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(TransferInsufficientBalance))
	s.True(IsValidErrorCode(DocumentNoneFound))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}

// TestErrorCodeUniqueness verifies no two codes share the same string value
func (s *CodesTestSuite) TestErrorCodeUniqueness() {
	seen := make(map[ErrorCode]bool, len(errorMessages))
	for code := range errorMessages {
		s.False(seen[code], "duplicate error code: %s", code)
		seen[code] = true
	}
}

package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidID     ErrorCode = "VALIDATION_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount         ErrorCode = "TRANSFER_001"
	TransferInvalidAmount       ErrorCode = "TRANSFER_002"
	TransferSourceNotFound      ErrorCode = "TRANSFER_003"
	TransferDestinationNotFound ErrorCode = "TRANSFER_004"
	TransferInsufficientBalance ErrorCode = "TRANSFER_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound          ErrorCode = "ACCOUNT_001"
	AccountDeleted           ErrorCode = "ACCOUNT_002"
	AccountBranchNotFound    ErrorCode = "ACCOUNT_003"
	AccountTypeNotFound      ErrorCode = "ACCOUNT_004"
	AccountOpeningBalanceLow ErrorCode = "ACCOUNT_005"
	AccountCustomerNotFound  ErrorCode = "ACCOUNT_006"
	AccountNoneForCustomer   ErrorCode = "ACCOUNT_007"
)

// Beneficiary error codes (BENEFICIARY_*)
const (
	BeneficiaryNameRequired   ErrorCode = "BENEFICIARY_001"
	BeneficiaryTargetNotFound ErrorCode = "BENEFICIARY_002"
	BeneficiaryOwnerNotFound  ErrorCode = "BENEFICIARY_003"
	BeneficiaryBranchNotFound ErrorCode = "BENEFICIARY_004"
	BeneficiaryDuplicate      ErrorCode = "BENEFICIARY_005"
	BeneficiaryInvalidID      ErrorCode = "BENEFICIARY_006"
	BeneficiaryNotFound       ErrorCode = "BENEFICIARY_007"
	BeneficiaryNoneFound      ErrorCode = "BENEFICIARY_008"
	BeneficiaryInvalidAccount ErrorCode = "BENEFICIARY_009"
	BeneficiaryAccountMissing ErrorCode = "BENEFICIARY_010"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAccount ErrorCode = "TRANSACTION_001"
	TransactionNoneFound      ErrorCode = "TRANSACTION_002"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound     ErrorCode = "CUSTOMER_001"
	CustomerUpdateFailed ErrorCode = "CUSTOMER_002"
)

// User error codes (USER_*)
const (
	UserNotFound         ErrorCode = "USER_001"
	UserPasswordTooShort ErrorCode = "USER_002"
)

// Document error codes (DOCUMENT_*)
const (
	DocumentNoneFound ErrorCode = "DOCUMENT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages.
// The domain messages are part of the API contract: clients match on the
// literal text, so a change here is a breaking change.
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidID:     "Invalid ID format",

	// Transfer errors
	TransferSameAccount:         "Source account same as Destination account.",
	TransferInvalidAmount:       "Amount must be greater than zero.",
	TransferSourceNotFound:      "Source account does not exist.",
	TransferDestinationNotFound: "Destination account does not exist.",
	TransferInsufficientBalance: "Insufficient balance.",

	// Account errors
	AccountNotFound:          "Account does not exist.",
	AccountDeleted:           "Account was deleted by the user",
	AccountBranchNotFound:    "Branch with the provided ID does not exist.",
	AccountTypeNotFound:      "Account type with the provided ID does not exist.",
	AccountOpeningBalanceLow: "Account balance is not enough.",
	AccountCustomerNotFound:  "Customer with the provided ID does not exist.",
	AccountNoneForCustomer:   "Accounts not found.",

	// Beneficiary errors
	BeneficiaryNameRequired:   "Beneficiary name is required.",
	BeneficiaryTargetNotFound: "Beneficiary Account does not exist in Accounts.",
	BeneficiaryOwnerNotFound:  "Main account does not exist in Accounts.",
	BeneficiaryBranchNotFound: "Beneficiary branch code does not exist.",
	BeneficiaryDuplicate:      "Beneficiary already exists for this account.",
	BeneficiaryInvalidID:      "Beneficiary ID must be greater than zero.",
	BeneficiaryNotFound:       "Beneficiary not found or is already inactive.",
	BeneficiaryNoneFound:      "No beneficiaries found for the given account ID.",
	BeneficiaryInvalidAccount: "Account ID must be greater than zero.",
	BeneficiaryAccountMissing: "Account does not exist.",

	// Transaction errors
	TransactionInvalidAccount: "Invalid account ID.",
	TransactionNoneFound:      "No transactions found for the given account ID.",

	// Customer errors
	CustomerNotFound:     "Customer not found.",
	CustomerUpdateFailed: "Error updating customer",

	// User errors
	UserNotFound:         "User not found.",
	UserPasswordTooShort: "Password must be at least 8 characters long.",

	// Document errors
	DocumentNoneFound: "No documents found for the given customer ID.",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

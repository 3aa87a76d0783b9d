package errors

import (
	"errors"
	"fmt"
)

// DomainError is a business-rule failure tagged with an ErrorCode. It
// replaces exception-typed control flow: repositories return a DomainError
// for every violated rule, and callers branch on the code while the message
// stays human-readable for the API response.
type DomainError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is allows errors.Is comparisons against another DomainError by code
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if errors.As(target, &de) {
		return e.Code == de.Code
	}
	return false
}

// NewDomain creates a DomainError carrying the code's default message
func NewDomain(code ErrorCode) *DomainError {
	return &DomainError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
}

// NewDomainf creates a DomainError with a formatted message, for rules
// whose message embeds runtime data (e.g. the account type name)
func NewDomainf(code ErrorCode, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsDomain unwraps err into a DomainError, returning nil when err is not one
func AsDomain(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// IsCode reports whether err is a DomainError with the given code
func IsCode(err error, code ErrorCode) bool {
	de := AsDomain(err)
	return de != nil && de.Code == code
}

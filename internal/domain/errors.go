package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingReference         = "MISSING_REFERENCE"
	ErrCodeZeroQuantity             = "ZERO_QUANTITY"
	ErrCodeAmbiguousPaymentDetails  = "AMBIGUOUS_PAYMENT_DETAILS"
	ErrCodeUnsupportedDocument      = "UNSUPPORTED_DOCUMENT"
	ErrCodeInvalidAmount            = "INVALID_AMOUNT"
	ErrCodeNotFound                 = "NOT_FOUND"
	ErrCodeUnknownAcquirerReference = "UNKNOWN_ACQUIRER_REFERENCE"
	ErrCodeTransactionClosed        = "TRANSACTION_CLOSED"
)

var (
	ErrMethodNotFound      = errors.New("payment method not found")
	ErrIssuerNotFound      = errors.New("issuer not found")
	ErrIconNotFound        = errors.New("icon not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDocumentNotFound    = errors.New("source document not found")
)

func NewMissingReferenceError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingReference,
		Message: "received data with missing transaction reference",
	}
}

func NewZeroQuantityError(line string) *DomainError {
	return &DomainError{
		Code:    ErrCodeZeroQuantity,
		Message: fmt.Sprintf("line %q has a quantity that truncates to zero", line),
	}
}

func NewAmbiguousPaymentDetailsError(reference string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAmbiguousPaymentDetails,
		Message: fmt.Sprintf("transaction %s carries both a card token and an issuer", reference),
	}
}

func NewTransactionClosedError(reference string, state TransactionState) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionClosed,
		Message: fmt.Sprintf("transaction %s is %s and cannot be checked out", reference, state),
	}
}

func NewUnsupportedDocumentError(doc any) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedDocument,
		Message: fmt.Sprintf("unsupported source document %T", doc),
	}
}

func NewInvalidAmountError(value string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %q", value),
	}
}

func NewNotFoundError(what string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", what),
		Err:     err,
	}
}

func NewUnknownAcquirerReferenceError(ref string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownAcquirerReference,
		Message: fmt.Sprintf("acquirer reference %q is neither an order nor a payment", ref),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

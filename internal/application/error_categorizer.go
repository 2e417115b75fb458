package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/domain"
)

// ErrorCategory groups errors for logging and HTTP mapping.
type ErrorCategory string

const (
	CategoryRejection      ErrorCategory = "GATEWAY_REJECTION"
	CategoryGateway        ErrorCategory = "GATEWAY"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.IsRejection() {
			return CategoryRejection
		}
		return CategoryGateway
	}

	if isNotFound(err) {
		return CategoryClientError
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return CategoryBusinessRule
	}

	if errors.Is(err, domain.ErrInvalidTransition) {
		return CategoryBusinessRule
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeNotFound, ErrCodeRateLimited:
			return CategoryClientError
		case ErrCodeGateway:
			return CategoryGateway
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrMethodNotFound) ||
		errors.Is(err, domain.ErrIssuerNotFound) ||
		errors.Is(err, domain.ErrIconNotFound) ||
		errors.Is(err, domain.ErrTransactionNotFound) ||
		errors.Is(err, domain.ErrDocumentNotFound) ||
		domain.IsErrorCode(err, domain.ErrCodeNotFound)
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if isNotFound(err) {
		return http.StatusNotFound
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeUnknownAcquirerReference, domain.ErrCodeTransactionClosed:
			return http.StatusConflict
		default:
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if _, ok := IsGatewayError(err); ok {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	switch {
	case isNotFound(err):
		return domain.ErrCodeNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	}

	if _, ok := IsGatewayError(err); ok {
		return ErrCodeGateway
	}

	return ErrCodeInternal
}

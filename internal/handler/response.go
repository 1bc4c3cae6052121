package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation  = "https://fintrack.app/errors/validation"
	ErrorTypeNotFound    = "https://fintrack.app/errors/not-found"
	ErrorTypeConflict    = "https://fintrack.app/errors/conflict"
	ErrorTypeUnavailable = "https://fintrack.app/errors/unavailable"
	ErrorTypeInternal    = "https://fintrack.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnavailableError creates a service unavailable error response
func NewUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps domain validation errors to the request field they concern
var fieldErrors = []struct {
	err   error
	field string
}{
	{domain.ErrNameRequired, "name"},
	{domain.ErrNameTooLong, "name"},
	{domain.ErrInvalidAmount, "amount"},
	{domain.ErrInvalidTransactionType, "type"},
	{domain.ErrAccountRequired, "account"},
	{domain.ErrTransferAccountsRequired, "fromAccount"},
	{domain.ErrSameAccountTransfer, "toAccount"},
	{domain.ErrCategoryRequired, "category"},
	{domain.ErrInvalidDueDay, "dueDay"},
	{domain.ErrInvalidAccountType, "type"},
	{domain.ErrInvalidCategoryType, "type"},
	{domain.ErrBudgetExceeded, "budget"},
	{domain.ErrNegativeBudget, "budget"},
	{domain.ErrBudgetBelowAllocated, "budgetMonthly"},
	{domain.ErrInvalidMonthStartDay, "monthStartDate"},
	{domain.ErrNotRecurring, "id"},
	{domain.ErrNotCreditAccount, "account"},
	{domain.ErrNoOutstandingBalance, "account"},
	{domain.ErrProtectedCategory, "name"},
	{domain.ErrInvalidImport, "file"},
	{domain.ErrInvalidInput, ""},
}

// respondError maps a service error to its problem details response. Anything
// that is not a known domain error is logged and reported as a 500.
func respondError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, capitalize(err.Error()))
	case errors.Is(err, domain.ErrDuplicateAccount), errors.Is(err, domain.ErrDuplicateCategory):
		return NewConflictError(c, capitalize(err.Error()))
	case errors.Is(err, domain.ErrBackupsDisabled):
		return NewUnavailableError(c, capitalize(err.Error()))
	}

	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			var details []ValidationError
			if fe.field != "" {
				details = []ValidationError{{Field: fe.field, Message: capitalize(fe.err.Error())}}
			}
			return NewValidationError(c, "Validation failed", details)
		}
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// respondReferenceError reports an unknown account or category named in a
// request body as a validation failure rather than a missing resource.
func respondReferenceError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "account", Message: "Account does not exist"}})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "category", Message: "Category does not exist"}})
	}
	return respondError(c, err, action)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

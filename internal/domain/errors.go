package domain

import "errors"

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal error")
	ErrNameRequired  = errors.New("name is required")
	ErrNameTooLong   = errors.New("name exceeds maximum length")

	// Transactions
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrAccountRequired          = errors.New("account is required")
	ErrTransferAccountsRequired = errors.New("transfer requires both from and to accounts")
	ErrSameAccountTransfer      = errors.New("cannot transfer to the same account")
	ErrCategoryRequired         = errors.New("category is required")
	ErrInvalidDueDay            = errors.New("due day must be between 1 and 31")
	ErrNotRecurring             = errors.New("transaction is not recurring")

	// Accounts
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateAccount     = errors.New("account already exists")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrNotCreditAccount     = errors.New("account is not a credit account")
	ErrNoOutstandingBalance = errors.New("credit account has no outstanding balance")

	// Categories and budget
	ErrCategoryNotFound     = errors.New("category not found")
	ErrDuplicateCategory    = errors.New("category already exists")
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrProtectedCategory    = errors.New("category cannot be removed or changed")
	ErrBudgetExceeded       = errors.New("budget exceeds remaining allocation")
	ErrNegativeBudget       = errors.New("budget cannot be negative")
	ErrBudgetBelowAllocated = errors.New("monthly budget is below allocated category budgets")
	ErrInvalidMonthStartDay = errors.New("month start day must be between 1 and 31")

	// Data
	ErrInvalidImport   = errors.New("invalid import data")
	ErrBackupsDisabled = errors.New("backups are not configured")
)

// Validation constants
const (
	MaxNameLength = 100
	MaxNoteLength = 500
)

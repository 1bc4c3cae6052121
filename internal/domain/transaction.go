package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// RecurringMonthly is the default cadence label for recurring transactions
const RecurringMonthly = "monthly"

// TransferCategory is the fixed neutral category carried by every transfer
const TransferCategory = "Transfer"

// Transaction is a single ledger entry. It is replaced as a whole on edit.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Account       string          `json:"account"`
	FromAccount   string          `json:"fromAccount,omitempty"`
	ToAccount     string          `json:"toAccount,omitempty"`
	Date          Date            `json:"date"`
	Note          string          `json:"note"`
	IsRecurring   bool            `json:"isRecurring"`
	RecurringType string          `json:"recurringType,omitempty"`
	DueDay        *int            `json:"dueDay,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsTransfer reports whether the transaction moves money between two accounts
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

// HasReminder reports whether the transaction is a recurring template with a due day
func (t *Transaction) HasReminder() bool {
	return t.IsRecurring && t.DueDay != nil
}

// Title is the human label used for reminders: the note, or the category when empty
func (t *Transaction) Title() string {
	if t.Note != "" {
		return t.Note
	}
	return t.Category
}

// Clone returns a deep copy of the transaction
func (t Transaction) Clone() Transaction {
	if t.DueDay != nil {
		day := *t.DueDay
		t.DueDay = &day
	}
	return t
}

// TransactionRange limits a transaction listing to a time window
type TransactionRange string

const (
	RangeAll   TransactionRange = "all"
	RangeMonth TransactionRange = "month"
	RangeWeek  TransactionRange = "week"
)

// TransactionFilters narrows a transaction listing
type TransactionFilters struct {
	Type   *TransactionType
	Range  TransactionRange
	Search string
	Limit  int
}

// RecentTransactionLimit is the number of entries on the recent list
const RecentTransactionLimit = 5

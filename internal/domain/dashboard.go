package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySpending is the cycle spend of one category against its budget
type CategorySpending struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Budget      decimal.Decimal `json:"budget"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	Orphaned    bool            `json:"orphaned"`
}

// BudgetSummary is the aggregate view of the current cycle
type BudgetSummary struct {
	CycleStart       time.Time
	CycleEnd         time.Time
	CycleLabel       string
	BudgetMonthly    decimal.Decimal
	MonthlySpent     decimal.Decimal
	MonthlyIncome    decimal.Decimal
	RemainingBudget  decimal.Decimal
	BurnRatio        decimal.Decimal
	NetWorth         decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	CategorySpending []CategorySpending
	TransactionCount int
}

// MonthArchive is the income and expense total of one calendar month
type MonthArchive struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

type AlertKind string

const (
	AlertKindRecurring      AlertKind = "recurring"
	AlertKindCreditCardBill AlertKind = "credit_card_bill"
)

// DueAlert is an unpaid item coming due within the due-soon window
type DueAlert struct {
	Kind          AlertKind
	TransactionID string
	Account       string
	Title         string
	Amount        decimal.Decimal
	DueDay        int
	DaysUntilDue  int
}

// RecurringStatus is a recurring template with its payment state for the current cycle key
type RecurringStatus struct {
	Transaction  Transaction
	CycleKey     string
	Paid         bool
	DaysUntilDue int
	DueSoon      bool
}

// WidgetPayload is pushed to the home-screen widget collaborator
type WidgetPayload struct {
	Month     string `json:"month"`
	Expense   string `json:"expense"`
	Income    string `json:"income"`
	Budget    string `json:"budget"`
	Remaining string `json:"remaining"`
	Privacy   bool   `json:"privacy"`
}

// PrivacyMask replaces amounts in the widget payload when privacy mode is on
const PrivacyMask = "••••"

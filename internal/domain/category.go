package domain

import "github.com/shopspring/decimal"

type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeNeutral CategoryType = "neutral"
)

// IsValid reports whether t is a known category type
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeExpense, CategoryTypeIncome, CategoryTypeNeutral:
		return true
	}
	return false
}

// Category is a registry entry. Budget is only meaningful for expense categories.
type Category struct {
	Type   CategoryType    `json:"type"`
	Budget decimal.Decimal `json:"budget"`
}

// NamedCategory pairs a category with its registry key
type NamedCategory struct {
	Name string `json:"name"`
	Category
}

// Default category names for a fresh ledger
var (
	DefaultExpenseCategories = []string{
		"Groceries", "Dining", "Transport", "Housing", "Maintenance", "EMI", "Invest",
		"Subscription", "Tax", "Bills", "Education", "Health", "Apparels", "Beauty",
		"Toys", "Electronics", "Other",
	}
	DefaultIncomeCategories = []string{"Salary", "Cashback", "Reversal", "Gift"}
)

// IsProtectedCategory reports whether name is the fixed Transfer category
func IsProtectedCategory(name string) bool {
	return name == TransferCategory
}

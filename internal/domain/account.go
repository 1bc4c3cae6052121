package domain

import (
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeBank    AccountType = "bank"
	AccountTypeCash    AccountType = "cash"
	AccountTypeEwallet AccountType = "ewallet"
	AccountTypeCredit  AccountType = "credit"
	AccountTypeOther   AccountType = "other"
)

// ValidAccountTypes lists the account types accepted on create and retype
var ValidAccountTypes = []AccountType{
	AccountTypeBank,
	AccountTypeCash,
	AccountTypeEwallet,
	AccountTypeCredit,
	AccountTypeOther,
}

// IsValid reports whether t is a known account type
func (t AccountType) IsValid() bool {
	for _, v := range ValidAccountTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsLiability reports whether balances of this type represent debt
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCredit
}

// DefaultCreditDueDay is used when a credit account is created without a due day
const DefaultCreditDueDay = 1

// Account is the read view of an account assembled from the state maps
type Account struct {
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	DueDay         *int            `json:"dueDay,omitempty"`
}

// IsCredit reports whether the account is a credit (liability) account
func (a Account) IsCredit() bool {
	return a.Type.IsLiability()
}

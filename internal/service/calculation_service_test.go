package service

import (
	"testing"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func replayState(accounts map[string]domain.AccountType, initial map[string]int64, txs ...domain.Transaction) *domain.State {
	st := domain.DefaultState(decimal.NewFromInt(1000), 1)
	for name, accountType := range accounts {
		st.Accounts[name] = decimal.Zero
		st.AccountTypes[name] = accountType
		st.AccountInitialBalances[name] = decimal.NewFromInt(initial[name])
	}
	st.Transactions = txs
	return st
}

func entry(txType domain.TransactionType, account string, amount int64, day int) domain.Transaction {
	return domain.Transaction{
		Type:    txType,
		Amount:  decimal.NewFromInt(amount),
		Account: account,
		Date:    domain.NewDate(2024, time.March, day),
	}
}

func transfer(from, to string, amount int64, day int) domain.Transaction {
	return domain.Transaction{
		Type:        domain.TransactionTypeTransfer,
		Amount:      decimal.NewFromInt(amount),
		Category:    domain.TransferCategory,
		Account:     from,
		FromAccount: from,
		ToAccount:   to,
		Date:        domain.NewDate(2024, time.March, day),
	}
}

func assertBalance(t *testing.T, balances map[string]decimal.Decimal, name string, expected int64) {
	t.Helper()
	if !balances[name].Equal(decimal.NewFromInt(expected)) {
		t.Errorf("Expected %s balance %d, got %s", name, expected, balances[name].String())
	}
}

func TestRecalcAccounts_IsIdempotent(t *testing.T) {
	st := replayState(
		map[string]domain.AccountType{"Bank": domain.AccountTypeBank, "Card": domain.AccountTypeCredit},
		map[string]int64{"Bank": 1000, "Card": 50},
		entry(domain.TransactionTypeExpense, "Card", 120, 4),
		entry(domain.TransactionTypeIncome, "Bank", 300, 2),
		transfer("Bank", "Card", 170, 9),
	)

	first := RecalcAccounts(st)
	st.Accounts = first
	second := RecalcAccounts(st)

	assert.Equal(t, len(first), len(second))
	for name, balance := range first {
		assert.True(t, balance.Equal(second[name]), "%s: %s != %s", name, balance, second[name])
	}
	assertBalance(t, second, "Bank", 1130)
	assertBalance(t, second, "Card", 0)
}

func TestRecalcAccounts_CreditSignInversion(t *testing.T) {
	accounts := map[string]domain.AccountType{"Card": domain.AccountTypeCredit}

	spend := replayState(accounts, nil, entry(domain.TransactionTypeExpense, "Card", 100, 1))
	assertBalance(t, RecalcAccounts(spend), "Card", 100)

	refund := replayState(accounts, nil, entry(domain.TransactionTypeIncome, "Card", 100, 1))
	assertBalance(t, RecalcAccounts(refund), "Card", -100)
}

func TestRecalcAccounts_Transfers(t *testing.T) {
	tests := []struct {
		name     string
		accounts map[string]domain.AccountType
		initial  map[string]int64
		tx       domain.Transaction
		expected map[string]int64
	}{
		{
			name:     "bank to bank",
			accounts: map[string]domain.AccountType{"A": domain.AccountTypeBank, "B": domain.AccountTypeBank},
			initial:  map[string]int64{"A": 1000},
			tx:       transfer("A", "B", 500, 1),
			expected: map[string]int64{"A": 500, "B": 500},
		},
		{
			name:     "bank pays card",
			accounts: map[string]domain.AccountType{"Bank": domain.AccountTypeBank, "Card": domain.AccountTypeCredit},
			initial:  map[string]int64{"Bank": 1000, "Card": 300},
			tx:       transfer("Bank", "Card", 300, 1),
			expected: map[string]int64{"Bank": 700, "Card": 0},
		},
		{
			name:     "cash advance from card",
			accounts: map[string]domain.AccountType{"Card": domain.AccountTypeCredit, "Cash": domain.AccountTypeCash},
			initial:  map[string]int64{},
			tx:       transfer("Card", "Cash", 200, 1),
			expected: map[string]int64{"Card": 200, "Cash": 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := RecalcAccounts(replayState(tt.accounts, tt.initial, tt.tx))
			for name, expected := range tt.expected {
				assertBalance(t, balances, name, expected)
			}
		})
	}
}

func TestRecalcAccounts_SkipsUnknownAccounts(t *testing.T) {
	st := replayState(
		map[string]domain.AccountType{"Bank": domain.AccountTypeBank},
		map[string]int64{"Bank": 100},
		entry(domain.TransactionTypeExpense, "Gone", 50, 1),
		transfer("Gone", "Bank", 25, 2),
	)

	balances := RecalcAccounts(st)

	assert.Len(t, balances, 1)
	assertBalance(t, balances, "Bank", 125)
}

func TestRecalcAccounts_ReplaysInDateOrder(t *testing.T) {
	// List order is newest first; replay must not depend on it for the result
	st := replayState(
		map[string]domain.AccountType{"Bank": domain.AccountTypeBank},
		map[string]int64{"Bank": 0},
		entry(domain.TransactionTypeExpense, "Bank", 40, 20),
		entry(domain.TransactionTypeIncome, "Bank", 100, 1),
	)

	assertBalance(t, RecalcAccounts(st), "Bank", 60)
}

func TestRecalcAccounts_Decimals(t *testing.T) {
	st := replayState(map[string]domain.AccountType{"Bank": domain.AccountTypeBank}, nil)
	for i := 0; i < 10; i++ {
		st.Transactions = append(st.Transactions, domain.Transaction{
			Type:    domain.TransactionTypeIncome,
			Amount:  decimal.RequireFromString("0.1"),
			Account: "Bank",
			Date:    domain.NewDate(2024, time.March, 1),
		})
	}

	assertBalance(t, RecalcAccounts(st), "Bank", 1)
}

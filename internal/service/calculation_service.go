package service

import (
	"sort"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// RecalcAccounts replays every transaction in date order on top of each account's
// initial balance and returns the resulting current balances. Only accounts
// present in state.Accounts get a balance; a transaction side naming any other
// account is skipped. Same-date transactions keep their list order.
func RecalcAccounts(state *domain.State) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(state.Accounts))
	for name := range state.Accounts {
		balances[name] = state.AccountInitialBalances[name]
	}

	ordered := make([]*domain.Transaction, len(state.Transactions))
	for i := range state.Transactions {
		ordered[i] = &state.Transactions[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date.Time)
	})

	apply := func(account string, delta decimal.Decimal) {
		current, ok := balances[account]
		if !ok {
			return
		}
		balances[account] = current.Add(delta)
	}

	for _, tx := range ordered {
		if tx.IsTransfer() {
			apply(tx.FromAccount, transferOutDelta(state.AccountTypes[tx.FromAccount], tx.Amount))
			apply(tx.ToAccount, transferInDelta(state.AccountTypes[tx.ToAccount], tx.Amount))
			continue
		}
		apply(tx.Account, entryDelta(state.AccountTypes[tx.Account], tx.Type, tx.Amount))
	}

	return balances
}

// entryDelta is the balance change of an income or expense. Credit balances are
// debt, so spending raises them and income (refunds) lowers them.
func entryDelta(accountType domain.AccountType, txType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	var delta decimal.Decimal
	switch txType {
	case domain.TransactionTypeIncome:
		delta = amount
	case domain.TransactionTypeExpense:
		delta = amount.Neg()
	default:
		return decimal.Zero
	}
	if accountType.IsLiability() {
		return delta.Neg()
	}
	return delta
}

func transferOutDelta(accountType domain.AccountType, amount decimal.Decimal) decimal.Decimal {
	if accountType.IsLiability() {
		return amount
	}
	return amount.Neg()
}

func transferInDelta(accountType domain.AccountType, amount decimal.Decimal) decimal.Decimal {
	if accountType.IsLiability() {
		return amount.Neg()
	}
	return amount
}

package service

import (
	"sort"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/util"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetService exposes the budget aggregates and the budget settings
type BudgetService struct {
	ledger *Ledger
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(ledger *Ledger) *BudgetService {
	return &BudgetService{ledger: ledger}
}

// BudgetSettings is the pair of settings that shape the budget cycle
type BudgetSettings struct {
	BudgetMonthly  decimal.Decimal `json:"budgetMonthly"`
	MonthStartDate int             `json:"monthStartDate"`
}

// GetSummary computes the aggregates of the current cycle
func (s *BudgetService) GetSummary() domain.BudgetSummary {
	var summary domain.BudgetSummary
	today := s.ledger.Today()
	s.ledger.view(func(st *domain.State) {
		summary = ComputeBudgetSummary(st, today)
	})
	return summary
}

// GetArchive returns the income and expense totals of every calendar month, newest first
func (s *BudgetService) GetArchive() []domain.MonthArchive {
	var archive []domain.MonthArchive
	s.ledger.view(func(st *domain.State) {
		archive = MonthlyArchive(st)
	})
	return archive
}

// GetSettings returns the current budget settings
func (s *BudgetService) GetSettings() BudgetSettings {
	var settings BudgetSettings
	s.ledger.view(func(st *domain.State) {
		settings = BudgetSettings{BudgetMonthly: st.BudgetMonthly, MonthStartDate: st.MonthStartDate}
	})
	return settings
}

// SetMonthlyBudget changes the monthly ceiling. It cannot drop below what is
// already allocated to expense categories.
func (s *BudgetService) SetMonthlyBudget(amount decimal.Decimal) (*BudgetSettings, error) {
	if amount.IsNegative() {
		return nil, domain.ErrNegativeBudget
	}

	state, err := s.ledger.mutate("budget.monthly", func(st *domain.State) error {
		if amount.LessThan(st.AllocatedBudget("")) {
			return domain.ErrBudgetBelowAllocated
		}
		st.BudgetMonthly = amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	settings := &BudgetSettings{BudgetMonthly: state.BudgetMonthly, MonthStartDate: state.MonthStartDate}
	s.ledger.publishEvent(websocket.BudgetUpdated(settings))
	return settings, nil
}

// SetMonthStartDay changes the day of month on which a budget cycle begins
func (s *BudgetService) SetMonthStartDay(day int) (*BudgetSettings, error) {
	if day < domain.MinMonthStartDay || day > domain.MaxMonthStartDay {
		return nil, domain.ErrInvalidMonthStartDay
	}

	state, err := s.ledger.mutate("budget.month_start", func(st *domain.State) error {
		st.MonthStartDate = day
		return nil
	})
	if err != nil {
		return nil, err
	}

	settings := &BudgetSettings{BudgetMonthly: state.BudgetMonthly, MonthStartDate: state.MonthStartDate}
	s.ledger.publishEvent(websocket.BudgetUpdated(settings))
	return settings, nil
}

// ComputeBudgetSummary derives the cycle aggregates from st.
//
// Monthly spend leaves out expenses charged to credit accounts: card spend only
// counts once the card is paid, which shows up as a transfer from a non-credit
// account into a credit account. Category spending shows every expense,
// including card spend.
func ComputeBudgetSummary(st *domain.State, today time.Time) domain.BudgetSummary {
	start, end := util.GetMonthCycleDates(today, st.MonthStartDate)

	summary := domain.BudgetSummary{
		CycleStart:       start,
		CycleEnd:         end,
		CycleLabel:       util.CycleLabel(start, end),
		BudgetMonthly:    st.BudgetMonthly,
		MonthlySpent:     decimal.Zero,
		MonthlyIncome:    decimal.Zero,
		NetWorth:         decimal.Zero,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range st.Transactions {
		if !util.InCycle(tx.Date.Time, start, end) {
			continue
		}
		summary.TransactionCount++

		switch tx.Type {
		case domain.TransactionTypeExpense:
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
			if !st.IsCreditAccount(tx.Account) {
				summary.MonthlySpent = summary.MonthlySpent.Add(tx.Amount)
			}
		case domain.TransactionTypeIncome:
			summary.MonthlyIncome = summary.MonthlyIncome.Add(tx.Amount)
		case domain.TransactionTypeTransfer:
			if st.IsCreditAccount(tx.ToAccount) && !st.IsCreditAccount(tx.FromAccount) {
				summary.MonthlySpent = summary.MonthlySpent.Add(tx.Amount)
			}
		}
	}

	summary.RemainingBudget = decimal.Max(decimal.Zero, st.BudgetMonthly.Sub(summary.MonthlySpent))
	summary.BurnRatio = decimal.Zero
	if st.BudgetMonthly.IsPositive() {
		summary.BurnRatio = decimal.Min(decimal.NewFromInt(1), summary.MonthlySpent.Div(st.BudgetMonthly))
	}

	for name, balance := range st.Accounts {
		if st.AccountTypes[name].IsLiability() {
			summary.NetWorth = summary.NetWorth.Sub(balance)
			summary.TotalLiabilities = summary.TotalLiabilities.Add(balance)
			continue
		}
		summary.NetWorth = summary.NetWorth.Add(balance)
		if balance.IsNegative() {
			summary.TotalLiabilities = summary.TotalLiabilities.Add(balance.Abs())
		} else {
			summary.TotalAssets = summary.TotalAssets.Add(balance)
		}
	}

	summary.CategorySpending = make([]domain.CategorySpending, 0, len(byCategory))
	for name, amount := range byCategory {
		ref := st.LookupCategory(name)
		entry := domain.CategorySpending{
			Category:    name,
			Amount:      amount,
			Budget:      ref.Value.Budget,
			PercentUsed: decimal.Zero,
			Orphaned:    ref.Orphaned,
		}
		if entry.Budget.IsPositive() {
			entry.PercentUsed = amount.Div(entry.Budget).Mul(hundred).Round(1)
		}
		summary.CategorySpending = append(summary.CategorySpending, entry)
	}
	sort.Slice(summary.CategorySpending, func(i, j int) bool {
		a, b := summary.CategorySpending[i], summary.CategorySpending[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})

	return summary
}

// MonthlyArchive totals income and expenses per calendar month, newest first.
// Transfers are not counted.
func MonthlyArchive(st *domain.State) []domain.MonthArchive {
	byMonth := make(map[string]*domain.MonthArchive)
	for _, tx := range st.Transactions {
		if tx.IsTransfer() || tx.Date.IsZero() {
			continue
		}
		key := util.CycleKey(tx.Date.Time)
		entry, ok := byMonth[key]
		if !ok {
			entry = &domain.MonthArchive{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = entry
		}
		entry.Count++
		if tx.Type == domain.TransactionTypeIncome {
			entry.Income = entry.Income.Add(tx.Amount)
		} else {
			entry.Expense = entry.Expense.Add(tx.Amount)
		}
	}

	archive := make([]domain.MonthArchive, 0, len(byMonth))
	for _, entry := range byMonth {
		archive = append(archive, *entry)
	}
	sort.Slice(archive, func(i, j int) bool {
		return archive[i].Month > archive[j].Month
	})
	return archive
}

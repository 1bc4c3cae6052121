package service

import (
	"testing"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBudgetLedger(t *testing.T) (*Ledger, *BudgetService) {
	t.Helper()
	ledger, _ := newTestLedger(t)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 5000)
	mustCreateAccount(t, ledger, "Card", domain.AccountTypeCredit, 0)
	budgetService := NewBudgetService(ledger)
	_, err := budgetService.SetMonthlyBudget(decimal.NewFromInt(1000))
	require.NoError(t, err)
	return ledger, budgetService
}

func spendingFor(summary domain.BudgetSummary, category string) decimal.Decimal {
	for _, c := range summary.CategorySpending {
		if c.Category == category {
			return c.Amount
		}
	}
	return decimal.Zero
}

func TestBudgetSummary_CreditSpendExcludedFromMonthlySpent(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(100), Category: "Dining", Account: "Card",
	})

	summary := budgetService.GetSummary()

	assert.True(t, summary.MonthlySpent.IsZero(), "got %s", summary.MonthlySpent)
	assert.True(t, spendingFor(summary, "Dining").Equal(decimal.NewFromInt(100)))
}

func TestBudgetSummary_CardSettlementCountsAsSpend(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	mustCreateAccount(t, ledger, "Card2", domain.AccountTypeCredit, 0)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(100), Category: "Dining", Account: "Bank",
	})
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(250), FromAccount: "Bank", ToAccount: "Card",
	})
	// card to card and card to bank do not count
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(70), FromAccount: "Card", ToAccount: "Card2",
	})
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(30), FromAccount: "Card", ToAccount: "Bank",
	})

	summary := budgetService.GetSummary()

	assert.True(t, summary.MonthlySpent.Equal(decimal.NewFromInt(350)), "got %s", summary.MonthlySpent)
	assert.True(t, summary.RemainingBudget.Equal(decimal.NewFromInt(650)))
	assert.True(t, summary.BurnRatio.Equal(decimal.NewFromFloat(0.35)))
	assert.Equal(t, 4, summary.TransactionCount)
}

func TestBudgetSummary_RemainingNeverNegative(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(1500), Category: "Housing", Account: "Bank",
	})

	summary := budgetService.GetSummary()
	assert.True(t, summary.RemainingBudget.IsZero())
	assert.True(t, summary.BurnRatio.Equal(decimal.NewFromInt(1)))
}

func TestBudgetSummary_CycleWindow(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	_, err := budgetService.SetMonthStartDay(15)
	require.NoError(t, err)

	record := func(month time.Month, day int, amount int64) {
		mustRecord(t, ledger, TransactionInput{
			Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(amount), Category: "Dining",
			Account: "Bank", Date: domain.NewDate(2024, month, day),
		})
	}
	record(time.February, 15, 10) // first day of the cycle
	record(time.February, 14, 20) // previous cycle
	record(time.March, 14, 40)    // last day of the cycle
	record(time.March, 15, 80)    // next cycle

	summary := budgetService.GetSummary()

	assert.Equal(t, "2024-02-15", summary.CycleStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-14", summary.CycleEnd.Format("2006-01-02"))
	assert.True(t, summary.MonthlySpent.Equal(decimal.NewFromInt(50)), "got %s", summary.MonthlySpent)
}

func TestBudgetSummary_NetWorth(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	mustCreateAccount(t, ledger, "Overdrawn", domain.AccountTypeBank, -200)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(300), Category: "Dining", Account: "Card",
	})

	summary := budgetService.GetSummary()

	// 5000 - 200 - 300
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(4500)), "got %s", summary.NetWorth)
	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.TotalLiabilities.Equal(decimal.NewFromInt(500)))
}

func TestBudgetSummary_CategoryPercent(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	_, err := NewCategoryService(ledger).SetCategoryBudget("Dining", decimal.NewFromInt(200))
	require.NoError(t, err)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(50), Category: "Dining", Account: "Bank",
	})

	summary := budgetService.GetSummary()
	require.Len(t, summary.CategorySpending, 1)
	assert.True(t, summary.CategorySpending[0].PercentUsed.Equal(decimal.NewFromInt(25)))
}

func TestSetMonthlyBudget_Validation(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	_, err := NewCategoryService(ledger).SetCategoryBudget("Dining", decimal.NewFromInt(600))
	require.NoError(t, err)

	_, err = budgetService.SetMonthlyBudget(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrNegativeBudget)

	_, err = budgetService.SetMonthlyBudget(decimal.NewFromInt(599))
	assert.ErrorIs(t, err, domain.ErrBudgetBelowAllocated)

	settings, err := budgetService.SetMonthlyBudget(decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, settings.BudgetMonthly.Equal(decimal.NewFromInt(600)))
}

func TestSetMonthStartDay_Range(t *testing.T) {
	_, budgetService := setupBudgetLedger(t)

	for _, day := range []int{0, 32, -1} {
		_, err := budgetService.SetMonthStartDay(day)
		assert.ErrorIs(t, err, domain.ErrInvalidMonthStartDay, "day %d", day)
	}

	settings, err := budgetService.SetMonthStartDay(31)
	require.NoError(t, err)
	assert.Equal(t, 31, settings.MonthStartDate)
	assert.Equal(t, 31, budgetService.GetSettings().MonthStartDate)
}

func TestMonthlyArchive(t *testing.T) {
	ledger, budgetService := setupBudgetLedger(t)
	record := func(txType domain.TransactionType, category string, month time.Month, amount int64) {
		mustRecord(t, ledger, TransactionInput{
			Type: txType, Amount: decimal.NewFromInt(amount), Category: category,
			Account: "Bank", Date: domain.NewDate(2024, month, 5),
		})
	}
	record(domain.TransactionTypeIncome, "Salary", time.January, 3000)
	record(domain.TransactionTypeExpense, "Dining", time.January, 100)
	record(domain.TransactionTypeExpense, "Dining", time.March, 40)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(500), FromAccount: "Bank", ToAccount: "Card",
	})

	archive := budgetService.GetArchive()

	require.Len(t, archive, 2)
	assert.Equal(t, "2024-03", archive[0].Month)
	assert.True(t, archive[0].Expense.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "2024-01", archive[1].Month)
	assert.True(t, archive[1].Income.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 2, archive[1].Count)
}

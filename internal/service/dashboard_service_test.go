package service

import (
	"testing"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	ledger, _ := newTestLedger(t)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 1000)
	_, err := NewBudgetService(ledger).SetMonthlyBudget(decimal.NewFromInt(2000))
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		mustRecord(t, ledger, TransactionInput{
			Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Category: "Dining", Account: "Bank",
		})
	}

	summary := NewDashboardService(ledger).GetSummary()

	assert.Len(t, summary.Recent, domain.RecentTransactionLimit)
	require.Len(t, summary.Accounts, 1)
	assert.True(t, summary.Accounts[0].CurrentBalance.Equal(decimal.NewFromInt(930)))
	assert.True(t, summary.Budget.MonthlySpent.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, "1930.00", summary.Widget.Remaining)
	assert.Equal(t, "Mar 1 - Mar 31", summary.Widget.Month)
	assert.Empty(t, summary.Alerts)
}

func TestWidgetPayload_Privacy(t *testing.T) {
	ledger, _ := newTestLedger(t)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeIncome, Amount: decimal.NewFromFloat(2500.5), Category: "Salary", Account: "Bank",
	})
	dashboard := NewDashboardService(ledger)

	plain := dashboard.GetWidget(nil)
	assert.False(t, plain.Privacy)
	assert.Equal(t, "2500.50", plain.Income)
	assert.Equal(t, "0.00", plain.Expense)

	masked := true
	hidden := dashboard.GetWidget(&masked)
	assert.True(t, hidden.Privacy)
	assert.Equal(t, domain.PrivacyMask, hidden.Income)
	assert.Equal(t, domain.PrivacyMask, hidden.Remaining)
	assert.Equal(t, plain.Month, hidden.Month)
}

func TestWidgetUpdated_PublishedOnEveryChange(t *testing.T) {
	ledger, publisher := newTestLedger(t)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)
	publisher.Reset()

	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(42), Category: "Dining", Account: "Bank",
	})

	var widget *domain.WidgetPayload
	for _, e := range publisher.Events {
		if e.Type == "widget.updated" {
			p, ok := e.Payload.(domain.WidgetPayload)
			require.True(t, ok)
			widget = &p
		}
	}
	require.NotNil(t, widget)
	assert.Equal(t, "42.00", widget.Expense)
}

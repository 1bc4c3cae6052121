package service

import (
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
)

// DashboardService assembles the home screen view
type DashboardService struct {
	ledger *Ledger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(ledger *Ledger) *DashboardService {
	return &DashboardService{ledger: ledger}
}

// DashboardSummary is everything the home screen shows at once
type DashboardSummary struct {
	Budget   domain.BudgetSummary
	Alerts   []domain.DueAlert
	Recent   []TransactionView
	Accounts []domain.Account
	Widget   domain.WidgetPayload
}

// GetSummary builds the dashboard from a single consistent view of the ledger
func (s *DashboardService) GetSummary() DashboardSummary {
	now := s.ledger.Now()
	today := s.ledger.Today()

	var summary DashboardSummary
	s.ledger.view(func(st *domain.State) {
		summary.Budget = ComputeBudgetSummary(st, today)
		summary.Alerts = DueAlerts(st, now)
		summary.Accounts = st.AccountList()
		summary.Widget = widgetFromSummary(summary.Budget, s.ledger.WidgetPrivacy())

		recent := FilterTransactions(st, domain.TransactionFilters{Limit: domain.RecentTransactionLimit}, today)
		summary.Recent = make([]TransactionView, 0, len(recent))
		for _, tx := range recent {
			summary.Recent = append(summary.Recent, newTransactionView(st, tx))
		}
	})
	return summary
}

// GetWidget returns the payload for the home-screen widget
func (s *DashboardService) GetWidget(privacy *bool) domain.WidgetPayload {
	masked := s.ledger.WidgetPrivacy()
	if privacy != nil {
		masked = *privacy
	}

	var payload domain.WidgetPayload
	today := s.ledger.Today()
	s.ledger.view(func(st *domain.State) {
		payload = BuildWidgetPayload(st, today, masked)
	})
	return payload
}

// BuildWidgetPayload summarizes the current cycle for the widget. With privacy
// set, every amount is replaced by a mask.
func BuildWidgetPayload(st *domain.State, today time.Time, privacy bool) domain.WidgetPayload {
	return widgetFromSummary(ComputeBudgetSummary(st, today), privacy)
}

func widgetFromSummary(summary domain.BudgetSummary, privacy bool) domain.WidgetPayload {
	if privacy {
		return domain.WidgetPayload{
			Month:     summary.CycleLabel,
			Expense:   domain.PrivacyMask,
			Income:    domain.PrivacyMask,
			Budget:    domain.PrivacyMask,
			Remaining: domain.PrivacyMask,
			Privacy:   true,
		}
	}
	return domain.WidgetPayload{
		Month:     summary.CycleLabel,
		Expense:   summary.MonthlySpent.StringFixed(2),
		Income:    summary.MonthlyIncome.StringFixed(2),
		Budget:    summary.BudgetMonthly.StringFixed(2),
		Remaining: summary.RemainingBudget.StringFixed(2),
	}
}

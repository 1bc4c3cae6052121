package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/util"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/google/uuid"
)

// ReminderService tracks recurring bills and credit card dues.
//
// A recurring transaction is a template: paying it records a new transaction
// and flags the template as paid for the current calendar month key. The
// template itself is never changed, and a new month key starts out unpaid.
type ReminderService struct {
	ledger *Ledger
}

// NewReminderService creates a new ReminderService
func NewReminderService(ledger *Ledger) *ReminderService {
	return &ReminderService{ledger: ledger}
}

// PaymentResult is returned when a reminder or card bill is paid
type PaymentResult struct {
	Payment  domain.Transaction
	CycleKey string
}

// ListRecurring returns every recurring template with its status for this month
func (s *ReminderService) ListRecurring() []domain.RecurringStatus {
	now := s.ledger.Now()
	var list []domain.RecurringStatus
	s.ledger.view(func(st *domain.State) {
		list = RecurringStatuses(st, now)
	})
	return list
}

// GetAlerts returns the unpaid items that are due soon
func (s *ReminderService) GetAlerts() []domain.DueAlert {
	now := s.ledger.Now()
	var alerts []domain.DueAlert
	s.ledger.view(func(st *domain.State) {
		alerts = DueAlerts(st, now)
	})
	return alerts
}

// MarkPaid records a payment for the recurring template txID. Paying the same
// template twice in a month records two payments and keeps the flag set.
func (s *ReminderService) MarkPaid(txID string) (*PaymentResult, error) {
	now := s.ledger.Now()
	key := util.CycleKey(now)

	var payment domain.Transaction
	_, err := s.ledger.mutate("reminder.pay", func(st *domain.State) error {
		idx := st.TransactionIndex(txID)
		if idx < 0 {
			return domain.ErrTransactionNotFound
		}
		template := st.Transactions[idx]
		if !template.IsRecurring {
			return domain.ErrNotRecurring
		}

		payment = domain.Transaction{
			ID:          uuid.New().String(),
			Type:        template.Type,
			Amount:      template.Amount,
			Category:    template.Category,
			Account:     template.Account,
			FromAccount: template.FromAccount,
			ToAccount:   template.ToAccount,
			Date:        domain.DateOf(now),
			Note:        fmt.Sprintf("Payment: %s", template.Title()),
			CreatedAt:   now.UTC(),
		}
		st.Transactions = append([]domain.Transaction{payment}, st.Transactions...)
		st.ReminderPayments.MarkPaid(txID, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Payment: payment, CycleKey: key}
	s.ledger.publishEvent(websocket.ReminderPaid(map[string]interface{}{
		"templateId": txID,
		"cycleKey":   key,
		"payment":    payment,
	}))
	s.ledger.publishEvent(websocket.TransactionCreated(payment))
	return result, nil
}

// PayCreditCardBill transfers the card's full outstanding balance from fromAccount
func (s *ReminderService) PayCreditCardBill(card, fromAccount string) (*PaymentResult, error) {
	now := s.ledger.Now()

	var payment domain.Transaction
	_, err := s.ledger.mutate("credit_card.pay", func(st *domain.State) error {
		if !st.HasAccount(card) || !st.HasAccount(fromAccount) {
			return domain.ErrAccountNotFound
		}
		if !st.IsCreditAccount(card) {
			return domain.ErrNotCreditAccount
		}
		if card == fromAccount {
			return domain.ErrSameAccountTransfer
		}
		outstanding := st.Accounts[card]
		if !outstanding.IsPositive() {
			return domain.ErrNoOutstandingBalance
		}

		payment = domain.Transaction{
			ID:          uuid.New().String(),
			Type:        domain.TransactionTypeTransfer,
			Amount:      outstanding,
			Category:    domain.TransferCategory,
			Account:     fromAccount,
			FromAccount: fromAccount,
			ToAccount:   card,
			Date:        domain.DateOf(now),
			Note:        fmt.Sprintf("Bill Payment: %s", card),
			CreatedAt:   now.UTC(),
		}
		st.Transactions = append([]domain.Transaction{payment}, st.Transactions...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.publishEvent(websocket.TransactionCreated(payment))
	return &PaymentResult{Payment: payment, CycleKey: util.CycleKey(now)}, nil
}

// RecurringStatuses lists every recurring template with its paid flag for the
// calendar month of now, soonest due first.
func RecurringStatuses(st *domain.State, now time.Time) []domain.RecurringStatus {
	key := util.CycleKey(now)
	list := make([]domain.RecurringStatus, 0)
	for _, tx := range st.Transactions {
		if !tx.IsRecurring {
			continue
		}
		status := domain.RecurringStatus{
			Transaction: tx.Clone(),
			CycleKey:    key,
			Paid:        st.ReminderPayments.IsPaid(tx.ID, key),
		}
		if tx.DueDay != nil {
			status.DaysUntilDue = util.DaysUntilDue(*tx.DueDay, now)
			status.DueSoon = util.IsDueSoon(*tx.DueDay, now)
		}
		list = append(list, status)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DaysUntilDue < list[j].DaysUntilDue
	})
	return list
}

// DueAlerts returns recurring templates that are unpaid for this month and due
// soon, plus credit accounts carrying a balance whose due day is near.
func DueAlerts(st *domain.State, now time.Time) []domain.DueAlert {
	key := util.CycleKey(now)
	alerts := make([]domain.DueAlert, 0)

	for _, tx := range st.Transactions {
		if !tx.HasReminder() {
			continue
		}
		if st.ReminderPayments.IsPaid(tx.ID, key) || !util.IsDueSoon(*tx.DueDay, now) {
			continue
		}
		alerts = append(alerts, domain.DueAlert{
			Kind:          domain.AlertKindRecurring,
			TransactionID: tx.ID,
			Account:       tx.Account,
			Title:         tx.Title(),
			Amount:        tx.Amount,
			DueDay:        *tx.DueDay,
			DaysUntilDue:  util.DaysUntilDue(*tx.DueDay, now),
		})
	}

	for _, account := range st.AccountList() {
		if !account.IsCredit() || account.DueDay == nil || !account.CurrentBalance.IsPositive() {
			continue
		}
		if !util.IsDueSoon(*account.DueDay, now) {
			continue
		}
		alerts = append(alerts, domain.DueAlert{
			Kind:         domain.AlertKindCreditCardBill,
			Account:      account.Name,
			Title:        fmt.Sprintf("%s bill", account.Name),
			Amount:       account.CurrentBalance,
			DueDay:       *account.DueDay,
			DaysUntilDue: util.DaysUntilDue(*account.DueDay, now),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilDue < alerts[j].DaysUntilDue
	})
	return alerts
}

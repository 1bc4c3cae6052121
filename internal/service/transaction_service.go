package service

import (
	"sort"
	"strings"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/util"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	ledger *Ledger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(ledger *Ledger) *TransactionService {
	return &TransactionService{ledger: ledger}
}

// TransactionInput holds the fields of a new or replacement transaction
type TransactionInput struct {
	Type          domain.TransactionType
	Amount        decimal.Decimal
	Category      string
	Account       string
	FromAccount   string
	ToAccount     string
	Date          domain.Date // Zero means today
	Note          string
	IsRecurring   bool
	RecurringType string
	DueDay        *int
}

// TransactionView is a transaction together with the state of its references
type TransactionView struct {
	domain.Transaction
	AccountOrphaned     bool
	FromAccountOrphaned bool
	ToAccountOrphaned   bool
	CategoryOrphaned    bool
}

// GetTransactions returns transactions matching filters, newest first
func (s *TransactionService) GetTransactions(filters domain.TransactionFilters) []TransactionView {
	var views []TransactionView
	today := s.ledger.Today()
	s.ledger.view(func(st *domain.State) {
		matched := FilterTransactions(st, filters, today)
		views = make([]TransactionView, 0, len(matched))
		for _, tx := range matched {
			views = append(views, newTransactionView(st, tx))
		}
	})
	return views
}

// GetRecentTransactions returns the newest few transactions
func (s *TransactionService) GetRecentTransactions() []TransactionView {
	return s.GetTransactions(domain.TransactionFilters{Limit: domain.RecentTransactionLimit})
}

// GetTransaction returns a single transaction by id
func (s *TransactionService) GetTransaction(id string) (*TransactionView, error) {
	var view *TransactionView
	s.ledger.view(func(st *domain.State) {
		if idx := st.TransactionIndex(id); idx >= 0 {
			v := newTransactionView(st, st.Transactions[idx].Clone())
			view = &v
		}
	})
	if view == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return view, nil
}

// CreateTransaction validates and records a new transaction
func (s *TransactionService) CreateTransaction(input TransactionInput) (*domain.Transaction, error) {
	now := s.ledger.Now()

	var created domain.Transaction
	_, err := s.ledger.mutate("transaction.create", func(st *domain.State) error {
		tx, err := buildTransaction(st, input, now)
		if err != nil {
			return err
		}
		tx.ID = uuid.New().String()
		tx.CreatedAt = now.UTC()
		st.Transactions = append([]domain.Transaction{tx}, st.Transactions...)
		created = tx.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.publishEvent(websocket.TransactionCreated(created))
	return &created, nil
}

// UpdateTransaction replaces a transaction as a whole, keeping its id and creation time
func (s *TransactionService) UpdateTransaction(id string, input TransactionInput) (*domain.Transaction, error) {
	now := s.ledger.Now()

	var updated domain.Transaction
	_, err := s.ledger.mutate("transaction.update", func(st *domain.State) error {
		idx := st.TransactionIndex(id)
		if idx < 0 {
			return domain.ErrTransactionNotFound
		}
		tx, err := buildTransaction(st, input, now)
		if err != nil {
			return err
		}
		tx.ID = id
		tx.CreatedAt = st.Transactions[idx].CreatedAt
		st.Transactions[idx] = tx
		updated = tx.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.publishEvent(websocket.TransactionUpdated(updated))
	return &updated, nil
}

// DeleteTransaction permanently removes a transaction
func (s *TransactionService) DeleteTransaction(id string) error {
	_, err := s.ledger.mutate("transaction.delete", func(st *domain.State) error {
		idx := st.TransactionIndex(id)
		if idx < 0 {
			return domain.ErrTransactionNotFound
		}
		st.Transactions = append(st.Transactions[:idx], st.Transactions[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.ledger.publishEvent(websocket.TransactionDeleted(map[string]string{"id": id}))
	return nil
}

// buildTransaction validates input against st and returns the transaction it describes
func buildTransaction(st *domain.State, input TransactionInput, now time.Time) (domain.Transaction, error) {
	if !input.Type.IsValid() {
		return domain.Transaction{}, domain.ErrInvalidTransactionType
	}
	if !input.Amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	note := strings.TrimSpace(input.Note)
	if len(note) > domain.MaxNoteLength {
		return domain.Transaction{}, domain.ErrInvalidInput
	}

	tx := domain.Transaction{
		Type:   input.Type,
		Amount: input.Amount,
		Date:   input.Date,
		Note:   note,
	}
	if tx.Date.IsZero() {
		tx.Date = domain.DateOf(now)
	}

	if input.Type == domain.TransactionTypeTransfer {
		from := strings.TrimSpace(input.FromAccount)
		to := strings.TrimSpace(input.ToAccount)
		if from == "" || to == "" {
			return domain.Transaction{}, domain.ErrTransferAccountsRequired
		}
		if from == to {
			return domain.Transaction{}, domain.ErrSameAccountTransfer
		}
		if !st.HasAccount(from) || !st.HasAccount(to) {
			return domain.Transaction{}, domain.ErrAccountNotFound
		}
		tx.Category = domain.TransferCategory
		tx.Account = from
		tx.FromAccount = from
		tx.ToAccount = to
	} else {
		account := strings.TrimSpace(input.Account)
		category := strings.TrimSpace(input.Category)
		if account == "" {
			return domain.Transaction{}, domain.ErrAccountRequired
		}
		if !st.HasAccount(account) {
			return domain.Transaction{}, domain.ErrAccountNotFound
		}
		if category == "" {
			return domain.Transaction{}, domain.ErrCategoryRequired
		}
		if _, ok := st.Categories[category]; !ok {
			return domain.Transaction{}, domain.ErrCategoryNotFound
		}
		tx.Category = category
		tx.Account = account
	}

	if input.IsRecurring {
		day := 1
		if input.DueDay != nil {
			day = *input.DueDay
		}
		if day < domain.MinDueDay || day > domain.MaxDueDay {
			return domain.Transaction{}, domain.ErrInvalidDueDay
		}
		tx.IsRecurring = true
		tx.DueDay = &day
		tx.RecurringType = strings.TrimSpace(input.RecurringType)
		if tx.RecurringType == "" {
			tx.RecurringType = domain.RecurringMonthly
		}
	}

	return tx, nil
}

// FilterTransactions returns copies of the transactions in st matching filters,
// newest date first. Same-date entries are ordered by creation time, newest first.
func FilterTransactions(st *domain.State, filters domain.TransactionFilters, today time.Time) []domain.Transaction {
	cycleStart, cycleEnd := util.GetMonthCycleDates(today, st.MonthStartDate)
	weekStart := util.DateOnly(today).AddDate(0, 0, -7)
	query := strings.ToLower(strings.TrimSpace(filters.Search))

	matched := make([]domain.Transaction, 0, len(st.Transactions))
	for _, tx := range st.Transactions {
		if filters.Type != nil && tx.Type != *filters.Type {
			continue
		}
		switch filters.Range {
		case domain.RangeMonth:
			if !util.InCycle(tx.Date.Time, cycleStart, cycleEnd) {
				continue
			}
		case domain.RangeWeek:
			if tx.Date.Before(weekStart) {
				continue
			}
		}
		if query != "" && !matchesSearch(tx, query) {
			continue
		}
		matched = append(matched, tx.Clone())
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date.Time) {
			return matched[i].Date.After(matched[j].Date.Time)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched
}

// matchesSearch reports whether query appears in the note, category, amount or date
func matchesSearch(tx domain.Transaction, query string) bool {
	fields := []string{
		tx.Note,
		tx.Category,
		tx.Amount.String(),
		tx.Date.String(),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func newTransactionView(st *domain.State, tx domain.Transaction) TransactionView {
	view := TransactionView{
		Transaction:      tx,
		CategoryOrphaned: st.LookupCategory(tx.Category).Orphaned,
	}
	if tx.IsTransfer() {
		view.FromAccountOrphaned = st.LookupAccount(tx.FromAccount).Orphaned
		view.ToAccountOrphaned = st.LookupAccount(tx.ToAccount).Orphaned
		view.AccountOrphaned = view.FromAccountOrphaned
	} else {
		view.AccountOrphaned = st.LookupAccount(tx.Account).Orphaned
	}
	return view
}

package domain

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted state and backups carry amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Defaults for a fresh ledger
const (
	DefaultMonthlyBudget = 50000
	DefaultMonthStartDay = 1
	MinMonthStartDay     = 1
	MaxMonthStartDay     = 31
	MinDueDay            = 1
	MaxDueDay            = 31
)

// ReminderPayments maps a transaction id to the cycle keys it was paid for
type ReminderPayments map[string]map[string]bool

// IsPaid reports whether txID has been paid for cycleKey
func (r ReminderPayments) IsPaid(txID, cycleKey string) bool {
	return r[txID][cycleKey]
}

// MarkPaid records txID as paid for cycleKey
func (r ReminderPayments) MarkPaid(txID, cycleKey string) {
	if r[txID] == nil {
		r[txID] = make(map[string]bool)
	}
	r[txID][cycleKey] = true
}

// State is the whole ledger. It is also the durable record written by a StateStore.
type State struct {
	Transactions           []Transaction              `json:"transactions"`
	BudgetMonthly          decimal.Decimal            `json:"budgetMonthly"`
	Accounts               map[string]decimal.Decimal `json:"accounts"`
	AccountTypes           map[string]AccountType     `json:"accountTypes"`
	AccountInitialBalances map[string]decimal.Decimal `json:"accountInitialBalances"`
	AccountDueDays         map[string]int             `json:"accountDueDays"`
	MonthStartDate         int                        `json:"monthStartDate"`
	Categories             map[string]Category        `json:"categories"`
	ReminderPayments       ReminderPayments           `json:"reminderPayments"`
}

// DefaultState returns a fresh ledger with the stock category set
func DefaultState(budgetMonthly decimal.Decimal, monthStartDay int) *State {
	s := &State{
		Transactions:           []Transaction{},
		BudgetMonthly:          budgetMonthly,
		Accounts:               make(map[string]decimal.Decimal),
		AccountTypes:           make(map[string]AccountType),
		AccountInitialBalances: make(map[string]decimal.Decimal),
		AccountDueDays:         make(map[string]int),
		MonthStartDate:         monthStartDay,
		Categories:             make(map[string]Category),
		ReminderPayments:       make(ReminderPayments),
	}
	for _, name := range DefaultExpenseCategories {
		s.Categories[name] = Category{Type: CategoryTypeExpense, Budget: decimal.Zero}
	}
	for _, name := range DefaultIncomeCategories {
		s.Categories[name] = Category{Type: CategoryTypeIncome, Budget: decimal.Zero}
	}
	s.Categories[TransferCategory] = Category{Type: CategoryTypeNeutral, Budget: decimal.Zero}
	return s
}

// Normalize fills missing maps and restores the invariants a loaded or imported
// state may lack: the Transfer category exists, every account has a type and
// an initial balance, and the month start day is in range.
func (s *State) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Accounts == nil {
		s.Accounts = make(map[string]decimal.Decimal)
	}
	if s.AccountTypes == nil {
		s.AccountTypes = make(map[string]AccountType)
	}
	if s.AccountInitialBalances == nil {
		s.AccountInitialBalances = make(map[string]decimal.Decimal)
	}
	if s.AccountDueDays == nil {
		s.AccountDueDays = make(map[string]int)
	}
	if s.Categories == nil {
		s.Categories = make(map[string]Category)
	}
	if s.ReminderPayments == nil {
		s.ReminderPayments = make(ReminderPayments)
	}
	if _, ok := s.Categories[TransferCategory]; !ok {
		s.Categories[TransferCategory] = Category{Type: CategoryTypeNeutral, Budget: decimal.Zero}
	}
	if s.MonthStartDate < MinMonthStartDay || s.MonthStartDate > MaxMonthStartDay {
		s.MonthStartDate = DefaultMonthStartDay
	}
	for name, balance := range s.Accounts {
		if _, ok := s.AccountTypes[name]; !ok {
			s.AccountTypes[name] = AccountTypeOther
		}
		if _, ok := s.AccountInitialBalances[name]; !ok {
			s.AccountInitialBalances[name] = balance
		}
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := &State{
		Transactions:           make([]Transaction, len(s.Transactions)),
		BudgetMonthly:          s.BudgetMonthly,
		Accounts:               make(map[string]decimal.Decimal, len(s.Accounts)),
		AccountTypes:           make(map[string]AccountType, len(s.AccountTypes)),
		AccountInitialBalances: make(map[string]decimal.Decimal, len(s.AccountInitialBalances)),
		AccountDueDays:         make(map[string]int, len(s.AccountDueDays)),
		MonthStartDate:         s.MonthStartDate,
		Categories:             make(map[string]Category, len(s.Categories)),
		ReminderPayments:       make(ReminderPayments, len(s.ReminderPayments)),
	}
	for i, tx := range s.Transactions {
		c.Transactions[i] = tx.Clone()
	}
	for k, v := range s.Accounts {
		c.Accounts[k] = v
	}
	for k, v := range s.AccountTypes {
		c.AccountTypes[k] = v
	}
	for k, v := range s.AccountInitialBalances {
		c.AccountInitialBalances[k] = v
	}
	for k, v := range s.AccountDueDays {
		c.AccountDueDays[k] = v
	}
	for k, v := range s.Categories {
		c.Categories[k] = v
	}
	for id, keys := range s.ReminderPayments {
		copied := make(map[string]bool, len(keys))
		for k, v := range keys {
			copied[k] = v
		}
		c.ReminderPayments[id] = copied
	}
	return c
}

// Ref is the result of resolving a name held by a transaction. Orphaned is set
// when the name no longer exists in its registry; Value is then the zero value.
type Ref[T any] struct {
	Name     string
	Value    T
	Orphaned bool
}

// HasAccount reports whether an account with the given name exists
func (s *State) HasAccount(name string) bool {
	_, ok := s.Accounts[name]
	return ok
}

// AccountType returns the type of the named account, or "" when it does not exist
func (s *State) AccountType(name string) AccountType {
	if !s.HasAccount(name) {
		return ""
	}
	return s.AccountTypes[name]
}

// IsCreditAccount reports whether the named account exists and is a credit account
func (s *State) IsCreditAccount(name string) bool {
	return s.AccountType(name).IsLiability()
}

// LookupAccount resolves an account name
func (s *State) LookupAccount(name string) Ref[Account] {
	if !s.HasAccount(name) {
		return Ref[Account]{Name: name, Orphaned: true}
	}
	acc := Account{
		Name:           name,
		Type:           s.AccountTypes[name],
		InitialBalance: s.AccountInitialBalances[name],
		CurrentBalance: s.Accounts[name],
	}
	if day, ok := s.AccountDueDays[name]; ok && acc.IsCredit() {
		d := day
		acc.DueDay = &d
	}
	return Ref[Account]{Name: name, Value: acc}
}

// LookupCategory resolves a category name
func (s *State) LookupCategory(name string) Ref[Category] {
	cat, ok := s.Categories[name]
	if !ok {
		return Ref[Category]{Name: name, Orphaned: true}
	}
	return Ref[Category]{Name: name, Value: cat}
}

// AccountList returns every account sorted by name
func (s *State) AccountList() []Account {
	names := make([]string, 0, len(s.Accounts))
	for name := range s.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	accounts := make([]Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, s.LookupAccount(name).Value)
	}
	return accounts
}

// CategoryList returns every category sorted by type then name
func (s *State) CategoryList() []NamedCategory {
	list := make([]NamedCategory, 0, len(s.Categories))
	for name, cat := range s.Categories {
		list = append(list, NamedCategory{Name: name, Category: cat})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Type != list[j].Type {
			return list[i].Type < list[j].Type
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// AllocatedBudget sums the budgets of expense categories, skipping exclude
func (s *State) AllocatedBudget(exclude string) decimal.Decimal {
	total := decimal.Zero
	for name, cat := range s.Categories {
		if name == exclude || cat.Type != CategoryTypeExpense {
			continue
		}
		total = total.Add(cat.Budget)
	}
	return total
}

// TransactionIndex returns the position of the transaction with id, or -1
func (s *State) TransactionIndex(id string) int {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// StateStore is the persistence port for the whole ledger
type StateStore interface {
	// Load returns the stored state, or nil when nothing has been saved yet
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

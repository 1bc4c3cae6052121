package service

import (
	"strings"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// AccountService handles account business logic
type AccountService struct {
	ledger *Ledger
}

// NewAccountService creates a new AccountService
func NewAccountService(ledger *Ledger) *AccountService {
	return &AccountService{ledger: ledger}
}

// CreateAccountInput holds the input for creating an account
type CreateAccountInput struct {
	Name           string
	Type           domain.AccountType
	InitialBalance decimal.Decimal
	DueDay         *int
}

// UpdateAccountInput holds the input for editing an account. Name may differ
// from the current one to rename the account.
type UpdateAccountInput struct {
	Name           string
	Type           domain.AccountType
	InitialBalance decimal.Decimal
	DueDay         *int
}

// GetAccounts returns every account with its replayed balance
func (s *AccountService) GetAccounts() []domain.Account {
	var accounts []domain.Account
	s.ledger.view(func(st *domain.State) {
		accounts = st.AccountList()
	})
	return accounts
}

// GetAccount returns a single account by name
func (s *AccountService) GetAccount(name string) (*domain.Account, error) {
	var ref domain.Ref[domain.Account]
	s.ledger.view(func(st *domain.State) {
		ref = st.LookupAccount(name)
	})
	if ref.Orphaned {
		return nil, domain.ErrAccountNotFound
	}
	return &ref.Value, nil
}

// CreateAccount adds a new account
func (s *AccountService) CreateAccount(input CreateAccountInput) (*domain.Account, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidAccountType
	}
	dueDay, err := resolveAccountDueDay(input.Type, input.DueDay)
	if err != nil {
		return nil, err
	}

	state, err := s.ledger.mutate("account.create", func(st *domain.State) error {
		if st.HasAccount(name) {
			return domain.ErrDuplicateAccount
		}
		st.Accounts[name] = input.InitialBalance
		st.AccountTypes[name] = input.Type
		st.AccountInitialBalances[name] = input.InitialBalance
		if dueDay != nil {
			st.AccountDueDays[name] = *dueDay
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account := state.LookupAccount(name).Value
	s.ledger.publishEvent(websocket.AccountCreated(account))
	return &account, nil
}

// UpdateAccount edits an account. A rename rewrites every transaction that
// names the account; a type or initial balance change triggers a full replay.
func (s *AccountService) UpdateAccount(currentName string, input UpdateAccountInput) (*domain.Account, error) {
	newName, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidAccountType
	}
	dueDay, err := resolveAccountDueDay(input.Type, input.DueDay)
	if err != nil {
		return nil, err
	}

	state, err := s.ledger.mutate("account.update", func(st *domain.State) error {
		if !st.HasAccount(currentName) {
			return domain.ErrAccountNotFound
		}
		if newName != currentName {
			if st.HasAccount(newName) {
				return domain.ErrDuplicateAccount
			}
			renameAccount(st, currentName, newName)
		}

		st.AccountTypes[newName] = input.Type
		st.AccountInitialBalances[newName] = input.InitialBalance
		if dueDay != nil {
			st.AccountDueDays[newName] = *dueDay
		} else {
			delete(st.AccountDueDays, newName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	account := state.LookupAccount(newName).Value
	s.ledger.publishEvent(websocket.AccountUpdated(map[string]interface{}{
		"previousName": currentName,
		"account":      account,
	}))
	return &account, nil
}

// DeleteAccount removes an account. Transactions naming it are kept and
// simply stop affecting any balance.
func (s *AccountService) DeleteAccount(name string) error {
	_, err := s.ledger.mutate("account.delete", func(st *domain.State) error {
		if !st.HasAccount(name) {
			return domain.ErrAccountNotFound
		}
		delete(st.Accounts, name)
		delete(st.AccountTypes, name)
		delete(st.AccountInitialBalances, name)
		delete(st.AccountDueDays, name)
		return nil
	})
	if err != nil {
		return err
	}

	s.ledger.publishEvent(websocket.AccountDeleted(map[string]string{"name": name}))
	return nil
}

// renameAccount moves every map entry and transaction reference from oldName to newName
func renameAccount(st *domain.State, oldName, newName string) {
	st.Accounts[newName] = st.Accounts[oldName]
	delete(st.Accounts, oldName)
	st.AccountTypes[newName] = st.AccountTypes[oldName]
	delete(st.AccountTypes, oldName)
	st.AccountInitialBalances[newName] = st.AccountInitialBalances[oldName]
	delete(st.AccountInitialBalances, oldName)
	if day, ok := st.AccountDueDays[oldName]; ok {
		st.AccountDueDays[newName] = day
		delete(st.AccountDueDays, oldName)
	}

	for i := range st.Transactions {
		tx := &st.Transactions[i]
		if tx.Account == oldName {
			tx.Account = newName
		}
		if tx.FromAccount == oldName {
			tx.FromAccount = newName
		}
		if tx.ToAccount == oldName {
			tx.ToAccount = newName
		}
	}
}

// resolveAccountDueDay returns the due day to store. Only credit accounts keep
// one, defaulting to DefaultCreditDueDay.
func resolveAccountDueDay(accountType domain.AccountType, dueDay *int) (*int, error) {
	if !accountType.IsLiability() {
		return nil, nil
	}
	day := domain.DefaultCreditDueDay
	if dueDay != nil {
		day = *dueDay
	}
	if day < domain.MinDueDay || day > domain.MaxDueDay {
		return nil, domain.ErrInvalidDueDay
	}
	return &day, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}

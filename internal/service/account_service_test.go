package service

import (
	"strings"
	"testing"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestCreateAccount_Success_BankAccount(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)

	account, err := accountService.CreateAccount(CreateAccountInput{
		Name:           "  My Savings ",
		Type:           domain.AccountTypeBank,
		InitialBalance: decimal.NewFromFloat(1000.50),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Name != "My Savings" {
		t.Errorf("Expected name 'My Savings', got %s", account.Name)
	}
	if !account.CurrentBalance.Equal(decimal.NewFromFloat(1000.50)) {
		t.Errorf("Expected balance 1000.50, got %s", account.CurrentBalance)
	}
	if account.DueDay != nil {
		t.Errorf("Expected no due day on a bank account, got %d", *account.DueDay)
	}
}

func TestCreateAccount_CreditDueDay(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)

	card, err := accountService.CreateAccount(CreateAccountInput{Name: "Visa", Type: domain.AccountTypeCredit})
	require.NoError(t, err)
	require.NotNil(t, card.DueDay)
	assert.Equal(t, domain.DefaultCreditDueDay, *card.DueDay)

	amex, err := accountService.CreateAccount(CreateAccountInput{Name: "Amex", Type: domain.AccountTypeCredit, DueDay: intPtr(25)})
	require.NoError(t, err)
	assert.Equal(t, 25, *amex.DueDay)
}

func TestCreateAccount_Errors(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)

	tests := []struct {
		name  string
		input CreateAccountInput
		err   error
	}{
		{"empty name", CreateAccountInput{Name: "  ", Type: domain.AccountTypeBank}, domain.ErrNameRequired},
		{"long name", CreateAccountInput{Name: strings.Repeat("a", 101), Type: domain.AccountTypeBank}, domain.ErrNameTooLong},
		{"bad type", CreateAccountInput{Name: "X", Type: "savings"}, domain.ErrInvalidAccountType},
		{"duplicate", CreateAccountInput{Name: "Bank", Type: domain.AccountTypeCash}, domain.ErrDuplicateAccount},
		{"due day out of range", CreateAccountInput{Name: "Card", Type: domain.AccountTypeCredit, DueDay: intPtr(32)}, domain.ErrInvalidDueDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accountService.CreateAccount(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUpdateAccount_RenameRewritesTransactions(t *testing.T) {
	ledger, publisher := newTestLedger(t)
	accountService := NewAccountService(ledger)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 1000)
	mustCreateAccount(t, ledger, "Card", domain.AccountTypeCredit, 0)
	expense := mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(100), Category: "Dining", Account: "Bank",
	})
	payment := mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(50), FromAccount: "Bank", ToAccount: "Card",
	})
	publisher.Reset()

	account, err := accountService.UpdateAccount("Bank", UpdateAccountInput{
		Name: "Main Bank", Type: domain.AccountTypeBank, InitialBalance: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Main Bank", account.Name)
	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromInt(850)))

	st := ledger.Snapshot()
	assert.False(t, st.HasAccount("Bank"))
	for _, tx := range st.Transactions {
		switch tx.ID {
		case expense.ID:
			assert.Equal(t, "Main Bank", tx.Account)
		case payment.ID:
			assert.Equal(t, "Main Bank", tx.FromAccount)
			assert.Equal(t, "Main Bank", tx.Account)
			assert.Equal(t, "Card", tx.ToAccount)
		}
	}
	assert.Contains(t, publisher.Types(), "account.updated")
}

func TestUpdateAccount_RetypeReplaysBalance(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)
	mustCreateAccount(t, ledger, "Card", domain.AccountTypeCredit, 0)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(100), Category: "Dining", Account: "Card",
	})
	assert.True(t, balanceOf(ledger, "Card").Equal(decimal.NewFromInt(100)))

	account, err := accountService.UpdateAccount("Card", UpdateAccountInput{Name: "Card", Type: domain.AccountTypeBank})
	require.NoError(t, err)

	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromInt(-100)), "got %s", account.CurrentBalance)
	assert.Nil(t, account.DueDay)
	_, hasDueDay := ledger.Snapshot().AccountDueDays["Card"]
	assert.False(t, hasDueDay)
}

func TestUpdateAccount_InitialBalanceChange(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 100)
	mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(50), Category: "Salary", Account: "Bank",
	})

	account, err := accountService.UpdateAccount("Bank", UpdateAccountInput{
		Name: "Bank", Type: domain.AccountTypeBank, InitialBalance: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromInt(550)))
}

func TestUpdateAccount_Errors(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)
	mustCreateAccount(t, ledger, "Cash", domain.AccountTypeCash, 0)

	_, err := accountService.UpdateAccount("Nope", UpdateAccountInput{Name: "Nope", Type: domain.AccountTypeBank})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = accountService.UpdateAccount("Bank", UpdateAccountInput{Name: "Cash", Type: domain.AccountTypeBank})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestDeleteAccount_OrphansTransactions(t *testing.T) {
	ledger, _ := newTestLedger(t)
	accountService := NewAccountService(ledger)
	txService := NewTransactionService(ledger)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)
	tx := mustRecord(t, ledger, TransactionInput{
		Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Category: "Dining", Account: "Bank",
	})

	require.NoError(t, accountService.DeleteAccount("Bank"))

	_, err := accountService.GetAccount("Bank")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	view, err := txService.GetTransaction(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bank", view.Account)
	assert.True(t, view.AccountOrphaned)

	assert.ErrorIs(t, accountService.DeleteAccount("Bank"), domain.ErrAccountNotFound)
}

func TestGetAccounts_SortedByName(t *testing.T) {
	ledger, _ := newTestLedger(t)
	mustCreateAccount(t, ledger, "Wallet", domain.AccountTypeCash, 0)
	mustCreateAccount(t, ledger, "Bank", domain.AccountTypeBank, 0)

	accounts := NewAccountService(ledger).GetAccounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, "Bank", accounts[0].Name)
	assert.Equal(t, "Wallet", accounts[1].Name)
}

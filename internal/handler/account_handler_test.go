package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/dafibh/fintrack/fintrack-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func TestCreateAccount_Success_BankAccount(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/v1/accounts", `{"name": "My Savings", "type": "bank", "initialBalance": "1000.50"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response AccountResponse
	decode(t, rec, &response)

	if response.Name != "My Savings" {
		t.Errorf("Expected name 'My Savings', got %s", response.Name)
	}
	if response.Type != "bank" {
		t.Errorf("Expected type 'bank', got %s", response.Type)
	}
	if response.InitialBalance != "1000.50" || response.CurrentBalance != "1000.50" {
		t.Errorf("Expected balances '1000.50', got %s / %s", response.InitialBalance, response.CurrentBalance)
	}
	if response.IsCredit {
		t.Error("Expected bank account not to be credit")
	}
}

func TestCreateAccount_Success_CreditCard(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.mustDo(t, http.MethodPost, "/api/v1/accounts", `{"name": "Visa", "type": "credit", "dueDay": 15}`, http.StatusCreated)

	var response AccountResponse
	decode(t, rec, &response)

	if !response.IsCredit {
		t.Error("Expected credit account")
	}
	if response.DueDay == nil || *response.DueDay != 15 {
		t.Errorf("Expected due day 15, got %v", response.DueDay)
	}
	if response.InitialBalance != "0.00" {
		t.Errorf("Expected initial balance '0.00', got %s", response.InitialBalance)
	}
}

func TestCreateAccount_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"name": "", "type": "bank"}`, "name"},
		{"blank name", `{"name": "   ", "type": "bank"}`, "name"},
		{"invalid type", `{"name": "Wallet", "type": "crypto"}`, "type"},
		{"invalid balance", `{"name": "Wallet", "type": "cash", "initialBalance": "lots"}`, "initialBalance"},
		{"due day out of range", `{"name": "Visa", "type": "credit", "dueDay": 32}`, "dueDay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec := srv.do(http.MethodPost, "/api/v1/accounts", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
			problem := decodeProblem(t, rec)
			if problem.Type != ErrorTypeValidation {
				t.Errorf("Expected validation problem, got %s", problem.Type)
			}
			if !hasFieldError(problem, tt.field) {
				t.Errorf("Expected error on field %q, got %+v", tt.field, problem.Errors)
			}
			if len(srv.ledger.Snapshot().Accounts) != 0 {
				t.Error("Expected no account to be created")
			}
		})
	}
}

func TestCreateAccount_InvalidJSON(t *testing.T) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	ledger := service.NewLedger(service.LedgerConfig{Clock: testutil.FixedClock(testNow)})
	handler := NewAccountHandler(service.NewAccountService(ledger))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateAccount(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateAccount_Duplicate(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "0")

	rec := srv.do(http.MethodPost, "/api/v1/accounts", `{"name": "Bank", "type": "cash"}`)

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}
}

func TestGetAccounts_ReplayedBalances(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "1000")
	srv.createAccount(t, "Card", "credit", "0")
	srv.createTransaction(t, `{"type": "transfer", "amount": "250", "fromAccount": "Bank", "toAccount": "Card"}`)

	rec := srv.mustDo(t, http.MethodGet, "/api/v1/accounts", "", http.StatusOK)

	var accounts []AccountResponse
	decode(t, rec, &accounts)

	balances := map[string]string{}
	for _, a := range accounts {
		balances[a.Name] = a.CurrentBalance
	}
	if balances["Bank"] != "750.00" {
		t.Errorf("Expected Bank 750.00, got %s", balances["Bank"])
	}
	if balances["Card"] != "-250.00" {
		t.Errorf("Expected Card -250.00, got %s", balances["Card"])
	}
}

func TestUpdateAccount_Rename(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "100")
	tx := srv.createTransaction(t, `{"type": "expense", "amount": "40", "category": "Dining", "account": "Bank"}`)

	rec := srv.mustDo(t, http.MethodPut, "/api/v1/accounts/Bank", `{"name": "Main Bank", "type": "bank", "initialBalance": "100"}`, http.StatusOK)

	var response AccountResponse
	decode(t, rec, &response)
	if response.Name != "Main Bank" || response.CurrentBalance != "60.00" {
		t.Errorf("Unexpected account after rename: %+v", response)
	}

	rec = srv.mustDo(t, http.MethodGet, "/api/v1/transactions/"+tx.ID, "", http.StatusOK)
	var moved TransactionResponse
	decode(t, rec, &moved)
	if moved.Account != "Main Bank" || moved.AccountOrphaned {
		t.Errorf("Expected transaction to follow the rename, got %+v", moved)
	}
}

func TestUpdateAccount_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPut, "/api/v1/accounts/Nope", `{"name": "Nope", "type": "bank"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteAccount(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "100")

	srv.mustDo(t, http.MethodDelete, "/api/v1/accounts/Bank", "", http.StatusNoContent)

	if srv.ledger.Snapshot().HasAccount("Bank") {
		t.Error("Expected account to be deleted")
	}
	if !srv.balance("Bank").Equal(decimal.Zero) {
		t.Errorf("Expected no balance for deleted account, got %s", srv.balance("Bank"))
	}

	srv.mustDo(t, http.MethodDelete, "/api/v1/accounts/Bank", "", http.StatusNotFound)
}

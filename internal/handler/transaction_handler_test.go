package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTransactionServer(t *testing.T) *testServer {
	t.Helper()
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "1000")
	srv.createAccount(t, "Card", "credit", "0")
	return srv
}

func TestCreateTransaction_Expense(t *testing.T) {
	srv := setupTransactionServer(t)

	tx := srv.createTransaction(t, `{"type": "expense", "amount": "12.34", "category": "Dining", "account": "Bank", "note": "lunch"}`)

	if tx.ID == "" {
		t.Error("Expected an id")
	}
	if tx.Amount != "12.34" {
		t.Errorf("Expected amount '12.34', got %s", tx.Amount)
	}
	if tx.Date != "2024-03-10" {
		t.Errorf("Expected date to default to today, got %s", tx.Date)
	}
	if !srv.balance("Bank").Equal(decimal.NewFromFloat(987.66)) {
		t.Errorf("Expected Bank balance 987.66, got %s", srv.balance("Bank"))
	}
	assert.Contains(t, srv.events.Types(), "transaction.created")
}

func TestCreateTransaction_TransferToCredit(t *testing.T) {
	srv := setupTransactionServer(t)

	tx := srv.createTransaction(t, `{"type": "transfer", "amount": "300", "fromAccount": "Bank", "toAccount": "Card", "date": "2024-03-01"}`)

	assert.Equal(t, "Transfer", tx.Category)
	assert.Equal(t, "2024-03-01", tx.Date)
	assert.True(t, srv.balance("Bank").Equal(decimal.NewFromInt(700)))
	assert.True(t, srv.balance("Card").Equal(decimal.NewFromInt(-300)))
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing amount", `{"type": "expense", "category": "Dining", "account": "Bank"}`, "amount"},
		{"non numeric amount", `{"type": "expense", "amount": "ten", "category": "Dining", "account": "Bank"}`, "amount"},
		{"zero amount", `{"type": "expense", "amount": "0", "category": "Dining", "account": "Bank"}`, "amount"},
		{"invalid type", `{"type": "gift", "amount": "5"}`, "type"},
		{"bad date", `{"type": "expense", "amount": "5", "category": "Dining", "account": "Bank", "date": "10/03/2024"}`, "date"},
		{"unknown account", `{"type": "expense", "amount": "5", "category": "Dining", "account": "Nope"}`, "account"},
		{"unknown category", `{"type": "expense", "amount": "5", "category": "Nope", "account": "Bank"}`, "category"},
		{"missing category", `{"type": "income", "amount": "5", "account": "Bank"}`, "category"},
		{"transfer to self", `{"type": "transfer", "amount": "5", "fromAccount": "Bank", "toAccount": "Bank"}`, "toAccount"},
		{"transfer missing side", `{"type": "transfer", "amount": "5", "fromAccount": "Bank"}`, "fromAccount"},
		{"recurring bad due day", `{"type": "expense", "amount": "5", "category": "Bills", "account": "Bank", "isRecurring": true, "dueDay": 40}`, "dueDay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := setupTransactionServer(t)
			before := srv.ledger.Snapshot()

			rec := srv.do(http.MethodPost, "/api/v1/transactions", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			problem := decodeProblem(t, rec)
			assert.True(t, hasFieldError(problem, tt.field), "expected field %q in %+v", tt.field, problem.Errors)
			assert.Equal(t, before, srv.ledger.Snapshot())
		})
	}
}

func TestGetTransactions_Filters(t *testing.T) {
	srv := setupTransactionServer(t)
	srv.createTransaction(t, `{"type": "expense", "amount": "10", "category": "Dining", "account": "Bank", "date": "2024-03-09", "note": "Pizza night"}`)
	srv.createTransaction(t, `{"type": "income", "amount": "500", "category": "Salary", "account": "Bank", "date": "2024-03-01"}`)
	srv.createTransaction(t, `{"type": "expense", "amount": "20", "category": "Groceries", "account": "Card", "date": "2024-02-20"}`)

	var all []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions", "", http.StatusOK), &all)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-09", all[0].Date)

	var expenses []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions?type=expense", "", http.StatusOK), &expenses)
	assert.Len(t, expenses, 2)

	var month []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions?range=month", "", http.StatusOK), &month)
	assert.Len(t, month, 2)

	var found []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions?q=pizza", "", http.StatusOK), &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Pizza night", found[0].Note)

	var limited []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions?limit=1", "", http.StatusOK), &limited)
	assert.Len(t, limited, 1)

	for _, query := range []string{"type=loan", "range=year", "limit=0", "limit=abc"} {
		rec := srv.do(http.MethodGet, "/api/v1/transactions?"+query, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestGetRecentTransactions(t *testing.T) {
	srv := setupTransactionServer(t)
	for i := 0; i < 7; i++ {
		srv.createTransaction(t, `{"type": "income", "amount": "1", "category": "Gift", "account": "Bank"}`)
	}

	var recent []TransactionResponse
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/transactions/recent", "", http.StatusOK), &recent)

	assert.Len(t, recent, 5)
}

func TestGetTransaction_NotFound(t *testing.T) {
	srv := setupTransactionServer(t)

	rec := srv.do(http.MethodGet, "/api/v1/transactions/missing", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if problem := decodeProblem(t, rec); problem.Type != ErrorTypeNotFound {
		t.Errorf("Expected not found problem, got %s", problem.Type)
	}
}

func TestUpdateTransaction(t *testing.T) {
	srv := setupTransactionServer(t)
	tx := srv.createTransaction(t, `{"type": "expense", "amount": "100", "category": "Dining", "account": "Bank"}`)

	rec := srv.mustDo(t, http.MethodPut, "/api/v1/transactions/"+tx.ID,
		`{"type": "expense", "amount": "60", "category": "Groceries", "account": "Card"}`, http.StatusOK)

	var updated TransactionResponse
	decode(t, rec, &updated)
	assert.Equal(t, tx.ID, updated.ID)
	assert.Equal(t, tx.CreatedAt, updated.CreatedAt)
	assert.True(t, srv.balance("Bank").Equal(decimal.NewFromInt(1000)))
	assert.True(t, srv.balance("Card").Equal(decimal.NewFromInt(-60)))

	rec = srv.do(http.MethodPut, "/api/v1/transactions/missing", `{"type": "expense", "amount": "1", "category": "Dining", "account": "Bank"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTransaction(t *testing.T) {
	srv := setupTransactionServer(t)
	tx := srv.createTransaction(t, `{"type": "expense", "amount": "100", "category": "Dining", "account": "Bank"}`)

	srv.mustDo(t, http.MethodDelete, "/api/v1/transactions/"+tx.ID, "", http.StatusNoContent)
	assert.True(t, srv.balance("Bank").Equal(decimal.NewFromInt(1000)))

	srv.mustDo(t, http.MethodDelete, "/api/v1/transactions/"+tx.ID, "", http.StatusNotFound)
}

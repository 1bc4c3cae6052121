package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/dafibh/fintrack/fintrack-backend/internal/testutil"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

type testServer struct {
	e      *echo.Echo
	ledger *service.Ledger
	data   *service.DataService
	events *testutil.MockEventPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ledger := service.NewLedger(service.LedgerConfig{
		DefaultMonthlyBudget: decimal.NewFromInt(domain.DefaultMonthlyBudget),
		Clock:                testutil.FixedClock(testNow),
	})
	events := testutil.NewMockEventPublisher()
	ledger.SetEventPublisher(events)

	dashboardService := service.NewDashboardService(ledger)
	dataService := service.NewDataService(ledger)

	e := echo.New()
	e.Validator = NewRequestValidator()
	RegisterRoutes(e, Handlers{
		Account:     NewAccountHandler(service.NewAccountService(ledger)),
		Transaction: NewTransactionHandler(service.NewTransactionService(ledger)),
		Category:    NewCategoryHandler(service.NewCategoryService(ledger)),
		Budget:      NewBudgetHandler(service.NewBudgetService(ledger)),
		Reminder:    NewReminderHandler(service.NewReminderService(ledger)),
		Dashboard:   NewDashboardHandler(dashboardService),
		Data:        NewDataHandler(dataService),
		WebSocket:   NewWebSocketHandler(websocket.NewHub(), dashboardService, []string{"http://localhost:3000"}),
	})

	return &testServer{e: e, ledger: ledger, data: dataService, events: events}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// mustDo performs the request and fails the test unless the status matches
func (s *testServer) mustDo(t *testing.T, method, path, body string, status int) *httptest.ResponseRecorder {
	t.Helper()
	rec := s.do(method, path, body)
	if rec.Code != status {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, path, status, rec.Code, rec.Body.String())
	}
	return rec
}

func (s *testServer) createAccount(t *testing.T, name, accountType, initialBalance string) {
	t.Helper()
	body := `{"name": "` + name + `", "type": "` + accountType + `", "initialBalance": "` + initialBalance + `"}`
	s.mustDo(t, http.MethodPost, "/api/v1/accounts", body, http.StatusCreated)
}

func (s *testServer) createTransaction(t *testing.T, body string) TransactionResponse {
	t.Helper()
	rec := s.mustDo(t, http.MethodPost, "/api/v1/transactions", body, http.StatusCreated)
	var tx TransactionResponse
	decode(t, rec, &tx)
	return tx
}

func (s *testServer) balance(name string) decimal.Decimal {
	return s.ledger.Snapshot().Accounts[name]
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	decode(t, rec, &problem)
	return problem
}

func hasFieldError(problem ProblemDetails, field string) bool {
	for _, e := range problem.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

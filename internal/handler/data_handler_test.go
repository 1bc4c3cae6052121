package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/fintrack/fintrack-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "100")
	srv.createTransaction(t, `{"type": "expense", "amount": "12.5", "category": "Dining", "account": "Bank", "date": "2024-03-02", "note": "say \"hi\""}`)
	srv.createTransaction(t, `{"type": "expense", "amount": "7", "category": "Dining", "account": "Bank", "date": "2024-02-02"}`)

	rec := srv.mustDo(t, http.MethodGet, "/api/v1/data/export/csv?month=2024-03", "", http.StatusOK)

	assert.Equal(t, `attachment; filename="FinTrack_2024-03.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, "Date,Type,Amount,Category,Account,Note\n2024-03-02,expense,12.5,Dining,Bank,\"say \"\"hi\"\"\"\n", rec.Body.String())

	rec = srv.mustDo(t, http.MethodGet, "/api/v1/data/export/csv", "", http.StatusOK)
	assert.Equal(t, `attachment; filename="FinTrack_All_Logs.csv"`, rec.Header().Get(echo.HeaderContentDisposition))

	rec = srv.do(http.MethodGet, "/api/v1/data/export/csv?month=2024-13", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, hasFieldError(decodeProblem(t, rec), "month"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "100")
	srv.createTransaction(t, `{"type": "expense", "amount": "30", "category": "Dining", "account": "Bank"}`)

	exported := srv.mustDo(t, http.MethodGet, "/api/v1/data/export/json", "", http.StatusOK).Body.String()

	srv.mustDo(t, http.MethodPost, "/api/v1/data/reset", "", http.StatusNoContent)
	assert.Empty(t, srv.ledger.Snapshot().Accounts)

	rec := srv.mustDo(t, http.MethodPost, "/api/v1/data/import", exported, http.StatusOK)
	var response ImportResponse
	decode(t, rec, &response)
	assert.Equal(t, 1, response.Transactions)
	assert.Equal(t, 1, response.Accounts)
	assert.Equal(t, "70", srv.balance("Bank").String())
	assert.Contains(t, srv.events.Types(), "ledger.imported")
}

func TestImport_RejectedLeavesStateUnchanged(t *testing.T) {
	srv := newTestServer(t)
	srv.createAccount(t, "Bank", "bank", "100")
	before, err := json.Marshal(srv.ledger.Snapshot())
	require.NoError(t, err)

	for _, payload := range []string{`{"transactions": [], "accounts": {}}`, `{"nope": true}`, `[1, 2]`} {
		rec := srv.do(http.MethodPost, "/api/v1/data/import", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}

	rec := srv.do(http.MethodPost, "/api/v1/data/import", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	after, err := json.Marshal(srv.ledger.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestImport_Multipart(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "backup.json")
	require.NoError(t, err)
	_, err = part.Write([]byte(`{"transactions": [], "accounts": {"Wallet": 0}, "accountInitialBalances": {"Wallet": 25}, "categories": {}}`))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/data/import", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "25", srv.balance("Wallet").String())
}

func TestBackups_Disabled(t *testing.T) {
	srv := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := srv.do(method, "/api/v1/data/backups", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, method)
	}
}

func TestBackups_CreateListRestore(t *testing.T) {
	srv := newTestServer(t)
	srv.data.SetBackupStore(testutil.NewMockBackupStore())
	srv.createAccount(t, "Bank", "bank", "100")

	rec := srv.mustDo(t, http.MethodPost, "/api/v1/data/backups", "", http.StatusCreated)
	var backup struct {
		Key string `json:"key"`
	}
	decode(t, rec, &backup)
	assert.Equal(t, "fintrack-backup-20240310T120000Z.json", backup.Key)

	srv.mustDo(t, http.MethodDelete, "/api/v1/accounts/Bank", "", http.StatusNoContent)

	var list []map[string]interface{}
	decode(t, srv.mustDo(t, http.MethodGet, "/api/v1/data/backups", "", http.StatusOK), &list)
	require.Len(t, list, 1)

	srv.mustDo(t, http.MethodPost, "/api/v1/data/backups/restore", `{"key": "`+backup.Key+`"}`, http.StatusOK)
	assert.True(t, srv.ledger.Snapshot().HasAccount("Bank"))

	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodPost, "/api/v1/data/backups/restore", `{"key": "fintrack-backup-none.json"}`).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(http.MethodPost, "/api/v1/data/backups/restore", `{}`).Code)
}

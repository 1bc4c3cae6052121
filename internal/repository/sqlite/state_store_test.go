package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	store := NewStateStore(filepath.Join(t.TempDir(), "fintrack.db"))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStateStore_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStateStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.DefaultState(decimal.NewFromInt(100), 1)
	second := domain.DefaultState(decimal.NewFromInt(200), 10)
	second.Transactions = []domain.Transaction{{
		ID: "x", Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("3.50"),
		Category: "Dining", Account: "Cash", Date: domain.NewDate(2024, time.June, 30),
	}}

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.BudgetMonthly.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 10, loaded.MonthStartDate)
	require.Len(t, loaded.Transactions, 1)
	assert.True(t, loaded.Transactions[0].Amount.Equal(decimal.RequireFromString("3.5")))
}

func TestStateStore_ConcurrentFirstUse(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Load(context.Background()); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestStateStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	store := NewStateStore(path)
	require.NoError(t, store.Save(ctx, domain.DefaultState(decimal.NewFromInt(777), 1)))
	require.NoError(t, store.Close())

	reopened := NewStateStore(path)
	defer reopened.Close()
	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.BudgetMonthly.Equal(decimal.NewFromInt(777)))
}

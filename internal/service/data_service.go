package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/util"
	"github.com/dafibh/fintrack/fintrack-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// Keys an import must carry to be accepted
var requiredImportKeys = []string{"transactions", "accounts", "categories"}

const (
	csvHeader          = "Date,Type,Amount,Category,Account,Note\n"
	csvAllLogsFilename = "FinTrack_All_Logs.csv"
	backupKeyPrefix    = "fintrack-backup-"
)

// DataService handles export, import, reset and backups of the whole ledger
type DataService struct {
	ledger  *Ledger
	backups domain.BackupStore
}

// NewDataService creates a new DataService
func NewDataService(ledger *Ledger) *DataService {
	return &DataService{ledger: ledger}
}

// SetBackupStore enables backups to an external object store
func (s *DataService) SetBackupStore(store domain.BackupStore) {
	s.backups = store
}

// BackupsEnabled reports whether a backup store is configured
func (s *DataService) BackupsEnabled() bool {
	return s.backups != nil
}

// ExportJSON returns the whole state in its persisted JSON form
func (s *DataService) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.ledger.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

// ExportCSV renders transactions as CSV, newest first. An empty monthKey
// exports every transaction; otherwise only the calendar month "YYYY-MM".
// It also returns the file name the export should be saved under.
func (s *DataService) ExportCSV(monthKey string) ([]byte, string, error) {
	filename := csvAllLogsFilename
	if monthKey != "" {
		if _, _, err := util.ParseMonthKey(monthKey); err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		filename = fmt.Sprintf("FinTrack_%s.csv", monthKey)
	}

	var txs []domain.Transaction
	s.ledger.view(func(st *domain.State) {
		txs = make([]domain.Transaction, 0, len(st.Transactions))
		for _, tx := range st.Transactions {
			if monthKey != "" && util.CycleKey(tx.Date.Time) != monthKey {
				continue
			}
			txs = append(txs, tx.Clone())
		}
	})

	return RenderCSV(txs), filename, nil
}

// RenderCSV writes txs as CSV rows sorted newest first. The note column is
// always quoted; every other column is written as is.
func RenderCSV(txs []domain.Transaction) []byte {
	sorted := make([]domain.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.After(sorted[j].Date.Time)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var b strings.Builder
	b.WriteString(csvHeader)
	for _, tx := range sorted {
		account := tx.Account
		if tx.IsTransfer() {
			account = tx.FromAccount + " -> " + tx.ToAccount
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,\"%s\"\n",
			tx.Date.String(),
			tx.Type,
			tx.Amount.String(),
			tx.Category,
			account,
			strings.ReplaceAll(tx.Note, `"`, `""`),
		)
	}
	return []byte(b.String())
}

// Import replaces the whole state with data. The document must carry
// transactions, accounts and categories; other keys fall back to defaults.
// Nothing changes when the document is rejected.
func (s *DataService) Import(data []byte) (*domain.State, error) {
	imported, err := domain.DecodeState(data, s.ledger.defaultState(), requiredImportKeys...)
	if err != nil {
		return nil, err
	}
	if err := checkImportedBudgets(imported); err != nil {
		return nil, err
	}

	state, err := s.ledger.mutate("data.import", func(st *domain.State) error {
		*st = *imported
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("transactions", len(state.Transactions)).
		Int("accounts", len(state.Accounts)).
		Msg("Ledger imported")
	s.ledger.publishEvent(websocket.LedgerImported(map[string]int{
		"transactions": len(state.Transactions),
		"accounts":     len(state.Accounts),
		"categories":   len(state.Categories),
	}))
	return state.Clone(), nil
}

// checkImportedBudgets holds an imported state to the same allocation rules as
// SetCategoryBudget and SetMonthlyBudget
func checkImportedBudgets(st *domain.State) error {
	if st.BudgetMonthly.IsNegative() {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImport, domain.ErrNegativeBudget)
	}
	for name, cat := range st.Categories {
		if cat.Budget.IsNegative() {
			return fmt.Errorf("%w: category %q: %v", domain.ErrInvalidImport, name, domain.ErrNegativeBudget)
		}
	}
	if allocated := st.AllocatedBudget(""); allocated.GreaterThan(st.BudgetMonthly) {
		return fmt.Errorf("%w: category budgets total %s, above monthly budget %s",
			domain.ErrInvalidImport, allocated.String(), st.BudgetMonthly.String())
	}
	return nil
}

// Reset wipes the ledger back to its defaults
func (s *DataService) Reset() error {
	fresh := s.ledger.defaultState()
	_, err := s.ledger.mutate("data.reset", func(st *domain.State) error {
		*st = *fresh
		return nil
	})
	if err != nil {
		return err
	}

	log.Warn().Msg("Ledger reset to defaults")
	s.ledger.publishEvent(websocket.LedgerReset(nil))
	return nil
}

// CreateBackup writes the current state to the backup store
func (s *DataService) CreateBackup(ctx context.Context) (*domain.BackupObject, error) {
	if s.backups == nil {
		return nil, domain.ErrBackupsDisabled
	}
	data, err := s.ExportJSON()
	if err != nil {
		return nil, err
	}

	now := s.ledger.Now()
	key := backupKeyPrefix + now.UTC().Format("20060102T150405Z") + ".json"
	if err := s.backups.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("store backup: %w", err)
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("Ledger backup created")
	return &domain.BackupObject{Key: key, Size: int64(len(data)), LastModified: now.UTC()}, nil
}

// ListBackups returns the stored backups, newest first
func (s *DataService) ListBackups(ctx context.Context) ([]domain.BackupObject, error) {
	if s.backups == nil {
		return nil, domain.ErrBackupsDisabled
	}
	objects, err := s.backups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})
	return objects, nil
}

// RestoreBackup imports the backup stored under key
func (s *DataService) RestoreBackup(ctx context.Context, key string) (*domain.State, error) {
	if s.backups == nil {
		return nil, domain.ErrBackupsDisabled
	}
	if !strings.HasPrefix(key, backupKeyPrefix) {
		return nil, domain.ErrNotFound
	}
	data, err := s.backups.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch backup: %w", err)
	}
	return s.Import(data)
}


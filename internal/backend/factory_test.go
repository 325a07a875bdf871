package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/finance"
)

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "sheets"})
	assert.Error(t, err)

	cfg, err := FromAppConfig(&config.Config{
		DataBackend:    "sqlite",
		SQLiteDBPath:   "/tmp/x.db",
		JournalTimeout: time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, SQLiteBackend, cfg.Type)
	assert.Equal(t, "/tmp/x.db", cfg.SQLiteDBPath)
	assert.Equal(t, time.Second, cfg.JournalTimeout)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"memory", Config{Type: MemoryBackend}, false},
		{"sqlite with path", Config{Type: SQLiteBackend, SQLiteDBPath: "a.db"}, false},
		{"sqlite without path", Config{Type: SQLiteBackend}, true},
		{"unknown type", Config{Type: "sheets"}, true},
		{"amqp without queue", Config{Type: MemoryBackend, AMQPURL: "amqp://x", AMQPExchange: "e"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}

func TestCreateSQLiteBackendPersistsAcrossRuns(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "finance.db")}
	factory := NewFactory(nil)

	first, err := factory.CreateBackend(ctx, cfg)
	require.NoError(t, err)
	m := finance.NewManager(finance.WithLedger(first.Ledger))
	require.NoError(t, first.Ledger.Restore(ctx, m, finance.DefaultAccounts()))
	_, err = m.SpendMoney(ctx, core.Dollars(50), core.Food, 0)
	require.NoError(t, err)
	require.NoError(t, first.Cleanup())

	second, err := factory.CreateBackend(ctx, cfg)
	require.NoError(t, err)
	defer second.Cleanup()
	restored := finance.NewManager(finance.WithLedger(second.Ledger))
	require.NoError(t, second.Ledger.Restore(ctx, restored, finance.DefaultAccounts()))

	assert.Equal(t, "950", restored.Balances()[0].Balance.String())
	require.Len(t, restored.CategoryTotals(), 1)
	assert.Equal(t, "50", restored.CategoryTotals()[0].Amount.String())
}

func TestCreateMemoryBackend(t *testing.T) {
	result, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: MemoryBackend})
	require.NoError(t, err)
	require.NotNil(t, result.Ledger)
	assert.NoError(t, result.Cleanup())
}

func TestInvalidBackendErrorListsValidTypes(t *testing.T) {
	err := Config{Type: "sheets"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid: memory, sqlite")

	_, err = FromAppConfig(&config.Config{DataBackend: "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid: memory, sqlite")
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "finance.db")
	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func seedAccounts() []core.Account {
	return []core.Account{
		core.NewAccount("Wallet", core.Dollars(1000)),
		core.NewAccount("Debit Card", core.Dollars(2000)),
	}
}

func TestSQLiteRepositoryEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	accounts, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	expenses, err := repo.LoadExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAccounts(ctx, seedAccounts()))

	amount, err := core.ParseMoney("12.5")
	require.NoError(t, err)
	require.NoError(t, repo.RecordSpend(ctx, core.SpendEvent{
		AccountIndex: 0,
		AccountName:  "Wallet",
		Balance:      core.Dollars(1000).Sub(amount),
		Expense:      core.NewExpense(amount, core.Food),
	}))
	require.NoError(t, repo.RecordSpend(ctx, core.SpendEvent{
		AccountIndex: 1,
		AccountName:  "Debit Card",
		Balance:      core.Dollars(1970),
		Expense:      core.NewExpense(core.Dollars(30), core.Shopping),
	}))
	require.NoError(t, repo.RecordDeposit(ctx, core.DepositEvent{
		AccountIndex: 1,
		AccountName:  "Debit Card",
		Amount:       core.Dollars(500),
		Balance:      core.Dollars(2470),
	}))
	require.NoError(t, repo.Close())

	// reopen: migrations are a no-op and the state is still there
	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	accounts, err := reopened.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Wallet", accounts[0].Name())
	assert.Equal(t, "987.5", accounts[0].Balance().String())
	assert.Equal(t, "Debit Card", accounts[1].Name())
	assert.Equal(t, "2470", accounts[1].Balance().String())

	expenses, err := reopened.LoadExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, core.Food, expenses[0].Category())
	assert.Equal(t, "12.5", expenses[0].Amount().String())
	assert.Equal(t, core.Shopping, expenses[1].Category())
}

func TestSQLiteRepositoryUnknownAccount(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveAccounts(ctx, seedAccounts()))

	err := repo.RecordSpend(ctx, core.SpendEvent{
		AccountIndex: 9,
		Balance:      core.Dollars(1),
		Expense:      core.NewExpense(core.Dollars(1), core.Other),
	})
	require.ErrorIs(t, err, core.ErrInvalidIndex)

	// the expense insert was rolled back with the failed balance update
	expenses, err := repo.LoadExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestSQLiteRepositoryKeepsFullPrecision(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveAccounts(ctx, seedAccounts()))

	amount, err := core.ParseMoney("12.3456789")
	require.NoError(t, err)
	require.NoError(t, repo.RecordSpend(ctx, core.SpendEvent{
		AccountIndex: 0,
		AccountName:  "Wallet",
		Balance:      core.Dollars(1000).Sub(amount),
		Expense:      core.NewExpense(amount, core.Food),
	}))

	accounts, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "987.6543211", accounts[0].Balance().Exact())

	expenses, err := repo.LoadExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount().Equal(amount))
}

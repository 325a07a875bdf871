package storage

import (
	"context"

	"fintrack/internal/core"
)

// Repository is the durable side of the ledger: it stores account balances and
// the expense log so a later run can pick up where this one stopped.
type Repository interface {
	LoadAccounts(ctx context.Context) ([]core.Account, error)
	LoadExpenses(ctx context.Context) ([]core.Expense, error)
	SaveAccounts(ctx context.Context, accounts []core.Account) error
	RecordSpend(ctx context.Context, ev core.SpendEvent) error
	RecordDeposit(ctx context.Context, ev core.DepositEvent) error
	Close() error
}

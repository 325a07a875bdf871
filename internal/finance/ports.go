package finance

import (
	"context"

	"fintrack/internal/core"
)

// Ledger receives every successful mutation after it has been applied in memory.
type Ledger interface {
	RecordSpend(ctx context.Context, ev core.SpendEvent) error
	RecordDeposit(ctx context.Context, ev core.DepositEvent) error
}

// DefaultAccounts is the seed set used on a fresh start.
func DefaultAccounts() []core.Account {
	return []core.Account{
		core.NewAccount("Wallet", core.Dollars(1000)),
		core.NewAccount("Debit Card", core.Dollars(2000)),
		core.NewAccount("Credit Card", core.Dollars(5000)),
	}
}

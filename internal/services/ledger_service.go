package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/log"
	"fintrack/internal/storage"
)

// EventPublisher announces ledger changes to other systems.
type EventPublisher interface {
	PublishExpenseRecorded(ctx context.Context, ev core.SpendEvent) error
	PublishAccountReplenished(ctx context.Context, ev core.DepositEvent) error
	Close() error
}

// LedgerService journals manager mutations to storage and then publishes them.
type LedgerService struct {
	storage   storage.Repository
	publisher EventPublisher
	timeout   time.Duration
}

var _ finance.Ledger = (*LedgerService)(nil)

// NewLedgerService wires storage and an optional publisher. A zero timeout means no deadline.
func NewLedgerService(storage storage.Repository, publisher EventPublisher, timeout time.Duration) *LedgerService {
	return &LedgerService{
		storage:   storage,
		publisher: publisher,
		timeout:   timeout,
	}
}

// RecordSpend saves the expense and new balance, then publishes the event
func (s *LedgerService) RecordSpend(ctx context.Context, ev core.SpendEvent) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if s.storage != nil {
		if err := s.storage.RecordSpend(ctx, ev); err != nil {
			return fmt.Errorf("save spend: %w", err)
		}
	}

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishExpenseRecorded(ctx, ev); err != nil {
		// the spend is already stored; losing the event is not worth failing for
		slog.ErrorContext(ctx, "Failed to publish expense event",
			log.FieldComponent, log.ComponentLedger,
			log.FieldOperation, log.OpPublish,
			log.FieldAccount, ev.AccountName,
			log.FieldError, err)
	}
	return nil
}

// RecordDeposit saves the new balance, then publishes the event
func (s *LedgerService) RecordDeposit(ctx context.Context, ev core.DepositEvent) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if s.storage != nil {
		if err := s.storage.RecordDeposit(ctx, ev); err != nil {
			return fmt.Errorf("save deposit: %w", err)
		}
	}

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishAccountReplenished(ctx, ev); err != nil {
		slog.ErrorContext(ctx, "Failed to publish replenish event",
			log.FieldComponent, log.ComponentLedger,
			log.FieldOperation, log.OpPublish,
			log.FieldAccount, ev.AccountName,
			log.FieldError, err)
	}
	return nil
}

// Restore loads the journal into m. An empty journal is seeded with seed first.
func (s *LedgerService) Restore(ctx context.Context, m *finance.Manager, seed []core.Account) error {
	accounts, err := s.storage.LoadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	if len(accounts) == 0 {
		if err := s.storage.SaveAccounts(ctx, seed); err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
		accounts = seed
	}

	expenses, err := s.storage.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	for _, a := range accounts {
		m.AddAccount(a)
	}
	// balances are stored post-spend, so replaying only rebuilds the log and totals
	for _, e := range expenses {
		m.AddExpense(e)
	}

	slog.InfoContext(ctx, "Ledger restored",
		log.FieldComponent, log.ComponentLedger,
		log.FieldOperation, log.OpRestore,
		"accounts", len(accounts),
		"expenses", len(expenses))
	return nil
}

func (s *LedgerService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Close closes both storage and publisher connections
func (s *LedgerService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %v", errs)
	}

	return nil
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// Store keeps the ledger in process memory; nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	accounts []core.Account
	expenses []core.Expense
}

var _ storage.Repository = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) LoadAccounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...), nil
}

func (s *Store) LoadExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...), nil
}

func (s *Store) SaveAccounts(_ context.Context, accounts []core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, accounts...)
	return nil
}

func (s *Store) RecordSpend(_ context.Context, ev core.SpendEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setBalance(ev.AccountIndex, ev.Balance); err != nil {
		return err
	}
	s.expenses = append(s.expenses, ev.Expense)
	return nil
}

func (s *Store) RecordDeposit(_ context.Context, ev core.DepositEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setBalance(ev.AccountIndex, ev.Balance)
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) setBalance(index int, balance core.Money) error {
	if index < 0 || index >= len(s.accounts) {
		return fmt.Errorf("set balance: %w %d", core.ErrInvalidIndex, index)
	}
	s.accounts[index] = core.NewAccount(s.accounts[index].Name(), balance)
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Debug("Journal schema ready",
		log.FieldComponent, log.ComponentStorage,
		log.FieldPath, dbPath,
		"schema_version", version)

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadAccounts returns stored accounts ordered by position.
func (r *SQLiteRepository) LoadAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.queries.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]core.Account, 0, len(rows))
	for i, row := range rows {
		if row.Position != int64(i) {
			return nil, fmt.Errorf("account positions not contiguous: expected %d, got %d", i, row.Position)
		}
		balance, err := decimal.NewFromString(row.Balance)
		if err != nil {
			return nil, fmt.Errorf("parse balance of %s: %w", row.Name, err)
		}
		accounts = append(accounts, core.NewAccount(row.Name, core.NewMoney(balance)))
	}
	return accounts, nil
}

// LoadExpenses returns the expense log in the order it was recorded.
func (r *SQLiteRepository) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	expenses := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of expense %d: %w", row.ID, err)
		}
		category := core.Category(row.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("expense %d: %w %d", row.ID, core.ErrInvalidCategory, row.Category)
		}
		expenses = append(expenses, core.NewExpense(core.NewMoney(amount), category))
	}
	return expenses, nil
}

// SaveAccounts stores the initial account set in one transaction.
func (r *SQLiteRepository) SaveAccounts(ctx context.Context, accounts []core.Account) error {
	return r.withTx(ctx, func(q *Queries) error {
		for i, a := range accounts {
			err := q.CreateAccount(ctx, CreateAccountParams{
				Position: int64(i),
				Name:     a.Name(),
				Balance:  a.Balance().Exact(),
			})
			if err != nil {
				return fmt.Errorf("create account %s: %w", a.Name(), err)
			}
		}
		return nil
	})
}

// RecordSpend stores the expense and the new account balance together.
func (r *SQLiteRepository) RecordSpend(ctx context.Context, ev core.SpendEvent) error {
	return r.withTx(ctx, func(q *Queries) error {
		expense, err := q.CreateExpense(ctx, CreateExpenseParams{
			AccountPosition: int64(ev.AccountIndex),
			Amount:          ev.Expense.Amount().Exact(),
			Category:        int64(ev.Expense.Category()),
		})
		if err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		if err := updateBalance(ctx, q, ev.AccountIndex, ev.Balance); err != nil {
			return err
		}

		slog.DebugContext(ctx, "Expense saved to SQLite",
			log.FieldComponent, log.ComponentStorage,
			"id", expense.ID,
			log.FieldAccountIndex, expense.AccountPosition,
			log.FieldAmount, expense.Amount,
			log.FieldCategory, ev.Expense.Category().String())
		return nil
	})
}

// RecordDeposit stores the new balance after a replenish.
func (r *SQLiteRepository) RecordDeposit(ctx context.Context, ev core.DepositEvent) error {
	return r.withTx(ctx, func(q *Queries) error {
		return updateBalance(ctx, q, ev.AccountIndex, ev.Balance)
	})
}

func updateBalance(ctx context.Context, q *Queries, index int, balance core.Money) error {
	n, err := q.UpdateAccountBalance(ctx, UpdateAccountBalanceParams{
		Balance:  balance.Exact(),
		Position: int64(index),
	})
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update balance: %w %d", core.ErrInvalidIndex, index)
	}
	return nil
}

func (r *SQLiteRepository) withTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(r.queries.WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

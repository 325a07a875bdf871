package storage

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type Account struct {
	Position int64
	Name     string
	Balance  string
}

type Expense struct {
	ID              int64
	AccountPosition int64
	Amount          string
	Category        int64
}

const createAccount = `INSERT INTO accounts (position, name, balance) VALUES (?, ?, ?)`

type CreateAccountParams struct {
	Position int64
	Name     string
	Balance  string
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) error {
	_, err := q.db.ExecContext(ctx, createAccount, arg.Position, arg.Name, arg.Balance)
	return err
}

const listAccounts = `SELECT position, name, balance FROM accounts ORDER BY position`

func (q *Queries) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := q.db.QueryContext(ctx, listAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Account
	for rows.Next() {
		var i Account
		if err := rows.Scan(&i.Position, &i.Name, &i.Balance); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateAccountBalance = `UPDATE accounts SET balance = ?, updated_at = CURRENT_TIMESTAMP WHERE position = ?`

type UpdateAccountBalanceParams struct {
	Balance  string
	Position int64
}

func (q *Queries) UpdateAccountBalance(ctx context.Context, arg UpdateAccountBalanceParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateAccountBalance, arg.Balance, arg.Position)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createExpense = `INSERT INTO expenses (account_position, amount, category) VALUES (?, ?, ?)
RETURNING id, account_position, amount, category`

type CreateExpenseParams struct {
	AccountPosition int64
	Amount          string
	Category        int64
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, createExpense, arg.AccountPosition, arg.Amount, arg.Category)
	var i Expense
	err := row.Scan(&i.ID, &i.AccountPosition, &i.Amount, &i.Category)
	return i, err
}

const listExpenses = `SELECT id, account_position, amount, category FROM expenses ORDER BY id`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var i Expense
		if err := rows.Scan(&i.ID, &i.AccountPosition, &i.Amount, &i.Category); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

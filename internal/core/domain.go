package core

import "errors"

type (
	Account struct {
		name    string
		balance Money
	}

	Expense struct {
		amount   Money
		category Category
	}

	// AccountBalance is a read-only view of an account for reports.
	AccountBalance struct {
		Name    string
		Balance Money
	}
)

var (
	ErrInvalidIndex      = errors.New("invalid account index")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrFileOpen          = errors.New("unable to open file")
)

// AccountError ties a failed operation to the account it was attempted on.
type AccountError struct {
	Account string
	Err     error
}

func (e *AccountError) Error() string {
	return e.Err.Error() + " in " + e.Account
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccount(name string, balance Money) Account {
	return Account{name: name, balance: balance}
}

// Deposit adds amount to the balance. The sign of amount is not checked.
func (a *Account) Deposit(amount Money) {
	a.balance = a.balance.Add(amount)
}

// Withdraw removes amount from the balance, refusing to go below zero.
func (a *Account) Withdraw(amount Money) error {
	if amount.GreaterThan(a.balance) {
		return &AccountError{Account: a.name, Err: ErrInsufficientFunds}
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a Account) Balance() Money {
	return a.balance
}

func (a Account) Name() string {
	return a.name
}

func NewExpense(amount Money, category Category) Expense {
	return Expense{amount: amount, category: category}
}

func (e Expense) Amount() Money {
	return e.amount
}

func (e Expense) Category() Category {
	return e.category
}

// Less orders expenses ascending by amount.
func (e Expense) Less(other Expense) bool {
	return e.amount.LessThan(other.amount)
}

package core

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// SpendEvent describes a successful spend for journaling.
type SpendEvent struct {
	AccountIndex int
	AccountName  string
	Balance      Money // balance after the withdrawal
	Expense      Expense
}

// DepositEvent describes a successful replenish for journaling.
type DepositEvent struct {
	AccountIndex int
	AccountName  string
	Amount       Money
	Balance      Money // balance after the deposit
}

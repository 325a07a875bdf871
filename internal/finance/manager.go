// Package finance owns the accounts, the expense log and the running category
// totals, and exposes every mutation and report over them.
package finance

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/report"
)

const topN = 3

// Manager is the single owner of all finance state. It is not safe for concurrent use.
type Manager struct {
	accounts []core.Account
	expenses []core.Expense
	totals   map[core.Category]core.Money

	ledger    Ledger
	reportDir string
	logger    *log.Logger
}

// Receipt describes a completed spend or replenish.
type Receipt struct {
	Account  string
	Amount   core.Money
	Category core.Category
}

type Option func(*Manager)

// WithLedger journals successful mutations.
func WithLedger(l Ledger) Option {
	return func(m *Manager) { m.ledger = l }
}

// WithReportDir sets where SaveToFile creates report files.
func WithReportDir(dir string) Option {
	return func(m *Manager) { m.reportDir = dir }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l.WithComponent(log.ComponentFinance) }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		totals:    make(map[core.Category]core.Money),
		reportDir: ".",
		logger:    log.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddExpense appends to the log and folds the amount into its category total.
func (m *Manager) AddExpense(e core.Expense) {
	m.expenses = append(m.expenses, e)
	m.totals[e.Category()] = m.totals[e.Category()].Add(e.Amount())
}

// AddAccount appends an account; its position is its index from now on.
func (m *Manager) AddAccount(a core.Account) {
	m.accounts = append(m.accounts, a)
}

func (m *Manager) AccountCount() int {
	return len(m.accounts)
}

// SpendMoney withdraws amount from the account at index and records the expense.
// Checks run in order: index, amount sign, available balance. The first failure
// is returned and nothing is changed.
func (m *Manager) SpendMoney(ctx context.Context, amount core.Money, category core.Category, index int) (Receipt, error) {
	if index < 0 || index >= len(m.accounts) {
		return Receipt{}, core.ErrInvalidIndex
	}
	if err := amount.Validate(); err != nil {
		return Receipt{}, err
	}
	acct := &m.accounts[index]
	if amount.GreaterThan(acct.Balance()) {
		return Receipt{}, &core.AccountError{Account: acct.Name(), Err: core.ErrInsufficientFunds}
	}

	if err := acct.Withdraw(amount); err != nil {
		return Receipt{}, err
	}
	expense := core.NewExpense(amount, category)
	m.AddExpense(expense)

	m.logger.Info("Expense recorded", log.NewFields().
		WithOperation(log.OpSpend).
		WithAccount(index, acct.Name(), acct.Balance().String()).
		WithExpense(amount.String(), category.String()).
		ToSlice()...)

	m.journal(ctx, log.OpSpend, func(l Ledger) error {
		return l.RecordSpend(ctx, core.SpendEvent{
			AccountIndex: index,
			AccountName:  acct.Name(),
			Balance:      acct.Balance(),
			Expense:      expense,
		})
	})

	return Receipt{Account: acct.Name(), Amount: amount, Category: category}, nil
}

// ReplenishCard deposits amount into the account at index. The amount sign is not checked.
func (m *Manager) ReplenishCard(ctx context.Context, index int, amount core.Money) (Receipt, error) {
	if index < 0 || index >= len(m.accounts) {
		return Receipt{}, core.ErrInvalidIndex
	}
	acct := &m.accounts[index]
	acct.Deposit(amount)

	m.logger.Info("Account replenished", log.NewFields().
		WithOperation(log.OpReplenish).
		WithAccount(index, acct.Name(), acct.Balance().String()).
		ToSlice()...)

	m.journal(ctx, log.OpReplenish, func(l Ledger) error {
		return l.RecordDeposit(ctx, core.DepositEvent{
			AccountIndex: index,
			AccountName:  acct.Name(),
			Amount:       amount,
			Balance:      acct.Balance(),
		})
	})

	return Receipt{Account: acct.Name(), Amount: amount}, nil
}

// journal forwards to the ledger. In-memory state is authoritative, so failures are only logged.
func (m *Manager) journal(ctx context.Context, op string, fn func(Ledger) error) {
	if m.ledger == nil {
		return
	}
	if err := fn(m.ledger); err != nil {
		m.logger.ErrorContext(ctx, "Failed to journal mutation", log.NewFields().
			WithOperation(op).
			WithError(err).
			ToSlice()...)
	}
}

// CategoryTotals returns the totals of every category seen so far, in category order.
func (m *Manager) CategoryTotals() []core.CategoryAmount {
	out := make([]core.CategoryAmount, 0, len(m.totals))
	for _, c := range core.Categories() {
		if total, ok := m.totals[c]; ok {
			out = append(out, core.CategoryAmount{Category: c, Amount: total})
		}
	}
	return out
}

// Expenses returns a copy of the expense log in insertion order.
func (m *Manager) Expenses() []core.Expense {
	return append([]core.Expense(nil), m.expenses...)
}

// Balances returns name and balance of every account in insertion order.
func (m *Manager) Balances() []core.AccountBalance {
	out := make([]core.AccountBalance, len(m.accounts))
	for i, a := range m.accounts {
		out[i] = core.AccountBalance{Name: a.Name(), Balance: a.Balance()}
	}
	return out
}

// Top3Costs returns the largest individual expenses, largest first.
// Equal amounts keep their insertion order.
func (m *Manager) Top3Costs() []core.Expense {
	sorted := m.Expenses()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Less(sorted[i])
	})
	return truncate(sorted)
}

// Top3Categories returns the categories with the largest totals, largest first.
// Equal totals put the later-declared category first.
func (m *Manager) Top3Categories() []core.CategoryAmount {
	sorted := m.CategoryTotals()
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Amount.Cmp(sorted[j].Amount); c != 0 {
			return c > 0
		}
		return sorted[i].Category > sorted[j].Category
	})
	return truncate(sorted)
}

func truncate[T any](s []T) []T {
	if len(s) > topN {
		return s[:topN]
	}
	return s
}

// GenerateReport writes the category totals table.
func (m *Manager) GenerateReport(w io.Writer) error {
	return report.WriteCategoryReport(w, m.CategoryTotals())
}

// GenerateTop3Costs writes the three largest expenses.
func (m *Manager) GenerateTop3Costs(w io.Writer) error {
	return report.WriteTopCosts(w, m.Top3Costs())
}

// GenerateTop3Categories writes the three largest category totals.
func (m *Manager) GenerateTop3Categories(w io.Writer) error {
	return report.WriteTopCategories(w, m.Top3Categories())
}

// DisplayCardBalances writes every account balance.
func (m *Manager) DisplayCardBalances(w io.Writer) error {
	return report.WriteCardBalances(w, m.Balances())
}

// Snapshot collects everything the saved report contains.
func (m *Manager) Snapshot() report.Snapshot {
	return report.Snapshot{
		Totals:        m.CategoryTotals(),
		TopCategories: m.Top3Categories(),
		TopCosts:      m.Top3Costs(),
		Balances:      m.Balances(),
	}
}

// SaveToFile writes the full report to <filename>.txt in the report directory,
// truncating any existing file, and returns the path written.
func (m *Manager) SaveToFile(filename string) (string, error) {
	path := filepath.Join(m.reportDir, filename+".txt")
	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("Cannot create report file", log.NewFields().
			WithOperation(log.OpSave).
			WithError(err).
			ToSlice()...)
		return "", fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}

	if err := report.WriteFull(f, m.Snapshot()); err != nil {
		f.Close()
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report %s: %w", path, err)
	}

	m.logger.Info("Report saved", log.FieldOperation, log.OpSave, log.FieldPath, path)
	return path, nil
}

package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/finance"
)

const menuText = "1. Add Expense\n" +
	"2. Generate Report\n" +
	"3. Generate Top 3 Costs\n" +
	"4. Generate Top 3 Categories\n" +
	"5. Save Report to File\n" +
	"6. Replenish Card\n" +
	"7. View Card Balances\n" +
	"8. Exit\n"

const categoryPrompt = "Select Category:\n0. Food\n1. Transportation\n2. Shopping\n3. Entertainment\n4. Utilities\nEnter category number: "

const cardPrompt = "Select Card (0 - Wallet, 1 - Debit Card, 2 - Credit Card): "

func run(t *testing.T, input string, opts ...finance.Option) (string, *finance.Manager) {
	t.Helper()
	m := finance.NewManager(opts...)
	for _, a := range finance.DefaultAccounts() {
		m.AddAccount(a)
	}
	var out bytes.Buffer
	err := New(m, strings.NewReader(input), &out, nil).Run(context.Background())
	require.NoError(t, err)
	return out.String(), m
}

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in  string
		out Choice
		ok  bool
	}{
		{"1", ChoiceAddExpense, true},
		{" 8 ", ChoiceExit, true},
		{"5", ChoiceSave, true},
		{"0", 0, false},
		{"9", 0, false},
		{"-3", 0, false},
		{"two", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseChoice(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.out, got, tc.in)
		} else {
			assert.ErrorIs(t, err, core.ErrInvalidMenuChoice, tc.in)
		}
	}
}

func TestRunExit(t *testing.T) {
	out, _ := run(t, "8\n")
	assert.Equal(t, menuText+"Enter your choice: Exiting program.\n", out)
}

func TestRunInvalidChoicesKeepLooping(t *testing.T) {
	out, _ := run(t, "42\nabc\n8\n")
	want := menuText +
		"Enter your choice: Invalid choice. Please enter a number between 1 and 8.\n" +
		"Enter your choice: Invalid choice. Please enter a number between 1 and 8.\n" +
		"Enter your choice: Exiting program.\n"
	assert.Equal(t, want, out)
}

func TestRunEndOfInputStops(t *testing.T) {
	out, _ := run(t, "7\n")
	assert.True(t, strings.HasSuffix(out, "--------------------------\nEnter your choice: "))
}

func TestAddExpense(t *testing.T) {
	out, m := run(t, "1\n50\n0\n0\n8\n")
	want := menuText +
		"Enter your choice: Enter amount: $" + categoryPrompt + cardPrompt +
		"Expense of $50 spent from Wallet under category Food\n" +
		"Enter your choice: Exiting program.\n"
	assert.Equal(t, want, out)
	assert.Equal(t, "950", m.Balances()[0].Balance.String())
}

func TestAddExpenseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		msg   string
	}{
		{"insufficient funds", "1\n2000\n0\n0\n8\n", "Insufficient funds in Wallet\n"},
		{"bad card", "1\n10\n0\n5\n8\n", "Invalid card index\n"},
		{"non-numeric card", "1\n10\n0\nx\n8\n", "Invalid card index\n"},
		{"zero amount", "1\n0\n2\n1\n8\n", "Invalid amount\n"},
		{"non-numeric amount", "1\nlots\n0\n5\n8\n", "Invalid amount\n"},
		{"category out of range", "1\n10\n7\n0\n8\n", "Invalid category\n"},
		{"rejected category with card 2", "1\n50\n9\n2\n8\n", "Invalid category\n"},
		{"amount checked before category", "1\nlots\n9\n5\n8\n", "Invalid amount\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, m := run(t, tc.input)
			want := menuText +
				"Enter your choice: Enter amount: $" + categoryPrompt + cardPrompt + tc.msg +
				"Enter your choice: Exiting program.\n"
			assert.Equal(t, want, out)
			assert.Empty(t, m.Expenses())
			assert.Equal(t, "1000", m.Balances()[0].Balance.String())
		})
	}
}

func TestReplenish(t *testing.T) {
	out, m := run(t, "6\n1\n500\n7\n8\n")
	assert.Contains(t, out, cardPrompt+"Enter amount to replenish: $Replenished Debit Card with $500\n")
	assert.Contains(t, out, "Debit Card: $2500\n")
	assert.Equal(t, "2500", m.Balances()[1].Balance.String())
}

func TestReplenishErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		msg   string
	}{
		{"index out of range", "6\n9\n500\n8\n", "Invalid account index\n"},
		{"non-numeric index", "6\nx\n2\n8\n", "Invalid account index\n"},
		{"non-numeric amount", "6\n1\nlots\n8\n", "Invalid amount\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, m := run(t, tc.input)
			want := menuText +
				"Enter your choice: " + cardPrompt + "Enter amount to replenish: $" + tc.msg +
				"Enter your choice: Exiting program.\n"
			assert.Equal(t, want, out)
			assert.Equal(t, "2000", m.Balances()[1].Balance.String())
		})
	}
}

func TestLargeAmountsUseSixSignificantDigits(t *testing.T) {
	out, _ := run(t, "6\n2\n1000000\n7\n8\n")
	assert.Contains(t, out, "Replenished Credit Card with $1e+06\n")
	assert.Contains(t, out, "Credit Card: $1.005e+06\n")
}

func TestReportsAfterExpenses(t *testing.T) {
	input := "1\n10\n0\n0\n" +
		"1\n30\n2\n0\n" +
		"1\n20\n1\n0\n" +
		"3\n4\n8\n"
	out, _ := run(t, input)
	assert.Contains(t, out, "----- Top 3 Costs -----\nShopping: $30\nTransportation: $20\nFood: $10\n------------------------\n")
	assert.Contains(t, out, "----- Top 3 Categories -----\nShopping: $30\nTransportation: $20\nFood: $10\n-----------------------------\n")
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	out, _ := run(t, "5\nsummary\n8\n", finance.WithReportDir(dir))
	path := filepath.Join(dir, "summary.txt")
	assert.Contains(t, out, "Enter filename: Report saved to "+path+"\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "----- Expense Report -----\n"))

	out, _ = run(t, "5\nsummary\n8\n", finance.WithReportDir(filepath.Join(dir, "nope")))
	assert.Contains(t, out, "Enter filename: Unable to open file\n")
}

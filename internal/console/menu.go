package console

import (
	"strconv"
	"strings"

	"fintrack/internal/core"
)

// Choice is a validated main-menu selection.
type Choice int

const (
	ChoiceAddExpense Choice = iota + 1
	ChoiceReport
	ChoiceTopCosts
	ChoiceTopCategories
	ChoiceSave
	ChoiceReplenish
	ChoiceBalances
	ChoiceExit
)

var menuLabels = [...]string{
	ChoiceAddExpense:    "Add Expense",
	ChoiceReport:        "Generate Report",
	ChoiceTopCosts:      "Generate Top 3 Costs",
	ChoiceTopCategories: "Generate Top 3 Categories",
	ChoiceSave:          "Save Report to File",
	ChoiceReplenish:     "Replenish Card",
	ChoiceBalances:      "View Card Balances",
	ChoiceExit:          "Exit",
}

func (c Choice) String() string {
	if c < ChoiceAddExpense || c > ChoiceExit {
		return "Unknown"
	}
	return menuLabels[c]
}

// ParseChoice turns raw input into a menu choice. Anything that is not an
// integer between 1 and 8 is ErrInvalidMenuChoice.
func ParseChoice(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, core.ErrInvalidMenuChoice
	}
	c := Choice(n)
	if c < ChoiceAddExpense || c > ChoiceExit {
		return 0, core.ErrInvalidMenuChoice
	}
	return c, nil
}

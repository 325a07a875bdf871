// Package console runs the interactive numbered-menu loop over a finance.Manager.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/log"
)

const (
	msgInvalidChoice  = "Invalid choice. Please enter a number between 1 and 8."
	msgInvalidAmount  = "Invalid amount"
	msgInvalidCard    = "Invalid card index"
	msgInvalidAccount = "Invalid account index"
	msgInvalidCat     = "Invalid category"
	msgUnableToOpen   = "Unable to open file"
)

type Console struct {
	manager  *finance.Manager
	in       *bufio.Scanner
	out      io.Writer
	logger   *log.Logger
	handlers map[Choice]func(context.Context)
}

func New(manager *finance.Manager, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.Discard()
	}
	c := &Console{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.WithComponent(log.ComponentConsole),
	}
	c.handlers = map[Choice]func(context.Context){
		ChoiceAddExpense:    c.addExpense,
		ChoiceReport:        c.render(manager.GenerateReport),
		ChoiceTopCosts:      c.render(manager.GenerateTop3Costs),
		ChoiceTopCategories: c.render(manager.GenerateTop3Categories),
		ChoiceSave:          c.saveReport,
		ChoiceReplenish:     c.replenish,
		ChoiceBalances:      c.render(manager.DisplayCardBalances),
	}
	return c
}

// Run prints the menu once and dispatches choices until Exit or end of input.
func (c *Console) Run(ctx context.Context) error {
	c.printMenu()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("Enter your choice: ")
		line, ok := c.readToken()
		if !ok {
			c.logger.Debug("Input closed, leaving menu loop")
			return c.in.Err()
		}

		choice, err := ParseChoice(line)
		if err != nil {
			c.println(msgInvalidChoice)
			continue
		}
		if choice == ChoiceExit {
			c.println("Exiting program.")
			return nil
		}
		c.handlers[choice](ctx)
	}
}

func (c *Console) printMenu() {
	for ch := ChoiceAddExpense; ch <= ChoiceExit; ch++ {
		c.printf("%d. %s\n", int(ch), ch)
	}
}

func (c *Console) render(fn func(io.Writer) error) func(context.Context) {
	return func(context.Context) {
		if err := fn(c.out); err != nil {
			c.logger.Error("Failed to write report", log.FieldError, err)
		}
	}
}

// addExpense reads all three answers before validating any of them.
func (c *Console) addExpense(ctx context.Context) {
	c.printf("Enter amount: $")
	rawAmount, _ := c.readToken()

	c.println("Select Category:")
	for i, cat := range core.SelectableCategories() {
		c.printf("%d. %s\n", i, cat)
	}
	c.printf("Enter category number: ")
	rawCategory, _ := c.readToken()

	c.printf("%s", c.cardPrompt())
	rawCard, _ := c.readToken()

	amount, err := core.ParseMoney(rawAmount)
	if err != nil {
		c.println(msgInvalidAmount)
		return
	}
	category, err := core.ParseCategoryChoice(rawCategory)
	if err != nil {
		c.println(msgInvalidCat)
		return
	}
	index, err := strconv.Atoi(rawCard)
	if err != nil {
		c.println(msgInvalidCard)
		return
	}

	r, err := c.manager.SpendMoney(ctx, amount, category, index)
	var acctErr *core.AccountError
	switch {
	case err == nil:
		c.printf("Expense of $%s spent from %s under category %s\n", r.Amount, r.Account, r.Category)
	case errors.Is(err, core.ErrInvalidIndex):
		c.println(msgInvalidCard)
	case errors.Is(err, core.ErrInvalidAmount):
		c.println(msgInvalidAmount)
	case errors.As(err, &acctErr):
		c.printf("Insufficient funds in %s\n", acctErr.Account)
	default:
		c.printf("Unable to record expense: %v\n", err)
	}
}

func (c *Console) replenish(ctx context.Context) {
	c.printf("%s", c.cardPrompt())
	rawCard, _ := c.readToken()
	c.printf("Enter amount to replenish: $")
	rawAmount, _ := c.readToken()

	index, err := strconv.Atoi(rawCard)
	if err != nil {
		c.println(msgInvalidAccount)
		return
	}
	amount, err := core.ParseMoney(rawAmount)
	if err != nil {
		c.println(msgInvalidAmount)
		return
	}

	r, err := c.manager.ReplenishCard(ctx, index, amount)
	switch {
	case err == nil:
		c.printf("Replenished %s with $%s\n", r.Account, r.Amount)
	case errors.Is(err, core.ErrInvalidIndex):
		c.println(msgInvalidAccount)
	default:
		c.printf("Unable to replenish: %v\n", err)
	}
}

func (c *Console) saveReport(context.Context) {
	c.printf("Enter filename: ")
	name, ok := c.readToken()
	if !ok {
		c.println(msgUnableToOpen)
		return
	}

	path, err := c.manager.SaveToFile(name)
	switch {
	case err == nil:
		c.printf("Report saved to %s\n", path)
	case errors.Is(err, core.ErrFileOpen):
		c.println(msgUnableToOpen)
	default:
		c.logger.Error("Failed to save report", log.FieldError, err)
		c.printf("Unable to save report: %v\n", err)
	}
}

// cardPrompt lists accounts by position, e.g. "(0 - Wallet, 1 - Debit Card)".
func (c *Console) cardPrompt() string {
	balances := c.manager.Balances()
	parts := make([]string, len(balances))
	for i, b := range balances {
		parts[i] = fmt.Sprintf("%d - %s", i, b.Name)
	}
	return "Select Card (" + strings.Join(parts, ", ") + "): "
}

// readLine returns the next raw line of input.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// readToken skips blank lines and returns the first word of the next non-blank one.
func (c *Console) readToken() (string, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], true
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

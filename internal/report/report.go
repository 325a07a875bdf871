// Package report renders expense summaries as plain text.
//
// Every section is framed by a fixed header and footer line. The same writers
// back both the interactive console and the saved report file.
package report

import (
	"fmt"
	"io"

	"fintrack/internal/core"
)

const (
	HeaderExpenseReport = "----- Expense Report -----"
	FooterExpenseReport = "--------------------------"
	HeaderTopCategories = "----- Top 3 Categories -----"
	FooterTopCategories = "-----------------------------"
	HeaderTopCosts      = "----- Top 3 Costs -----"
	FooterTopCosts      = "------------------------"
	HeaderCardBalances  = "----- Card Balances -----"
	FooterCardBalances  = "--------------------------"
	categoryColumnWidth = 20
	amountColumnWidth   = 10
)

// Snapshot is everything the full report needs, already ranked.
type Snapshot struct {
	Totals        []core.CategoryAmount
	TopCategories []core.CategoryAmount
	TopCosts      []core.Expense
	Balances      []core.AccountBalance
}

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) line(s string) {
	ew.printf("%s\n", s)
}

// WriteCategoryReport writes the two-column category totals table.
func WriteCategoryReport(w io.Writer, totals []core.CategoryAmount) error {
	ew := &errWriter{w: w}
	writeCategoryReport(ew, totals)
	return ew.err
}

// WriteTopCategories writes up to three ranked category totals.
func WriteTopCategories(w io.Writer, top []core.CategoryAmount) error {
	ew := &errWriter{w: w}
	writeTopCategories(ew, top)
	return ew.err
}

// WriteTopCosts writes up to three ranked individual expenses.
func WriteTopCosts(w io.Writer, top []core.Expense) error {
	ew := &errWriter{w: w}
	writeTopCosts(ew, top)
	return ew.err
}

// WriteCardBalances writes every account balance in insertion order.
func WriteCardBalances(w io.Writer, balances []core.AccountBalance) error {
	ew := &errWriter{w: w}
	writeCardBalances(ew, balances)
	return ew.err
}

// WriteFull writes the saved-file layout: report, top categories, top costs, balances.
func WriteFull(w io.Writer, s Snapshot) error {
	ew := &errWriter{w: w}
	writeCategoryReport(ew, s.Totals)
	writeTopCategories(ew, s.TopCategories)
	writeTopCosts(ew, s.TopCosts)
	writeCardBalances(ew, s.Balances)
	return ew.err
}

func writeCategoryReport(ew *errWriter, totals []core.CategoryAmount) {
	ew.line(HeaderExpenseReport)
	ew.printf("%-*s%-*s\n", categoryColumnWidth, "Category", amountColumnWidth, "Amount")
	for _, t := range totals {
		ew.printf("%-*s$%s\n", categoryColumnWidth, t.Category, t.Amount)
	}
	ew.line(FooterExpenseReport)
}

func writeTopCategories(ew *errWriter, top []core.CategoryAmount) {
	ew.line(HeaderTopCategories)
	for _, t := range top {
		ew.printf("%s: $%s\n", t.Category, t.Amount)
	}
	ew.line(FooterTopCategories)
}

func writeTopCosts(ew *errWriter, top []core.Expense) {
	ew.line(HeaderTopCosts)
	for _, e := range top {
		ew.printf("%s: $%s\n", e.Category(), e.Amount())
	}
	ew.line(FooterTopCosts)
}

func writeCardBalances(ew *errWriter, balances []core.AccountBalance) {
	ew.line(HeaderCardBalances)
	for _, b := range balances {
		ew.printf("%s: $%s\n", b.Name, b.Balance)
	}
	ew.line(FooterCardBalances)
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"budget/internal/core"
	"budget/internal/ledger"
)

// Renderer prints reports in the tracker's console layout.
type Renderer struct {
	out    io.Writer
	symbol string
}

func NewRenderer(out io.Writer, currencySymbol string) *Renderer {
	if currencySymbol == "" {
		currencySymbol = "$"
	}
	return &Renderer{out: out, symbol: currencySymbol}
}

func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

func (r *Renderer) rule(n int) {
	fmt.Fprintln(r.out, strings.Repeat("-", n))
}

func (r *Renderer) money(t core.Transaction) string {
	return core.FormatMoney(r.symbol, t.Amount)
}

// Added confirms a stored transaction.
func (r *Renderer) Added(t core.Transaction) {
	r.Printf("Added: %s - %s on %s\n", t.Description, r.money(t), t.Date)
}

func (r *Renderer) rows(txs []core.Transaction, empty string) {
	if len(txs) == 0 {
		r.Println(empty)
		return
	}
	for i, t := range txs {
		r.Printf("%d. %s | %-20s | %s%8s | %s\n",
			i+1, t.Date, t.Description, r.symbol, core.FormatAmount(t.Amount), t.Category)
	}
}

// Ledger prints every transaction, income first.
func (r *Renderer) Ledger(income, expense []core.Transaction) {
	if len(income) == 0 && len(expense) == 0 {
		r.Println("No transactions recorded yet!")
		return
	}
	r.Println("\n ALL TRANSACTIONS")
	r.rule(50)

	r.Println("\n--- INCOME ---")
	r.rows(income, "No income recorded yet!")

	r.Println("\n--- EXPENSES ---")
	r.rows(expense, "No expenses recorded yet!")
}

// Summary prints totals and the advice line.
func (r *Renderer) Summary(s core.Summary, advice core.Advice) {
	r.Println("\n FINANCIAL SUMMARY")
	r.rule(30)
	r.Printf("Total Income: %s\n", core.FormatMoney(r.symbol, s.Income))
	r.Printf("Total Expenses: %s\n", core.FormatMoney(r.symbol, s.Spent()))
	r.Printf("Current Balance: %s\n", core.FormatMoney(r.symbol, s.Balance))

	switch advice {
	case core.AdviceOverspending:
		r.Println(" WARNING: You are spending more than you earn!")
	case core.AdviceLowSavings:
		r.Println(" TIP: Try to save more for emergencies!")
	default:
		r.Println(" Great! You're saving money!")
	}
}

// Spending prints the per-category expense totals.
func (r *Renderer) Spending(breakdown []core.CategoryAmount) {
	r.Println("\n SPENDING BY CATEGORY")
	r.rule(25)
	for _, ca := range breakdown {
		r.Printf("%s: %s\n", ca.Name, core.FormatMoney(r.symbol, ca.Amount))
	}
}

// Month prints one month's transactions and totals.
func (r *Renderer) Month(ov core.MonthOverview) {
	if len(ov.Transactions) == 0 {
		r.Printf("\nNo transactions found for %02d-%d\n", ov.Month, ov.Year)
		return
	}
	r.Printf("\n TRANSACTIONS FOR %02d-%d\n", ov.Month, ov.Year)
	r.rule(50)

	income, expense := ledger.Partition(ov.Transactions)
	r.Println("\n--- INCOME ---")
	r.rows(income, "No income for this month!")
	r.Println("\n--- EXPENSES ---")
	r.rows(expense, "No expenses for this month!")

	r.Println("\n MONTHLY SUMMARY")
	r.rule(20)
	r.Printf("Income: %s\n", core.FormatMoney(r.symbol, ov.Summary.Income))
	r.Printf("Expenses: %s\n", core.FormatMoney(r.symbol, ov.Summary.Spent()))
	r.Printf("Balance: %s\n", core.FormatMoney(r.symbol, ov.Summary.Balance))
}

package core

import "github.com/shopspring/decimal"

const (
	AdviceOverspending Advice = "overspending"
	AdviceLowSavings   Advice = "low_savings"
	AdviceHealthy      Advice = "healthy"
)

// DefaultSavingsTarget is the share of income below which savings are low.
var DefaultSavingsTarget = decimal.NewFromFloat(0.10)

// Advice is a display hint derived from a Summary.
type Advice string

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Summary holds income and expense totals. Expenses is negative or zero.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// NewSummary totals amounts the way the ledger does: positives are income,
// negatives are expenses, zeros are ignored.
func NewSummary(txs []Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch {
		case t.IsIncome():
			s.Income = s.Income.Add(t.Amount)
		case t.IsExpense():
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Add(s.Expenses)
	return s
}

// Spent returns the expense total as a positive number.
func (s Summary) Spent() decimal.Decimal {
	return s.Expenses.Neg()
}

// Advice classifies the balance against target, a fraction of income.
// With no income any non-negative balance is healthy.
func (s Summary) Advice(target decimal.Decimal) Advice {
	switch {
	case s.Balance.IsNegative():
		return AdviceOverspending
	case s.Balance.LessThan(s.Income.Mul(target)):
		return AdviceLowSavings
	default:
		return AdviceHealthy
	}
}

// MonthOverview is a compact summary for a specific year+month.
type MonthOverview struct {
	Year         int
	Month        int // 1-12
	Transactions []Transaction
	Summary      Summary
}

package ledger

import (
	"github.com/shopspring/decimal"

	"budget/internal/core"
)

// Balance is total income plus total expenses.
func (s *Store) Balance() decimal.Decimal {
	return s.Summary().Balance
}

func (s *Store) Summary() core.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.NewSummary(s.items)
}

// SpendingByCategory maps each category to the magnitude of its expenses.
// Categories without expenses are absent.
func (s *Store) SpendingByCategory() map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, ca := range s.SpendingBreakdown() {
		out[ca.Name] = ca.Amount
	}
	return out
}

// SpendingBreakdown is SpendingByCategory ordered by first expense seen.
func (s *Store) SpendingBreakdown() []core.CategoryAmount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.CategoryAmount
	index := map[string]int{}
	for _, t := range s.items {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, core.CategoryAmount{Name: t.Category})
		}
		out[i].Amount = out[i].Amount.Add(t.Magnitude())
	}
	return out
}

// TransactionsInMonth keeps the transactions whose stored date falls in
// month/year, in insertion order. Dates that do not parse never match.
func (s *Store) TransactionsInMonth(month, year int) []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Transaction
	for _, t := range s.items {
		d, err := core.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if int(d.Month()) == month && d.Year() == year {
			out = append(out, t)
		}
	}
	return out
}

// MonthOverview is the month slice together with its totals.
func (s *Store) MonthOverview(month, year int) core.MonthOverview {
	txs := s.TransactionsInMonth(month, year)
	return core.MonthOverview{
		Year:         year,
		Month:        month,
		Transactions: txs,
		Summary:      core.NewSummary(txs),
	}
}

// Partition splits txs into income (amount > 0) and expenses (amount < 0),
// keeping order. Zero amounts land in neither.
func Partition(txs []core.Transaction) (income, expense []core.Transaction) {
	for _, t := range txs {
		switch {
		case t.IsIncome():
			income = append(income, t)
		case t.IsExpense():
			expense = append(expense, t)
		}
	}
	return income, expense
}

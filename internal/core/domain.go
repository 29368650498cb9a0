package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

// IncomeCategory is the label the income prompt files entries under.
// Nothing enforces it; expenses may use it too.
const IncomeCategory = "Income"

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindZero    Kind = "zero"
)

type (
	// Kind tells income from expense without looking at the category text.
	Kind string

	Transaction struct {
		ID          string
		Amount      decimal.Decimal // positive income, negative expense
		Description string
		Category    string
		Date        string // YYYY-MM-DD
		Kind        Kind
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrZeroAmount    = errors.New("amount must not be zero")
)

// KindOf derives the discriminant from the sign of amount.
func KindOf(amount decimal.Decimal) Kind {
	switch amount.Sign() {
	case 1:
		return KindIncome
	case -1:
		return KindExpense
	default:
		return KindZero
	}
}

// IsIncome and IsExpense read the amount sign, the same source KindOf uses,
// so they also hold for values built without a Kind.
func (t Transaction) IsIncome() bool  { return t.Amount.IsPositive() }
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// Magnitude returns the absolute amount, the way expenses are shown.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"budget/internal/core"
	"budget/internal/ledger"
	applog "budget/internal/log"
)

// BudgetService orchestrates ledger operations: it validates input, appends
// to the store and tells the notifier afterwards.
type BudgetService struct {
	store    *ledger.Store
	notifier Notifier
	target   decimal.Decimal
	logger   *applog.Logger
}

type Option func(*BudgetService)

// WithNotifier replaces the default log notifier.
func WithNotifier(n Notifier) Option {
	return func(s *BudgetService) { s.notifier = n }
}

// WithSavingsTarget sets the income share below which savings count as low.
func WithSavingsTarget(target decimal.Decimal) Option {
	return func(s *BudgetService) { s.target = target }
}

func WithLogger(l *applog.Logger) Option {
	return func(s *BudgetService) { s.logger = l }
}

func NewBudgetService(store *ledger.Store, opts ...Option) *BudgetService {
	s := &BudgetService{
		store:  store,
		target: core.DefaultSavingsTarget,
		logger: applog.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.logger)
	}
	s.logger = s.logger.WithComponent(applog.ComponentService)
	return s
}

// AddTransaction checks the date (when given), appends and notifies.
// An empty date means today.
func (s *BudgetService) AddTransaction(ctx context.Context, amount decimal.Decimal, description, category, date string) (core.Transaction, error) {
	if amount.IsZero() {
		return core.Transaction{}, core.ErrZeroAmount
	}
	date = strings.TrimSpace(date)
	if date != "" {
		if err := core.CheckDate(date, s.store.Clock()); err != nil {
			s.logger.WithComponent(applog.ComponentValidation).DebugContext(ctx, "Rejected transaction date",
				applog.FieldOperation, applog.OpValidate, applog.FieldDate, date, applog.FieldError, err)
			return core.Transaction{}, fmt.Errorf("validate date: %w", err)
		}
	}

	t := s.store.Add(amount, description, category, date)
	s.notifier.TransactionAdded(ctx, t)
	return t, nil
}

// AddIncome records a positive amount under the Income category.
func (s *BudgetService) AddIncome(ctx context.Context, amount decimal.Decimal, description, date string) (core.Transaction, error) {
	if !amount.IsPositive() {
		return core.Transaction{}, ErrNonPositiveIncome
	}
	return s.AddTransaction(ctx, amount, description, core.IncomeCategory, date)
}

// AddExpense records an expense. Positive input is converted to negative.
func (s *BudgetService) AddExpense(ctx context.Context, amount decimal.Decimal, description, category, date string) (core.Transaction, error) {
	if amount.IsPositive() {
		amount = amount.Neg()
	}
	return s.AddTransaction(ctx, amount, description, category, date)
}

// Ledger returns every transaction split into income and expenses.
func (s *BudgetService) Ledger() (income, expense []core.Transaction) {
	return ledger.Partition(s.store.Transactions())
}

func (s *BudgetService) Summary() core.Summary {
	return s.store.Summary()
}

// Advice classifies the current balance.
func (s *BudgetService) Advice() core.Advice {
	return s.store.Summary().Advice(s.target)
}

func (s *BudgetService) Spending() []core.CategoryAmount {
	return s.store.SpendingBreakdown()
}

func (s *BudgetService) Month(month, year int) core.MonthOverview {
	return s.store.MonthOverview(month, year)
}

func (s *BudgetService) HasTransactions() bool {
	return s.store.Len() > 0
}

func (s *BudgetService) Clock() core.Clock {
	return s.store.Clock()
}

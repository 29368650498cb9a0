package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	applog "budget/internal/log"
	"budget/internal/services"
)

// errExit ends the menu loop.
var errExit = errors.New("exit requested")

type SessionOptions struct {
	MinReportYear int
	Logger        *applog.Logger
}

// Session drives the interactive tracker: guided setup, then the menu.
type Session struct {
	svc      *services.BudgetService
	in       *Prompter
	out      *Renderer
	minYear  int
	logger   *applog.Logger
	commands map[string]Command
}

func NewSession(svc *services.BudgetService, in *Prompter, out *Renderer, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = applog.Discard()
	}
	minYear := opts.MinReportYear
	if minYear == 0 {
		minYear = 1900
	}
	s := &Session{
		svc:     svc,
		in:      in,
		out:     out,
		minYear: minYear,
		logger:  logger.WithComponent(applog.ComponentPrompt),
	}
	s.commands = s.buildCommands()
	return s
}

func (s *Session) buildCommands() map[string]Command {
	mk := func(key string, run func(ctx context.Context) error) Command {
		return WithTiming(s.logger, Command{Key: key, Run: run})
	}
	return map[string]Command{
		"add_income":  mk("add_income", func(ctx context.Context) error { return s.repeat(ctx, s.addIncome) }),
		"add_expense": mk("add_expense", func(ctx context.Context) error { return s.repeat(ctx, s.addExpense) }),
		"list_all":    mk("list_all", s.viewTransactions),
		"list_month":  mk("list_month", s.viewMonth),
		"balance":     mk("balance", s.balance),
		"by_category": mk("by_category", s.spendingByCategory),
		"exit":        mk("exit", s.exit),
	}
}

// Run plays the whole session. It returns nil when the user exits or the
// input runs out, and ctx.Err() when cancelled.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	switch {
	case err == nil, errors.Is(err, errExit):
		return nil
	case errors.Is(err, ErrInputClosed):
		s.logger.InfoContext(ctx, "Input closed, ending session")
		s.out.Println("\nInput closed. Goodbye!")
		return nil
	default:
		return err
	}
}

func (s *Session) run(ctx context.Context) error {
	s.out.Println("=== PERSONAL BUDGET TRACKER ===")
	s.out.Println("Let's start by adding your income sources, then your expenses.")
	s.out.Println()

	s.out.Println("STEP 1: ADD YOUR INCOME SOURCES")
	s.out.Println(strings.Repeat("-", 30))
	if err := s.repeat(ctx, s.addIncome); err != nil {
		return err
	}

	s.out.Println("\nSTEP 2: ADD YOUR EXPENSES")
	s.out.Println(strings.Repeat("-", 25))
	if err := s.repeat(ctx, s.addExpense); err != nil {
		return err
	}

	s.out.Println("\n" + strings.Repeat("=", 50))
	s.out.Println("INITIAL SETUP COMPLETE!")
	s.out.Println(strings.Repeat("=", 50))
	if err := s.balance(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		MainMenu.Draw(s.out)
		choice, err := s.in.ReadLine(ctx, fmt.Sprintf("\nEnter your choice (1-%d): ", len(MainMenu.Items)))
		if err != nil {
			return err
		}
		item, ok := MainMenu.Lookup(choice)
		if !ok {
			s.logger.DebugContext(ctx, "Invalid menu choice", applog.FieldChoice, choice)
			s.out.Printf("Invalid choice! Please enter a number between 1-%d.\n", len(MainMenu.Items))
			continue
		}
		if err := s.commands[item.Key].Run(ctx); err != nil {
			return err
		}
	}
}

// repeat runs step until it reports the user is done.
func (s *Session) repeat(ctx context.Context, step func(context.Context) (bool, error)) error {
	for {
		more, err := step(ctx)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Session) addIncome(ctx context.Context) (bool, error) {
	s.out.Println("\n--- ADD INCOME ---")

	amount, err := s.in.ReadAmount(ctx, "Enter income amount: $")
	for err == nil && !amount.IsPositive() {
		s.out.Println("Income amount must be positive!")
		amount, err = s.in.ReadAmount(ctx, "Enter income amount: $")
	}
	if err != nil {
		return false, err
	}

	desc, err := s.in.ReadLine(ctx, "Enter description (e.g., Salary, Freelance, Bonus): ")
	if err != nil {
		return false, err
	}

	date, err := s.readDate(ctx)
	if err != nil {
		return false, err
	}

	t, err := s.svc.AddIncome(ctx, amount, desc, date)
	if err != nil {
		return false, fmt.Errorf("add income: %w", err)
	}
	s.out.Added(t)

	return s.in.Confirm(ctx, "Add another income source? (y/n): ")
}

func (s *Session) addExpense(ctx context.Context) (bool, error) {
	s.out.Println("\n--- ADD EXPENSES ---")

	amount, err := s.in.ReadAmount(ctx, "Enter expense amount: $")
	for err == nil && amount.IsZero() {
		s.out.Println("Expense amount cannot be zero!")
		amount, err = s.in.ReadAmount(ctx, "Enter expense amount: $")
	}
	if err != nil {
		return false, err
	}
	if amount.IsPositive() {
		s.out.Println("Expense amount must be negative! I'll convert it to negative.")
	}

	desc, err := s.in.ReadLine(ctx, "Enter description (e.g., Rent, Groceries, Utilities): ")
	if err != nil {
		return false, err
	}
	category, err := s.in.ReadLine(ctx, "Enter category (e.g., Housing, Food, Transportation): ")
	if err != nil {
		return false, err
	}

	date, err := s.readDate(ctx)
	if err != nil {
		return false, err
	}

	t, err := s.svc.AddExpense(ctx, amount, desc, category, date)
	if err != nil {
		return false, fmt.Errorf("add expense: %w", err)
	}
	s.out.Added(t)

	return s.in.Confirm(ctx, "Add another expense? (y/n): ")
}

func (s *Session) readDate(ctx context.Context) (string, error) {
	s.out.Println("Enter date in YYYY-MM-DD format (or press Enter for today's date): ")
	return s.in.ReadDate(ctx, "Date: ", s.svc.Clock())
}

func (s *Session) viewTransactions(context.Context) error {
	income, expense := s.svc.Ledger()
	s.out.Ledger(income, expense)
	return nil
}

func (s *Session) viewMonth(ctx context.Context) error {
	if !s.svc.HasTransactions() {
		s.out.Println("No transactions recorded yet!")
		return nil
	}
	month, year, err := s.in.ReadMonth(ctx, s.svc.Clock(), s.minYear)
	if err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "Monthly report",
		applog.NewFields().WithPeriod(month, year).WithOperation(applog.OpReport).ToSlice()...)
	s.out.Month(s.svc.Month(month, year))
	return nil
}

func (s *Session) balance(context.Context) error {
	s.out.Summary(s.svc.Summary(), s.svc.Advice())
	return nil
}

func (s *Session) spendingByCategory(context.Context) error {
	if !s.svc.HasTransactions() {
		s.out.Println("No transactions to analyze!")
		return nil
	}
	s.out.Spending(s.svc.Spending())
	return nil
}

func (s *Session) exit(ctx context.Context) error {
	s.out.Println("\nThank you for using the Personal Budget Tracker!")
	s.out.Println("Final Summary:")
	if err := s.balance(ctx); err != nil {
		return err
	}
	return errExit
}

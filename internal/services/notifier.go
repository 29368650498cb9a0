package services

import (
	"context"
	"errors"

	"budget/internal/core"
	applog "budget/internal/log"
)

var ErrNonPositiveIncome = errors.New("income amount must be positive")

// Notifier is told about every transaction after it has been stored.
type Notifier interface {
	TransactionAdded(ctx context.Context, t core.Transaction)
}

// LogNotifier writes a structured record per added transaction.
type LogNotifier struct {
	sl *applog.StructuredLogger
}

func NewLogNotifier(l *applog.Logger) *LogNotifier {
	return &LogNotifier{sl: applog.NewStructuredLogger(l)}
}

func (n *LogNotifier) TransactionAdded(ctx context.Context, t core.Transaction) {
	n.sl.LogTransactionAdded(ctx, t.ID, t.Description, core.FormatAmount(t.Amount), t.Category, t.Date, string(t.Kind))
}

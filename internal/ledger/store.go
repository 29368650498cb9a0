// Package ledger holds the session's transactions in memory and answers
// aggregate queries over them.
package ledger

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"budget/internal/core"
)

// Store is an append-only, insertion-ordered list of transactions plus the
// set of categories seen so far.
type Store struct {
	mu    sync.RWMutex
	clock core.Clock
	newID func() string
	items []core.Transaction
	cats  []string
	seen  map[string]struct{}
}

type Option func(*Store)

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(clock core.Clock, opts ...Option) *Store {
	if clock == nil {
		clock = core.SystemClock{}
	}
	s := &Store{
		clock: clock,
		newID: uuid.NewString,
		seen:  map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a transaction and returns it. An empty date means today.
// Nothing is validated here.
func (s *Store) Add(amount decimal.Decimal, description, category, date string) core.Transaction {
	if date == "" {
		date = core.TodayString(s.clock)
	}
	t := core.Transaction{
		ID:          s.newID(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		Kind:        core.KindOf(amount),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	if _, ok := s.seen[category]; !ok {
		s.seen[category] = struct{}{}
		s.cats = append(s.cats, category)
	}
	return t
}

// Transactions returns a copy of every transaction in insertion order.
func (s *Store) Transactions() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Transaction(nil), s.items...)
}

// Categories returns the distinct categories in order of first appearance.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cats...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clock returns the clock used for date defaulting.
func (s *Store) Clock() core.Clock {
	return s.clock
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"budget/internal/core"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

var monthPattern = regexp.MustCompile(`^\d{2}-\d{4}$`)

// Prompter reads answers line by line. Lines are read on a separate
// goroutine so a cancelled context unblocks a pending read.
type Prompter struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
	once  sync.Once
	err   error // set before lines is closed
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

// scan has no line length limit. A read error other than EOF is kept for
// ReadLine.
func (p *Prompter) scan(in io.Reader) {
	defer close(p.lines)
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			select {
			case p.lines <- strings.TrimRight(line, "\r\n"):
			case <-p.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.err = err
			}
			return
		}
	}
}

// Close stops the scanner goroutine at its next line.
func (p *Prompter) Close() {
	p.once.Do(func() { close(p.done) })
}

// ReadLine prints prompt and returns the next trimmed line. It returns
// ErrInputClosed at EOF and the wrapped read error on any other failure.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("read input: %w", p.err)
			}
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// ReadAmount asks until the answer parses as a number.
func (p *Prompter) ReadAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		raw, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := core.ParseAmount(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number!")
			continue
		}
		return amount, nil
	}
}

// ReadDate asks until the answer is a valid date. An empty answer returns
// "" which the ledger turns into today.
func (p *Prompter) ReadDate(ctx context.Context, prompt string, clock core.Clock) (string, error) {
	for {
		raw, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if raw == "" {
			return "", nil
		}
		if ok, msg := core.ValidateDate(raw, clock); !ok {
			fmt.Fprintf(p.out, " %s\n", msg)
			fmt.Fprintln(p.out, "Please try again or press Enter for current date.")
			continue
		}
		return raw, nil
	}
}

// Confirm returns true only for "y".
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	raw, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(raw) == "y", nil
}

// ReadMonth asks for MM-YYYY; empty means the clock's current month. Years
// outside [minYear, current year] are refused.
func (p *Prompter) ReadMonth(ctx context.Context, clock core.Clock, minYear int) (month, year int, err error) {
	today := clock.Today()
	for {
		raw, err := p.ReadLine(ctx, "Enter month and year (MM-YYYY) or press Enter for current month: ")
		if err != nil {
			return 0, 0, err
		}
		if raw == "" {
			return int(today.Month()), today.Year(), nil
		}
		if !monthPattern.MatchString(raw) {
			fmt.Fprintln(p.out, "Please use MM-YYYY format (e.g., 01-2024)")
			continue
		}
		month, _ = strconv.Atoi(raw[:2])
		year, _ = strconv.Atoi(raw[3:])
		if month < 1 || month > 12 {
			fmt.Fprintln(p.out, "Month must be between 01 and 12")
			continue
		}
		if year < minYear || year > today.Year() {
			fmt.Fprintf(p.out, "Year must be between %d and %d\n", minYear, today.Year())
			continue
		}
		return month, year, nil
	}
}

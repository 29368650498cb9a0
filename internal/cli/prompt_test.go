package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(t *testing.T, lines ...string) (*Prompter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(script(lines...), &out)
	t.Cleanup(p.Close)
	return p, &out
}

func TestReadLineTrimsAndReportsEOF(t *testing.T) {
	ctx := context.Background()
	p, out := newTestPrompter(t, "  hello  ")

	got, err := p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "> ", out.String())

	_, err = p.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadLineAcceptsVeryLongLines(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("x", 70*1024)
	p, _ := newTestPrompter(t, long, "100")

	got, err := p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "100", got)
}

func TestReadLineKeepsLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("a\r\nb"), &out)
	defer p.Close()

	for _, want := range []string{"a", "b"} {
		got, err := p.ReadLine(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := p.ReadLine(context.Background(), "")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadLineReportsReadErrors(t *testing.T) {
	boom := errors.New("device gone")
	var out bytes.Buffer
	p := NewPrompter(io.MultiReader(strings.NewReader("1\n"), iotest.ErrReader(boom)), &out)
	defer p.Close()

	got, err := p.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	_, err = p.ReadLine(context.Background(), "")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestReadAmountRetries(t *testing.T) {
	p, out := newTestPrompter(t, "twelve", "12,345")

	got, err := p.ReadAmount(context.Background(), "$")
	require.NoError(t, err)
	assert.Equal(t, "12.35", got.StringFixed(2))
	assert.Contains(t, out.String(), "Please enter a valid number!")
}

func TestReadDate(t *testing.T) {
	ctx := context.Background()
	p, out := newTestPrompter(t, "2025-06-16", "2024-02-30", "2024-02-29", "")

	got, err := p.ReadDate(ctx, "Date: ", testClock)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)
	assert.Contains(t, out.String(), " Date cannot be in the future!")
	assert.Contains(t, out.String(), " February 2024 has only 29 days")

	got, err = p.ReadDate(ctx, "Date: ", testClock)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestPrompter(t, "Y", "yes", "n")

	for _, want := range []bool{true, false, false} {
		got, err := p.Confirm(ctx, "? ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadMonth(t *testing.T) {
	ctx := context.Background()
	p, out := newTestPrompter(t, "", "6-2025", "00-2025", "01-2026", "02-2024")

	m, y, err := p.ReadMonth(ctx, testClock, 1900)
	require.NoError(t, err)
	assert.Equal(t, 6, m)
	assert.Equal(t, 2025, y)

	m, y, err = p.ReadMonth(ctx, testClock, 1900)
	require.NoError(t, err)
	assert.Equal(t, 2, m)
	assert.Equal(t, 2024, y)

	assert.Contains(t, out.String(), "Please use MM-YYYY format (e.g., 01-2024)")
	assert.Contains(t, out.String(), "Month must be between 01 and 12")
	assert.Contains(t, out.String(), "Year must be between 1900 and 2025")
}

func TestReadLineHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	p := NewPrompter(pr, &out)
	defer p.Close()

	_, err := p.ReadLine(ctx, "> ")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCloseIsIdempotent(t *testing.T) {
	p, _ := newTestPrompter(t)
	p.Close()
	p.Close()
}

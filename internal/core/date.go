package core

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the only accepted transaction date format.
const DateLayout = "2006-01-02"

const validDateMessage = "Valid date"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	ErrDateFormat = errors.New("date format error")
	ErrDateRange  = errors.New("date range error")
	ErrFutureDate = errors.New("future date error")
)

// DateError carries the message shown to the user. Unwrap yields one of
// ErrDateFormat, ErrDateRange or ErrFutureDate.
type DateError struct {
	Kind    error
	Message string
}

func (e *DateError) Error() string { return e.Message }
func (e *DateError) Unwrap() error { return e.Kind }

func dateErr(kind error, format string, args ...any) *DateError {
	return &DateError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Clock supplies "today" for date defaulting and the future-date rule.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same day.
type FixedClock struct {
	Day time.Time
}

func (c FixedClock) Today() time.Time {
	return time.Date(c.Day.Year(), c.Day.Month(), c.Day.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayString formats the clock's current day as YYYY-MM-DD.
func TodayString(c Clock) string {
	return c.Today().Format(DateLayout)
}

// IsLeapYear reports whether February of year has 29 days.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysIn returns the number of days of month in year.
func DaysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// CheckDate applies the date rules in order and returns the first failure
// as a *DateError, or nil when s is a real calendar day not after today.
func CheckDate(s string, clock Clock) error {
	if !datePattern.MatchString(s) {
		return dateErr(ErrDateFormat, "Date must be in YYYY-MM-DD format (e.g., 2024-01-15)")
	}

	// The pattern guarantees three all-digit fields.
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	if month < 1 || month > 12 {
		return dateErr(ErrDateRange, "Month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return dateErr(ErrDateRange, "Day must be between 1 and 31")
	}
	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return dateErr(ErrDateRange, "Month %d has only 30 days", month)
		}
	case 2:
		if maxDays := DaysIn(2, year); day > maxDays {
			return dateErr(ErrDateRange, "February %d has only %d days", year, maxDays)
		}
	}

	date, err := buildDate(year, month, day)
	if err != nil {
		return dateErr(ErrDateRange, "Invalid date: %v", err)
	}

	if date.After(clock.Today()) {
		return dateErr(ErrFutureDate, "Date cannot be in the future!")
	}
	return nil
}

// ValidateDate is CheckDate in (ok, message) form for prompt code.
func ValidateDate(s string, clock Clock) (bool, string) {
	if err := CheckDate(s, clock); err != nil {
		return false, err.Error()
	}
	return true, validDateMessage
}

// buildDate refuses anything time.Date would silently normalise.
func buildDate(year, month, day int) (time.Time, error) {
	if year < 1 {
		return time.Time{}, fmt.Errorf("year %d is out of range", year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, errors.New("day is out of range for month")
	}
	return t, nil
}

// ParseDate parses a stored YYYY-MM-DD string without the future check.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

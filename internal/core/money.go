// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts typed at the
// prompt and formatting them back with two decimal places.
package core

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern is a signed decimal with an optional short exponent. The
// exponent is capped at three digits so rounding never has to rescale an
// absurdly large number.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d{1,3})?$`)

// ParseAmount converts a decimal string to an amount rounded to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, an
// optional leading sign, an optional exponent (1e3, 2.5E-1), and performs
// half-up rounding on the third decimal place. Zero is accepted here;
// callers decide whether it is meaningful.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34
//	ParseAmount("12,34")  -> 12.34
//	ParseAmount("-12.345") -> -12.35
//	ParseAmount("12.344") -> 12.34
//	ParseAmount("1e3")    -> 1000
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	// decimal.Round rounds half away from zero, which is half-up on magnitude.
	return d.Round(2), nil
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatMoney prefixes FormatAmount with a currency symbol. The sign stays
// on the number: $-12.50.
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + FormatAmount(d)
}

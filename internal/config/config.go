package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // BUDGET_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/shopspring/decimal"

	applog "budget/internal/log"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Calendar
	Timezone      string
	MinReportYear int

	// Reporting
	SavingsTargetPercent int
	CurrencySymbol       string

	// Lifecycle
	ShutdownTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		Timezone:      getEnv("BUDGET_TIMEZONE", "Local"),
		MinReportYear: getEnvInt("MIN_REPORT_YEAR", 1900),

		SavingsTargetPercent: getEnvInt("SAVINGS_TARGET_PERCENT", 10),
		CurrencySymbol:       getEnv("CURRENCY_SYMBOL", "$"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validFormats := []string{"text", "json"}
	isValidFormat := false
	for _, f := range validFormats {
		if c.LogFormat == f {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if c.MinReportYear < 1 || c.MinReportYear > 9999 {
		errors = append(errors, fmt.Sprintf("invalid minimum report year %d: must be between 1 and 9999", c.MinReportYear))
	}

	if c.SavingsTargetPercent < 0 || c.SavingsTargetPercent > 100 {
		errors = append(errors, fmt.Sprintf("invalid savings target %d%%: must be between 0 and 100", c.SavingsTargetPercent))
	}

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	if c.ShutdownTimeout < 100*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 100ms", c.ShutdownTimeout))
	} else if c.ShutdownTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at most 1 minute", c.ShutdownTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Location resolves Timezone; "Local" and "" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// SavingsTarget returns SavingsTargetPercent as a fraction.
func (c *Config) SavingsTarget() decimal.Decimal {
	return decimal.NewFromInt(int64(c.SavingsTargetPercent)).Shift(-2)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

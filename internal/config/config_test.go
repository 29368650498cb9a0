package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		LogLevel:             "warn",
		LogFormat:            "text",
		Timezone:             "UTC",
		MinReportYear:        1900,
		SavingsTargetPercent: 10,
		CurrencySymbol:       "$",
		ShutdownTimeout:      5 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "local timezone",
			mutate:  func(c *Config) { c.Timezone = "Local" },
			wantErr: false,
		},
		{
			name:    "json format and named zone",
			mutate:  func(c *Config) { c.LogFormat = "json"; c.Timezone = "Europe/Rome" },
			wantErr: false,
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml': must be one of [text json]",
		},
		{
			name:        "unknown timezone",
			mutate:      func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr:     true,
			errorString: "invalid timezone 'Mars/Olympus'",
		},
		{
			name:        "savings target too high",
			mutate:      func(c *Config) { c.SavingsTargetPercent = 101 },
			wantErr:     true,
			errorString: "invalid savings target 101%: must be between 0 and 100",
		},
		{
			name:        "savings target negative",
			mutate:      func(c *Config) { c.SavingsTargetPercent = -1 },
			wantErr:     true,
			errorString: "invalid savings target -1%",
		},
		{
			name:        "empty currency symbol",
			mutate:      func(c *Config) { c.CurrencySymbol = " " },
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
		{
			name:        "min report year zero",
			mutate:      func(c *Config) { c.MinReportYear = 0 },
			wantErr:     true,
			errorString: "invalid minimum report year 0",
		},
		{
			name:        "shutdown timeout too short",
			mutate:      func(c *Config) { c.ShutdownTimeout = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid shutdown timeout 10ms: must be at least 100ms",
		},
		{
			name:        "shutdown timeout too long",
			mutate:      func(c *Config) { c.ShutdownTimeout = 2 * time.Minute },
			wantErr:     true,
			errorString: "invalid shutdown timeout 2m0s: must be at most 1 minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "nope"
	cfg.CurrencySymbol = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 2 {
		t.Errorf("expected 2 problems, got %d in %q", got, err.Error())
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "BUDGET_TIMEZONE", "MIN_REPORT_YEAR",
		"SAVINGS_TARGET_PERCENT", "CURRENCY_SYMBOL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.LogLevel != "warn" {
			t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
		}
		if cfg.LogFormat != "text" {
			t.Errorf("Load() LogFormat = %v, want text", cfg.LogFormat)
		}
		if cfg.Timezone != "Local" {
			t.Errorf("Load() Timezone = %v, want Local", cfg.Timezone)
		}
		if cfg.SavingsTargetPercent != 10 {
			t.Errorf("Load() SavingsTargetPercent = %v, want 10", cfg.SavingsTargetPercent)
		}
		if cfg.CurrencySymbol != "$" {
			t.Errorf("Load() CurrencySymbol = %v, want $", cfg.CurrencySymbol)
		}
		if cfg.MinReportYear != 1900 {
			t.Errorf("Load() MinReportYear = %v, want 1900", cfg.MinReportYear)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("Load() ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults should validate: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("BUDGET_TIMEZONE", "UTC")
		t.Setenv("SAVINGS_TARGET_PERCENT", "25")
		t.Setenv("CURRENCY_SYMBOL", "€")
		t.Setenv("MIN_REPORT_YEAR", "2000")
		t.Setenv("SHUTDOWN_TIMEOUT", "2s")

		cfg := Load()

		if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
			t.Errorf("Load() logging = %v/%v, want debug/json", cfg.LogLevel, cfg.LogFormat)
		}
		if cfg.Timezone != "UTC" {
			t.Errorf("Load() Timezone = %v, want UTC", cfg.Timezone)
		}
		if cfg.SavingsTargetPercent != 25 {
			t.Errorf("Load() SavingsTargetPercent = %v, want 25", cfg.SavingsTargetPercent)
		}
		if cfg.CurrencySymbol != "€" {
			t.Errorf("Load() CurrencySymbol = %v, want €", cfg.CurrencySymbol)
		}
		if cfg.MinReportYear != 2000 {
			t.Errorf("Load() MinReportYear = %v, want 2000", cfg.MinReportYear)
		}
		if cfg.ShutdownTimeout != 2*time.Second {
			t.Errorf("Load() ShutdownTimeout = %v, want 2s", cfg.ShutdownTimeout)
		}
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("SAVINGS_TARGET_PERCENT", "ten")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		cfg := Load()
		if cfg.SavingsTargetPercent != 10 {
			t.Errorf("Load() SavingsTargetPercent = %v, want 10", cfg.SavingsTargetPercent)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("Load() ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
		}
	})
}

func TestSavingsTargetAndLocation(t *testing.T) {
	cfg := validConfig()
	cfg.SavingsTargetPercent = 15
	if got := cfg.SavingsTarget().String(); got != "0.15" {
		t.Errorf("SavingsTarget() = %v, want 0.15", got)
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

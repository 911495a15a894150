package config

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Year != 0 || cfg.Month != 0 {
		t.Errorf("Year/Month = %d/%d, want 0/0", cfg.Year, cfg.Month)
	}
	if cfg.Weekends {
		t.Error("Weekends = true, want false")
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	t.Setenv("HOLIDAYS_ENV", "production")
	t.Setenv("HOLIDAYS_LOG_LEVEL", "debug")
	t.Setenv("HOLIDAYS_LOG_FORMAT", "json")
	t.Setenv("HOLIDAYS_YEAR", "2024")
	t.Setenv("HOLIDAYS_MONTH", "12")
	t.Setenv("HOLIDAYS_WEEKENDS", "true")
	t.Setenv("HOLIDAYS_OUTPUT", "json")

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Year != 2024 {
		t.Errorf("Year = %d, want 2024", cfg.Year)
	}
	if cfg.Month != 12 {
		t.Errorf("Month = %d, want 12", cfg.Month)
	}
	if !cfg.Weekends {
		t.Error("Weekends = false, want true")
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputJSON)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv()
	t.Setenv("HOLIDAYS_YEAR", "2020")

	cfg, err := Load([]string{"--year=2025", "--month=6", "--log-level=warn"})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Year != 2025 {
		t.Errorf("Year = %d, want 2025", cfg.Year)
	}
	if cfg.Month != 6 {
		t.Errorf("Month = %d, want 6", cfg.Month)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv()
	t.Setenv("HOLIDAYS_MONTH", "13")

	if _, err := Load([]string{}); err == nil {
		t.Error("Load() with month 13 succeeded, want error")
	}
}

func TestLoad_Help(t *testing.T) {
	clearEnv()

	_, err := Load([]string{"--help"})
	if !errors.Is(err, ErrHelpWanted) {
		t.Fatalf("Load(--help) error = %v, want ErrHelpWanted", err)
	}

	usage, err := Usage()
	if err != nil {
		t.Fatalf("Usage() error = %v", err)
	}
	if !strings.Contains(usage, "HOLIDAYS_YEAR") {
		t.Errorf("Usage() does not mention HOLIDAYS_YEAR:\n%s", usage)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Env = EnvDevelopment
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.Output = OutputText
		return c
	}

	// Table-driven tests for validation
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"valid explicit year and month", func(c *Config) { c.Year, c.Month = 2024, 12 }, false},
		{"valid json output", func(c *Config) { c.Output = OutputJSON }, false},
		{"year too early", func(c *Config) { c.Year = 1582 }, true},
		{"year too late", func(c *Config) { c.Year = 10000 }, true},
		{"negative month", func(c *Config) { c.Month = -1 }, true},
		{"month too high", func(c *Config) { c.Month = 13 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"invalid log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"invalid output", func(c *Config) { c.Output = "csv" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	var cfg Config
	cfg.Env = "nope"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Output = "csv"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, field := range []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "OUTPUT"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() error %q does not mention %s", err, field)
		}
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"ENV", "LOG_LEVEL", "LOG_FORMAT",
		"YEAR", "MONTH", "WEEKENDS", "OUTPUT",
	}
	for _, v := range vars {
		os.Unsetenv(Prefix + "_" + v)
	}
}

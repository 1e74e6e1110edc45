package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/tradejournal/calendar"
	"github.com/rustyeddy/tradejournal/market"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Preview  PreviewConfig  `json:"preview" yaml:"preview"`
	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// AccountConfig describes the trading account the journal belongs to
type AccountConfig struct {
	Currency string `json:"currency" yaml:"currency"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PreviewConfig feeds the pip-based estimate shown before a trade is saved
type PreviewConfig struct {
	PipValuePerLot    float64 `json:"pip_value_per_lot" yaml:"pip_value_per_lot"`
	DefaultInstrument string  `json:"default_instrument" yaml:"default_instrument"`
}

// CalendarConfig controls how weeks are cut
type CalendarConfig struct {
	WeekStart string `json:"week_start" yaml:"week_start"` // monday or sunday
	Timezone  string `json:"timezone" yaml:"timezone"`     // IANA name or "Local"
}

// LogConfig controls log level and output format
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug | info | warn | error
	Format string `json:"format" yaml:"format"` // text | json
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Missing fields keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path when it is set and exists, otherwise starts from
// Default, then applies .env and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if cfg, err = LoadFromFile(path); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides values from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TRADEJOURNAL_DB"); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv("TRADEJOURNAL_TZ"); v != "" {
		c.Calendar.Timezone = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Preview.PipValuePerLot <= 0 {
		return fmt.Errorf("preview.pip_value_per_lot must be positive")
	}
	if c.Preview.DefaultInstrument != "" {
		if _, ok := market.Lookup(c.Preview.DefaultInstrument); !ok {
			return fmt.Errorf("unknown instrument: %s", c.Preview.DefaultInstrument)
		}
	}
	if _, err := c.FirstWeekday(); err != nil {
		return fmt.Errorf("calendar.week_start: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// FirstWeekday is the weekday calendar weeks start on.
func (c *Config) FirstWeekday() (time.Weekday, error) {
	d, err := calendar.ParseWeekday(c.Calendar.WeekStart)
	if err != nil {
		return time.Monday, err
	}
	if d != time.Monday && d != time.Sunday {
		return time.Monday, fmt.Errorf("must be monday or sunday, got %s", d)
	}
	return d, nil
}

// Location resolves calendar.timezone; empty means Local.
func (c *Config) Location() (*time.Location, error) {
	switch c.Calendar.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	return time.LoadLocation(c.Calendar.Timezone)
}

// PipValue is preview.pip_value_per_lot as a decimal.
func (c *Config) PipValue() decimal.Decimal {
	return decimal.NewFromFloat(c.Preview.PipValuePerLot)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
		},
		Journal: JournalConfig{
			DBPath: "./tradejournal.db",
		},
		Preview: PreviewConfig{
			PipValuePerLot:    10,
			DefaultInstrument: "EUR_USD",
		},
		Calendar: CalendarConfig{
			WeekStart: "monday",
			Timezone:  "Local",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

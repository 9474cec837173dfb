// Package config loads the dashboard agent's yaml configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/utils"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	Poll      PollConfig      `yaml:"poll"`
	Series    SeriesConfig    `yaml:"series"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Responder ResponderConfig `yaml:"responder"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type PollConfig struct {
	Interval        time.Duration `yaml:"interval"`
	BaselineRate    float64       `yaml:"baseline_rate"`
	ElevatedRate    float64       `yaml:"elevated_rate"`
	CarbonIntensity int           `yaml:"carbon_intensity"`
	PeakerAvoided   int           `yaml:"peaker_avoided"`
}

type SeriesConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

type LedgerConfig struct {
	ConfirmDelay   time.Duration `yaml:"confirm_delay"`
	InitialBalance string        `yaml:"initial_balance"`
}

type ResponderConfig struct {
	Devices []string `yaml:"devices"`
	Watts   float64  `yaml:"watts"`
	Workers int      `yaml:"workers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// InitialBalanceDecimal parses the configured opening balance.
// Validation guarantees it parses after Load.
func (l LedgerConfig) InitialBalanceDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(l.InitialBalance)
	return d
}

func defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3001",
			Timeout: 5 * time.Second,
		},
		Poll: PollConfig{
			Interval:        3 * time.Second,
			BaselineRate:    0.22,
			ElevatedRate:    0.78,
			CarbonIntensity: 185,
			PeakerAvoided:   3,
		},
		Series: SeriesConfig{
			TickInterval: time.Hour,
		},
		Ledger: LedgerConfig{
			ConfirmDelay:   3 * time.Second,
			InitialBalance: "34.58",
		},
		Responder: ResponderConfig{
			Watts:   50,
			Workers: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and validates the configuration at path. Missing keys fall
// back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaults()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be greater than 0")
	}

	if cfg.Poll.Interval <= 0 {
		return fmt.Errorf("poll.interval must be greater than 0")
	}
	if cfg.Poll.BaselineRate <= 0 {
		return fmt.Errorf("poll.baseline_rate must be greater than 0")
	}
	if cfg.Poll.ElevatedRate <= cfg.Poll.BaselineRate {
		return fmt.Errorf("poll.elevated_rate must be greater than poll.baseline_rate")
	}

	if cfg.Series.TickInterval <= 0 {
		return fmt.Errorf("series.tick_interval must be greater than 0")
	}

	if cfg.Ledger.ConfirmDelay < 0 {
		return fmt.Errorf("ledger.confirm_delay must not be negative")
	}
	if _, err := decimal.NewFromString(cfg.Ledger.InitialBalance); err != nil {
		return fmt.Errorf("ledger.initial_balance '%s' is not a valid amount", cfg.Ledger.InitialBalance)
	}

	if cfg.Responder.Watts <= 0 {
		return fmt.Errorf("responder.watts must be greater than 0")
	}
	if cfg.Responder.Workers <= 0 {
		return fmt.Errorf("responder.workers must be greater than 0")
	}
	for _, device := range cfg.Responder.Devices {
		if !utils.IsHexAddress(device) {
			return fmt.Errorf("responder device '%s' is not a valid address", device)
		}
	}

	return nil
}

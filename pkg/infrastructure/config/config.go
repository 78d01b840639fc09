package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// Config holds the planner configuration loaded from a YAML file. Flags may
// override individual fields after loading.
type Config struct {
	// LeadTimeDays is the fixed order-to-delivery delay.
	LeadTimeDays int `yaml:"lead_time_days"`
	// HorizonDays is the planning window length; one order per ingredient
	// is allowed per window.
	HorizonDays int `yaml:"horizon_days"`
	// HorizonStart is the first planned date, YYYY-MM-DD. Required.
	HorizonStart string `yaml:"horizon_start"`

	// Input files.
	BankFiles    []string `yaml:"bank_files"`
	SalesFile    string   `yaml:"sales_file"`
	ForecastFile string   `yaml:"forecast_file"`
	RecipesFile  string   `yaml:"recipes_file"`
}

// Default returns the stock configuration: a one-week window with a
// three-day lead time.
func Default() Config {
	return Config{
		LeadTimeDays: 3,
		HorizonDays:  7,
	}
}

// Load reads a YAML configuration file, applying defaults for omitted
// fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.LeadTimeDays < 0 {
		return fmt.Errorf("lead_time_days cannot be negative, got %d", c.LeadTimeDays)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive, got %d", c.HorizonDays)
	}
	if c.HorizonStart == "" {
		return fmt.Errorf("horizon_start is required (YYYY-MM-DD)")
	}
	if _, err := c.ParseHorizonStart(); err != nil {
		return err
	}
	return nil
}

// ParseHorizonStart parses the configured horizon start date
func (c Config) ParseHorizonStart() (time.Time, error) {
	start, err := time.Parse("2006-01-02", c.HorizonStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid horizon_start %q (expected YYYY-MM-DD)", c.HorizonStart)
	}
	return entities.DateOf(start), nil
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddress    string `envconfig:"TIDEPOOL_REPORTS_SERVER_ADDRESS" default:":8080"`
	DefaultRangeDays int    `envconfig:"TIDEPOOL_REPORTS_DEFAULT_RANGE_DAYS" default:"30"`
	Currency         string `envconfig:"TIDEPOOL_REPORTS_CURRENCY" default:"USD"`
	Locale           string `envconfig:"TIDEPOOL_REPORTS_LOCALE" default:"en-US"`
	Timezone         string `envconfig:"TIDEPOOL_REPORTS_TIMEZONE" default:"UTC"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() *Config {
	return &Config{}
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}
	if c.DefaultRangeDays < 0 {
		return fmt.Errorf("default range days must not be negative, got %d", c.DefaultRangeDays)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unable to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

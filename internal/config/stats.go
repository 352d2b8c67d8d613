package config

import (
	"fmt"
	"time"
)

// StatsConfig holds settings of the aggregations themselves.
type StatsConfig struct {
	// Timezone is an IANA zone name used to find the start of "today"
	// for daily transaction counts. Empty or "Local" means process local time.
	Timezone string `mapstructure:"timezone"`

	location *time.Location
}

func (cfg *StatsConfig) Validate() error {
	if cfg.Timezone == "" {
		cfg.Timezone = time.Local.String()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid stats timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return nil
}

// Location returns the resolved zone, falling back to time.Local
// if Validate was never called.
func (cfg *StatsConfig) Location() *time.Location {
	if cfg.location == nil {
		return time.Local
	}
	return cfg.location
}

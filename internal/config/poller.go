package config

import (
	"time"
)

const defaultStatsPollingInterval = 5 * time.Minute

type PollerConfig struct {
	// StatsPollingInterval controls how often ledger gauges are refreshed
	StatsPollingInterval time.Duration `mapstructure:"stats-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.StatsPollingInterval <= 0 {
		cfg.StatsPollingInterval = defaultStatsPollingInterval
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	defaultDbMaxConns       = 10
	defaultDbConnectTimeout = 5 * time.Second
	defaultDbMaxRetryTimes  = 5
	defaultDbRetryInterval  = 2 * time.Second
)

// DbConfig defines the connection to the ledger database (postgres)
type DbConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	DbName         string        `mapstructure:"db-name"`
	SSLMode        string        `mapstructure:"ssl-mode"`
	MaxConns       int32         `mapstructure:"max-conns"`
	MinConns       int32         `mapstructure:"min-conns"`
	ConnectTimeout time.Duration `mapstructure:"connect-timeout"`
	// MaxRetryTimes and RetryInterval apply to the initial connection only,
	// ledger queries are never retried
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("db host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("db port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.Username == "" {
		return errors.New("db username is required")
	}
	if cfg.DbName == "" {
		return errors.New("db name is required")
	}

	switch cfg.SSLMode {
	case "":
		cfg.SSLMode = "disable"
	case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("unsupported db ssl mode %q", cfg.SSLMode)
	}

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultDbMaxConns
	}
	if cfg.MinConns < 0 || cfg.MinConns > cfg.MaxConns {
		return fmt.Errorf("db min-conns must be between 0 and max-conns (%d)", cfg.MaxConns)
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultDbConnectTimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultDbMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultDbRetryInterval
	}

	return nil
}

// DSN renders the config as a postgres connection url understood by pgx
func (cfg *DbConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.DbName,
	}

	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	q.Set("connect_timeout", fmt.Sprintf("%d", int(cfg.ConnectTimeout.Seconds())))
	u.RawQuery = q.Encode()

	return u.String()
}

package db

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerscope/explorer-analytics/internal/config"
	"github.com/rs/zerolog/log"
)

type Database struct {
	pool *pgxpool.Pool
}

// New opens the connection pool to the ledger database. Every session is
// forced read only, analytics never writes to the ledger.
// Reaching the database at startup is retried, queries issued later are not.
func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse db config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "explorer-analytics"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	err = retry.Do(
		func() error {
			return pool.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n+1).
				Str("host", cfg.Host).
				Msg("failed to reach ledger database, retrying")
		}),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to ledger database: %w", err)
	}

	return &Database{pool: pool}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *Database) Acquire(ctx context.Context) (LedgerConn, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	return &Conn{conn: conn}, nil
}

// Close waits for acquired connections to be released and closes the pool
func (db *Database) Close() {
	db.pool.Close()
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerscope/explorer-analytics/internal/config"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/rs/zerolog/log"
)

type Service struct {
	cfg *config.Config
	db  db.DbInterface
	loc *time.Location
	now func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, used to pin "today" in tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(cfg *config.Config, db db.DbInterface, opts ...Option) *Service {
	s := &Service{
		cfg: cfg,
		db:  db,
		loc: cfg.Stats.Location(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports whether the ledger database is reachable
func (s *Service) Ping(ctx context.Context) *types.Error {
	if err := s.db.Ping(ctx); err != nil {
		return s.internalError(ctx, "ping", err)
	}
	return nil
}

// withConn runs f on a single pooled connection and always releases it
func (s *Service) withConn(ctx context.Context, f func(conn db.LedgerConn) error) error {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return f(conn)
}

func (s *Service) internalError(ctx context.Context, operation string, err error) *types.Error {
	log.Ctx(ctx).Error().
		Err(err).
		Str("operation", operation).
		Bool("connection_error", db.IsConnectionError(err)).
		Msg("Failed to read ledger")

	return types.NewInternalServiceError(fmt.Errorf("failed to compute %s: %w", operation, err))
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerscope/explorer-analytics/internal/observability/metrics"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/ledgerscope/explorer-analytics/internal/utils/poller"
	"github.com/ledgerscope/explorer-analytics/pkg"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const recentAddressWindow = 24 * time.Hour

// StartStatsPoller periodically publishes ledger snapshots as gauges.
// Responses are never served from these values.
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		"stats",
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.refreshLedgerGauges),
	)
	go statsPoller.Start(ctx)
}

// refreshLedgerGauges computes every snapshot concurrently, each on its own
// pooled connection. Gauges are only updated when all of them succeed.
func (s *Service) refreshLedgerGauges(ctx context.Context) error {
	var (
		statistics   *types.StatisticsSnapshot
		distribution *types.DistributionSnapshot
		recent       *types.AddressCountResult
	)

	now := s.now()
	recentWindow := types.TimeWindow{
		Start: pkg.Ptr(now.Add(-recentAddressWindow).Unix()),
		End:   pkg.Ptr(now.Unix()),
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err *types.Error
		statistics, err = s.GetStatistics(ctx)
		return asError(err)
	})
	p.Go(func(ctx context.Context) error {
		var err *types.Error
		distribution, err = s.GetDistribution(ctx)
		return asError(err)
	})
	p.Go(func(ctx context.Context) error {
		var err *types.Error
		recent, err = s.GetAddressCount(ctx, recentWindow)
		return asError(err)
	})
	if err := p.Wait(); err != nil {
		return fmt.Errorf("failed to refresh ledger gauges: %w", err)
	}

	metrics.RecordStatistics(statistics.TotalTransactions, statistics.ActiveAddresses, statistics.DailyTransactions)
	metrics.RecordDistribution(distribution.Transparent, distribution.Privacy, distribution.Prism, distribution.EvmCompatible)
	metrics.RecordRecentAddressCount(recent.AddressCount)

	log.Ctx(ctx).Debug().
		Int64("total_txs", statistics.TotalTransactions).
		Int64("recent_addresses", recent.AddressCount).
		Msg("Updated ledger gauges")

	return nil
}

// asError keeps a nil *types.Error from becoming a non-nil error interface
func asError(err *types.Error) error {
	if err == nil {
		return nil
	}
	return err
}

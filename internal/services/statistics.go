package services

import (
	"context"

	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/rs/zerolog/log"
)

// GetStatistics reads total transactions, distinct native addresses and the
// number of transactions since local midnight. "Today" is resolved once per
// call in the configured time zone.
func (s *Service) GetStatistics(ctx context.Context) (*types.StatisticsSnapshot, *types.Error) {
	dayStart := startOfDay(s.now(), s.loc)

	var snapshot types.StatisticsSnapshot
	err := s.withConn(ctx, func(conn db.LedgerConn) error {
		var err error
		if snapshot.TotalTransactions, err = conn.CountTransactions(ctx); err != nil {
			return err
		}
		if snapshot.ActiveAddresses, err = conn.CountDistinctNativeAddresses(ctx, types.TimeWindow{}); err != nil {
			return err
		}
		if snapshot.DailyTransactions, err = conn.CountTransactionsSince(ctx, dayStart.Unix()); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.internalError(ctx, "statistics", err)
	}

	log.Ctx(ctx).Debug().
		Int64("total_txs", snapshot.TotalTransactions).
		Int64("active_addrs", snapshot.ActiveAddresses).
		Int64("daily_txs", snapshot.DailyTransactions).
		Time("day_start", dayStart).
		Msg("Computed ledger statistics")

	return &snapshot, nil
}

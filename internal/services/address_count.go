package services

import (
	"context"

	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

// GetAddressCount sums distinct native addresses and distinct evm senders
// seen strictly inside window. Addresses are not reconciled across chains.
// An empty or inverted window simply matches nothing.
func (s *Service) GetAddressCount(ctx context.Context, window types.TimeWindow) (*types.AddressCountResult, *types.Error) {
	var native, evm int64
	err := s.withConn(ctx, func(conn db.LedgerConn) error {
		var err error
		if native, err = conn.CountDistinctNativeAddresses(ctx, window); err != nil {
			return err
		}
		if evm, err = conn.CountDistinctEvmSenders(ctx, window); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.internalError(ctx, "address count", err)
	}

	return &types.AddressCountResult{AddressCount: native + evm}, nil
}

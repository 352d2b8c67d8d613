package services

import (
	"context"

	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/rs/zerolog/log"
)

// distributionCounts are the independent scalars the distribution is folded from
type distributionCounts struct {
	native     int64
	hideEither int64
	hideBoth   int64
	evm        int64
	n2e        int64
	e2n        int64
}

// snapshot folds the counts into categories.
// hideBoth is a subset of hideEither, so transactions concealing both fields
// are counted twice in privacy and transparent shrinks accordingly.
// This matches what the explorer has always reported; see DESIGN.md.
func (c distributionCounts) snapshot() *types.DistributionSnapshot {
	privacy := c.hideEither + c.hideBoth

	return &types.DistributionSnapshot{
		Transparent:   c.native - privacy,
		Privacy:       privacy,
		Prism:         c.n2e + c.e2n,
		EvmCompatible: c.evm,
	}
}

// GetDistribution splits ledger activity into transparent, privacy, prism
// (bridge) and evm compatible transactions.
func (s *Service) GetDistribution(ctx context.Context) (*types.DistributionSnapshot, *types.Error) {
	var counts distributionCounts
	err := s.withConn(ctx, func(conn db.LedgerConn) error {
		var err error
		if counts.native, err = conn.CountNativeTxs(ctx); err != nil {
			return err
		}
		if counts.hideEither, err = conn.CountConcealedNativeTxs(ctx, classifier.HideEither); err != nil {
			return err
		}
		if counts.hideBoth, err = conn.CountConcealedNativeTxs(ctx, classifier.HideBoth); err != nil {
			return err
		}
		if counts.evm, err = conn.CountEvmTxs(ctx); err != nil {
			return err
		}
		if counts.n2e, err = conn.CountBridgeEvents(ctx, model.NativeToEvm); err != nil {
			return err
		}
		if counts.e2n, err = conn.CountBridgeEvents(ctx, model.EvmToNative); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.internalError(ctx, "distribution", err)
	}

	snapshot := counts.snapshot()
	if counts.hideBoth > 0 {
		log.Ctx(ctx).Debug().
			Int64("hide_either", counts.hideEither).
			Int64("hide_both", counts.hideBoth).
			Msg("Privacy count includes transactions concealing both fields twice")
	}

	return snapshot, nil
}

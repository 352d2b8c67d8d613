package db

import (
	"context"
	"time"

	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/observability/metrics"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) Acquire(ctx context.Context) (result LedgerConn, err error) {
	//nolint:errcheck
	run("Acquire", func() error {
		result, err = d.db.Acquire(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &connWithMetrics{conn: result}, nil
}

type connWithMetrics struct {
	conn LedgerConn
}

func (c *connWithMetrics) CountTransactions(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	run("CountTransactions", func() error {
		result, err = c.conn.CountTransactions(ctx)
		return err
	})
	return
}

func (c *connWithMetrics) CountTransactionsSince(ctx context.Context, since int64) (result int64, err error) {
	//nolint:errcheck
	run("CountTransactionsSince", func() error {
		result, err = c.conn.CountTransactionsSince(ctx, since)
		return err
	})
	return
}

func (c *connWithMetrics) CountNativeTxs(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	run("CountNativeTxs", func() error {
		result, err = c.conn.CountNativeTxs(ctx)
		return err
	})
	return
}

func (c *connWithMetrics) CountConcealedNativeTxs(ctx context.Context, match classifier.Match) (result int64, err error) {
	//nolint:errcheck
	run("CountConcealedNativeTxs", func() error {
		result, err = c.conn.CountConcealedNativeTxs(ctx, match)
		return err
	})
	return
}

func (c *connWithMetrics) CountDistinctNativeAddresses(ctx context.Context, window types.TimeWindow) (result int64, err error) {
	//nolint:errcheck
	run("CountDistinctNativeAddresses", func() error {
		result, err = c.conn.CountDistinctNativeAddresses(ctx, window)
		return err
	})
	return
}

func (c *connWithMetrics) CountEvmTxs(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	run("CountEvmTxs", func() error {
		result, err = c.conn.CountEvmTxs(ctx)
		return err
	})
	return
}

func (c *connWithMetrics) CountDistinctEvmSenders(ctx context.Context, window types.TimeWindow) (result int64, err error) {
	//nolint:errcheck
	run("CountDistinctEvmSenders", func() error {
		result, err = c.conn.CountDistinctEvmSenders(ctx, window)
		return err
	})
	return
}

func (c *connWithMetrics) CountBridgeEvents(ctx context.Context, direction model.BridgeDirection) (result int64, err error) {
	//nolint:errcheck
	run("CountBridgeEvents", func() error {
		result, err = c.conn.CountBridgeEvents(ctx, direction)
		return err
	})
	return
}

func (c *connWithMetrics) Release() {
	c.conn.Release()
}

// run is private function that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}

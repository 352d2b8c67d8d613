package db

import (
	"context"

	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error
	// Acquire takes a dedicated connection from the pool. The caller must
	// Release it once the unit of work is done, including on failure.
	Acquire(ctx context.Context) (LedgerConn, error)
}

//go:generate mockery --name=LedgerConn --output=../../tests/mocks --outpkg=mocks --filename=mock_ledger_conn.go

// LedgerConn runs read only aggregate queries on one pooled connection.
// Every method returns a single scalar and must not be called concurrently.
type LedgerConn interface {
	// CountTransactions counts every row of the ledger transaction table.
	CountTransactions(ctx context.Context) (int64, error)
	// CountTransactionsSince counts transaction rows with timestamp >= since.
	CountTransactionsSince(ctx context.Context, since int64) (int64, error)
	// CountNativeTxs counts every native transaction.
	CountNativeTxs(ctx context.Context) (int64, error)
	// CountConcealedNativeTxs counts native transactions whose content
	// satisfies the given concealment match.
	CountConcealedNativeTxs(ctx context.Context, match classifier.Match) (int64, error)
	// CountDistinctNativeAddresses counts distinct native addresses inside window.
	CountDistinctNativeAddresses(ctx context.Context, window types.TimeWindow) (int64, error)
	// CountEvmTxs counts every evm transaction.
	CountEvmTxs(ctx context.Context) (int64, error)
	// CountDistinctEvmSenders counts distinct evm senders inside window.
	CountDistinctEvmSenders(ctx context.Context, window types.TimeWindow) (int64, error)
	// CountBridgeEvents counts prism bridge events of one direction.
	CountBridgeEvents(ctx context.Context, direction model.BridgeDirection) (int64, error)
	// Release hands the connection back to the pool.
	Release()
}

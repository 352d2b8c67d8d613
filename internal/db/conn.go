package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

// Conn is a pooled connection. It is not safe for concurrent use.
type Conn struct {
	conn *pgxpool.Conn
}

func (c *Conn) CountTransactions(ctx context.Context) (int64, error) {
	return c.scalar(ctx, countAllQuery("transactions", model.TransactionTable))
}

func (c *Conn) CountTransactionsSince(ctx context.Context, since int64) (int64, error) {
	return c.scalar(ctx, transactionsSinceQuery(since))
}

func (c *Conn) CountNativeTxs(ctx context.Context) (int64, error) {
	return c.scalar(ctx, countAllQuery("native_txs", model.NativeTxTable))
}

func (c *Conn) CountConcealedNativeTxs(ctx context.Context, match classifier.Match) (int64, error) {
	q, err := concealedNativeTxsQuery(match)
	if err != nil {
		return 0, &QueryError{Query: "native_txs_concealed", Err: err}
	}
	return c.scalar(ctx, q)
}

func (c *Conn) CountDistinctNativeAddresses(ctx context.Context, window types.TimeWindow) (int64, error) {
	return c.scalar(ctx, distinctInWindowQuery(
		"native_addresses", model.NativeTxTable, model.NativeAddressColumn, window,
	))
}

func (c *Conn) CountEvmTxs(ctx context.Context) (int64, error) {
	return c.scalar(ctx, countAllQuery("evm_txs", model.EvmTxTable))
}

func (c *Conn) CountDistinctEvmSenders(ctx context.Context, window types.TimeWindow) (int64, error) {
	return c.scalar(ctx, distinctInWindowQuery(
		"evm_senders", model.EvmTxTable, model.EvmSenderColumn, window,
	))
}

func (c *Conn) CountBridgeEvents(ctx context.Context, direction model.BridgeDirection) (int64, error) {
	table, err := direction.Table()
	if err != nil {
		return 0, &QueryError{Query: "bridge_events", Err: err}
	}
	return c.scalar(ctx, countAllQuery("bridge_"+direction.String(), table))
}

func (c *Conn) Release() {
	c.conn.Release()
}

// scalar runs an aggregate returning exactly one row with one bigint column
func (c *Conn) scalar(ctx context.Context, q query) (int64, error) {
	var cnt int64
	if err := c.conn.QueryRow(ctx, q.sql, q.args...).Scan(&cnt); err != nil {
		return 0, &QueryError{Query: q.name, Err: err}
	}
	return cnt, nil
}

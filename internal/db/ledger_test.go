//go:build integration

package db_test

import (
	"testing"

	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/ledgerscope/explorer-analytics/pkg"
	"github.com/ledgerscope/explorer-analytics/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acquire(t *testing.T) db.LedgerConn {
	conn, err := testDB.Acquire(t.Context())
	require.NoError(t, err)
	t.Cleanup(conn.Release)
	return conn
}

func TestLedgerCounts(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("empty ledger", func(t *testing.T) {
		resetDatabase(t)
		conn := acquire(t)

		counts := []func() (int64, error){
			func() (int64, error) { return conn.CountTransactions(ctx) },
			func() (int64, error) { return conn.CountTransactionsSince(ctx, 0) },
			func() (int64, error) { return conn.CountNativeTxs(ctx) },
			func() (int64, error) { return conn.CountConcealedNativeTxs(ctx, classifier.HideEither) },
			func() (int64, error) { return conn.CountConcealedNativeTxs(ctx, classifier.HideBoth) },
			func() (int64, error) { return conn.CountDistinctNativeAddresses(ctx, types.TimeWindow{}) },
			func() (int64, error) { return conn.CountEvmTxs(ctx) },
			func() (int64, error) { return conn.CountDistinctEvmSenders(ctx, types.TimeWindow{}) },
			func() (int64, error) { return conn.CountBridgeEvents(ctx, model.NativeToEvm) },
			func() (int64, error) { return conn.CountBridgeEvents(ctx, model.EvmToNative) },
		}
		for _, count := range counts {
			cnt, err := count()
			require.NoError(t, err)
			assert.Zero(t, cnt)
		}
	})

	t.Run("transactions since", func(t *testing.T) {
		resetDatabase(t)
		insertTransaction(t, "a", 99)
		insertTransaction(t, "b", 100)
		insertTransaction(t, "c", 101)
		conn := acquire(t)

		total, err := conn.CountTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		// lower bound of the daily count is inclusive
		since, err := conn.CountTransactionsSince(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(2), since)
	})

	t.Run("concealment matches the in process classifier", func(t *testing.T) {
		resetDatabase(t)

		fixtures := [][]testutil.Output{
			{{}},
			{{}, {}},
			{{HideAssetType: true}},
			{{HideAmount: true}, {}},
			{{HideAssetType: true, HideAmount: true}},
			{{HideAssetType: true}, {HideAmount: true}},
		}
		var either, both int64
		for _, outputs := range fixtures {
			doc := testutil.RandomNativeTx(t, 1000, outputs...)
			insertNativeTx(t, doc)

			c, err := classifier.Classify(ctx, doc.Content)
			require.NoError(t, err)
			if c.Matches(classifier.HideEither) {
				either++
			}
			if c.Matches(classifier.HideBoth) {
				both++
			}
		}
		// non transfer content never matches
		insertNativeTx(t, model.NativeTxDocument{
			TxHash: "define", Address: "fra1define", Timestamp: 1000,
			Content: []byte(`{"DefineAsset":{"body":{}}}`),
		})

		conn := acquire(t)

		cnt, err := conn.CountNativeTxs(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(fixtures)+1), cnt)

		cnt, err = conn.CountConcealedNativeTxs(ctx, classifier.HideEither)
		require.NoError(t, err)
		assert.Equal(t, int64(4), cnt)
		assert.Equal(t, either, cnt)

		cnt, err = conn.CountConcealedNativeTxs(ctx, classifier.HideBoth)
		require.NoError(t, err)
		assert.Equal(t, int64(2), cnt)
		assert.Equal(t, both, cnt)
	})

	t.Run("bridge events", func(t *testing.T) {
		resetDatabase(t)
		insertBridgeEvent(t, model.NativeToEvm, "n1", 1)
		insertBridgeEvent(t, model.NativeToEvm, "n2", 2)
		insertBridgeEvent(t, model.EvmToNative, "e1", 3)
		conn := acquire(t)

		cnt, err := conn.CountBridgeEvents(ctx, model.NativeToEvm)
		require.NoError(t, err)
		assert.Equal(t, int64(2), cnt)

		cnt, err = conn.CountBridgeEvents(ctx, model.EvmToNative)
		require.NoError(t, err)
		assert.Equal(t, int64(1), cnt)

		_, err = conn.CountBridgeEvents(ctx, model.BridgeDirection("sideways"))
		require.Error(t, err)
		assert.True(t, db.IsQueryError(err))
	})
}

func TestDistinctAddressWindow(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})
	resetDatabase(t)

	// same native address twice, one address at each boundary
	insertNativeTx(t, model.NativeTxDocument{TxHash: "n1", Address: "fra1aaa", Timestamp: 100, Content: testutil.TransferContent()})
	insertNativeTx(t, model.NativeTxDocument{TxHash: "n2", Address: "fra1bbb", Timestamp: 150, Content: testutil.TransferContent()})
	insertNativeTx(t, model.NativeTxDocument{TxHash: "n3", Address: "fra1bbb", Timestamp: 160, Content: testutil.TransferContent()})
	insertNativeTx(t, model.NativeTxDocument{TxHash: "n4", Address: "fra1ccc", Timestamp: 200, Content: testutil.TransferContent()})
	insertEvmTx(t, model.EvmTxDocument{TxHash: "e1", Sender: "0xaaa", Timestamp: 100})
	insertEvmTx(t, model.EvmTxDocument{TxHash: "e2", Sender: "0xbbb", Timestamp: 150})
	insertEvmTx(t, model.EvmTxDocument{TxHash: "e3", Sender: "0xccc", Timestamp: 200})

	tests := []struct {
		name   string
		window types.TimeWindow
		native int64
		evm    int64
	}{
		{"unbounded", types.TimeWindow{}, 3, 3},
		{"start is exclusive", types.TimeWindow{Start: pkg.Ptr[int64](100)}, 2, 2},
		{"end is exclusive", types.TimeWindow{End: pkg.Ptr[int64](200)}, 2, 2},
		{"both bounds", types.TimeWindow{Start: pkg.Ptr[int64](100), End: pkg.Ptr[int64](200)}, 1, 1},
		{"empty interval", types.TimeWindow{Start: pkg.Ptr[int64](150), End: pkg.Ptr[int64](150)}, 0, 0},
		{"inverted interval", types.TimeWindow{Start: pkg.Ptr[int64](200), End: pkg.Ptr[int64](100)}, 0, 0},
	}

	conn := acquire(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native, err := conn.CountDistinctNativeAddresses(ctx, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.native, native)

			evm, err := conn.CountDistinctEvmSenders(ctx, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.evm, evm)
		})
	}
}

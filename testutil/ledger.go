package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

var _ db.DbInterface = (*MemoryLedger)(nil)

// MemoryLedger is an in memory stand in for the ledger database. It applies
// the concealment classifier and the open window semantics in process so
// service level tests can be written against row fixtures. Failure paths are
// tested with the mocks in tests/mocks.
type MemoryLedger struct {
	mu           sync.Mutex
	transactions []int64
	nativeTxs    []model.NativeTxDocument
	evmTxs       []model.EvmTxDocument
	bridge       map[model.BridgeDirection]int64
	acquired     int
	released     int
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bridge: make(map[model.BridgeDirection]int64),
	}
}

func (l *MemoryLedger) AddTransaction(timestamp int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, timestamp)
}

func (l *MemoryLedger) AddNativeTx(doc model.NativeTxDocument) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nativeTxs = append(l.nativeTxs, doc)
}

func (l *MemoryLedger) AddEvmTx(doc model.EvmTxDocument) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evmTxs = append(l.evmTxs, doc)
}

func (l *MemoryLedger) AddBridgeEvent(direction model.BridgeDirection) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bridge[direction]++
}

// Outstanding returns the number of acquired connections not released yet
func (l *MemoryLedger) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired - l.released
}

func (l *MemoryLedger) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (l *MemoryLedger) Acquire(ctx context.Context) (db.LedgerConn, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.ConnectionError{Err: err}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquired++

	return &memoryConn{ledger: l}, nil
}

type memoryConn struct {
	ledger   *MemoryLedger
	released bool
}

func (c *memoryConn) CountTransactions(ctx context.Context) (int64, error) {
	return c.count(ctx, "CountTransactions", func(l *MemoryLedger) (int64, error) {
		return int64(len(l.transactions)), nil
	})
}

func (c *memoryConn) CountTransactionsSince(ctx context.Context, since int64) (int64, error) {
	return c.count(ctx, "CountTransactionsSince", func(l *MemoryLedger) (int64, error) {
		var cnt int64
		for _, ts := range l.transactions {
			if ts >= since {
				cnt++
			}
		}
		return cnt, nil
	})
}

func (c *memoryConn) CountNativeTxs(ctx context.Context) (int64, error) {
	return c.count(ctx, "CountNativeTxs", func(l *MemoryLedger) (int64, error) {
		return int64(len(l.nativeTxs)), nil
	})
}

func (c *memoryConn) CountConcealedNativeTxs(ctx context.Context, match classifier.Match) (int64, error) {
	return c.count(ctx, "CountConcealedNativeTxs", func(l *MemoryLedger) (int64, error) {
		var cnt int64
		for _, tx := range l.nativeTxs {
			concealment, err := classifier.Classify(ctx, tx.Content)
			if err != nil {
				return 0, err
			}
			if concealment.Matches(match) {
				cnt++
			}
		}
		return cnt, nil
	})
}

func (c *memoryConn) CountDistinctNativeAddresses(ctx context.Context, window types.TimeWindow) (int64, error) {
	return c.count(ctx, "CountDistinctNativeAddresses", func(l *MemoryLedger) (int64, error) {
		seen := make(map[string]struct{})
		for _, tx := range l.nativeTxs {
			if window.Contains(tx.Timestamp) {
				seen[tx.Address] = struct{}{}
			}
		}
		return int64(len(seen)), nil
	})
}

func (c *memoryConn) CountEvmTxs(ctx context.Context) (int64, error) {
	return c.count(ctx, "CountEvmTxs", func(l *MemoryLedger) (int64, error) {
		return int64(len(l.evmTxs)), nil
	})
}

func (c *memoryConn) CountDistinctEvmSenders(ctx context.Context, window types.TimeWindow) (int64, error) {
	return c.count(ctx, "CountDistinctEvmSenders", func(l *MemoryLedger) (int64, error) {
		seen := make(map[string]struct{})
		for _, tx := range l.evmTxs {
			if window.Contains(tx.Timestamp) {
				seen[tx.Sender] = struct{}{}
			}
		}
		return int64(len(seen)), nil
	})
}

func (c *memoryConn) CountBridgeEvents(ctx context.Context, direction model.BridgeDirection) (int64, error) {
	return c.count(ctx, "CountBridgeEvents", func(l *MemoryLedger) (int64, error) {
		if _, err := direction.Table(); err != nil {
			return 0, err
		}
		return l.bridge[direction], nil
	})
}

func (c *memoryConn) Release() {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	if !c.released {
		c.released = true
		c.ledger.released++
	}
}

func (c *memoryConn) count(ctx context.Context, method string, f func(l *MemoryLedger) (int64, error)) (int64, error) {
	if c.released {
		panic(fmt.Sprintf("%s called on released connection", method))
	}
	if err := ctx.Err(); err != nil {
		return 0, &db.QueryError{Query: method, Err: err}
	}

	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()

	cnt, err := f(c.ledger)
	if err != nil {
		return 0, &db.QueryError{Query: method, Err: err}
	}
	return cnt, nil
}

package model

import "fmt"

// Ledger tables read by the analytics queries. The schema is owned by the
// explorer ingestion side, these names are a precondition.
const (
	TransactionTable    = "transaction"
	NativeTxTable       = "native_txs"
	EvmTxTable          = "evm_txs"
	NativeToEvmTable    = "n2e"
	EvmToNativeTable    = "e2n"
	TimestampColumn     = "timestamp"
	NativeAddressColumn = "address"
	EvmSenderColumn     = "sender"
)

// NativeTxDocument is a row of native_txs as far as analytics is concerned.
type NativeTxDocument struct {
	TxHash    string `db:"tx_id"`
	Address   string `db:"address"`
	Timestamp int64  `db:"timestamp"`
	Content   []byte `db:"content"`
}

// EvmTxDocument is a row of evm_txs as far as analytics is concerned.
type EvmTxDocument struct {
	TxHash    string `db:"tx_id"`
	Sender    string `db:"sender"`
	Timestamp int64  `db:"timestamp"`
}

// BridgeDirection identifies one of the two prism bridge event tables.
type BridgeDirection string

const (
	NativeToEvm BridgeDirection = "n2e"
	EvmToNative BridgeDirection = "e2n"
)

func (d BridgeDirection) String() string {
	return string(d)
}

// Table returns the ledger table holding events of this direction.
func (d BridgeDirection) Table() (string, error) {
	switch d {
	case NativeToEvm:
		return NativeToEvmTable, nil
	case EvmToNative:
		return EvmToNativeTable, nil
	default:
		return "", fmt.Errorf("unknown bridge direction %q", string(d))
	}
}

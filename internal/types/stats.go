package types

// StatisticsSnapshot is the network wide headline numbers.
// The three values are read independently and are not
// consistent with each other at a single point in time.
type StatisticsSnapshot struct {
	ActiveAddresses   int64 `json:"active_addrs"`
	TotalTransactions int64 `json:"total_txs"`
	DailyTransactions int64 `json:"daily_txs"`
}

// DistributionSnapshot splits ledger activity by transport/privacy category.
type DistributionSnapshot struct {
	Transparent   int64 `json:"transparent"`
	Privacy       int64 `json:"privacy"`
	Prism         int64 `json:"prism"`
	EvmCompatible int64 `json:"evm_compatible"`
}

// AddressCountResult is the sum of native and evm distinct addresses.
// An address active on both chains is counted twice.
type AddressCountResult struct {
	AddressCount int64 `json:"address_count"`
}

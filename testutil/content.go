package testutil

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/stretchr/testify/require"
)

// Output describes one transfer output of a native transaction fixture
type Output struct {
	HideAssetType bool
	HideAmount    bool
}

type field map[string]any

// TransferContent renders a TransferAsset content document with the given outputs
func TransferContent(outputs ...Output) []byte {
	list := make([]field, 0, len(outputs))
	for _, o := range outputs {
		assetType := field{"NonConfidential": []int{1, 2, 3, 4}}
		if o.HideAssetType {
			assetType = field{"Confidential": []int{9, 8, 7, 6}}
		}
		amount := field{"NonConfidential": "1000"}
		if o.HideAmount {
			amount = field{"Confidential": []string{"c2Vj", "cmV0"}}
		}
		list = append(list, field{
			"asset_type": assetType,
			"amount":     amount,
			"public_key": gofakeit.HexUint(256),
		})
	}

	doc := field{
		"TransferAsset": field{
			"body": field{
				"transfer": field{
					"inputs":  []field{},
					"outputs": list,
				},
			},
		},
	}

	bz, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return bz
}

// RandomNativeTx builds a native transaction fixture with random hash and address
func RandomNativeTx(t *testing.T, timestamp int64, outputs ...Output) model.NativeTxDocument {
	t.Helper()

	address, err := RandomNativeAddress()
	require.NoError(t, err)

	return model.NativeTxDocument{
		TxHash:    gofakeit.HexUint(256),
		Address:   address,
		Timestamp: timestamp,
		Content:   TransferContent(outputs...),
	}
}

// RandomEvmTx builds an evm transaction fixture with random hash and sender
func RandomEvmTx(t *testing.T, timestamp int64) model.EvmTxDocument {
	t.Helper()

	return model.EvmTxDocument{
		TxHash:    gofakeit.HexUint(256),
		Sender:    gofakeit.HexUint(160),
		Timestamp: timestamp,
	}
}

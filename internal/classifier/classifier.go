// Package classifier decides which privacy category a native ledger
// transaction belongs to, based on the transfer outputs in its content.
//
// The same jsonpath expressions are rendered into postgres predicates for
// the ledger queries and evaluated in process by Classify.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/theory/sqljson/path"
	"github.com/theory/sqljson/path/exec"
)

const (
	// ContentColumn is the jsonb column holding native transaction content
	ContentColumn = "content"

	ConfidentialAssetTypePath = "$.TransferAsset.body.transfer.outputs[*].asset_type.Confidential"
	ConfidentialAmountPath    = "$.TransferAsset.body.transfer.outputs[*].amount.Confidential"
)

// Match selects how the two concealment checks are combined.
type Match int

const (
	// HideEither matches when asset type or amount is concealed
	HideEither Match = iota
	// HideBoth matches when asset type and amount are concealed
	HideBoth
)

func (m Match) String() string {
	switch m {
	case HideEither:
		return "hide_either"
	case HideBoth:
		return "hide_both"
	default:
		return fmt.Sprintf("match(%d)", int(m))
	}
}

// Predicate renders the match as a SQL boolean expression over column.
// Both checks are evaluated over the whole output list independently,
// so HideBoth is satisfied by one output concealing the asset type and
// another one concealing the amount.
func (m Match) Predicate(column string) (string, error) {
	assetType := existsExpr(column, ConfidentialAssetTypePath)
	amount := existsExpr(column, ConfidentialAmountPath)

	switch m {
	case HideEither:
		return assetType + " OR " + amount, nil
	case HideBoth:
		return assetType + " AND " + amount, nil
	default:
		return "", fmt.Errorf("unknown concealment match %d", int(m))
	}
}

func existsExpr(column, path string) string {
	return fmt.Sprintf("(%s @? '%s')", column, path)
}

// Concealment is the classification of a single native transaction.
type Concealment struct {
	// AssetType is set when at least one output hides its asset type
	AssetType bool
	// Amount is set when at least one output hides its amount
	Amount bool
}

func (c Concealment) Matches(m Match) bool {
	switch m {
	case HideEither:
		return c.AssetType || c.Amount
	case HideBoth:
		return c.AssetType && c.Amount
	default:
		return false
	}
}

// The SQL predicates and Classify share the same jsonpath text, parsed once.
var (
	assetTypePath = path.MustParse(ConfidentialAssetTypePath)
	amountPath    = path.MustParse(ConfidentialAmountPath)
)

// Classify inspects the content document of a native transaction with the
// lax mode, error suppressing semantics of the postgres `@?` operator.
// Content that is not a transfer yields a zero Concealment.
func Classify(ctx context.Context, content []byte) (Concealment, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Concealment{}, nil
	}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return Concealment{}, fmt.Errorf("failed to decode transaction content: %w", err)
	}

	assetType, err := assetTypePath.Exists(ctx, doc, exec.WithSilent())
	if err != nil {
		return Concealment{}, fmt.Errorf("failed to evaluate %s: %w", ConfidentialAssetTypePath, err)
	}
	amount, err := amountPath.Exists(ctx, doc, exec.WithSilent())
	if err != nil {
		return Concealment{}, fmt.Errorf("failed to evaluate %s: %w", ConfidentialAmountPath, err)
	}

	return Concealment{AssetType: assetType, Amount: amount}, nil
}

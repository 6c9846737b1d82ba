package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvariantValidator checks escrow ledger invariants
type InvariantValidator struct {
	tracker *BalanceTracker
}

func NewInvariantValidator(tracker *BalanceTracker) *InvariantValidator {
	return &InvariantValidator{
		tracker: tracker,
	}
}

// ValidateBatchBalance verifies a batch is well-formed before applying.
func (v *InvariantValidator) ValidateBatchBalance(batch *Batch) error {
	return batch.Validate()
}

// ValidateCollateralEscrows checks every escrow for an asset is >= 0.
func (v *InvariantValidator) ValidateCollateralEscrows(asset string) error {
	return v.tracker.ValidateEscrowsNonNegative(asset)
}

// ValidateGlobalBalance verifies the ledger is zero-sum per asset.
func (v *InvariantValidator) ValidateGlobalBalance() error {
	totals := v.tracker.ComputeGlobalBalance()

	for asset, total := range totals {
		if !total.IsZero() {
			return fmt.Errorf("global balance for %s is non-zero: %s", asset, total)
		}
	}

	return nil
}

// ValidateVaultCoversPositions checks the vault escrow matches the total
// collateral recorded across a collateral's positions.
func (v *InvariantValidator) ValidateVaultCoversPositions(asset string, recordedTotal decimal.Decimal) error {
	vault := v.tracker.VaultBalance(asset)
	if vault.Cmp(recordedTotal) != 0 {
		return fmt.Errorf("vault for %s (%s) does not match recorded collateral (%s)",
			asset, vault, recordedTotal)
	}
	return nil
}

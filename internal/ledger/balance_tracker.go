package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceTracker maintains in-memory escrow balances
type BalanceTracker struct {
	balances map[AccountKey]decimal.Decimal
}

func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{
		balances: make(map[AccountKey]decimal.Decimal),
	}
}

// ApplyJournal applies a single journal entry to balances
func (bt *BalanceTracker) ApplyJournal(j Journal) {
	bt.balances[j.DebitAccount] = bt.balances[j.DebitAccount].Add(j.Amount)
	bt.balances[j.CreditAccount] = bt.balances[j.CreditAccount].Sub(j.Amount)
}

// ApplyBatch applies all journals in a batch
func (bt *BalanceTracker) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	for _, j := range batch.Journals {
		bt.ApplyJournal(j)
	}

	return nil
}

// GetBalance returns the current balance for an account
func (bt *BalanceTracker) GetBalance(key AccountKey) decimal.Decimal {
	return bt.balances[key]
}

// === Escrow queries ===

// VaultBalance returns the active collateral escrow for an asset.
func (bt *BalanceTracker) VaultBalance(asset string) decimal.Decimal {
	return bt.GetBalance(NewVaultKey(asset))
}

// LeftoversBalance returns the claimable-leftover escrow for an asset.
func (bt *BalanceTracker) LeftoversBalance(asset string) decimal.Decimal {
	return bt.GetBalance(NewLeftoversKey(asset))
}

// FeeEscrowBalance returns the uncharged-interest escrow for an asset.
func (bt *BalanceTracker) FeeEscrowBalance(asset string) decimal.Decimal {
	return bt.GetBalance(NewFeeEscrowKey(asset))
}

// HoldersSupply returns stablecoin held outside the protocol. The
// engine's circulating-supply counter additionally includes stablecoin
// escrowed as uncharged interest fees.
func (bt *BalanceTracker) HoldersSupply() decimal.Decimal {
	return bt.GetBalance(NewHoldersKey())
}

// === Invariant checks ===

// ValidateNonNegative checks that a specific account balance is >= 0.
// External boundary accounts are exempt: they go negative by construction
// as the zero-sum counterpart of escrowed funds.
func (bt *BalanceTracker) ValidateNonNegative(key AccountKey) error {
	balance := bt.GetBalance(key)
	if balance.IsNegative() {
		return fmt.Errorf("account %s has negative balance: %s", key.AccountPath(), balance)
	}
	return nil
}

// ValidateEscrowsNonNegative checks all escrows for an asset.
func (bt *BalanceTracker) ValidateEscrowsNonNegative(asset string) error {
	for _, key := range []AccountKey{NewVaultKey(asset), NewLeftoversKey(asset), NewFeeEscrowKey(asset)} {
		if err := bt.ValidateNonNegative(key); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSufficient checks an escrow can cover a withdrawal.
func (bt *BalanceTracker) ValidateSufficient(key AccountKey, required decimal.Decimal) error {
	balance := bt.GetBalance(key)
	if balance.Cmp(required) < 0 {
		return fmt.Errorf("insufficient balance in %s: have=%s, need=%s",
			key.AccountPath(), balance, required)
	}
	return nil
}

// ComputeGlobalBalance sums all account balances per asset (should be 0
// for a zero-sum ledger).
func (bt *BalanceTracker) ComputeGlobalBalance() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for key, balance := range bt.balances {
		totals[key.Asset] = totals[key.Asset].Add(balance)
	}

	return totals
}

// SetBalance overwrites one account balance; used when restoring from a
// snapshot.
func (bt *BalanceTracker) SetBalance(key AccountKey, balance decimal.Decimal) {
	bt.balances[key] = balance
}

// Snapshot returns a copy of all balances (for state hashing)
func (bt *BalanceTracker) Snapshot() map[AccountKey]decimal.Decimal {
	snapshot := make(map[AccountKey]decimal.Decimal, len(bt.balances))
	for k, v := range bt.balances {
		snapshot[k] = v
	}
	return snapshot
}

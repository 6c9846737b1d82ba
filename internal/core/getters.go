package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	fpmath "StableLedger/internal/math"
	"StableLedger/internal/state"
)

// TierInfo is a read-only view of one interest tier.
type TierInfo struct {
	RateWire         decimal.Decimal
	PoolDebt         decimal.Decimal
	RealDebt         decimal.Decimal
	DebtMultiplier   decimal.Decimal
	CollateralAmount decimal.Decimal
	RankedEntries    int64
}

// CollateralInfo is a read-only view of one collateral's registry record
// and escrow balances.
type CollateralInfo struct {
	Asset           string
	MCR             decimal.Decimal
	USDPrice        decimal.Decimal
	Accepted        bool
	TotalDebt       decimal.Decimal
	TotalCollateral decimal.Decimal
	VaultBalance    decimal.Decimal
	Leftovers       decimal.Decimal
	FeeEscrow       decimal.Decimal
	Tiers           []TierInfo
}

// GetPosition returns a copy of one position.
func (e *Engine) GetPosition(id uuid.UUID) (state.Position, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, err := e.position(id)
	if err != nil {
		return state.Position{}, err
	}
	return *p, nil
}

// RealDebtOf returns a position's current stablecoin-denominated debt.
func (e *Engine) RealDebtOf(id uuid.UUID) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, err := e.position(id)
	if err != nil {
		return decimal.Zero, err
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return decimal.Zero, err
	}
	return c.PoolToReal(p.Rate, p.PoolDebt), nil
}

// ListPositions returns copies of every position, optionally filtered by
// collateral. Ordered by id.
func (e *Engine) ListPositions(asset string) []state.Position {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []state.Position
	for _, p := range e.positions.All() {
		if asset != "" && p.Collateral != asset {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// GetCollateralInfo returns a view of one collateral.
func (e *Engine) GetCollateralInfo(asset string) (CollateralInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return CollateralInfo{}, err
	}

	info := CollateralInfo{
		Asset:           c.Asset,
		MCR:             c.MCR,
		USDPrice:        c.USDPrice,
		Accepted:        c.Accepted,
		TotalDebt:       c.TotalDebt,
		TotalCollateral: c.TotalCollateral,
		VaultBalance:    e.vaults.VaultBalance(asset),
		Leftovers:       e.vaults.LeftoversBalance(asset),
		FeeEscrow:       e.vaults.FeeEscrowBalance(asset),
	}
	for _, t := range c.Tiers.All() {
		info.Tiers = append(info.Tiers, TierInfo{
			RateWire:         t.Rate.Wire(),
			PoolDebt:         t.PoolDebt,
			RealDebt:         t.RealDebt,
			DebtMultiplier:   t.DebtMultiplier(),
			CollateralAmount: t.CollateralAmount,
			RankedEntries:    t.RankedEntries,
		})
	}
	return info, nil
}

// ListCollaterals returns views of every collateral, ordered by asset.
func (e *Engine) ListCollaterals() []CollateralInfo {
	e.mu.RLock()
	assets := make([]string, 0, e.collaterals.Len())
	for _, c := range e.collaterals.All() {
		assets = append(assets, c.Asset)
	}
	e.mu.RUnlock()

	out := make([]CollateralInfo, 0, len(assets))
	for _, asset := range assets {
		if info, err := e.GetCollateralInfo(asset); err == nil {
			out = append(out, info)
		}
	}
	return out
}

// GetBorrower returns a copy of one privileged borrower record.
func (e *Engine) GetBorrower(id uuid.UUID) (state.PrivilegedBorrower, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.borrowers.Get(id)
	if !ok {
		return state.PrivilegedBorrower{}, fmt.Errorf("%w: unknown borrower %s", ErrState, id)
	}
	out := *b
	out.CoupledPositions = append([]uuid.UUID(nil), b.CoupledPositions...)
	return out, nil
}

// LowestInterestRate returns the lowest active ordinary rate for one
// collateral, zero when no ordinary tier exists.
func (e *Engine) LowestInterestRate(asset string) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Tiers.LowestOrdinary(), nil
}

// RedemptionFeeQuote returns the fee fraction a redemption of the given
// payment would be charged right now, without touching the fee state.
func (e *Engine) RedemptionFeeQuote(payment decimal.Decimal) decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	now := e.now()
	decayedBase := e.redemptionBaseRate.Mul(
		fpmath.DecayFactor(e.params.RedemptionHalflifeK, int64(now.Sub(e.lastRedemption).Seconds())))
	spike := decimal.Zero
	if e.circulating.IsPositive() {
		spike = e.params.RedemptionSpikeK.Mul(payment).Div(e.circulating)
	}

	fee := decayedBase.Add(spike.Div(decimal.NewFromInt(2))).Add(e.params.MinimumRedemptionFee)
	if fee.Cmp(e.params.MaximumRedemptionFee) > 0 {
		fee = e.params.MaximumRedemptionFee
	}
	return fee
}

// MarkedDeadline returns the liquidation-notice deadline recorded for a
// position. marked is false when no notice is pending.
func (e *Engine) MarkedDeadline(id uuid.UUID) (deadline time.Time, marked bool, err error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, err := e.position(id)
	if err != nil {
		return time.Time{}, false, err
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return time.Time{}, false, err
	}
	deadline, marked = c.MarkedDeadlines[p.ID]
	return deadline, marked, nil
}

// RatioBucketView is a copied slice of the ratio index: one exact ratio
// and the position ids parked at it, in insertion order.
type RatioBucketView struct {
	Ratio decimal.Decimal
	IDs   []uuid.UUID
}

// RatioBuckets returns one tier's ratio buckets with ratio in [from, to),
// ascending. A nil to means unbounded above.
func (e *Engine) RatioBuckets(asset string, rateWire, from decimal.Decimal, to *decimal.Decimal) ([]RatioBucketView, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return nil, err
	}

	buckets := c.Ratios.Buckets(state.RateFromWire(rateWire), from, to)
	out := make([]RatioBucketView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, RatioBucketView{
			Ratio: b.Ratio,
			IDs:   append([]uuid.UUID(nil), b.IDs...),
		})
	}
	return out, nil
}

// Sequence returns the last assigned event sequence number.
func (e *Engine) Sequence() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sequence
}

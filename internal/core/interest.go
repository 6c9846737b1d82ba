package core

import (
	"fmt"

	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	fpmath "StableLedger/internal/math"
	"StableLedger/internal/state"
)

// InterestResult reports one accrual pass.
type InterestResult struct {
	// Minted is the freshly accrued interest paid to the caller, plus the
	// drained upfront-fee escrow.
	Minted decimal.Decimal
	// LowestRate is the lowest active ordinary rate after the pass.
	LowestRate decimal.Decimal
}

// ChargeInterest accrues interest on every tier of one collateral whose
// wire rate lies in [rateStart, rateEnd). Real debt compounds since the
// tier's last charge while pool debt stays fixed, which raises the debt
// multiplier and with it every position's real debt. The accrued amount
// is minted to the caller together with the collateral's upfront-fee
// escrow. The privileged tier compounds at substituteRate.
func (e *Engine) ChargeInterest(ref, asset string, rateStart, rateEnd, substituteRate decimal.Decimal) (InterestResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	c, err := e.collateral(asset)
	if err != nil {
		return InterestResult{}, err
	}
	if rateEnd.Cmp(rateStart) <= 0 {
		return InterestResult{}, fmt.Errorf("%w: empty rate range [%s, %s)", ErrValidation, rateStart, rateEnd)
	}
	if substituteRate.IsNegative() {
		return InterestResult{}, fmt.Errorf("%w: substitute rate must be >= 0", ErrValidation)
	}

	accrued := decimal.Zero
	c.Tiers.Ascend(rateStart, rateEnd, func(t *state.InterestTier) bool {
		seconds := int64(now.Sub(t.LastCharge).Seconds())
		if seconds <= 0 || !t.RealDebt.IsPositive() {
			t.LastCharge = now
			return true
		}

		rate := t.Rate.Value()
		if t.Rate.IsPrivileged() {
			rate = substituteRate
		}

		factor := fpmath.CompoundFactor(rate, seconds)
		newReal := t.RealDebt.Mul(factor)
		delta := newReal.Sub(t.RealDebt)

		t.RealDebt = newReal
		t.LastCharge = now
		c.TotalDebt = c.TotalDebt.Add(delta)
		e.circulating = e.circulating.Add(delta)
		accrued = accrued.Add(delta)
		return true
	})

	escrowed := e.vaults.FeeEscrowBalance(asset)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Mint(batch, accrued)
	e.journal.FeeDistribution(batch, asset, escrowed)

	lowest := c.Tiers.LowestOrdinary()
	minted := accrued.Add(escrowed)

	e.logger.Info().
		Str("collateral", asset).
		Str("accrued", accrued.String()).
		Str("escrow_drained", escrowed.String()).
		Msg("interest charged")

	e.emit(&event.InterestCharged{
		Collateral:    asset,
		RateStartWire: rateStart,
		RateEndWire:   rateEnd,
		Minted:        minted,
		LowestRate:    lowest,
		Timestamp:     now,
	}, ref, now, batch)

	return InterestResult{Minted: minted, LowestRate: lowest}, nil
}

// FreeMint issues stablecoin backed by nothing in the position ledgers,
// for flash-liquidity style integrations that must return the supply
// within the same flow.
func (e *Engine) FreeMint(ref string, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	e.circulating = e.circulating.Add(amount)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Mint(batch, amount)

	e.emit(&event.SupplyMinted{Amount: amount, Timestamp: now}, ref, now, batch)
	return nil
}

// BurnSupply retires free-floating stablecoin from circulation.
func (e *Engine) BurnSupply(ref string, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if amount.Cmp(e.circulating) > 0 {
		return fmt.Errorf("%w: burn %s exceeds circulating %s", ErrInsufficientFunds, amount, e.circulating)
	}

	e.circulating = e.circulating.Sub(amount)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, amount)

	e.emit(&event.SupplyBurned{Amount: amount, Timestamp: now}, ref, now, batch)
	return nil
}

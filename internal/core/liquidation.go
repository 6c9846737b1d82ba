package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	"StableLedger/internal/state"
)

// LiquidationResult reports what a liquidation call did. When the target
// had a notice period, Marked is true and the payment is returned whole.
type LiquidationResult struct {
	Marked   bool
	Deadline time.Time
	Payout   decimal.Decimal
	Change   decimal.Decimal
}

// LiquidateParams describes one liquidation attempt. PriceOverride
// values the collateral at a caller-supplied price for this call only,
// without touching the stored oracle price.
type LiquidateParams struct {
	Ref           string
	PositionID    uuid.UUID
	Payment       decimal.Decimal
	PriceOverride *decimal.Decimal
}

// Liquidate seizes an undercollateralized position. The payment must
// cover the full real debt; the liquidator receives collateral worth the
// debt plus the liquidation fine, capped at the position's collateral.
// A position whose borrower demands a liquidation notice is marked with
// a deadline on the first call instead, with the notice fee borrowed
// against the position and paid to the caller.
func (e *Engine) Liquidate(lp LiquidateParams) (LiquidationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	ref, positionID, payment := lp.Ref, lp.PositionID, lp.Payment

	if e.params.StopLiquidations {
		return LiquidationResult{}, fmt.Errorf("%w: liquidations stopped", ErrPaused)
	}
	p, err := e.position(positionID)
	if err != nil {
		return LiquidationResult{}, err
	}
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return LiquidationResult{}, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return LiquidationResult{}, err
	}

	price := c.USDPrice
	if lp.PriceOverride != nil {
		if !lp.PriceOverride.IsPositive() {
			return LiquidationResult{}, fmt.Errorf("%w: price override must be positive", ErrValidation)
		}
		price = *lp.PriceOverride
	}

	multiplier := c.DebtMultiplier(p.Rate)
	value := price.Mul(p.CollateralAmount)
	required := p.PoolDebt.Mul(multiplier).Mul(c.MCR)
	if value.Cmp(required) >= 0 {
		// Solvent again; a stale mark is cleared rather than acted on.
		e.unmarkIfMarked(c, p)
		return LiquidationResult{}, fmt.Errorf("%w: position %s is solvent", ErrState, p.ID)
	}

	if p.Status == state.StatusMarked {
		deadline := c.MarkedDeadlines[p.ID]
		if now.Before(deadline) {
			return LiquidationResult{}, fmt.Errorf("%w: notice period for %s runs until %s", ErrState, p.ID, deadline)
		}
	} else if notice := e.noticePeriod(p); notice != nil {
		return e.markForLiquidation(ref, c, p, payment, *notice, now)
	}

	realDebt := c.PoolToReal(p.Rate, p.PoolDebt)
	if payment.Cmp(realDebt) < 0 {
		return LiquidationResult{}, fmt.Errorf("%w: payment %s below debt %s", ErrInsufficientFunds, payment, realDebt)
	}
	change := payment.Sub(realDebt)

	// crPercentage is the position's collateralization relative to exactly
	// covering its debt: ratio * price / multiplier.
	crPercentage := p.Ratio.Mul(price).Div(multiplier)
	payout := p.CollateralAmount.Div(crPercentage).
		Mul(decimal.NewFromInt(1).Add(e.params.LiquidationFine))
	if payout.Cmp(p.CollateralAmount) > 0 {
		payout = p.CollateralAmount
	}
	leftover := p.CollateralAmount.Sub(payout)

	if _, err := e.tierBurn(c, p.Rate, realDebt); err != nil {
		return LiquidationResult{}, err
	}
	e.removeRatio(c, p)
	if err := e.takeCollateral(c, p.Rate, p.CollateralAmount); err != nil {
		return LiquidationResult{}, err
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, realDebt)
	e.journal.LiquidationPayout(batch, c.Asset, payout)
	e.journal.LeftoverTransfer(batch, c.Asset, leftover)

	delete(c.MarkedDeadlines, p.ID)
	if p.Borrower != nil {
		e.borrowers.Unlink(*p.Borrower, p.ID)
		p.Borrower = nil
	}

	rate := p.Rate
	p.Status = state.StatusLiquidated
	p.CollateralAmount = leftover
	p.PoolDebt = decimal.Zero
	p.Ratio = decimal.Zero
	p.Version++

	e.cleanupTier(c, rate)

	if e.metrics != nil {
		e.metrics.Liquidations.WithLabelValues(c.Asset).Inc()
	}
	e.logger.Info().
		Str("position", p.ID.String()).
		Str("debt", realDebt.String()).
		Str("payout", payout.String()).
		Msg("position liquidated")

	e.emit(&event.PositionLiquidated{
		PositionID:  p.ID,
		Collateral:  c.Asset,
		DebtCovered: realDebt,
		Payout:      payout,
		Leftover:    leftover,
		Timestamp:   now,
	}, ref, now, batch)

	return LiquidationResult{Payout: payout, Change: change}, nil
}

// noticePeriod returns the liquidation notice the position's borrower
// demands, or nil when liquidation may proceed immediately.
func (e *Engine) noticePeriod(p *state.Position) *time.Duration {
	if p.Borrower == nil {
		return nil
	}
	b, ok := e.borrowers.Get(*p.Borrower)
	if !ok {
		return nil
	}
	return b.LiquidationNotice
}

// markForLiquidation starts a notice period: the deadline is recorded,
// the notice fee is borrowed against the position and minted to the
// caller, and the payment is returned untouched.
func (e *Engine) markForLiquidation(ref string, c *state.Collateral, p *state.Position, payment decimal.Decimal, notice time.Duration, now time.Time) (LiquidationResult, error) {
	fee := e.params.LiquidationNoticeFee
	feePool := fee.Div(c.DebtMultiplier(p.Rate))
	newPoolDebt := p.PoolDebt.Add(feePool)
	newRatio := p.CollateralAmount.Div(newPoolDebt)

	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return LiquidationResult{}, err
	}
	minted := e.tierMint(c, p.Rate, feePool, now)
	p.PoolDebt = newPoolDebt
	p.Status = state.StatusMarked
	p.Version++

	deadline := now.Add(notice)
	c.MarkedDeadlines[p.ID] = deadline

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Mint(batch, minted)

	e.logger.Info().
		Str("position", p.ID.String()).
		Time("deadline", deadline).
		Msg("position marked for liquidation")

	e.emit(&event.PositionMarked{
		PositionID: p.ID,
		Collateral: c.Asset,
		Deadline:   deadline,
		NoticeFee:  minted,
		Timestamp:  now,
	}, ref, now, batch)

	return LiquidationResult{Marked: true, Deadline: deadline, Change: payment}, nil
}

// CheckLiquidate re-evaluates a position against the current price.
// A marked position that recovered is unmarked; the return value reports
// whether a liquidation call would proceed right now.
func (e *Engine) CheckLiquidate(ref string, positionID uuid.UUID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return false, err
	}
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return false, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return false, err
	}

	value := c.USDPrice.Mul(p.CollateralAmount)
	required := p.PoolDebt.Mul(c.DebtMultiplier(p.Rate)).Mul(c.MCR)
	if value.Cmp(required) >= 0 {
		if p.Status == state.StatusMarked {
			e.unmarkIfMarked(c, p)
			p.Version++
			e.emit(&event.PositionUnmarked{
				PositionID: p.ID,
				Collateral: c.Asset,
				Timestamp:  now,
			}, ref, now, nil)
		}
		return false, nil
	}

	if p.Status == state.StatusMarked {
		return !now.Before(c.MarkedDeadlines[p.ID]), nil
	}
	return e.noticePeriod(p) == nil, nil
}

// NextLiquidations returns up to limit positions currently below their
// liquidation threshold for one collateral, worst ratio first per tier.
func (e *Engine) NextLiquidations(asset string, limit int) ([]state.Position, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return nil, err
	}

	var out []state.Position
	for _, r := range c.Ratios.Rates() {
		threshold := c.LiquidationRatio(r)
		c.Ratios.Ascend(r, decimal.Zero, func(b *state.RatioBucket) bool {
			if b.Ratio.Cmp(threshold) >= 0 {
				return false
			}
			for _, id := range b.IDs {
				if len(out) >= limit {
					return false
				}
				if p, ok := e.positions.Get(id); ok {
					out = append(out, *p)
				}
			}
			return len(out) < limit
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

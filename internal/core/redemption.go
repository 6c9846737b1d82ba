package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	fpmath "StableLedger/internal/math"
	"StableLedger/internal/state"
)

// RedeemParams describes one redemption call against a single collateral.
// FeeOverride bypasses the dynamic fee and leaves the base rate untouched;
// it exists for governance-driven settlements. PriceOverride values the
// collateral at a caller-supplied price for this call only, without
// touching the stored oracle price.
type RedeemParams struct {
	Ref           string
	Collateral    string
	Payment       decimal.Decimal
	MaxPositions  int
	FeeOverride   *decimal.Decimal
	PriceOverride *decimal.Decimal
}

// RedeemResult aggregates what one redemption call achieved.
type RedeemResult struct {
	PaymentUsed        decimal.Decimal
	CollateralReceived decimal.Decimal
	FeeUsed            decimal.Decimal
	Positions          []uuid.UUID
}

// redeemTarget is one position in redemption order with its derived
// figures at the redemption price.
type redeemTarget struct {
	id           uuid.UUID
	realDebt     decimal.Decimal
	crPercentage decimal.Decimal
}

var one = decimal.NewFromInt(1)

// Redeem exchanges stablecoin for collateral at oracle value minus the
// dynamic redemption fee, consuming positions from the lowest interest
// tier upward and from the worst collateral ratio upward within a tier.
// Positions below full backing are redeemed whole or not at all.
func (e *Engine) Redeem(p RedeemParams) (RedeemResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if e.params.StopRedemption {
		return RedeemResult{}, fmt.Errorf("%w: redemptions stopped", ErrPaused)
	}
	if !p.Payment.IsPositive() {
		return RedeemResult{}, fmt.Errorf("%w: payment must be positive", ErrValidation)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return RedeemResult{}, err
	}

	price := c.USDPrice
	if p.PriceOverride != nil {
		if !p.PriceOverride.IsPositive() {
			return RedeemResult{}, fmt.Errorf("%w: price override must be positive", ErrValidation)
		}
		price = *p.PriceOverride
	}

	maxPositions := p.MaxPositions
	if maxPositions <= 0 {
		maxPositions = int(e.params.MaxBucketLength)
	}

	// Fee state is fixed for the whole call: decayed base plus a spike
	// proportional to the payment's share of circulating supply.
	decayedBase := e.redemptionBaseRate.Mul(
		fpmath.DecayFactor(e.params.RedemptionHalflifeK, int64(now.Sub(e.lastRedemption).Seconds())))
	spike := decimal.Zero
	if e.circulating.IsPositive() {
		spike = e.params.RedemptionSpikeK.Mul(p.Payment).Div(e.circulating)
	}

	var feeUsed decimal.Decimal
	if p.FeeOverride != nil {
		feeUsed = *p.FeeOverride
	} else {
		feeUsed = decayedBase.Add(spike.Div(decimal.NewFromInt(2))).Add(e.params.MinimumRedemptionFee)
		if feeUsed.Cmp(e.params.MaximumRedemptionFee) > 0 {
			feeUsed = e.params.MaximumRedemptionFee
		}
	}
	effectiveTake := one.Sub(feeUsed)

	result := RedeemResult{FeeUsed: feeUsed}
	remaining := p.Payment

	for _, target := range e.redemptionQueue(c, maxPositions, price) {
		if !remaining.IsPositive() || len(result.Positions) >= maxPositions {
			break
		}
		pos, ok := e.positions.Get(target.id)
		if !ok {
			continue
		}

		// Below full backing the position must be taken whole; a partial
		// redemption would leave it worse backed than before.
		forced := target.crPercentage.Cmp(one) <= 0
		if forced && remaining.Cmp(target.realDebt) < 0 {
			break
		}

		// The partial leg burns exactly the remaining payment; deriving it
		// back from the percentage would reintroduce division rounding.
		pctRedeemed := one
		paymentUsed := target.realDebt
		if remaining.Cmp(target.realDebt) < 0 {
			pctRedeemed = remaining.Div(target.realDebt)
			paymentUsed = remaining
		}
		collateralPaid := pos.CollateralAmount.Mul(pctRedeemed).Mul(effectiveTake).Div(target.crPercentage)

		if pctRedeemed.Equal(one) {
			if err := e.redeemFull(p.Ref, c, pos, paymentUsed, collateralPaid, feeUsed, now); err != nil {
				break
			}
		} else {
			if err := e.redeemPartial(p.Ref, c, pos, paymentUsed, collateralPaid, feeUsed, now); err != nil {
				break
			}
		}

		remaining = remaining.Sub(paymentUsed)
		result.PaymentUsed = result.PaymentUsed.Add(paymentUsed)
		result.CollateralReceived = result.CollateralReceived.Add(collateralPaid)
		result.Positions = append(result.Positions, pos.ID)
	}

	if len(result.Positions) == 0 {
		return RedeemResult{}, fmt.Errorf("%w: no redeemable positions for %s", ErrState, p.Collateral)
	}

	// The stored base absorbs the full spike even though only half of it
	// was charged; the next redeemer inherits the pressure. An overridden
	// fee leaves the base untouched but still restarts the decay window.
	if p.FeeOverride == nil {
		e.redemptionBaseRate = decayedBase.Add(spike)
	}
	e.lastRedemption = now

	if e.metrics != nil {
		e.metrics.Redemptions.WithLabelValues(c.Asset).Inc()
	}

	return result, nil
}

// collectTierTargets appends one tier's positions to the queue, worst
// ratio first, up to limit.
func (e *Engine) collectTierTargets(c *state.Collateral, t *state.InterestTier, price decimal.Decimal, out []redeemTarget, limit int) []redeemTarget {
	multiplier := t.DebtMultiplier()
	c.Ratios.Ascend(t.Rate, decimal.Zero, func(b *state.RatioBucket) bool {
		for _, id := range b.IDs {
			if len(out) >= limit {
				return false
			}
			pos, ok := e.positions.Get(id)
			if !ok {
				continue
			}
			out = append(out, redeemTarget{
				id:           id,
				realDebt:     pos.PoolDebt.Mul(multiplier),
				crPercentage: pos.Ratio.Mul(price).Div(multiplier),
			})
		}
		return len(out) < limit
	})
	return out
}

// redemptionQueue snapshots up to limit redeemable positions in
// redemption order: tiers ascending by rate starting with the lowest
// ordinary one, worst ratio first within each tier. Opt-out protection
// is structural: the privileged tier is last in line and reached only
// when no ordinary tier holds entries.
func (e *Engine) redemptionQueue(c *state.Collateral, limit int, price decimal.Decimal) []redeemTarget {
	var out []redeemTarget
	c.Tiers.AscendOrdinary(func(t *state.InterestTier) bool {
		out = e.collectTierTargets(c, t, price, out, limit)
		return len(out) < limit
	})

	if len(out) == 0 {
		if t, ok := c.Tiers.Get(state.PrivilegedRate()); ok {
			out = e.collectTierTargets(c, t, price, out, limit)
		}
	}
	return out
}

// redeemFull retires a position through redemption: debt burned, the
// redeemer paid, the remainder parked as the holder's leftover claim.
func (e *Engine) redeemFull(ref string, c *state.Collateral, p *state.Position, paymentUsed, collateralPaid, feeUsed decimal.Decimal, now time.Time) error {
	if collateralPaid.Cmp(p.CollateralAmount) > 0 {
		collateralPaid = p.CollateralAmount
	}
	leftover := p.CollateralAmount.Sub(collateralPaid)

	if _, err := e.tierBurn(c, p.Rate, paymentUsed); err != nil {
		return err
	}
	e.removeRatio(c, p)
	if err := e.takeCollateral(c, p.Rate, p.CollateralAmount); err != nil {
		return err
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, paymentUsed)
	e.journal.RedemptionPayout(batch, c.Asset, collateralPaid)
	e.journal.LeftoverTransfer(batch, c.Asset, leftover)

	delete(c.MarkedDeadlines, p.ID)
	if p.Borrower != nil {
		e.borrowers.Unlink(*p.Borrower, p.ID)
		p.Borrower = nil
	}

	rate := p.Rate
	p.Status = state.StatusRedeemed
	p.CollateralAmount = leftover
	p.PoolDebt = decimal.Zero
	p.Ratio = decimal.Zero
	p.Version++

	e.cleanupTier(c, rate)

	e.emit(&event.PositionRedeemed{
		PositionID:     p.ID,
		Collateral:     c.Asset,
		PaymentUsed:    paymentUsed,
		CollateralPaid: collateralPaid,
		Leftover:       leftover,
		FeeUsed:        feeUsed,
		Full:           true,
		Timestamp:      now,
	}, ref, now, batch)

	return nil
}

// redeemPartial shaves debt and collateral off a position and re-ranks
// it. The holder keeps the fee's worth of collateral, so the position's
// backing improves with every partial redemption.
func (e *Engine) redeemPartial(ref string, c *state.Collateral, p *state.Position, paymentUsed, collateralPaid, feeUsed decimal.Decimal, now time.Time) error {
	poolPortion := paymentUsed.Div(c.DebtMultiplier(p.Rate))
	newPoolDebt := p.PoolDebt.Sub(poolPortion)
	newCollateral := p.CollateralAmount.Sub(collateralPaid)
	newRatio := newCollateral.Div(newPoolDebt)

	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return err
	}
	if _, err := e.tierBurn(c, p.Rate, paymentUsed); err != nil {
		return err
	}
	if err := e.takeCollateral(c, p.Rate, collateralPaid); err != nil {
		return err
	}
	p.PoolDebt = newPoolDebt
	p.CollateralAmount = newCollateral
	p.Version++

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, paymentUsed)
	e.journal.RedemptionPayout(batch, c.Asset, collateralPaid)

	e.emit(&event.PositionRedeemed{
		PositionID:     p.ID,
		Collateral:     c.Asset,
		PaymentUsed:    paymentUsed,
		CollateralPaid: collateralPaid,
		Leftover:       decimal.Zero,
		FeeUsed:        feeUsed,
		Full:           false,
		Timestamp:      now,
	}, ref, now, batch)

	return nil
}

// NextRedemptions returns up to limit positions in redemption order for
// one collateral without mutating anything. Unlike the redemption path,
// the privileged tier is always listed after the ordinary tiers so
// callers can see the fallback while ordinary debt remains.
func (e *Engine) NextRedemptions(asset string, limit int) ([]state.Position, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return nil, err
	}

	var targets []redeemTarget
	c.Tiers.AscendOrdinary(func(t *state.InterestTier) bool {
		targets = e.collectTierTargets(c, t, c.USDPrice, targets, limit)
		return len(targets) < limit
	})
	if len(targets) < limit {
		if t, ok := c.Tiers.Get(state.PrivilegedRate()); ok {
			targets = e.collectTierTargets(c, t, c.USDPrice, targets, limit)
		}
	}

	out := make([]state.Position, 0, len(targets))
	for _, t := range targets {
		if p, ok := e.positions.Get(t.id); ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

// DebtInFront returns the real debt redeemed before positions at the
// given ordinary rate are reached, for one collateral.
func (e *Engine) DebtInFront(asset string, rate decimal.Decimal) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, err := e.collateral(asset)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Tiers.DebtInFront(rate), nil
}

// RouteStep is one leg of a cross-collateral redemption plan.
type RouteStep struct {
	Collateral string
	Amount     decimal.Decimal
	// Positions is how many queue entries the planner consumed for this
	// leg; execution uses it as the per-leg position cap.
	Positions int
}

// OptimalRedemptionRoute plans a redemption toward per-collateral target
// amounts. Each pull takes the next queued position's debt from the
// collateral with the lowest achieved fraction of its target, until the
// step budget is spent or every queue drains; every leg is then clamped
// to the worst fraction achieved across the targets, so the split stays
// proportional to them. Planning is read-only; execution happens per
// collateral afterwards, so the plan is advisory under concurrent
// writes.
func (e *Engine) OptimalRedemptionRoute(targets map[string]decimal.Decimal, stepBudget int) ([]RouteStep, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no targets", ErrValidation)
	}
	if stepBudget <= 0 {
		stepBudget = int(e.params.MaxBucketLength)
	}

	assets := make([]string, 0, len(targets))
	for asset := range targets {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	type collateralPlan struct {
		asset     string
		target    decimal.Decimal
		allocated decimal.Decimal
		queue     []redeemTarget
		taken     int
	}
	plans := make([]*collateralPlan, 0, len(assets))
	for _, asset := range assets {
		target := targets[asset]
		if !target.IsPositive() {
			return nil, fmt.Errorf("%w: target for %s must be positive", ErrValidation, asset)
		}
		c, err := e.collateral(asset)
		if err != nil {
			return nil, err
		}
		plans = append(plans, &collateralPlan{
			asset:  asset,
			target: target,
			queue:  e.redemptionQueue(c, stepBudget, c.USDPrice),
		})
	}

	for steps := 0; steps < stepBudget; steps++ {
		// Pull from the collateral furthest behind its target.
		var behind *collateralPlan
		var behindFraction decimal.Decimal
		for _, p := range plans {
			if p.taken >= len(p.queue) || p.allocated.Cmp(p.target) >= 0 {
				continue
			}
			fraction := p.allocated.Div(p.target)
			if behind == nil || fraction.Cmp(behindFraction) < 0 {
				behind = p
				behindFraction = fraction
			}
		}
		if behind == nil {
			break
		}
		behind.allocated = behind.allocated.Add(behind.queue[behind.taken].realDebt)
		if behind.allocated.Cmp(behind.target) > 0 {
			behind.allocated = behind.target
		}
		behind.taken++
	}

	minFraction := one
	for _, p := range plans {
		fraction := p.allocated.Div(p.target)
		if fraction.Cmp(minFraction) < 0 {
			minFraction = fraction
		}
	}
	if !minFraction.IsPositive() {
		return nil, fmt.Errorf("%w: no redeemable debt toward targets", ErrState)
	}

	plan := make([]RouteStep, 0, len(plans))
	for _, p := range plans {
		amount := p.target.Mul(minFraction)
		if amount.Cmp(p.allocated) > 0 {
			amount = p.allocated
		}
		plan = append(plan, RouteStep{Collateral: p.asset, Amount: amount, Positions: p.taken})
	}
	return plan, nil
}

// BatchRedeem executes a redemption plan leg by leg. Legs are
// independent; a failed leg is reported and the rest still run.
func (e *Engine) BatchRedeem(ref string, plan []RouteStep, feeOverride *decimal.Decimal) (RedeemResult, error) {
	var total RedeemResult
	var firstErr error

	for i, step := range plan {
		res, err := e.Redeem(RedeemParams{
			Ref:          fmt.Sprintf("%s/%d", ref, i),
			Collateral:   step.Collateral,
			Payment:      step.Amount,
			MaxPositions: step.Positions,
			FeeOverride:  feeOverride,
		})
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("leg %s: %w", step.Collateral, err)
			}
			continue
		}
		total.PaymentUsed = total.PaymentUsed.Add(res.PaymentUsed)
		total.CollateralReceived = total.CollateralReceived.Add(res.CollateralReceived)
		total.FeeUsed = res.FeeUsed
		total.Positions = append(total.Positions, res.Positions...)
	}

	if len(total.Positions) == 0 && firstErr != nil {
		return RedeemResult{}, firstErr
	}
	return total, nil
}

// OptimalBatchRedeem plans and executes a redemption toward
// per-collateral targets.
func (e *Engine) OptimalBatchRedeem(ref string, targets map[string]decimal.Decimal, stepBudget int) (RedeemResult, error) {
	plan, err := e.OptimalRedemptionRoute(targets, stepBudget)
	if err != nil {
		return RedeemResult{}, err
	}
	return e.BatchRedeem(ref, plan, nil)
}

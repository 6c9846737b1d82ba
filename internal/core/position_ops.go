package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	"StableLedger/internal/state"
)

// OpenPositionParams describes a new debt position. MintAmount is the
// stablecoin the borrower receives; the upfront interest fee is borrowed
// on top of it.
type OpenPositionParams struct {
	Ref              string
	PositionID       uuid.UUID
	Collateral       string
	CollateralAmount decimal.Decimal
	MintAmount       decimal.Decimal
	RateWire         decimal.Decimal
	Borrower         *uuid.UUID
}

// OpenPosition creates a position, escrows its collateral and mints the
// requested stablecoin plus the upfront interest fee.
func (e *Engine) OpenPosition(p OpenPositionParams) (state.Position, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if e.params.StopOpenings {
		return state.Position{}, fmt.Errorf("%w: openings stopped", ErrPaused)
	}
	if _, exists := e.positions.Get(p.PositionID); exists {
		return state.Position{}, fmt.Errorf("%w: position %s already exists", ErrValidation, p.PositionID)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return state.Position{}, err
	}
	if !c.Accepted {
		return state.Position{}, fmt.Errorf("%w: collateral %s not accepted", ErrValidation, p.Collateral)
	}
	if !p.CollateralAmount.IsPositive() || !p.MintAmount.IsPositive() {
		return state.Position{}, fmt.Errorf("%w: amounts must be positive", ErrValidation)
	}
	if p.MintAmount.Cmp(e.params.MinimumMint) < 0 {
		return state.Position{}, fmt.Errorf("%w: mint %s below minimum %s", ErrValidation, p.MintAmount, e.params.MinimumMint)
	}

	rate := state.RateFromWire(p.RateWire)
	if rate.IsPrivileged() {
		if p.Borrower == nil {
			return state.Position{}, fmt.Errorf("%w: privileged rate requires a borrower", ErrAuthorization)
		}
		b, ok := e.borrowers.Get(*p.Borrower)
		if !ok {
			return state.Position{}, fmt.Errorf("%w: borrower %s not registered", ErrAuthorization, *p.Borrower)
		}
		if !b.RedemptionOptOut {
			return state.Position{}, fmt.Errorf("%w: borrower %s has not opted out of redemption", ErrAuthorization, *p.Borrower)
		}
	} else {
		if err := e.validateOrdinaryRate(rate.Value()); err != nil {
			return state.Position{}, err
		}
	}

	poolAmount := c.RealToPool(rate, p.MintAmount)

	// Privileged positions pay no upfront fee; their rate is nominal zero.
	feeReal, feePool := decimal.Zero, decimal.Zero
	if !rate.IsPrivileged() {
		feeReal, feePool = e.upfrontFee(c, rate, rate.Value(), poolAmount, e.params.DaysOfExtraInterestFee)
	}
	poolDebt := poolAmount.Add(feePool)

	ratio, err := e.checkCR(c, rate, p.CollateralAmount, poolDebt, nil)
	if err != nil {
		return state.Position{}, err
	}

	pos := &state.Position{
		ID:               p.PositionID,
		Collateral:       p.Collateral,
		CollateralAmount: p.CollateralAmount,
		PoolDebt:         poolDebt,
		Ratio:            ratio,
		Rate:             rate,
		LastRateChange:   now,
		Status:           state.StatusHealthy,
		Borrower:         p.Borrower,
	}

	if err := e.insertRatio(c, pos, now); err != nil {
		return state.Position{}, err
	}

	if p.Borrower != nil {
		if err := e.borrowers.Link(*p.Borrower, p.PositionID); err != nil {
			// Roll back the index entry inserted above.
			e.removeRatio(c, pos)
			e.cleanupTier(c, rate)
			return state.Position{}, fmt.Errorf("%w: %s", ErrAuthorization, err)
		}
	}

	minted := e.tierMint(c, rate, poolDebt, now)
	mintedToBorrower := minted.Sub(feeReal)

	batch := e.journal.NewBatch(p.Ref, now.UnixMicro())
	e.putCollateral(c, rate, p.CollateralAmount, batch, now)
	e.journal.Mint(batch, minted)
	e.journal.FeeEscrow(batch, c.Asset, feeReal)

	e.positions.Put(pos)

	e.logger.Info().
		Str("position", pos.ID.String()).
		Str("collateral", c.Asset).
		Str("rate", rate.String()).
		Str("minted", mintedToBorrower.String()).
		Msg("position opened")

	e.emit(&event.PositionOpened{
		PositionID:       pos.ID,
		Collateral:       c.Asset,
		CollateralAmount: pos.CollateralAmount,
		PoolDebt:         pos.PoolDebt,
		MintedAmount:     mintedToBorrower,
		UpfrontFee:       feeReal,
		RateWire:         rate.Wire(),
		Borrower:         p.Borrower,
		Timestamp:        now,
	}, p.Ref, now, batch)

	return *pos, nil
}

// ClosePosition repays a position in full and releases its collateral.
// Returns the stablecoin change and the collateral released.
func (e *Engine) ClosePosition(ref string, positionID uuid.UUID, payment decimal.Decimal) (change, released decimal.Decimal, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if e.params.StopClosings {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: closings stopped", ErrPaused)
	}
	p, err := e.position(positionID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return e.closeLocked(ref, p, payment, now)
}

// closeLocked performs the full-repayment path. Caller holds the lock
// and has cleared the pause flag.
func (e *Engine) closeLocked(ref string, p *state.Position, payment decimal.Decimal, now time.Time) (change, released decimal.Decimal, err error) {
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	realDebt := c.PoolToReal(p.Rate, p.PoolDebt)
	if payment.Cmp(realDebt) < 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: payment %s below debt %s", ErrInsufficientFunds, payment, realDebt)
	}
	change = payment.Sub(realDebt)
	released = p.CollateralAmount

	if _, err := e.tierBurn(c, p.Rate, realDebt); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	e.removeRatio(c, p)
	if err := e.takeCollateral(c, p.Rate, released); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, realDebt)
	e.journal.CollateralRelease(batch, c.Asset, released)

	delete(c.MarkedDeadlines, p.ID)
	if p.Borrower != nil {
		e.borrowers.Unlink(*p.Borrower, p.ID)
		p.Borrower = nil
	}

	rate := p.Rate
	p.Status = state.StatusClosed
	p.CollateralAmount = decimal.Zero
	p.PoolDebt = decimal.Zero
	p.Ratio = decimal.Zero
	p.Version++

	e.cleanupTier(c, rate)

	e.logger.Info().
		Str("position", p.ID.String()).
		Str("repaid", realDebt.String()).
		Msg("position closed")

	e.emit(&event.PositionClosed{
		PositionID:         p.ID,
		Collateral:         c.Asset,
		DebtRepaid:         realDebt,
		CollateralReturned: released,
		Timestamp:          now,
	}, ref, now, batch)

	return change, released, nil
}

// TopUpCollateral adds collateral to a Healthy or Marked position. A
// Marked position whose ratio recovers above the threshold is unmarked.
func (e *Engine) TopUpCollateral(ref string, positionID uuid.UUID, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return err
	}

	newAmount := p.CollateralAmount.Add(amount)
	newRatio := newAmount.Div(p.PoolDebt)
	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return err
	}
	p.CollateralAmount = newAmount
	p.Version++

	// Unmark only when the ratio now clears the threshold.
	value := c.USDPrice.Mul(newAmount)
	required := p.PoolDebt.Mul(c.DebtMultiplier(p.Rate)).Mul(c.MCR)
	if value.Cmp(required) >= 0 {
		e.unmarkIfMarked(c, p)
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.putCollateral(c, p.Rate, amount, batch, now)

	e.emit(&event.CollateralToppedUp{
		PositionID: p.ID,
		Collateral: c.Asset,
		Amount:     amount,
		NewRatio:   newRatio,
		Timestamp:  now,
	}, ref, now, batch)

	return nil
}

// RemoveCollateral withdraws collateral from a Healthy position; the
// remainder must still clear the collateralization requirement.
func (e *Engine) RemoveCollateral(ref string, positionID uuid.UUID, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Status != state.StatusHealthy {
		return fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if !amount.IsPositive() || amount.Cmp(p.CollateralAmount) >= 0 {
		return fmt.Errorf("%w: amount %s outside (0, %s)", ErrValidation, amount, p.CollateralAmount)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return err
	}

	newAmount := p.CollateralAmount.Sub(amount)
	newRatio, err := e.checkCR(c, p.Rate, newAmount, p.PoolDebt, p)
	if err != nil {
		return err
	}
	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return err
	}
	p.CollateralAmount = newAmount
	p.Version++

	if err := e.takeCollateral(c, p.Rate, amount); err != nil {
		return err
	}
	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.CollateralRelease(batch, c.Asset, amount)

	e.emit(&event.CollateralRemoved{
		PositionID: p.ID,
		Collateral: c.Asset,
		Amount:     amount,
		NewRatio:   newRatio,
		Timestamp:  now,
	}, ref, now, batch)

	return nil
}

// BorrowMore mints additional stablecoin against a Healthy position,
// charging the upfront interest fee on the new debt.
func (e *Engine) BorrowMore(ref string, positionID uuid.UUID, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if e.params.StopOpenings {
		return fmt.Errorf("%w: openings stopped", ErrPaused)
	}
	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Status != state.StatusHealthy {
		return fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return err
	}

	poolAmount := c.RealToPool(p.Rate, amount)
	feeReal, feePool := decimal.Zero, decimal.Zero
	if !p.Rate.IsPrivileged() {
		feeReal, feePool = e.upfrontFee(c, p.Rate, p.Rate.Value(), poolAmount, e.params.DaysOfExtraInterestFee)
	}
	newPoolDebt := p.PoolDebt.Add(poolAmount).Add(feePool)

	newRatio, err := e.checkCR(c, p.Rate, p.CollateralAmount, newPoolDebt, p)
	if err != nil {
		return err
	}
	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return err
	}
	p.PoolDebt = newPoolDebt
	p.Version++

	minted := e.tierMint(c, p.Rate, poolAmount.Add(feePool), now)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Mint(batch, minted)
	e.journal.FeeEscrow(batch, c.Asset, feeReal)

	e.emit(&event.DebtBorrowed{
		PositionID: p.ID,
		Collateral: c.Asset,
		Amount:     minted.Sub(feeReal),
		UpfrontFee: feeReal,
		Timestamp:  now,
	}, ref, now, batch)

	return nil
}

// RepayDebt burns stablecoin against a position's debt. A payment
// covering the full debt closes the position; otherwise the remaining
// debt must stay above the minimum mint.
func (e *Engine) RepayDebt(ref string, positionID uuid.UUID, payment decimal.Decimal) (change decimal.Decimal, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if e.params.StopClosings {
		return decimal.Zero, fmt.Errorf("%w: closings stopped", ErrPaused)
	}
	p, err := e.position(positionID)
	if err != nil {
		return decimal.Zero, err
	}
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return decimal.Zero, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if !payment.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: payment must be positive", ErrValidation)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return decimal.Zero, err
	}

	realDebt := c.PoolToReal(p.Rate, p.PoolDebt)
	if payment.Cmp(realDebt) >= 0 {
		change, _, err = e.closeLocked(ref, p, payment, now)
		return change, err
	}

	remainingReal := realDebt.Sub(payment)
	if remainingReal.Cmp(e.params.MinimumMint) < 0 {
		return decimal.Zero, fmt.Errorf("%w: remaining debt %s below minimum %s", ErrValidation, remainingReal, e.params.MinimumMint)
	}

	poolPayment := c.RealToPool(p.Rate, payment)
	newPoolDebt := p.PoolDebt.Sub(poolPayment)
	newRatio := p.CollateralAmount.Div(newPoolDebt)
	if err := e.reindexRatio(c, p, p.Rate, newRatio, now); err != nil {
		return decimal.Zero, err
	}
	if _, err := e.tierBurn(c, p.Rate, payment); err != nil {
		return decimal.Zero, err
	}
	p.PoolDebt = newPoolDebt
	p.Version++

	value := c.USDPrice.Mul(p.CollateralAmount)
	required := newPoolDebt.Mul(c.DebtMultiplier(p.Rate)).Mul(c.MCR)
	if value.Cmp(required) >= 0 {
		e.unmarkIfMarked(c, p)
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Burn(batch, payment)

	e.emit(&event.DebtRepaid{
		PositionID: p.ID,
		Collateral: c.Asset,
		Amount:     payment,
		Timestamp:  now,
	}, ref, now, batch)

	return decimal.Zero, nil
}

// ChangeRate moves a Healthy position to a different interest tier,
// conserving real debt. Changing again within the cooldown charges the
// upfront interest fee at the new rate.
func (e *Engine) ChangeRate(ref string, positionID uuid.UUID, newRateWire decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Status != state.StatusHealthy {
		return fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return err
	}

	newRate := state.RateFromWire(newRateWire)
	if newRate.Equal(p.Rate) {
		return fmt.Errorf("%w: already at rate %s", ErrValidation, newRate)
	}
	if newRate.IsPrivileged() {
		if p.Borrower == nil {
			return fmt.Errorf("%w: privileged rate requires a borrower link", ErrAuthorization)
		}
		b, ok := e.borrowers.Get(*p.Borrower)
		if !ok {
			return fmt.Errorf("%w: borrower %s not registered", ErrAuthorization, *p.Borrower)
		}
		if !b.RedemptionOptOut {
			return fmt.Errorf("%w: borrower %s has not opted out of redemption", ErrAuthorization, *p.Borrower)
		}
	} else {
		if err := e.validateOrdinaryRate(newRate.Value()); err != nil {
			return err
		}
	}

	oldRate := p.Rate
	realDebt := c.PoolToReal(oldRate, p.PoolDebt)

	// Within the cooldown the change costs the upfront fee at the new rate.
	feeReal, feePool := decimal.Zero, decimal.Zero
	cooldown := time.Duration(e.params.FeelessRateChangeCooldown) * 24 * time.Hour
	inCooldown := now.Before(p.LastRateChange.Add(cooldown))
	if inCooldown && !newRate.IsPrivileged() {
		newPoolBase := realDebt.Div(c.DebtMultiplier(newRate))
		feeReal, feePool = e.upfrontFee(c, newRate, newRate.Value(), newPoolBase, e.params.DaysOfExtraInterestFee)
	}

	newPoolDebt := realDebt.Div(c.DebtMultiplier(newRate)).Add(feePool)

	newRatio, err := e.checkCR(c, newRate, p.CollateralAmount, newPoolDebt, p)
	if err != nil {
		return err
	}
	if err := e.reindexRatio(c, p, newRate, newRatio, now); err != nil {
		return err
	}

	if err := e.tierMove(c, oldRate, newRate, realDebt, now); err != nil {
		return err
	}
	e.moveCollateral(c, oldRate, newRate, p.CollateralAmount, now)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	if feePool.IsPositive() {
		minted := e.tierMint(c, newRate, feePool, now)
		feeReal = minted
		e.journal.Mint(batch, minted)
		e.journal.FeeEscrow(batch, c.Asset, minted)
	}

	p.PoolDebt = newPoolDebt
	p.LastRateChange = now
	p.Version++

	e.cleanupTier(c, oldRate)

	e.emit(&event.RateChanged{
		PositionID:  p.ID,
		Collateral:  c.Asset,
		OldRateWire: oldRate.Wire(),
		NewRateWire: newRate.Wire(),
		UpfrontFee:  feeReal,
		Timestamp:   now,
	}, ref, now, batch)

	return nil
}

// TagIrredeemable graduates a privileged position whose borrower has not
// opted out of redemption to the lowest active ordinary rate, borrowing
// the tag fee against the position and paying it to the caller.
func (e *Engine) TagIrredeemable(ref string, positionID uuid.UUID) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return decimal.Zero, err
	}
	if p.Status != state.StatusHealthy && p.Status != state.StatusMarked {
		return decimal.Zero, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if !p.Rate.IsPrivileged() {
		return decimal.Zero, fmt.Errorf("%w: position %s is not privileged", ErrState, p.ID)
	}
	c, err := e.collateral(p.Collateral)
	if err != nil {
		return decimal.Zero, err
	}

	// Only positions that should be redeemable can be tagged: the link
	// is gone, or the borrower never opted out.
	if p.Borrower != nil {
		if b, ok := e.borrowers.Get(*p.Borrower); ok && b.RedemptionOptOut {
			return decimal.Zero, fmt.Errorf("%w: borrower %s opted out of redemption", ErrAuthorization, *p.Borrower)
		}
	}

	oldRate := p.Rate
	newRate := state.OrdinaryRate(c.Tiers.LowestOrdinary())
	realDebt := c.PoolToReal(oldRate, p.PoolDebt)

	fee := e.params.IrredeemableTagFee
	feePool := fee.Div(c.DebtMultiplier(newRate))
	newPoolDebt := realDebt.Div(c.DebtMultiplier(newRate)).Add(feePool)
	newRatio := p.CollateralAmount.Div(newPoolDebt)

	if err := e.reindexRatio(c, p, newRate, newRatio, now); err != nil {
		return decimal.Zero, err
	}
	if err := e.tierMove(c, oldRate, newRate, realDebt, now); err != nil {
		return decimal.Zero, err
	}
	e.moveCollateral(c, oldRate, newRate, p.CollateralAmount, now)

	minted := e.tierMint(c, newRate, feePool, now)

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.Mint(batch, minted)

	if p.Borrower != nil {
		e.borrowers.Unlink(*p.Borrower, p.ID)
		p.Borrower = nil
	}
	p.PoolDebt = newPoolDebt
	p.LastRateChange = now
	p.Version++

	e.cleanupTier(c, oldRate)

	e.logger.Info().
		Str("position", p.ID.String()).
		Str("new_rate", newRate.String()).
		Msg("privileged position tagged")

	e.emit(&event.PositionTagged{
		PositionID:  p.ID,
		Collateral:  c.Asset,
		NewRateWire: newRate.Wire(),
		TagFee:      minted,
		Timestamp:   now,
	}, ref, now, batch)

	return minted, nil
}

// RetrieveLeftoverCollateral pays out the leftover collateral held for a
// liquidated or redeemed position.
func (e *Engine) RetrieveLeftoverCollateral(ref string, positionID uuid.UUID) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return decimal.Zero, err
	}
	if p.Status != state.StatusLiquidated && p.Status != state.StatusRedeemed {
		return decimal.Zero, fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	amount := p.CollateralAmount
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no leftover collateral for %s", ErrValidation, p.ID)
	}

	batch := e.journal.NewBatch(ref, now.UnixMicro())
	e.journal.LeftoverClaim(batch, p.Collateral, amount)

	p.CollateralAmount = decimal.Zero
	p.Version++

	e.emit(&event.LeftoverClaimed{
		PositionID: p.ID,
		Collateral: p.Collateral,
		Amount:     amount,
		Timestamp:  now,
	}, ref, now, batch)

	return amount, nil
}

// BurnClosedPosition destroys a settled position record. The position
// must be in a terminal status with no leftover collateral outstanding.
func (e *Engine) BurnClosedPosition(ref string, positionID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if !p.Status.Terminal() {
		return fmt.Errorf("%w: position %s is %s", ErrState, p.ID, p.Status)
	}
	if p.CollateralAmount.IsPositive() {
		return fmt.Errorf("%w: position %s has unclaimed leftover %s", ErrState, p.ID, p.CollateralAmount)
	}

	e.positions.Remove(p.ID)

	e.emit(&event.PositionBurned{
		PositionID: p.ID,
		Collateral: p.Collateral,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	"StableLedger/internal/state"
)

// CreateCollateral registers a new collateral asset with its minimum
// collateralization ratio and an initial oracle price.
func (e *Engine) CreateCollateral(ref, asset string, mcr, price decimal.Decimal, accepted bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if asset == "" {
		return fmt.Errorf("%w: empty collateral id", ErrValidation)
	}
	if _, exists := e.collaterals.Get(asset); exists {
		return fmt.Errorf("%w: collateral %s already exists", ErrValidation, asset)
	}
	if mcr.Cmp(decimal.NewFromInt(1)) < 0 {
		return fmt.Errorf("%w: mcr %s must be >= 1", ErrValidation, mcr)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	e.collaterals.Put(state.NewCollateral(asset, mcr, price, accepted))

	e.logger.Info().Str("collateral", asset).Str("mcr", mcr.String()).Msg("collateral created")

	e.emit(&event.CollateralCreated{
		Collateral: asset,
		MCR:        mcr,
		Price:      price,
		Accepted:   accepted,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

// EditCollateral updates a collateral's MCR and acceptance flag. Existing
// positions are unaffected until their next operation or price check.
func (e *Engine) EditCollateral(ref, asset string, mcr decimal.Decimal, accepted bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	c, err := e.collateral(asset)
	if err != nil {
		return err
	}
	if mcr.Cmp(decimal.NewFromInt(1)) < 0 {
		return fmt.Errorf("%w: mcr %s must be >= 1", ErrValidation, mcr)
	}

	c.MCR = mcr
	c.Accepted = accepted

	e.emit(&event.CollateralEdited{
		Collateral: asset,
		MCR:        mcr,
		Accepted:   accepted,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

// SetPrice applies an oracle price update for one collateral.
func (e *Engine) SetPrice(ref, asset string, price decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	c, err := e.collateral(asset)
	if err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	c.USDPrice = price

	if e.metrics != nil {
		f, _ := price.Float64()
		e.metrics.CollateralPrice.WithLabelValues(asset).Set(f)
	}

	e.emit(&event.PriceUpdated{
		Collateral: asset,
		Price:      price,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

// SetParameters replaces the protocol parameter set after validation.
func (e *Engine) SetParameters(ref string, params state.ProtocolParameters) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	e.params = params

	e.logger.Info().Msg("protocol parameters updated")

	e.emit(&event.ParamsUpdated{Section: "all", Timestamp: now}, ref, now, nil)
	return nil
}

// SetStops toggles the four global circuit breakers without touching the
// rest of the parameter set.
func (e *Engine) SetStops(ref string, liquidations, openings, closings, redemption bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	e.params.StopLiquidations = liquidations
	e.params.StopOpenings = openings
	e.params.StopClosings = closings
	e.params.StopRedemption = redemption

	e.logger.Warn().
		Bool("liquidations", liquidations).
		Bool("openings", openings).
		Bool("closings", closings).
		Bool("redemption", redemption).
		Msg("circuit breakers updated")

	e.emit(&event.ParamsUpdated{Section: "stops", Timestamp: now}, ref, now, nil)
	return nil
}

// BorrowerParams describes a privileged borrower record.
type BorrowerParams struct {
	Ref              string
	BorrowerID       uuid.UUID
	RedemptionOptOut bool
	// NoticeMinutes is the liquidation notice period; nil means none.
	NoticeMinutes *int64
	MaxCoupled    int64
}

// CreateBorrower registers a privileged borrower.
func (e *Engine) CreateBorrower(p BorrowerParams) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	if _, exists := e.borrowers.Get(p.BorrowerID); exists {
		return fmt.Errorf("%w: borrower %s already exists", ErrValidation, p.BorrowerID)
	}
	if p.MaxCoupled <= 0 {
		return fmt.Errorf("%w: max_coupled must be > 0", ErrValidation)
	}

	e.borrowers.Put(&state.PrivilegedBorrower{
		ID:                  p.BorrowerID,
		RedemptionOptOut:    p.RedemptionOptOut,
		LiquidationNotice:   minutesToDuration(p.NoticeMinutes),
		MaxCoupledPositions: p.MaxCoupled,
	})

	e.emit(&event.BorrowerCreated{
		BorrowerID:       p.BorrowerID,
		RedemptionOptOut: p.RedemptionOptOut,
		NoticeMinutes:    p.NoticeMinutes,
		MaxCoupled:       p.MaxCoupled,
		Timestamp:        now,
	}, p.Ref, now, nil)

	return nil
}

// EditBorrower updates a privileged borrower's conditions. Already
// coupled positions keep their link even if the limit shrinks below the
// current count.
func (e *Engine) EditBorrower(p BorrowerParams) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	b, ok := e.borrowers.Get(p.BorrowerID)
	if !ok {
		return fmt.Errorf("%w: borrower %s not found", ErrState, p.BorrowerID)
	}
	if p.MaxCoupled <= 0 {
		return fmt.Errorf("%w: max_coupled must be > 0", ErrValidation)
	}

	b.RedemptionOptOut = p.RedemptionOptOut
	b.LiquidationNotice = minutesToDuration(p.NoticeMinutes)
	b.MaxCoupledPositions = p.MaxCoupled

	e.emit(&event.BorrowerEdited{
		BorrowerID:       p.BorrowerID,
		RedemptionOptOut: p.RedemptionOptOut,
		NoticeMinutes:    p.NoticeMinutes,
		MaxCoupled:       p.MaxCoupled,
		Timestamp:        now,
	}, p.Ref, now, nil)

	return nil
}

// LinkBorrower couples an existing position to a privileged borrower.
func (e *Engine) LinkBorrower(ref string, borrowerID, positionID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Status.Terminal() {
		return fmt.Errorf("%w: position %s is %s", ErrState, positionID, p.Status)
	}
	if p.Borrower != nil && *p.Borrower != borrowerID {
		return fmt.Errorf("%w: position %s already linked to %s", ErrState, positionID, *p.Borrower)
	}

	if err := e.borrowers.Link(borrowerID, positionID); err != nil {
		return fmt.Errorf("%w: %s", ErrAuthorization, err)
	}
	id := borrowerID
	p.Borrower = &id
	p.Version++

	e.emit(&event.BorrowerLinked{
		BorrowerID: borrowerID,
		PositionID: positionID,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

// UnlinkBorrower decouples a position from its privileged borrower. A
// privileged-rate position cannot be left without a link; it has to be
// tagged or moved to an ordinary rate first.
func (e *Engine) UnlinkBorrower(ref string, borrowerID, positionID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()

	p, err := e.position(positionID)
	if err != nil {
		return err
	}
	if p.Borrower == nil || *p.Borrower != borrowerID {
		return fmt.Errorf("%w: position %s not linked to %s", ErrState, positionID, borrowerID)
	}
	if p.Rate.IsPrivileged() {
		return fmt.Errorf("%w: privileged-rate position %s requires a link", ErrState, positionID)
	}

	e.borrowers.Unlink(borrowerID, positionID)
	p.Borrower = nil
	p.Version++

	e.emit(&event.BorrowerUnlinked{
		BorrowerID: borrowerID,
		PositionID: positionID,
		Timestamp:  now,
	}, ref, now, nil)

	return nil
}

func minutesToDuration(minutes *int64) *time.Duration {
	if minutes == nil {
		return nil
	}
	d := time.Duration(*minutes) * time.Minute
	return &d
}

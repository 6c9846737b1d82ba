package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionOpened records a newly opened debt position.
type PositionOpened struct {
	PositionID       uuid.UUID       `json:"position_id"`
	Collateral       string          `json:"collateral"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	PoolDebt         decimal.Decimal `json:"pool_debt"`
	MintedAmount     decimal.Decimal `json:"minted_amount"`
	UpfrontFee       decimal.Decimal `json:"upfront_fee"`
	RateWire         decimal.Decimal `json:"rate"`
	Borrower         *uuid.UUID      `json:"borrower,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
}

func (e *PositionOpened) EventType() EventType      { return EventTypePositionOpened }
func (e *PositionOpened) CollateralAsset() *string  { return &e.Collateral }

// PositionClosed records a full repayment and close.
type PositionClosed struct {
	PositionID         uuid.UUID       `json:"position_id"`
	Collateral         string          `json:"collateral"`
	DebtRepaid         decimal.Decimal `json:"debt_repaid"`
	CollateralReturned decimal.Decimal `json:"collateral_returned"`
	Timestamp          time.Time       `json:"timestamp"`
}

func (e *PositionClosed) EventType() EventType     { return EventTypePositionClosed }
func (e *PositionClosed) CollateralAsset() *string { return &e.Collateral }

// CollateralToppedUp records added collateral.
type CollateralToppedUp struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Amount     decimal.Decimal `json:"amount"`
	NewRatio   decimal.Decimal `json:"new_ratio"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *CollateralToppedUp) EventType() EventType     { return EventTypeCollateralToppedUp }
func (e *CollateralToppedUp) CollateralAsset() *string { return &e.Collateral }

// CollateralRemoved records withdrawn collateral.
type CollateralRemoved struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Amount     decimal.Decimal `json:"amount"`
	NewRatio   decimal.Decimal `json:"new_ratio"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *CollateralRemoved) EventType() EventType     { return EventTypeCollateralRemoved }
func (e *CollateralRemoved) CollateralAsset() *string { return &e.Collateral }

// DebtBorrowed records additional stablecoin minted against a position.
type DebtBorrowed struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Amount     decimal.Decimal `json:"amount"`
	UpfrontFee decimal.Decimal `json:"upfront_fee"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *DebtBorrowed) EventType() EventType     { return EventTypeDebtBorrowed }
func (e *DebtBorrowed) CollateralAsset() *string { return &e.Collateral }

// DebtRepaid records a partial repayment.
type DebtRepaid struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *DebtRepaid) EventType() EventType     { return EventTypeDebtRepaid }
func (e *DebtRepaid) CollateralAsset() *string { return &e.Collateral }

// RateChanged records an interest rate change.
type RateChanged struct {
	PositionID  uuid.UUID       `json:"position_id"`
	Collateral  string          `json:"collateral"`
	OldRateWire decimal.Decimal `json:"old_rate"`
	NewRateWire decimal.Decimal `json:"new_rate"`
	UpfrontFee  decimal.Decimal `json:"upfront_fee"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (e *RateChanged) EventType() EventType     { return EventTypeRateChanged }
func (e *RateChanged) CollateralAsset() *string { return &e.Collateral }

// PositionTagged records a privileged position graduated to an ordinary
// rate and made redeemable.
type PositionTagged struct {
	PositionID  uuid.UUID       `json:"position_id"`
	Collateral  string          `json:"collateral"`
	NewRateWire decimal.Decimal `json:"new_rate"`
	TagFee      decimal.Decimal `json:"tag_fee"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (e *PositionTagged) EventType() EventType     { return EventTypePositionTagged }
func (e *PositionTagged) CollateralAsset() *string { return &e.Collateral }

// PositionMarked records the start of a liquidation notice period.
type PositionMarked struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Deadline   time.Time       `json:"deadline"`
	NoticeFee  decimal.Decimal `json:"notice_fee"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *PositionMarked) EventType() EventType     { return EventTypePositionMarked }
func (e *PositionMarked) CollateralAsset() *string { return &e.Collateral }

// PositionUnmarked records a marked position returning to Healthy.
type PositionUnmarked struct {
	PositionID uuid.UUID `json:"position_id"`
	Collateral string    `json:"collateral"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *PositionUnmarked) EventType() EventType     { return EventTypePositionUnmarked }
func (e *PositionUnmarked) CollateralAsset() *string { return &e.Collateral }

// LeftoverClaimed records a holder claiming leftover collateral after
// liquidation or redemption.
type LeftoverClaimed struct {
	PositionID uuid.UUID       `json:"position_id"`
	Collateral string          `json:"collateral"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *LeftoverClaimed) EventType() EventType     { return EventTypeLeftoverClaimed }
func (e *LeftoverClaimed) CollateralAsset() *string { return &e.Collateral }

// PositionBurned records the destruction of a settled position record.
type PositionBurned struct {
	PositionID uuid.UUID `json:"position_id"`
	Collateral string    `json:"collateral"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *PositionBurned) EventType() EventType     { return EventTypePositionBurned }
func (e *PositionBurned) CollateralAsset() *string { return &e.Collateral }

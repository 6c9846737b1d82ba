package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceUpdated records an oracle price change for a collateral.
type PriceUpdated struct {
	Collateral string          `json:"collateral"`
	Price      decimal.Decimal `json:"price"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *PriceUpdated) EventType() EventType     { return EventTypePriceUpdated }
func (e *PriceUpdated) CollateralAsset() *string { return &e.Collateral }

// CollateralCreated records a new accepted collateral asset.
type CollateralCreated struct {
	Collateral string          `json:"collateral"`
	MCR        decimal.Decimal `json:"mcr"`
	Price      decimal.Decimal `json:"price"`
	Accepted   bool            `json:"accepted"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *CollateralCreated) EventType() EventType     { return EventTypeCollateralCreated }
func (e *CollateralCreated) CollateralAsset() *string { return &e.Collateral }

// CollateralEdited records acceptance/MCR changes.
type CollateralEdited struct {
	Collateral string          `json:"collateral"`
	MCR        decimal.Decimal `json:"mcr"`
	Accepted   bool            `json:"accepted"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *CollateralEdited) EventType() EventType     { return EventTypeCollateralEdited }
func (e *CollateralEdited) CollateralAsset() *string { return &e.Collateral }

// ParamsUpdated records a protocol parameter change.
type ParamsUpdated struct {
	Section   string    `json:"section"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ParamsUpdated) EventType() EventType     { return EventTypeParamsUpdated }
func (e *ParamsUpdated) CollateralAsset() *string { return nil }

// BorrowerCreated records a new privileged borrower.
type BorrowerCreated struct {
	BorrowerID        uuid.UUID `json:"borrower_id"`
	RedemptionOptOut  bool      `json:"redemption_opt_out"`
	NoticeMinutes     *int64    `json:"notice_minutes,omitempty"`
	MaxCoupled        int64     `json:"max_coupled"`
	Timestamp         time.Time `json:"timestamp"`
}

func (e *BorrowerCreated) EventType() EventType     { return EventTypeBorrowerCreated }
func (e *BorrowerCreated) CollateralAsset() *string { return nil }

// BorrowerEdited records changes to a privileged borrower.
type BorrowerEdited struct {
	BorrowerID       uuid.UUID `json:"borrower_id"`
	RedemptionOptOut bool      `json:"redemption_opt_out"`
	NoticeMinutes    *int64    `json:"notice_minutes,omitempty"`
	MaxCoupled       int64     `json:"max_coupled"`
	Timestamp        time.Time `json:"timestamp"`
}

func (e *BorrowerEdited) EventType() EventType     { return EventTypeBorrowerEdited }
func (e *BorrowerEdited) CollateralAsset() *string { return nil }

// BorrowerLinked records coupling a position to a borrower.
type BorrowerLinked struct {
	BorrowerID uuid.UUID `json:"borrower_id"`
	PositionID uuid.UUID `json:"position_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *BorrowerLinked) EventType() EventType     { return EventTypeBorrowerLinked }
func (e *BorrowerLinked) CollateralAsset() *string { return nil }

// BorrowerUnlinked records decoupling a position from a borrower.
type BorrowerUnlinked struct {
	BorrowerID uuid.UUID `json:"borrower_id"`
	PositionID uuid.UUID `json:"position_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *BorrowerUnlinked) EventType() EventType     { return EventTypeBorrowerUnlinked }
func (e *BorrowerUnlinked) CollateralAsset() *string { return nil }

// SupplyMinted records a flash-liquidity mint that bypasses positions.
type SupplyMinted struct {
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

func (e *SupplyMinted) EventType() EventType     { return EventTypeSupplyMinted }
func (e *SupplyMinted) CollateralAsset() *string { return nil }

// SupplyBurned records a flash-liquidity burn.
type SupplyBurned struct {
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

func (e *SupplyBurned) EventType() EventType     { return EventTypeSupplyBurned }
func (e *SupplyBurned) CollateralAsset() *string { return nil }

package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionLiquidated records a completed liquidation.
type PositionLiquidated struct {
	PositionID  uuid.UUID       `json:"position_id"`
	Collateral  string          `json:"collateral"`
	DebtCovered decimal.Decimal `json:"debt_covered"`
	Payout      decimal.Decimal `json:"payout"`
	Leftover    decimal.Decimal `json:"leftover"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (e *PositionLiquidated) EventType() EventType     { return EventTypePositionLiquidated }
func (e *PositionLiquidated) CollateralAsset() *string { return &e.Collateral }

// PositionRedeemed records a redemption against a position, partial or
// full.
type PositionRedeemed struct {
	PositionID     uuid.UUID       `json:"position_id"`
	Collateral     string          `json:"collateral"`
	PaymentUsed    decimal.Decimal `json:"payment_used"`
	CollateralPaid decimal.Decimal `json:"collateral_paid"`
	Leftover       decimal.Decimal `json:"leftover"`
	FeeUsed        decimal.Decimal `json:"fee_used"`
	Full           bool            `json:"full"`
	Timestamp      time.Time       `json:"timestamp"`
}

func (e *PositionRedeemed) EventType() EventType     { return EventTypePositionRedeemed }
func (e *PositionRedeemed) CollateralAsset() *string { return &e.Collateral }

// InterestCharged records an interest accrual pass over a rate range.
type InterestCharged struct {
	Collateral    string          `json:"collateral"`
	RateStartWire decimal.Decimal `json:"rate_start"`
	RateEndWire   decimal.Decimal `json:"rate_end"`
	Minted        decimal.Decimal `json:"minted"`
	LowestRate    decimal.Decimal `json:"lowest_rate"`
	Timestamp     time.Time       `json:"timestamp"`
}

func (e *InterestCharged) EventType() EventType     { return EventTypeInterestCharged }
func (e *InterestCharged) CollateralAsset() *string { return &e.Collateral }

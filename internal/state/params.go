package state

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProtocolParameters are the global scalars governing position math.
// They are held by the engine and mutated only through explicit admin
// operations, never read from ambient state.
type ProtocolParameters struct {
	MinimumMint     decimal.Decimal
	LiquidationFine decimal.Decimal

	StopLiquidations bool
	StopOpenings     bool
	StopClosings     bool
	StopRedemption   bool

	MaxInterest      decimal.Decimal
	InterestInterval decimal.Decimal
	MaxBucketLength  int64

	DaysOfExtraInterestFee    int64
	FeelessRateChangeCooldown int64 // days

	RedemptionHalflifeK  decimal.Decimal
	RedemptionSpikeK     decimal.Decimal
	MinimumRedemptionFee decimal.Decimal
	MaximumRedemptionFee decimal.Decimal

	IrredeemableTagFee  decimal.Decimal
	LiquidationNoticeFee decimal.Decimal
}

// DefaultParameters returns the launch parameter set.
func DefaultParameters() ProtocolParameters {
	return ProtocolParameters{
		MinimumMint:               decimal.NewFromInt(1),
		LiquidationFine:           decimal.RequireFromString("0.10"),
		MaxInterest:               decimal.NewFromInt(1),
		InterestInterval:          decimal.RequireFromString("0.001"),
		MaxBucketLength:           250,
		DaysOfExtraInterestFee:    7,
		FeelessRateChangeCooldown: 7,
		RedemptionHalflifeK:       decimal.RequireFromString("0.999967910367636"),
		RedemptionSpikeK:          decimal.NewFromInt(1),
		MinimumRedemptionFee:      decimal.RequireFromString("0.005"),
		MaximumRedemptionFee:      decimal.RequireFromString("0.05"),
		IrredeemableTagFee:        decimal.NewFromInt(1),
		LiquidationNoticeFee:      decimal.NewFromInt(1),
	}
}

// Validate checks parameter sanity for admin updates.
func (p *ProtocolParameters) Validate() error {
	if p.MinimumMint.IsNegative() {
		return fmt.Errorf("minimum_mint must be >= 0, got %s", p.MinimumMint)
	}
	if p.LiquidationFine.IsNegative() {
		return fmt.Errorf("liquidation_fine must be >= 0, got %s", p.LiquidationFine)
	}
	if !p.MaxInterest.IsPositive() {
		return fmt.Errorf("max_interest must be > 0, got %s", p.MaxInterest)
	}
	if !p.InterestInterval.IsPositive() {
		return fmt.Errorf("interest_interval must be > 0, got %s", p.InterestInterval)
	}
	if p.MaxBucketLength <= 0 {
		return fmt.Errorf("max_bucket_length must be > 0, got %d", p.MaxBucketLength)
	}
	if p.MinimumRedemptionFee.IsNegative() {
		return fmt.Errorf("minimum_redemption_fee must be >= 0, got %s", p.MinimumRedemptionFee)
	}
	if p.MaximumRedemptionFee.Cmp(p.MinimumRedemptionFee) < 0 {
		return fmt.Errorf("maximum_redemption_fee (%s) must be >= minimum_redemption_fee (%s)",
			p.MaximumRedemptionFee, p.MinimumRedemptionFee)
	}
	if p.RedemptionHalflifeK.IsNegative() || p.RedemptionHalflifeK.Cmp(decimal.NewFromInt(1)) > 0 {
		return fmt.Errorf("redemption_halflife_k must be in [0, 1], got %s", p.RedemptionHalflifeK)
	}
	return nil
}

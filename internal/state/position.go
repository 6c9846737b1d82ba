package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionStatus tracks a debt position through its lifecycle.
type PositionStatus int32

const (
	// StatusHealthy: active and meeting its collateralization requirement.
	StatusHealthy PositionStatus = iota
	// StatusMarked: in a liquidation notice period (privileged borrowers).
	StatusMarked
	// StatusLiquidated: closed by a liquidator; leftover collateral claimable.
	StatusLiquidated
	// StatusRedeemed: fully closed through redemption; leftover claimable.
	StatusRedeemed
	// StatusClosed: fully repaid and closed by the borrower.
	StatusClosed
)

func (s PositionStatus) String() string {
	switch s {
	case StatusHealthy:
		return "Healthy"
	case StatusMarked:
		return "Marked"
	case StatusLiquidated:
		return "Liquidated"
	case StatusRedeemed:
		return "Redeemed"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status permits no further debt mutations.
func (s PositionStatus) Terminal() bool {
	return s == StatusLiquidated || s == StatusRedeemed || s == StatusClosed
}

// CanTransitionTo validates status transitions.
func (s PositionStatus) CanTransitionTo(next PositionStatus) bool {
	validTransitions := map[PositionStatus][]PositionStatus{
		StatusHealthy: {
			StatusMarked,
			StatusLiquidated,
			StatusRedeemed,
			StatusClosed,
		},
		StatusMarked: {
			StatusHealthy, // CR recovered
			StatusLiquidated,
			StatusRedeemed,
			StatusClosed,
		},
		// Terminal states only ever zero out their leftover claim;
		// no further transitions.
	}

	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}

	for _, allowedStatus := range allowed {
		if next == allowedStatus {
			return true
		}
	}

	return false
}

// Position is a collateralized debt position. While the status is
// terminal (Liquidated/Redeemed), CollateralAmount holds the leftover
// collateral claimable by the holder; everywhere else it is the active
// collateral backing the debt.
type Position struct {
	ID               uuid.UUID
	Collateral       string
	CollateralAmount decimal.Decimal
	PoolDebt         decimal.Decimal
	// Ratio caches CollateralAmount / PoolDebt; it must always equal the
	// ranking-index bucket the position sits in.
	Ratio          decimal.Decimal
	Rate           Rate
	LastRateChange time.Time
	Status         PositionStatus
	Borrower       *uuid.UUID
	Version        int64
}

// RecomputeRatio refreshes the cached ratio from the debt fields.
func (p *Position) RecomputeRatio() {
	if p.PoolDebt.IsZero() {
		p.Ratio = decimal.Zero
		return
	}
	p.Ratio = p.CollateralAmount.Div(p.PoolDebt)
}

// CanonicalBytes returns deterministic serialization for hashing.
func (p *Position) CanonicalBytes() []byte {
	buf := make([]byte, 0, 160)

	// id (16 bytes UUID binary)
	buf = append(buf, p.ID[:]...)

	// collateral (length-prefixed)
	buf = append(buf, byte(len(p.Collateral)))
	buf = append(buf, []byte(p.Collateral)...)

	// decimal fields (length-prefixed canonical strings)
	buf = appendDecimal(buf, p.CollateralAmount)
	buf = appendDecimal(buf, p.PoolDebt)
	buf = appendDecimal(buf, p.Ratio)
	buf = appendDecimal(buf, p.Rate.Wire())

	// last_rate_change (8 bytes LE, unix seconds)
	buf = appendInt64LE(buf, p.LastRateChange.Unix())

	// status (1 byte)
	buf = append(buf, byte(p.Status))

	// borrower link (0x00 = none, 0x01 + 16 bytes)
	if p.Borrower != nil {
		buf = append(buf, 0x01)
		buf = append(buf, p.Borrower[:]...)
	} else {
		buf = append(buf, 0x00)
	}

	return buf
}

func appendDecimal(buf []byte, d decimal.Decimal) []byte {
	s := d.String()
	buf = append(buf, byte(len(s)))
	return append(buf, []byte(s)...)
}

func appendInt64LE(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

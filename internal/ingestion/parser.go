package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PriceUpdate is a parsed oracle price message.
type PriceUpdate struct {
	Asset         string
	USDPrice      decimal.Decimal
	PriceSequence int64
	Source        string
	Timestamp     time.Time
}

// InterestCharge is a parsed keeper trigger asking the engine to accrue
// interest for a wire-rate range of one collateral's tiers. Nil rate
// bounds mean the keeper wants the full range; the consumer fills in the
// protocol-wide defaults before calling the engine.
type InterestCharge struct {
	Collateral     string
	RateStart      *decimal.Decimal
	RateEnd        *decimal.Decimal
	SubstituteRate decimal.Decimal
	Sequence       int64
	Timestamp      time.Time
}

// --- JSON wire formats ---
// Field names use snake_case to match upstream producers. Decimal fields
// are JSON strings to avoid float rounding on the wire.

type priceUpdateJSON struct {
	Asset         string          `json:"asset"`
	USDPrice      decimal.Decimal `json:"usd_price"`
	PriceSequence int64           `json:"price_sequence"`
	Source        string          `json:"source,omitempty"`
	TimestampUs   int64           `json:"timestamp_us"`
}

// ParsePriceUpdate converts raw oracle bytes into a validated PriceUpdate.
func ParsePriceUpdate(data []byte) (*PriceUpdate, error) {
	var j priceUpdateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PriceUpdate: %w", err)
	}

	if j.Asset == "" {
		return nil, fmt.Errorf("parse PriceUpdate: missing asset")
	}
	if !j.USDPrice.IsPositive() {
		return nil, fmt.Errorf("parse PriceUpdate: non-positive price %s", j.USDPrice)
	}
	if j.PriceSequence <= 0 {
		return nil, fmt.Errorf("parse PriceUpdate: missing price_sequence")
	}

	return &PriceUpdate{
		Asset:         j.Asset,
		USDPrice:      j.USDPrice,
		PriceSequence: j.PriceSequence,
		Source:        j.Source,
		Timestamp:     time.UnixMicro(j.TimestampUs),
	}, nil
}

type interestChargeJSON struct {
	Collateral     string           `json:"collateral"`
	RateStart      *decimal.Decimal `json:"rate_start,omitempty"`
	RateEnd        *decimal.Decimal `json:"rate_end,omitempty"`
	SubstituteRate decimal.Decimal  `json:"substitute_rate"`
	Sequence       int64            `json:"sequence"`
	TimestampUs    int64            `json:"timestamp_us"`
}

// ParseInterestCharge converts raw keeper bytes into a validated
// InterestCharge.
func ParseInterestCharge(data []byte) (*InterestCharge, error) {
	var j interestChargeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse InterestCharge: %w", err)
	}

	if j.Collateral == "" {
		return nil, fmt.Errorf("parse InterestCharge: missing collateral")
	}
	if j.RateStart != nil && j.RateEnd != nil && j.RateEnd.Cmp(*j.RateStart) <= 0 {
		return nil, fmt.Errorf("parse InterestCharge: empty rate range [%s, %s)", j.RateStart, j.RateEnd)
	}
	if j.SubstituteRate.IsNegative() {
		return nil, fmt.Errorf("parse InterestCharge: negative substitute_rate %s", j.SubstituteRate)
	}
	if j.Sequence <= 0 {
		return nil, fmt.Errorf("parse InterestCharge: missing sequence")
	}

	return &InterestCharge{
		Collateral:     j.Collateral,
		RateStart:      j.RateStart,
		RateEnd:        j.RateEnd,
		SubstituteRate: j.SubstituteRate,
		Sequence:       j.Sequence,
		Timestamp:      time.UnixMicro(j.TimestampUs),
	}, nil
}

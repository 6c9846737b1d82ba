package state

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collateral is the per-asset registry record: oracle price, minimum
// collateralization ratio, acceptance flag, aggregate totals, the interest
// tier ledger and the ratio ranking index. Escrow balances (active,
// leftover, uncharged interest) live in the named-balance ledger, not here.
type Collateral struct {
	Asset           string
	MCR             decimal.Decimal
	USDPrice        decimal.Decimal
	Accepted        bool
	TotalDebt       decimal.Decimal
	TotalCollateral decimal.Decimal

	Tiers  *TierLedger
	Ratios *RatioIndex

	// MarkedDeadlines records, per marked position, the instant after
	// which liquidation may proceed.
	MarkedDeadlines map[uuid.UUID]time.Time
}

func NewCollateral(asset string, mcr, usdPrice decimal.Decimal, accepted bool) *Collateral {
	return &Collateral{
		Asset:           asset,
		MCR:             mcr,
		USDPrice:        usdPrice,
		Accepted:        accepted,
		Tiers:           NewTierLedger(),
		Ratios:          NewRatioIndex(),
		MarkedDeadlines: make(map[uuid.UUID]time.Time),
	}
}

// DebtMultiplier returns the tier's multiplier, or 1 for a missing tier.
func (c *Collateral) DebtMultiplier(r Rate) decimal.Decimal {
	t, ok := c.Tiers.Get(r)
	if !ok {
		return decimal.NewFromInt(1)
	}
	return t.DebtMultiplier()
}

// RealToPool converts a real debt amount to pool units at the tier's
// current multiplier.
func (c *Collateral) RealToPool(r Rate, amount decimal.Decimal) decimal.Decimal {
	return amount.Div(c.DebtMultiplier(r))
}

// PoolToReal converts a pool debt amount to real units at the tier's
// current multiplier.
func (c *Collateral) PoolToReal(r Rate, amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.DebtMultiplier(r))
}

// LiquidationRatio returns the pool-unit ratio threshold below which a
// position at this rate is liquidatable: MCR * multiplier / price.
func (c *Collateral) LiquidationRatio(r Rate) decimal.Decimal {
	return c.MCR.Mul(c.DebtMultiplier(r)).Div(c.USDPrice)
}

// CollateralRegistry holds every collateral asset by identifier.
type CollateralRegistry struct {
	assets map[string]*Collateral
}

func NewCollateralRegistry() *CollateralRegistry {
	return &CollateralRegistry{
		assets: make(map[string]*Collateral),
	}
}

func (cr *CollateralRegistry) Get(asset string) (*Collateral, bool) {
	c, ok := cr.assets[asset]
	return c, ok
}

func (cr *CollateralRegistry) Put(c *Collateral) {
	cr.assets[c.Asset] = c
}

func (cr *CollateralRegistry) Len() int {
	return len(cr.assets)
}

// All returns collaterals sorted by asset id for deterministic iteration.
func (cr *CollateralRegistry) All() []*Collateral {
	out := make([]*Collateral, 0, len(cr.assets))
	for _, c := range cr.assets {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Asset < out[j].Asset
	})
	return out
}

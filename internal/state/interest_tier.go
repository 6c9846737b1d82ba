package state

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// InterestTier aggregates all debt at one (collateral, rate) pair.
// PoolDebt is the normalized unit assigned to positions; RealDebt is the
// stablecoin-denominated total including accrued interest. The ratio of
// the two is the tier's debt multiplier.
type InterestTier struct {
	Rate             Rate
	PoolDebt         decimal.Decimal
	RealDebt         decimal.Decimal
	CollateralAmount decimal.Decimal
	// RankedEntries counts distinct ratio buckets in the ranking index.
	// The tier is garbage collected when it reaches zero.
	RankedEntries int64
	LastCharge    time.Time
}

// DebtMultiplier returns RealDebt/PoolDebt, or 1 when either is zero.
func (t *InterestTier) DebtMultiplier() decimal.Decimal {
	if t.PoolDebt.IsZero() || t.RealDebt.IsZero() {
		return decimal.NewFromInt(1)
	}
	return t.RealDebt.Div(t.PoolDebt)
}

// TierLedger keeps one collateral's interest tiers ordered ascending by
// rate (privileged first, matching its wire encoding).
type TierLedger struct {
	tiers []*InterestTier
}

func NewTierLedger() *TierLedger {
	return &TierLedger{}
}

func (tl *TierLedger) search(r Rate) int {
	return sort.Search(len(tl.tiers), func(i int) bool {
		return tl.tiers[i].Rate.Cmp(r) >= 0
	})
}

func (tl *TierLedger) Get(r Rate) (*InterestTier, bool) {
	i := tl.search(r)
	if i < len(tl.tiers) && tl.tiers[i].Rate.Equal(r) {
		return tl.tiers[i], true
	}
	return nil, false
}

// Ensure returns the tier for r, creating it lazily with a zeroed record
// and last-charge time of now.
func (tl *TierLedger) Ensure(r Rate, now time.Time) *InterestTier {
	i := tl.search(r)
	if i < len(tl.tiers) && tl.tiers[i].Rate.Equal(r) {
		return tl.tiers[i]
	}
	t := &InterestTier{Rate: r, LastCharge: now}
	tl.tiers = append(tl.tiers, nil)
	copy(tl.tiers[i+1:], tl.tiers[i:])
	tl.tiers[i] = t
	return t
}

func (tl *TierLedger) Remove(r Rate) {
	i := tl.search(r)
	if i < len(tl.tiers) && tl.tiers[i].Rate.Equal(r) {
		tl.tiers = append(tl.tiers[:i], tl.tiers[i+1:]...)
	}
}

func (tl *TierLedger) Len() int {
	return len(tl.tiers)
}

// Ascend visits tiers with wire rate in [start, end) in ascending order.
// The callback returns false to stop early.
func (tl *TierLedger) Ascend(start, end decimal.Decimal, fn func(*InterestTier) bool) {
	for _, t := range tl.tiers {
		w := t.Rate.Wire()
		if w.Cmp(start) < 0 {
			continue
		}
		if w.Cmp(end) >= 0 {
			return
		}
		if !fn(t) {
			return
		}
	}
}

// AscendOrdinary visits ordinary-rate tiers ascending from rate zero.
func (tl *TierLedger) AscendOrdinary(fn func(*InterestTier) bool) {
	for _, t := range tl.tiers {
		if t.Rate.IsPrivileged() || t.Rate.Wire().IsNegative() {
			continue
		}
		if !fn(t) {
			return
		}
	}
}

// LowestOrdinary returns the lowest active ordinary rate, or zero when no
// ordinary tier exists.
func (tl *TierLedger) LowestOrdinary() decimal.Decimal {
	lowest := decimal.Zero
	tl.AscendOrdinary(func(t *InterestTier) bool {
		lowest = t.Rate.Value()
		return false
	})
	return lowest
}

// DebtInFront sums real debt across ordinary tiers with rates strictly
// below the given rate: the debt redeemed before that rate's positions.
func (tl *TierLedger) DebtInFront(rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	tl.Ascend(decimal.Zero, rate, func(t *InterestTier) bool {
		total = total.Add(t.RealDebt)
		return true
	})
	return total
}

// All returns tiers in ascending rate order.
func (tl *TierLedger) All() []*InterestTier {
	out := make([]*InterestTier, len(tl.tiers))
	copy(out, tl.tiers)
	return out
}

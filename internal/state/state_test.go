package state_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/state"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ============================================================
// Test: Rate encoding and ordering
// ============================================================

func TestRateWireRoundTrip(t *testing.T) {
	r := state.OrdinaryRate(dec("0.05"))
	if r.IsPrivileged() {
		t.Error("ordinary rate reports privileged")
	}
	if !r.Wire().Equal(dec("0.05")) {
		t.Errorf("wire = %s, want 0.05", r.Wire())
	}
	if !state.RateFromWire(r.Wire()).Equal(r) {
		t.Error("wire round trip lost identity")
	}

	p := state.RateFromWire(state.PrivilegedWireRate)
	if !p.IsPrivileged() {
		t.Error("privileged sentinel not decoded")
	}
	if !p.Value().IsZero() {
		t.Errorf("privileged Value() = %s, want 0", p.Value())
	}
	if !p.Wire().Equal(state.PrivilegedWireRate) {
		t.Errorf("privileged wire = %s, want %s", p.Wire(), state.PrivilegedWireRate)
	}
	if p.String() != "privileged" {
		t.Errorf("privileged String() = %q", p.String())
	}
}

func TestRateOrdering(t *testing.T) {
	priv := state.PrivilegedRate()
	zero := state.OrdinaryRate(decimal.Zero)
	five := state.OrdinaryRate(dec("0.05"))

	if priv.Cmp(zero) >= 0 {
		t.Error("privileged should sort before rate zero")
	}
	if zero.Cmp(five) >= 0 {
		t.Error("rate 0 should sort before 0.05")
	}
	if five.Cmp(five) != 0 {
		t.Error("rate not equal to itself under Cmp")
	}
	if priv.Equal(state.OrdinaryRate(state.PrivilegedWireRate)) {
		t.Error("privileged tag equal to ordinary rate with sentinel value")
	}
}

// ============================================================
// Test: Position status machine
// ============================================================

func TestPositionStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to state.PositionStatus
		want     bool
	}{
		{state.StatusHealthy, state.StatusMarked, true},
		{state.StatusHealthy, state.StatusLiquidated, true},
		{state.StatusHealthy, state.StatusRedeemed, true},
		{state.StatusHealthy, state.StatusClosed, true},
		{state.StatusMarked, state.StatusHealthy, true},
		{state.StatusMarked, state.StatusLiquidated, true},
		{state.StatusLiquidated, state.StatusHealthy, false},
		{state.StatusRedeemed, state.StatusClosed, false},
		{state.StatusClosed, state.StatusHealthy, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPositionStatusTerminal(t *testing.T) {
	for _, s := range []state.PositionStatus{state.StatusLiquidated, state.StatusRedeemed, state.StatusClosed} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []state.PositionStatus{state.StatusHealthy, state.StatusMarked} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestRecomputeRatio(t *testing.T) {
	p := state.Position{
		CollateralAmount: dec("10"),
		PoolDebt:         dec("4"),
	}
	p.RecomputeRatio()
	if !p.Ratio.Equal(dec("2.5")) {
		t.Errorf("ratio = %s, want 2.5", p.Ratio)
	}

	p.PoolDebt = decimal.Zero
	p.RecomputeRatio()
	if !p.Ratio.IsZero() {
		t.Errorf("ratio with zero debt = %s, want 0", p.Ratio)
	}
}

func TestCanonicalBytesDeterministic(t *testing.T) {
	borrower := uuid.New()
	p := state.Position{
		ID:               uuid.New(),
		Collateral:       "ETH",
		CollateralAmount: dec("10"),
		PoolDebt:         dec("1000"),
		Ratio:            dec("0.01"),
		Rate:             state.OrdinaryRate(dec("0.05")),
		LastRateChange:   time.Unix(1_750_000_000, 0),
		Status:           state.StatusHealthy,
		Borrower:         &borrower,
	}

	a := p.CanonicalBytes()
	b := p.CanonicalBytes()
	if !bytes.Equal(a, b) {
		t.Error("canonical bytes differ across calls")
	}

	p.PoolDebt = dec("1001")
	if bytes.Equal(a, p.CanonicalBytes()) {
		t.Error("debt change did not change canonical bytes")
	}
}

// ============================================================
// Test: Protocol parameters
// ============================================================

func TestDefaultParametersValid(t *testing.T) {
	p := state.DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Errorf("default parameters invalid: %v", err)
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*state.ProtocolParameters)
	}{
		{"negative minimum mint", func(p *state.ProtocolParameters) { p.MinimumMint = dec("-1") }},
		{"negative liquidation fine", func(p *state.ProtocolParameters) { p.LiquidationFine = dec("-0.1") }},
		{"zero max interest", func(p *state.ProtocolParameters) { p.MaxInterest = decimal.Zero }},
		{"zero interest interval", func(p *state.ProtocolParameters) { p.InterestInterval = decimal.Zero }},
		{"zero bucket length", func(p *state.ProtocolParameters) { p.MaxBucketLength = 0 }},
		{"max fee below min fee", func(p *state.ProtocolParameters) { p.MaximumRedemptionFee = dec("0.001") }},
		{"halflife above one", func(p *state.ProtocolParameters) { p.RedemptionHalflifeK = dec("1.5") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := state.DefaultParameters()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// ============================================================
// Test: Tier ledger
// ============================================================

func TestTierLedgerOrderingAndLookup(t *testing.T) {
	tl := state.NewTierLedger()
	now := time.Unix(1_750_000_000, 0)

	tl.Ensure(state.OrdinaryRate(dec("0.05")), now)
	tl.Ensure(state.OrdinaryRate(dec("0.01")), now)
	tl.Ensure(state.PrivilegedRate(), now)

	all := tl.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if !all[0].Rate.IsPrivileged() {
		t.Error("privileged tier should sort first")
	}
	if !all[1].Rate.Wire().Equal(dec("0.01")) || !all[2].Rate.Wire().Equal(dec("0.05")) {
		t.Errorf("ordinary tiers out of order: %s, %s", all[1].Rate, all[2].Rate)
	}

	if _, ok := tl.Get(state.OrdinaryRate(dec("0.05"))); !ok {
		t.Error("existing tier not found")
	}
	if _, ok := tl.Get(state.OrdinaryRate(dec("0.02"))); ok {
		t.Error("missing tier found")
	}

	// Ensure is idempotent.
	tl.Ensure(state.OrdinaryRate(dec("0.05")), now)
	if tl.Len() != 3 {
		t.Errorf("len after duplicate Ensure = %d, want 3", tl.Len())
	}

	tl.Remove(state.OrdinaryRate(dec("0.01")))
	if tl.Len() != 2 {
		t.Errorf("len after remove = %d, want 2", tl.Len())
	}
}

func TestTierLedgerOrdinaryTraversal(t *testing.T) {
	tl := state.NewTierLedger()
	now := time.Unix(1_750_000_000, 0)

	priv := tl.Ensure(state.PrivilegedRate(), now)
	priv.RealDebt = dec("500")
	low := tl.Ensure(state.OrdinaryRate(dec("0.02")), now)
	low.RealDebt = dec("100")
	high := tl.Ensure(state.OrdinaryRate(dec("0.05")), now)
	high.RealDebt = dec("300")

	var visited []string
	tl.AscendOrdinary(func(tier *state.InterestTier) bool {
		visited = append(visited, tier.Rate.String())
		return true
	})
	if len(visited) != 2 || visited[0] != "0.02" || visited[1] != "0.05" {
		t.Errorf("ordinary traversal visited %v", visited)
	}

	if got := tl.LowestOrdinary(); !got.Equal(dec("0.02")) {
		t.Errorf("lowest ordinary = %s, want 0.02", got)
	}

	// Debt in front of 0.05 counts only ordinary tiers strictly below it.
	if got := tl.DebtInFront(dec("0.05")); !got.Equal(dec("100")) {
		t.Errorf("debt in front = %s, want 100", got)
	}
}

func TestTierDebtMultiplier(t *testing.T) {
	tier := &state.InterestTier{}
	if !tier.DebtMultiplier().Equal(decimal.NewFromInt(1)) {
		t.Errorf("empty tier multiplier = %s, want 1", tier.DebtMultiplier())
	}

	tier.PoolDebt = dec("100")
	tier.RealDebt = dec("105")
	if !tier.DebtMultiplier().Equal(dec("1.05")) {
		t.Errorf("multiplier = %s, want 1.05", tier.DebtMultiplier())
	}
}

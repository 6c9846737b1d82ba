package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/core"
	"StableLedger/internal/state"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testClock is a manually advanced clock injected into the engine so
// cooldowns, notice periods and interest accrual are deterministic.
type testClock struct {
	now time.Time
}

func (tc *testClock) Now() time.Time {
	return tc.now
}

func (tc *testClock) Advance(d time.Duration) {
	tc.now = tc.now.Add(d)
}

func newTestEngine(t *testing.T) (*core.Engine, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	e := core.NewEngine(core.EngineConfig{
		Params:         state.DefaultParameters(),
		PersistChan:    make(chan core.PersistRequest, 4096),
		ProjectionChan: make(chan core.ProjectionUpdate, 4096),
		Now:            clock.Now,
	})
	return e, clock
}

func mustCreateCollateral(t *testing.T, e *core.Engine, asset, mcr, price string) {
	t.Helper()
	if err := e.CreateCollateral("create-"+asset, asset, dec(mcr), dec(price), true); err != nil {
		t.Fatalf("create collateral %s: %v", asset, err)
	}
}

func mustOpen(t *testing.T, e *core.Engine, p core.OpenPositionParams) state.Position {
	t.Helper()
	pos, err := e.OpenPosition(p)
	if err != nil {
		t.Fatalf("open position: %v", err)
	}
	return pos
}

func mustRealDebt(t *testing.T, e *core.Engine, id uuid.UUID) decimal.Decimal {
	t.Helper()
	d, err := e.RealDebtOf(id)
	if err != nil {
		t.Fatalf("real debt of %s: %v", id, err)
	}
	return d
}

func mustSetPrice(t *testing.T, e *core.Engine, asset, price string) {
	t.Helper()
	if err := e.SetPrice("price-"+asset+"-"+price, asset, dec(price)); err != nil {
		t.Fatalf("set price: %v", err)
	}
}

// ============================================================
// Test: Open position
// ============================================================

func TestOpenPosition_EscrowsAndMints(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref:              "open-1",
		PositionID:       uuid.New(),
		Collateral:       "ETH",
		CollateralAmount: dec("10"),
		MintAmount:       dec("1000"),
		RateWire:         dec("0.05"),
	})

	if pos.Status != state.StatusHealthy {
		t.Errorf("status = %s, want Healthy", pos.Status)
	}
	if got := e.Vaults().VaultBalance("ETH"); !got.Equal(dec("10")) {
		t.Errorf("vault = %s, want 10", got)
	}

	// The borrower receives exactly the requested mint; the upfront fee is
	// minted on top and escrowed.
	if got := e.Vaults().HoldersSupply(); !got.Equal(dec("1000")) {
		t.Errorf("holders = %s, want 1000", got)
	}
	circ := e.CirculatingSupply()
	if circ.Cmp(dec("1000")) <= 0 || circ.Cmp(dec("1001")) >= 0 {
		t.Errorf("circulating = %s, want in (1000, 1001)", circ)
	}
	escrow := e.Vaults().FeeEscrowBalance("ETH")
	if !escrow.Equal(circ.Sub(dec("1000"))) {
		t.Errorf("fee escrow %s does not equal circulating minus mint %s", escrow, circ.Sub(dec("1000")))
	}
	if !mustRealDebt(t, e, pos.ID).Equal(circ) {
		t.Errorf("real debt %s != circulating %s for the only position", mustRealDebt(t, e, pos.ID), circ)
	}
	if e.Sequence() != 2 {
		t.Errorf("sequence = %d, want 2 (create + open)", e.Sequence())
	}
}

func TestOpenPosition_PrivilegedPaysNoFee(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref:              "open-priv",
		PositionID:       uuid.New(),
		Collateral:       "ETH",
		CollateralAmount: dec("10"),
		MintAmount:       dec("1000"),
		RateWire:         state.PrivilegedWireRate,
		Borrower:         &borrower,
	})

	if !pos.Rate.IsPrivileged() {
		t.Error("position rate not privileged")
	}
	if !e.CirculatingSupply().Equal(dec("1000")) {
		t.Errorf("circulating = %s, want exactly 1000 (no upfront fee)", e.CirculatingSupply())
	}
	if !e.Vaults().FeeEscrowBalance("ETH").IsZero() {
		t.Errorf("fee escrow = %s, want 0", e.Vaults().FeeEscrowBalance("ETH"))
	}
}

func TestOpenPosition_Validation(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	if err := e.CreateCollateral("create-OFF", "OFF", dec("1.1"), dec("100"), false); err != nil {
		t.Fatalf("create unaccepted collateral: %v", err)
	}

	existing := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Registered but without redemption opt-out, so ineligible for the
	// privileged rate.
	optIn := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{Ref: "b-optin", BorrowerID: optIn, MaxCoupled: 2}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	base := func() core.OpenPositionParams {
		return core.OpenPositionParams{
			Ref: "open-x", PositionID: uuid.New(), Collateral: "ETH",
			CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*core.OpenPositionParams)
		wantErr error
	}{
		{"unknown collateral", func(p *core.OpenPositionParams) { p.Collateral = "DOGE" }, core.ErrState},
		{"not accepted", func(p *core.OpenPositionParams) { p.Collateral = "OFF" }, core.ErrValidation},
		{"duplicate id", func(p *core.OpenPositionParams) { p.PositionID = existing.ID }, core.ErrValidation},
		{"zero collateral", func(p *core.OpenPositionParams) { p.CollateralAmount = decimal.Zero }, core.ErrValidation},
		{"mint below minimum", func(p *core.OpenPositionParams) { p.MintAmount = dec("0.5") }, core.ErrValidation},
		{"negative rate", func(p *core.OpenPositionParams) { p.RateWire = dec("-0.01") }, core.ErrValidation},
		{"off-grid rate", func(p *core.OpenPositionParams) { p.RateWire = dec("0.0505") }, core.ErrValidation},
		{"rate at max", func(p *core.OpenPositionParams) { p.RateWire = dec("1") }, core.ErrValidation},
		{"rate above max", func(p *core.OpenPositionParams) { p.RateWire = dec("1.5") }, core.ErrValidation},
		{"privileged without borrower", func(p *core.OpenPositionParams) { p.RateWire = state.PrivilegedWireRate }, core.ErrAuthorization},
		{"privileged without opt-out", func(p *core.OpenPositionParams) {
			p.RateWire = state.PrivilegedWireRate
			p.Borrower = &optIn
		}, core.ErrAuthorization},
		{"undercollateralized", func(p *core.OpenPositionParams) { p.CollateralAmount = dec("0.5") }, core.ErrSolvency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(&p)
			_, err := e.OpenPosition(p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenPosition_StoppedOpenings(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	if err := e.SetStops("stops-1", false, true, false, false); err != nil {
		t.Fatalf("set stops: %v", err)
	}

	_, err := e.OpenPosition(core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	if !errors.Is(err, core.ErrPaused) {
		t.Errorf("got %v, want ErrPaused", err)
	}
}

// ============================================================
// Test: Collateral adjustments
// ============================================================

func TestTopUpAndRemoveCollateral(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	if err := e.TopUpCollateral("topup-1", pos.ID, dec("5")); err != nil {
		t.Fatalf("top up: %v", err)
	}
	if got := e.Vaults().VaultBalance("ETH"); !got.Equal(dec("15")) {
		t.Errorf("vault after top up = %s, want 15", got)
	}

	if err := e.RemoveCollateral("remove-1", pos.ID, dec("10")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := e.Vaults().VaultBalance("ETH"); !got.Equal(dec("5")) {
		t.Errorf("vault after remove = %s, want 5", got)
	}

	updated, err := e.GetPosition(pos.ID)
	if err != nil {
		t.Fatalf("get position: %v", err)
	}
	if !updated.CollateralAmount.Equal(dec("5")) {
		t.Errorf("collateral = %s, want 5", updated.CollateralAmount)
	}

	// Withdrawing the full amount is never allowed; close instead.
	if err := e.RemoveCollateral("remove-2", pos.ID, dec("5")); !errors.Is(err, core.ErrValidation) {
		t.Errorf("full withdrawal: got %v, want ErrValidation", err)
	}
	// A withdrawal breaking the collateralization requirement is rejected.
	if err := e.RemoveCollateral("remove-3", pos.ID, dec("4.5")); !errors.Is(err, core.ErrSolvency) {
		t.Errorf("cr-breaking withdrawal: got %v, want ErrSolvency", err)
	}
}

// ============================================================
// Test: Borrow / repay / close
// ============================================================

func TestBorrowRepayCloseRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	if err := e.BorrowMore("borrow-1", pos.ID, dec("500")); err != nil {
		t.Fatalf("borrow more: %v", err)
	}
	afterBorrow := mustRealDebt(t, e, pos.ID)
	if afterBorrow.Cmp(dec("1500")) <= 0 {
		t.Errorf("debt after borrow = %s, want > 1500 (fee on new debt)", afterBorrow)
	}

	change, err := e.RepayDebt("repay-1", pos.ID, dec("200"))
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if !change.IsZero() {
		t.Errorf("partial repay change = %s, want 0", change)
	}
	if got := mustRealDebt(t, e, pos.ID); !got.Equal(afterBorrow.Sub(dec("200"))) {
		t.Errorf("debt after repay = %s, want %s", got, afterBorrow.Sub(dec("200")))
	}

	realDebt := mustRealDebt(t, e, pos.ID)
	change, released, err := e.ClosePosition("close-1", pos.ID, realDebt.Add(dec("50")))
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if !change.Equal(dec("50")) {
		t.Errorf("close change = %s, want 50", change)
	}
	if !released.Equal(dec("10")) {
		t.Errorf("released = %s, want 10", released)
	}

	closed, err := e.GetPosition(pos.ID)
	if err != nil {
		t.Fatalf("get position: %v", err)
	}
	if closed.Status != state.StatusClosed {
		t.Errorf("status = %s, want Closed", closed.Status)
	}
	if !closed.PoolDebt.IsZero() || !closed.CollateralAmount.IsZero() {
		t.Errorf("closed position retains debt %s / collateral %s", closed.PoolDebt, closed.CollateralAmount)
	}

	// Every minted unit was burned back, fees included.
	if !e.CirculatingSupply().IsZero() {
		t.Errorf("circulating after close = %s, want 0", e.CirculatingSupply())
	}
	if !e.Vaults().VaultBalance("ETH").IsZero() {
		t.Errorf("vault after close = %s, want 0", e.Vaults().VaultBalance("ETH"))
	}
}

func TestRepayDebt_MustLeaveMinimum(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	realDebt := mustRealDebt(t, e, pos.ID)
	_, err := e.RepayDebt("repay-1", pos.ID, realDebt.Sub(dec("0.5")))
	if !errors.Is(err, core.ErrValidation) {
		t.Errorf("repay leaving dust: got %v, want ErrValidation", err)
	}

	// An underpaying close is rejected outright.
	if _, _, err := e.ClosePosition("close-1", pos.ID, dec("900")); !errors.Is(err, core.ErrInsufficientFunds) {
		t.Errorf("underpaying close: got %v, want ErrInsufficientFunds", err)
	}
}

// ============================================================
// Test: Liquidation
// ============================================================

func TestLiquidate_SolventRejected(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	if _, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000")}); !errors.Is(err, core.ErrState) {
		t.Errorf("liquidating solvent position: got %v, want ErrState", err)
	}

	ok, err := e.CheckLiquidate("check-1", pos.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Error("solvent position reported liquidatable")
	}
}

func TestLiquidate_FullPayoutNoLeftover(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Backing drops below 100%: the liquidator takes all the collateral.
	mustSetPrice(t, e, "ETH", "1000")

	ok, err := e.CheckLiquidate("check-1", pos.ID)
	if err != nil || !ok {
		t.Fatalf("check = (%v, %v), want (true, nil)", ok, err)
	}

	realDebt := mustRealDebt(t, e, pos.ID)
	res, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: realDebt.Add(dec("7"))})
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	if res.Marked {
		t.Error("liquidation without notice marked the position")
	}
	if !res.Change.Equal(dec("7")) {
		t.Errorf("change = %s, want 7", res.Change)
	}
	if !res.Payout.Equal(dec("1")) {
		t.Errorf("payout = %s, want the full collateral 1", res.Payout)
	}

	liquidated, _ := e.GetPosition(pos.ID)
	if liquidated.Status != state.StatusLiquidated {
		t.Errorf("status = %s, want Liquidated", liquidated.Status)
	}
	if !e.Vaults().VaultBalance("ETH").IsZero() {
		t.Errorf("vault = %s, want 0", e.Vaults().VaultBalance("ETH"))
	}
	if !e.CirculatingSupply().IsZero() {
		t.Errorf("circulating after full liquidation = %s, want 0", e.CirculatingSupply())
	}
	// The upfront fee stays escrowed until the next interest charge.
	if !e.Vaults().FeeEscrowBalance("ETH").IsPositive() {
		t.Errorf("fee escrow = %s, want > 0", e.Vaults().FeeEscrowBalance("ETH"))
	}

	// Nothing left to claim; the record can be burned.
	if _, err := e.RetrieveLeftoverCollateral("claim-1", pos.ID); !errors.Is(err, core.ErrValidation) {
		t.Errorf("claiming zero leftover: got %v, want ErrValidation", err)
	}
	if err := e.BurnClosedPosition("burn-1", pos.ID); err != nil {
		t.Fatalf("burn position: %v", err)
	}
	if _, err := e.GetPosition(pos.ID); !errors.Is(err, core.ErrState) {
		t.Errorf("burned position still readable: %v", err)
	}
}

func TestLiquidate_LeftoverClaimable(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "WBTC", "1.5", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "WBTC",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Below the MCR but above full backing: the payout is debt plus fine,
	// the rest is parked for the holder.
	mustSetPrice(t, e, "WBTC", "1400")

	realDebt := mustRealDebt(t, e, pos.ID)
	res, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: realDebt})
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	if res.Payout.Cmp(dec("1")) >= 0 || !res.Payout.IsPositive() {
		t.Fatalf("payout = %s, want in (0, 1)", res.Payout)
	}

	leftover := dec("1").Sub(res.Payout)
	if got := e.Vaults().LeftoversBalance("WBTC"); !got.Equal(leftover) {
		t.Errorf("leftovers escrow = %s, want %s", got, leftover)
	}

	claimed, err := e.RetrieveLeftoverCollateral("claim-1", pos.ID)
	if err != nil {
		t.Fatalf("claim leftover: %v", err)
	}
	if !claimed.Equal(leftover) {
		t.Errorf("claimed = %s, want %s", claimed, leftover)
	}
	if !e.Vaults().LeftoversBalance("WBTC").IsZero() {
		t.Errorf("leftovers escrow after claim = %s, want 0", e.Vaults().LeftoversBalance("WBTC"))
	}
}

func TestLiquidate_NoticeFlow(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	notice := int64(60)
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, NoticeMinutes: &notice, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
		Borrower: &borrower,
	})

	mustSetPrice(t, e, "ETH", "1000")

	// First call starts the notice period instead of liquidating.
	debtBefore := mustRealDebt(t, e, pos.ID)
	res, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000")})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !res.Marked {
		t.Fatal("expected the position to be marked")
	}
	if !res.Deadline.Equal(clock.Now().Add(time.Hour)) {
		t.Errorf("deadline = %s, want %s", res.Deadline, clock.Now().Add(time.Hour))
	}
	if !res.Change.Equal(dec("2000")) {
		t.Errorf("payment not returned whole: change = %s", res.Change)
	}

	marked, _ := e.GetPosition(pos.ID)
	if marked.Status != state.StatusMarked {
		t.Errorf("status = %s, want Marked", marked.Status)
	}
	// The notice fee is borrowed against the position.
	if got := mustRealDebt(t, e, pos.ID); !got.Equal(debtBefore.Add(dec("1"))) {
		t.Errorf("debt after mark = %s, want %s", got, debtBefore.Add(dec("1")))
	}

	// Within the notice period liquidation is blocked.
	if _, err := e.Liquidate(core.LiquidateParams{Ref: "liq-2", PositionID: pos.ID, Payment: dec("2000")}); !errors.Is(err, core.ErrState) {
		t.Errorf("liquidation during notice: got %v, want ErrState", err)
	}

	clock.Advance(61 * time.Minute)
	res, err = e.Liquidate(core.LiquidateParams{Ref: "liq-3", PositionID: pos.ID, Payment: dec("2000")})
	if err != nil {
		t.Fatalf("liquidate after notice: %v", err)
	}
	if res.Marked {
		t.Error("second pass marked again instead of liquidating")
	}

	final, _ := e.GetPosition(pos.ID)
	if final.Status != state.StatusLiquidated {
		t.Errorf("status = %s, want Liquidated", final.Status)
	}
	if final.Borrower != nil {
		t.Error("borrower link survived liquidation")
	}
}

func TestCheckLiquidate_RecoveryUnmarks(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	notice := int64(60)
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, NoticeMinutes: &notice, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
		Borrower: &borrower,
	})

	mustSetPrice(t, e, "ETH", "1000")
	if res, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000")}); err != nil || !res.Marked {
		t.Fatalf("mark = (%+v, %v)", res, err)
	}

	mustSetPrice(t, e, "ETH", "2000")
	ok, err := e.CheckLiquidate("check-1", pos.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Error("recovered position still reported liquidatable")
	}

	recovered, _ := e.GetPosition(pos.ID)
	if recovered.Status != state.StatusHealthy {
		t.Errorf("status = %s, want Healthy after recovery", recovered.Status)
	}
}

func TestLiquidate_PriceOverride(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Solvent at the stored price.
	if _, err := e.Liquidate(core.LiquidateParams{
		Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000"),
	}); !errors.Is(err, core.ErrState) {
		t.Fatalf("liquidation at stored price: got %v, want ErrState", err)
	}

	// At the override price the backing is below 100%; the liquidator
	// takes everything.
	override := dec("1000")
	res, err := e.Liquidate(core.LiquidateParams{
		Ref: "liq-2", PositionID: pos.ID, Payment: dec("2000"), PriceOverride: &override,
	})
	if err != nil {
		t.Fatalf("liquidate at override price: %v", err)
	}
	if !res.Payout.Equal(dec("1")) {
		t.Errorf("payout = %s, want the full collateral 1", res.Payout)
	}

	// The override never touches the stored oracle price.
	info, err := e.GetCollateralInfo("ETH")
	if err != nil {
		t.Fatalf("collateral info: %v", err)
	}
	if !info.USDPrice.Equal(dec("2000")) {
		t.Errorf("stored price = %s, want 2000", info.USDPrice)
	}
}

func TestMarkedDeadline(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	notice := int64(60)
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, NoticeMinutes: &notice, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
		Borrower: &borrower,
	})

	if _, marked, err := e.MarkedDeadline(pos.ID); err != nil || marked {
		t.Fatalf("fresh position: marked = %v, err = %v", marked, err)
	}

	mustSetPrice(t, e, "ETH", "1000")
	if res, err := e.Liquidate(core.LiquidateParams{
		Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000"),
	}); err != nil || !res.Marked {
		t.Fatalf("mark = (%+v, %v)", res, err)
	}

	deadline, marked, err := e.MarkedDeadline(pos.ID)
	if err != nil {
		t.Fatalf("marked deadline: %v", err)
	}
	if !marked {
		t.Fatal("mark not reported")
	}
	if !deadline.Equal(clock.Now().Add(time.Hour)) {
		t.Errorf("deadline = %s, want %s", deadline, clock.Now().Add(time.Hour))
	}

	if _, _, err := e.MarkedDeadline(uuid.New()); !errors.Is(err, core.ErrState) {
		t.Errorf("unknown position: got %v, want ErrState", err)
	}
}

func TestNextLiquidations(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	thin := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-2", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("5"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	mustSetPrice(t, e, "ETH", "1000")

	due, err := e.NextLiquidations("ETH", 10)
	if err != nil {
		t.Fatalf("next liquidations: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("got %d candidates, want 1", len(due))
	}
	if due[0].ID != thin.ID {
		t.Errorf("candidate = %s, want the thin position %s", due[0].ID, thin.ID)
	}
}

// ============================================================
// Test: Redemption
// ============================================================

func TestRedeem_PartialLowestTierFirst(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-high", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	low := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-low", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.01"),
	})

	circBefore := e.CirculatingSupply()

	res, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("50")})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !res.PaymentUsed.Equal(dec("50")) {
		t.Errorf("payment used = %s, want 50", res.PaymentUsed)
	}
	if len(res.Positions) != 1 || res.Positions[0] != low.ID {
		t.Errorf("redeemed %v, want only the lowest-rate position %s", res.Positions, low.ID)
	}
	if !res.CollateralReceived.IsPositive() {
		t.Errorf("collateral received = %s, want > 0", res.CollateralReceived)
	}
	if res.FeeUsed.Cmp(e.Params().MinimumRedemptionFee) < 0 ||
		res.FeeUsed.Cmp(e.Params().MaximumRedemptionFee) > 0 {
		t.Errorf("fee %s outside [min, max]", res.FeeUsed)
	}

	if got := circBefore.Sub(e.CirculatingSupply()); !got.Equal(dec("50")) {
		t.Errorf("circulating shrank by %s, want 50", got)
	}

	remaining, _ := e.GetPosition(low.ID)
	if remaining.Status != state.StatusHealthy {
		t.Errorf("partially redeemed position = %s, want Healthy", remaining.Status)
	}
	if remaining.CollateralAmount.Cmp(dec("2")) >= 0 {
		t.Errorf("collateral %s not reduced by partial redemption", remaining.CollateralAmount)
	}
}

func TestRedeem_FullParksLeftover(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	fee := dec("0.01")
	realDebt := mustRealDebt(t, e, pos.ID)
	res, err := e.Redeem(core.RedeemParams{
		Ref: "redeem-1", Collateral: "ETH", Payment: realDebt, FeeOverride: &fee,
	})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !res.PaymentUsed.Equal(realDebt) {
		t.Errorf("payment used = %s, want the full debt %s", res.PaymentUsed, realDebt)
	}
	if !res.FeeUsed.Equal(fee) {
		t.Errorf("fee used = %s, want the override %s", res.FeeUsed, fee)
	}

	redeemed, _ := e.GetPosition(pos.ID)
	if redeemed.Status != state.StatusRedeemed {
		t.Errorf("status = %s, want Redeemed", redeemed.Status)
	}
	if !redeemed.CollateralAmount.IsPositive() {
		t.Error("full redemption left no claimable leftover")
	}
	if got := e.Vaults().LeftoversBalance("ETH"); !got.Equal(redeemed.CollateralAmount) {
		t.Errorf("leftovers escrow = %s, want %s", got, redeemed.CollateralAmount)
	}
}

func TestRedeem_BelowBackingWholeOrNothing(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("1"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Below 100% backing a partial redemption would make things worse.
	mustSetPrice(t, e, "ETH", "900")

	_, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("100")})
	if !errors.Is(err, core.ErrState) {
		t.Errorf("partial against below-backing position: got %v, want ErrState", err)
	}

	realDebt := mustRealDebt(t, e, pos.ID)
	res, err := e.Redeem(core.RedeemParams{Ref: "redeem-2", Collateral: "ETH", Payment: realDebt.Add(dec("100"))})
	if err != nil {
		t.Fatalf("whole redemption: %v", err)
	}
	if !res.PaymentUsed.Equal(realDebt) {
		t.Errorf("payment used = %s, want %s", res.PaymentUsed, realDebt)
	}

	redeemed, _ := e.GetPosition(pos.ID)
	if redeemed.Status != state.StatusRedeemed {
		t.Errorf("status = %s, want Redeemed", redeemed.Status)
	}
}

func TestRedeem_OrdinaryTiersBeforePrivileged(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 3,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	// Opt-out shields only the privileged tier. The borrower's ordinary
	// position sits in the lowest tier and is redeemed first like any
	// other.
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-priv", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: state.PrivilegedWireRate,
		Borrower: &borrower,
	})
	ordinary := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-ord", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.01"),
		Borrower: &borrower,
	})
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-plain", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	res, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("50")})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if len(res.Positions) != 1 || res.Positions[0] != ordinary.ID {
		t.Errorf("redeemed %v, want the borrower's ordinary position %s", res.Positions, ordinary.ID)
	}
}

func TestRedeem_PrivilegedFallback(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	// With no ordinary tier left, the privileged tier is the redemption
	// target of last resort.
	priv := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-priv", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: state.PrivilegedWireRate,
		Borrower: &borrower,
	})

	res, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("50")})
	if err != nil {
		t.Fatalf("redeem against privileged fallback: %v", err)
	}
	if len(res.Positions) != 1 || res.Positions[0] != priv.ID {
		t.Errorf("redeemed %v, want the privileged position %s", res.Positions, priv.ID)
	}
	if !res.PaymentUsed.Equal(dec("50")) {
		t.Errorf("payment used = %s, want 50", res.PaymentUsed)
	}
}

func TestRedeem_PriceOverride(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// Valuing the collateral at half the stored price doubles the
	// collateral handed out per stablecoin burned.
	override := dec("1000")
	res, err := e.Redeem(core.RedeemParams{
		Ref: "redeem-1", Collateral: "ETH", Payment: dec("50"), PriceOverride: &override,
	})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	// At the stored price of 2000 the payout would be just under 0.025.
	if res.CollateralReceived.Cmp(dec("0.04")) <= 0 {
		t.Errorf("collateral received = %s, want > 0.04 at the override price", res.CollateralReceived)
	}

	// The override never touches the stored oracle price.
	info, err := e.GetCollateralInfo("ETH")
	if err != nil {
		t.Fatalf("collateral info: %v", err)
	}
	if !info.USDPrice.Equal(dec("2000")) {
		t.Errorf("stored price = %s, want 2000", info.USDPrice)
	}
}

func TestRedeem_FeeOverrideStillRestartsDecay(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("8"), MintAmount: dec("4000"), RateWire: dec("0.05"),
	})

	// A normal redemption builds up the base rate.
	if _, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("40")}); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	clock.Advance(6 * time.Hour)
	quoteBefore := e.RedemptionFeeQuote(dec("50"))

	// An overridden fee leaves the base rate alone but still resets the
	// decay window, so the quote jumps back to the undecayed base.
	fee := dec("0.01")
	if _, err := e.Redeem(core.RedeemParams{
		Ref: "redeem-2", Collateral: "ETH", Payment: dec("50"), FeeOverride: &fee,
	}); err != nil {
		t.Fatalf("override redeem: %v", err)
	}

	quoteAfter := e.RedemptionFeeQuote(dec("50"))
	if quoteAfter.Cmp(quoteBefore) <= 0 {
		t.Errorf("quote after override redemption %s not above decayed quote %s", quoteAfter, quoteBefore)
	}
}

func TestRedeem_FeeSpikesAfterRedemption(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("4"), MintAmount: dec("2000"), RateWire: dec("0.05"),
	})

	quoteBefore := e.RedemptionFeeQuote(dec("50"))

	if _, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("50")}); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	// The base rate absorbed the full spike; the next redeemer pays more.
	quoteAfter := e.RedemptionFeeQuote(dec("50"))
	if quoteAfter.Cmp(quoteBefore) <= 0 {
		t.Errorf("quote after redemption %s not above quote before %s", quoteAfter, quoteBefore)
	}
}

func TestNextRedemptionsAndDebtInFront(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	low := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-low", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.01"),
	})
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-high", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	next, err := e.NextRedemptions("ETH", 10)
	if err != nil {
		t.Fatalf("next redemptions: %v", err)
	}
	if len(next) != 2 || next[0].ID != low.ID {
		t.Errorf("redemption order wrong: got %d entries, first %s, want first %s",
			len(next), next[0].ID, low.ID)
	}

	inFront, err := e.DebtInFront("ETH", dec("0.05"))
	if err != nil {
		t.Fatalf("debt in front: %v", err)
	}
	if !inFront.Equal(mustRealDebt(t, e, low.ID)) {
		t.Errorf("debt in front of 0.05 = %s, want the 0.01 tier's debt %s",
			inFront, mustRealDebt(t, e, low.ID))
	}
}

func TestNextRedemptions_PrivilegedAppendedLast(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	priv := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-priv", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: state.PrivilegedWireRate,
		Borrower: &borrower,
	})
	ordinary := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-ord", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	// The privileged tier is listed even while ordinary debt remains, but
	// always after the ordinary tiers.
	next, err := e.NextRedemptions("ETH", 10)
	if err != nil {
		t.Fatalf("next redemptions: %v", err)
	}
	if len(next) != 2 {
		t.Fatalf("got %d entries, want 2", len(next))
	}
	if next[0].ID != ordinary.ID || next[1].ID != priv.ID {
		t.Errorf("order = [%s, %s], want ordinary then privileged", next[0].ID, next[1].ID)
	}
}

func TestRatioBuckets(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	thin := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-thin", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	fat := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-fat", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("3"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	buckets, err := e.RatioBuckets("ETH", dec("0.05"), decimal.Zero, nil)
	if err != nil {
		t.Fatalf("ratio buckets: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Ratio.Cmp(buckets[1].Ratio) >= 0 {
		t.Errorf("buckets not ascending: %s, %s", buckets[0].Ratio, buckets[1].Ratio)
	}
	if len(buckets[0].IDs) != 1 || buckets[0].IDs[0] != thin.ID {
		t.Errorf("worst bucket holds %v, want %s", buckets[0].IDs, thin.ID)
	}
	if len(buckets[1].IDs) != 1 || buckets[1].IDs[0] != fat.ID {
		t.Errorf("second bucket holds %v, want %s", buckets[1].IDs, fat.ID)
	}

	// The end bound is exclusive.
	cut := buckets[1].Ratio
	ranged, err := e.RatioBuckets("ETH", dec("0.05"), decimal.Zero, &cut)
	if err != nil {
		t.Fatalf("ranged buckets: %v", err)
	}
	if len(ranged) != 1 || ranged[0].IDs[0] != thin.ID {
		t.Errorf("ranged scan returned %d buckets, want only the thin position's", len(ranged))
	}

	if _, err := e.RatioBuckets("DOGE", dec("0.05"), decimal.Zero, nil); !errors.Is(err, core.ErrState) {
		t.Errorf("unknown collateral: got %v, want ErrState", err)
	}
}

// ============================================================
// Test: Redemption routing
// ============================================================

func TestOptimalRedemptionRoute_MeetsTargets(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	mustCreateCollateral(t, e, "WBTC", "1.5", "60000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-eth", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-wbtc", PositionID: uuid.New(), Collateral: "WBTC",
		CollateralAmount: dec("0.1"), MintAmount: dec("1000"), RateWire: dec("0.02"),
	})

	// Both queues hold more debt than the targets ask for, so every leg
	// comes out at exactly its target.
	plan, err := e.OptimalRedemptionRoute(map[string]decimal.Decimal{
		"ETH":  dec("100"),
		"WBTC": dec("200"),
	}, 16)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("got %d legs, want 2", len(plan))
	}
	if plan[0].Collateral != "ETH" || plan[1].Collateral != "WBTC" {
		t.Fatalf("leg order = [%s, %s], want [ETH, WBTC]", plan[0].Collateral, plan[1].Collateral)
	}
	if !plan[0].Amount.Equal(dec("100")) || !plan[1].Amount.Equal(dec("200")) {
		t.Errorf("amounts = [%s, %s], want the targets [100, 200]", plan[0].Amount, plan[1].Amount)
	}
	if plan[0].Positions != 1 || plan[1].Positions != 1 {
		t.Errorf("positions = [%d, %d], want one queue entry per leg", plan[0].Positions, plan[1].Positions)
	}
}

func TestOptimalRedemptionRoute_ScalesToWorstFraction(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	mustCreateCollateral(t, e, "WBTC", "1.5", "60000")

	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-eth", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	wbtc := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-wbtc", PositionID: uuid.New(), Collateral: "WBTC",
		CollateralAmount: dec("0.1"), MintAmount: dec("1000"), RateWire: dec("0.02"),
	})

	// WBTC's queue covers roughly a tenth of its target; every other leg
	// is scaled down to that fraction so the split stays proportional.
	targets := map[string]decimal.Decimal{
		"ETH":  dec("100"),
		"WBTC": dec("10000"),
	}
	plan, err := e.OptimalRedemptionRoute(targets, 16)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("got %d legs, want 2", len(plan))
	}
	ethLeg, wbtcLeg := plan[0], plan[1]
	if ethLeg.Amount.Cmp(dec("100")) >= 0 {
		t.Errorf("ETH leg %s not scaled below its target", ethLeg.Amount)
	}
	if wbtcLeg.Amount.Cmp(mustRealDebt(t, e, wbtc.ID)) > 0 {
		t.Errorf("WBTC leg %s exceeds the queue's debt", wbtcLeg.Amount)
	}
	ethFraction := ethLeg.Amount.Div(dec("100"))
	wbtcFraction := wbtcLeg.Amount.Div(dec("10000"))
	if ethFraction.Sub(wbtcFraction).Abs().Cmp(dec("0.0000000001")) > 0 {
		t.Errorf("fractions diverge: ETH %s, WBTC %s", ethFraction, wbtcFraction)
	}

	// A single step leaves one collateral untouched; the worst fraction
	// is zero and no plan survives.
	if _, err := e.OptimalRedemptionRoute(targets, 1); !errors.Is(err, core.ErrState) {
		t.Errorf("one-step budget: got %v, want ErrState", err)
	}
}

func TestOptimalBatchRedeem_ExecutesPlan(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	mustCreateCollateral(t, e, "WBTC", "1.5", "60000")

	eth := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-eth", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})
	wbtc := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-wbtc", PositionID: uuid.New(), Collateral: "WBTC",
		CollateralAmount: dec("0.1"), MintAmount: dec("1000"), RateWire: dec("0.02"),
	})

	res, err := e.OptimalBatchRedeem("batch-1", map[string]decimal.Decimal{
		"ETH":  dec("100"),
		"WBTC": dec("200"),
	}, 16)
	if err != nil {
		t.Fatalf("batch redeem: %v", err)
	}
	if !res.PaymentUsed.Equal(dec("300")) {
		t.Errorf("payment used = %s, want 300", res.PaymentUsed)
	}
	if len(res.Positions) != 2 {
		t.Fatalf("redeemed %d positions, want 2", len(res.Positions))
	}
	redeemedSet := map[uuid.UUID]bool{res.Positions[0]: true, res.Positions[1]: true}
	if !redeemedSet[eth.ID] || !redeemedSet[wbtc.ID] {
		t.Errorf("redeemed %v, want both opened positions", res.Positions)
	}
}

// ============================================================
// Test: Interest accrual
// ============================================================

func TestChargeInterest_CompoundsRealDebtOnly(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	debtBefore := mustRealDebt(t, e, pos.ID)
	escrowBefore := e.Vaults().FeeEscrowBalance("ETH")
	circBefore := e.CirculatingSupply()

	clock.Advance(365 * 24 * time.Hour)

	res, err := e.ChargeInterest("charge-1", "ETH", decimal.Zero, dec("1"), decimal.Zero)
	if err != nil {
		t.Fatalf("charge interest: %v", err)
	}

	debtAfter := mustRealDebt(t, e, pos.ID)
	if debtAfter.Cmp(debtBefore) <= 0 {
		t.Errorf("real debt did not grow: %s -> %s", debtBefore, debtAfter)
	}

	// Pool debt is the fixed unit; only the multiplier moves.
	after, _ := e.GetPosition(pos.ID)
	if !after.PoolDebt.Equal(pos.PoolDebt) {
		t.Errorf("pool debt changed: %s -> %s", pos.PoolDebt, after.PoolDebt)
	}

	if !e.Vaults().FeeEscrowBalance("ETH").IsZero() {
		t.Errorf("fee escrow not drained: %s", e.Vaults().FeeEscrowBalance("ETH"))
	}

	accrued := res.Minted.Sub(escrowBefore)
	if !accrued.IsPositive() {
		t.Errorf("minted %s does not exceed the drained escrow %s", res.Minted, escrowBefore)
	}
	if got := e.CirculatingSupply().Sub(circBefore); !got.Equal(accrued) {
		t.Errorf("circulating grew by %s, want the accrued %s", got, accrued)
	}
	if !res.LowestRate.Equal(dec("0.05")) {
		t.Errorf("lowest rate = %s, want 0.05", res.LowestRate)
	}
}

func TestChargeInterest_RangeExcludesOtherTiers(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	clock.Advance(30 * 24 * time.Hour)

	debtBefore := mustRealDebt(t, e, pos.ID)
	if _, err := e.ChargeInterest("charge-1", "ETH", dec("0.06"), dec("1"), decimal.Zero); err != nil {
		t.Fatalf("charge interest: %v", err)
	}
	if got := mustRealDebt(t, e, pos.ID); !got.Equal(debtBefore) {
		t.Errorf("tier outside range accrued: %s -> %s", debtBefore, got)
	}

	if _, err := e.ChargeInterest("charge-2", "ETH", dec("0.1"), dec("0.05"), decimal.Zero); !errors.Is(err, core.ErrValidation) {
		t.Errorf("empty range: got %v, want ErrValidation", err)
	}
}

// ============================================================
// Test: Rate changes
// ============================================================

func TestChangeRate_CooldownFee(t *testing.T) {
	e, clock := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	if err := e.ChangeRate("rate-0", pos.ID, dec("0.05")); !errors.Is(err, core.ErrValidation) {
		t.Errorf("same-rate change: got %v, want ErrValidation", err)
	}

	// Within the cooldown the change costs the upfront fee at the new rate.
	debtBefore := mustRealDebt(t, e, pos.ID)
	if err := e.ChangeRate("rate-1", pos.ID, dec("0.06")); err != nil {
		t.Fatalf("change rate: %v", err)
	}
	if got := mustRealDebt(t, e, pos.ID); got.Cmp(debtBefore) <= 0 {
		t.Errorf("in-cooldown change did not charge a fee: %s -> %s", debtBefore, got)
	}

	// Past the cooldown the change is feeless. Pool-unit conversions
	// round at the division precision, so conservation holds to 1e-10.
	clock.Advance(8 * 24 * time.Hour)
	debtBefore = mustRealDebt(t, e, pos.ID)
	if err := e.ChangeRate("rate-2", pos.ID, dec("0.03")); err != nil {
		t.Fatalf("change rate: %v", err)
	}
	if got := mustRealDebt(t, e, pos.ID); got.Sub(debtBefore).Abs().Cmp(dec("0.0000000001")) > 0 {
		t.Errorf("feeless change altered debt: %s -> %s", debtBefore, got)
	}

	changed, _ := e.GetPosition(pos.ID)
	if !changed.Rate.Wire().Equal(dec("0.03")) {
		t.Errorf("rate = %s, want 0.03", changed.Rate.Wire())
	}
}

func TestTagIrredeemable(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	// An ordinary tier so the tagged position has a rate to graduate to.
	mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-ord", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("2"), MintAmount: dec("1000"), RateWire: dec("0.02"),
	})
	priv := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-priv", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: state.PrivilegedWireRate,
		Borrower: &borrower,
	})

	// The borrower later gives up redemption opt-out; the position loses
	// its claim to the privileged rate and becomes taggable.
	if err := e.EditBorrower(core.BorrowerParams{Ref: "b-edit", BorrowerID: borrower, MaxCoupled: 2}); err != nil {
		t.Fatalf("edit borrower: %v", err)
	}

	circBefore := e.CirculatingSupply()
	fee, err := e.TagIrredeemable("tag-1", priv.ID)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if !fee.Equal(dec("1")) {
		t.Errorf("tag fee = %s, want 1", fee)
	}
	if got := e.CirculatingSupply().Sub(circBefore); !got.Equal(dec("1")) {
		t.Errorf("circulating grew by %s, want the tag fee 1", got)
	}

	tagged, _ := e.GetPosition(priv.ID)
	if tagged.Rate.IsPrivileged() {
		t.Error("position still privileged after tagging")
	}
	if !tagged.Rate.Wire().Equal(dec("0.02")) {
		t.Errorf("rate = %s, want the lowest ordinary 0.02", tagged.Rate.Wire())
	}
	if tagged.Borrower != nil {
		t.Error("borrower link survived tagging")
	}

	if _, err := e.TagIrredeemable("tag-2", priv.ID); !errors.Is(err, core.ErrState) {
		t.Errorf("tagging an ordinary position: got %v, want ErrState", err)
	}
}

func TestTagIrredeemable_OptOutBlocked(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	borrower := uuid.New()
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, RedemptionOptOut: true, MaxCoupled: 2,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	priv := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-priv", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: state.PrivilegedWireRate,
		Borrower: &borrower,
	})

	if _, err := e.TagIrredeemable("tag-1", priv.ID); !errors.Is(err, core.ErrAuthorization) {
		t.Errorf("tagging an opted-out borrower's position: got %v, want ErrAuthorization", err)
	}
}

// ============================================================
// Test: Supply and parameters
// ============================================================

func TestFreeMintAndBurnSupply(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.FreeMint("mint-1", dec("100")); err != nil {
		t.Fatalf("free mint: %v", err)
	}
	if !e.CirculatingSupply().Equal(dec("100")) {
		t.Errorf("circulating = %s, want 100", e.CirculatingSupply())
	}

	if err := e.BurnSupply("burn-1", dec("40")); err != nil {
		t.Fatalf("burn: %v", err)
	}
	if !e.CirculatingSupply().Equal(dec("60")) {
		t.Errorf("circulating = %s, want 60", e.CirculatingSupply())
	}

	if err := e.BurnSupply("burn-2", dec("100")); !errors.Is(err, core.ErrInsufficientFunds) {
		t.Errorf("overburn: got %v, want ErrInsufficientFunds", err)
	}
}

func TestSetParameters(t *testing.T) {
	e, _ := newTestEngine(t)

	bad := state.DefaultParameters()
	bad.MaxInterest = decimal.Zero
	if err := e.SetParameters("params-1", bad); !errors.Is(err, core.ErrValidation) {
		t.Errorf("invalid params: got %v, want ErrValidation", err)
	}

	good := state.DefaultParameters()
	good.MinimumMint = dec("10")
	if err := e.SetParameters("params-2", good); err != nil {
		t.Fatalf("set params: %v", err)
	}
	if !e.Params().MinimumMint.Equal(dec("10")) {
		t.Errorf("minimum mint = %s, want 10", e.Params().MinimumMint)
	}
}

func TestStopsBlockOperations(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")

	pos := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-1", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	})

	if err := e.SetStops("stops-1", true, true, true, true); err != nil {
		t.Fatalf("set stops: %v", err)
	}

	if _, err := e.OpenPosition(core.OpenPositionParams{
		Ref: "open-2", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
	}); !errors.Is(err, core.ErrPaused) {
		t.Errorf("open under stop: got %v, want ErrPaused", err)
	}
	if _, _, err := e.ClosePosition("close-1", pos.ID, dec("2000")); !errors.Is(err, core.ErrPaused) {
		t.Errorf("close under stop: got %v, want ErrPaused", err)
	}
	if _, err := e.Liquidate(core.LiquidateParams{Ref: "liq-1", PositionID: pos.ID, Payment: dec("2000")}); !errors.Is(err, core.ErrPaused) {
		t.Errorf("liquidate under stop: got %v, want ErrPaused", err)
	}
	if _, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "ETH", Payment: dec("50")}); !errors.Is(err, core.ErrPaused) {
		t.Errorf("redeem under stop: got %v, want ErrPaused", err)
	}
}

// ============================================================
// Test: Snapshot round trip
// ============================================================

func TestSnapshotRestore(t *testing.T) {
	e, _ := newTestEngine(t)
	mustCreateCollateral(t, e, "ETH", "1.1", "2000")
	mustCreateCollateral(t, e, "WBTC", "1.5", "60000")

	borrower := uuid.New()
	notice := int64(30)
	if err := e.CreateBorrower(core.BorrowerParams{
		Ref: "b-1", BorrowerID: borrower, NoticeMinutes: &notice, MaxCoupled: 3,
	}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}

	a := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-a", PositionID: uuid.New(), Collateral: "ETH",
		CollateralAmount: dec("10"), MintAmount: dec("1000"), RateWire: dec("0.05"),
		Borrower: &borrower,
	})
	b := mustOpen(t, e, core.OpenPositionParams{
		Ref: "open-b", PositionID: uuid.New(), Collateral: "WBTC",
		CollateralAmount: dec("0.5"), MintAmount: dec("5000"), RateWire: dec("0.02"),
	})
	mustSetPrice(t, e, "ETH", "1900")

	if _, err := e.Redeem(core.RedeemParams{Ref: "redeem-1", Collateral: "WBTC", Payment: dec("100")}); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	snap := e.Snapshot()
	if snap.Sequence != e.Sequence() {
		t.Fatalf("snapshot sequence %d != engine sequence %d", snap.Sequence, e.Sequence())
	}

	restored := core.NewEngine(core.EngineConfig{Params: state.DefaultParameters()})
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.Sequence() != e.Sequence() {
		t.Errorf("sequence = %d, want %d", restored.Sequence(), e.Sequence())
	}
	if !restored.CirculatingSupply().Equal(e.CirculatingSupply()) {
		t.Errorf("circulating = %s, want %s", restored.CirculatingSupply(), e.CirculatingSupply())
	}

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		want, err := e.GetPosition(id)
		if err != nil {
			t.Fatalf("source position %s: %v", id, err)
		}
		got, err := restored.GetPosition(id)
		if err != nil {
			t.Fatalf("restored position %s: %v", id, err)
		}
		if !got.PoolDebt.Equal(want.PoolDebt) || !got.CollateralAmount.Equal(want.CollateralAmount) ||
			got.Status != want.Status || !got.Rate.Equal(want.Rate) {
			t.Errorf("position %s mismatch after restore:\n got %+v\nwant %+v", id, got, want)
		}
		if !mustRealDebt(t, restored, id).Equal(mustRealDebt(t, e, id)) {
			t.Errorf("real debt of %s differs after restore", id)
		}
	}

	for _, asset := range []string{"ETH", "WBTC"} {
		if got, want := restored.Vaults().VaultBalance(asset), e.Vaults().VaultBalance(asset); !got.Equal(want) {
			t.Errorf("%s vault = %s, want %s", asset, got, want)
		}
		if got, want := restored.Vaults().FeeEscrowBalance(asset), e.Vaults().FeeEscrowBalance(asset); !got.Equal(want) {
			t.Errorf("%s fee escrow = %s, want %s", asset, got, want)
		}
	}

	wantBorrower, err := e.GetBorrower(borrower)
	if err != nil {
		t.Fatalf("source borrower: %v", err)
	}
	gotBorrower, err := restored.GetBorrower(borrower)
	if err != nil {
		t.Fatalf("restored borrower: %v", err)
	}
	if gotBorrower.MaxCoupledPositions != wantBorrower.MaxCoupledPositions ||
		len(gotBorrower.CoupledPositions) != len(wantBorrower.CoupledPositions) {
		t.Errorf("borrower mismatch after restore:\n got %+v\nwant %+v", gotBorrower, wantBorrower)
	}

	// The restored engine keeps working: the ratio index was rebuilt.
	if err := restored.TopUpCollateral("topup-1", a.ID, dec("1")); err != nil {
		t.Errorf("operation on restored engine: %v", err)
	}
}

func TestRestore_RejectsMalformedSnapshot(t *testing.T) {
	e, _ := newTestEngine(t)

	snap := e.Snapshot()
	snap.PrevHash = "not-hex"
	if err := e.Restore(snap); !errors.Is(err, core.ErrValidation) {
		t.Errorf("malformed prev hash: got %v, want ErrValidation", err)
	}

	snap = e.Snapshot()
	snap.Params.MaxInterest = decimal.Zero
	if err := e.Restore(snap); !errors.Is(err, core.ErrValidation) {
		t.Errorf("invalid params: got %v, want ErrValidation", err)
	}
}

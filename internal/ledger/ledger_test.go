package ledger_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ============================================================
// Test: Account paths
// ============================================================

func TestAccountPaths(t *testing.T) {
	tests := []struct {
		name string
		key  ledger.AccountKey
		want string
	}{
		{"vault", ledger.NewVaultKey("ETH"), "system:vault:ETH"},
		{"leftovers", ledger.NewLeftoversKey("ETH"), "system:leftovers:ETH"},
		{"fee escrow", ledger.NewFeeEscrowKey("ETH"), "system:fee_escrow:ETH:SUSD"},
		{"issuer", ledger.NewIssuerKey(), "system:issuer:SUSD"},
		{"holders", ledger.NewHoldersKey(), "external:holders:SUSD"},
		{"boundary", ledger.NewBoundaryKey("WBTC"), "external:boundary:WBTC"},
	}

	for _, tt := range tests {
		if got := tt.key.AccountPath(); got != tt.want {
			t.Errorf("%s: AccountPath() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFeeEscrowKeyHoldsStablecoin(t *testing.T) {
	key := ledger.NewFeeEscrowKey("ETH")
	if key.Asset != ledger.StablecoinAsset {
		t.Errorf("fee escrow asset = %q, want %q", key.Asset, ledger.StablecoinAsset)
	}
	if key.Earmark != "ETH" {
		t.Errorf("fee escrow earmark = %q, want ETH", key.Earmark)
	}
}

// ============================================================
// Test: Journal type storage names
// ============================================================

func TestJournalTypeString(t *testing.T) {
	tests := []struct {
		jt   ledger.JournalType
		want string
	}{
		{ledger.JournalTypeCollateralDeposit, "collateral_deposit"},
		{ledger.JournalTypeCollateralRelease, "collateral_release"},
		{ledger.JournalTypeLeftoverTransfer, "leftover_transfer"},
		{ledger.JournalTypeLeftoverClaim, "leftover_claim"},
		{ledger.JournalTypeLiquidationPayout, "liquidation_payout"},
		{ledger.JournalTypeRedemptionPayout, "redemption_payout"},
		{ledger.JournalTypeMint, "mint"},
		{ledger.JournalTypeBurn, "burn"},
		{ledger.JournalTypeFeeEscrow, "fee_escrow"},
		{ledger.JournalTypeFeeDistribution, "fee_distribution"},
		{ledger.JournalTypeAdjustment, "adjustment"},
	}

	for _, tt := range tests {
		if got := tt.jt.String(); got != tt.want {
			t.Errorf("JournalType(%d).String() = %q, want %q", tt.jt, got, tt.want)
		}
	}

	if got := ledger.JournalType(99).String(); !strings.HasPrefix(got, "unknown") {
		t.Errorf("unknown journal type String() = %q, want unknown prefix", got)
	}
}

// ============================================================
// Test: Batch validation
// ============================================================

func TestBatchValidate(t *testing.T) {
	batchID := uuid.New()

	valid := func() ledger.Journal {
		return ledger.Journal{
			JournalID:     uuid.New(),
			BatchID:       batchID,
			DebitAccount:  ledger.NewVaultKey("ETH"),
			CreditAccount: ledger.NewBoundaryKey("ETH"),
			Asset:         "ETH",
			Amount:        dec("1.5"),
			JournalType:   ledger.JournalTypeCollateralDeposit,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ledger.Batch)
		wantErr string
	}{
		{
			name:    "empty batch",
			mutate:  func(b *ledger.Batch) { b.Journals = nil },
			wantErr: "empty",
		},
		{
			name: "zero amount",
			mutate: func(b *ledger.Batch) {
				b.Journals[0].Amount = decimal.Zero
			},
			wantErr: "non-positive",
		},
		{
			name: "negative amount",
			mutate: func(b *ledger.Batch) {
				b.Journals[0].Amount = dec("-1")
			},
			wantErr: "non-positive",
		},
		{
			name: "mismatched batch id",
			mutate: func(b *ledger.Batch) {
				b.Journals[0].BatchID = uuid.New()
			},
			wantErr: "mismatched batch_id",
		},
		{
			name: "same debit and credit",
			mutate: func(b *ledger.Batch) {
				b.Journals[0].CreditAccount = b.Journals[0].DebitAccount
			},
			wantErr: "same debit and credit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &ledger.Batch{BatchID: batchID, Journals: []ledger.Journal{valid()}}
			tt.mutate(b)
			err := b.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}

	b := &ledger.Batch{BatchID: batchID, Journals: []ledger.Journal{valid()}}
	if err := b.Validate(); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}
}

// ============================================================
// Test: Journal generator
// ============================================================

func TestGeneratorSkipsNonPositiveAmounts(t *testing.T) {
	jg := ledger.NewJournalGenerator(1)
	b := jg.NewBatch("ref-1", 1_700_000_000_000_000)

	jg.CollateralDeposit(b, "ETH", decimal.Zero)
	jg.Mint(b, dec("-5"))

	if len(b.Journals) != 0 {
		t.Errorf("non-positive amounts produced %d journals, want 0", len(b.Journals))
	}
}

func TestGeneratorOpenFlow(t *testing.T) {
	jg := ledger.NewJournalGenerator(7)
	b := jg.NewBatch("open-1", 1_700_000_000_000_000)

	jg.CollateralDeposit(b, "ETH", dec("10"))
	jg.Mint(b, dec("1000.5"))
	jg.FeeEscrow(b, "ETH", dec("0.5"))

	if len(b.Journals) != 3 {
		t.Fatalf("got %d journals, want 3", len(b.Journals))
	}

	deposit := b.Journals[0]
	if deposit.DebitAccount != ledger.NewVaultKey("ETH") || deposit.CreditAccount != ledger.NewBoundaryKey("ETH") {
		t.Errorf("deposit legs wrong: debit=%s credit=%s",
			deposit.DebitAccount.AccountPath(), deposit.CreditAccount.AccountPath())
	}
	if deposit.Asset != "ETH" || deposit.Sequence != 7 {
		t.Errorf("deposit asset/sequence = %s/%d, want ETH/7", deposit.Asset, deposit.Sequence)
	}

	mint := b.Journals[1]
	if mint.DebitAccount != ledger.NewHoldersKey() || mint.CreditAccount != ledger.NewIssuerKey() {
		t.Errorf("mint legs wrong: debit=%s credit=%s",
			mint.DebitAccount.AccountPath(), mint.CreditAccount.AccountPath())
	}
	if mint.Asset != ledger.StablecoinAsset {
		t.Errorf("mint asset = %s, want %s", mint.Asset, ledger.StablecoinAsset)
	}

	escrow := b.Journals[2]
	if escrow.DebitAccount != ledger.NewFeeEscrowKey("ETH") || escrow.CreditAccount != ledger.NewHoldersKey() {
		t.Errorf("fee escrow legs wrong: debit=%s credit=%s",
			escrow.DebitAccount.AccountPath(), escrow.CreditAccount.AccountPath())
	}

	for _, j := range b.Journals {
		if j.BatchID != b.BatchID {
			t.Errorf("journal %s not tied to batch", j.JournalID)
		}
		if j.EventRef != "open-1" {
			t.Errorf("journal event ref = %q, want open-1", j.EventRef)
		}
	}
}

// ============================================================
// Test: Balance tracker
// ============================================================

func TestTrackerAppliesBatchZeroSum(t *testing.T) {
	jg := ledger.NewJournalGenerator(1)
	bt := ledger.NewBalanceTracker()

	b := jg.NewBatch("open-1", 1)
	jg.CollateralDeposit(b, "ETH", dec("10"))
	jg.Mint(b, dec("1000.5"))
	jg.FeeEscrow(b, "ETH", dec("0.5"))

	if err := bt.ApplyBatch(b); err != nil {
		t.Fatalf("apply batch: %v", err)
	}

	if got := bt.VaultBalance("ETH"); !got.Equal(dec("10")) {
		t.Errorf("vault = %s, want 10", got)
	}
	if got := bt.HoldersSupply(); !got.Equal(dec("1000")) {
		t.Errorf("holders = %s, want 1000", got)
	}
	if got := bt.FeeEscrowBalance("ETH"); !got.Equal(dec("0.5")) {
		t.Errorf("fee escrow = %s, want 0.5", got)
	}

	for asset, total := range bt.ComputeGlobalBalance() {
		if !total.IsZero() {
			t.Errorf("global balance for %s = %s, want 0", asset, total)
		}
	}
}

func TestTrackerRejectsInvalidBatch(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	b := &ledger.Batch{BatchID: uuid.New()}

	if err := bt.ApplyBatch(b); err == nil {
		t.Error("empty batch applied without error")
	}
	if got := bt.VaultBalance("ETH"); !got.IsZero() {
		t.Errorf("vault after rejected batch = %s, want 0", got)
	}
}

func TestTrackerValidateSufficient(t *testing.T) {
	jg := ledger.NewJournalGenerator(1)
	bt := ledger.NewBalanceTracker()

	b := jg.NewBatch("open-1", 1)
	jg.CollateralDeposit(b, "ETH", dec("5"))
	if err := bt.ApplyBatch(b); err != nil {
		t.Fatalf("apply batch: %v", err)
	}

	vault := ledger.NewVaultKey("ETH")
	if err := bt.ValidateSufficient(vault, dec("5")); err != nil {
		t.Errorf("exact balance rejected: %v", err)
	}
	if err := bt.ValidateSufficient(vault, dec("5.000001")); err == nil {
		t.Error("overdraw accepted")
	}
}

func TestTrackerSnapshotIsCopy(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	key := ledger.NewVaultKey("ETH")
	bt.SetBalance(key, dec("3"))

	snap := bt.Snapshot()
	snap[key] = dec("999")

	if got := bt.GetBalance(key); !got.Equal(dec("3")) {
		t.Errorf("tracker mutated through snapshot: %s", got)
	}
}

// ============================================================
// Test: Invariant validator
// ============================================================

func TestValidatorGlobalBalance(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	v := ledger.NewInvariantValidator(bt)

	if err := v.ValidateGlobalBalance(); err != nil {
		t.Errorf("empty ledger not zero-sum: %v", err)
	}

	bt.SetBalance(ledger.NewVaultKey("ETH"), dec("1"))
	if err := v.ValidateGlobalBalance(); err == nil {
		t.Error("one-sided balance passed global check")
	}

	bt.SetBalance(ledger.NewBoundaryKey("ETH"), dec("-1"))
	if err := v.ValidateGlobalBalance(); err != nil {
		t.Errorf("balanced ledger failed global check: %v", err)
	}
}

func TestValidatorCollateralEscrows(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	v := ledger.NewInvariantValidator(bt)

	bt.SetBalance(ledger.NewVaultKey("ETH"), dec("10"))
	bt.SetBalance(ledger.NewFeeEscrowKey("ETH"), dec("0.5"))
	if err := v.ValidateCollateralEscrows("ETH"); err != nil {
		t.Errorf("non-negative escrows rejected: %v", err)
	}

	bt.SetBalance(ledger.NewLeftoversKey("ETH"), dec("-0.1"))
	if err := v.ValidateCollateralEscrows("ETH"); err == nil {
		t.Error("negative leftovers escrow passed")
	}
}

func TestValidatorVaultCoversPositions(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	v := ledger.NewInvariantValidator(bt)

	bt.SetBalance(ledger.NewVaultKey("ETH"), dec("12.5"))

	if err := v.ValidateVaultCoversPositions("ETH", dec("12.5")); err != nil {
		t.Errorf("matching vault rejected: %v", err)
	}
	if err := v.ValidateVaultCoversPositions("ETH", dec("13")); err == nil {
		t.Error("vault shortfall passed")
	}
}

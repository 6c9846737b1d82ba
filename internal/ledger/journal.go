package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalType represents the purpose of a journal entry
type JournalType int32

const (
	JournalTypeCollateralDeposit JournalType = iota
	JournalTypeCollateralRelease
	JournalTypeLeftoverTransfer
	JournalTypeLeftoverClaim
	JournalTypeLiquidationPayout
	JournalTypeRedemptionPayout
	JournalTypeMint
	JournalTypeBurn
	JournalTypeFeeEscrow
	JournalTypeFeeDistribution
	JournalTypeAdjustment
)

// String returns the storage name for a journal type, matching the
// journal_type TEXT column.
func (jt JournalType) String() string {
	switch jt {
	case JournalTypeCollateralDeposit:
		return "collateral_deposit"
	case JournalTypeCollateralRelease:
		return "collateral_release"
	case JournalTypeLeftoverTransfer:
		return "leftover_transfer"
	case JournalTypeLeftoverClaim:
		return "leftover_claim"
	case JournalTypeLiquidationPayout:
		return "liquidation_payout"
	case JournalTypeRedemptionPayout:
		return "redemption_payout"
	case JournalTypeMint:
		return "mint"
	case JournalTypeBurn:
		return "burn"
	case JournalTypeFeeEscrow:
		return "fee_escrow"
	case JournalTypeFeeDistribution:
		return "fee_distribution"
	case JournalTypeAdjustment:
		return "adjustment"
	default:
		return fmt.Sprintf("unknown(%d)", int32(jt))
	}
}

// Journal represents a single double-entry journal entry
type Journal struct {
	JournalID     uuid.UUID  // Unique identifier
	BatchID       uuid.UUID  // Groups entries of one operation
	EventRef      string     // Idempotency key of source operation
	Sequence      int64      // Global event sequence
	DebitAccount  AccountKey // Account receiving debit (balance increases)
	CreditAccount AccountKey // Account receiving credit (balance decreases)
	Asset         string     // Asset being transferred
	Amount        decimal.Decimal
	JournalType   JournalType
	Timestamp     int64 // Versioned input timestamp (epoch microseconds)
}

// Batch represents the journal entries of one atomic operation.
type Batch struct {
	BatchID   uuid.UUID
	EventRef  string
	Sequence  int64
	Timestamp int64
	Journals  []Journal
}

// Validate ensures the batch is well-formed. Each entry is a balanced
// transfer by construction (one positive amount moving credit→debit), so
// Σ debits == Σ credits holds per entry; multi-leg operations use multiple
// entries under one batch id.
func (b *Batch) Validate() error {
	if len(b.Journals) == 0 {
		return fmt.Errorf("batch %s is empty", b.BatchID)
	}

	for _, j := range b.Journals {
		if !j.Amount.IsPositive() {
			return fmt.Errorf("journal %s has non-positive amount: %s", j.JournalID, j.Amount)
		}

		if j.BatchID != b.BatchID {
			return fmt.Errorf("journal %s has mismatched batch_id", j.JournalID)
		}

		if j.DebitAccount == j.CreditAccount {
			return fmt.Errorf("journal %s has same debit and credit account", j.JournalID)
		}
	}

	return nil
}

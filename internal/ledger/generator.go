package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalGenerator creates balanced journal batches for protocol flows.
// Every position operation records its balance movements through one batch
// so the escrow ledger stays a faithful double-entry mirror of the
// operation's cash flows.
type JournalGenerator struct {
	sequence int64
}

func NewJournalGenerator(startSequence int64) *JournalGenerator {
	return &JournalGenerator{sequence: startSequence}
}

// SetSequence aligns the generator with the engine's event sequence.
func (jg *JournalGenerator) SetSequence(seq int64) {
	jg.sequence = seq
}

// NewBatch starts an empty batch tied to an operation reference.
func (jg *JournalGenerator) NewBatch(eventRef string, timestampMicros int64) *Batch {
	return &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  jg.sequence,
		Timestamp: timestampMicros,
	}
}

func (jg *JournalGenerator) add(b *Batch, debit, credit AccountKey, asset string, amount decimal.Decimal, jt JournalType) {
	if !amount.IsPositive() {
		return
	}
	b.Journals = append(b.Journals, Journal{
		JournalID:     uuid.New(),
		BatchID:       b.BatchID,
		EventRef:      b.EventRef,
		Sequence:      b.Sequence,
		DebitAccount:  debit,
		CreditAccount: credit,
		Asset:         asset,
		Amount:        amount,
		JournalType:   jt,
		Timestamp:     b.Timestamp,
	})
}

// CollateralDeposit moves collateral from the caller into the vault.
func (jg *JournalGenerator) CollateralDeposit(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewVaultKey(asset), NewBoundaryKey(asset), asset, amount, JournalTypeCollateralDeposit)
}

// CollateralRelease returns vault collateral to the caller.
func (jg *JournalGenerator) CollateralRelease(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewBoundaryKey(asset), NewVaultKey(asset), asset, amount, JournalTypeCollateralRelease)
}

// LeftoverTransfer parks vault collateral in the leftovers escrow after a
// liquidation or full redemption.
func (jg *JournalGenerator) LeftoverTransfer(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewLeftoversKey(asset), NewVaultKey(asset), asset, amount, JournalTypeLeftoverTransfer)
}

// LeftoverClaim pays leftover collateral out to the position holder.
func (jg *JournalGenerator) LeftoverClaim(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewBoundaryKey(asset), NewLeftoversKey(asset), asset, amount, JournalTypeLeftoverClaim)
}

// LiquidationPayout releases vault collateral to a liquidator.
func (jg *JournalGenerator) LiquidationPayout(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewBoundaryKey(asset), NewVaultKey(asset), asset, amount, JournalTypeLiquidationPayout)
}

// RedemptionPayout releases vault collateral to a redeemer.
func (jg *JournalGenerator) RedemptionPayout(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewBoundaryKey(asset), NewVaultKey(asset), asset, amount, JournalTypeRedemptionPayout)
}

// Mint issues stablecoin into circulation.
func (jg *JournalGenerator) Mint(b *Batch, amount decimal.Decimal) {
	jg.add(b, NewHoldersKey(), NewIssuerKey(), StablecoinAsset, amount, JournalTypeMint)
}

// Burn retires stablecoin from circulation.
func (jg *JournalGenerator) Burn(b *Batch, amount decimal.Decimal) {
	jg.add(b, NewIssuerKey(), NewHoldersKey(), StablecoinAsset, amount, JournalTypeBurn)
}

// FeeEscrow parks freshly minted stablecoin in a collateral's fee escrow.
// The mint leg and the escrow leg are recorded separately so circulating
// supply and the escrow both reflect the fee.
func (jg *JournalGenerator) FeeEscrow(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewFeeEscrowKey(asset), NewHoldersKey(), StablecoinAsset, amount, JournalTypeFeeEscrow)
}

// FeeDistribution drains a collateral's fee escrow to the caller, used
// when accrued interest is charged and collected.
func (jg *JournalGenerator) FeeDistribution(b *Batch, asset string, amount decimal.Decimal) {
	jg.add(b, NewHoldersKey(), NewFeeEscrowKey(asset), StablecoinAsset, amount, JournalTypeFeeDistribution)
}

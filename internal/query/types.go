package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionResponse represents a debt position for API queries.
type PositionResponse struct {
	PositionID       uuid.UUID       `json:"position_id"`
	Collateral       string          `json:"collateral"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	PoolDebt         decimal.Decimal `json:"pool_debt"`
	Ratio            decimal.Decimal `json:"ratio"`
	Rate             decimal.Decimal `json:"rate"`
	LastRateChange   time.Time       `json:"last_rate_change"`
	Status           string          `json:"status"`
	BorrowerID       *uuid.UUID      `json:"borrower_id,omitempty"`
	Version          int64           `json:"version"`
	AsOfSequence     int64           `json:"as_of_sequence"`
}

// CollateralResponse represents a collateral asset for API queries.
type CollateralResponse struct {
	Asset           string          `json:"asset"`
	MCR             decimal.Decimal `json:"mcr"`
	USDPrice        decimal.Decimal `json:"usd_price"`
	Accepted        bool            `json:"accepted"`
	TotalDebt       decimal.Decimal `json:"total_debt"`
	TotalCollateral decimal.Decimal `json:"total_collateral"`
	AsOfSequence    int64           `json:"as_of_sequence"`
}

// LiquidationHistoryResponse represents a completed liquidation.
type LiquidationHistoryResponse struct {
	Sequence    int64           `json:"sequence"`
	PositionID  uuid.UUID       `json:"position_id"`
	Collateral  string          `json:"collateral"`
	DebtCovered decimal.Decimal `json:"debt_covered"`
	Payout      decimal.Decimal `json:"payout"`
	Leftover    decimal.Decimal `json:"leftover"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// RedemptionHistoryResponse represents a redemption leg against one position.
type RedemptionHistoryResponse struct {
	Sequence       int64           `json:"sequence"`
	PositionID     uuid.UUID       `json:"position_id"`
	Collateral     string          `json:"collateral"`
	PaymentUsed    decimal.Decimal `json:"payment_used"`
	CollateralPaid decimal.Decimal `json:"collateral_paid"`
	FeeUsed        decimal.Decimal `json:"fee_used"`
	Full           bool            `json:"full"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// JournalHistoryEntry represents a journal entry for API queries.
type JournalHistoryEntry struct {
	JournalID     string `json:"journal_id"`
	BatchID       string `json:"batch_id"`
	EventRef      string `json:"event_ref"`
	Sequence      int64  `json:"sequence"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	Asset         string `json:"asset"`
	Amount        string `json:"amount"`
	JournalType   string `json:"journal_type"`
	Timestamp     int64  `json:"timestamp"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy        bool              `json:"is_healthy"`
	HashChainBreaks  []int64           `json:"hash_chain_breaks,omitempty"`
	UnbalancedAssets []UnbalancedAsset `json:"unbalanced_assets,omitempty"`
}

// UnbalancedAsset represents an asset with non-zero global balance sum.
type UnbalancedAsset struct {
	Asset     string          `json:"asset"`
	Imbalance decimal.Decimal `json:"imbalance"`
}

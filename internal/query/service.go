package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/observability"
)

// QueryService provides read-only access to projection tables. Responses
// carry as_of_sequence so callers can reason about freshness relative to
// the core's event sequence.
type QueryService struct {
	db      *sql.DB
	metrics *observability.Metrics
}

func NewQueryService(db *sql.DB, metrics *observability.Metrics) *QueryService {
	return &QueryService{db: db, metrics: metrics}
}

func (qs *QueryService) observe(endpoint string, start time.Time, err error) {
	if qs.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	qs.metrics.QueryRequests.WithLabelValues(endpoint, status).Inc()
	qs.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// GetPosition returns a single projected position.
func (qs *QueryService) GetPosition(ctx context.Context, positionID uuid.UUID) (p *PositionResponse, err error) {
	defer func(start time.Time) { qs.observe("get_position", start, err) }(time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	var resp PositionResponse
	resp.AsOfSequence = asOfSeq
	err = qs.db.QueryRowContext(ctx, `
		SELECT position_id, collateral, collateral_amount, pool_debt, ratio, rate,
		       last_rate_change, status, borrower_id, version
		FROM projections.positions
		WHERE position_id = $1
	`, positionID).Scan(
		&resp.PositionID, &resp.Collateral, &resp.CollateralAmount, &resp.PoolDebt,
		&resp.Ratio, &resp.Rate, &resp.LastRateChange, &resp.Status,
		&resp.BorrowerID, &resp.Version,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("position %s not found", positionID)
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPositions returns projected positions, optionally filtered by
// collateral and status.
func (qs *QueryService) ListPositions(
	ctx context.Context,
	collateral *string,
	status *string,
	limit int,
) (positions []PositionResponse, err error) {
	defer func(start time.Time) { qs.observe("list_positions", start, err) }(time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT position_id, collateral, collateral_amount, pool_debt, ratio, rate,
		       last_rate_change, status, borrower_id, version
		FROM projections.positions
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if collateral != nil {
		query += fmt.Sprintf(" AND collateral = $%d", argIdx)
		args = append(args, *collateral)
		argIdx++
	}
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *status)
		argIdx++
	}

	query += " ORDER BY ratio ASC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PositionResponse
		p.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&p.PositionID, &p.Collateral, &p.CollateralAmount, &p.PoolDebt,
			&p.Ratio, &p.Rate, &p.LastRateChange, &p.Status,
			&p.BorrowerID, &p.Version,
		); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

// ListCollaterals returns all projected collateral assets.
func (qs *QueryService) ListCollaterals(ctx context.Context) (collaterals []CollateralResponse, err error) {
	defer func(start time.Time) { qs.observe("list_collaterals", start, err) }(time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT asset, mcr, usd_price, accepted, total_debt, total_collateral
		FROM projections.collaterals
		ORDER BY asset
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CollateralResponse
		c.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&c.Asset, &c.MCR, &c.USDPrice, &c.Accepted,
			&c.TotalDebt, &c.TotalCollateral,
		); err != nil {
			return nil, err
		}
		collaterals = append(collaterals, c)
	}

	return collaterals, rows.Err()
}

// GetLiquidationHistory returns completed liquidations, newest first.
// afterSequence enables cursor pagination.
func (qs *QueryService) GetLiquidationHistory(
	ctx context.Context,
	collateral *string,
	limit int,
	afterSequence *int64,
) (history []LiquidationHistoryResponse, err error) {
	defer func(start time.Time) { qs.observe("liquidation_history", start, err) }(time.Now())

	query := `
		SELECT sequence, position_id, collateral, debt_covered, payout, leftover, occurred_at
		FROM projections.liquidation_history
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if collateral != nil {
		query += fmt.Sprintf(" AND collateral = $%d", argIdx)
		args = append(args, *collateral)
		argIdx++
	}
	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var h LiquidationHistoryResponse
		if err := rows.Scan(
			&h.Sequence, &h.PositionID, &h.Collateral,
			&h.DebtCovered, &h.Payout, &h.Leftover, &h.OccurredAt,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

// GetRedemptionHistory returns redemption legs, newest first.
func (qs *QueryService) GetRedemptionHistory(
	ctx context.Context,
	collateral *string,
	limit int,
	afterSequence *int64,
) (history []RedemptionHistoryResponse, err error) {
	defer func(start time.Time) { qs.observe("redemption_history", start, err) }(time.Now())

	query := `
		SELECT sequence, position_id, collateral, payment_used, collateral_paid,
		       fee_used, full_redemption, occurred_at
		FROM projections.redemption_history
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if collateral != nil {
		query += fmt.Sprintf(" AND collateral = $%d", argIdx)
		args = append(args, *collateral)
		argIdx++
	}
	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var h RedemptionHistoryResponse
		if err := rows.Scan(
			&h.Sequence, &h.PositionID, &h.Collateral,
			&h.PaymentUsed, &h.CollateralPaid, &h.FeeUsed, &h.Full, &h.OccurredAt,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

// GetSystemAccounts returns the escrow balances backing one collateral.
func (qs *QueryService) GetSystemAccounts(ctx context.Context, collateral string) (resp *SystemAccountsResponse, err error) {
	defer func(start time.Time) { qs.observe("system_accounts", start, err) }(time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	vault, err := qs.getProjectedBalance(ctx,
		fmt.Sprintf("system:vault:%s", collateral), collateral)
	if err != nil {
		return nil, err
	}
	leftovers, err := qs.getProjectedBalance(ctx,
		fmt.Sprintf("system:leftovers:%s", collateral), collateral)
	if err != nil {
		return nil, err
	}
	feeEscrow, err := qs.getProjectedBalance(ctx,
		fmt.Sprintf("system:fee_escrow:%s:SUSD", collateral), "SUSD")
	if err != nil {
		return nil, err
	}

	return &SystemAccountsResponse{
		Collateral:   collateral,
		Vault:        vault,
		Leftovers:    leftovers,
		FeeEscrow:    feeEscrow,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetJournalHistory returns journal entries touching an account prefix,
// newest first, with sequence-cursor pagination.
func (qs *QueryService) GetJournalHistory(
	ctx context.Context,
	accountPrefix string,
	limit int,
	afterSequence *int64,
) (entries []JournalHistoryEntry, err error) {
	defer func(start time.Time) { qs.observe("journal_history", start, err) }(time.Now())

	pattern := accountPrefix + "%"

	query := `
		SELECT journal_id, batch_id, event_ref, sequence,
		       debit_account, credit_account, asset, amount::text, journal_type, timestamp
		FROM event_log.journal
		WHERE (debit_account LIKE $1 OR credit_account LIKE $1)
	`
	args := []interface{}{pattern}
	argIdx := 2

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e JournalHistoryEntry
		if err := rows.Scan(
			&e.JournalID, &e.BatchID, &e.EventRef, &e.Sequence,
			&e.DebitAccount, &e.CreditAccount, &e.Asset, &e.Amount,
			&e.JournalType, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// VerifyIntegrity checks hash chain continuity and the zero-sum balance
// invariant. Every journal moves an asset between two accounts, so the
// per-asset balance sum must be exactly zero.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (report *IntegrityReport, err error) {
	defer func(start time.Time) { qs.observe("verify_integrity", start, err) }(time.Now())

	report = &IntegrityReport{}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM event_log.events e1
		LEFT JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.sequence > 1 AND e1.prev_hash != COALESCE(e2.state_hash, e1.prev_hash)
		ORDER BY e1.sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balanceRows, err := qs.db.QueryContext(ctx, `
		SELECT asset, SUM(balance)::text AS total
		FROM projections.balances
		GROUP BY asset
		HAVING SUM(balance) != 0
	`)
	if err != nil {
		return nil, err
	}
	defer balanceRows.Close()

	for balanceRows.Next() {
		var asset string
		var total decimal.Decimal
		if err := balanceRows.Scan(&asset, &total); err != nil {
			return nil, err
		}
		report.UnbalancedAssets = append(report.UnbalancedAssets, UnbalancedAsset{
			Asset:     asset,
			Imbalance: total,
		})
	}
	if err := balanceRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.UnbalancedAssets) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT last_sequence FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}

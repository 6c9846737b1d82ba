package projection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"StableLedger/internal/event"
	"StableLedger/internal/observability"
)

// Output mirrors the data projection workers need. The orchestrator in
// cmd/ bridges between the core's projection update and this.
type Output struct {
	Sequence       int64
	EventType      string
	Collateral     *string
	Payload        []byte
	JournalEntries []JournalEntry
	Timestamp      time.Time
}

// JournalEntry is a simplified journal for projection consumption.
// Amount is the decimal's canonical string.
type JournalEntry struct {
	DebitAccount  string
	CreditAccount string
	Asset         string
	Amount        string
}

// Worker updates projection tables from processed events. The input
// channel is non-blocking with drop on the core side; a lost update is
// recovered by rebuilding from the event log.
type Worker struct {
	db        *sql.DB
	inputChan <-chan Output
	lastSeq   int64
	logger    zerolog.Logger
}

func NewWorker(db *sql.DB, inputChan <-chan Output) *Worker {
	return &Worker{
		db:        db,
		inputChan: inputChan,
		logger:    observability.NewLogger("projection"),
	}
}

// Run starts the projection worker loop.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-w.inputChan:
			if !ok {
				return nil
			}

			if err := w.processOutput(ctx, output); err != nil {
				// Projections are eventually consistent and can be rebuilt.
				w.logger.Warn().Err(err).Int64("sequence", output.Sequence).Msg("projection update failed")
			}

			w.lastSeq = output.Sequence
		}
	}
}

func (w *Worker) processOutput(ctx context.Context, output Output) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, j := range output.JournalEntries {
		if err := w.updateBalanceProjection(ctx, tx, output.Sequence, j); err != nil {
			return fmt.Errorf("balance projection: %w", err)
		}
	}

	if err := w.updateDomainProjection(ctx, tx, output); err != nil {
		return fmt.Errorf("domain projection: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	return tx.Commit()
}

func (w *Worker) updateBalanceProjection(ctx context.Context, tx *sql.Tx, seq int64, j JournalEntry) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset, balance, last_sequence)
		VALUES ($1, $2, -($3::numeric), $4)
		ON CONFLICT (account_path, asset)
		DO UPDATE SET balance = projections.balances.balance - $3::numeric, last_sequence = $4
	`, j.CreditAccount, j.Asset, j.Amount, seq); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset, balance, last_sequence)
		VALUES ($1, $2, $3::numeric, $4)
		ON CONFLICT (account_path, asset)
		DO UPDATE SET balance = projections.balances.balance + $3::numeric, last_sequence = $4
	`, j.DebitAccount, j.Asset, j.Amount, seq); err != nil {
		return err
	}

	return nil
}

// updateDomainProjection maintains the history tables fed by specific
// event types. Position and collateral rows are written by the query
// refresher from engine reads; the history tables are append-only here.
func (w *Worker) updateDomainProjection(ctx context.Context, tx *sql.Tx, output Output) error {
	switch output.EventType {
	case event.EventTypePositionLiquidated.String():
		var p event.PositionLiquidated
		if err := json.Unmarshal(output.Payload, &p); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.liquidation_history
				(sequence, position_id, collateral, debt_covered, payout, leftover, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (sequence) DO NOTHING
		`, output.Sequence, p.PositionID, p.Collateral,
			p.DebtCovered.String(), p.Payout.String(), p.Leftover.String(), p.Timestamp)
		return err

	case event.EventTypePositionRedeemed.String():
		var p event.PositionRedeemed
		if err := json.Unmarshal(output.Payload, &p); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.redemption_history
				(sequence, position_id, collateral, payment_used, collateral_paid, fee_used, full_redemption, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (sequence) DO NOTHING
		`, output.Sequence, p.PositionID, p.Collateral,
			p.PaymentUsed.String(), p.CollateralPaid.String(), p.FeeUsed.String(), p.Full, p.Timestamp)
		return err
	}

	return nil
}

// RebuildProjections rebuilds the balance projections and truncates the
// history tables so they can be replayed from the event log.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.positions`,
		`TRUNCATE projections.liquidation_history`,
		`TRUNCATE projections.redemption_history`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	// Debits increase an account, credits decrease it.
	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset, balance, last_sequence)
		SELECT
			debit_account AS account_path,
			asset,
			SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY debit_account, asset
		ON CONFLICT (account_path, asset) DO UPDATE
			SET balance = EXCLUDED.balance, last_sequence = EXCLUDED.last_sequence
	`)
	if err != nil {
		return fmt.Errorf("rebuild debit balances: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset, balance, last_sequence)
		SELECT
			credit_account AS account_path,
			asset,
			-SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY credit_account, asset
		ON CONFLICT (account_path, asset) DO UPDATE
			SET balance = projections.balances.balance + EXCLUDED.balance,
			    last_sequence = GREATEST(projections.balances.last_sequence, EXCLUDED.last_sequence)
	`)
	if err != nil {
		return fmt.Errorf("rebuild credit balances: %w", err)
	}

	logger := observability.NewLogger("projection")
	logger.Info().Msg("projection rebuild complete")
	return nil
}

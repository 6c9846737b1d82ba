package projection

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"StableLedger/internal/core"
	"StableLedger/internal/observability"
)

// Refresher periodically snapshots the engine's read model into the
// positions and collaterals projection tables. Balances and history
// tables are fed per-event by the Worker; position and collateral rows
// carry derived fields (ratio, multiplier-adjusted debt) that are
// cheaper to read from the engine than to reconstruct from payloads.
type Refresher struct {
	db       *sql.DB
	engine   *core.Engine
	interval time.Duration
	logger   zerolog.Logger
}

func NewRefresher(db *sql.DB, engine *core.Engine, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Refresher{
		db:       db,
		engine:   engine,
		interval: interval,
		logger:   observability.NewLogger("projection-refresh"),
	}
}

// Run refreshes on a fixed interval until the context is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				r.logger.Warn().Err(err).Msg("projection refresh failed")
			}
		}
	}
}

// RefreshOnce upserts every position and collateral row at the engine's
// current sequence.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	seq := r.engine.Sequence()
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range r.engine.ListPositions("") {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.positions
				(position_id, collateral, collateral_amount, pool_debt, ratio, rate,
				 last_rate_change, status, borrower_id, version, updated_sequence, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (position_id) DO UPDATE SET
				collateral_amount = EXCLUDED.collateral_amount,
				pool_debt         = EXCLUDED.pool_debt,
				ratio             = EXCLUDED.ratio,
				rate              = EXCLUDED.rate,
				last_rate_change  = EXCLUDED.last_rate_change,
				status            = EXCLUDED.status,
				borrower_id       = EXCLUDED.borrower_id,
				version           = EXCLUDED.version,
				updated_sequence  = EXCLUDED.updated_sequence,
				updated_at        = EXCLUDED.updated_at
			WHERE projections.positions.version <= EXCLUDED.version
		`, p.ID, p.Collateral, p.CollateralAmount.String(), p.PoolDebt.String(),
			p.Ratio.String(), p.Rate.Wire().String(), p.LastRateChange,
			p.Status.String(), p.Borrower, p.Version, seq, now); err != nil {
			return err
		}
	}

	for _, c := range r.engine.ListCollaterals() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.collaterals
				(asset, mcr, usd_price, accepted, total_debt, total_collateral,
				 updated_sequence, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (asset) DO UPDATE SET
				mcr              = EXCLUDED.mcr,
				usd_price        = EXCLUDED.usd_price,
				accepted         = EXCLUDED.accepted,
				total_debt       = EXCLUDED.total_debt,
				total_collateral = EXCLUDED.total_collateral,
				updated_sequence = EXCLUDED.updated_sequence,
				updated_at       = EXCLUDED.updated_at
		`, c.Asset, c.MCR.String(), c.USDPrice.String(), c.Accepted,
			c.TotalDebt.String(), c.TotalCollateral.String(), seq, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

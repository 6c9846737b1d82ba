package core

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"StableLedger/internal/event"
	"StableLedger/internal/ledger"
	fpmath "StableLedger/internal/math"
	"StableLedger/internal/observability"
	"StableLedger/internal/state"
)

// PersistRequest carries a processed event and its journal entries to the
// persistence worker. Sends are blocking: the event log is the source of
// truth and must not lose events.
type PersistRequest struct {
	Envelope event.EventEnvelope
	Journals []ledger.Journal
}

// ProjectionUpdate carries a processed event to the projection worker.
// Sends are non-blocking; projections can always be rebuilt from the log.
type ProjectionUpdate struct {
	Envelope event.EventEnvelope
	Event    event.Event
}

// Engine is the protocol accounting core. Every public operation executes
// as one atomic unit under the engine lock: all validations run before any
// mutation, so a failed operation leaves no partial state. The caller
// resolves oracle prices before entering; the engine never performs I/O
// mid-mutation.
type Engine struct {
	mu sync.RWMutex

	params      state.ProtocolParameters
	collaterals *state.CollateralRegistry
	positions   *state.PositionManager
	borrowers   *state.BorrowerRegistry

	vaults    *ledger.BalanceTracker
	journal   *ledger.JournalGenerator
	validator *ledger.InvariantValidator

	// circulating mirrors every mint and burn, including stablecoin
	// escrowed as uncharged interest fees.
	circulating decimal.Decimal

	// redemption fee state: the base rate decays exponentially between
	// redemptions and spikes with each one.
	redemptionBaseRate decimal.Decimal
	lastRedemption     time.Time

	sequence int64
	hasher   *StateHasher

	persistChan    chan<- PersistRequest
	projectionChan chan<- ProjectionUpdate

	now func() time.Time

	logger  zerolog.Logger
	metrics *observability.Metrics
}

// EngineConfig wires the engine's collaborators.
type EngineConfig struct {
	Params         state.ProtocolParameters
	PersistChan    chan<- PersistRequest
	ProjectionChan chan<- ProjectionUpdate
	Metrics        *observability.Metrics
	// Now overrides the clock; nil means time.Now. Operations read the
	// clock once on entry so a single operation sees one instant.
	Now func() time.Time
}

func NewEngine(cfg EngineConfig) *Engine {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		params:             cfg.Params,
		collaterals:        state.NewCollateralRegistry(),
		positions:          state.NewPositionManager(),
		borrowers:          state.NewBorrowerRegistry(),
		vaults:             ledger.NewBalanceTracker(),
		journal:            ledger.NewJournalGenerator(1),
		circulating:        decimal.Zero,
		redemptionBaseRate: decimal.Zero,
		hasher:             NewStateHasher(),
		persistChan:        cfg.PersistChan,
		projectionChan:     cfg.ProjectionChan,
		now:                now,
		logger:             observability.NewLogger("engine"),
		metrics:            cfg.Metrics,
	}
}

func init() {
	// Ratio and fee divisions need more headroom than the library default.
	if decimal.DivisionPrecision < 16 {
		decimal.DivisionPrecision = 16
	}
}

// Params returns a copy of the current protocol parameters.
func (e *Engine) Params() state.ProtocolParameters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params
}

// CirculatingSupply returns the total stablecoin in circulation.
func (e *Engine) CirculatingSupply() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.circulating
}

// Vaults exposes the escrow ledger for invariant checks and queries.
func (e *Engine) Vaults() *ledger.BalanceTracker {
	return e.vaults
}

// ============================================================================
// Internal helpers, all called with the engine lock held.
// ============================================================================

func (e *Engine) collateral(asset string) (*state.Collateral, error) {
	c, ok := e.collaterals.Get(asset)
	if !ok {
		return nil, fmt.Errorf("%w: unknown collateral %s", ErrState, asset)
	}
	return c, nil
}

func (e *Engine) position(id uuid.UUID) (*state.Position, error) {
	p, ok := e.positions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: unknown position %s", ErrState, id)
	}
	return p, nil
}

// tierMint converts poolAmount to real units at the tier's current
// multiplier, grows both debt fields and the circulating supply, and
// returns the minted real amount. Creates the tier lazily.
func (e *Engine) tierMint(c *state.Collateral, r state.Rate, poolAmount decimal.Decimal, now time.Time) decimal.Decimal {
	t := c.Tiers.Ensure(r, now)
	real := poolAmount.Mul(t.DebtMultiplier())
	t.PoolDebt = t.PoolDebt.Add(poolAmount)
	t.RealDebt = t.RealDebt.Add(real)
	c.TotalDebt = c.TotalDebt.Add(real)
	e.circulating = e.circulating.Add(real)
	return real
}

// tierBurn converts realAmount to pool units at the tier's current
// multiplier, shrinks both debt fields and the circulating supply, and
// returns the pool amount removed.
func (e *Engine) tierBurn(c *state.Collateral, r state.Rate, realAmount decimal.Decimal) (decimal.Decimal, error) {
	t, ok := c.Tiers.Get(r)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no tier at rate %s for %s", ErrState, r, c.Asset)
	}
	pool := realAmount.Div(t.DebtMultiplier())
	t.PoolDebt = t.PoolDebt.Sub(pool)
	t.RealDebt = t.RealDebt.Sub(realAmount)
	c.TotalDebt = c.TotalDebt.Sub(realAmount)
	e.circulating = e.circulating.Sub(realAmount)
	return pool, nil
}

// tierMove conserves real debt across a rate change: each tier's pool
// units are adjusted at that tier's own multiplier.
func (e *Engine) tierMove(c *state.Collateral, from, to state.Rate, realAmount decimal.Decimal, now time.Time) error {
	src, ok := c.Tiers.Get(from)
	if !ok {
		return fmt.Errorf("%w: no tier at rate %s for %s", ErrState, from, c.Asset)
	}
	srcPool := realAmount.Div(src.DebtMultiplier())
	src.PoolDebt = src.PoolDebt.Sub(srcPool)
	src.RealDebt = src.RealDebt.Sub(realAmount)

	dst := c.Tiers.Ensure(to, now)
	dstPool := realAmount.Div(dst.DebtMultiplier())
	dst.PoolDebt = dst.PoolDebt.Add(dstPool)
	dst.RealDebt = dst.RealDebt.Add(realAmount)
	return nil
}

// insertRatio indexes a position at its cached ratio, maintaining the
// tier's ranked-entry count.
func (e *Engine) insertRatio(c *state.Collateral, p *state.Position, now time.Time) error {
	created, err := c.Ratios.Insert(p.Rate, p.Ratio, p.ID, e.params.MaxBucketLength)
	if err != nil {
		return fmt.Errorf("%w: %s at ratio %s", ErrValidation, err, p.Ratio)
	}
	if created {
		c.Tiers.Ensure(p.Rate, now).RankedEntries++
	}
	return nil
}

// removeRatio unindexes a position, maintaining the ranked-entry count.
func (e *Engine) removeRatio(c *state.Collateral, p *state.Position) {
	if c.Ratios.Remove(p.Rate, p.Ratio, p.ID) {
		if t, ok := c.Tiers.Get(p.Rate); ok {
			t.RankedEntries--
		}
	}
}

// reindexRatio moves a position to a new (rate, ratio) slot. The new
// entry is inserted before the old one is removed, so a full bucket
// aborts the operation with the index unchanged.
func (e *Engine) reindexRatio(c *state.Collateral, p *state.Position, newRate state.Rate, newRatio decimal.Decimal, now time.Time) error {
	created, err := c.Ratios.Insert(newRate, newRatio, p.ID, e.params.MaxBucketLength)
	if err != nil {
		return fmt.Errorf("%w: %s at ratio %s", ErrValidation, err, newRatio)
	}
	if created {
		c.Tiers.Ensure(newRate, now).RankedEntries++
	}

	if c.Ratios.Remove(p.Rate, p.Ratio, p.ID) {
		if t, ok := c.Tiers.Get(p.Rate); ok {
			t.RankedEntries--
		}
	}

	p.Rate = newRate
	p.Ratio = newRatio
	return nil
}

// moveCollateral shifts recorded collateral between tiers of the same
// asset. No journal entry: the vault balance is unchanged.
func (e *Engine) moveCollateral(c *state.Collateral, from, to state.Rate, amount decimal.Decimal, now time.Time) {
	if t, ok := c.Tiers.Get(from); ok {
		t.CollateralAmount = t.CollateralAmount.Sub(amount)
	}
	e.collateralTierAdd(c, to, amount, now)
}

func (e *Engine) collateralTierAdd(c *state.Collateral, r state.Rate, amount decimal.Decimal, now time.Time) {
	t := c.Tiers.Ensure(r, now)
	t.CollateralAmount = t.CollateralAmount.Add(amount)
}

// cleanupTier garbage collects a tier whose ranked-entry count reached
// zero, together with its (empty) ratio tree.
func (e *Engine) cleanupTier(c *state.Collateral, r state.Rate) {
	t, ok := c.Tiers.Get(r)
	if !ok {
		return
	}
	if t.RankedEntries <= 0 {
		c.Tiers.Remove(r)
		c.Ratios.DropTier(r)
	}
}

// checkCR asserts price * collateral >= poolDebt * multiplier * MCR and
// returns the pool-unit ratio. When a position is supplied and the check
// passes, a Marked position reverts to Healthy.
func (e *Engine) checkCR(c *state.Collateral, r state.Rate, collateralAmount, poolDebt decimal.Decimal, p *state.Position) (decimal.Decimal, error) {
	multiplier := c.DebtMultiplier(r)

	value := c.USDPrice.Mul(collateralAmount)
	required := poolDebt.Mul(multiplier).Mul(c.MCR)
	if value.Cmp(required) < 0 {
		return decimal.Zero, fmt.Errorf("%w: value %s < required %s", ErrSolvency, value, required)
	}

	if p != nil {
		e.unmarkIfMarked(c, p)
	}

	if poolDebt.IsZero() {
		return decimal.Zero, nil
	}
	return collateralAmount.Div(poolDebt), nil
}

// unmarkIfMarked clears a liquidation notice and restores Healthy.
func (e *Engine) unmarkIfMarked(c *state.Collateral, p *state.Position) {
	if _, marked := c.MarkedDeadlines[p.ID]; marked {
		delete(c.MarkedDeadlines, p.ID)
	}
	if p.Status == state.StatusMarked {
		p.Status = state.StatusHealthy
	}
}

// upfrontFee computes the extra-interest-days fee on a pool debt amount:
// the interest that would accrue over the configured days at chargeRate.
// Returns (real fee, pool fee).
func (e *Engine) upfrontFee(c *state.Collateral, r state.Rate, chargeRate, onPoolDebt decimal.Decimal, days int64) (decimal.Decimal, decimal.Decimal) {
	factor := fpmath.CompoundFactor(chargeRate, days*86400)
	poolFee := factor.Mul(onPoolDebt).Sub(onPoolDebt)
	return poolFee.Mul(c.DebtMultiplier(r)), poolFee
}

// putCollateral records a collateral deposit against a tier.
func (e *Engine) putCollateral(c *state.Collateral, r state.Rate, amount decimal.Decimal, b *ledger.Batch, now time.Time) {
	t := c.Tiers.Ensure(r, now)
	t.CollateralAmount = t.CollateralAmount.Add(amount)
	c.TotalCollateral = c.TotalCollateral.Add(amount)
	e.journal.CollateralDeposit(b, c.Asset, amount)
}

// takeCollateral records a collateral withdrawal from a tier. The journal
// leg is added by the caller, which knows whether the collateral goes to
// the borrower, a liquidator, a redeemer or the leftovers escrow.
func (e *Engine) takeCollateral(c *state.Collateral, r state.Rate, amount decimal.Decimal) error {
	t, ok := c.Tiers.Get(r)
	if !ok {
		return fmt.Errorf("%w: no tier at rate %s for %s", ErrState, r, c.Asset)
	}
	t.CollateralAmount = t.CollateralAmount.Sub(amount)
	c.TotalCollateral = c.TotalCollateral.Sub(amount)
	return nil
}

// validateOrdinaryRate checks an ordinary rate against the grid.
func (e *Engine) validateOrdinaryRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.Cmp(e.params.MaxInterest) >= 0 {
		return fmt.Errorf("%w: rate %s outside [0, %s)", ErrValidation, rate, e.params.MaxInterest)
	}
	if !fpmath.IsDivisibleBy(rate, e.params.InterestInterval) {
		return fmt.Errorf("%w: rate %s not a multiple of %s", ErrValidation, rate, e.params.InterestInterval)
	}
	return nil
}

// ============================================================================
// Event emission
// ============================================================================

// emit finalizes a successful operation: assigns the next sequence,
// chains the state hash, applies the journal batch to the escrow ledger,
// and hands the event to the persistence (blocking) and projection
// (non-blocking) workers.
func (e *Engine) emit(evt event.Event, idemKey string, ts time.Time, batch *ledger.Batch) {
	if idemKey == "" {
		idemKey = fmt.Sprintf("%s:%d", evt.EventType(), e.sequence+1)
	}
	if batch != nil && len(batch.Journals) > 0 {
		if err := e.vaults.ApplyBatch(batch); err != nil {
			// Batches are built by the engine itself; a malformed one is a bug.
			e.logger.Error().Err(err).Str("ref", idemKey).Msg("journal batch rejected")
		}
	}

	e.sequence++
	e.journal.SetSequence(e.sequence + 1)

	payload, err := json.Marshal(evt)
	if err != nil {
		e.logger.Error().Err(err).Str("type", evt.EventType().String()).Msg("marshal event payload")
		return
	}

	prevHash := e.hasher.GetPrevHash()
	stateHash := e.hasher.ComputeHash(e.sequence, e.stateDigest())

	envelope := event.EventEnvelope{
		Sequence:       e.sequence,
		IdempotencyKey: idemKey,
		EventType:      evt.EventType(),
		Collateral:     evt.CollateralAsset(),
		Timestamp:      ts,
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}

	if e.metrics != nil {
		e.metrics.EventsProcessed.WithLabelValues(evt.EventType().String()).Inc()
	}

	var journals []ledger.Journal
	if batch != nil {
		journals = batch.Journals
	}

	if e.persistChan != nil {
		e.persistChan <- PersistRequest{Envelope: envelope, Journals: journals}
	}

	if e.projectionChan != nil {
		select {
		case e.projectionChan <- ProjectionUpdate{Envelope: envelope, Event: evt}:
		default:
			// Projection lag is acceptable; it rebuilds from the log.
			if e.metrics != nil {
				e.metrics.ProjectionDrops.Inc()
			}
		}
	}
}

// stateDigest serializes the full protocol state deterministically.
func (e *Engine) stateDigest() []byte {
	buf := make([]byte, 0, 4096)

	buf = append(buf, []byte(e.circulating.String())...)
	buf = append(buf, 0x00)
	buf = append(buf, []byte(e.redemptionBaseRate.String())...)
	buf = append(buf, 0x00)

	for _, c := range e.collaterals.All() {
		buf = append(buf, []byte(c.Asset)...)
		buf = append(buf, 0x00)
		buf = append(buf, []byte(c.USDPrice.String())...)
		buf = append(buf, 0x00)
		buf = append(buf, []byte(c.TotalDebt.String())...)
		buf = append(buf, 0x00)
		buf = append(buf, []byte(c.TotalCollateral.String())...)
		buf = append(buf, 0x00)
		for _, t := range c.Tiers.All() {
			buf = append(buf, []byte(t.Rate.String())...)
			buf = append(buf, 0x00)
			buf = append(buf, []byte(t.PoolDebt.String())...)
			buf = append(buf, 0x00)
			buf = append(buf, []byte(t.RealDebt.String())...)
			buf = append(buf, 0x00)
		}
	}

	for _, p := range e.positions.All() {
		buf = append(buf, p.CanonicalBytes()...)
	}

	return buf
}

package core

import (
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StableLedger/internal/ledger"
	"StableLedger/internal/state"
)

// Snapshot is a full serializable capture of engine state. The ratio
// ranking index is not stored; Restore rebuilds it from the positions.
type Snapshot struct {
	Sequence           int64                     `json:"sequence"`
	PrevHash           string                    `json:"prev_hash"`
	Circulating        decimal.Decimal           `json:"circulating"`
	RedemptionBaseRate decimal.Decimal           `json:"redemption_base_rate"`
	LastRedemption     time.Time                 `json:"last_redemption"`
	Params             state.ProtocolParameters  `json:"params"`
	Collaterals        []CollateralSnapshot      `json:"collaterals"`
	Positions          []PositionSnapshot        `json:"positions"`
	Borrowers          []BorrowerSnapshot        `json:"borrowers"`
	Balances           []BalanceSnapshot         `json:"balances"`
}

type CollateralSnapshot struct {
	Asset           string               `json:"asset"`
	MCR             decimal.Decimal      `json:"mcr"`
	USDPrice        decimal.Decimal      `json:"usd_price"`
	Accepted        bool                 `json:"accepted"`
	TotalDebt       decimal.Decimal      `json:"total_debt"`
	TotalCollateral decimal.Decimal      `json:"total_collateral"`
	Tiers           []TierSnapshot       `json:"tiers"`
	MarkedDeadlines map[string]time.Time `json:"marked_deadlines,omitempty"`
}

type TierSnapshot struct {
	RateWire         decimal.Decimal `json:"rate"`
	PoolDebt         decimal.Decimal `json:"pool_debt"`
	RealDebt         decimal.Decimal `json:"real_debt"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	LastCharge       time.Time       `json:"last_charge"`
}

type PositionSnapshot struct {
	ID               uuid.UUID       `json:"id"`
	Collateral       string          `json:"collateral"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	PoolDebt         decimal.Decimal `json:"pool_debt"`
	RateWire         decimal.Decimal `json:"rate"`
	LastRateChange   time.Time       `json:"last_rate_change"`
	Status           int32           `json:"status"`
	Borrower         *uuid.UUID      `json:"borrower,omitempty"`
	Version          int64           `json:"version"`
}

type BorrowerSnapshot struct {
	ID               uuid.UUID   `json:"id"`
	RedemptionOptOut bool        `json:"redemption_opt_out"`
	NoticeMinutes    *int64      `json:"notice_minutes,omitempty"`
	MaxCoupled       int64       `json:"max_coupled"`
	CoupledPositions []uuid.UUID `json:"coupled_positions"`
}

type BalanceSnapshot struct {
	Account string          `json:"account"`
	Key     ledger.AccountKey `json:"key"`
	Balance decimal.Decimal `json:"balance"`
}

// Snapshot captures current engine state for persistence.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	prev := e.hasher.GetPrevHash()
	snap := Snapshot{
		Sequence:           e.sequence,
		PrevHash:           hex.EncodeToString(prev[:]),
		Circulating:        e.circulating,
		RedemptionBaseRate: e.redemptionBaseRate,
		LastRedemption:     e.lastRedemption,
		Params:             e.params,
	}

	for _, c := range e.collaterals.All() {
		cs := CollateralSnapshot{
			Asset:           c.Asset,
			MCR:             c.MCR,
			USDPrice:        c.USDPrice,
			Accepted:        c.Accepted,
			TotalDebt:       c.TotalDebt,
			TotalCollateral: c.TotalCollateral,
		}
		for _, t := range c.Tiers.All() {
			cs.Tiers = append(cs.Tiers, TierSnapshot{
				RateWire:         t.Rate.Wire(),
				PoolDebt:         t.PoolDebt,
				RealDebt:         t.RealDebt,
				CollateralAmount: t.CollateralAmount,
				LastCharge:       t.LastCharge,
			})
		}
		if len(c.MarkedDeadlines) > 0 {
			cs.MarkedDeadlines = make(map[string]time.Time, len(c.MarkedDeadlines))
			for id, deadline := range c.MarkedDeadlines {
				cs.MarkedDeadlines[id.String()] = deadline
			}
		}
		snap.Collaterals = append(snap.Collaterals, cs)
	}

	for _, p := range e.positions.All() {
		snap.Positions = append(snap.Positions, PositionSnapshot{
			ID:               p.ID,
			Collateral:       p.Collateral,
			CollateralAmount: p.CollateralAmount,
			PoolDebt:         p.PoolDebt,
			RateWire:         p.Rate.Wire(),
			LastRateChange:   p.LastRateChange,
			Status:           int32(p.Status),
			Borrower:         p.Borrower,
			Version:          p.Version,
		})
	}

	for _, b := range e.borrowers.All() {
		bs := BorrowerSnapshot{
			ID:               b.ID,
			RedemptionOptOut: b.RedemptionOptOut,
			MaxCoupled:       b.MaxCoupledPositions,
			CoupledPositions: append([]uuid.UUID(nil), b.CoupledPositions...),
		}
		if b.LiquidationNotice != nil {
			minutes := int64(b.LiquidationNotice.Minutes())
			bs.NoticeMinutes = &minutes
		}
		snap.Borrowers = append(snap.Borrowers, bs)
	}

	balances := e.vaults.Snapshot()
	keys := make([]ledger.AccountKey, 0, len(balances))
	for k := range balances {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].AccountPath() < keys[j].AccountPath()
	})
	for _, k := range keys {
		snap.Balances = append(snap.Balances, BalanceSnapshot{
			Account: k.AccountPath(),
			Key:     k,
			Balance: balances[k],
		})
	}

	return snap
}

// Restore replaces engine state from a snapshot, rebuilding the ratio
// ranking index and tier entry counts from the active positions.
func (e *Engine) Restore(snap Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prevBytes, err := hex.DecodeString(snap.PrevHash)
	if err != nil || len(prevBytes) != 32 {
		return fmt.Errorf("%w: malformed prev hash", ErrValidation)
	}
	if err := snap.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	collaterals := state.NewCollateralRegistry()
	for _, cs := range snap.Collaterals {
		c := state.NewCollateral(cs.Asset, cs.MCR, cs.USDPrice, cs.Accepted)
		c.TotalDebt = cs.TotalDebt
		c.TotalCollateral = cs.TotalCollateral
		for _, ts := range cs.Tiers {
			t := c.Tiers.Ensure(state.RateFromWire(ts.RateWire), ts.LastCharge)
			t.PoolDebt = ts.PoolDebt
			t.RealDebt = ts.RealDebt
			t.CollateralAmount = ts.CollateralAmount
			t.LastCharge = ts.LastCharge
		}
		for idStr, deadline := range cs.MarkedDeadlines {
			id, err := uuid.Parse(idStr)
			if err != nil {
				return fmt.Errorf("%w: malformed marked position id %q", ErrValidation, idStr)
			}
			c.MarkedDeadlines[id] = deadline
		}
		collaterals.Put(c)
	}

	positions := state.NewPositionManager()
	for _, ps := range snap.Positions {
		p := &state.Position{
			ID:               ps.ID,
			Collateral:       ps.Collateral,
			CollateralAmount: ps.CollateralAmount,
			PoolDebt:         ps.PoolDebt,
			Rate:             state.RateFromWire(ps.RateWire),
			LastRateChange:   ps.LastRateChange,
			Status:           state.PositionStatus(ps.Status),
			Borrower:         ps.Borrower,
			Version:          ps.Version,
		}
		p.RecomputeRatio()
		positions.Put(p)

		if p.Status.Terminal() {
			continue
		}
		c, ok := collaterals.Get(p.Collateral)
		if !ok {
			return fmt.Errorf("%w: position %s references unknown collateral %s", ErrValidation, p.ID, p.Collateral)
		}
		created, err := c.Ratios.Insert(p.Rate, p.Ratio, p.ID, snap.Params.MaxBucketLength)
		if err != nil {
			return fmt.Errorf("%w: reindex position %s: %s", ErrValidation, p.ID, err)
		}
		if created {
			c.Tiers.Ensure(p.Rate, p.LastRateChange).RankedEntries++
		}
	}

	borrowers := state.NewBorrowerRegistry()
	for _, bs := range snap.Borrowers {
		borrowers.Put(&state.PrivilegedBorrower{
			ID:                  bs.ID,
			RedemptionOptOut:    bs.RedemptionOptOut,
			LiquidationNotice:   minutesToDuration(bs.NoticeMinutes),
			MaxCoupledPositions: bs.MaxCoupled,
			CoupledPositions:    append([]uuid.UUID(nil), bs.CoupledPositions...),
		})
	}

	vaults := ledger.NewBalanceTracker()
	for _, bal := range snap.Balances {
		vaults.SetBalance(bal.Key, bal.Balance)
	}

	// Commit only after every record decoded cleanly.
	e.params = snap.Params
	e.collaterals = collaterals
	e.positions = positions
	e.borrowers = borrowers
	e.vaults = vaults
	e.circulating = snap.Circulating
	e.redemptionBaseRate = snap.RedemptionBaseRate
	e.lastRedemption = snap.LastRedemption
	e.sequence = snap.Sequence
	e.journal.SetSequence(snap.Sequence + 1)

	var prev [32]byte
	copy(prev[:], prevBytes)
	e.hasher.SetPrevHash(prev)

	e.logger.Info().Int64("sequence", snap.Sequence).Msg("state restored from snapshot")
	return nil
}

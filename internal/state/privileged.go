package state

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// PrivilegedBorrower grants special loan conditions: opting linked
// positions out of redemption and/or demanding a liquidation notice
// period. Linking is bounded by MaxCoupledPositions.
type PrivilegedBorrower struct {
	ID               uuid.UUID
	RedemptionOptOut bool
	// LiquidationNotice is the notice period liquidators must observe,
	// nil when none is required.
	LiquidationNotice   *time.Duration
	MaxCoupledPositions int64
	CoupledPositions    []uuid.UUID
}

// BorrowerRegistry holds privileged borrower records by id.
type BorrowerRegistry struct {
	borrowers map[uuid.UUID]*PrivilegedBorrower
}

func NewBorrowerRegistry() *BorrowerRegistry {
	return &BorrowerRegistry{
		borrowers: make(map[uuid.UUID]*PrivilegedBorrower),
	}
}

func (br *BorrowerRegistry) Get(id uuid.UUID) (*PrivilegedBorrower, bool) {
	b, ok := br.borrowers[id]
	return b, ok
}

func (br *BorrowerRegistry) Put(b *PrivilegedBorrower) {
	br.borrowers[b.ID] = b
}

// Link couples a position to a borrower, enforcing the coupling limit.
func (br *BorrowerRegistry) Link(borrowerID, positionID uuid.UUID) error {
	b, ok := br.borrowers[borrowerID]
	if !ok {
		return fmt.Errorf("borrower %s not found", borrowerID)
	}
	for _, existing := range b.CoupledPositions {
		if existing == positionID {
			return nil
		}
	}
	if int64(len(b.CoupledPositions))+1 > b.MaxCoupledPositions {
		return fmt.Errorf("borrower %s at coupling limit %d", borrowerID, b.MaxCoupledPositions)
	}
	b.CoupledPositions = append(b.CoupledPositions, positionID)
	return nil
}

// Unlink removes a position from a borrower's coupled list.
func (br *BorrowerRegistry) Unlink(borrowerID, positionID uuid.UUID) {
	b, ok := br.borrowers[borrowerID]
	if !ok {
		return
	}
	for i, existing := range b.CoupledPositions {
		if existing == positionID {
			b.CoupledPositions = append(b.CoupledPositions[:i], b.CoupledPositions[i+1:]...)
			return
		}
	}
}

// All returns borrowers sorted by id for deterministic iteration.
func (br *BorrowerRegistry) All() []*PrivilegedBorrower {
	out := make([]*PrivilegedBorrower, 0, len(br.borrowers))
	for _, b := range br.borrowers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out
}

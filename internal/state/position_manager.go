package state

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// PositionManager holds every debt position by id.
type PositionManager struct {
	positions map[uuid.UUID]*Position
}

func NewPositionManager() *PositionManager {
	return &PositionManager{
		positions: make(map[uuid.UUID]*Position),
	}
}

func (pm *PositionManager) Get(id uuid.UUID) (*Position, bool) {
	p, ok := pm.positions[id]
	return p, ok
}

func (pm *PositionManager) Put(p *Position) {
	pm.positions[p.ID] = p
}

func (pm *PositionManager) Remove(id uuid.UUID) {
	delete(pm.positions, id)
}

func (pm *PositionManager) Count() int {
	return len(pm.positions)
}

// All returns positions sorted by id for deterministic iteration
// (state hashing, snapshots).
func (pm *PositionManager) All() []*Position {
	out := make([]*Position, 0, len(pm.positions))
	for _, p := range pm.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out
}

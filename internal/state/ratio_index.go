package state

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrBucketFull is returned when a ratio bucket has reached the configured
// capacity. Bounded buckets keep tie scans from degrading to O(n).
var ErrBucketFull = errors.New("ratio bucket at capacity")

// RatioBucket holds the position ids sharing one exact collateral ratio,
// in insertion order.
type RatioBucket struct {
	Ratio decimal.Decimal
	IDs   []uuid.UUID
}

// ratioTree is the ordered set of buckets for one interest tier.
type ratioTree struct {
	buckets []*RatioBucket
}

func (rt *ratioTree) search(ratio decimal.Decimal) int {
	return sort.Search(len(rt.buckets), func(i int) bool {
		return rt.buckets[i].Ratio.Cmp(ratio) >= 0
	})
}

// RatioIndex ranks one collateral's positions by collateral ratio within
// each interest tier. A position id appears in exactly one (rate, ratio)
// bucket, matching its cached ratio; every mutation removes and reinserts
// the entry, there is no lazy re-indexing.
type RatioIndex struct {
	rates []Rate
	trees []*ratioTree
}

func NewRatioIndex() *RatioIndex {
	return &RatioIndex{}
}

func (ri *RatioIndex) searchRate(r Rate) int {
	return sort.Search(len(ri.rates), func(i int) bool {
		return ri.rates[i].Cmp(r) >= 0
	})
}

func (ri *RatioIndex) tree(r Rate) (*ratioTree, bool) {
	i := ri.searchRate(r)
	if i < len(ri.rates) && ri.rates[i].Equal(r) {
		return ri.trees[i], true
	}
	return nil, false
}

func (ri *RatioIndex) ensureTree(r Rate) *ratioTree {
	i := ri.searchRate(r)
	if i < len(ri.rates) && ri.rates[i].Equal(r) {
		return ri.trees[i]
	}
	t := &ratioTree{}
	ri.rates = append(ri.rates, Rate{})
	copy(ri.rates[i+1:], ri.rates[i:])
	ri.rates[i] = r
	ri.trees = append(ri.trees, nil)
	copy(ri.trees[i+1:], ri.trees[i:])
	ri.trees[i] = t
	return t
}

// Insert adds a position id to the bucket at the exact ratio, creating
// the tier's tree and the bucket as needed. It reports whether a new
// bucket was created so the caller can maintain the tier's ranked-entry
// count. Fails with ErrBucketFull when the bucket is at maxBucketLen.
func (ri *RatioIndex) Insert(r Rate, ratio decimal.Decimal, id uuid.UUID, maxBucketLen int64) (created bool, err error) {
	rt := ri.ensureTree(r)
	i := rt.search(ratio)
	if i < len(rt.buckets) && rt.buckets[i].Ratio.Equal(ratio) {
		b := rt.buckets[i]
		if int64(len(b.IDs)) >= maxBucketLen {
			return false, ErrBucketFull
		}
		b.IDs = append(b.IDs, id)
		return false, nil
	}

	b := &RatioBucket{Ratio: ratio, IDs: []uuid.UUID{id}}
	rt.buckets = append(rt.buckets, nil)
	copy(rt.buckets[i+1:], rt.buckets[i:])
	rt.buckets[i] = b
	return true, nil
}

// Remove deletes a position id from the bucket at the exact ratio and
// reports whether the bucket became empty and was removed.
func (ri *RatioIndex) Remove(r Rate, ratio decimal.Decimal, id uuid.UUID) (removed bool) {
	rt, ok := ri.tree(r)
	if !ok {
		return false
	}
	i := rt.search(ratio)
	if i >= len(rt.buckets) || !rt.buckets[i].Ratio.Equal(ratio) {
		return false
	}

	b := rt.buckets[i]
	for j, existing := range b.IDs {
		if existing == id {
			b.IDs = append(b.IDs[:j], b.IDs[j+1:]...)
			break
		}
	}

	if len(b.IDs) == 0 {
		rt.buckets = append(rt.buckets[:i], rt.buckets[i+1:]...)
		return true
	}
	return false
}

// Ascend visits one tier's buckets with ratio >= from in ascending order.
func (ri *RatioIndex) Ascend(r Rate, from decimal.Decimal, fn func(*RatioBucket) bool) {
	rt, ok := ri.tree(r)
	if !ok {
		return
	}
	for i := rt.search(from); i < len(rt.buckets); i++ {
		if !fn(rt.buckets[i]) {
			return
		}
	}
}

// Worst returns the lowest-ratio bucket of a tier, or nil when empty.
func (ri *RatioIndex) Worst(r Rate) *RatioBucket {
	rt, ok := ri.tree(r)
	if !ok || len(rt.buckets) == 0 {
		return nil
	}
	return rt.buckets[0]
}

// Buckets returns (ratio, ids) pairs for a tier with ratio in [start, end).
// A nil end means unbounded.
func (ri *RatioIndex) Buckets(r Rate, start decimal.Decimal, end *decimal.Decimal) []*RatioBucket {
	var out []*RatioBucket
	ri.Ascend(r, start, func(b *RatioBucket) bool {
		if end != nil && b.Ratio.Cmp(*end) >= 0 {
			return false
		}
		out = append(out, b)
		return true
	})
	return out
}

// DropTier removes a tier's tree entirely; used when the tier ledger
// garbage collects an empty tier.
func (ri *RatioIndex) DropTier(r Rate) {
	i := ri.searchRate(r)
	if i < len(ri.rates) && ri.rates[i].Equal(r) {
		ri.rates = append(ri.rates[:i], ri.rates[i+1:]...)
		ri.trees = append(ri.trees[:i], ri.trees[i+1:]...)
	}
}

// Rates returns the rates with a tree, ascending.
func (ri *RatioIndex) Rates() []Rate {
	out := make([]Rate, len(ri.rates))
	copy(out, ri.rates)
	return out
}

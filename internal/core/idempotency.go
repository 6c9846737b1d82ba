package core

import (
	"container/list"
	"fmt"
)

// CommandDeduper implements two-tier deduplication for inbound commands
// and price-feed messages: an in-memory LRU in front of a Postgres
// lookup against the event log's idempotency keys.
type CommandDeduper struct {
	lru *dedupLRU

	dbChecker DBDedupChecker
}

// DBDedupChecker is the interface for the Postgres dedup lookup.
type DBDedupChecker interface {
	IsDuplicate(eventType string, idempotencyKey string) (bool, error)
}

func NewCommandDeduper(capacity int, dbChecker DBDedupChecker) *CommandDeduper {
	return &CommandDeduper{
		lru:       newDedupLRU(capacity),
		dbChecker: dbChecker,
	}
}

// IsDuplicate checks whether a command has already been processed.
func (cd *CommandDeduper) IsDuplicate(eventType string, idempotencyKey string) bool {
	compositeKey := fmt.Sprintf("%s:%s", eventType, idempotencyKey)

	if cd.lru.Contains(compositeKey) {
		return true
	}

	if cd.dbChecker != nil {
		isDup, err := cd.dbChecker.IsDuplicate(eventType, idempotencyKey)
		if err != nil {
			// Conservative: a DB hiccup must not block command processing.
			return false
		}
		if isDup {
			cd.lru.Add(compositeKey)
			return true
		}
	}

	return false
}

// MarkProcessed records a key after successful processing.
func (cd *CommandDeduper) MarkProcessed(eventType string, idempotencyKey string) {
	cd.lru.Add(fmt.Sprintf("%s:%s", eventType, idempotencyKey))
}

// dedupLRU is an LRU cache for dedup keys.
// Not thread-safe; callers serialize access.
type dedupLRU struct {
	capacity int
	cache    map[string]*list.Element
	lruList  *list.List
}

type lruEntry struct {
	key string
}

func newDedupLRU(capacity int) *dedupLRU {
	return &dedupLRU{
		capacity: capacity,
		cache:    make(map[string]*list.Element, capacity),
		lruList:  list.New(),
	}
}

// Contains checks if a key exists, promoting it to most recently used.
func (lru *dedupLRU) Contains(key string) bool {
	elem, exists := lru.cache[key]
	if exists {
		lru.lruList.MoveToFront(elem)
		return true
	}
	return false
}

// Add inserts a key, evicting the least recently used one at capacity.
func (lru *dedupLRU) Add(key string) {
	if elem, exists := lru.cache[key]; exists {
		lru.lruList.MoveToFront(elem)
		return
	}

	entry := &lruEntry{key: key}
	elem := lru.lruList.PushFront(entry)
	lru.cache[key] = elem

	if lru.lruList.Len() > lru.capacity {
		oldest := lru.lruList.Back()
		if oldest != nil {
			lru.lruList.Remove(oldest)
			delete(lru.cache, oldest.Value.(*lruEntry).key)
		}
	}
}

// Len returns the number of cached keys.
func (lru *dedupLRU) Len() int {
	return lru.lruList.Len()
}

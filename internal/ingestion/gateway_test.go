package ingestion_test

import (
	"errors"
	"testing"

	"StableLedger/internal/core"
	"StableLedger/internal/ingestion"
)

// stubDBChecker fakes the Postgres dedup fallback.
type stubDBChecker struct {
	dups map[string]bool
	err  error
}

func (s *stubDBChecker) IsDuplicate(eventType, key string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.dups[eventType+":"+key], nil
}

func newTestGateway() *ingestion.CommandGateway {
	return ingestion.NewCommandGateway(core.NewCommandDeduper(16, nil), nil)
}

// ============================================================
// Test: Command gateway
// ============================================================

func TestExecute_RunsOnce(t *testing.T) {
	g := newTestGateway()

	calls := 0
	fn := func() error { calls++; return nil }

	if err := g.Execute("position_opened", "ref-1", fn); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	if err := g.Execute("position_opened", "ref-1", fn); !errors.Is(err, ingestion.ErrDuplicateCommand) {
		t.Errorf("retry: got %v, want ErrDuplicateCommand", err)
	}
	if calls != 1 {
		t.Errorf("fn ran %d times, want 1", calls)
	}
}

func TestExecute_ScopedByEventType(t *testing.T) {
	g := newTestGateway()

	if err := g.Execute("position_opened", "ref-1", func() error { return nil }); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	// The same reference under another event type is a distinct command.
	if err := g.Execute("position_closed", "ref-1", func() error { return nil }); err != nil {
		t.Errorf("same ref, other type: %v", err)
	}
}

func TestExecute_FailureIsRetryable(t *testing.T) {
	g := newTestGateway()

	boom := errors.New("boom")
	if err := g.Execute("position_opened", "ref-1", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("got %v, want the fn error", err)
	}

	// The failed attempt was not marked processed.
	if err := g.Execute("position_opened", "ref-1", func() error { return nil }); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}

func TestExecute_RequiresReference(t *testing.T) {
	g := newTestGateway()

	if err := g.Execute("position_opened", "", func() error { return nil }); err == nil {
		t.Error("empty reference accepted")
	}
}

// ============================================================
// Test: Two-tier deduper
// ============================================================

func TestDeduper_DBFallback(t *testing.T) {
	db := &stubDBChecker{dups: map[string]bool{"position_opened:ref-db": true}}
	d := core.NewCommandDeduper(16, db)

	// Unknown to the LRU but present in the event log.
	if !d.IsDuplicate("position_opened", "ref-db") {
		t.Error("log-backed duplicate not detected")
	}
	// The hit is now cached; a DB outage no longer matters.
	db.err = errors.New("connection refused")
	if !d.IsDuplicate("position_opened", "ref-db") {
		t.Error("cached duplicate not detected after db failure")
	}
}

func TestDeduper_DBErrorDoesNotBlock(t *testing.T) {
	d := core.NewCommandDeduper(16, &stubDBChecker{err: errors.New("connection refused")})

	// A DB hiccup must never reject a fresh command.
	if d.IsDuplicate("position_opened", "ref-1") {
		t.Error("fresh command reported duplicate during db failure")
	}
}

func TestDeduper_LRUEviction(t *testing.T) {
	d := core.NewCommandDeduper(2, nil)

	d.MarkProcessed("t", "a")
	d.MarkProcessed("t", "b")
	d.MarkProcessed("t", "c") // evicts a

	if d.IsDuplicate("t", "a") {
		t.Error("evicted key still reported duplicate")
	}
	if !d.IsDuplicate("t", "b") || !d.IsDuplicate("t", "c") {
		t.Error("recent keys not reported duplicate")
	}
}

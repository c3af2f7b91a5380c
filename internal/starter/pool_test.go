package starter

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/arkhamrando/internal/log"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

func TestPoolPrecollect(t *testing.T) {
	cat := testCatalog(t)
	owned := state.New()
	pool := NewPool(cat, testOptions(t, nil), owned, 1)

	if got := pool.Count("Alice Hand Slot"); got != 2 {
		t.Fatalf("Expected 2 hand slot copies pending, got %d", got)
	}
	before := pool.Len()

	for range 2 {
		if err := pool.Precollect("Alice Hand Slot"); err != nil {
			t.Fatalf("Precollect: %v", err)
		}
	}
	if err := pool.Precollect("Alice Hand Slot"); !errors.Is(err, ErrNotInPool) {
		t.Errorf("Expected ErrNotInPool for a third copy, got %v", err)
	}
	if err := pool.Precollect("Nobody"); !errors.Is(err, ErrNotInPool) {
		t.Errorf("Expected ErrNotInPool for an unknown item, got %v", err)
	}

	if got := owned.Count("Alice Hand Slot", 1); got != 2 {
		t.Errorf("Expected player 1 to own 2 hand slots, got %d", got)
	}
	if pool.Len() != before-2 {
		t.Errorf("Expected pool to shrink by 2, got %d -> %d", before, pool.Len())
	}
	for _, name := range pool.Remaining() {
		if name == "Alice Hand Slot" {
			t.Fatal("Expected no hand slots left in the pool")
		}
	}
}

func TestCommit(t *testing.T) {
	cat := testCatalog(t)
	opts := testOptions(t, nil)
	res, err := Allocate(cat, opts, firstRNG{})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	owned := state.New()
	logger := log.NewMemoryLogger()
	if err := Commit(res, NewPool(cat, opts, owned, 0), logger, 0); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	for _, item := range res.Items() {
		if !owned.Has(item, 0) {
			t.Errorf("Expected %s to be owned after commit", item)
		}
	}
	if got := len(logger.EventsOfType(log.EventPrecollect)); got != len(res.Items()) {
		t.Errorf("Expected %d precollect events, got %d", len(res.Items()), got)
	}
}

func TestCommitStopsOnMissingItem(t *testing.T) {
	cat := testCatalog(t)
	pool := NewPool(cat, testOptions(t, nil), state.New(), 0)
	res := Result{Investigators: []string{"Alice"}, Cards: []string{"Guardian Card 01", "Guardian Card 01"}}
	if err := Commit(res, pool, nil, 0); !errors.Is(err, ErrNotInPool) {
		t.Errorf("Expected the second copy to be rejected, got %v", err)
	}
}

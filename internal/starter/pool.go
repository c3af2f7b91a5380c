package starter

import (
	"errors"
	"fmt"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/log"
	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// ErrNotInPool means a precollected item has no copy left in the item pool.
var ErrNotInPool = errors.New("item not in pool")

// Sink receives the starting items: each one leaves the pending item pool
// and becomes owned by the player.
type Sink interface {
	Precollect(item string) error
}

// Pool is the pending item pool of one player. It implements Sink by moving
// items into the player's collection.
type Pool struct {
	counts map[string]int
	order  []string
	owned  *state.Collection
	player int
}

// NewPool fills a pool with every item in play, Count copies each.
func NewPool(cat *catalog.Catalog, opts options.Options, owned *state.Collection, player int) *Pool {
	p := &Pool{counts: make(map[string]int), owned: owned, player: player}
	for it := range cat.Items() {
		if !opts.Allows(it) {
			continue
		}
		p.counts[it.Name] += it.Count
		p.order = append(p.order, it.Name)
	}
	return p
}

func (p *Pool) Precollect(item string) error {
	if p.counts[item] <= 0 {
		return fmt.Errorf("precollect %q: %w", item, ErrNotInPool)
	}
	p.counts[item]--
	if p.owned != nil {
		p.owned.Collect(p.player, item)
	}
	return nil
}

// Count returns the copies of item still pending.
func (p *Pool) Count(item string) int {
	return p.counts[item]
}

// Len returns the number of pending copies.
func (p *Pool) Len() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// Remaining lists pending copies in catalog order.
func (p *Pool) Remaining() []string {
	var out []string
	for _, name := range p.order {
		for range p.counts[name] {
			out = append(out, name)
		}
	}
	return out
}

// Commit hands every item of the result to the sink in investigator, card,
// token order. It stops at the first item the sink rejects.
func Commit(res Result, sink Sink, logger log.EventLogger, player int) error {
	if logger == nil {
		logger = log.Discard
	}
	logger.Log(log.NewStepEvent(player, "Commit"))
	for _, item := range res.Items() {
		if err := sink.Precollect(item); err != nil {
			return err
		}
		logger.Log(log.NewPrecollectEvent(player, item))
	}
	return nil
}

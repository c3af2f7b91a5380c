// Package state holds the per-player record of unlocked items.
package state

import (
	"slices"
)

// Ownership is the read side of the collection state that rules query.
type Ownership interface {
	Has(name string, player int) bool
	HasAtLeast(name string, player int, n int) bool
	HasAll(names []string, player int) bool
	HasAny(names []string, player int) bool
	Count(name string, player int) int
}

// Hook is called after an item was collected or removed. changed reports
// whether the count actually moved.
type Hook func(c *Collection, player int, name string, changed bool)

// Collection is a multiset of owned item names per player.
type Collection struct {
	items map[int]map[string]int

	// AfterCollect and AfterRemove may maintain derived counters. Both
	// default to no-ops and must undo each other.
	AfterCollect Hook
	AfterRemove  Hook
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{items: make(map[int]map[string]int)}
}

func (c *Collection) player(p int) map[string]int {
	m, ok := c.items[p]
	if !ok {
		m = make(map[string]int)
		c.items[p] = m
	}
	return m
}

// Collect adds one copy of name for player.
func (c *Collection) Collect(player int, name string) {
	c.CollectN(player, name, 1)
}

// CollectN adds n copies of name for player.
func (c *Collection) CollectN(player int, name string, n int) {
	changed := n > 0
	if changed {
		c.player(player)[name] += n
	}
	if c.AfterCollect != nil {
		c.AfterCollect(c, player, name, changed)
	}
}

// Remove drops one copy of name. Removing an unowned item is a no-op.
func (c *Collection) Remove(player int, name string) {
	m := c.items[player]
	changed := m[name] > 0
	if changed {
		m[name]--
		if m[name] == 0 {
			delete(m, name)
		}
	}
	if c.AfterRemove != nil {
		c.AfterRemove(c, player, name, changed)
	}
}

func (c *Collection) Count(name string, player int) int {
	return c.items[player][name]
}

func (c *Collection) Has(name string, player int) bool {
	return c.items[player][name] > 0
}

func (c *Collection) HasAtLeast(name string, player int, n int) bool {
	return c.items[player][name] >= n
}

func (c *Collection) HasAll(names []string, player int) bool {
	m := c.items[player]
	for _, n := range names {
		if m[n] <= 0 {
			return false
		}
	}
	return true
}

func (c *Collection) HasAny(names []string, player int) bool {
	m := c.items[player]
	for _, n := range names {
		if m[n] > 0 {
			return true
		}
	}
	return false
}

// Owned returns the sorted names player owns.
func (c *Collection) Owned(player int) []string {
	m := c.items[player]
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

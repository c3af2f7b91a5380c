// Package starter picks the investigators, cards and capability tokens a
// player owns when generation starts.
package starter

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/log"
	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/rules"
)

// ErrDeckUnsatisfiable means the card pool ran out before every starter
// investigator reached the minimum deck size.
var ErrDeckUnsatisfiable = errors.New("not enough eligible starter cards")

// RNG is the random source the allocator draws from.
type RNG interface {
	// IntN returns a random int in [0, n).
	IntN(n int) int
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Result is the starting inventory chosen for one player.
type Result struct {
	Investigators []string
	Cards         []string
	Tokens        []string

	// DeckCounts is the number of drawn cards each starter can use.
	DeckCounts map[string]int
}

// Items returns every chosen item in commit order.
func (r Result) Items() []string {
	out := make([]string, 0, len(r.Investigators)+len(r.Cards)+len(r.Tokens))
	out = append(out, r.Investigators...)
	out = append(out, r.Cards...)
	return append(out, r.Tokens...)
}

// Allocator runs the starter allocation for one player.
type Allocator struct {
	Catalog *catalog.Catalog
	Options options.Options
	RNG     RNG
	Player  int
	Logger  log.EventLogger
}

// Allocate is a convenience wrapper running an Allocator without logging.
func Allocate(cat *catalog.Catalog, opts options.Options, rng RNG) (Result, error) {
	a := &Allocator{Catalog: cat, Options: opts, RNG: rng}
	return a.Run()
}

// Run draws the starting investigators, their starter cards and the starting
// capability tokens. Options must have been prepared.
func (a *Allocator) Run() (Result, error) {
	if a.Logger == nil {
		a.Logger = log.Discard
	}
	all, err := a.allowed(catalog.GroupInvestigators)
	if err != nil {
		return Result{}, err
	}

	a.Logger.Log(log.NewStepEvent(a.Player, "Draft"))
	starters, err := a.draft(all)
	if err != nil {
		return Result{}, err
	}

	a.Logger.Log(log.NewStepEvent(a.Player, "Starter Deck"))
	cards, counts, err := a.drawDecks(starters)
	if err != nil {
		return Result{}, err
	}

	a.Logger.Log(log.NewStepEvent(a.Player, "Capabilities"))
	tokens, err := a.grant(starters, all)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Investigators: starters,
		Cards:         cards,
		Tokens:        tokens,
		DeckCounts:    counts,
	}, nil
}

// allowed returns the group members whose expansion is in play.
func (a *Allocator) allowed(group string) ([]string, error) {
	names, err := a.Catalog.RequireGroup(group)
	if err != nil {
		return nil, err
	}
	out := names[:0]
	for _, name := range names {
		it, _ := a.Catalog.Lookup(name)
		if a.Options.Allows(it) {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, &catalog.LookupError{Kind: catalog.ErrEmptyGroup, Name: group}
	}
	return out, nil
}

func (a *Allocator) draft(all []string) ([]string, error) {
	n := a.Options.NumberOfStarterInvestigators
	if n < 1 || n > len(all) {
		return nil, &options.ConfigError{
			Option: "number_of_starter_investigators",
			Reason: fmt.Sprintf("%d starters requested but %d investigators are available", n, len(all)),
		}
	}
	pool := slices.Clone(all)
	starters := make([]string, 0, n)
	for range n {
		i := a.RNG.IntN(len(pool))
		starters = append(starters, pool[i])
		a.Logger.Log(log.NewDraftEvent(a.Player, pool[i]))
		pool = slices.Delete(pool, i, i+1)
	}
	return starters, nil
}

func (a *Allocator) drawDecks(starters []string) ([]string, map[string]int, error) {
	pool, err := a.allowed(catalog.GroupCards)
	if err != nil {
		return nil, nil, err
	}
	invs := make([]catalog.Item, len(starters))
	counts := make(map[string]int, len(starters))
	for i, name := range starters {
		it, err := a.Catalog.ItemByName(name)
		if err != nil {
			return nil, nil, err
		}
		invs[i] = it
		counts[name] = 0
	}

	maxLevel := a.Options.StarterCardsMaxLevel
	drawnBases := make(map[string]bool)
	var cards []string
	for !decksComplete(counts) {
		if len(pool) == 0 {
			return nil, nil, a.unsatisfiable(starters, counts)
		}
		i := a.RNG.IntN(len(pool))
		name := pool[i]
		pool = slices.Delete(pool, i, i+1)
		card, _ := a.Catalog.Lookup(name)

		if drawnBases[card.BaseName()] {
			a.Logger.Log(log.NewSkipDuplicateEvent(a.Player, name, card.BaseName()))
			continue
		}
		if lvl := card.Level(); lvl > maxLevel {
			a.Logger.Log(log.NewSkipLevelEvent(a.Player, name, lvl, maxLevel))
			continue
		}

		var takers []string
		for _, inv := range invs {
			if counts[inv.Name] >= rules.MinDeckSize {
				continue
			}
			if overlaps(card, inv) {
				takers = append(takers, inv.Name)
			}
		}
		if len(takers) == 0 {
			a.Logger.Log(log.NewSkipUnassignedEvent(a.Player, name))
			continue
		}

		cards = append(cards, name)
		drawnBases[card.BaseName()] = true
		a.Logger.Log(log.NewDrawCardEvent(a.Player, name, takers))
		for _, t := range takers {
			counts[t]++
			if counts[t] == rules.MinDeckSize {
				a.Logger.Log(log.NewDeckCompleteEvent(a.Player, t, counts[t]))
			}
		}
	}
	return cards, counts, nil
}

// overlaps reports whether a card's class, level or trait tags appear among
// the investigator's categories.
func overlaps(card, inv catalog.Item) bool {
	for _, t := range card.Tags() {
		switch t.Kind {
		case catalog.TagGeneric, catalog.TagSlot:
			continue
		}
		if inv.HasCategory(t.Label) {
			return true
		}
	}
	return false
}

func decksComplete(counts map[string]int) bool {
	for _, n := range counts {
		if n < rules.MinDeckSize {
			return false
		}
	}
	return true
}

func (a *Allocator) unsatisfiable(starters []string, counts map[string]int) error {
	var short []string
	for _, name := range starters {
		if n := counts[name]; n < rules.MinDeckSize {
			short = append(short, fmt.Sprintf("%s has %d/%d", name, n, rules.MinDeckSize))
		}
	}
	return &options.ConfigError{
		Option: "starter_cards_max_level",
		Reason: fmt.Sprintf("card pool exhausted at level %d (%s)", a.Options.StarterCardsMaxLevel, strings.Join(short, ", ")),
		Err:    ErrDeckUnsatisfiable,
	}
}

func (a *Allocator) grant(starters, all []string) ([]string, error) {
	var tokens []string
	for _, k := range catalog.Capabilities {
		p := a.Options.Policy(k)
		var n int
		switch p {
		case options.PolicyNone:
			continue
		case options.PolicyOneStarter, options.PolicyOneAny:
			n = 1
		case options.PolicyAllStarters:
			n = len(starters)
		case options.PolicyAllAny:
			n = len(all)
		case options.PolicyRandomStarters:
			n = a.RNG.IntN(len(starters))
		case options.PolicyRandomAny:
			n = a.RNG.IntN(len(all))
		default:
			continue
		}

		pool := all
		if p.FromStarters() {
			pool = starters
		}
		chosen := a.sample(pool, n)

		qty := a.Options.Quantity(k)
		for _, inv := range chosen {
			tok := catalog.Token(inv, k)
			if _, err := a.Catalog.ItemByName(tok); err != nil {
				return nil, err
			}
			for range qty {
				tokens = append(tokens, tok)
				a.Logger.Log(log.NewGrantEvent(a.Player, tok, p.String()))
			}
		}
	}
	return tokens, nil
}

// sample draws n distinct names without replacement, or all of them when n
// covers the whole pool.
func (a *Allocator) sample(pool []string, n int) []string {
	if n >= len(pool) {
		return slices.Clone(pool)
	}
	rest := slices.Clone(pool)
	out := make([]string, 0, n)
	for range n {
		i := a.RNG.IntN(len(rest))
		out = append(out, rest[i])
		rest = slices.Delete(rest, i, i+1)
	}
	return out
}

// Package rules answers reachability questions about a player's unlocked
// investigators, cards and capability tokens.
//
// Every predicate is a pure function of the catalog, the options and the
// ownership snapshot it is given. Unknown names evaluate to false.
package rules

import (
	"slices"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// MinDeckSize is the number of distinct cards a playable deck needs.
const MinDeckSize = 15

// Env is the read-only context shared by all predicates of one player.
type Env struct {
	Catalog *catalog.Catalog
	Options options.Options
}

// EligibleCards lists the owned cards the investigator may include in a deck,
// one entry per base card name, in catalog group order. A positive limit stops
// the walk once that many cards were found.
func EligibleCards(env Env, st state.Ownership, player int, investigator string, limit int) []string {
	var out []string
	eachEligible(env, st, player, investigator, limit, func(name, _ string) {
		out = append(out, name)
	})
	return out
}

// CanFieldDeck reports whether the investigator is owned and has at least
// MinDeckSize eligible cards.
func CanFieldDeck(env Env, st state.Ownership, player int, investigator string) bool {
	n := 0
	eachEligible(env, st, player, investigator, MinDeckSize, func(string, string) { n++ })
	return n >= MinDeckSize
}

// eligibleVariants maps every eligible base name to the eligible card names
// carrying it, without a limit.
func eligibleVariants(env Env, st state.Ownership, player int, investigator string) map[string][]string {
	out := make(map[string][]string)
	eachOwnedMember(env, st, player, investigator, func(it catalog.Item) bool {
		base := it.BaseName()
		if !slices.Contains(out[base], it.Name) {
			out[base] = append(out[base], it.Name)
		}
		return true
	})
	return out
}

func eachEligible(env Env, st state.Ownership, player int, investigator string, limit int, fn func(name, base string)) {
	seen := make(map[string]bool)
	eachOwnedMember(env, st, player, investigator, func(it catalog.Item) bool {
		base := it.BaseName()
		if seen[base] {
			return true
		}
		seen[base] = true
		fn(it.Name, base)
		return limit <= 0 || len(seen) < limit
	})
}

// eachOwnedMember walks the owned cards of the investigator's groups in
// catalog order until fn returns false. A card in several groups is visited
// once per group.
func eachOwnedMember(env Env, st state.Ownership, player int, investigator string, fn func(catalog.Item) bool) {
	if env.Catalog == nil || !st.Has(investigator, player) {
		return
	}
	inv, ok := env.Catalog.Lookup(investigator)
	if !ok || !inv.IsInvestigator() {
		return
	}
	for _, label := range inv.Categories {
		if label == catalog.GroupInvestigators {
			continue
		}
		for name := range env.Catalog.Members(label) {
			if !st.Has(name, player) {
				continue
			}
			it, _ := env.Catalog.Lookup(name)
			if it.IsInvestigator() {
				continue
			}
			if !fn(it) {
				return
			}
		}
	}
}

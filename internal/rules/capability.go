package rules

import (
	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// Match selects how a set of capability tokens must be held.
type Match int

const (
	MatchAll Match = iota
	MatchAny
)

// InvestigatorCan reports whether the investigator is owned, holds the
// capability tokens (all or any of them) and can field a deck. Holding the
// tokens without a playable deck does not count.
func InvestigatorCan(env Env, st state.Ownership, player int, investigator string, m Match, caps ...catalog.Capability) bool {
	if !st.Has(investigator, player) {
		return false
	}
	if !holdsTokens(st, player, investigator, m, caps) {
		return false
	}
	return CanFieldDeck(env, st, player, investigator)
}

// AnyInvestigatorCan reports whether some investigator satisfies
// InvestigatorCan. It stops at the first one found.
func AnyInvestigatorCan(env Env, st state.Ownership, player int, m Match, caps ...catalog.Capability) bool {
	if env.Catalog == nil {
		return false
	}
	for name := range env.Catalog.Members(catalog.GroupInvestigators) {
		if InvestigatorCan(env, st, player, name, m, caps...) {
			return true
		}
	}
	return false
}

func holdsTokens(st state.Ownership, player int, investigator string, m Match, caps []catalog.Capability) bool {
	if m == MatchAny {
		for _, k := range caps {
			if st.Has(catalog.Token(investigator, k), player) {
				return true
			}
		}
		return false
	}
	for _, k := range caps {
		if !st.Has(catalog.Token(investigator, k), player) {
			return false
		}
	}
	return true
}

// LitaChantler is the story ally checked by CanPlayLita.
const LitaChantler = "Lita Chantler"

// CanPlayLita reports whether Lita Chantler is owned and some playable
// investigator has an Ally Slot to hold her.
func CanPlayLita(env Env, st state.Ownership, player int) bool {
	if !st.Has(LitaChantler, player) {
		return false
	}
	return AnyInvestigatorCan(env, st, player, MatchAll, catalog.CapAllySlot)
}

// IsPrepared reports whether some playable investigator holds every action
// and every slot.
func IsPrepared(env Env, st state.Ownership, player int) bool {
	return AnyInvestigatorCan(env, st, player, MatchAll, catalog.Capabilities...)
}

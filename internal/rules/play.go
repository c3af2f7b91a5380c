package rules

import (
	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// Committing one of these cards needs a playable investigator that can attack.
var strengthOnlyCommits = set(
	"Beat Cop", "Machete", "Guard Dog", "Vicious Blow", "Shotgun", "Medical Texts", ".41 Derringer",
	"Sneak Attack", "Shrivelling", "Leather Coat", "Baseball Bat", "Knife", "Overpower",
)

// Committing one of these cards needs a playable investigator that can investigate.
var knowledgeOnlyCommits = set(
	"Evidence!", "Extra Ammunition", "Magnifying Glass", "Dr. Milan Christopher", "Working a Hunch",
	"Magnifying Glass - Level 1", "Deduction", "Burglary", "Leo De Luca", "Sneak Attack",
	"Leo De Luca - Level 1", "Forbidden Knowledge", "Scrying", "Scavenging", "Look What I Found!",
	"Flashlight", "Perception",
)

// Alternate spellings of card names seen in item data.
var spellings = map[string]string{
	"Shriveling": "Shrivelling",
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func canonical(name string) string {
	if c, ok := spellings[name]; ok {
		return c
	}
	return name
}

// CanPlay reports whether the investigator can play the card: the card is
// owned, the investigator can field a deck, and every requirement on the card
// is met.
//
//   - slot tags need that many of the investigator's slot tokens
//   - class tags need the class, or a level band shared by card and investigator
//   - level and trait tags never block on their own
func CanPlay(env Env, st state.Ownership, player int, card, investigator string) bool {
	if env.Catalog == nil || !st.Has(card, player) {
		return false
	}
	it, ok := env.Catalog.Lookup(card)
	if !ok {
		return false
	}
	inv, ok := env.Catalog.Lookup(investigator)
	if !ok || !inv.IsInvestigator() {
		return false
	}
	if !CanFieldDeck(env, st, player, investigator) {
		return false
	}
	return meetsRequirements(st, player, it, inv)
}

func meetsRequirements(st state.Ownership, player int, card, inv catalog.Item) bool {
	for _, t := range card.Tags() {
		switch t.Kind {
		case catalog.TagSlot:
			if !st.HasAtLeast(catalog.Token(inv.Name, t.Slot.Capability()), player, t.Count) {
				return false
			}
		case catalog.TagClass:
			if !inv.HasCategory(t.Label) && !sharesLevelBand(card, inv) {
				return false
			}
		}
	}
	return true
}

func sharesLevelBand(card, inv catalog.Item) bool {
	for _, t := range card.Tags() {
		if t.Kind == catalog.TagLevel && inv.HasCategory(t.Label) {
			return true
		}
	}
	return false
}

// AnyInvestigatorCanPlay reports whether some investigator can play the card.
func AnyInvestigatorCanPlay(env Env, st state.Ownership, player int, card string) bool {
	if env.Catalog == nil || !st.Has(card, player) {
		return false
	}
	for name := range env.Catalog.Members(catalog.GroupInvestigators) {
		if CanPlay(env, st, player, card, name) {
			return true
		}
	}
	return false
}

// CanCommit reports whether one of the candidates can commit the card. Cards
// on the strength or knowledge lists additionally need some playable
// investigator, not necessarily the committing one, able to attack or
// investigate.
func CanCommit(env Env, st state.Ownership, player int, card string, candidates []string) bool {
	if !st.Has(card, player) {
		return false
	}
	name := canonical(card)
	if strengthOnlyCommits[name] && !AnyInvestigatorCan(env, st, player, MatchAll, catalog.CapAttack) {
		return false
	}
	if knowledgeOnlyCommits[name] && !AnyInvestigatorCan(env, st, player, MatchAll, catalog.CapInvestigate) {
		return false
	}
	for _, inv := range candidates {
		if CanPlay(env, st, player, card, inv) {
			return true
		}
	}
	return false
}

// AnyInvestigatorCanCommit is CanCommit over every investigator.
func AnyInvestigatorCanCommit(env Env, st state.Ownership, player int, card string) bool {
	if env.Catalog == nil {
		return false
	}
	return CanCommit(env, st, player, card, env.Catalog.Investigators())
}

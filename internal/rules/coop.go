package rules

import (
	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// CoopDeckPoints is the combined deck size two investigators need, counted
// as 2 points per card copy pair.
const CoopDeckPoints = 60

// exclusiveCardValue is what a card only one of the pair can use is worth.
const exclusiveCardValue = 2

// CanCoBuild reports whether two distinct investigators can build their decks
// from the same collection at once.
//
// Each base name eligible for only one of them is worth exclusiveCardValue.
// A base eligible for both is worth exclusiveCardValue twice when each can
// take a different card name of it, and the shared-card value when the single
// card both could use is the same one. Owning more cards never lowers the
// total.
func CanCoBuild(env Env, st state.Ownership, player int, a, b string) bool {
	if a == b {
		return false
	}
	if !CanFieldDeck(env, st, player, a) || !CanFieldDeck(env, st, player, b) {
		return false
	}
	value := max(env.Options.SharedCardValue(), 0)
	if value >= exclusiveCardValue {
		return true
	}
	va := eligibleVariants(env, st, player, a)
	vb := eligibleVariants(env, st, player, b)
	points := 0
	for base, na := range va {
		nb, ok := vb[base]
		switch {
		case !ok:
			points += exclusiveCardValue
		case sameSingleCard(na, nb):
			points += value
		default:
			points += 2 * exclusiveCardValue
		}
	}
	for base := range vb {
		if _, ok := va[base]; !ok {
			points += exclusiveCardValue
		}
	}
	return points >= CoopDeckPoints
}

func sameSingleCard(a, b []string) bool {
	return len(a) == 1 && len(b) == 1 && a[0] == b[0]
}

// AnyPairWithActions reports whether two distinct investigators, one capable
// of setA and the other of setB, can co-build their decks.
func AnyPairWithActions(env Env, st state.Ownership, player int, setA, setB []catalog.Capability) bool {
	if env.Catalog == nil {
		return false
	}
	var left, right []string
	for name := range env.Catalog.Members(catalog.GroupInvestigators) {
		if !st.Has(name, player) || !CanFieldDeck(env, st, player, name) {
			continue
		}
		if holdsTokens(st, player, name, MatchAll, setA) {
			left = append(left, name)
		}
		if holdsTokens(st, player, name, MatchAll, setB) {
			right = append(right, name)
		}
	}
	tried := make(map[[2]string]bool)
	for _, a := range left {
		for _, b := range right {
			if a == b {
				continue
			}
			key := [2]string{min(a, b), max(a, b)}
			if tried[key] {
				continue
			}
			tried[key] = true
			if CanCoBuild(env, st, player, a, b) {
				return true
			}
		}
	}
	return false
}

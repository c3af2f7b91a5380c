package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

var (
	ErrUnknownRule = errors.New("unknown rule")
	ErrArity       = errors.New("wrong number of rule arguments")
)

// Func is the fixed signature every named rule is evaluated with. Arguments
// are the literal strings written in the requirement.
type Func func(env Env, st state.Ownership, player int, args []string) bool

// Rule is a named predicate hosts reference from requirement expressions.
type Rule struct {
	Name   string
	Params []string
	Doc    string
	Eval   Func

	// Check validates literal arguments once, before evaluation.
	Check func(args []string) error
}

// Registry maps rule names to rules. It is built once and read-only after.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns a registry holding every built-in rule.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule, len(builtinRules))}
	for _, rule := range builtinRules {
		r.rules[rule.Name] = rule
	}
	return r
}

// Register adds or replaces a rule.
func (r *Registry) Register(rule Rule) {
	r.rules[rule.Name] = rule
}

// Names returns every rule name, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.rules))
	for name := range r.rules {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Lookup resolves a rule by name.
func (r *Registry) Lookup(name string) (Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		if s := catalog.Suggest(name, r.Names()); s != "" {
			return Rule{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRule, name, s)
		}
		return Rule{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return rule, nil
}

// Validate checks that name resolves and args fit its parameters.
func (r *Registry) Validate(name string, args []string) (Rule, error) {
	rule, err := r.Lookup(name)
	if err != nil {
		return Rule{}, err
	}
	if len(args) != len(rule.Params) {
		return Rule{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, len(rule.Params), len(args))
	}
	if rule.Check != nil {
		if err := rule.Check(args); err != nil {
			return Rule{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	return rule, nil
}

// Call validates and evaluates a rule.
func (r *Registry) Call(name string, env Env, st state.Ownership, player int, args ...string) (bool, error) {
	rule, err := r.Validate(name, args)
	if err != nil {
		return false, err
	}
	return rule.Eval(env, st, player, args), nil
}

// ParseCapabilities parses a "+"-joined capability list such as
// "move+investigate".
func ParseCapabilities(s string) ([]catalog.Capability, error) {
	var out []catalog.Capability
	for _, part := range strings.Split(s, "+") {
		k, err := catalog.ParseCapability(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func checkCapabilities(args []string) error {
	for _, a := range args {
		if _, err := ParseCapabilities(a); err != nil {
			return err
		}
	}
	return nil
}

func anyCan(m Match, caps ...catalog.Capability) Func {
	return func(env Env, st state.Ownership, player int, _ []string) bool {
		return AnyInvestigatorCan(env, st, player, m, caps...)
	}
}

var builtinRules = []Rule{
	{
		Name:   "UnlockedInvestigatorCanPlay",
		Params: []string{"investigator"},
		Doc:    "The investigator is unlocked and has enough cards to build a deck.",
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			return CanFieldDeck(env, st, player, args[0])
		},
	},
	{Name: "AnyUnlockedInvestigatorCanMove", Doc: "A playable investigator can move.", Eval: anyCan(MatchAll, catalog.CapMove)},
	{Name: "AnyUnlockedInvestigatorCanInvestigate", Doc: "A playable investigator can investigate.", Eval: anyCan(MatchAll, catalog.CapInvestigate)},
	{Name: "AnyUnlockedInvestigatorCanAttack", Doc: "A playable investigator can attack.", Eval: anyCan(MatchAll, catalog.CapAttack)},
	{Name: "AnyUnlockedInvestigatorCanEvade", Doc: "A playable investigator can evade.", Eval: anyCan(MatchAll, catalog.CapEvade)},
	{Name: "AnyUnlockedInvestigatorCanParley", Doc: "A playable investigator can parley.", Eval: anyCan(MatchAll, catalog.CapParley)},
	{Name: "AnyUnlockedInvestigatorCanAttackOrEvade", Doc: "A playable investigator can attack or evade.", Eval: anyCan(MatchAny, catalog.CapAttack, catalog.CapEvade)},
	{Name: "AnyUnlockedInvestigatorCanAttackAndEvade", Doc: "A playable investigator can attack and evade.", Eval: anyCan(MatchAll, catalog.CapAttack, catalog.CapEvade)},
	{Name: "AnyUnlockedInvestigatorCanMoveAndInvestigate", Doc: "A playable investigator can move and investigate.", Eval: anyCan(MatchAll, catalog.CapMove, catalog.CapInvestigate)},
	{Name: "AnyUnlockedInvestigatorCanMoveAndAttack", Doc: "A playable investigator can move and attack.", Eval: anyCan(MatchAll, catalog.CapMove, catalog.CapAttack)},
	{Name: "AnyUnlockedInvestigatorCanMoveAndEvade", Doc: "A playable investigator can move and evade.", Eval: anyCan(MatchAll, catalog.CapMove, catalog.CapEvade)},
	{Name: "AnyUnlockedInvestigatorCanMoveAndParley", Doc: "A playable investigator can move and parley.", Eval: anyCan(MatchAll, catalog.CapMove, catalog.CapParley)},
	{Name: "AnyUnlockedInvestigatorCanInvestigateAndEvade", Doc: "A playable investigator can investigate and evade.", Eval: anyCan(MatchAll, catalog.CapInvestigate, catalog.CapEvade)},
	{
		Name: "AnyUnlockedInvestigatorIsPrepared",
		Doc:  "A playable investigator holds every action and every slot.",
		Eval: func(env Env, st state.Ownership, player int, _ []string) bool {
			return IsPrepared(env, st, player)
		},
	},
	{
		Name: "AnyUnlockedInvestigatorCanPlayLita",
		Doc:  "Lita Chantler is unlocked and a playable investigator has an ally slot.",
		Eval: func(env Env, st state.Ownership, player int, _ []string) bool {
			return CanPlayLita(env, st, player)
		},
	},
	{
		Name:   "AnyUnlockedInvestigatorCan",
		Params: []string{"capabilities"},
		Doc:    "A playable investigator holds every listed capability (e.g. move+investigate).",
		Check:  checkCapabilities,
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			caps, err := ParseCapabilities(args[0])
			if err != nil {
				return false
			}
			return AnyInvestigatorCan(env, st, player, MatchAll, caps...)
		},
	},
	{
		Name:   "EligibleUnlockedInvestigatorCanPlay",
		Params: []string{"card"},
		Doc:    "The card is unlocked and a playable investigator meets its requirements.",
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			return AnyInvestigatorCanPlay(env, st, player, args[0])
		},
	},
	{
		Name:   "EligibleUnlockedInvestigatorCanCommit",
		Params: []string{"card"},
		Doc:    "The card is unlocked and a playable investigator can commit it.",
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			return AnyInvestigatorCanCommit(env, st, player, args[0])
		},
	},
	{
		Name:   "UnlockedInvestigatorsCanCoBuild",
		Params: []string{"investigator", "investigator"},
		Doc:    "Both investigators can build their decks from the same collection.",
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			return CanCoBuild(env, st, player, args[0], args[1])
		},
	},
	{
		Name:   "AnyUnlockedInvestigatorPairCan",
		Params: []string{"capabilities", "capabilities"},
		Doc:    "Two co-building investigators cover the first and second capability lists.",
		Check:  checkCapabilities,
		Eval: func(env Env, st state.Ownership, player int, args []string) bool {
			a, err := ParseCapabilities(args[0])
			if err != nil {
				return false
			}
			b, err := ParseCapabilities(args[1])
			if err != nil {
				return false
			}
			return AnyPairWithActions(env, st, player, a, b)
		},
	},
	{
		Name:   "ProgressiveStoryUnlocked",
		Params: []string{"value"},
		Doc:    "Always true; story progression is gated by the story items themselves.",
		Eval: func(Env, state.Ownership, int, []string) bool {
			return true
		},
	},
}

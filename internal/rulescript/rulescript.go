// Package rulescript evaluates location requirement expressions written in
// Lua. Every registry rule is exposed as a global function returning a
// boolean, alongside has(name) and count(name).
//
//	AnyUnlockedInvestigatorCanInvestigate() and has("Roland Banks")
//	EligibleUnlockedInvestigatorCanCommit("Deduction") or count("Evidence!") >= 1
package rulescript

import (
	"fmt"

	"github.com/Shopify/go-lua"
	"github.com/peterkuimelis/arkhamrando/internal/rules"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// Evaluator owns one Lua interpreter. It is not safe for concurrent use.
type Evaluator struct {
	l        *lua.State
	registry *rules.Registry
	env      rules.Env
	compiled map[string]*Expr

	// bound for the duration of one Eval
	st     state.Ownership
	player int
}

// Expr is a compiled requirement expression.
type Expr struct {
	Source string
	global string
	ev     *Evaluator
}

// New creates an evaluator exposing every rule of registry.
func New(registry *rules.Registry, env rules.Env) *Evaluator {
	e := &Evaluator{
		l:        lua.NewState(),
		registry: registry,
		env:      env,
		compiled: make(map[string]*Expr),
	}
	lua.OpenLibraries(e.l)
	for _, name := range registry.Names() {
		e.l.Register(name, e.ruleFunc(name))
	}
	e.l.Register("has", e.has)
	e.l.Register("count", e.count)
	return e
}

func (e *Evaluator) ruleFunc(name string) lua.Function {
	return func(l *lua.State) int {
		args := make([]string, l.Top())
		for i := range args {
			args[i] = lua.CheckString(l, i+1)
		}
		if e.st == nil {
			lua.Errorf(l, "rule %s called outside of an evaluation", name)
			return 0
		}
		ok, err := e.registry.Call(name, e.env, e.st, e.player, args...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		l.PushBoolean(ok)
		return 1
	}
}

func (e *Evaluator) has(l *lua.State) int {
	name := lua.CheckString(l, 1)
	l.PushBoolean(e.st != nil && e.st.Has(name, e.player))
	return 1
}

func (e *Evaluator) count(l *lua.State) int {
	name := lua.CheckString(l, 1)
	n := 0
	if e.st != nil {
		n = e.st.Count(name, e.player)
	}
	l.PushInteger(n)
	return 1
}

// Compile parses an expression once. Compiling the same source twice returns
// the cached expression.
func (e *Evaluator) Compile(source string) (*Expr, error) {
	if x, ok := e.compiled[source]; ok {
		return x, nil
	}
	top := e.l.Top()
	if err := lua.LoadString(e.l, "return "+source); err != nil {
		e.l.SetTop(top)
		return nil, fmt.Errorf("compile requirement %q: %w", source, err)
	}
	x := &Expr{
		Source: source,
		global: fmt.Sprintf("__requirement_%d", len(e.compiled)),
		ev:     e,
	}
	e.l.SetGlobal(x.global)
	e.compiled[source] = x
	return x, nil
}

// Eval compiles (if needed) and evaluates an expression.
func (e *Evaluator) Eval(source string, st state.Ownership, player int) (bool, error) {
	x, err := e.Compile(source)
	if err != nil {
		return false, err
	}
	return x.Eval(st, player)
}

// Eval runs the expression against a player's ownership state. Lua truthiness
// applies: nil and false are false, everything else is true.
func (x *Expr) Eval(st state.Ownership, player int) (bool, error) {
	e := x.ev
	e.st, e.player = st, player
	defer func() { e.st = nil }()

	top := e.l.Top()
	e.l.Global(x.global)
	if err := e.l.ProtectedCall(0, 1, 0); err != nil {
		e.l.SetTop(top)
		return false, fmt.Errorf("evaluate requirement %q: %w", x.Source, err)
	}
	ok := e.l.ToBoolean(-1)
	e.l.Pop(1)
	return ok, nil
}

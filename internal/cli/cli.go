// Package cli implements the arkhamrando subcommands. Each command reads its
// configuration from the environment first and lets flags override it.
package cli

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/log"
	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/reach"
	"github.com/peterkuimelis/arkhamrando/internal/rules"
	"github.com/peterkuimelis/arkhamrando/internal/rulescript"
	"github.com/peterkuimelis/arkhamrando/internal/starter"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

// AllocateConfig holds allocate command configuration.
type AllocateConfig struct {
	Catalog  string `env:"ARKHAMRANDO_CATALOG"`
	Options  string `env:"ARKHAMRANDO_OPTIONS"`
	Seed     int64  `env:"ARKHAMRANDO_SEED"`
	Player   int    `env:"ARKHAMRANDO_PLAYER"`
	StateOut string `env:"ARKHAMRANDO_STATE_OUT"`
	Verbose  bool   `env:"ARKHAMRANDO_VERBOSE"`
}

// ParseAllocateConfig parses environment and flags into an AllocateConfig.
func ParseAllocateConfig(fs *flag.FlagSet, args []string) (AllocateConfig, error) {
	var cfg AllocateConfig
	if err := env.Parse(&cfg); err != nil {
		return AllocateConfig{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "path to catalog YAML (default: embedded Core Set)")
	fs.StringVar(&cfg.Options, "options", cfg.Options, "path to options YAML (default: built-in defaults)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.IntVar(&cfg.Player, "player", cfg.Player, "player index")
	fs.StringVar(&cfg.StateOut, "state-out", cfg.StateOut, "write the starting collection to this state file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log allocation steps to stderr")
	if err := fs.Parse(args); err != nil {
		return AllocateConfig{}, err
	}
	return cfg, nil
}

// RunAllocate draws a starting inventory and prints it.
func RunAllocate(cfg AllocateConfig, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	opts, err := loadOptions(cfg.Options)
	if err != nil {
		return err
	}
	if err := opts.Prepare(); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			return err
		}
	}

	var logger log.EventLogger = log.Discard
	if cfg.Verbose {
		fmt.Fprintf(errOut, "Using seed: %d\n", seed)
		fmt.Fprintf(errOut, "Catalog: %d items, %d cards\n", cat.Len(), len(cat.Cards()))
		logger = log.NewTextLogger(errOut)
	}

	a := &starter.Allocator{
		Catalog: cat,
		Options: opts,
		RNG:     starter.NewRand(seed),
		Player:  cfg.Player,
		Logger:  logger,
	}
	res, err := a.Run()
	if err != nil {
		return err
	}

	owned := state.New()
	pool := starter.NewPool(cat, opts, owned, cfg.Player)
	if err := starter.Commit(res, pool, logger, cfg.Player); err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintf(out, "Investigators: %s\n", strings.Join(res.Investigators, ", "))
	for _, inv := range res.Investigators {
		fmt.Fprintf(out, "  %s: %d starter cards\n", inv, res.DeckCounts[inv])
	}
	fmt.Fprintf(out, "Cards (%d):\n", len(res.Cards))
	for _, c := range res.Cards {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintf(out, "Capabilities (%d):\n", len(res.Tokens))
	for _, t := range res.Tokens {
		fmt.Fprintf(out, "  %s\n", t)
	}

	if cfg.StateOut != "" {
		if err := owned.Save(cfg.StateOut, cfg.Player); err != nil {
			return fmt.Errorf("write state: %w", err)
		}
	}
	return nil
}

// CheckConfig holds check command configuration.
type CheckConfig struct {
	Catalog   string `env:"ARKHAMRANDO_CATALOG"`
	Options   string `env:"ARKHAMRANDO_OPTIONS"`
	State     string `env:"ARKHAMRANDO_STATE"`
	Locations string `env:"ARKHAMRANDO_LOCATIONS"`
	All       bool   `env:"ARKHAMRANDO_CHECK_ALL"`
}

// ParseCheckConfig parses environment and flags into a CheckConfig.
func ParseCheckConfig(fs *flag.FlagSet, args []string) (CheckConfig, error) {
	var cfg CheckConfig
	if err := env.Parse(&cfg); err != nil {
		return CheckConfig{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "path to catalog YAML (default: embedded Core Set)")
	fs.StringVar(&cfg.Options, "options", cfg.Options, "path to options YAML (default: built-in defaults)")
	fs.StringVar(&cfg.State, "state", cfg.State, "path to state YAML")
	fs.StringVar(&cfg.Locations, "locations", cfg.Locations, "path to locations YAML (default: embedded Night of the Zealot)")
	fs.BoolVar(&cfg.All, "all", cfg.All, "also list unreachable locations")
	if err := fs.Parse(args); err != nil {
		return CheckConfig{}, err
	}
	return cfg, nil
}

// RunCheck reports which investigators can field a deck and which locations
// the collection in a state file reaches.
func RunCheck(cfg CheckConfig, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.State == "" {
		return errors.New("state path is required")
	}
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	opts, err := loadOptions(cfg.Options)
	if err != nil {
		return err
	}
	if err := opts.Prepare(); err != nil {
		return err
	}
	st, player, err := state.Load(cfg.State)
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}
	locs, err := loadLocations(cfg.Locations)
	if err != nil {
		return err
	}

	cards := cat.Cards()
	owned := 0
	for _, c := range cards {
		if st.Has(c, player) {
			owned++
		}
	}
	fmt.Fprintf(out, "Cards: %d/%d owned\n", owned, len(cards))

	renv := rules.Env{Catalog: cat, Options: opts}
	fmt.Fprintln(out, "Investigators:")
	for _, inv := range cat.Investigators() {
		if !st.Has(inv, player) {
			continue
		}
		n := len(rules.EligibleCards(renv, st, player, inv, 0))
		mark := "ready"
		if !rules.CanFieldDeck(renv, st, player, inv) {
			mark = "short"
		}
		fmt.Fprintf(out, "  %-20s %2d eligible  %s\n", inv, n, mark)
	}

	ev := rulescript.New(rules.NewRegistry(), renv)
	statuses, err := reach.Check(ev, reach.Filter(locs, opts.LocationLogic), st, player)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Locations:")
	for _, s := range statuses {
		switch {
		case s.Reachable:
			fmt.Fprintf(out, "  + %s (%s)\n", s.Name, s.Region)
		case cfg.All:
			fmt.Fprintf(out, "  - %s (%s)\n", s.Name, s.Region)
		}
	}
	fmt.Fprintf(out, "Reachable: %d/%d\n", len(reach.Reachable(statuses)), len(statuses))
	return nil
}

// RunRules lists every rule a requirement expression can call.
func RunRules(out io.Writer) {
	reg := rules.NewRegistry()
	for _, name := range reg.Names() {
		rule, _ := reg.Lookup(name)
		fmt.Fprintf(out, "%s(%s)\n    %s\n", name, strings.Join(rule.Params, ", "), rule.Doc)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func loadOptions(path string) (options.Options, error) {
	if path == "" {
		return options.Default(), nil
	}
	return options.Load(path)
}

func loadLocations(path string) ([]reach.Location, error) {
	if path == "" {
		return reach.Default()
	}
	return reach.Load(path)
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

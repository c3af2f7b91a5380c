package cli

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

func TestParseAllocateConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("allocate", flag.ContinueOnError)
	cfg, err := ParseAllocateConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 0 || cfg.Verbose || cfg.Catalog != "" {
		t.Fatalf("Expected zero defaults, got %+v", cfg)
	}
}

func TestParseAllocateConfigEnvAndFlags(t *testing.T) {
	t.Setenv("ARKHAMRANDO_SEED", "77")
	t.Setenv("ARKHAMRANDO_VERBOSE", "true")

	fs := flag.NewFlagSet("allocate", flag.ContinueOnError)
	cfg, err := ParseAllocateConfig(fs, []string{"-player", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 77 || !cfg.Verbose || cfg.Player != 2 {
		t.Fatalf("Expected env seed and flag player, got %+v", cfg)
	}

	fs = flag.NewFlagSet("allocate", flag.ContinueOnError)
	cfg, err = ParseAllocateConfig(fs, []string{"-seed", "5"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 5 {
		t.Fatalf("Expected flag to override env, got %d", cfg.Seed)
	}
}

func TestAllocateThenCheck(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.yaml")
	optsPath := filepath.Join(dir, "options.yaml")
	if err := os.WriteFile(optsPath, []byte("number_of_starter_investigators: 2\nstarter_slot_hand: all_starter\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	err := RunAllocate(AllocateConfig{Options: optsPath, Seed: 99, StateOut: statePath, Verbose: true}, &out, &errOut)
	if err != nil {
		t.Fatalf("RunAllocate: %v", err)
	}
	if !strings.Contains(out.String(), "Seed: 99") {
		t.Errorf("Expected seed in output, got %q", out.String())
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if want := fmt.Sprintf("Catalog: %d items, %d cards", cat.Len(), len(cat.Cards())); !strings.Contains(errOut.String(), want) {
		t.Errorf("Expected catalog size in verbose output, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "Starter Deck") {
		t.Errorf("Expected verbose allocation log, got %q", errOut.String())
	}

	st, player, err := state.Load(statePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if player != 0 || len(st.Owned(0)) == 0 {
		t.Fatalf("Expected a saved collection for player 0, got %v", st.Owned(0))
	}

	out.Reset()
	if err := RunCheck(CheckConfig{Options: optsPath, State: statePath, All: true}, &out); err != nil {
		t.Fatalf("RunCheck: %v", err)
	}
	if got := strings.Count(out.String(), " ready"); got != 2 {
		t.Errorf("Expected both starters ready, got %d in %q", got, out.String())
	}
	if !strings.Contains(out.String(), "+ Study") {
		t.Errorf("Expected the Study to be reachable, got %q", out.String())
	}
	if want := fmt.Sprintf("/%d owned", len(cat.Cards())); !strings.Contains(out.String(), want) {
		t.Errorf("Expected owned card count, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Reachable: ") || strings.Contains(out.String(), "Reachable: 0/") {
		t.Errorf("Expected a non-empty reachable summary, got %q", out.String())
	}
}

func TestRunAllocateRejectsBadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("core_set_expansion: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := RunAllocate(AllocateConfig{Options: path, Seed: 1}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "core_set_expansion") {
		t.Errorf("Expected a core_set_expansion error, got %v", err)
	}
}

func TestRunCheckNeedsState(t *testing.T) {
	if err := RunCheck(CheckConfig{}, nil); err == nil {
		t.Error("Expected an error without a state file")
	}
}

func TestRunRules(t *testing.T) {
	var out bytes.Buffer
	RunRules(&out)
	for _, want := range []string{"AnyUnlockedInvestigatorCanMove()", "UnlockedInvestigatorsCanCoBuild(investigator, investigator)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in rule listing", want)
		}
	}
}

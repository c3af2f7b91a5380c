// Package reach loads scenario locations and reports which of them a
// player's current collection can reach.
package reach

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/rulescript"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Location is one place gated by a requirement expression.
type Location struct {
	Name     string `yaml:"name"`
	Region   string `yaml:"region"`
	Requires string `yaml:"requires"`

	// Hard locations exist only under hard location logic.
	Hard bool `yaml:"hard"`
}

// File is the top-level YAML structure of a locations file.
type File struct {
	Locations []Location `yaml:"locations"`
}

// Parse reads locations from YAML bytes.
func Parse(data []byte) ([]Location, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse locations YAML: %w", err)
	}
	seen := make(map[string]bool, len(f.Locations))
	for i, loc := range f.Locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("location %d has no name", i)
		}
		if seen[loc.Name] {
			return nil, fmt.Errorf("duplicate location %q", loc.Name)
		}
		seen[loc.Name] = true
	}
	return f.Locations, nil
}

// Load reads a locations file.
func Load(path string) ([]Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	locs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return locs, nil
}

// Default returns the embedded Night of the Zealot locations.
func Default() ([]Location, error) {
	data, err := dataFS.ReadFile("data/core.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded locations: %w", err)
	}
	return Parse(data)
}

// Filter drops hard locations unless hard location logic is selected.
func Filter(locs []Location, logic int) []Location {
	if logic == options.LocationLogicHard {
		return locs
	}
	out := make([]Location, 0, len(locs))
	for _, loc := range locs {
		if !loc.Hard {
			out = append(out, loc)
		}
	}
	return out
}

// Status is the outcome of checking one location.
type Status struct {
	Location
	Reachable bool
}

// Compile parses every requirement up front so syntax errors surface before
// any evaluation.
func Compile(ev *rulescript.Evaluator, locs []Location) error {
	for _, loc := range locs {
		if loc.Requires == "" {
			continue
		}
		if _, err := ev.Compile(loc.Requires); err != nil {
			return fmt.Errorf("location %s: %w", loc.Name, err)
		}
	}
	return nil
}

// Check evaluates every location against the player's collection.
func Check(ev *rulescript.Evaluator, locs []Location, st state.Ownership, player int) ([]Status, error) {
	if err := Compile(ev, locs); err != nil {
		return nil, err
	}
	out := make([]Status, 0, len(locs))
	for _, loc := range locs {
		ok := true
		if loc.Requires != "" {
			var err error
			ok, err = ev.Eval(loc.Requires, st, player)
			if err != nil {
				return nil, fmt.Errorf("location %s: %w", loc.Name, err)
			}
		}
		out = append(out, Status{Location: loc, Reachable: ok})
	}
	return out, nil
}

// Reachable returns the names of reachable locations.
func Reachable(statuses []Status) []string {
	var out []string
	for _, s := range statuses {
		if s.Reachable {
			out = append(out, s.Name)
		}
	}
	return out
}

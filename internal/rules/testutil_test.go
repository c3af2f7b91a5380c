package rules

import (
	"fmt"
	"testing"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/options"
	"github.com/peterkuimelis/arkhamrando/internal/state"
)

const p0 = 0

// investigator builds an investigator item with the given categories.
func investigator(name string, categories ...string) catalog.Item {
	return catalog.Item{Name: name, Categories: append([]string{catalog.GroupInvestigators}, categories...)}
}

// card builds a player card item.
func card(name string, categories ...string) catalog.Item {
	return catalog.Item{Name: name, Categories: append([]string{catalog.GroupCards}, categories...)}
}

// classCards builds n level 0 cards of a class named "<Class> Card NN".
func classCards(class string, n int) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range n {
		out[i] = card(fmt.Sprintf("%s Card %02d", class, i+1), "Asset", class, catalog.LevelLabel(class, 0))
	}
	return out
}

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func buildCatalog(t *testing.T, items ...[]catalog.Item) *catalog.Catalog {
	t.Helper()
	var all []catalog.Item
	for _, group := range items {
		all = append(all, group...)
	}
	c, err := catalog.New(all)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

// newEnv returns an Env over cat with prepared default options.
func newEnv(t *testing.T, cat *catalog.Catalog) Env {
	t.Helper()
	o := options.Default()
	if err := o.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return Env{Catalog: cat, Options: o}
}

func own(st *state.Collection, items ...string) {
	for _, it := range items {
		st.Collect(p0, it)
	}
}

// abCatalog is the two-investigator catalog used across tests:
// Alice (Guardian, Neutral), Bob (Seeker, Neutral), 20 Guardian, 20 Seeker
// and 10 Neutral cards.
func abCatalog(t *testing.T, extra ...catalog.Item) *catalog.Catalog {
	t.Helper()
	return buildCatalog(t,
		[]catalog.Item{
			investigator("Alice", "Guardian", "Neutral"),
			investigator("Bob", "Seeker", "Neutral"),
		},
		classCards("Guardian", 20),
		classCards("Seeker", 20),
		classCards("Neutral", 10),
		extra,
	)
}

package starter

import (
	"fmt"
	"testing"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"github.com/peterkuimelis/arkhamrando/internal/options"
)

// firstRNG always picks index 0, so draws follow catalog order.
type firstRNG struct{}

func (firstRNG) IntN(int) int { return 0 }

// lastRNG always picks the final index.
type lastRNG struct{}

func (lastRNG) IntN(n int) int { return n - 1 }

func classCards(class string, n int) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range n {
		out[i] = catalog.Item{
			Name:       fmt.Sprintf("%s Card %02d", class, i+1),
			Categories: []string{catalog.GroupCards, "Asset", class, catalog.LevelLabel(class, 0)},
		}
	}
	return out
}

// testCatalog: Alice (Guardian), Bob (Seeker) and Cara (Mystic) with 20, 20
// and 10 level 0 cards. extra items are placed before the class cards.
func testCatalog(t *testing.T, extra ...catalog.Item) *catalog.Catalog {
	t.Helper()
	items := []catalog.Item{
		{Name: "Alice", Categories: []string{catalog.GroupInvestigators, "Guardian"}},
		{Name: "Bob", Categories: []string{catalog.GroupInvestigators, "Seeker"}},
		{Name: "Cara", Categories: []string{catalog.GroupInvestigators, "Mystic"}},
	}
	items = append(items, extra...)
	items = append(items, classCards("Guardian", 20)...)
	items = append(items, classCards("Seeker", 20)...)
	items = append(items, classCards("Mystic", 10)...)
	c, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func testOptions(t *testing.T, mutate func(*options.Options)) options.Options {
	t.Helper()
	o := options.Default()
	if mutate != nil {
		mutate(&o)
	}
	if err := o.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return o
}

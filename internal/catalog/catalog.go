package catalog

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
)

// Item is a single entry of the item catalog: an investigator, a player card,
// a capability token or any other ownable item.
type Item struct {
	Name       string   `yaml:"name"`
	Categories []string `yaml:"category"`
	Count      int      `yaml:"count,omitempty"`
	Expansion  string   `yaml:"expansion,omitempty"`

	tags     []Tag
	baseName string
}

func (it Item) String() string {
	return it.Name
}

// Tags returns the parsed category tags.
func (it Item) Tags() []Tag {
	return it.tags
}

// BaseName returns the name without its " - Level N" suffix.
func (it Item) BaseName() string {
	return it.baseName
}

// HasCategory reports whether label is one of the item's categories.
func (it Item) HasCategory(label string) bool {
	return slices.Contains(it.Categories, label)
}

// IsInvestigator reports whether the item carries the Investigators marker.
func (it Item) IsInvestigator() bool {
	return it.HasCategory(GroupInvestigators)
}

// Level returns the highest level band on the item, or -1 if it has none.
func (it Item) Level() int {
	lvl := -1
	for _, t := range it.tags {
		if t.Kind == TagLevel && t.Level > lvl {
			lvl = t.Level
		}
	}
	return lvl
}

var levelSuffixRe = regexp.MustCompile(`\s*-\s*Level\s+\d+$`)

// BaseName strips a " - Level N" suffix from a card name.
func BaseName(name string) string {
	return levelSuffixRe.ReplaceAllString(name, "")
}

// Catalog is the read-only item table with its named groups.
type Catalog struct {
	items  []Item
	byName map[string]int
	groups map[string][]string
}

// New builds a catalog from items. Capability tokens are generated for every
// investigator that does not already list them.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]int, len(items)),
		groups: make(map[string][]string),
	}
	for _, it := range items {
		if err := c.add(it); err != nil {
			return nil, err
		}
	}
	for _, name := range slices.Clone(c.groups[GroupInvestigators]) {
		for _, k := range Capabilities {
			tok := Token(name, k)
			if _, ok := c.byName[tok]; ok {
				continue
			}
			kind := GroupActions
			count := 1
			if k.IsSlot() {
				kind = GroupSlots
				if k == CapHandSlot || k == CapArcaneSlot {
					count = 2
				}
			}
			if err := c.add(Item{Name: tok, Categories: []string{GroupCapabilities, kind}, Count: count}); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Catalog) add(it Item) error {
	if it.Name == "" {
		return fmt.Errorf("catalog item %d has no name", len(c.items))
	}
	if _, dup := c.byName[it.Name]; dup {
		return fmt.Errorf("duplicate catalog item %q", it.Name)
	}
	if it.IsInvestigator() && it.HasCategory(GroupCards) {
		return fmt.Errorf("catalog item %q is both an investigator and a card", it.Name)
	}
	if it.Count <= 0 {
		it.Count = 1
	}
	it.Categories = slices.Clone(it.Categories)
	it.tags = make([]Tag, len(it.Categories))
	for i, label := range it.Categories {
		it.tags[i] = ParseTag(label)
	}
	it.baseName = BaseName(it.Name)

	c.byName[it.Name] = len(c.items)
	c.items = append(c.items, it)
	for _, label := range it.Categories {
		if !slices.Contains(c.groups[label], it.Name) {
			c.groups[label] = append(c.groups[label], it.Name)
		}
	}
	return nil
}

// Len returns the number of items, generated tokens included.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items iterates over every item in catalog order.
func (c *Catalog) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range c.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Lookup returns the item with the given name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// ItemByName is Lookup with a descriptive error for unknown names.
func (c *Catalog) ItemByName(name string) (Item, error) {
	it, ok := c.Lookup(name)
	if !ok {
		return Item{}, &LookupError{Kind: ErrUnknownItem, Name: name, Suggestion: Suggest(name, c.names())}
	}
	return it, nil
}

// Group returns a copy of the members of a named group.
func (c *Catalog) Group(label string) []string {
	return slices.Clone(c.groups[label])
}

// RequireGroup is Group for callers that cannot work with an empty group.
func (c *Catalog) RequireGroup(label string) ([]string, error) {
	g := c.groups[label]
	if len(g) == 0 {
		return nil, &LookupError{Kind: ErrEmptyGroup, Name: label, Suggestion: Suggest(label, c.groupLabels())}
	}
	return slices.Clone(g), nil
}

// Members iterates over a named group without copying it.
func (c *Catalog) Members(label string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range c.groups[label] {
			if !yield(name) {
				return
			}
		}
	}
}

// Investigators returns the names in the Investigators group.
func (c *Catalog) Investigators() []string {
	return c.Group(GroupInvestigators)
}

// Cards returns the names in the Card group.
func (c *Catalog) Cards() []string {
	return c.Group(GroupCards)
}

// IsInvestigator reports whether name is a known investigator.
func (c *Catalog) IsInvestigator(name string) bool {
	it, ok := c.Lookup(name)
	return ok && it.IsInvestigator()
}

func (c *Catalog) names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}

func (c *Catalog) groupLabels() []string {
	out := make([]string, 0, len(c.groups))
	for label := range c.groups {
		out = append(out, label)
	}
	slices.Sort(out)
	return out
}

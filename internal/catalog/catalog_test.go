package catalog

import (
	"errors"
	"testing"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		label string
		kind  TagKind
		slot  Slot
		count int
		class string
		level int
	}{
		{label: "Card", kind: TagGeneric},
		{label: "Asset", kind: TagGeneric},
		{label: "Investigators", kind: TagGroup},
		{label: "Hand Slot", kind: TagSlot, slot: SlotHand, count: 1},
		{label: "2 Hand Slots", kind: TagSlot, slot: SlotHand, count: 2},
		{label: "2 Arcane Slots", kind: TagSlot, slot: SlotArcane, count: 2},
		{label: "Seeker", kind: TagClass, class: "Seeker"},
		{label: "Seeker Level 2", kind: TagLevel, class: "Seeker", level: 2},
		{label: "Neutral Level 0", kind: TagLevel, class: "Neutral", level: 0},
		{label: "Sorcerer Level 2", kind: TagTrait},
		{label: "0 Hand Slots", kind: TagTrait},
		{label: "Tome", kind: TagTrait},
	}
	for _, tt := range tests {
		got := ParseTag(tt.label)
		if got.Kind != tt.kind {
			t.Errorf("%q: expected kind %s, got %s", tt.label, tt.kind, got.Kind)
			continue
		}
		if got.Slot != tt.slot || got.Count != tt.count {
			t.Errorf("%q: expected slot %v x%d, got %v x%d", tt.label, tt.slot, tt.count, got.Slot, got.Count)
		}
		if got.Class != tt.class || got.Level != tt.level {
			t.Errorf("%q: expected %s/%d, got %s/%d", tt.label, tt.class, tt.level, got.Class, got.Level)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"Magnifying Glass":           "Magnifying Glass",
		"Magnifying Glass - Level 1": "Magnifying Glass",
		"Leo De Luca -Level 1":       "Leo De Luca",
		"Lucky! - Level 2":           "Lucky!",
		"Hyper-Awareness":            "Hyper-Awareness",
		"Level 3":                    "Level 3",
	}
	for in, want := range tests {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestNewGeneratesTokens(t *testing.T) {
	c, err := New([]Item{
		{Name: "Roland Banks", Categories: []string{"Investigators", "Guardian"}},
		{Name: "Machete", Categories: []string{"Card", "Asset", "Hand Slot", "Guardian", "Guardian Level 0"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := c.Len(), 2+len(Capabilities); got != want {
		t.Fatalf("Expected %d items, got %d", want, got)
	}

	hand, ok := c.Lookup("Roland Banks Hand Slot")
	if !ok {
		t.Fatal("Expected generated hand slot token")
	}
	if hand.Count != 2 {
		t.Errorf("Expected 2 hand slot copies, got %d", hand.Count)
	}
	if !hand.HasCategory(GroupSlots) || !hand.HasCategory(GroupCapabilities) {
		t.Errorf("Expected hand token in Slots and Capabilities, got %v", hand.Categories)
	}

	move, ok := c.Lookup("Roland Banks can move")
	if !ok {
		t.Fatal("Expected generated move token")
	}
	if move.Count != 1 || !move.HasCategory(GroupActions) {
		t.Errorf("Expected one Actions move token, got %d %v", move.Count, move.Categories)
	}

	if got := c.Group(GroupActions); len(got) != 5 {
		t.Errorf("Expected 5 action tokens, got %v", got)
	}
	if !c.IsInvestigator("Roland Banks") || c.IsInvestigator("Machete") {
		t.Error("Expected only Roland Banks to be an investigator")
	}
}

func TestNewKeepsExplicitTokens(t *testing.T) {
	c, err := New([]Item{
		{Name: "Roland Banks", Categories: []string{"Investigators", "Guardian"}},
		{Name: "Roland Banks Hand Slot", Categories: []string{"Capabilities", "Slots"}, Count: 3},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hand, _ := c.Lookup("Roland Banks Hand Slot")
	if hand.Count != 3 {
		t.Errorf("Expected explicit count 3 to survive, got %d", hand.Count)
	}
}

func TestNewRejectsBadItems(t *testing.T) {
	tests := map[string][]Item{
		"empty name": {{Name: ""}},
		"duplicate":  {{Name: "Knife"}, {Name: "Knife"}},
		"both":       {{Name: "Odd", Categories: []string{"Investigators", "Card"}}},
	}
	for name, items := range tests {
		if _, err := New(items); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestItemLevel(t *testing.T) {
	c, err := New([]Item{
		{Name: "Lucky!", Categories: []string{"Card", "Survivor", "Survivor Level 0"}},
		{Name: "Lucky! - Level 2", Categories: []string{"Card", "Survivor", "Survivor Level 2"}},
		{Name: "Lita Chantler", Categories: []string{"Story", "Ally Slot"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for name, want := range map[string]int{"Lucky!": 0, "Lucky! - Level 2": 2, "Lita Chantler": -1} {
		it, _ := c.Lookup(name)
		if got := it.Level(); got != want {
			t.Errorf("%s: expected level %d, got %d", name, want, got)
		}
	}
	lvl2, _ := c.Lookup("Lucky! - Level 2")
	if lvl2.BaseName() != "Lucky!" {
		t.Errorf("Expected base name Lucky!, got %q", lvl2.BaseName())
	}
}

func TestLookupErrors(t *testing.T) {
	c, err := New([]Item{
		{Name: "Daisy Walker", Categories: []string{"Investigators", "Seeker"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.ItemByName("Daisy Walkr")
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LookupError, got %v", err)
	}
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Expected ErrUnknownItem, got %v", le.Kind)
	}
	if le.Suggestion != "Daisy Walker" {
		t.Errorf("Expected suggestion Daisy Walker, got %q", le.Suggestion)
	}

	_, err = c.RequireGroup("Card")
	if !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	names := []string{"Shrivelling", "Deduction", "Flashlight"}
	if got := Suggest("Shriveling", names); got != "Shrivelling" {
		t.Errorf("Expected Shrivelling, got %q", got)
	}
	if got := Suggest("Machete", names); got != "" {
		t.Errorf("Expected no suggestion, got %q", got)
	}
}

func TestParseCapability(t *testing.T) {
	for _, k := range Capabilities {
		got, err := ParseCapability(k.String())
		if err != nil || got != k {
			t.Errorf("ParseCapability(%q): expected %v, got %v (%v)", k.String(), k, got, err)
		}
	}
	if _, err := ParseCapability("fly"); err == nil {
		t.Error("Expected error for unknown capability")
	}
	if got := Token("Agnes Baker", CapArcaneSlot); got != "Agnes Baker Arcane Slot" {
		t.Errorf("Expected Agnes Baker Arcane Slot, got %q", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	invs := c.Investigators()
	if len(invs) != 5 {
		t.Fatalf("Expected 5 Core Set investigators, got %v", invs)
	}
	for _, inv := range invs {
		for _, k := range Capabilities {
			if _, err := c.ItemByName(Token(inv, k)); err != nil {
				t.Errorf("Missing token: %v", err)
			}
		}
	}
	if len(c.Cards()) < 60 {
		t.Errorf("Expected a full card pool, got %d cards", len(c.Cards()))
	}
	for it := range c.Items() {
		if it.HasCategory(GroupCards) && it.Expansion == "" {
			t.Errorf("%s has no expansion", it.Name)
		}
	}
}

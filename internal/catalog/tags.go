package catalog

import (
	"fmt"
	"regexp"
	"strconv"
)

// --- Enums ---

// TagKind classifies a category label by the structural requirement it encodes.
type TagKind int

const (
	TagGeneric TagKind = iota // Card, Asset, Event, Skill
	TagGroup                  // group markers such as Investigators
	TagSlot                   // "Hand Slot", "2 Arcane Slots"
	TagClass                  // Guardian, Seeker, ...
	TagLevel                  // "Seeker Level 2"
	TagTrait                  // anything else; matched literally
)

func (k TagKind) String() string {
	switch k {
	case TagGeneric:
		return "Generic"
	case TagGroup:
		return "Group"
	case TagSlot:
		return "Slot"
	case TagClass:
		return "Class"
	case TagLevel:
		return "Level"
	case TagTrait:
		return "Trait"
	default:
		return "Unknown"
	}
}

type Slot int

const (
	SlotNone Slot = iota
	SlotHand
	SlotBody
	SlotAlly
	SlotArcane
	SlotAccessory
)

func (s Slot) String() string {
	switch s {
	case SlotHand:
		return "Hand Slot"
	case SlotBody:
		return "Body Slot"
	case SlotAlly:
		return "Ally Slot"
	case SlotArcane:
		return "Arcane Slot"
	case SlotAccessory:
		return "Accessory Slot"
	default:
		return ""
	}
}

// Capability returns the capability token kind granting this slot.
func (s Slot) Capability() Capability {
	switch s {
	case SlotHand:
		return CapHandSlot
	case SlotBody:
		return CapBodySlot
	case SlotAlly:
		return CapAllySlot
	case SlotArcane:
		return CapArcaneSlot
	case SlotAccessory:
		return CapAccessorySlot
	default:
		return CapNone
	}
}

// Group markers and generic labels.
const (
	GroupInvestigators = "Investigators"
	GroupCards         = "Card"
	GroupCapabilities  = "Capabilities"
	GroupActions       = "Actions"
	GroupSlots         = "Slots"
)

// Classes lists the player card classes in the order the game presents them.
var Classes = []string{"Guardian", "Rogue", "Seeker", "Survivor", "Mystic", "Neutral"}

// MaxLevel is the highest experience level a player card can have.
const MaxLevel = 5

var genericLabels = map[string]bool{
	GroupCards: true,
	"Asset":    true,
	"Event":    true,
	"Skill":    true,
}

var groupLabels = map[string]bool{
	GroupInvestigators: true,
	GroupCapabilities:  true,
	GroupActions:       true,
	GroupSlots:         true,
}

var classLabels = func() map[string]bool {
	m := make(map[string]bool, len(Classes))
	for _, c := range Classes {
		m[c] = true
	}
	return m
}()

var slotLabels = map[string]Slot{
	"Hand Slot":      SlotHand,
	"Body Slot":      SlotBody,
	"Ally Slot":      SlotAlly,
	"Arcane Slot":    SlotArcane,
	"Accessory Slot": SlotAccessory,
}

var (
	multiSlotRe = regexp.MustCompile(`^(\d+) (Hand|Body|Ally|Arcane|Accessory) Slots$`)
	levelRe     = regexp.MustCompile(`^(.+) Level (\d+)$`)
)

// --- Tag ---

// Tag is a category label parsed into its structural requirement.
type Tag struct {
	Label string
	Kind  TagKind
	Slot  Slot   // TagSlot
	Count int    // TagSlot: number of slots required
	Class string // TagClass, TagLevel
	Level int    // TagLevel
}

func (t Tag) String() string {
	return t.Label
}

// ParseTag classifies a raw category label.
func ParseTag(label string) Tag {
	t := Tag{Label: label}
	switch {
	case genericLabels[label]:
		t.Kind = TagGeneric
	case groupLabels[label]:
		t.Kind = TagGroup
	case classLabels[label]:
		t.Kind = TagClass
		t.Class = label
	default:
		if s, ok := slotLabels[label]; ok {
			t.Kind, t.Slot, t.Count = TagSlot, s, 1
			return t
		}
		if m := multiSlotRe.FindStringSubmatch(label); m != nil {
			// "0 Hand Slots" asks for nothing and is kept as a plain trait.
			if n, _ := strconv.Atoi(m[1]); n >= 1 {
				t.Kind, t.Slot, t.Count = TagSlot, slotLabels[m[2]+" Slot"], n
				return t
			}
		}
		if m := levelRe.FindStringSubmatch(label); m != nil && classLabels[m[1]] {
			n, _ := strconv.Atoi(m[2])
			t.Kind, t.Class, t.Level = TagLevel, m[1], n
			return t
		}
		t.Kind = TagTrait
	}
	return t
}

// LevelLabel formats the level band label for a class.
func LevelLabel(class string, level int) string {
	return fmt.Sprintf("%s Level %d", class, level)
}

// Package options holds the per-player generation options and the checks
// that must pass before any starter allocation happens.
package options

import (
	"fmt"
	"os"

	"github.com/peterkuimelis/arkhamrando/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Campaign choices.
const (
	CampaignCoreSet       = 0
	CampaignDunwichLegacy = 1
)

// Location logic choices.
const (
	LocationLogicStandard = 0
	LocationLogicHard     = 1
)

// Expansion names used by catalog items.
const (
	ExpansionCoreSet        = "Core Set"
	ExpansionRevisedCoreSet = "Revised Core Set"
	ExpansionDunwichLegacy  = "Dunwich Legacy"
)

// Options are the option values of one player.
type Options struct {
	CoreSetExpansion        int `yaml:"core_set_expansion"`
	RevisedCoreSetExpansion int `yaml:"revised_core_set_expansion"`

	DunwichLegacyExpansion     int `yaml:"dunwich_legacy_expansion"`
	DunwichLegacyInvestigators int `yaml:"dunwich_legacy_investigators"`
	DunwichLegacyCards         int `yaml:"dunwich_legacy_cards"`

	CampaignChoice               int `yaml:"campaign_choice"`
	PlayingCampaignCoreSet       int `yaml:"-"`
	PlayingCampaignDunwichLegacy int `yaml:"-"`

	LocationLogic int `yaml:"location_logic"`

	NumberOfStarterInvestigators int `yaml:"number_of_starter_investigators"`
	StarterCardsMaxLevel         int `yaml:"starter_cards_max_level"`

	StarterActionMove        StarterPolicy `yaml:"starter_action_move"`
	StarterActionInvestigate StarterPolicy `yaml:"starter_action_investigate"`
	StarterActionAttack      StarterPolicy `yaml:"starter_action_attack"`
	StarterActionEvade       StarterPolicy `yaml:"starter_action_evade"`
	StarterActionParley      StarterPolicy `yaml:"starter_action_parley"`
	StarterSlotHand          StarterPolicy `yaml:"starter_slot_hand"`
	StarterSlotBody          StarterPolicy `yaml:"starter_slot_body"`
	StarterSlotAlly          StarterPolicy `yaml:"starter_slot_ally"`
	StarterSlotArcane        StarterPolicy `yaml:"starter_slot_arcane"`
	StarterSlotAccessory     StarterPolicy `yaml:"starter_slot_accessory"`

	NumberOfStarterSlotHand   int `yaml:"number_of_starter_slot_hand"`
	NumberOfStarterSlotArcane int `yaml:"number_of_starter_slot_arcane"`
}

// Default returns the option defaults.
func Default() Options {
	return Options{
		CoreSetExpansion:             2,
		DunwichLegacyInvestigators:   1,
		DunwichLegacyCards:           1,
		NumberOfStarterInvestigators: 1,
		StarterActionMove:            PolicyOneStarter,
		StarterActionInvestigate:     PolicyOneStarter,
		StarterActionAttack:          PolicyOneStarter,
		StarterActionEvade:           PolicyOneStarter,
		StarterActionParley:          PolicyOneStarter,
		NumberOfStarterSlotHand:      1,
		NumberOfStarterSlotArcane:    1,
	}
}

// Parse decodes YAML over the defaults. Keys not present keep their default.
func Parse(data []byte) (Options, error) {
	o := Default()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse options YAML: %w", err)
	}
	return o, nil
}

// Load reads an options file.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	o, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Prepare normalises dependent options and validates the result. It must run
// before the starter allocator.
func (o *Options) Prepare() error {
	if o.RevisedCoreSetExpansion == 0 && o.CoreSetExpansion < 2 {
		return &ConfigError{
			Option: "core_set_expansion",
			Reason: "one of the following options must have a value: revised_core_set_expansion > 0; core_set_expansion > 1",
		}
	}
	if o.DunwichLegacyExpansion == 0 {
		o.DunwichLegacyInvestigators = 0
		o.DunwichLegacyCards = 0
	}
	switch o.CampaignChoice {
	case CampaignCoreSet:
		o.PlayingCampaignCoreSet = 1
	case CampaignDunwichLegacy:
		if o.DunwichLegacyExpansion <= 0 {
			return &ConfigError{
				Option: "campaign_choice",
				Reason: "cannot play the Dunwich Legacy campaign without the dunwich_legacy_expansion",
			}
		}
		o.PlayingCampaignDunwichLegacy = 1
	default:
		return &ConfigError{Option: "campaign_choice", Reason: fmt.Sprintf("unknown campaign %d", o.CampaignChoice)}
	}
	return o.validateRanges()
}

func (o *Options) validateRanges() error {
	ranges := []struct {
		name     string
		v        int
		min, max int
	}{
		{"core_set_expansion", o.CoreSetExpansion, 0, 4},
		{"revised_core_set_expansion", o.RevisedCoreSetExpansion, 0, 2},
		{"location_logic", o.LocationLogic, LocationLogicStandard, LocationLogicHard},
		{"number_of_starter_investigators", o.NumberOfStarterInvestigators, 1, 4},
		{"starter_cards_max_level", o.StarterCardsMaxLevel, 0, catalog.MaxLevel},
		{"number_of_starter_slot_hand", o.NumberOfStarterSlotHand, 1, 2},
		{"number_of_starter_slot_arcane", o.NumberOfStarterSlotArcane, 1, 2},
	}
	for _, r := range ranges {
		if r.v < r.min || r.v > r.max {
			return &ConfigError{Option: r.name, Reason: fmt.Sprintf("value %d out of range %d-%d", r.v, r.min, r.max)}
		}
	}
	for _, k := range catalog.Capabilities {
		if p := o.Policy(k); !p.Valid() {
			return &ConfigError{Option: policyOption(k), Reason: fmt.Sprintf("unknown starter policy %d", int(p))}
		}
	}
	return nil
}

// SharedCardValue is how many deck points a card available to both
// investigators of a pair is worth; an exclusive card is worth 2.
func (o Options) SharedCardValue() int {
	return 2*o.RevisedCoreSetExpansion + o.CoreSetExpansion - 2
}

// Policy returns the starter policy configured for a capability.
func (o Options) Policy(k catalog.Capability) StarterPolicy {
	switch k {
	case catalog.CapMove:
		return o.StarterActionMove
	case catalog.CapInvestigate:
		return o.StarterActionInvestigate
	case catalog.CapAttack:
		return o.StarterActionAttack
	case catalog.CapEvade:
		return o.StarterActionEvade
	case catalog.CapParley:
		return o.StarterActionParley
	case catalog.CapHandSlot:
		return o.StarterSlotHand
	case catalog.CapBodySlot:
		return o.StarterSlotBody
	case catalog.CapAllySlot:
		return o.StarterSlotAlly
	case catalog.CapArcaneSlot:
		return o.StarterSlotArcane
	case catalog.CapAccessorySlot:
		return o.StarterSlotAccessory
	default:
		return PolicyNone
	}
}

// Quantity is how many tokens of a capability each chosen investigator gets.
func (o Options) Quantity(k catalog.Capability) int {
	switch k {
	case catalog.CapHandSlot:
		return o.NumberOfStarterSlotHand
	case catalog.CapArcaneSlot:
		return o.NumberOfStarterSlotArcane
	default:
		return 1
	}
}

func policyOption(k catalog.Capability) string {
	if k.IsSlot() {
		return "starter_slot_" + k.String()
	}
	return "starter_action_" + k.String()
}

// Allows reports whether an item's expansion is in play.
func (o Options) Allows(it catalog.Item) bool {
	switch it.Expansion {
	case "":
		return true
	case ExpansionCoreSet:
		return o.CoreSetExpansion > 0 || o.RevisedCoreSetExpansion > 0
	case ExpansionRevisedCoreSet:
		return o.RevisedCoreSetExpansion > 0
	case ExpansionDunwichLegacy:
		if o.DunwichLegacyExpansion == 0 {
			return false
		}
		if it.IsInvestigator() {
			return o.DunwichLegacyInvestigators > 0
		}
		return o.DunwichLegacyCards > 0
	default:
		return true
	}
}

package catalog

import "fmt"

// Capability is a permission an investigator unlocks through a token item.
type Capability int

const (
	CapNone Capability = iota
	CapMove
	CapInvestigate
	CapAttack
	CapEvade
	CapParley
	CapHandSlot
	CapBodySlot
	CapAllySlot
	CapArcaneSlot
	CapAccessorySlot
)

// Capabilities lists every capability in allocation order.
var Capabilities = []Capability{
	CapMove, CapInvestigate, CapAttack, CapEvade, CapParley,
	CapHandSlot, CapBodySlot, CapAllySlot, CapArcaneSlot, CapAccessorySlot,
}

// Suffix is the text appended to an investigator name to form the token.
func (c Capability) Suffix() string {
	switch c {
	case CapMove:
		return "can move"
	case CapInvestigate:
		return "can investigate"
	case CapAttack:
		return "can attack"
	case CapEvade:
		return "can evade"
	case CapParley:
		return "can parley"
	case CapHandSlot:
		return SlotHand.String()
	case CapBodySlot:
		return SlotBody.String()
	case CapAllySlot:
		return SlotAlly.String()
	case CapArcaneSlot:
		return SlotArcane.String()
	case CapAccessorySlot:
		return SlotAccessory.String()
	default:
		return ""
	}
}

func (c Capability) String() string {
	switch c {
	case CapMove:
		return "move"
	case CapInvestigate:
		return "investigate"
	case CapAttack:
		return "attack"
	case CapEvade:
		return "evade"
	case CapParley:
		return "parley"
	case CapHandSlot:
		return "hand"
	case CapBodySlot:
		return "body"
	case CapAllySlot:
		return "ally"
	case CapArcaneSlot:
		return "arcane"
	case CapAccessorySlot:
		return "accessory"
	default:
		return "none"
	}
}

// IsSlot reports whether the capability is an equipment slot.
func (c Capability) IsSlot() bool {
	return c >= CapHandSlot && c <= CapAccessorySlot
}

// ParseCapability resolves a short capability name ("move", "hand").
func ParseCapability(s string) (Capability, error) {
	for _, c := range Capabilities {
		if c.String() == s {
			return c, nil
		}
	}
	return CapNone, fmt.Errorf("unknown capability %q", s)
}

// Token returns the ownable item name granting c to the investigator.
func Token(investigator string, c Capability) string {
	return investigator + " " + c.Suffix()
}

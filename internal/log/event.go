package log

// EventType enumerates the observable starter allocation events.
type EventType int

const (
	EventStepChange EventType = iota
	EventDraftInvestigator
	EventDrawCard
	EventSkipDuplicate
	EventSkipLevel
	EventSkipUnassigned
	EventDeckComplete
	EventGrantCapability
	EventPrecollect
)

func (e EventType) String() string {
	switch e {
	case EventStepChange:
		return "StepChange"
	case EventDraftInvestigator:
		return "DraftInvestigator"
	case EventDrawCard:
		return "DrawCard"
	case EventSkipDuplicate:
		return "SkipDuplicate"
	case EventSkipLevel:
		return "SkipLevel"
	case EventSkipUnassigned:
		return "SkipUnassigned"
	case EventDeckComplete:
		return "DeckComplete"
	case EventGrantCapability:
		return "GrantCapability"
	case EventPrecollect:
		return "Precollect"
	default:
		return "Unknown"
	}
}

// Event represents a single observable event of a starter allocation.
type Event struct {
	Seq     int       // monotonic sequence number
	Player  int       // player the allocation is for
	Step    string    // allocation step (e.g. "Starter Deck")
	Type    EventType // event type
	Item    string    // item name (if applicable)
	Details string    // human-readable detail string
}

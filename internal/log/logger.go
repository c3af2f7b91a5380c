package log

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// EventLogger is the interface for logging allocation events.
type EventLogger interface {
	Log(event Event)
	Events() []Event
}

type discard struct{}

func (discard) Log(Event)       {}
func (discard) Events() []Event { return nil }

// Discard is an EventLogger that keeps nothing.
var Discard EventLogger = discard{}

// MemoryLogger keeps every event so tests can assert on the allocation.
type MemoryLogger struct {
	events []Event
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// Log stamps the event with the next sequence number and records it.
func (l *MemoryLogger) Log(event Event) {
	event.Seq = len(l.events) + 1
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// EventsOfType returns the recorded events of type t, in order.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	return slices.DeleteFunc(slices.Clone(l.events), func(e Event) bool {
		return e.Type != t
	})
}

// Items returns the item names of the recorded events of type t.
func (l *MemoryLogger) Items(t EventType) []string {
	var out []string
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e.Item)
		}
	}
	return out
}

// LastEvent returns the latest event, or the zero Event.
func (l *MemoryLogger) LastEvent() Event {
	if n := len(l.events); n > 0 {
		return l.events[n-1]
	}
	return Event{}
}

// TextLogger records events like MemoryLogger and echoes each one as a line.
type TextLogger struct {
	MemoryLogger
	out io.Writer
}

func NewTextLogger(out io.Writer) *TextLogger {
	return &TextLogger{out: out}
}

func (l *TextLogger) Log(event Event) {
	l.MemoryLogger.Log(event)
	io.WriteString(l.out, FormatEvent(event)+"\n")
}

// label names a player for display: P1, P2, ...
func label(player int) string {
	return "P" + strconv.Itoa(player+1)
}

// FormatEvent renders one event as "P1  Starter Deck    | details".
func FormatEvent(e Event) string {
	return fmt.Sprintf("%-3s %-16s| %s", label(e.Player), e.Step, e.Details)
}

// FormatAll renders events one per line.
func FormatAll(events []Event) string {
	lines := make([]string, 0, len(events)+1)
	for _, e := range events {
		lines = append(lines, FormatEvent(e))
	}
	return strings.Join(append(lines, ""), "\n")
}

func NewStepEvent(player int, step string) Event {
	return Event{
		Player:  player,
		Step:    step,
		Type:    EventStepChange,
		Details: fmt.Sprintf("Step → %s", step),
	}
}

func NewDraftEvent(player int, investigator string) Event {
	return Event{
		Player:  player,
		Step:    "Draft",
		Type:    EventDraftInvestigator,
		Item:    investigator,
		Details: fmt.Sprintf("%s drafts %s", label(player), investigator),
	}
}

func NewDrawCardEvent(player int, card string, takers []string) Event {
	return Event{
		Player:  player,
		Step:    "Starter Deck",
		Type:    EventDrawCard,
		Item:    card,
		Details: fmt.Sprintf("%s draws %s for %s", label(player), card, strings.Join(takers, ", ")),
	}
}

func NewSkipDuplicateEvent(player int, card, base string) Event {
	return Event{
		Player:  player,
		Step:    "Starter Deck",
		Type:    EventSkipDuplicate,
		Item:    card,
		Details: fmt.Sprintf("%s skipped: a version of %s is already drawn", card, base),
	}
}

func NewSkipLevelEvent(player int, card string, level, maxLevel int) Event {
	return Event{
		Player:  player,
		Step:    "Starter Deck",
		Type:    EventSkipLevel,
		Item:    card,
		Details: fmt.Sprintf("%s skipped: level %d above starter maximum %d", card, level, maxLevel),
	}
}

func NewSkipUnassignedEvent(player int, card string) Event {
	return Event{
		Player:  player,
		Step:    "Starter Deck",
		Type:    EventSkipUnassigned,
		Item:    card,
		Details: fmt.Sprintf("%s skipped: no starter investigator needs it", card),
	}
}

func NewDeckCompleteEvent(player int, investigator string, size int) Event {
	return Event{
		Player:  player,
		Step:    "Starter Deck",
		Type:    EventDeckComplete,
		Item:    investigator,
		Details: fmt.Sprintf("%s deck complete (%d cards)", investigator, size),
	}
}

func NewGrantEvent(player int, token, policy string) Event {
	return Event{
		Player:  player,
		Step:    "Capabilities",
		Type:    EventGrantCapability,
		Item:    token,
		Details: fmt.Sprintf("%s granted %s (%s)", label(player), token, policy),
	}
}

func NewPrecollectEvent(player int, item string) Event {
	return Event{
		Player:  player,
		Step:    "Commit",
		Type:    EventPrecollect,
		Item:    item,
		Details: fmt.Sprintf("%s starts with %s", label(player), item),
	}
}

package keyline

import (
	"github.com/dshills/keyline/key"
	"github.com/dshills/keyline/keymap"
)

// ResolveKind classifies the outcome of feeding one key event.
type ResolveKind uint8

const (
	// ResolveCommand means a bound command fired, with an optional count
	// and captured character argument.
	ResolveCommand ResolveKind = iota

	// ResolvePending means more keys are awaited: a binding prefix, a
	// count digit, or the character argument of a find or replace.
	ResolvePending

	// ResolveUnbound means a single key matched nothing. Modes decide
	// what to do with it; insert modes self-insert printable runes.
	ResolveUnbound

	// ResolveDrop means a buffered multi-key prefix matched nothing and
	// was discarded, or a character capture was cancelled.
	ResolveDrop
)

// String returns the kind name.
func (k ResolveKind) String() string {
	switch k {
	case ResolveCommand:
		return "command"
	case ResolvePending:
		return "pending"
	case ResolveUnbound:
		return "unbound"
	default:
		return "drop"
	}
}

// Resolution is the result of feeding one key event to the machine.
type Resolution struct {
	Kind ResolveKind

	// Command is the command identifier for ResolveCommand.
	Command string

	// Count is the accumulated Vi count, 0 when none was given.
	Count int

	// Arg is the captured character for find and replace commands.
	Arg rune

	// Event is the event that produced this resolution.
	Event key.Event
}

// Machine turns key events into commands. It tracks the active mode,
// buffers multi-key binding prefixes, accumulates Vi counts, and holds
// the one-key capture state of find and replace commands. Operator
// composition is left to the session, which owns the buffer.
type Machine struct {
	registry *keymap.Registry
	mode     Mode
	pending  *key.Sequence

	count        int
	capture      string
	captureCount int

	// log collects the raw events of the resolution in flight, so the
	// session can record repeatable changes for Vi ".".
	log []key.Event
}

// NewMachine creates a machine over the given keymap registry, starting
// in the given mode.
func NewMachine(registry *keymap.Registry, mode Mode) *Machine {
	return &Machine{
		registry: registry,
		mode:     mode,
		pending:  key.NewSequence(),
	}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// SetMode switches the active mode and clears all pending state.
func (m *Machine) SetMode(mode Mode) {
	m.mode = mode
	m.pending.Clear()
	m.count = 0
	m.capture = ""
	m.captureCount = 0
}

// Pending reports whether the machine is waiting for more keys.
func (m *Machine) Pending() bool {
	return !m.pending.IsEmpty() || m.capture != ""
}

// TakeLog returns the raw events accumulated since the last take and
// clears the log. Call it after every non-pending resolution.
func (m *Machine) TakeLog() []key.Event {
	log := m.log
	m.log = nil
	return log
}

// commandsWithArg lists the commands that capture one further character.
var commandsWithArg = map[string]bool{
	"find.char":     true,
	"find.charBack": true,
	"find.till":     true,
	"find.tillBack": true,
	"replace.char":  true,
}

// Feed processes one key event against the active mode's keymap.
func (m *Machine) Feed(ev key.Event) Resolution {
	m.log = append(m.log, ev)

	if m.capture != "" {
		cmd, count := m.capture, m.captureCount
		m.capture, m.captureCount = "", 0
		if ev.IsRune() && !ev.IsModified() {
			return Resolution{Kind: ResolveCommand, Command: cmd, Count: count, Arg: ev.Rune, Event: ev}
		}
		return Resolution{Kind: ResolveDrop, Event: ev}
	}

	if m.mode == ModeViNormal && m.pending.IsEmpty() &&
		ev.IsRune() && !ev.IsModified() &&
		ev.Rune >= '0' && ev.Rune <= '9' &&
		(ev.Rune != '0' || m.count > 0) {
		m.count = m.count*10 + int(ev.Rune-'0')
		return Resolution{Kind: ResolvePending, Event: ev}
	}

	m.pending.Add(ev)
	binding, res := m.registry.Resolve(m.mode.String(), m.pending)
	switch res {
	case keymap.ResolveExact:
		m.pending.Clear()
		count := m.count
		m.count = 0
		if commandsWithArg[binding.Command] {
			m.capture = binding.Command
			m.captureCount = count
			return Resolution{Kind: ResolvePending, Event: ev}
		}
		return Resolution{Kind: ResolveCommand, Command: binding.Command, Count: count, Event: ev}
	case keymap.ResolvePrefix:
		return Resolution{Kind: ResolvePending, Event: ev}
	default:
		multi := m.pending.Len() > 1
		m.pending.Clear()
		m.count = 0
		if multi {
			return Resolution{Kind: ResolveDrop, Event: ev}
		}
		return Resolution{Kind: ResolveUnbound, Event: ev}
	}
}

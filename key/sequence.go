package key

import (
	"strings"
)

// Sequence represents a series of key events forming a command.
// Examples: "gg", "dw", "<C-x><C-u>".
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{Events: make([]Event, 0, 2)}
}

// NewSequenceFrom creates a sequence from the given events.
func NewSequenceFrom(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// Clear removes all events from the sequence.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// String returns the canonical representation, e.g. "gg" or "<C-x><C-u>".
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, e := range s.Events {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Events) > len(s.Events) {
		return false
	}
	for i, e := range prefix.Events {
		if !e.Equals(s.Events[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return &Sequence{Events: events}
}

// ParseSequence parses a key sequence string.
// Plain characters follow one another; special keys and modified keys use
// angle notation. Examples: "dd", "gU", "<C-x><C-u>", "<A-b>".
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if runes[i] == '<' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '>' {
					end = j
					break
				}
			}
			if end == -1 {
				// No closing '>', treat as a literal '<'.
				seq.Add(NewRune('<'))
				i++
				continue
			}
			event, err := Parse(string(runes[i : end+1]))
			if err != nil {
				return nil, err
			}
			seq.Add(event)
			i = end + 1
			continue
		}
		seq.Add(NewRune(runes[i]))
		i++
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}

package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mod contains the active modifier keys.
	Mod Modifier
}

// NewRune creates an event for a character key.
func NewRune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewCtrl creates an event for a Ctrl+letter combination.
func NewCtrl(r rune) Event {
	return Event{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// NewAlt creates an event for an Alt+letter (ESC-prefixed) combination.
func NewAlt(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Mod: ModAlt}
}

// NewSpecial creates an event for a special key.
func NewSpecial(k Key, mods Modifier) Event {
	return Event{Key: k, Mod: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl or Alt is held. Shift alone is not
// considered a modifier for character events since it changes the rune.
func (e Event) IsModified() bool {
	return e.Mod&(ModCtrl|ModAlt) != 0
}

// IsText returns true if the event would insert a printable character:
// an unmodified printable rune.
func (e Event) IsText() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Mod == other.Mod
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// IsEscape returns true if this is a bare Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Mod == ModNone
}

// IsEnter returns true if this is a bare Enter key.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Mod == ModNone
}

// IsBackspace returns true if this is a bare Backspace key.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Mod == ModNone
}

// IsTab returns true if this is a bare Tab key.
func (e Event) IsTab() bool {
	return e.Key == KeyTab && e.Mod == ModNone
}

// String returns the canonical specification form, parseable by Parse.
// Examples: "a", "A", "<Space>", "<C-x>", "<A-b>", "<CR>", "<Up>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Mod.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Mod.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Mod.HasShift() && e.Key != KeyRune {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Mod: %s}", e.Key, e.Rune, e.Mod)
}

package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace"
//   - Angle notation: "<C-s>", "<A-f>", "<C-S-Left>", "<CR>", "<Esc>", "<Space>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseAngle(spec[1 : len(spec)-1])
	}

	return parseSingle(spec)
}

// parseAngle parses the inside of <...> notation like "C-s", "A-Left", "CR".
func parseAngle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(keyPart, mods)
}

// parseSingle parses a bare character or key name.
func parseSingle(spec string) (Event, error) {
	if k := KeyFromName(spec); k != KeyNone && len([]rune(spec)) > 1 {
		return NewSpecial(k, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRune(runes[0]), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyPart resolves the key name inside angle notation.
func parseKeyPart(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return Event{Key: KeyRune, Rune: ' ', Mod: mods}, nil
	case "lt":
		return Event{Key: KeyRune, Rune: '<', Mod: mods}, nil
	case "gt":
		return Event{Key: KeyRune, Rune: '>', Mod: mods}, nil
	case "bar":
		return Event{Key: KeyRune, Rune: '|', Mod: mods}, nil
	case "bslash":
		return Event{Key: KeyRune, Rune: '\\', Mod: mods}, nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecial(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// Ctrl combinations are canonically lowercase.
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

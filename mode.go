package keyline

// Mode is an editing mode. Each mode selects a keymap and decides what
// happens to keys the keymap does not bind.
type Mode uint8

const (
	// ModeEmacs is the single Emacs-style mode. Unbound printable keys
	// insert themselves.
	ModeEmacs Mode = iota

	// ModeViInsert is Vi insert mode. Unbound printable keys insert
	// themselves; Escape switches to normal mode.
	ModeViInsert

	// ModeViNormal is Vi normal mode. Keys are commands; counts and
	// operators compose. Unbound keys are ignored.
	ModeViNormal

	// ModeSearch is incremental history search. Unbound printable keys
	// extend the query.
	ModeSearch
)

// String returns the mode name, which is also its keymap name.
func (m Mode) String() string {
	switch m {
	case ModeViInsert:
		return "vi-insert"
	case ModeViNormal:
		return "vi-normal"
	case ModeSearch:
		return "search"
	default:
		return "emacs"
	}
}

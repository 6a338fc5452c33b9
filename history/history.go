package history

import "strings"

// DefaultMax is the entry bound used when no limit is given.
const DefaultMax = 1000

// History is an ordered log of accepted lines, oldest to newest, with a
// browse cursor for Up/Down recall. Entries are unique: pushing a line
// that already exists moves it to the newest position. The log is owned
// by the embedding application and shared across sessions; access is
// sequential, never concurrent.
type History struct {
	entries []string
	max     int

	// browse indexes the entry currently recalled, or -1 when the
	// session is on its live in-progress line.
	browse int
}

// New creates an empty history bounded to max entries.
// A non-positive max uses DefaultMax.
func New(max int) *History {
	if max <= 0 {
		max = DefaultMax
	}
	return &History{max: max, browse: -1}
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i (0 is oldest), or "" if out of range.
func (h *History) At(i int) string {
	if i < 0 || i >= len(h.entries) {
		return ""
	}
	return h.entries[i]
}

// Newest returns the most recent entry.
func (h *History) Newest() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of the log, oldest to newest.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Push appends a line to the log. Empty lines are ignored. A line equal
// to the newest entry leaves the log unchanged; a line equal to an older
// entry moves to the newest position. The size bound drops the oldest
// entries. Push always resets the browse cursor. Returns true if the log
// changed.
func (h *History) Push(line string) bool {
	h.browse = -1
	if line == "" {
		return false
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return false
	}

	for i, e := range h.entries {
		if e == line {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return true
}

// ResetBrowse returns the browse cursor to the live line. Called at the
// start of each session.
func (h *History) ResetBrowse() {
	h.browse = -1
}

// Browsing returns true if the browse cursor sits on a history entry
// rather than the live line.
func (h *History) Browsing() bool {
	return h.browse >= 0
}

// Prev moves the browse cursor one step older among entries starting
// with prefix. An empty prefix matches everything. At the oldest match
// the call is a no-op returning false.
func (h *History) Prev(prefix string) (string, bool) {
	start := h.browse - 1
	if h.browse < 0 {
		start = len(h.entries) - 1
	}
	for i := start; i >= 0; i-- {
		if strings.HasPrefix(h.entries[i], prefix) {
			h.browse = i
			return h.entries[i], true
		}
	}
	return "", false
}

// Next moves the browse cursor one step newer among entries starting
// with prefix. Stepping past the newest match returns the cursor to the
// live line and reports false; the caller restores its saved line. When
// already on the live line the call is a no-op.
func (h *History) Next(prefix string) (string, bool) {
	if h.browse < 0 {
		return "", false
	}
	for i := h.browse + 1; i < len(h.entries); i++ {
		if strings.HasPrefix(h.entries[i], prefix) {
			h.browse = i
			return h.entries[i], true
		}
	}
	h.browse = -1
	return "", false
}

// Suggest returns the longest entry starting with prefix, preferring the
// most recent on equal length. Used for the autosuggestion overlay.
// An empty prefix yields no suggestion.
func (h *History) Suggest(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	best := ""
	found := false
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		if len(e) > len(prefix) && strings.HasPrefix(e, prefix) && len(e) > len(best) {
			best = e
			found = true
		}
	}
	return best, found
}

// SetEntries replaces the log wholesale, trimming to the size bound and
// resetting the browse cursor. Used when loading or reloading a shared
// history file.
func (h *History) SetEntries(entries []string) {
	h.browse = -1
	if len(entries) > h.max {
		entries = entries[len(entries)-h.max:]
	}
	h.entries = append(h.entries[:0], entries...)
}

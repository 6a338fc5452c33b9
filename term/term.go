package term

import (
	"github.com/dshills/keyline/key"
)

// Point is a logical position inside the edited content: a line index
// and a column in grapheme clusters.
type Point struct {
	Line int
	Col  int
}

// State is the full display state of a session, handed to a Renderer on
// every change. After Render returns, the terminal shows exactly this
// state; the engine assumes nothing about incremental redraw.
type State struct {
	// Prompt precedes the first content line.
	Prompt string

	// Lines is the buffer content, one string per line.
	Lines []string

	// Cursor is the logical cursor position within Lines.
	Cursor Point

	// Suggestion is dimmed trailing text drawn after the last line,
	// never part of the content.
	Suggestion string

	// SearchPrompt, when non-empty, replaces Prompt during an
	// incremental search, e.g. "(reverse-i-search)`que`: ".
	SearchPrompt string

	// Hint is an informational line drawn below the content, used for
	// completion candidate listings.
	Hint string
}

// Source delivers decoded key events to a session. NextKey blocks until
// a key arrives and returns io.EOF when the input stream is closed.
// Implementations must return promptly once per key so the engine stays
// responsive; the engine never retries a failed read.
type Source interface {
	NextKey() (key.Event, error)
	Size() (width, height int)
}

// Renderer redraws the visible session state. A failed render is fatal
// to the running read; the engine does not retry.
type Renderer interface {
	Render(st State) error
}

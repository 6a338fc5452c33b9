package term

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab expansion used when none is configured.
const DefaultTabWidth = 8

// clusterWidth returns the display width of one grapheme cluster at
// column x, expanding tabs to the next tab stop.
func clusterWidth(cluster string, x, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - x%tabWidth
	}
	return runewidth.StringWidth(cluster)
}

// advance walks the clusters of s from cell (row, x), wrapping at width,
// and returns the cell after the last cluster.
func advance(s string, row, x, width, tabWidth int) (int, int) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := clusterWidth(gr.Str(), x, tabWidth)
		if x+w > width && x > 0 {
			row++
			x = 0
			w = clusterWidth(gr.Str(), 0, tabWidth)
		}
		x += w
	}
	return row, x
}

// StringWidth returns the display width of s, ignoring wraps and tabs.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CursorCell computes the screen cell of a logical cursor position,
// relative to the first rendered row. The prompt occupies the start of
// the first line; continuation lines start at column zero. Lines wrap at
// the terminal width. This is a pure function of the state.
func CursorCell(st State, width, tabWidth int) (row, col int) {
	if width <= 0 {
		width = 1
	}

	prompt := st.Prompt
	if st.SearchPrompt != "" {
		prompt = st.SearchPrompt
	}

	row, x := advance(prompt, 0, 0, width, tabWidth)
	for i, line := range st.Lines {
		if i > 0 {
			row++
			x = 0
		}
		if i == st.Cursor.Line {
			prefix := clusterPrefix(line, st.Cursor.Col)
			row, x = advance(prefix, row, x, width, tabWidth)
			if x >= width {
				row++
				x = 0
			}
			return row, x
		}
		row, x = advance(line, row, x, width, tabWidth)
	}
	if x >= width {
		row++
		x = 0
	}
	return row, x
}

// RenderedRows returns how many rows the state occupies at the given
// width, including the suggestion and hint line.
func RenderedRows(st State, width, tabWidth int) int {
	if width <= 0 {
		width = 1
	}

	prompt := st.Prompt
	if st.SearchPrompt != "" {
		prompt = st.SearchPrompt
	}

	row, x := advance(prompt, 0, 0, width, tabWidth)
	for i, line := range st.Lines {
		if i > 0 {
			row++
			x = 0
		}
		row, x = advance(line, row, x, width, tabWidth)
	}
	if st.Suggestion != "" {
		row, _ = advance(st.Suggestion, row, x, width, tabWidth)
	}
	rows := row + 1
	if st.Hint != "" {
		rows++
	}
	return rows
}

// clusterPrefix returns the first n grapheme clusters of s.
func clusterPrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && gr.Next(); i++ {
		_, end = gr.Positions()
	}
	return s[:end]
}

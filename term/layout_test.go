package term

import "testing"

func TestCursorCellSimple(t *testing.T) {
	st := State{
		Prompt: "> ",
		Lines:  []string{"hello"},
		Cursor: Point{Line: 0, Col: 3},
	}
	row, col := CursorCell(st, 80, 0)
	if row != 0 || col != 5 {
		t.Errorf("expected (0,5), got (%d,%d)", row, col)
	}
}

func TestCursorCellMultiLine(t *testing.T) {
	st := State{
		Prompt: "> ",
		Lines:  []string{"one", "two"},
		Cursor: Point{Line: 1, Col: 2},
	}
	row, col := CursorCell(st, 80, 0)
	if row != 1 || col != 2 {
		t.Errorf("expected (1,2), got (%d,%d)", row, col)
	}
}

func TestCursorCellWraps(t *testing.T) {
	st := State{
		Prompt: "> ",
		Lines:  []string{"abcdefgh"},
		Cursor: Point{Line: 0, Col: 8},
	}
	// Width 5: "> abc" on row 0, "defgh" on row 1, cursor after the h
	// wraps to row 2 column 0.
	row, col := CursorCell(st, 5, 0)
	if row != 2 || col != 0 {
		t.Errorf("expected (2,0), got (%d,%d)", row, col)
	}
}

func TestCursorCellWideRunes(t *testing.T) {
	st := State{
		Prompt: "",
		Lines:  []string{"日本語"},
		Cursor: Point{Line: 0, Col: 2},
	}
	row, col := CursorCell(st, 80, 0)
	if row != 0 || col != 4 {
		t.Errorf("expected double-width cells (0,4), got (%d,%d)", row, col)
	}
}

func TestCursorCellTabExpansion(t *testing.T) {
	st := State{
		Prompt: "",
		Lines:  []string{"a\tb"},
		Cursor: Point{Line: 0, Col: 2},
	}
	row, col := CursorCell(st, 80, 4)
	if row != 0 || col != 4 {
		t.Errorf("expected tab stop at 4, got (%d,%d)", row, col)
	}
}

func TestCursorCellSearchPromptReplaces(t *testing.T) {
	st := State{
		Prompt:       "> ",
		SearchPrompt: "(reverse-i-search)`x`: ",
		Lines:        []string{"abc"},
		Cursor:       Point{Line: 0, Col: 0},
	}
	_, col := CursorCell(st, 200, 0)
	if want := StringWidth(st.SearchPrompt); col != want {
		t.Errorf("expected col %d after search prompt, got %d", want, col)
	}
}

func TestRenderedRows(t *testing.T) {
	tests := []struct {
		name  string
		st    State
		width int
		want  int
	}{
		{"single line", State{Prompt: "> ", Lines: []string{"hi"}}, 80, 1},
		{"two lines", State{Prompt: "> ", Lines: []string{"a", "b"}}, 80, 2},
		{"wrapped", State{Prompt: "> ", Lines: []string{"abcdefgh"}}, 5, 2},
		{"with hint", State{Prompt: "> ", Lines: []string{"a"}, Hint: "x y z"}, 80, 2},
		{"with suggestion", State{Prompt: "> ", Lines: []string{"l"}, Suggestion: "s -la"}, 80, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderedRows(tt.st, tt.width, 0); got != tt.want {
				t.Errorf("expected %d rows, got %d", tt.want, got)
			}
		})
	}
}

package term

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/keyline/key"
)

// Tcell implements Source and Renderer on a tcell screen. The edit area
// starts at an origin row and extends downward; embedding applications
// advance the origin as lines are accepted.
type Tcell struct {
	screen   tcell.Screen
	owned    bool
	origin   int
	tabWidth int
}

// NewTcell creates a backend on a new initialized terminal screen.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Tcell{screen: screen, owned: true, tabWidth: DefaultTabWidth}, nil
}

// NewTcellFor wraps an already-initialized screen. The caller keeps
// ownership; Close will not finalize it. Used with simulation screens in
// tests.
func NewTcellFor(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen, tabWidth: DefaultTabWidth}
}

// Close releases the screen if this backend created it.
func (t *Tcell) Close() {
	if t.owned {
		t.screen.Fini()
	}
}

// Screen exposes the underlying tcell screen.
func (t *Tcell) Screen() tcell.Screen {
	return t.screen
}

// SetTabWidth sets the tab expansion width.
func (t *Tcell) SetTabWidth(n int) {
	if n > 0 {
		t.tabWidth = n
	}
}

// Origin returns the top row of the edit area.
func (t *Tcell) Origin() int {
	return t.origin
}

// SetOrigin moves the top row of the edit area, clamping to the screen.
func (t *Tcell) SetOrigin(row int) {
	_, h := t.screen.Size()
	if row < 0 {
		row = 0
	}
	if row >= h {
		t.screen.Clear()
		row = 0
	}
	t.origin = row
}

// ClearScreen blanks the whole screen and moves the edit area to the
// top row.
func (t *Tcell) ClearScreen() {
	t.screen.Clear()
	t.origin = 0
}

// Size returns the terminal dimensions.
func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

// NextKey blocks for the next decoded key event. Resize events are
// absorbed; the size is re-queried at the next render. Returns io.EOF
// when the screen's event stream ends.
func (t *Tcell) NextKey() (key.Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, io.EOF
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			ke := convertKey(e)
			if ke.Key == key.KeyNone {
				continue
			}
			return ke, nil
		default:
			// Resize, mouse, paste markers: nothing to deliver.
		}
	}
}

// Println writes a finished line of output at the origin and advances
// past it. Used by applications to echo results between sessions.
func (t *Tcell) Println(s string) {
	width, _ := t.screen.Size()
	if width <= 0 {
		width = 1
	}
	row, _ := t.drawString(s, t.origin, 0, width, tcell.StyleDefault)
	t.clearRow(row + 1)
	t.SetOrigin(row + 1)
	t.screen.Show()
}

// Render draws the session state starting at the origin row.
func (t *Tcell) Render(st State) error {
	width, height := t.screen.Size()
	if width <= 0 {
		width = 1
	}

	// The state must fit below the origin; pull the origin up if the
	// content grew past the bottom of the screen.
	rows := RenderedRows(st, width, t.tabWidth)
	if t.origin+rows > height {
		t.origin = height - rows
		if t.origin < 0 {
			t.origin = 0
		}
	}

	for y := t.origin; y < height; y++ {
		t.clearRow(y)
	}

	prompt := st.Prompt
	if st.SearchPrompt != "" {
		prompt = st.SearchPrompt
	}

	row, x := t.drawString(prompt, t.origin, 0, width, tcell.StyleDefault)
	for i, line := range st.Lines {
		if i > 0 {
			row++
			x = 0
		}
		row, x = t.drawString(line, row, x, width, tcell.StyleDefault)
	}
	if st.Suggestion != "" {
		t.drawString(st.Suggestion, row, x, width, tcell.StyleDefault.Dim(true))
	}
	if st.Hint != "" {
		t.drawString(st.Hint, row+1, 0, width, tcell.StyleDefault.Dim(true))
	}

	curRow, curCol := CursorCell(st, width, t.tabWidth)
	t.screen.ShowCursor(curCol, t.origin+curRow)
	t.screen.Show()
	return nil
}

// drawString draws s from cell (row, x) relative to the screen top,
// wrapping at width, and returns the cell after the last cluster.
// Rows are absolute screen rows.
func (t *Tcell) drawString(s string, row, x, width int, style tcell.Style) (int, int) {
	for _, cluster := range clusters(s) {
		w := clusterWidth(cluster, x, t.tabWidth)
		if x+w > width && x > 0 {
			row++
			x = 0
			w = clusterWidth(cluster, 0, t.tabWidth)
		}
		if cluster != "\t" {
			runes := []rune(cluster)
			t.screen.SetContent(x, row, runes[0], runes[1:], style)
		}
		x += w
	}
	return row, x
}

// clearRow blanks one screen row.
func (t *Tcell) clearRow(y int) {
	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// convertKey translates a tcell key event. Control-letter keys become a
// rune with ModCtrl so keymaps need a single spelling per chord.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMods(e.Modifiers())

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: e.Rune(), Mod: mods}
	case tcell.KeyEnter:
		return key.NewSpecial(key.KeyEnter, mods.Without(key.ModCtrl))
	case tcell.KeyTab:
		return key.NewSpecial(key.KeyTab, mods.Without(key.ModCtrl))
	case tcell.KeyEscape:
		return key.NewSpecial(key.KeyEscape, mods)
	case tcell.KeyBackspace2:
		return key.NewSpecial(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecial(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecial(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecial(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecial(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecial(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecial(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecial(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecial(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecial(key.KeyRight, mods)
	case tcell.KeyCtrlSpace:
		return key.Event{Key: key.KeyRune, Rune: ' ', Mod: mods.With(key.ModCtrl)}
	case tcell.KeyCtrlUnderscore:
		return key.Event{Key: key.KeyRune, Rune: '_', Mod: mods.With(key.ModCtrl)}
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := 'a' + rune(k-tcell.KeyCtrlA)
			return key.Event{Key: key.KeyRune, Rune: r, Mod: mods.With(key.ModCtrl)}
		}
		return key.Event{Key: key.KeyNone}
	}
}

// convertMods translates the tcell modifier mask.
func convertMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out = out.With(key.ModAlt)
	}
	return out
}

// clusters splits a string into grapheme clusters for drawing.
func clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

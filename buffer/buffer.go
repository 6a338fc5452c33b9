package buffer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a multi-line text buffer with a cursor. Columns are counted in
// grapheme clusters so the cursor can never split a multi-unit grapheme.
// At least one line is always present. All operations clamp at buffer
// boundaries instead of failing.
type Buffer struct {
	lines  [][]string
	cursor Position

	// goalCol preserves the target column across vertical motion over
	// shorter lines. Negative when unset.
	goalCol int

	actions   []action
	undone    []action
	replaying bool
}

// New creates an empty buffer with the cursor at the origin.
func New() *Buffer {
	return &Buffer{lines: [][]string{{}}, goalCol: -1}
}

// graphemes splits a string into grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor, clamping to valid bounds.
func (b *Buffer) SetCursor(p Position) {
	b.cursor = b.clamp(p)
	b.goalCol = -1
}

// clamp forces a position into the valid range.
func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

// LineCount returns the number of lines, always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of line i in grapheme clusters, or 0 if i is
// out of range.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// Line returns the text of line i, or "" if i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return strings.Join(b.lines[i], "")
}

// Lines returns the text of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = strings.Join(b.lines[i], "")
	}
	return out
}

// Text returns the full buffer content with lines joined by newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// IsEmpty returns true if the buffer holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Len returns the total number of grapheme clusters, counting each line
// break as one.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// Set replaces the entire content and moves the cursor to the end.
// The replacement undoes as a single step.
func (b *Buffer) Set(text string) {
	b.BeginGroup()
	if !b.IsEmpty() {
		end := Position{Line: len(b.lines) - 1, Col: len(b.lines[len(b.lines)-1])}
		b.removeAndRecord(Position{}, end)
	}
	b.cursor = Position{}
	if text != "" {
		b.record(action{kind: actInsert, pos: Position{}, text: text})
		b.cursor = b.insertAt(Position{}, text)
	}
	b.EndGroup()
	b.goalCol = -1
}

// Clear empties the buffer. The removed text is returned.
func (b *Buffer) Clear() string {
	end := Position{Line: len(b.lines) - 1, Col: len(b.lines[len(b.lines)-1])}
	return b.delete(Position{}, end)
}

// insertAt splices text at p, splitting on embedded newlines, and returns
// the position just past the inserted text. The affected lines are
// re-segmented so combining characters join their base clusters.
func (b *Buffer) insertAt(p Position, text string) Position {
	p = b.clamp(p)
	line := b.lines[p.Line]
	head := strings.Join(line[:p.Col], "")
	tail := strings.Join(line[p.Col:], "")

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		merged := graphemes(head + parts[0] + tail)
		b.lines[p.Line] = merged
		return Position{Line: p.Line, Col: len(graphemes(head + parts[0]))}
	}

	first := graphemes(head + parts[0])
	last := graphemes(parts[len(parts)-1] + tail)
	endCol := len(graphemes(parts[len(parts)-1]))

	newLines := make([][]string, 0, len(b.lines)+len(parts)-1)
	newLines = append(newLines, b.lines[:p.Line]...)
	newLines = append(newLines, first)
	for _, mid := range parts[1 : len(parts)-1] {
		newLines = append(newLines, graphemes(mid))
	}
	newLines = append(newLines, last)
	newLines = append(newLines, b.lines[p.Line+1:]...)
	b.lines = newLines

	return Position{Line: p.Line + len(parts) - 1, Col: endCol}
}

// removeRange deletes the text between start and end (exclusive) and
// returns it. Positions are clamped and may be given in either order.
func (b *Buffer) removeRange(start, end Position) string {
	start = b.clamp(start)
	end = b.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}
	if start.Equals(end) {
		return ""
	}

	if start.Line == end.Line {
		line := b.lines[start.Line]
		removed := strings.Join(line[start.Col:end.Col], "")
		b.lines[start.Line] = append(line[:start.Col:start.Col], line[end.Col:]...)
		return removed
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(b.lines[start.Line][start.Col:], ""))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(b.lines[i], ""))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(b.lines[end.Line][:end.Col], ""))

	merged := append(b.lines[start.Line][:start.Col:start.Col], b.lines[end.Line][end.Col:]...)
	newLines := make([][]string, 0, len(b.lines)-(end.Line-start.Line))
	newLines = append(newLines, b.lines[:start.Line]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, b.lines[end.Line+1:]...)
	b.lines = newLines

	return sb.String()
}

// extent returns the position just past text inserted at pos.
func (b *Buffer) extent(pos Position, text string) Position {
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		return Position{Line: pos.Line, Col: pos.Col + len(graphemes(parts[0]))}
	}
	return Position{Line: pos.Line + len(parts) - 1, Col: len(graphemes(parts[len(parts)-1]))}
}

// removeAndRecord deletes a range and records the removal for undo.
func (b *Buffer) removeAndRecord(start, end Position) string {
	start = b.clamp(start)
	end = b.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}
	removed := b.removeRange(start, end)
	if removed != "" {
		b.record(action{kind: actRemove, pos: start, text: removed})
	}
	return removed
}

// Insert places text at the cursor and leaves the cursor after it.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	b.record(action{kind: actInsert, pos: b.cursor, text: text})
	b.cursor = b.insertAt(b.cursor, text)
	b.goalCol = -1
}

// InsertRune places a single character at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.Insert(string(r))
}

// NewLine splits the current line at the cursor.
func (b *Buffer) NewLine() {
	b.Insert("\n")
}

// JoinLine joins the current line with the next, removing the line break.
func (b *Buffer) JoinLine() {
	if b.cursor.Line >= len(b.lines)-1 {
		return
	}
	start := Position{Line: b.cursor.Line, Col: len(b.lines[b.cursor.Line])}
	end := Position{Line: b.cursor.Line + 1, Col: 0}
	b.removeAndRecord(start, end)
	b.cursor = start
	b.goalCol = -1
}

// delete removes a range, records it for undo, places the cursor at the
// range start and returns the removed text.
func (b *Buffer) delete(start, end Position) string {
	removed := b.removeAndRecord(start, end)
	b.cursor = b.clamp(minPos(start, end))
	b.goalCol = -1
	return removed
}

// DeleteRuneBack removes the cluster before the cursor, joining lines at a
// line start. Returns the removed text.
func (b *Buffer) DeleteRuneBack() string {
	p := b.prevPos(b.cursor)
	if p.Equals(b.cursor) {
		return ""
	}
	return b.delete(p, b.cursor)
}

// DeleteRuneForward removes the cluster under the cursor, joining lines at
// a line end. Returns the removed text.
func (b *Buffer) DeleteRuneForward() string {
	p := b.nextPos(b.cursor)
	if p.Equals(b.cursor) {
		return ""
	}
	return b.delete(b.cursor, p)
}

// DeleteRange removes the text between two positions and returns it.
func (b *Buffer) DeleteRange(start, end Position) string {
	return b.delete(start, end)
}

// DeleteToLineStart removes from the start of the line to the cursor.
func (b *Buffer) DeleteToLineStart() string {
	return b.delete(Position{Line: b.cursor.Line}, b.cursor)
}

// DeleteToLineEnd removes from the cursor to the end of the line.
func (b *Buffer) DeleteToLineEnd() string {
	end := Position{Line: b.cursor.Line, Col: len(b.lines[b.cursor.Line])}
	return b.delete(b.cursor, end)
}

// DeleteLine removes the entire current line's content and returns it.
// The line itself remains (empty) so the line structure stays stable.
func (b *Buffer) DeleteLine() string {
	start := Position{Line: b.cursor.Line}
	end := Position{Line: b.cursor.Line, Col: len(b.lines[b.cursor.Line])}
	return b.delete(start, end)
}

// DeleteWordBack removes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBack(wc WordClass) string {
	start := b.wordBack(b.cursor, wc)
	return b.delete(start, b.cursor)
}

// DeleteWordForward removes from the cursor to the next word boundary.
func (b *Buffer) DeleteWordForward(wc WordClass) string {
	end := b.wordForward(b.cursor, wc)
	return b.delete(b.cursor, end)
}

// prevPos returns the position one cluster before p, crossing line breaks.
// Returns p unchanged at the buffer start.
func (b *Buffer) prevPos(p Position) Position {
	if p.Col > 0 {
		return Position{Line: p.Line, Col: p.Col - 1}
	}
	if p.Line > 0 {
		return Position{Line: p.Line - 1, Col: len(b.lines[p.Line-1])}
	}
	return p
}

// nextPos returns the position one cluster after p, crossing line breaks.
// Returns p unchanged at the buffer end.
func (b *Buffer) nextPos(p Position) Position {
	if p.Col < len(b.lines[p.Line]) {
		return Position{Line: p.Line, Col: p.Col + 1}
	}
	if p.Line < len(b.lines)-1 {
		return Position{Line: p.Line + 1, Col: 0}
	}
	return p
}

// MoveLeft moves the cursor n clusters left, crossing line breaks.
func (b *Buffer) MoveLeft(n int) {
	for i := 0; i < n; i++ {
		p := b.prevPos(b.cursor)
		if p.Equals(b.cursor) {
			break
		}
		b.cursor = p
	}
	b.goalCol = -1
}

// MoveRight moves the cursor n clusters right, crossing line breaks.
func (b *Buffer) MoveRight(n int) {
	for i := 0; i < n; i++ {
		p := b.nextPos(b.cursor)
		if p.Equals(b.cursor) {
			break
		}
		b.cursor = p
	}
	b.goalCol = -1
}

// MoveUp moves to the previous line, keeping the goal column when the
// target line is shorter. Returns false at the first line.
func (b *Buffer) MoveUp() bool {
	if b.cursor.Line == 0 {
		return false
	}
	if b.goalCol < 0 {
		b.goalCol = b.cursor.Col
	}
	b.cursor.Line--
	b.cursor.Col = min(b.goalCol, len(b.lines[b.cursor.Line]))
	return true
}

// MoveDown moves to the next line, keeping the goal column when the
// target line is shorter. Returns false at the last line.
func (b *Buffer) MoveDown() bool {
	if b.cursor.Line >= len(b.lines)-1 {
		return false
	}
	if b.goalCol < 0 {
		b.goalCol = b.cursor.Col
	}
	b.cursor.Line++
	b.cursor.Col = min(b.goalCol, len(b.lines[b.cursor.Line]))
	return true
}

// MoveLineStart moves to column zero of the current line.
func (b *Buffer) MoveLineStart() {
	b.cursor.Col = 0
	b.goalCol = -1
}

// MoveLineEnd moves past the last cluster of the current line.
func (b *Buffer) MoveLineEnd() {
	b.cursor.Col = len(b.lines[b.cursor.Line])
	b.goalCol = -1
}

// MoveFirstNonBlank moves to the first non-whitespace cluster of the line.
func (b *Buffer) MoveFirstNonBlank() {
	line := b.lines[b.cursor.Line]
	col := 0
	for col < len(line) && classify(line[col], ClassViBig) == classSpace {
		col++
	}
	if col == len(line) {
		col = 0
	}
	b.cursor.Col = col
	b.goalCol = -1
}

// MoveBufferStart moves to the very beginning of the buffer.
func (b *Buffer) MoveBufferStart() {
	b.cursor = Position{}
	b.goalCol = -1
}

// MoveBufferEnd moves past the last cluster of the buffer.
func (b *Buffer) MoveBufferEnd() {
	b.cursor = Position{Line: len(b.lines) - 1, Col: len(b.lines[len(b.lines)-1])}
	b.goalCol = -1
}

// classAt categorizes the cluster at p; line breaks count as whitespace.
func (b *Buffer) classAt(p Position, wc WordClass) charClass {
	line := b.lines[p.Line]
	if p.Col >= len(line) {
		return classSpace
	}
	return classify(line[p.Col], wc)
}

// atStart reports whether p is the first position in the buffer.
func (b *Buffer) atStart(p Position) bool {
	return p.Line == 0 && p.Col == 0
}

// atEnd reports whether p is past the last cluster of the buffer.
func (b *Buffer) atEnd(p Position) bool {
	return p.Line == len(b.lines)-1 && p.Col == len(b.lines[p.Line])
}

// wordForward computes the target of one forward word motion from p.
// Under ClassEmacs this is the end of the next word; under the Vi classes
// it is the start of the next word or punctuation run.
func (b *Buffer) wordForward(p Position, wc WordClass) Position {
	if wc == ClassEmacs {
		for !b.atEnd(p) && b.classAt(p, wc) != classWord {
			p = b.nextPos(p)
		}
		for !b.atEnd(p) && b.classAt(p, wc) == classWord {
			p = b.nextPos(p)
		}
		return p
	}

	cur := b.classAt(p, wc)
	if cur != classSpace {
		for !b.atEnd(p) && b.classAt(p, wc) == cur {
			p = b.nextPos(p)
		}
	}
	for !b.atEnd(p) && b.classAt(p, wc) == classSpace {
		p = b.nextPos(p)
	}
	return p
}

// wordBack computes the target of one backward word motion from p: the
// start of the current or previous word (or run, under the Vi classes).
func (b *Buffer) wordBack(p Position, wc WordClass) Position {
	if wc == ClassEmacs {
		for !b.atStart(p) && b.classAt(b.prevPos(p), wc) != classWord {
			p = b.prevPos(p)
		}
		for !b.atStart(p) && b.classAt(b.prevPos(p), wc) == classWord {
			p = b.prevPos(p)
		}
		return p
	}

	for !b.atStart(p) && b.classAt(b.prevPos(p), wc) == classSpace {
		p = b.prevPos(p)
	}
	if b.atStart(p) {
		return p
	}
	run := b.classAt(b.prevPos(p), wc)
	for !b.atStart(p) && b.classAt(b.prevPos(p), wc) == run {
		p = b.prevPos(p)
	}
	return p
}

// wordEnd computes the target of a Vi end-of-word motion from p: the last
// cluster of the current or next run.
func (b *Buffer) wordEnd(p Position, wc WordClass) Position {
	next := b.nextPos(p)
	if next.Equals(p) {
		return p
	}
	p = next
	for !b.atEnd(p) && b.classAt(p, wc) == classSpace {
		p = b.nextPos(p)
	}
	run := b.classAt(p, wc)
	if run == classSpace {
		return p
	}
	for {
		n := b.nextPos(p)
		if n.Equals(p) || b.classAt(n, wc) != run {
			break
		}
		p = n
	}
	return p
}

// MoveWordForward moves n words forward.
func (b *Buffer) MoveWordForward(wc WordClass, n int) {
	for i := 0; i < n; i++ {
		b.cursor = b.wordForward(b.cursor, wc)
	}
	b.goalCol = -1
}

// MoveWordBack moves n words backward.
func (b *Buffer) MoveWordBack(wc WordClass, n int) {
	for i := 0; i < n; i++ {
		b.cursor = b.wordBack(b.cursor, wc)
	}
	b.goalCol = -1
}

// MoveWordEnd moves to the end of the nth word forward.
func (b *Buffer) MoveWordEnd(wc WordClass, n int) {
	for i := 0; i < n; i++ {
		b.cursor = b.wordEnd(b.cursor, wc)
	}
	b.goalCol = -1
}

// WordForwardPos returns the forward word-motion target without moving.
func (b *Buffer) WordForwardPos(wc WordClass, n int) Position {
	p := b.cursor
	for i := 0; i < n; i++ {
		p = b.wordForward(p, wc)
	}
	return p
}

// WordBackPos returns the backward word-motion target without moving.
func (b *Buffer) WordBackPos(wc WordClass, n int) Position {
	p := b.cursor
	for i := 0; i < n; i++ {
		p = b.wordBack(p, wc)
	}
	return p
}

// WordEndPos returns the end-of-word target without moving.
func (b *Buffer) WordEndPos(wc WordClass, n int) Position {
	p := b.cursor
	for i := 0; i < n; i++ {
		p = b.wordEnd(p, wc)
	}
	return p
}

// TransposeChars swaps the cluster before the cursor with the one under
// it and advances the cursor, matching the usual Ctrl-T behavior. At the
// line end the last two clusters swap instead.
func (b *Buffer) TransposeChars() {
	line := b.lines[b.cursor.Line]
	if len(line) < 2 {
		return
	}
	col := b.cursor.Col
	if col == 0 {
		col = 1
	}
	if col >= len(line) {
		col = len(line) - 1
	}

	b.BeginGroup()
	removed := b.removeAndRecord(Position{Line: b.cursor.Line, Col: col - 1}, Position{Line: b.cursor.Line, Col: col + 1})
	gs := graphemes(removed)
	if len(gs) == 2 {
		b.record(action{kind: actInsert, pos: Position{Line: b.cursor.Line, Col: col - 1}, text: gs[1] + gs[0]})
		b.insertAt(Position{Line: b.cursor.Line, Col: col - 1}, gs[1]+gs[0])
	}
	b.EndGroup()
	b.cursor = b.clamp(Position{Line: b.cursor.Line, Col: col + 1})
	b.goalCol = -1
}

// ToggleCase flips the case of n clusters starting at the cursor and
// advances over them.
func (b *Buffer) ToggleCase(n int) {
	line := b.lines[b.cursor.Line]
	if b.cursor.Col >= len(line) {
		return
	}
	end := min(b.cursor.Col+n, len(line))
	segment := strings.Join(line[b.cursor.Col:end], "")

	flipped := strings.Map(toggleRune, segment)
	if flipped == segment {
		b.cursor = b.clamp(Position{Line: b.cursor.Line, Col: end})
		return
	}

	start := b.cursor
	b.BeginGroup()
	b.removeAndRecord(start, Position{Line: start.Line, Col: end})
	b.record(action{kind: actInsert, pos: start, text: flipped})
	b.insertAt(start, flipped)
	b.EndGroup()
	b.cursor = b.clamp(Position{Line: start.Line, Col: end})
	b.goalCol = -1
}

// toggleRune flips the case of a single rune.
func toggleRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a'
	}
	lower := strings.ToLower(string(r))
	upper := strings.ToUpper(string(r))
	if string(r) == lower && upper != lower {
		return []rune(upper)[0]
	}
	if string(r) == upper && lower != upper {
		return []rune(lower)[0]
	}
	return r
}

// ReplaceRune overwrites n clusters starting at the cursor with copies of
// r, leaving the cursor on the last replacement.
func (b *Buffer) ReplaceRune(r rune, n int) {
	line := b.lines[b.cursor.Line]
	if b.cursor.Col >= len(line) || n <= 0 {
		return
	}
	end := min(b.cursor.Col+n, len(line))
	count := end - b.cursor.Col

	start := b.cursor
	b.BeginGroup()
	b.removeAndRecord(start, Position{Line: start.Line, Col: end})
	text := strings.Repeat(string(r), count)
	b.record(action{kind: actInsert, pos: start, text: text})
	b.insertAt(start, text)
	b.EndGroup()
	b.cursor = b.clamp(Position{Line: start.Line, Col: start.Col + count - 1})
	b.goalCol = -1
}

// FindKind selects the behavior of a find-character motion.
type FindKind uint8

const (
	// FindForward lands on the next occurrence (Vi f).
	FindForward FindKind = iota

	// TillForward lands just before the next occurrence (Vi t).
	TillForward

	// FindBack lands on the previous occurrence (Vi F).
	FindBack

	// TillBack lands just after the previous occurrence (Vi T).
	TillBack
)

// FindCharPos returns the target of the nth find-character motion on the
// current line, or the cursor position and false when no occurrence exists.
func (b *Buffer) FindCharPos(r rune, kind FindKind, n int) (Position, bool) {
	line := b.lines[b.cursor.Line]
	want := string(r)
	col := b.cursor.Col

	switch kind {
	case FindForward, TillForward:
		for i := 0; i < n; i++ {
			found := -1
			for c := col + 1; c < len(line); c++ {
				if line[c] == want {
					found = c
					break
				}
			}
			if found < 0 {
				return b.cursor, false
			}
			col = found
		}
		if kind == TillForward {
			col--
		}
	default:
		for i := 0; i < n; i++ {
			found := -1
			for c := col - 1; c >= 0; c-- {
				if line[c] == want {
					found = c
					break
				}
			}
			if found < 0 {
				return b.cursor, false
			}
			col = found
		}
		if kind == TillBack {
			col++
		}
	}

	return Position{Line: b.cursor.Line, Col: col}, true
}

// MoveToChar performs the nth find-character motion on the current line.
// Returns false and leaves the cursor alone when no occurrence exists.
func (b *Buffer) MoveToChar(r rune, kind FindKind, n int) bool {
	p, ok := b.FindCharPos(r, kind, n)
	if !ok {
		return false
	}
	b.cursor = p
	b.goalCol = -1
	return true
}

// WordUnderCursor returns the word immediately before and under the
// cursor on the current line, along with its start position. Used to seed
// completion. An empty word means the cursor follows whitespace.
func (b *Buffer) WordUnderCursor() (string, Position) {
	line := b.lines[b.cursor.Line]
	start := b.cursor.Col
	for start > 0 && classify(line[start-1], ClassViBig) != classSpace {
		start--
	}
	word := strings.Join(line[start:b.cursor.Col], "")
	return word, Position{Line: b.cursor.Line, Col: start}
}

package buffer

// Position is a cursor location: a line index and a column counted in
// grapheme clusters. Col may equal the line length (cursor past the last
// cluster) but never exceed it.
type Position struct {
	Line int
	Col  int
}

// Before returns true if p is strictly before other in buffer order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Equals returns true if both positions are identical.
func (p Position) Equals(other Position) bool {
	return p.Line == other.Line && p.Col == other.Col
}

// minPos and maxPos order two positions.
func minPos(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

func maxPos(a, b Position) Position {
	if a.Before(b) {
		return b
	}
	return a
}

package buffer

import (
	"testing"

	"pgregory.net/rapid"
)

// applyRandomOp performs one randomly chosen editing operation.
func applyRandomOp(t *rapid.T, b *Buffer) {
	op := rapid.IntRange(0, 13).Draw(t, "op")
	switch op {
	case 0:
		b.Insert(rapid.StringN(0, 8, 32).Draw(t, "text"))
	case 1:
		b.InsertRune(rapid.RuneFrom([]rune("ab 日🙂_./")).Draw(t, "r"))
	case 2:
		b.NewLine()
	case 3:
		b.DeleteRuneBack()
	case 4:
		b.DeleteRuneForward()
	case 5:
		b.DeleteWordBack(WordClass(rapid.IntRange(0, 2).Draw(t, "wc")))
	case 6:
		b.DeleteToLineEnd()
	case 7:
		b.DeleteToLineStart()
	case 8:
		b.MoveLeft(rapid.IntRange(0, 3).Draw(t, "n"))
	case 9:
		b.MoveRight(rapid.IntRange(0, 3).Draw(t, "n"))
	case 10:
		b.MoveUp()
	case 11:
		b.MoveDown()
	case 12:
		b.MoveWordForward(WordClass(rapid.IntRange(0, 2).Draw(t, "wc")), 1)
	case 13:
		b.Undo()
	}
}

// The cursor must satisfy the buffer invariants after any command
// sequence: a valid line index, a column within the line, and at least
// one line present.
func TestCursorBoundsInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New()
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			applyRandomOp(t, b)

			if b.LineCount() < 1 {
				t.Fatalf("buffer lost its last line")
			}
			c := b.Cursor()
			if c.Line < 0 || c.Line >= b.LineCount() {
				t.Fatalf("cursor line %d out of range [0,%d)", c.Line, b.LineCount())
			}
			if c.Col < 0 || c.Col > b.LineLen(c.Line) {
				t.Fatalf("cursor col %d out of range [0,%d]", c.Col, b.LineLen(c.Line))
			}
		}
	})
}

// Moving forward one word then backward one word returns to the starting
// position, provided the start sits on a word-run boundary and the
// forward motion does not hit the buffer end.
func TestWordMotionSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("ab. _x")), 1, 24, -1).Draw(t, "text")
		b := New()
		b.Insert(text)
		b.MoveBufferStart()
		b.MoveWordForward(ClassVi, 1) // normalize onto a run start

		start := b.Cursor()
		if b.atEnd(start) || b.classAt(start, ClassVi) == classSpace {
			t.Skip("no run start reachable")
		}

		b.MoveWordForward(ClassVi, 1)
		if b.atEnd(b.Cursor()) {
			t.Skip("forward motion hit the buffer end")
		}
		b.MoveWordBack(ClassVi, 1)

		if !b.Cursor().Equals(start) {
			t.Fatalf("expected cursor back at %+v, got %+v (text %q)", start, b.Cursor(), text)
		}
	})
}

// Undoing every recorded edit returns the buffer to its empty state.
func TestUndoAllRestoresEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New()
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			applyRandomOp(t, b)
		}
		for b.Undo() {
		}
		if b.Text() != "" {
			t.Fatalf("expected empty buffer after undoing everything, got %q", b.Text())
		}
	})
}

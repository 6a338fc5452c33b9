package buffer

// actionKind discriminates entries in the undo log.
type actionKind uint8

const (
	actInsert actionKind = iota
	actRemove
	actGroupStart
	actGroupEnd
)

// action is one recorded edit. Insert and remove actions carry the start
// position and the affected text (which may contain newlines); group
// markers bracket edits that undo and redo as a unit.
type action struct {
	kind actionKind
	pos  Position
	text string
}

// record appends an action to the undo log and clears the redo stack.
// Nothing is recorded while an undo or redo is replaying.
func (b *Buffer) record(a action) {
	if b.replaying {
		return
	}
	b.actions = append(b.actions, a)
	b.undone = b.undone[:0]
}

// BeginGroup opens an undo group. Edits recorded until the matching
// EndGroup revert as a single Undo step. Groups may nest.
func (b *Buffer) BeginGroup() {
	b.record(action{kind: actGroupStart})
}

// EndGroup closes the innermost undo group. An empty group is dropped.
func (b *Buffer) EndGroup() {
	if b.replaying {
		return
	}
	if n := len(b.actions); n > 0 && b.actions[n-1].kind == actGroupStart {
		b.actions = b.actions[:n-1]
		return
	}
	b.record(action{kind: actGroupEnd})
}

// ResetUndo discards all undo and redo state.
func (b *Buffer) ResetUndo() {
	b.actions = b.actions[:0]
	b.undone = b.undone[:0]
}

// CanUndo returns true if there is at least one edit to revert.
func (b *Buffer) CanUndo() bool {
	return len(b.actions) > 0
}

// Undo reverts the most recent edit, or the most recent group as a unit.
// Returns false if there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.actions) == 0 {
		return false
	}

	b.replaying = true
	defer func() { b.replaying = false }()

	depth := 0
	for len(b.actions) > 0 {
		a := b.actions[len(b.actions)-1]
		b.actions = b.actions[:len(b.actions)-1]
		b.undone = append(b.undone, a)

		switch a.kind {
		case actGroupEnd:
			depth++
		case actGroupStart:
			depth--
		default:
			b.revert(a)
		}
		if depth <= 0 {
			break
		}
	}
	return true
}

// Redo replays the most recently undone edit or group.
// Returns false if there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.undone) == 0 {
		return false
	}

	b.replaying = true
	defer func() { b.replaying = false }()

	depth := 0
	for len(b.undone) > 0 {
		a := b.undone[len(b.undone)-1]
		b.undone = b.undone[:len(b.undone)-1]
		b.actions = append(b.actions, a)

		switch a.kind {
		case actGroupStart:
			depth++
		case actGroupEnd:
			depth--
		default:
			b.apply(a)
		}
		if depth <= 0 {
			break
		}
	}
	return true
}

// revert applies the inverse of a recorded edit.
func (b *Buffer) revert(a action) {
	switch a.kind {
	case actInsert:
		end := b.extent(a.pos, a.text)
		b.removeRange(a.pos, end)
		b.cursor = a.pos
	case actRemove:
		b.cursor = b.insertAt(a.pos, a.text)
	}
}

// apply re-applies a recorded edit during redo.
func (b *Buffer) apply(a action) {
	switch a.kind {
	case actInsert:
		b.cursor = b.insertAt(a.pos, a.text)
	case actRemove:
		end := b.extent(a.pos, a.text)
		b.removeRange(a.pos, end)
		b.cursor = a.pos
	}
}

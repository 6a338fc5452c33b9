package keyline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/keyline/buffer"
	"github.com/dshills/keyline/complete"
	"github.com/dshills/keyline/config"
	"github.com/dshills/keyline/history"
	"github.com/dshills/keyline/key"
	"github.com/dshills/keyline/keymap"
	"github.com/dshills/keyline/term"
)

// Editor reads edited lines from a terminal source. It owns the history,
// the kill ring and the dispatch machine; each ReadLine call runs one
// session over a fresh buffer.
type Editor struct {
	source    term.Source
	renderer  term.Renderer
	hist      *history.History
	completer complete.Completer
	machine   *Machine
	kill      *KillRing
	opts      config.Options

	defaultMode Mode
}

// New creates an editor over a terminal source and renderer.
func New(source term.Source, renderer term.Renderer, opts config.Options) (*Editor, error) {
	if source == nil || renderer == nil {
		return nil, errors.New("keyline: editor needs a terminal source and renderer")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mode := ModeEmacs
	if opts.Mode == config.ModeVi {
		mode = ModeViInsert
	}
	size := opts.HistorySize
	if size <= 0 {
		size = history.DefaultMax
	}

	return &Editor{
		source:      source,
		renderer:    renderer,
		hist:        history.New(size),
		machine:     NewMachine(keymap.NewDefaultRegistry(), mode),
		kill:        NewKillRing(),
		opts:        opts,
		defaultMode: mode,
	}, nil
}

// History returns the editor's history for loading, saving and merging.
func (e *Editor) History() *history.History {
	return e.hist
}

// SetCompleter installs the completion provider. A nil completer makes
// Tab insert a literal tab.
func (e *Editor) SetCompleter(c complete.Completer) {
	e.completer = c
}

// insertMode is the mode a session returns to after search: the default
// mode for Emacs, insert mode for Vi.
func (e *Editor) insertMode() Mode {
	if e.defaultMode == ModeEmacs {
		return ModeEmacs
	}
	return ModeViInsert
}

// ReadLine reads one line. It returns the submitted text, ErrCancelled
// if the user cancelled it, or ErrInputEnded when input is closed or the
// user ended it on an empty line. Submitted lines are pushed to history;
// cancelled and ended reads leave history untouched.
func (e *Editor) ReadLine(prompt string) (string, error) {
	s := &session{
		e:          e,
		prompt:     prompt,
		buf:        buffer.New(),
		candIndex:  -1,
		lastArgIdx: -1,
	}
	e.machine.SetMode(e.defaultMode)
	e.hist.ResetBrowse()

	if err := s.render(); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	for {
		ev, err := e.source.NextKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrInputEnded
			}
			return "", fmt.Errorf("read key: %w", err)
		}

		line, done, err := s.handle(ev)
		if err != nil {
			return "", err
		}
		if done {
			if line != "" {
				e.hist.Push(line)
			}
			return line, nil
		}

		s.refreshSuggestion()
		if err := s.render(); err != nil {
			return "", fmt.Errorf("render: %w", err)
		}
	}
}

// opState is a pending Vi operator awaiting its motion.
type opState struct {
	cmd   string
	count int
}

func (o opState) active() bool { return o.cmd != "" }

// findState remembers the last find-character motion for ";" and ",".
type findState struct {
	r    rune
	kind buffer.FindKind
	ok   bool
}

// insertEntry selects where Vi insert mode places the cursor on entry.
type insertEntry uint8

const (
	insertHere insertEntry = iota
	insertAfter
	insertLineStart
	insertLineEnd
)

// session is the state of one ReadLine call.
type session struct {
	e      *Editor
	prompt string
	buf    *buffer.Buffer

	suggestion string
	hint       string
	lastCmd    string

	// History recall: the live line saved when browsing starts, and the
	// prefix that scopes the walk.
	saved        string
	recallPrefix string

	// Incremental search.
	search    *history.Search
	preSearch string
	preCursor buffer.Position

	// Completion cycling.
	candidates []string
	candIndex  int
	candStart  buffer.Position

	// Yank bookkeeping for Emacs yank-pop.
	yankStart buffer.Position
	yankEnd   buffer.Position

	// Last-argument insertion bookkeeping for M-".".
	lastArgIdx   int
	lastArgStart buffer.Position

	// Vi state.
	pendingOp opState
	lastFind  findState
	groupOpen bool

	// Dot-repeat recording.
	changed         bool
	lastChange      []key.Event
	changeBuf       []key.Event
	opLog           []key.Event
	recordingInsert bool
	replaying       bool
}

// handle processes one key event. It returns the submitted line when the
// session finishes.
func (s *session) handle(ev key.Event) (string, bool, error) {
	// Any key but Tab commits an in-progress completion cycle; the key
	// is then processed normally against the committed text.
	if s.cycling() && !ev.IsTab() {
		s.commitCompletion()
	}

	m := s.e.machine
	modeBefore := m.Mode()
	opActiveBefore := s.pendingOp.active()

	res := m.Feed(ev)
	if res.Kind == ResolvePending {
		return "", false, nil
	}
	log := m.TakeLog()

	s.changed = false
	line, done, err := s.dispatch(modeBefore, res)
	if err != nil || done {
		return line, done, err
	}

	if !s.replaying {
		if s.pendingOp.active() && !opActiveBefore {
			s.opLog = log
		}
		s.recordChange(modeBefore, log)
	}

	if m.Mode() == ModeViNormal && !s.pendingOp.active() {
		s.clampNormal()
	}
	return "", false, nil
}

// recordChange captures the raw keys of the last repeatable change so
// "." can replay them.
func (s *session) recordChange(modeBefore Mode, log []key.Event) {
	if s.recordingInsert {
		if len(s.opLog) > 0 {
			s.changeBuf = append(s.changeBuf, s.opLog...)
			s.opLog = nil
		}
		s.changeBuf = append(s.changeBuf, log...)
		if s.e.machine.Mode() == ModeViNormal {
			s.lastChange = append([]key.Event(nil), s.changeBuf...)
			s.changeBuf = nil
			s.recordingInsert = false
		}
		return
	}

	if !s.changed || modeBefore != ModeViNormal {
		return
	}
	full := log
	if len(s.opLog) > 0 {
		full = append(append([]key.Event(nil), s.opLog...), log...)
		s.opLog = nil
	}
	s.lastChange = append([]key.Event(nil), full...)
}

// dispatch executes one resolved command or unbound key.
func (s *session) dispatch(mode Mode, res Resolution) (string, bool, error) {
	switch res.Kind {
	case ResolveUnbound:
		s.unbound(mode, res.Event)
		return "", false, nil
	case ResolveDrop:
		s.pendingOp = opState{}
		s.opLog = nil
		return "", false, nil
	}

	cmd := res.Command
	n := res.Count
	if n < 1 {
		n = 1
	}
	prev := s.lastCmd
	s.lastCmd = cmd

	if s.pendingOp.active() && mode == ModeViNormal {
		s.applyOperator(cmd, n, res.Arg)
		return "", false, nil
	}

	switch cmd {
	case "cursor.left":
		s.buf.MoveLeft(n)
	case "cursor.right":
		s.buf.MoveRight(n)
	case "cursor.rightOrSuggest":
		if s.suggestion != "" && s.atEnd() {
			s.acceptSuggestion()
		} else {
			s.buf.MoveRight(n)
		}
	case "cursor.lineStart":
		s.buf.MoveLineStart()
	case "cursor.lineEnd":
		s.buf.MoveLineEnd()
	case "cursor.lineEndOrSuggest":
		if s.suggestion != "" && s.atEnd() {
			s.acceptSuggestion()
		} else {
			s.buf.MoveLineEnd()
		}
	case "cursor.firstNonBlank":
		s.buf.MoveFirstNonBlank()
	case "cursor.bufferStart":
		s.buf.MoveBufferStart()
	case "cursor.bufferEnd":
		s.buf.MoveBufferEnd()
	case "cursor.wordBack":
		s.buf.MoveWordBack(buffer.ClassEmacs, n)
	case "cursor.wordForward":
		s.buf.MoveWordForward(buffer.ClassEmacs, n)
	case "cursor.viWordForward":
		s.buf.MoveWordForward(buffer.ClassVi, n)
	case "cursor.viBigWordForward":
		s.buf.MoveWordForward(buffer.ClassViBig, n)
	case "cursor.viWordBack":
		s.buf.MoveWordBack(buffer.ClassVi, n)
	case "cursor.viBigWordBack":
		s.buf.MoveWordBack(buffer.ClassViBig, n)
	case "cursor.viWordEnd":
		s.buf.MoveWordEnd(buffer.ClassVi, n)
	case "cursor.viBigWordEnd":
		s.buf.MoveWordEnd(buffer.ClassViBig, n)

	case "buffer.deleteBack":
		if mode == ModeViNormal {
			s.deleteBackOnLine(n)
			s.changed = true
		} else {
			for i := 0; i < n; i++ {
				s.buf.DeleteRuneBack()
			}
		}
	case "buffer.deleteForward":
		for i := 0; i < n; i++ {
			s.buf.DeleteRuneForward()
		}
	case "buffer.deleteUnder":
		s.pushKill(s.deleteForwardOnLine(n))
		s.changed = true
	case "buffer.transpose":
		s.buf.TransposeChars()
	case "buffer.toggleCase":
		s.buf.ToggleCase(n)
		s.changed = true
	case "buffer.undo":
		for i := 0; i < n; i++ {
			if !s.buf.Undo() {
				break
			}
		}
	case "buffer.redo":
		for i := 0; i < n; i++ {
			if !s.buf.Redo() {
				break
			}
		}
	case "replace.char":
		s.buf.ReplaceRune(res.Arg, n)
		s.changed = true

	case "kill.lineEnd":
		s.pushKill(s.buf.DeleteToLineEnd())
	case "kill.lineStart":
		s.pushKill(s.buf.DeleteToLineStart())
	case "kill.wordBack":
		s.pushKill(s.buf.DeleteWordBack(buffer.ClassEmacs))
	case "kill.wordForward":
		s.pushKill(s.buf.DeleteWordForward(buffer.ClassEmacs))
	case "kill.lineEndVi":
		s.pushKill(s.buf.DeleteToLineEnd())
		s.changed = true
	case "kill.yank":
		if text, ok := s.e.kill.Current(); ok {
			s.yankStart = s.buf.Cursor()
			s.buf.Insert(text)
			s.yankEnd = s.buf.Cursor()
		}
	case "kill.yankPop":
		if prev != "kill.yank" && prev != "kill.yankPop" {
			break
		}
		if text, ok := s.e.kill.Rotate(); ok {
			s.buf.DeleteRange(s.yankStart, s.yankEnd)
			s.buf.Insert(text)
			s.yankEnd = s.buf.Cursor()
		}
	case "kill.pasteAfter":
		s.paste(n, true)
		s.changed = true
	case "kill.pasteBefore":
		s.paste(n, false)
		s.changed = true

	case "change.lineEnd":
		s.openGroup()
		s.pushKill(s.buf.DeleteToLineEnd())
		s.enterInsert(insertHere)
	case "change.char":
		s.openGroup()
		s.pushKill(s.deleteForwardOnLine(n))
		s.enterInsert(insertHere)
	case "change.line":
		s.openGroup()
		s.pushKill(s.buf.DeleteLine())
		s.enterInsert(insertHere)
	case "operator.delete", "operator.change":
		s.pendingOp = opState{cmd: cmd, count: n}

	case "find.char":
		s.findChar(res.Arg, buffer.FindForward, n)
	case "find.charBack":
		s.findChar(res.Arg, buffer.FindBack, n)
	case "find.till":
		s.findChar(res.Arg, buffer.TillForward, n)
	case "find.tillBack":
		s.findChar(res.Arg, buffer.TillBack, n)
	case "find.repeat":
		if s.lastFind.ok {
			s.buf.MoveToChar(s.lastFind.r, s.lastFind.kind, n)
		}
	case "find.repeatReverse":
		if s.lastFind.ok {
			s.buf.MoveToChar(s.lastFind.r, reverseFind(s.lastFind.kind), n)
		}

	case "history.prev":
		if s.buf.Cursor().Line > 0 {
			s.buf.MoveUp()
			break
		}
		s.historyPrev()
	case "history.next":
		if s.buf.Cursor().Line < s.buf.LineCount()-1 {
			s.buf.MoveDown()
			break
		}
		s.historyNext()
	case "history.lastArg":
		s.insertLastArg(prev)

	case "search.start":
		s.startSearch()
	case "search.accept":
		s.endSearch(true)
	case "search.cancel":
		s.endSearch(false)
	case "search.prev":
		s.searchAdvance(history.Reverse)
	case "search.next":
		s.searchAdvance(history.Forward)
	case "search.backspace":
		s.searchBackspace()

	case "mode.viNormal":
		s.leaveInsert()
	case "mode.viInsert":
		s.enterInsert(insertHere)
	case "mode.viInsertAfter":
		s.enterInsert(insertAfter)
	case "mode.viInsertLineStart":
		s.enterInsert(insertLineStart)
	case "mode.viInsertLineEnd":
		s.enterInsert(insertLineEnd)

	case "repeat.last":
		s.repeatLast()

	case "screen.clear":
		s.clearScreen()
	case "complete.next":
		s.completeNext()

	case "session.deleteOrEnd":
		if s.buf.IsEmpty() {
			return "", false, ErrInputEnded
		}
		s.buf.DeleteRuneForward()
	case "session.submit":
		if s.continuation() {
			// The trailing backslash marks continuation; it is not part
			// of the content.
			s.buf.MoveBufferEnd()
			s.buf.DeleteRuneBack()
			s.buf.NewLine()
			break
		}
		return s.buf.Text(), true, nil
	case "session.cancel":
		return "", false, ErrCancelled
	}

	return "", false, nil
}

// unbound handles a key the active keymap does not bind.
func (s *session) unbound(mode Mode, ev key.Event) {
	s.lastCmd = ""
	switch mode {
	case ModeSearch:
		if ev.IsText() {
			s.searchAppend(ev.Rune)
		}
	case ModeViNormal:
		s.pendingOp = opState{}
		s.opLog = nil
	default:
		if ev.IsText() {
			s.buf.InsertRune(ev.Rune)
		}
	}
}

// applyOperator completes a pending Vi operator with a motion, a
// doubled operator for a whole line, or aborts on anything else.
func (s *session) applyOperator(cmd string, n int, arg rune) {
	op := s.pendingOp
	s.pendingOp = opState{}

	if cmd == op.cmd {
		// dd / cc work on the whole line.
		if op.cmd == "operator.change" {
			s.openGroup()
		}
		s.pushKill(s.buf.DeleteLine())
		s.changed = true
		if op.cmd == "operator.change" {
			s.enterInsert(insertHere)
		}
		return
	}

	// "cw" changes to the end of the word, not to the start of the next.
	if op.cmd == "operator.change" {
		switch cmd {
		case "cursor.viWordForward":
			cmd = "cursor.viWordEnd"
		case "cursor.viBigWordForward":
			cmd = "cursor.viBigWordEnd"
		}
	}

	end, ok, inclusive := s.motionTarget(cmd, op.count*n, arg)
	if !ok {
		s.opLog = nil
		return
	}
	if inclusive {
		end.Col++
	}

	if op.cmd == "operator.change" {
		s.openGroup()
	}
	start := s.buf.Cursor()
	s.pushKill(s.buf.DeleteRange(start, end))
	s.changed = true
	if op.cmd == "operator.change" {
		s.enterInsert(insertHere)
	}
}

// motionTarget computes where a motion command would leave the cursor,
// without moving it. Inclusive motions cover the landing character.
func (s *session) motionTarget(cmd string, n int, arg rune) (buffer.Position, bool, bool) {
	start := s.buf.Cursor()
	ok := true
	inclusive := false

	switch cmd {
	case "cursor.left":
		s.buf.MoveLeft(n)
	case "cursor.right":
		s.buf.MoveRight(n)
	case "cursor.lineStart":
		s.buf.MoveLineStart()
	case "cursor.lineEnd":
		s.buf.MoveLineEnd()
	case "cursor.firstNonBlank":
		s.buf.MoveFirstNonBlank()
	case "cursor.viWordForward":
		s.buf.MoveWordForward(buffer.ClassVi, n)
	case "cursor.viBigWordForward":
		s.buf.MoveWordForward(buffer.ClassViBig, n)
	case "cursor.viWordBack":
		s.buf.MoveWordBack(buffer.ClassVi, n)
	case "cursor.viBigWordBack":
		s.buf.MoveWordBack(buffer.ClassViBig, n)
	case "cursor.viWordEnd":
		s.buf.MoveWordEnd(buffer.ClassVi, n)
		inclusive = true
	case "cursor.viBigWordEnd":
		s.buf.MoveWordEnd(buffer.ClassViBig, n)
		inclusive = true
	case "find.char":
		ok = s.findChar(arg, buffer.FindForward, n)
		inclusive = true
	case "find.till":
		ok = s.findChar(arg, buffer.TillForward, n)
		inclusive = true
	case "find.charBack":
		ok = s.findChar(arg, buffer.FindBack, n)
	case "find.tillBack":
		ok = s.findChar(arg, buffer.TillBack, n)
	case "find.repeat":
		ok = s.lastFind.ok && s.buf.MoveToChar(s.lastFind.r, s.lastFind.kind, n)
		inclusive = s.lastFind.kind == buffer.FindForward || s.lastFind.kind == buffer.TillForward
	case "find.repeatReverse":
		kind := reverseFind(s.lastFind.kind)
		ok = s.lastFind.ok && s.buf.MoveToChar(s.lastFind.r, kind, n)
		inclusive = kind == buffer.FindForward || kind == buffer.TillForward
	default:
		return start, false, false
	}

	end := s.buf.Cursor()
	s.buf.SetCursor(start)
	return end, ok, inclusive
}

// findChar performs a find-character motion and remembers it for ";".
func (s *session) findChar(r rune, kind buffer.FindKind, n int) bool {
	s.lastFind = findState{r: r, kind: kind, ok: true}
	return s.buf.MoveToChar(r, kind, n)
}

func reverseFind(kind buffer.FindKind) buffer.FindKind {
	switch kind {
	case buffer.FindForward:
		return buffer.FindBack
	case buffer.FindBack:
		return buffer.FindForward
	case buffer.TillForward:
		return buffer.TillBack
	default:
		return buffer.TillForward
	}
}

// enterInsert switches to Vi insert mode, positioning the cursor per the
// entry command. Edits until the matching Escape undo as one step.
func (s *session) enterInsert(at insertEntry) {
	cur := s.buf.Cursor()
	switch at {
	case insertAfter:
		if s.buf.LineLen(cur.Line) > 0 {
			s.buf.SetCursor(buffer.Position{Line: cur.Line, Col: cur.Col + 1})
		}
	case insertLineStart:
		s.buf.MoveFirstNonBlank()
	case insertLineEnd:
		s.buf.MoveLineEnd()
	}
	s.openGroup()
	s.e.machine.SetMode(ModeViInsert)
	if !s.replaying {
		s.recordingInsert = true
	}
}

// leaveInsert returns to Vi normal mode, closing the undo group and
// pulling the cursor back onto the last character.
func (s *session) leaveInsert() {
	s.closeGroup()
	s.e.machine.SetMode(ModeViNormal)
	cur := s.buf.Cursor()
	if cur.Col > 0 {
		s.buf.SetCursor(buffer.Position{Line: cur.Line, Col: cur.Col - 1})
	}
}

func (s *session) openGroup() {
	if !s.groupOpen {
		s.buf.BeginGroup()
		s.groupOpen = true
	}
}

func (s *session) closeGroup() {
	if s.groupOpen {
		s.buf.EndGroup()
		s.groupOpen = false
	}
}

// clampNormal keeps the normal-mode cursor on a character rather than
// past the end of the line.
func (s *session) clampNormal() {
	cur := s.buf.Cursor()
	if l := s.buf.LineLen(cur.Line); l > 0 && cur.Col >= l {
		s.buf.SetCursor(buffer.Position{Line: cur.Line, Col: l - 1})
	}
}

// deleteForwardOnLine removes up to n clusters after the cursor without
// crossing the line end. Returns the removed text.
func (s *session) deleteForwardOnLine(n int) string {
	cur := s.buf.Cursor()
	end := cur.Col + n
	if l := s.buf.LineLen(cur.Line); end > l {
		end = l
	}
	if end == cur.Col {
		return ""
	}
	return s.buf.DeleteRange(cur, buffer.Position{Line: cur.Line, Col: end})
}

// deleteBackOnLine removes up to n clusters before the cursor without
// crossing the line start.
func (s *session) deleteBackOnLine(n int) string {
	cur := s.buf.Cursor()
	start := cur.Col - n
	if start < 0 {
		start = 0
	}
	if start == cur.Col {
		return ""
	}
	return s.buf.DeleteRange(buffer.Position{Line: cur.Line, Col: start}, cur)
}

// paste inserts the newest kill n times, after or before the cursor.
func (s *session) paste(n int, after bool) {
	text, ok := s.e.kill.Current()
	if !ok || text == "" {
		return
	}
	cur := s.buf.Cursor()
	if after && s.buf.LineLen(cur.Line) > 0 {
		s.buf.SetCursor(buffer.Position{Line: cur.Line, Col: cur.Col + 1})
	}
	s.buf.Insert(strings.Repeat(text, n))
	s.buf.MoveLeft(1)
}

func (s *session) pushKill(text string) {
	if text != "" {
		s.e.kill.Push(text)
	}
}

// historyPrev starts or continues the backward history walk, scoped to
// the line that was live when browsing began.
func (s *session) historyPrev() {
	h := s.e.hist
	if !h.Browsing() {
		s.saved = s.buf.Text()
		s.recallPrefix = s.saved
	}
	if entry, ok := h.Prev(s.recallPrefix); ok {
		s.buf.Set(entry)
	}
}

// historyNext walks toward newer entries; stepping past the newest match
// restores the saved live line.
func (s *session) historyNext() {
	h := s.e.hist
	if !h.Browsing() {
		return
	}
	if entry, ok := h.Next(s.recallPrefix); ok {
		s.buf.Set(entry)
	} else if !h.Browsing() {
		s.buf.Set(s.saved)
	}
}

// insertLastArg inserts the last word of a previous history entry;
// repeated presses walk toward older entries, replacing the insertion.
func (s *session) insertLastArg(prev string) {
	h := s.e.hist
	if h.Len() == 0 {
		return
	}
	if prev == "history.lastArg" && s.lastArgIdx >= 0 {
		s.buf.DeleteRange(s.lastArgStart, s.buf.Cursor())
		if s.lastArgIdx > 0 {
			s.lastArgIdx--
		}
	} else {
		s.lastArgIdx = h.Len() - 1
	}

	s.lastArgStart = s.buf.Cursor()
	fields := strings.Fields(h.At(s.lastArgIdx))
	if len(fields) > 0 {
		s.buf.Insert(fields[len(fields)-1])
	}
}

// startSearch enters incremental reverse search, saving the live line.
func (s *session) startSearch() {
	s.search = history.NewSearch(s.e.hist)
	s.preSearch = s.buf.Text()
	s.preCursor = s.buf.Cursor()
	s.e.machine.SetMode(ModeSearch)
}

func (s *session) searchAppend(r rune) {
	s.search.SetQuery(s.search.Query() + string(r))
	s.showMatch()
}

func (s *session) searchBackspace() {
	q := []rune(s.search.Query())
	if len(q) == 0 {
		return
	}
	s.search.SetQuery(string(q[:len(q)-1]))
	s.showMatch()
}

func (s *session) searchAdvance(dir history.Direction) {
	s.search.Advance(dir)
	s.showMatch()
}

// showMatch mirrors the current match into the buffer. With an empty
// query the saved line comes back; a failing query keeps the last match.
func (s *session) showMatch() {
	if entry, _, ok := s.search.Match(); ok {
		s.buf.Set(entry)
		return
	}
	if s.search.Query() == "" {
		s.buf.Set(s.preSearch)
		s.buf.SetCursor(s.preCursor)
	}
}

// endSearch leaves search mode. Accepting keeps the matched text in the
// buffer; cancelling restores the line as it was before the search.
func (s *session) endSearch(accept bool) {
	if !accept {
		s.buf.Set(s.preSearch)
		s.buf.SetCursor(s.preCursor)
	}
	s.search = nil
	s.e.machine.SetMode(s.e.insertMode())
}

// searchPrompt renders the search status line shown instead of the
// prompt while searching.
func (s *session) searchPrompt() string {
	if s.search == nil {
		return ""
	}
	name := "reverse-i-search"
	if s.search.Direction() == history.Forward {
		name = "i-search"
	}
	failing := ""
	if _, _, ok := s.search.Match(); !ok && s.search.Query() != "" {
		failing = "failing "
	}
	return "(" + failing + name + ")`" + s.search.Query() + "`: "
}

func (s *session) cycling() bool {
	return len(s.candidates) > 0
}

// commitCompletion ends candidate cycling, keeping the buffer text.
func (s *session) commitCompletion() {
	s.candidates = nil
	s.candIndex = -1
	s.hint = ""
}

// completeNext runs the completion provider on the word before the
// cursor, or steps to the next candidate while cycling.
func (s *session) completeNext() {
	if s.cycling() {
		s.candIndex = (s.candIndex + 1) % len(s.candidates)
		s.spliceCandidate(s.candidates[s.candIndex])
		return
	}
	if s.e.completer == nil {
		s.buf.InsertRune('\t')
		return
	}

	word, start := s.buf.WordUnderCursor()
	candidates := s.e.completer.Complete(word)
	switch len(candidates) {
	case 0:
	case 1:
		s.candStart = start
		s.spliceCandidate(candidates[0])
	default:
		s.candStart = start
		s.candidates = candidates
		s.candIndex = -1
		if cp := complete.CommonPrefix(candidates); len(cp) > len(word) {
			s.spliceCandidate(cp)
		}
		s.hint = strings.Join(candidates, "  ")
	}
}

// spliceCandidate replaces the word being completed with text.
func (s *session) spliceCandidate(text string) {
	s.buf.DeleteRange(s.candStart, s.buf.Cursor())
	s.buf.Insert(text)
}

// repeatLast replays the recorded keys of the last change.
func (s *session) repeatLast() {
	if s.replaying || len(s.lastChange) == 0 {
		return
	}
	events := append([]key.Event(nil), s.lastChange...)
	s.replaying = true
	defer func() { s.replaying = false }()
	for _, ev := range events {
		s.handle(ev)
	}
}

// clearScreen asks the renderer to repaint from the top, when it can.
func (s *session) clearScreen() {
	if c, ok := s.e.renderer.(interface{ ClearScreen() }); ok {
		c.ClearScreen()
	}
}

// continuation reports whether the line asks to continue: the buffer
// ends with a backslash, so Enter breaks the line instead of submitting.
func (s *session) continuation() bool {
	last := s.buf.Line(s.buf.LineCount() - 1)
	return strings.HasSuffix(last, "\\")
}

// atEnd reports whether the cursor sits at the very end of the buffer.
func (s *session) atEnd() bool {
	cur := s.buf.Cursor()
	return cur.Line == s.buf.LineCount()-1 && cur.Col == s.buf.LineLen(cur.Line)
}

// refreshSuggestion recomputes the dimmed history suggestion for the
// current content.
func (s *session) refreshSuggestion() {
	s.suggestion = ""
	if !s.e.opts.Autosuggest || s.e.machine.Mode() == ModeSearch {
		return
	}
	text := s.buf.Text()
	if text == "" {
		return
	}
	if entry, ok := s.e.hist.Suggest(text); ok && len(entry) > len(text) {
		s.suggestion = entry[len(text):]
	}
}

// acceptSuggestion turns the suggestion into buffer content.
func (s *session) acceptSuggestion() {
	s.buf.MoveBufferEnd()
	s.buf.Insert(s.suggestion)
	s.suggestion = ""
}

func (s *session) render() error {
	cur := s.buf.Cursor()
	return s.e.renderer.Render(term.State{
		Prompt:       s.prompt,
		Lines:        s.buf.Lines(),
		Cursor:       term.Point{Line: cur.Line, Col: cur.Col},
		Suggestion:   s.suggestion,
		SearchPrompt: s.searchPrompt(),
		Hint:         s.hint,
	})
}

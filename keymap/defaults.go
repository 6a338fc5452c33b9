package keymap

// Default keymaps. Rebinding at runtime is deliberately unsupported;
// these tables are the fixed vocabulary of each mode.

// mustKeymap builds a keymap from a binding table, panicking on a bad
// spec. The tables below are compile-time constants in spirit.
func mustKeymap(name string, bindings []Binding) *Keymap {
	k := NewKeymap(name)
	if err := k.BindAll(bindings); err != nil {
		panic("default keymap " + name + ": " + err.Error())
	}
	return k
}

// EmacsKeymap returns the default Emacs-style keymap.
func EmacsKeymap() *Keymap {
	return mustKeymap(ModeEmacs, []Binding{
		{Keys: "<C-a>", Command: "cursor.lineStart", Description: "Move to line start"},
		{Keys: "<Home>", Command: "cursor.lineStart", Description: "Move to line start"},
		{Keys: "<C-e>", Command: "cursor.lineEndOrSuggest", Description: "Move to line end, or accept the suggestion"},
		{Keys: "<End>", Command: "cursor.lineEndOrSuggest", Description: "Move to line end, or accept the suggestion"},
		{Keys: "<C-b>", Command: "cursor.left", Description: "Move left"},
		{Keys: "<Left>", Command: "cursor.left", Description: "Move left"},
		{Keys: "<C-f>", Command: "cursor.rightOrSuggest", Description: "Move right, or accept the suggestion"},
		{Keys: "<Right>", Command: "cursor.rightOrSuggest", Description: "Move right, or accept the suggestion"},
		{Keys: "<A-b>", Command: "cursor.wordBack", Description: "Move back one word"},
		{Keys: "<A-f>", Command: "cursor.wordForward", Description: "Move forward one word"},
		{Keys: "<A-lt>", Command: "cursor.bufferStart", Description: "Move to buffer start"},
		{Keys: "<A-gt>", Command: "cursor.bufferEnd", Description: "Move to buffer end"},
		{Keys: "<BS>", Command: "buffer.deleteBack", Description: "Delete the previous character"},
		{Keys: "<C-h>", Command: "buffer.deleteBack", Description: "Delete the previous character"},
		{Keys: "<Del>", Command: "buffer.deleteForward", Description: "Delete the character under the cursor"},
		{Keys: "<C-d>", Command: "session.deleteOrEnd", Description: "Delete forward; on an empty line, end input"},
		{Keys: "<C-k>", Command: "kill.lineEnd", Description: "Kill to line end"},
		{Keys: "<C-u>", Command: "kill.lineStart", Description: "Kill to line start"},
		{Keys: "<C-w>", Command: "kill.wordBack", Description: "Kill the previous word"},
		{Keys: "<A-BS>", Command: "kill.wordBack", Description: "Kill the previous word"},
		{Keys: "<A-d>", Command: "kill.wordForward", Description: "Kill the next word"},
		{Keys: "<C-t>", Command: "buffer.transpose", Description: "Transpose characters"},
		{Keys: "<C-y>", Command: "kill.yank", Description: "Yank the last kill"},
		{Keys: "<A-y>", Command: "kill.yankPop", Description: "Rotate the kill ring after a yank"},
		{Keys: "<C-p>", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "<Up>", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "<C-n>", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "<Down>", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "<A-.>", Command: "history.lastArg", Description: "Insert the last word of the previous entry"},
		{Keys: "<C-r>", Command: "search.start", Description: "Incremental reverse search"},
		{Keys: "<C-l>", Command: "screen.clear", Description: "Clear the screen and redraw"},
		{Keys: "<C-_>", Command: "buffer.undo", Description: "Undo the last edit"},
		{Keys: "<C-x><C-u>", Command: "buffer.undo", Description: "Undo the last edit"},
		{Keys: "<Tab>", Command: "complete.next", Description: "Complete the word under the cursor"},
		{Keys: "<CR>", Command: "session.submit", Description: "Submit the line"},
		{Keys: "<C-j>", Command: "session.submit", Description: "Submit the line"},
		{Keys: "<C-c>", Command: "session.cancel", Description: "Cancel the line"},
	})
}

// ViInsertKeymap returns the default Vi insert-mode keymap. Unbound
// printable keys insert themselves.
func ViInsertKeymap() *Keymap {
	return mustKeymap(ModeViInsert, []Binding{
		{Keys: "<Esc>", Command: "mode.viNormal", Description: "Enter normal mode"},
		{Keys: "<Left>", Command: "cursor.left", Description: "Move left"},
		{Keys: "<Right>", Command: "cursor.rightOrSuggest", Description: "Move right, or accept the suggestion"},
		{Keys: "<Home>", Command: "cursor.lineStart", Description: "Move to line start"},
		{Keys: "<End>", Command: "cursor.lineEndOrSuggest", Description: "Move to line end, or accept the suggestion"},
		{Keys: "<C-a>", Command: "cursor.lineStart", Description: "Move to line start"},
		{Keys: "<C-e>", Command: "cursor.lineEndOrSuggest", Description: "Move to line end, or accept the suggestion"},
		{Keys: "<BS>", Command: "buffer.deleteBack", Description: "Delete the previous character"},
		{Keys: "<C-h>", Command: "buffer.deleteBack", Description: "Delete the previous character"},
		{Keys: "<Del>", Command: "buffer.deleteForward", Description: "Delete the character under the cursor"},
		{Keys: "<C-d>", Command: "session.deleteOrEnd", Description: "Delete forward; on an empty line, end input"},
		{Keys: "<C-w>", Command: "kill.wordBack", Description: "Kill the previous word"},
		{Keys: "<C-u>", Command: "kill.lineStart", Description: "Kill to line start"},
		{Keys: "<Up>", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "<Down>", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "<C-r>", Command: "search.start", Description: "Incremental reverse search"},
		{Keys: "<C-l>", Command: "screen.clear", Description: "Clear the screen and redraw"},
		{Keys: "<Tab>", Command: "complete.next", Description: "Complete the word under the cursor"},
		{Keys: "<CR>", Command: "session.submit", Description: "Submit the line"},
		{Keys: "<C-c>", Command: "session.cancel", Description: "Cancel the line"},
	})
}

// ViNormalKeymap returns the default Vi normal-mode keymap. Counts,
// operator composition and the find-character pending state are layered
// on top by the dispatch machine; the keymap sees single commands.
func ViNormalKeymap() *Keymap {
	return mustKeymap(ModeViNormal, []Binding{
		{Keys: "h", Command: "cursor.left", Description: "Move left"},
		{Keys: "<Left>", Command: "cursor.left", Description: "Move left"},
		{Keys: "l", Command: "cursor.right", Description: "Move right"},
		{Keys: "<Right>", Command: "cursor.right", Description: "Move right"},
		{Keys: "<Space>", Command: "cursor.right", Description: "Move right"},
		{Keys: "0", Command: "cursor.lineStart", Description: "Move to line start"},
		{Keys: "$", Command: "cursor.lineEnd", Description: "Move to line end"},
		{Keys: "^", Command: "cursor.firstNonBlank", Description: "Move to the first non-blank"},
		{Keys: "w", Command: "cursor.viWordForward", Description: "Next word"},
		{Keys: "W", Command: "cursor.viBigWordForward", Description: "Next WORD"},
		{Keys: "b", Command: "cursor.viWordBack", Description: "Previous word"},
		{Keys: "B", Command: "cursor.viBigWordBack", Description: "Previous WORD"},
		{Keys: "e", Command: "cursor.viWordEnd", Description: "End of word"},
		{Keys: "E", Command: "cursor.viBigWordEnd", Description: "End of WORD"},
		{Keys: "i", Command: "mode.viInsert", Description: "Insert before the cursor"},
		{Keys: "I", Command: "mode.viInsertLineStart", Description: "Insert at line start"},
		{Keys: "a", Command: "mode.viInsertAfter", Description: "Insert after the cursor"},
		{Keys: "A", Command: "mode.viInsertLineEnd", Description: "Insert at line end"},
		{Keys: "x", Command: "buffer.deleteUnder", Description: "Delete the character under the cursor"},
		{Keys: "X", Command: "buffer.deleteBack", Description: "Delete the previous character"},
		{Keys: "D", Command: "kill.lineEndVi", Description: "Delete to line end"},
		{Keys: "C", Command: "change.lineEnd", Description: "Change to line end"},
		{Keys: "s", Command: "change.char", Description: "Substitute the character under the cursor"},
		{Keys: "S", Command: "change.line", Description: "Change the whole line"},
		{Keys: "r", Command: "replace.char", Description: "Replace the character under the cursor"},
		{Keys: "~", Command: "buffer.toggleCase", Description: "Toggle case and advance"},
		{Keys: "d", Command: "operator.delete", Description: "Delete over the next motion"},
		{Keys: "c", Command: "operator.change", Description: "Change over the next motion"},
		{Keys: "p", Command: "kill.pasteAfter", Description: "Paste after the cursor"},
		{Keys: "P", Command: "kill.pasteBefore", Description: "Paste before the cursor"},
		{Keys: "u", Command: "buffer.undo", Description: "Undo"},
		{Keys: "<C-r>", Command: "buffer.redo", Description: "Redo"},
		{Keys: ".", Command: "repeat.last", Description: "Repeat the last change"},
		{Keys: "f", Command: "find.char", Description: "Find the next occurrence of a character"},
		{Keys: "F", Command: "find.charBack", Description: "Find the previous occurrence of a character"},
		{Keys: "t", Command: "find.till", Description: "Move just before the next occurrence"},
		{Keys: "T", Command: "find.tillBack", Description: "Move just after the previous occurrence"},
		{Keys: ";", Command: "find.repeat", Description: "Repeat the last find"},
		{Keys: ",", Command: "find.repeatReverse", Description: "Repeat the last find, reversed"},
		{Keys: "k", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "-", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "<Up>", Command: "history.prev", Description: "Recall the previous matching entry"},
		{Keys: "j", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "+", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "<Down>", Command: "history.next", Description: "Recall the next matching entry"},
		{Keys: "/", Command: "search.start", Description: "Incremental reverse search"},
		{Keys: "<C-l>", Command: "screen.clear", Description: "Clear the screen and redraw"},
		{Keys: "<CR>", Command: "session.submit", Description: "Submit the line"},
		{Keys: "<C-c>", Command: "session.cancel", Description: "Cancel the line"},
		{Keys: "<C-d>", Command: "session.deleteOrEnd", Description: "Delete forward; on an empty line, end input"},
	})
}

// SearchKeymap returns the keymap active during incremental search.
// Unbound printable keys extend the query.
func SearchKeymap() *Keymap {
	return mustKeymap(ModeSearch, []Binding{
		{Keys: "<CR>", Command: "search.accept", Description: "Accept the match"},
		{Keys: "<Esc>", Command: "search.cancel", Description: "Cancel the search"},
		{Keys: "<C-c>", Command: "search.cancel", Description: "Cancel the search"},
		{Keys: "<C-g>", Command: "search.cancel", Description: "Cancel the search"},
		{Keys: "<C-r>", Command: "search.prev", Description: "Step to an older match"},
		{Keys: "<C-s>", Command: "search.next", Description: "Step to a newer match"},
		{Keys: "<BS>", Command: "search.backspace", Description: "Shrink the query"},
		{Keys: "<C-h>", Command: "search.backspace", Description: "Shrink the query"},
	})
}

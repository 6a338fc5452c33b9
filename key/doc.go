// Package key defines decoded keyboard events and the specification
// language used to name them in keymaps.
//
// An Event is one decoded key press: a character rune, possibly with Ctrl
// or Alt held, or a special key such as Enter or an arrow. A Sequence is an
// ordered series of events, the unit a keymap binds to a command.
//
// Specifications use a compact angle notation: "a" is the letter a,
// "<C-r>" is Ctrl-R, "<A-b>" is Alt-B (or ESC b), "<CR>" is Enter and
// "<Up>" is the up arrow. Multi-key sequences concatenate: "dd", "<C-x><C-u>".
package key

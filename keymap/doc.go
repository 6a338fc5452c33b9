// Package keymap maps key sequences to editing commands, one keymap per
// mode, resolved through a prefix tree.
//
// Resolution is three-way: a sequence is either bound to a command
// (exact), a valid prefix of at least one longer binding (more keys are
// awaited), or unknown (the collected prefix is discarded). Default
// keymaps for the Emacs, Vi and search modes are built in code;
// rebinding at runtime is intentionally not supported.
package keymap

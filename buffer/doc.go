// Package buffer implements the editable multi-line text buffer at the
// heart of a line-editing session.
//
// Content is stored per line as grapheme clusters, so cursor columns count
// user-perceived characters and an edit can never split a combining
// sequence or an emoji. The buffer keeps an undo log with explicit group
// boundaries: edits bracketed by BeginGroup/EndGroup revert as one step,
// which is how a whole insert-mode excursion undoes at once.
//
// Every operation clamps at buffer boundaries; out-of-range deletions and
// motions are defined no-ops, never errors.
package buffer

// Package term defines the two collaborator contracts a session talks
// to: a Source that delivers one decoded key event per call and a
// Renderer that redraws the full display state.
//
// The Tcell type implements both on a tcell screen and is the stock
// terminal backend; the pure layout functions map logical cursor
// positions to screen cells, accounting for wrapping, tabs and
// double-width characters.
package term

// Package keyline is an embeddable line editor for terminal programs.
//
// An Editor reads lines through a term.Source and paints them through a
// term.Renderer; the tcell backend in the term package implements both.
// Editing follows either Emacs or Vi conventions, with incremental
// reverse history search, history-based autosuggestions, prefix-scoped
// recall, a kill ring and pluggable word completion.
//
//	src, _ := term.NewTcell()
//	ed, _ := keyline.New(src, src, config.Defaults())
//	line, err := ed.ReadLine("> ")
//
// ReadLine returns the submitted text, ErrCancelled when the user
// abandons the line, or ErrInputEnded when input closes.
package keyline

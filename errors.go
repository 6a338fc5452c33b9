package keyline

import "errors"

// Results a ReadLine call can surface besides an accepted line.
var (
	// ErrInputEnded reports that the input stream closed: the terminal
	// source returned end-of-input, or the user pressed Ctrl-D on an
	// empty line. Distinct from submitting an empty line.
	ErrInputEnded = errors.New("keyline: input ended")

	// ErrCancelled reports that the user cancelled the line. The buffer
	// content is discarded and history is not touched.
	ErrCancelled = errors.New("keyline: cancelled")
)

// Package history stores the lines a user has accepted and answers the
// three questions a line editor asks of them: what came before this
// prefix (Up/Down recall), what matches this substring (incremental
// reverse search), and what is the user probably typing (autosuggestion).
//
// The log is deduplicated: pushing a line that exists elsewhere in the
// log moves it to the newest position, and pushing the newest line again
// is a no-op. Persistence is a newline-delimited file with escaped
// newlines; Load, Save and the fsnotify-backed Watcher let applications
// share one history file across processes.
package history

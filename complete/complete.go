// Package complete defines the completion capability a line editor
// invokes on Tab, plus two ready-made completers: a static word list and
// a filesystem path completer.
package complete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Completer produces candidate completions for the word under the
// cursor. An empty slice means no completions; candidates are offered in
// the returned order.
type Completer interface {
	Complete(word string) []string
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(word string) []string

// Complete calls f.
func (f CompleterFunc) Complete(word string) []string {
	return f(word)
}

// Words is a static word-list completer. Candidates are the words
// starting with the queried prefix, in list order.
type Words []string

// Complete returns the words starting with word.
func (w Words) Complete(word string) []string {
	var out []string
	for _, c := range w {
		if strings.HasPrefix(c, word) {
			out = append(out, c)
		}
	}
	return out
}

// Filenames completes the last path segment of the word against the
// containing directory, appending a separator to directories. The zero
// value completes relative to the current directory.
type Filenames struct {
	// ShowHidden includes dot files even when the typed segment does
	// not start with a dot.
	ShowHidden bool
}

// Complete returns matching paths for the given partial path.
func (f Filenames) Complete(word string) []string {
	dir, partial := filepath.Split(word)

	readFrom := dir
	if readFrom == "" {
		readFrom = "."
	}
	items, err := os.ReadDir(readFrom)
	if err != nil {
		return nil
	}

	var out []string
	for _, item := range items {
		name := item.Name()
		if !strings.HasPrefix(name, partial) {
			continue
		}
		if !f.ShowHidden && strings.HasPrefix(name, ".") && !strings.HasPrefix(partial, ".") {
			continue
		}
		candidate := dir + name
		if item.IsDir() {
			candidate += string(filepath.Separator)
		}
		out = append(out, candidate)
	}
	sort.Strings(out)
	return out
}

// CommonPrefix returns the longest prefix shared by all candidates.
// Returns "" for an empty candidate set.
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

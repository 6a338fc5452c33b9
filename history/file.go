package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The on-disk format is one entry per line. Multi-line entries escape
// backslashes and newlines so the file stays newline-delimited.

// escape encodes an entry for storage.
func escape(entry string) string {
	entry = strings.ReplaceAll(entry, `\`, `\\`)
	return strings.ReplaceAll(entry, "\n", `\n`)
}

// unescape decodes a stored line back into an entry.
func unescape(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) {
			i++
			switch line[i] {
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(line[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Load reads a history file into an entry slice, oldest first.
// A missing file yields an empty slice and no error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			entries = append(entries, unescape(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return entries, nil
}

// Save writes entries to a history file, replacing it atomically via a
// temporary file in the same directory. The file is created with mode
// 0600 since history frequently contains sensitive arguments.
func Save(path string, entries []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod history file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		if _, err := w.WriteString(escape(e) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write history file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

// LoadInto reads a history file and replaces h's entries.
func LoadInto(h *History, path string) error {
	entries, err := Load(path)
	if err != nil {
		return err
	}
	h.SetEntries(entries)
	return nil
}

// MergeInto reads a history file and pushes its entries into h in order,
// keeping entries already present. Used when another process appended to
// a shared history file.
func MergeInto(h *History, path string) error {
	entries, err := Load(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		h.Push(e)
	}
	return nil
}

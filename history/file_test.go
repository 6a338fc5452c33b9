package history

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	entries := []string{"ls -la", "echo 'hi'", "line one\nline two", `back\slash`}

	if err := Save(path, entries); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i, want := range entries {
		if got[i] != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, got[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("expected missing file to load empty, got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 entries, got %d", len(got))
	}
}

func TestSaveFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "history")
	if err := Save(path, []string{"secret --token=abc"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat returned error: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("expected mode 0600, got %o", got)
	}
}

func TestMergeInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := Save(path, []string{"shared", "ls"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	h := New(0)
	h.Push("local")
	h.Push("ls")
	if err := MergeInto(h, path); err != nil {
		t.Fatalf("MergeInto returned error: %v", err)
	}

	want := []string{"local", "shared", "ls"}
	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	cases := []string{"plain", "with\nnewline", `with\backslash`, `mix\n\\literal`, ""}
	for _, c := range cases {
		if got := unescape(escape(c)); got != c {
			t.Errorf("round trip of %q: got %q", c, got)
		}
	}
}

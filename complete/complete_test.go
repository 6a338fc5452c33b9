package complete

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWordsComplete(t *testing.T) {
	w := Words{"git", "grep", "go", "cat"}

	got := w.Complete("g")
	want := []string{"git", "grep", "go"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if got := w.Complete("zzz"); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"empty", nil, ""},
		{"single", []string{"hello"}, "hello"},
		{"shared", []string{"foobar", "foobaz"}, "fooba"},
		{"none shared", []string{"abc", "xyz"}, ""},
		{"one is prefix", []string{"go", "gofmt"}, "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonPrefix(tt.candidates); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFilenamesComplete(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "alps", "beta"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "alcove"), 0o755); err != nil {
		t.Fatal(err)
	}

	f := Filenames{}
	got := f.Complete(filepath.Join(dir, "al"))

	want := []string{
		filepath.Join(dir, "alcove") + string(filepath.Separator),
		filepath.Join(dir, "alpha.txt"),
		filepath.Join(dir, "alps"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilenamesHidesDotFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	f := Filenames{}
	if got := f.Complete(dir + string(filepath.Separator)); len(got) != 0 {
		t.Errorf("expected dot files hidden, got %v", got)
	}

	f.ShowHidden = true
	if got := f.Complete(dir + string(filepath.Separator)); len(got) != 1 {
		t.Errorf("expected dot file shown, got %v", got)
	}

	// A typed dot always shows dot files.
	f.ShowHidden = false
	if got := (Filenames{}).Complete(filepath.Join(dir, ".h")); len(got) != 1 {
		t.Errorf("expected dot-prefixed query to match, got %v", got)
	}
}

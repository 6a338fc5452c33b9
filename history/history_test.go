package history

import (
	"testing"
)

func TestPushDeduplicates(t *testing.T) {
	h := New(0)

	if !h.Push("ls") {
		t.Error("expected first push to change the log")
	}
	if h.Push("ls") {
		t.Error("expected duplicate push to be a no-op")
	}
	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}

	h.Push("cd /tmp")
	if h.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", h.Len())
	}
}

func TestPushMovesOlderDuplicate(t *testing.T) {
	h := New(0)
	h.Push("one")
	h.Push("two")
	h.Push("one")

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	if got := h.At(0); got != "two" {
		t.Errorf("expected oldest %q, got %q", "two", got)
	}
	if got, _ := h.Newest(); got != "one" {
		t.Errorf("expected newest %q, got %q", "one", got)
	}
}

func TestPushIgnoresEmpty(t *testing.T) {
	h := New(0)
	if h.Push("") {
		t.Error("expected empty push to be a no-op")
	}
	if h.Len() != 0 {
		t.Errorf("expected 0 entries, got %d", h.Len())
	}
}

func TestPushEnforcesBound(t *testing.T) {
	h := New(3)
	for _, e := range []string{"a", "b", "c", "d"} {
		h.Push(e)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	if got := h.At(0); got != "b" {
		t.Errorf("expected oldest %q, got %q", "b", got)
	}
}

func TestPrefixScopedRecall(t *testing.T) {
	h := New(0)
	h.Push("cd /tmp")
	h.Push("ls -la")
	h.Push("cd /home")

	got, ok := h.Prev("cd ")
	if !ok || got != "cd /home" {
		t.Fatalf("expected %q, got %q (ok=%v)", "cd /home", got, ok)
	}
	got, ok = h.Prev("cd ")
	if !ok || got != "cd /tmp" {
		t.Fatalf("expected %q, got %q (ok=%v)", "cd /tmp", got, ok)
	}

	// Oldest matching entry: further recall is a no-op.
	if _, ok := h.Prev("cd "); ok {
		t.Error("expected recall at oldest match to be a no-op")
	}

	got, ok = h.Next("cd ")
	if !ok || got != "cd /home" {
		t.Fatalf("expected %q, got %q (ok=%v)", "cd /home", got, ok)
	}

	// Past the newest match: back to the live line.
	if _, ok := h.Next("cd "); ok {
		t.Error("expected Next past newest match to return false")
	}
	if h.Browsing() {
		t.Error("expected browse cursor back on the live line")
	}
}

func TestRecallEmptyPrefixTraversesAll(t *testing.T) {
	h := New(0)
	h.Push("one")
	h.Push("two")

	if got, _ := h.Prev(""); got != "two" {
		t.Errorf("expected %q, got %q", "two", got)
	}
	if got, _ := h.Prev(""); got != "one" {
		t.Errorf("expected %q, got %q", "one", got)
	}
}

func TestNextOnLiveLineIsNoOp(t *testing.T) {
	h := New(0)
	h.Push("one")
	if _, ok := h.Next(""); ok {
		t.Error("expected Next on the live line to be a no-op")
	}
}

func TestPushResetsBrowse(t *testing.T) {
	h := New(0)
	h.Push("one")
	h.Prev("")
	if !h.Browsing() {
		t.Fatal("expected to be browsing")
	}
	h.Push("two")
	if h.Browsing() {
		t.Error("expected Push to reset the browse cursor")
	}
}

func TestSuggest(t *testing.T) {
	h := New(0)
	h.Push("ls -la")
	h.Push("ls")
	h.Push("git status")

	got, ok := h.Suggest("l")
	if !ok || got != "ls -la" {
		t.Errorf("expected longest match %q, got %q (ok=%v)", "ls -la", got, ok)
	}

	if _, ok := h.Suggest(""); ok {
		t.Error("expected no suggestion for empty prefix")
	}
	if _, ok := h.Suggest("xyz"); ok {
		t.Error("expected no suggestion for unmatched prefix")
	}
	// An exact-length match offers nothing to complete.
	if _, ok := h.Suggest("git status"); ok {
		t.Error("expected no suggestion when the prefix is a full entry")
	}
}

func TestSuggestTieMostRecent(t *testing.T) {
	h := New(0)
	h.Push("cat a")
	h.Push("cat b")

	got, ok := h.Suggest("cat")
	if !ok || got != "cat b" {
		t.Errorf("expected most recent of equal-length matches %q, got %q", "cat b", got)
	}
}

func TestSetEntries(t *testing.T) {
	h := New(2)
	h.SetEntries([]string{"a", "b", "c"})
	if h.Len() != 2 {
		t.Fatalf("expected bound applied, got %d entries", h.Len())
	}
	if got := h.At(0); got != "b" {
		t.Errorf("expected %q, got %q", "b", got)
	}
}

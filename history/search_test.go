package history

import "testing"

func newTestHistory(entries ...string) *History {
	h := New(0)
	for _, e := range entries {
		h.Push(e)
	}
	return h
}

func TestSearchMatchesMostRecentFirst(t *testing.T) {
	h := newTestHistory("foo1", "bar", "foo2")
	s := NewSearch(h)

	s.SetQuery("f")
	got, idx, ok := s.Match()
	if !ok || got != "foo2" {
		t.Fatalf("expected %q, got %q (ok=%v)", "foo2", got, ok)
	}
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
}

func TestSearchNarrowsOnGrowingQuery(t *testing.T) {
	h := newTestHistory("foo1", "bar", "foo2")
	s := NewSearch(h)

	s.SetQuery("f")
	s.SetQuery("fo")
	if got, _, _ := s.Match(); got != "foo2" {
		t.Errorf("expected match to stay on %q, got %q", "foo2", got)
	}

	// The grown query no longer matches the current entry: the scan
	// continues from it without restarting at the newest entry.
	s.SetQuery("foo1")
	got, idx, ok := s.Match()
	if !ok || got != "foo1" {
		t.Fatalf("expected %q, got %q (ok=%v)", "foo1", got, ok)
	}
	if idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
}

func TestSearchShrinkRestartsFromHead(t *testing.T) {
	h := newTestHistory("foo1", "bar", "foo2")
	s := NewSearch(h)

	s.SetQuery("foo1")
	if got, _, _ := s.Match(); got != "foo1" {
		t.Fatalf("expected %q, got %q", "foo1", got)
	}

	// Backspacing the query restarts the reverse scan at the newest entry.
	s.SetQuery("foo")
	got, _, ok := s.Match()
	if !ok || got != "foo2" {
		t.Errorf("expected restart to find %q, got %q (ok=%v)", "foo2", got, ok)
	}
}

func TestSearchEmptyQueryHasNoMatch(t *testing.T) {
	h := newTestHistory("foo")
	s := NewSearch(h)

	s.SetQuery("")
	if _, _, ok := s.Match(); ok {
		t.Error("expected no match for empty query")
	}
	if s.Advance(Reverse) {
		t.Error("expected Advance with empty query to fail")
	}
}

func TestSearchAdvance(t *testing.T) {
	h := newTestHistory("foo1", "bar", "foo2")
	s := NewSearch(h)

	s.SetQuery("foo")
	if got, _, _ := s.Match(); got != "foo2" {
		t.Fatalf("expected %q, got %q", "foo2", got)
	}

	if !s.Advance(Reverse) {
		t.Fatal("expected Advance to find an older match")
	}
	if got, _, _ := s.Match(); got != "foo1" {
		t.Errorf("expected %q, got %q", "foo1", got)
	}

	// No older match: the scan does not wrap and the match stays.
	if s.Advance(Reverse) {
		t.Error("expected Advance past the oldest match to fail")
	}
	if got, _, _ := s.Match(); got != "foo1" {
		t.Errorf("expected match kept, got %q", got)
	}

	// Reversing direction walks back toward newer entries.
	if !s.Advance(Forward) {
		t.Fatal("expected forward Advance to succeed")
	}
	if got, _, _ := s.Match(); got != "foo2" {
		t.Errorf("expected %q, got %q", "foo2", got)
	}
}

func TestSearchNoMatchKeepsNothing(t *testing.T) {
	h := newTestHistory("alpha", "beta")
	s := NewSearch(h)

	s.SetQuery("zzz")
	if _, _, ok := s.Match(); ok {
		t.Error("expected no match")
	}
}

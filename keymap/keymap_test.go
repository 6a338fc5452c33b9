package keymap

import (
	"testing"

	"github.com/dshills/keyline/key"
)

func TestResolveExact(t *testing.T) {
	k := NewKeymap("test")
	if err := k.Bind(Binding{Keys: "<C-a>", Command: "cursor.lineStart"}); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	b, res := k.Resolve(key.MustParseSequence("<C-a>"))
	if res != ResolveExact {
		t.Fatalf("expected exact resolution, got %s", res)
	}
	if b.Command != "cursor.lineStart" {
		t.Errorf("expected command %q, got %q", "cursor.lineStart", b.Command)
	}
}

func TestResolvePrefix(t *testing.T) {
	k := NewKeymap("test")
	if err := k.Bind(Binding{Keys: "<C-x><C-u>", Command: "buffer.undo"}); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	_, res := k.Resolve(key.MustParseSequence("<C-x>"))
	if res != ResolvePrefix {
		t.Errorf("expected prefix resolution, got %s", res)
	}

	b, res := k.Resolve(key.MustParseSequence("<C-x><C-u>"))
	if res != ResolveExact || b.Command != "buffer.undo" {
		t.Errorf("expected exact buffer.undo, got %s %v", res, b)
	}
}

func TestResolveNone(t *testing.T) {
	k := NewKeymap("test")
	if err := k.Bind(Binding{Keys: "gg", Command: "cursor.bufferStart"}); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if _, res := k.Resolve(key.MustParseSequence("x")); res != ResolveNone {
		t.Errorf("expected none for unbound key, got %s", res)
	}
	if _, res := k.Resolve(key.MustParseSequence("gx")); res != ResolveNone {
		t.Errorf("expected none for broken sequence, got %s", res)
	}
	if _, res := k.Resolve(nil); res != ResolveNone {
		t.Errorf("expected none for nil sequence, got %s", res)
	}
}

func TestExactWinsOverLongerBindings(t *testing.T) {
	k := NewKeymap("test")
	if err := k.BindAll([]Binding{
		{Keys: "d", Command: "operator.delete"},
		{Keys: "dd", Command: "kill.line"},
	}); err != nil {
		t.Fatalf("BindAll returned error: %v", err)
	}

	b, res := k.Resolve(key.MustParseSequence("d"))
	if res != ResolveExact || b.Command != "operator.delete" {
		t.Errorf("expected exact operator.delete, got %s %v", res, b)
	}
}

func TestBindRejectsInvalidSpec(t *testing.T) {
	k := NewKeymap("test")
	if err := k.Bind(Binding{Keys: "<notakey>", Command: "x"}); err == nil {
		t.Error("expected error for invalid key spec")
	}
	if err := k.Bind(Binding{Keys: "", Command: "x"}); err == nil {
		t.Error("expected error for empty key spec")
	}
}

func TestBindOverwrites(t *testing.T) {
	k := NewKeymap("test")
	_ = k.Bind(Binding{Keys: "q", Command: "old"})
	_ = k.Bind(Binding{Keys: "q", Command: "new"})

	b, _ := k.Resolve(key.MustParseSequence("q"))
	if b.Command != "new" {
		t.Errorf("expected overwritten command %q, got %q", "new", b.Command)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewDefaultRegistry()

	b, res := r.Resolve(ModeEmacs, key.MustParseSequence("<C-r>"))
	if res != ResolveExact || b.Command != "search.start" {
		t.Errorf("expected search.start in emacs mode, got %s %v", res, b)
	}

	b, res = r.Resolve(ModeViNormal, key.MustParseSequence("w"))
	if res != ResolveExact || b.Command != "cursor.viWordForward" {
		t.Errorf("expected cursor.viWordForward in vi normal mode, got %s %v", res, b)
	}

	if _, res := r.Resolve("no-such-mode", key.MustParseSequence("a")); res != ResolveNone {
		t.Errorf("expected none for unknown mode, got %s", res)
	}
}

func TestDefaultKeymapsParse(t *testing.T) {
	// Construction panics on a malformed table; building all four is
	// the test.
	for _, k := range []*Keymap{EmacsKeymap(), ViInsertKeymap(), ViNormalKeymap(), SearchKeymap()} {
		if len(k.Bindings()) == 0 {
			t.Errorf("keymap %s has no bindings", k.Name)
		}
	}
}

func TestEmacsMultiKeyUndo(t *testing.T) {
	k := EmacsKeymap()

	_, res := k.Resolve(key.MustParseSequence("<C-x>"))
	if res != ResolvePrefix {
		t.Fatalf("expected <C-x> to be a prefix, got %s", res)
	}
	b, res := k.Resolve(key.MustParseSequence("<C-x><C-u>"))
	if res != ResolveExact || b.Command != "buffer.undo" {
		t.Errorf("expected <C-x><C-u> bound to buffer.undo, got %s %v", res, b)
	}
}

package keymap

import (
	"fmt"

	"github.com/dshills/keyline/key"
)

// Standard keymap names, one per editing mode.
const (
	ModeEmacs    = "emacs"
	ModeViInsert = "vi-insert"
	ModeViNormal = "vi-normal"
	ModeSearch   = "search"
)

// Binding maps a key sequence to a command.
type Binding struct {
	// Keys is the sequence that triggers this binding.
	// Formats: "h", "<C-a>", "<A-b>", "<C-x><C-u>".
	Keys string

	// Command is the command identifier, e.g. "cursor.left".
	Command string

	// Description documents the binding.
	Description string
}

// Resolution classifies the outcome of looking up a key sequence.
type Resolution uint8

const (
	// ResolveNone means the sequence matches nothing; the pending
	// prefix is discarded.
	ResolveNone Resolution = iota

	// ResolvePrefix means the sequence is a valid prefix of at least
	// one longer binding; more keys are awaited.
	ResolvePrefix

	// ResolveExact means the sequence is bound to a command.
	ResolveExact
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case ResolvePrefix:
		return "prefix"
	case ResolveExact:
		return "exact"
	default:
		return "none"
	}
}

// Keymap holds the bindings of one mode as a prefix tree over key events.
type Keymap struct {
	// Name identifies the keymap, typically a mode name.
	Name string

	root *node
}

// node is one level of the prefix tree, keyed by canonical event strings.
type node struct {
	children map[string]*node
	binding  *Binding
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// NewKeymap creates an empty keymap.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name, root: newNode()}
}

// Bind adds a binding, replacing any previous binding of the same keys.
func (k *Keymap) Bind(b Binding) error {
	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return fmt.Errorf("bind %q: %w", b.Keys, err)
	}
	if seq.IsEmpty() {
		return fmt.Errorf("bind %q: empty sequence", b.Keys)
	}

	n := k.root
	for _, ev := range seq.Events {
		id := ev.String()
		child, ok := n.children[id]
		if !ok {
			child = newNode()
			n.children[id] = child
		}
		n = child
	}
	bound := b
	n.binding = &bound
	return nil
}

// BindAll adds a set of bindings, stopping at the first error.
func (k *Keymap) BindAll(bindings []Binding) error {
	for _, b := range bindings {
		if err := k.Bind(b); err != nil {
			return err
		}
	}
	return nil
}

// Resolve looks up a key sequence. An exact binding wins immediately
// even when longer bindings share the prefix.
func (k *Keymap) Resolve(seq *key.Sequence) (*Binding, Resolution) {
	if seq == nil || seq.IsEmpty() {
		return nil, ResolveNone
	}

	n := k.root
	for _, ev := range seq.Events {
		child, ok := n.children[ev.String()]
		if !ok {
			return nil, ResolveNone
		}
		n = child
	}

	if n.binding != nil {
		return n.binding, ResolveExact
	}
	if len(n.children) > 0 {
		return nil, ResolvePrefix
	}
	return nil, ResolveNone
}

// Bindings returns every binding in the keymap, in tree order.
func (k *Keymap) Bindings() []Binding {
	var out []Binding
	collect(k.root, &out)
	return out
}

func collect(n *node, out *[]Binding) {
	if n.binding != nil {
		*out = append(*out, *n.binding)
	}
	for _, child := range n.children {
		collect(child, out)
	}
}

// Registry holds the keymap of each mode.
type Registry struct {
	keymaps map[string]*Keymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{keymaps: make(map[string]*Keymap)}
}

// Register installs a keymap under its name.
func (r *Registry) Register(k *Keymap) {
	r.keymaps[k.Name] = k
}

// Keymap returns the keymap of the given mode, or nil.
func (r *Registry) Keymap(mode string) *Keymap {
	return r.keymaps[mode]
}

// Resolve looks up a sequence in the given mode's keymap.
func (r *Registry) Resolve(mode string, seq *key.Sequence) (*Binding, Resolution) {
	k := r.keymaps[mode]
	if k == nil {
		return nil, ResolveNone
	}
	return k.Resolve(seq)
}

// NewDefaultRegistry creates a registry with the standard keymaps of
// every mode installed.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(EmacsKeymap())
	r.Register(ViInsertKeymap())
	r.Register(ViNormalKeymap())
	r.Register(SearchKeymap())
	return r
}

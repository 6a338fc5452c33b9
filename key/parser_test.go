package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRune('a')},
		{"A", NewRune('A')},
		{"1", NewRune('1')},
		{"@", NewRune('@')},
		{"<Space>", NewRune(' ')},
		{"<lt>", NewRune('<')},
		{"<gt>", NewRune('>')},
		{"<CR>", NewSpecial(KeyEnter, ModNone)},
		{"<Enter>", NewSpecial(KeyEnter, ModNone)},
		{"<Esc>", NewSpecial(KeyEscape, ModNone)},
		{"<Tab>", NewSpecial(KeyTab, ModNone)},
		{"<BS>", NewSpecial(KeyBackspace, ModNone)},
		{"<Del>", NewSpecial(KeyDelete, ModNone)},
		{"<Up>", NewSpecial(KeyUp, ModNone)},
		{"<Down>", NewSpecial(KeyDown, ModNone)},
		{"<Home>", NewSpecial(KeyHome, ModNone)},
		{"<C-a>", NewCtrl('a')},
		{"<C-A>", NewCtrl('a')}, // Ctrl combos normalize to lowercase
		{"<C-Space>", Event{Key: KeyRune, Rune: ' ', Mod: ModCtrl}},
		{"<A-b>", NewAlt('b')},
		{"<A-lt>", Event{Key: KeyRune, Rune: '<', Mod: ModAlt}},
		{"<C-S-Left>", NewSpecial(KeyLeft, ModCtrl|ModShift)},
		{"Enter", NewSpecial(KeyEnter, ModNone)},
		{"Escape", NewSpecial(KeyEscape, ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"<>", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"<C-unknownkey>", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	specs := []string{"a", "Z", "<Space>", "<C-x>", "<A-f>", "<CR>", "<Esc>", "<Up>", "<Del>"}

	for _, spec := range specs {
		event, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", spec, err)
		}
		back, err := Parse(event.String())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", event.String(), err)
		}
		if !back.Equals(event) {
			t.Errorf("round trip of %q: got %#v, want %#v", spec, back, event)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid spec")
		}
	}()
	MustParse("<bogus-key>")
}

package key

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRune('a'), "a"},
		{NewRune('Z'), "Z"},
		{NewRune(' '), "<Space>"},
		{NewCtrl('r'), "<C-r>"},
		{NewAlt('b'), "<A-b>"},
		{NewSpecial(KeyEnter, ModNone), "<CR>"},
		{NewSpecial(KeyEscape, ModNone), "<Esc>"},
		{NewSpecial(KeyUp, ModNone), "<Up>"},
		{NewSpecial(KeyLeft, ModCtrl), "<C-Left>"},
		{Event{Key: KeyRune, Rune: ' ', Mod: ModCtrl}, "<C-Space>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventIsText(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRune('a'), true},
		{NewRune('é'), true},
		{NewRune(' '), true},
		{NewCtrl('a'), false},
		{NewAlt('f'), false},
		{NewSpecial(KeyEnter, ModNone), false},
		{Event{Key: KeyRune, Rune: '\x01'}, false},
	}

	for _, tt := range tests {
		if got := tt.event.IsText(); got != tt.want {
			t.Errorf("IsText(%#v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventMatches(t *testing.T) {
	if !NewCtrl('c').Matches("<C-c>") {
		t.Error("expected Ctrl-C to match <C-c>")
	}
	if NewRune('c').Matches("<C-c>") {
		t.Error("expected plain c not to match <C-c>")
	}
	if NewRune('x').Matches("<bogus spec") {
		t.Error("expected invalid spec to match nothing")
	}
}

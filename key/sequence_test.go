package key

import "testing"

func TestParseSequence(t *testing.T) {
	tests := []struct {
		input string
		want  []Event
	}{
		{"", nil},
		{"a", []Event{NewRune('a')}},
		{"dd", []Event{NewRune('d'), NewRune('d')}},
		{"gU", []Event{NewRune('g'), NewRune('U')}},
		{"<C-x><C-u>", []Event{NewCtrl('x'), NewCtrl('u')}},
		{"d<Right>", []Event{NewRune('d'), NewSpecial(KeyRight, ModNone)}},
		{"<A-b>", []Event{NewAlt('b')}},
		{"<", []Event{NewRune('<')}}, // unclosed bracket is a literal
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq, err := ParseSequence(tt.input)
			if err != nil {
				t.Fatalf("ParseSequence(%q) returned error: %v", tt.input, err)
			}
			if seq.Len() != len(tt.want) {
				t.Fatalf("ParseSequence(%q) has %d events, want %d", tt.input, seq.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if !seq.Events[i].Equals(want) {
					t.Errorf("event %d = %#v, want %#v", i, seq.Events[i], want)
				}
			}
		})
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	full := MustParseSequence("<C-x><C-u>")
	prefix := MustParseSequence("<C-x>")
	other := MustParseSequence("<C-c>")

	if !full.HasPrefix(prefix) {
		t.Error("expected <C-x> to be a prefix of <C-x><C-u>")
	}
	if full.HasPrefix(other) {
		t.Error("expected <C-c> not to be a prefix of <C-x><C-u>")
	}
	if !full.HasPrefix(NewSequence()) {
		t.Error("expected empty sequence to be a prefix of anything")
	}
	if prefix.HasPrefix(full) {
		t.Error("expected longer sequence not to be a prefix of shorter")
	}
}

func TestSequenceEquals(t *testing.T) {
	a := MustParseSequence("dd")
	b := MustParseSequence("dd")
	c := MustParseSequence("dw")

	if !a.Equals(b) {
		t.Error("expected identical sequences to be equal")
	}
	if a.Equals(c) {
		t.Error("expected dd != dw")
	}
}

func TestSequenceString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dd", "dd"},
		{"<C-x><C-u>", "<C-x><C-u>"},
		{"g<A-b>", "g<A-b>"},
	}

	for _, tt := range tests {
		seq := MustParseSequence(tt.input)
		if got := seq.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSequenceClone(t *testing.T) {
	orig := MustParseSequence("ab")
	clone := orig.Clone()
	clone.Add(NewRune('c'))

	if orig.Len() != 2 {
		t.Errorf("expected original length 2, got %d", orig.Len())
	}
	if clone.Len() != 3 {
		t.Errorf("expected clone length 3, got %d", clone.Len())
	}
}

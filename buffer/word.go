package buffer

import "unicode"

// WordClass selects the word-boundary rules used by word motions and
// word deletions. Emacs and Vi disagree at punctuation: Emacs treats a
// punctuation run as filler between words, Vi treats it as a word of its
// own, and Vi's whitespace-delimited "WORD" ignores punctuation entirely.
type WordClass uint8

const (
	// ClassEmacs groups alphanumeric runs; punctuation is skipped like
	// whitespace.
	ClassEmacs WordClass = iota

	// ClassVi groups keyword runs (alphanumeric or underscore) and
	// punctuation runs as separate words.
	ClassVi

	// ClassViBig groups any non-whitespace run (Vi's W/B/E motions).
	ClassViBig
)

// charClass is the coarse category of one grapheme cluster under a WordClass.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classOther
)

// classify categorizes a grapheme cluster by its first rune.
func classify(cluster string, wc WordClass) charClass {
	var r rune
	for _, c := range cluster {
		r = c
		break
	}
	if r == 0 || unicode.IsSpace(r) {
		return classSpace
	}

	switch wc {
	case ClassViBig:
		return classWord
	case ClassVi:
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return classWord
		}
		return classOther
	default: // ClassEmacs
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return classWord
		}
		return classSpace
	}
}

package history

import "strings"

// Direction is the scan direction of an incremental search.
type Direction int8

const (
	// Reverse scans from newest toward oldest.
	Reverse Direction = iota

	// Forward scans from oldest toward newest.
	Forward
)

// Search is the state of one incremental substring search over a
// History. It lives for the duration of search mode and is discarded on
// accept or cancel.
//
// Growing the query re-scans from the current match position in the
// current direction, so a match narrows rather than restarting.
// Shrinking the query restarts the scan from the head of the current
// direction; restarting is the documented policy.
type Search struct {
	h     *History
	query string
	dir   Direction

	// pos is the index of the current match, or -1 when there is none.
	pos int
}

// NewSearch creates a reverse search over h with an empty query.
func NewSearch(h *History) *Search {
	return &Search{h: h, dir: Reverse, pos: -1}
}

// Query returns the current query string.
func (s *Search) Query() string {
	return s.query
}

// Direction returns the current scan direction.
func (s *Search) Direction() Direction {
	return s.dir
}

// Match returns the currently matched entry and its index.
func (s *Search) Match() (string, int, bool) {
	if s.pos < 0 || s.pos >= s.h.Len() {
		return "", -1, false
	}
	return s.h.At(s.pos), s.pos, true
}

// SetQuery replaces the query and updates the match. A grown query keeps
// the current match if it still contains the query, otherwise continues
// scanning from it; a shrunk query restarts from the scan head. An empty
// query clears the match.
func (s *Search) SetQuery(q string) {
	grew := strings.HasPrefix(q, s.query) && len(q) > len(s.query)
	s.query = q

	if q == "" {
		s.pos = -1
		return
	}

	from := s.head()
	if grew && s.pos >= 0 {
		from = s.pos
	}
	s.pos = s.scan(from, s.dir)
}

// Advance moves to the next match in the given direction, past the
// current one. Without a current match it scans from the head of the
// direction. Returns false (keeping the current match) when no further
// entry matches; the scan never wraps.
func (s *Search) Advance(dir Direction) bool {
	s.dir = dir
	if s.query == "" {
		return false
	}

	from := s.head()
	if s.pos >= 0 {
		if dir == Reverse {
			from = s.pos - 1
		} else {
			from = s.pos + 1
		}
	}

	found := s.scan(from, dir)
	if found < 0 {
		return false
	}
	s.pos = found
	return true
}

// head is the scan start index for the current direction.
func (s *Search) head() int {
	if s.dir == Reverse {
		return s.h.Len() - 1
	}
	return 0
}

// scan looks for the nearest entry containing the query, starting at
// from (inclusive) and moving in dir. Returns -1 if none.
func (s *Search) scan(from int, dir Direction) int {
	if dir == Reverse {
		if from >= s.h.Len() {
			from = s.h.Len() - 1
		}
		for i := from; i >= 0; i-- {
			if strings.Contains(s.h.At(i), s.query) {
				return i
			}
		}
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < s.h.Len(); i++ {
		if strings.Contains(s.h.At(i), s.query) {
			return i
		}
	}
	return -1
}

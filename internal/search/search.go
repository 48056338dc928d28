// Package search maintains the line-level match index for a case-insensitive
// search term, the cycling cursor over those matches, and the per-line
// highlight spans a renderer draws.
package search

import "strings"

// Index holds the active term and the ascending list of matching line
// indices. A cursor of -1 means "no current match".
type Index struct {
	term    string
	matches []int
	cursor  int
}

// Position reports where an Advance landed, for status display.
type Position struct {
	Line    int // matching buffer line index
	Ordinal int // 1-based position in the match list
	Total   int // match count
}

// New returns an empty index with no active term.
func New() *Index {
	return &Index{cursor: -1}
}

// Term returns the active search term, "" when none.
func (ix *Index) Term() string { return ix.term }

// Active reports whether a search term is set.
func (ix *Index) Active() bool { return ix.term != "" }

// HasMatches reports whether the last recompute found any matching line.
func (ix *Index) HasMatches() bool { return len(ix.matches) > 0 }

// Matches returns the matching line indices in ascending order.
func (ix *Index) Matches() []int { return ix.matches }

// SetTerm installs a new term. The match list is stale until Recompute.
func (ix *Index) SetTerm(term string) { ix.term = term }

// Clear drops the term, the match list, and the cursor.
func (ix *Index) Clear() {
	ix.term = ""
	ix.matches = nil
	ix.cursor = -1
}

// Recompute rescans lines for the active term. Matching is case-insensitive
// at line granularity. The cursor lands on the first match at or after sel,
// wrapping to the first match when none qualifies, so a forward search never
// jumps backward.
func (ix *Index) Recompute(lines []string, sel int) {
	ix.matches = ix.matches[:0]
	if ix.term == "" {
		ix.cursor = -1
		return
	}
	t := strings.ToLower(ix.term)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), t) {
			ix.matches = append(ix.matches, i)
		}
	}
	if len(ix.matches) == 0 {
		ix.cursor = -1
		return
	}
	ix.cursor = 0
	for i, line := range ix.matches {
		if line >= sel {
			ix.cursor = i
			break
		}
	}
}

// Advance moves the cursor to the next (forward) or previous match, wrapping
// in both directions. From "no current match" it lands on the first match.
// Returns false, with no state change, when the match list is empty.
func (ix *Index) Advance(forward bool) (Position, bool) {
	n := len(ix.matches)
	if n == 0 {
		return Position{}, false
	}
	if ix.cursor == -1 {
		ix.cursor = 0
	} else {
		step := 1
		if !forward {
			step = -1
		}
		// True modulo so the backward wrap is non-negative.
		ix.cursor = ((ix.cursor+step)%n + n) % n
	}
	return Position{Line: ix.matches[ix.cursor], Ordinal: ix.cursor + 1, Total: n}, true
}

package search

import "unicode"

// Span is a half-open [Start, End) rune range within one line marking a
// case-insensitive occurrence of the search term.
type Span struct {
	Start int
	End   int
}

// Spans returns the ordered, non-overlapping occurrences of term in line.
// The scan is greedy left-to-right: after a match the scan resumes past it,
// so "aa" against "aaaa" yields two spans, not three. Pure function; an
// empty term yields nil.
func Spans(line, term string) []Span {
	if term == "" || line == "" {
		return nil
	}
	lr := foldRunes([]rune(line))
	tr := foldRunes([]rune(term))
	n, k := len(lr), len(tr)
	if k == 0 || k > n {
		return nil
	}

	var spans []Span
	for i := 0; i+k <= n; {
		if runesEqual(lr[i:i+k], tr) {
			spans = append(spans, Span{Start: i, End: i + k})
			i += k
		} else {
			i++
		}
	}
	return spans
}

// ClipSpans shifts spans left by drop columns and clips them to [0, limit),
// dropping spans that fall entirely outside the visible range. Used to slice
// highlight spans for bounded-width display.
func ClipSpans(spans []Span, drop, limit int) []Span {
	if len(spans) == 0 {
		return nil
	}
	clipped := make([]Span, 0, len(spans))
	for _, sp := range spans {
		start, end := sp.Start-drop, sp.End-drop
		if end <= 0 || (limit > 0 && start >= limit) {
			continue
		}
		if start < 0 {
			start = 0
		}
		if limit > 0 && end > limit {
			end = limit
		}
		if start < end {
			clipped = append(clipped, Span{Start: start, End: end})
		}
	}
	if len(clipped) == 0 {
		return nil
	}
	return clipped
}

// foldRunes lowercases in place, one rune at a time, so offsets into the
// folded slice line up with the original runes.
func foldRunes(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

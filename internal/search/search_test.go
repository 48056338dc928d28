package search

import (
	"reflect"
	"testing"
)

func TestRecomputeCollectsAscendingMatches(t *testing.T) {
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute([]string{"foo bar", "baz foo", "qux"}, 0)

	if got := ix.Matches(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("matches = %v, want [0 1]", got)
	}
}

func TestRecomputeCaseInsensitive(t *testing.T) {
	ix := New()
	ix.SetTerm("FOO")
	ix.Recompute([]string{"a Foo b", "nothing", "FOOD"}, 0)

	if got := ix.Matches(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("matches = %v, want [0 2]", got)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	lines := []string{"foo", "bar", "foo bar", "baz"}
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute(lines, 1)
	first := append([]int(nil), ix.Matches()...)
	firstCursor := ix.cursor

	ix.Recompute(lines, 1)
	if !reflect.DeepEqual(ix.Matches(), first) || ix.cursor != firstCursor {
		t.Fatalf("recompute not idempotent: %v/%d then %v/%d", first, firstCursor, ix.Matches(), ix.cursor)
	}
}

func TestRecomputeCursorNearestAtOrAfterSelection(t *testing.T) {
	lines := []string{"foo", "x", "foo", "x", "foo"}
	cases := []struct {
		sel    int
		cursor int
	}{
		{0, 0}, // on a match
		{1, 1}, // next match is line 2
		{3, 2}, // next match is line 4
		{4, 2},
	}
	for _, tc := range cases {
		ix := New()
		ix.SetTerm("foo")
		ix.Recompute(lines, tc.sel)
		if ix.cursor != tc.cursor {
			t.Errorf("sel=%d: cursor=%d, want %d", tc.sel, ix.cursor, tc.cursor)
		}
	}

	// No match at or after the selection wraps to the first match.
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute([]string{"foo", "x", "x"}, 2)
	if ix.cursor != 0 {
		t.Errorf("wrap case: cursor=%d, want 0", ix.cursor)
	}
}

func TestAdvanceCyclesWithWraparound(t *testing.T) {
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute([]string{"foo bar", "baz foo", "qux"}, 0)
	ix.cursor = -1 // start from "no current match"

	pos, ok := ix.Advance(true)
	if !ok || pos.Line != 0 || pos.Ordinal != 1 || pos.Total != 2 {
		t.Fatalf("first advance: %+v ok=%v", pos, ok)
	}
	pos, _ = ix.Advance(true)
	if pos.Line != 1 || pos.Ordinal != 2 {
		t.Fatalf("second advance: %+v", pos)
	}
	pos, _ = ix.Advance(true)
	if pos.Line != 0 || pos.Ordinal != 1 {
		t.Fatalf("wrap advance: %+v", pos)
	}
}

func TestAdvanceCyclicClosure(t *testing.T) {
	lines := []string{"foo", "foo", "x", "foo"}
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute(lines, 0)
	start := ix.cursor

	n := len(ix.Matches())
	for i := 0; i < n; i++ {
		ix.Advance(true)
	}
	if ix.cursor != start {
		t.Errorf("after %d forward advances: cursor=%d, want %d", n, ix.cursor, start)
	}

	// Backward is the exact inverse of forward.
	ix.Advance(true)
	ix.Advance(false)
	if ix.cursor != start {
		t.Errorf("forward then backward: cursor=%d, want %d", ix.cursor, start)
	}
}

func TestAdvanceBackwardWrapsNonNegative(t *testing.T) {
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute([]string{"foo", "foo", "foo"}, 0)
	ix.cursor = 0

	pos, ok := ix.Advance(false)
	if !ok || pos.Ordinal != 3 || pos.Line != 2 {
		t.Fatalf("backward wrap: %+v ok=%v", pos, ok)
	}
}

func TestAdvanceNoMatches(t *testing.T) {
	ix := New()
	ix.SetTerm("zzz")
	ix.Recompute([]string{"foo", "bar"}, 0)

	if _, ok := ix.Advance(true); ok {
		t.Fatal("expected no-matches signal")
	}
	if ix.cursor != -1 {
		t.Errorf("cursor changed on empty advance: %d", ix.cursor)
	}
}

func TestEditRemovingOnlyMatchEmptiesIndex(t *testing.T) {
	lines := []string{"alpha", "needle here", "omega"}
	ix := New()
	ix.SetTerm("needle")
	ix.Recompute(lines, 0)
	if !ix.HasMatches() {
		t.Fatal("expected a match before the edit")
	}

	lines[1] = "edited away"
	ix.Recompute(lines, 1)
	if ix.HasMatches() {
		t.Fatalf("matches survived the edit: %v", ix.Matches())
	}
	if ix.cursor != -1 {
		t.Errorf("cursor = %d, want -1", ix.cursor)
	}
}

func TestClear(t *testing.T) {
	ix := New()
	ix.SetTerm("foo")
	ix.Recompute([]string{"foo"}, 0)
	ix.Clear()

	if ix.Active() || ix.HasMatches() || ix.cursor != -1 {
		t.Errorf("clear left state: term=%q matches=%v cursor=%d", ix.Term(), ix.Matches(), ix.cursor)
	}
}

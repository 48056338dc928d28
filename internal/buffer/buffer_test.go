package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadSplitsLines(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		lines    []string
		trailing bool
	}{
		{"trailing newline", "alpha\nbeta\n", []string{"alpha", "beta"}, true},
		{"no trailing newline", "alpha\nbeta", []string{"alpha", "beta"}, false},
		{"crlf normalized", "alpha\r\nbeta\r\n", []string{"alpha", "beta"}, true},
		{"empty file", "", nil, false},
		{"single newline", "\n", []string{""}, true},
		{"blank middle line", "a\n\nb\n", []string{"a", "", "b"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Load(writeTestFile(t, []byte(tc.content)))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if b.Len() != len(tc.lines) {
				t.Fatalf("got %d lines, want %d", b.Len(), len(tc.lines))
			}
			for i, want := range tc.lines {
				if got := b.Line(i); got != want {
					t.Errorf("line %d: got %q, want %q", i, got, want)
				}
			}
			if b.TrailingNewline() != tc.trailing {
				t.Errorf("trailing: got %v, want %v", b.TrailingNewline(), tc.trailing)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLoadLatin1Fallback(t *testing.T) {
	// 0xe9 is 'é' in latin-1 and invalid as a standalone UTF-8 byte.
	b, err := Load(writeTestFile(t, []byte{'c', 'a', 'f', 0xe9, '\n'}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := b.Line(0); got != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, content := range []string{"alpha\nbeta\n", "alpha\nbeta", "", "\n"} {
		path := writeTestFile(t, []byte(content))
		b, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if err := b.Save(path); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != content {
			t.Errorf("round trip of %q: got %q", content, got)
		}
	}
}

func TestReplace(t *testing.T) {
	b := New([]string{"one", "two"}, true)

	if !b.Replace(1, "TWO") {
		t.Fatal("expected Replace to report a change")
	}
	if b.Line(1) != "TWO" {
		t.Errorf("got %q", b.Line(1))
	}
	if b.Replace(1, "TWO") {
		t.Error("identical content should not count as a change")
	}
	if b.Replace(5, "x") || b.Replace(-1, "x") {
		t.Error("out-of-range replace should be a no-op")
	}
	if b.Len() != 2 {
		t.Errorf("line count changed: %d", b.Len())
	}
}

func TestDiffStat(t *testing.T) {
	path := writeTestFile(t, []byte("one\ntwo\nthree\n"))
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := b.DiffStat(path); got != 0 {
		t.Errorf("clean buffer: got %d hunks, want 0", got)
	}

	b.Replace(0, "ONE")
	if got := b.DiffStat(path); got != 1 {
		t.Errorf("single edit: got %d hunks, want 1", got)
	}

	if got := b.DiffStat(filepath.Join(t.TempDir(), "gone")); got != 0 {
		t.Errorf("unreadable disk state: got %d hunks, want 0", got)
	}
}

// Package buffer owns the in-memory line buffer for a single file, plus the
// load and save collaborators around it. Line endings are normalized to LF on
// load; the trailing-newline state of the file is preserved across save.
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("file not found")

// Buffer is an ordered sequence of text lines. Edits replace line content in
// place; the line count never changes after load.
type Buffer struct {
	lines           []string
	trailingNewline bool
}

// New creates a buffer from the given lines. Mostly useful in tests; real
// buffers come from Load.
func New(lines []string, trailingNewline bool) *Buffer {
	return &Buffer{lines: lines, trailingNewline: trailingNewline}
}

// Load reads the file at path into a buffer. CRLF line endings are normalized
// to LF before splitting. Content that is not valid UTF-8 falls back to a
// latin-1 widening so the viewer never sees undecodable bytes.
func Load(path string) (*Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := decode(normalizeNewlines(raw))
	trailing := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" || trailing {
		lines = strings.Split(text, "\n")
	}
	return &Buffer{lines: lines, trailingNewline: trailing}, nil
}

// Save writes the buffer back to path, joining lines with LF and appending a
// final LF iff the loaded file had one. The in-memory buffer is never touched.
func (b *Buffer) Save(path string) error {
	if err := os.WriteFile(path, []byte(b.Content()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns the line at index i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns the backing line slice. Callers must treat it as read-only.
func (b *Buffer) Lines() []string { return b.lines }

// TrailingNewline reports whether the loaded file ended with a newline.
func (b *Buffer) TrailingNewline() bool { return b.trailingNewline }

// Replace swaps the content of line i. It returns false, without mutating
// anything, when i is out of range or text equals the current content.
func (b *Buffer) Replace(i int, text string) bool {
	if i < 0 || i >= len(b.lines) || b.lines[i] == text {
		return false
	}
	b.lines[i] = text
	return true
}

// Content renders the buffer as a single string, the exact bytes Save writes.
func (b *Buffer) Content() string {
	s := strings.Join(b.lines, "\n")
	if b.trailingNewline {
		s += "\n"
	}
	return s
}

// DiffStat returns the number of changed hunks between the buffer and the
// file currently on disk. Best-effort: an unreadable file reports 0.
func (b *Buffer) DiffStat(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	disk := decode(normalizeNewlines(raw))
	edits := myers.ComputeEdits(span.URIFromPath(path), disk, b.Content())
	return len(gotextdiff.ToUnified(path, path, disk, edits).Hunks)
}

func normalizeNewlines(raw []byte) []byte {
	if !bytes.Contains(raw, []byte("\r\n")) {
		return raw
	}
	return bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
}

// decode interprets raw as UTF-8, widening byte-per-rune (latin-1) when the
// content is not valid UTF-8.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	rs := make([]rune, len(raw))
	for i, c := range raw {
		rs[i] = rune(c)
	}
	return string(rs)
}

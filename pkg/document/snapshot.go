// Package document provides the immutable document view the review
// engine operates on: the raw content, a line slice, and an index that
// maps absolute character offsets back to 1-based line numbers.
package document

import (
	"sort"
	"strings"
)

// Snapshot is an immutable view of one document for the duration of a
// review pass.
type Snapshot struct {
	// Content is the full document text.
	Content string

	// lines holds the document split on newlines, blanks preserved.
	lines []string

	// starts holds the byte offset of each line's first character.
	starts []int
}

// New builds a Snapshot from content. The line index is built once;
// both LF and CRLF content work (the trailing \r stays on the line,
// matching a plain newline split).
func New(content string) *Snapshot {
	lines := strings.Split(content, "\n")
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}
	return &Snapshot{
		Content: content,
		lines:   lines,
		starts:  starts,
	}
}

// LineCount returns the number of lines in the document. An empty
// document has one (empty) line, matching a newline split.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Line returns the content of a 1-based line number, excluding the
// newline. Out-of-range line numbers return "".
func (s *Snapshot) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// Lines returns the document's lines in order, including blank lines.
// The returned slice must not be modified.
func (s *Snapshot) Lines() []string {
	return s.lines
}

// LineAt converts an absolute byte offset to a 1-based line number:
// the count of newlines strictly before the offset, plus one. Offsets
// past the end map to the last line; negative offsets map to line 1.
func (s *Snapshot) LineAt(offset int) int {
	if offset <= 0 || len(s.starts) == 0 {
		return 1
	}
	// First line whose start is past the offset; the offset belongs to
	// the line before it.
	idx := sort.Search(len(s.starts), func(i int) bool {
		return s.starts[i] > offset
	})
	return idx
}

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantLines []string
	}{
		{
			name:      "empty content has one empty line",
			content:   "",
			wantCount: 1,
			wantLines: []string{""},
		},
		{
			name:      "single line without newline",
			content:   "hello",
			wantCount: 1,
			wantLines: []string{"hello"},
		},
		{
			name:      "trailing newline yields empty last line",
			content:   "a\nb\n",
			wantCount: 3,
			wantLines: []string{"a", "b", ""},
		},
		{
			name:      "blank lines preserved",
			content:   "a\n\nb",
			wantCount: 3,
			wantLines: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := New(tt.content)
			assert.Equal(t, tt.wantCount, snap.LineCount())
			assert.Equal(t, tt.wantLines, snap.Lines())
		})
	}
}

func TestSnapshotLine(t *testing.T) {
	snap := New("first\nsecond\nthird")

	assert.Equal(t, "first", snap.Line(1))
	assert.Equal(t, "second", snap.Line(2))
	assert.Equal(t, "third", snap.Line(3))
	assert.Equal(t, "", snap.Line(0))
	assert.Equal(t, "", snap.Line(4))
}

func TestSnapshotLineAt(t *testing.T) {
	// Offsets: "ab" starts at 0, "cd" at 3, "ef" at 6.
	snap := New("ab\ncd\nef")

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "start of document", offset: 0, want: 1},
		{name: "inside first line", offset: 1, want: 1},
		{name: "newline belongs to first line", offset: 2, want: 1},
		{name: "start of second line", offset: 3, want: 2},
		{name: "start of third line", offset: 6, want: 3},
		{name: "past end maps to last line", offset: 100, want: 3},
		{name: "negative maps to first line", offset: -1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snap.LineAt(tt.offset))
		})
	}
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nagraj23/notation-tui/api"
)

func TestSortNotesByCreated(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	notes := []api.Note{
		{ID: "1", CreatedAt: t1},
		{ID: "2", CreatedAt: t2},
		{ID: "3", CreatedAt: t3},
	}
	sortNotesByCreated(notes)

	assert.Equal(t, "2", notes[0].ID)
	assert.Equal(t, "3", notes[1].ID)
	assert.Equal(t, "1", notes[2].ID)
}

func TestRemoveNote(t *testing.T) {
	notes := []api.Note{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out := removeNote(notes, "b")
	assert.Len(t, out, 2)
	_, found := findNote(out, "b")
	assert.False(t, found)

	out = removeNote(notes, "missing")
	assert.Len(t, out, 3)
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"hello world", 2},
		{"  spaced   out\ttokens \n here ", 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, wordCount(tc.in), "input %q", tc.in)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank(" \t\n"))
	assert.False(t, isBlank(" x "))
}

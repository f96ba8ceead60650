package model

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Nagraj23/notation-tui/api"
)

// sortNotesByCreated orders newest-first. Server order is never
// trusted; this runs after every successful fetch.
func sortNotesByCreated(notes []api.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}

func removeNote(notes []api.Note, id string) []api.Note {
	out := make([]api.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

func findNote(notes []api.Note, id string) (api.Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return api.Note{}, false
}

// wordCount counts whitespace-separated non-empty tokens, the same
// measure the editor footer shows.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func noteItems(notes []api.Note) []list.Item {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteItem{note: n})
	}
	return items
}

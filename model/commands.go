package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nagraj23/notation-tui/api"
)

// Async work runs as tea commands and reports back with the typed
// messages in state.go. No cancellation: a superseded response is
// discarded by sequence checks in Update, not aborted in flight.

func loginCmd(c noteAPI, email, password string) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Login(context.Background(), email, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return loginDoneMsg{res: res}
	}
}

func registerCmd(c noteAPI, fullName, email, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Register(context.Background(), fullName, email, password, confirm)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return registerDoneMsg{res: res}
	}
}

// registerRedirectCmd is the short "you're all set" beat between a
// successful registration and landing on the note list.
func registerRedirectCmd() tea.Cmd {
	return tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
		return registerRedirectMsg{}
	})
}

func fetchNotesCmd(c noteAPI, token string, seq int) tea.Cmd {
	return func() tea.Msg {
		notes, err := c.ListNotes(context.Background(), token)
		if err != nil {
			return notesFailedMsg{seq: seq, err: err}
		}
		return notesLoadedMsg{seq: seq, notes: notes}
	}
}

func fetchNoteCmd(c noteAPI, token, id string) tea.Cmd {
	return func() tea.Msg {
		n, err := c.GetNote(context.Background(), token, id)
		if err != nil {
			return noteLoadFailedMsg{err: err}
		}
		return noteLoadedMsg{note: n}
	}
}

func saveNoteCmd(c noteAPI, token, userID string, draft api.NoteDraft, mode api.SaveMode, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.SaveNote(context.Background(), token, userID, draft, mode, id); err != nil {
			return saveFailedMsg{err: err}
		}
		return saveDoneMsg{edited: mode == api.SaveEdit}
	}
}

func deleteNoteCmd(c noteAPI, token, id string, snapshot []api.Note) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteNote(context.Background(), token, id); err != nil {
			return deleteFailedMsg{err: err, snapshot: snapshot}
		}
		return deleteDoneMsg{id: id}
	}
}

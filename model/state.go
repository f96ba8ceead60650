package model

import (
	"context"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Nagraj23/notation-tui/api"
	"github.com/Nagraj23/notation-tui/session"
)

// screen is the client-side "route". Every transition goes through
// resolveScreen in guard.go.
type screen int

const (
	screenLanding screen = iota
	screenLogin
	screenRegister
	screenHome
	screenEditor
)

func (s screen) String() string {
	switch s {
	case screenLanding:
		return "landing"
	case screenLogin:
		return "login"
	case screenRegister:
		return "register"
	case screenHome:
		return "home"
	case screenEditor:
		return "editor"
	}
	return "unknown"
}

// noteAPI is the slice of the API client the UI consumes. *api.Client
// satisfies it; tests substitute a fake.
type noteAPI interface {
	Login(ctx context.Context, email, password string) (api.AuthResult, error)
	Register(ctx context.Context, fullName, email, password, confirm string) (api.AuthResult, error)
	ListNotes(ctx context.Context, token string) ([]api.Note, error)
	GetNote(ctx context.Context, token, id string) (api.Note, error)
	SaveNote(ctx context.Context, token, userID string, draft api.NoteDraft, mode api.SaveMode, id string) error
	DeleteNote(ctx context.Context, token, id string) error
}

// sessionStore is the slice of session.Store the UI consumes.
type sessionStore interface {
	Read() session.Session
	Write(token string, user api.UserProfile) error
	Clear() error
	StashNote(n api.Note) error
	TakeNote() (api.Note, bool)
}

// Messages delivered back into Update by async commands.

type loginDoneMsg struct {
	res api.AuthResult
}

type registerDoneMsg struct {
	res api.AuthResult
}

type authFailedMsg struct {
	err error
}

type registerRedirectMsg struct{}

type notesLoadedMsg struct {
	seq   int
	notes []api.Note
}

type notesFailedMsg struct {
	seq int
	err error
}

type noteLoadedMsg struct {
	note api.Note
}

type noteLoadFailedMsg struct {
	err error
}

type saveDoneMsg struct {
	edited bool
}

type saveFailedMsg struct {
	err error
}

type deleteDoneMsg struct {
	id string
}

// deleteFailedMsg carries the snapshot captured when the optimistic
// removal happened, so rollback restores the pre-delete list wholesale.
type deleteFailedMsg struct {
	err      error
	snapshot []api.Note
}

// noteItem adapts an api.Note to the bubbles list.
type noteItem struct {
	note api.Note
}

func (i noteItem) FilterValue() string { return i.note.Title }

func (i noteItem) Title() string { return i.note.Title }

func (i noteItem) Description() string {
	if i.note.CreatedAt.IsZero() {
		return "Created: —"
	}
	return "Created: " + i.note.CreatedAt.Format("Jan 02, 2006")
}

var _ list.Item = noteItem{}

package api

import "time"

// UserProfile is the cached copy of server-side user data. Opaque
// beyond ID and Name; never mutated locally.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Note is the canonical client-side note shape. ID is always the
// normalized identifier regardless of which field the server used.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult is what login and register hand back on success.
type AuthResult struct {
	Token string
	User  UserProfile
}

// NoteDraft is the editable part of a note, as submitted by the editor.
type NoteDraft struct {
	Title   string
	Content string
}

// SaveMode selects between creating a note and fully replacing one.
type SaveMode int

const (
	SaveCreate SaveMode = iota
	SaveEdit
)

// noteWire accepts both identifier spellings the server is known to
// use and normalizes on decode.
type noteWire struct {
	ID        string    `json:"id"`
	AltID     string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w noteWire) normalize() Note {
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	return Note{
		ID:        id,
		Title:     w.Title,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
	}
}

type userWire struct {
	ID       string `json:"id"`
	AltID    string `json:"_id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (w userWire) normalize() UserProfile {
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	name := w.Name
	if name == "" {
		name = w.FullName
	}
	return UserProfile{ID: id, Name: name, Email: w.Email}
}

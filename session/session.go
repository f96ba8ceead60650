// Package session keeps the client's persistent state between runs:
// the bearer token plus cached user profile, and the transient
// note handoff between the list and the editor.
package session

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Nagraj23/notation-tui/api"
	"github.com/Nagraj23/notation-tui/crypto"
)

const (
	sessionFile = "session.json"
	keyFile     = "session.key"
	handoffFile = "selected_note.json"
)

// Session is the authenticated identity. A zero Session means
// anonymous; User present implies Token present (written together).
type Session struct {
	Token string          `json:"token"`
	User  api.UserProfile `json:"user"`
}

func (s Session) LoggedIn() bool { return s.Token != "" }

// Store reads and writes session state under one directory. The
// session file is sealed at rest with a key derived from a
// per-install random keyfile.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Read returns the current session. It never fails: a missing,
// unreadable or corrupt session file reads as anonymous.
func (st *Store) Read() Session {
	secret, err := st.keyMaterial(false)
	if err != nil {
		return Session{}
	}

	raw, err := os.ReadFile(filepath.Join(st.dir, sessionFile))
	if err != nil {
		return Session{}
	}

	var env crypto.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Session{}
	}
	plain, err := crypto.Open(env, secret)
	if err != nil {
		return Session{}
	}

	var s Session
	if err := json.Unmarshal(plain, &s); err != nil {
		return Session{}
	}
	return s
}

// Write persists token and user together. Callers only ever call this
// with both halves of a successful auth response.
func (st *Store) Write(token string, user api.UserProfile) error {
	if err := os.MkdirAll(st.dir, 0700); err != nil {
		return err
	}
	secret, err := st.keyMaterial(true)
	if err != nil {
		return err
	}

	plain, err := json.Marshal(Session{Token: token, User: user})
	if err != nil {
		return err
	}
	env, err := crypto.Seal(plain, secret)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(st.dir, sessionFile), raw, 0600)
}

// Clear drops the persisted session and any stashed handoff note.
func (st *Store) Clear() error {
	_ = os.Remove(filepath.Join(st.dir, handoffFile))
	err := os.Remove(filepath.Join(st.dir, sessionFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// StashNote records the note being opened in the editor so edit mode
// can populate instantly while the authoritative fetch is in flight.
func (st *Store) StashNote(n api.Note) error {
	if err := os.MkdirAll(st.dir, 0700); err != nil {
		return err
	}
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(st.dir, handoffFile), raw, 0600)
}

// TakeNote returns the stashed note, if any. The stash survives until
// the next StashNote or Clear; rereads are harmless.
func (st *Store) TakeNote() (api.Note, bool) {
	raw, err := os.ReadFile(filepath.Join(st.dir, handoffFile))
	if err != nil {
		return api.Note{}, false
	}
	var n api.Note
	if err := json.Unmarshal(raw, &n); err != nil {
		return api.Note{}, false
	}
	return n, true
}

// keyMaterial loads the per-install sealing key, creating it on first
// write. Reads with no keyfile present report anonymous rather than
// minting a key that could mask an existing sealed session.
func (st *Store) keyMaterial(create bool) ([]byte, error) {
	path := filepath.Join(st.dir, keyFile)
	secret, err := os.ReadFile(path)
	if err == nil && len(secret) > 0 {
		return secret, nil
	}
	if !create {
		return nil, err
	}

	secret = make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, secret, 0600); err != nil {
		return nil, err
	}
	return secret, nil
}

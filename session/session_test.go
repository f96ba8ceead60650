package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nagraj23/notation-tui/api"
)

func TestReadMissingIsAnonymous(t *testing.T) {
	st := NewStore(t.TempDir())
	s := st.Read()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token)
	assert.Empty(t, s.User.ID)
}

func TestWriteReadRoundTrip(t *testing.T) {
	st := NewStore(t.TempDir())
	user := api.UserProfile{ID: "u1", Name: "Ada"}

	require.NoError(t, st.Write("tok-123", user))

	s := st.Read()
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "tok-123", s.Token)
	assert.Equal(t, user, s.User)
}

func TestSessionFileIsSealed(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	require.NoError(t, st.Write("secret-token", api.UserProfile{ID: "u1"}))

	raw, err := os.ReadFile(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")
}

func TestClear(t *testing.T) {
	st := NewStore(t.TempDir())
	require.NoError(t, st.Write("tok", api.UserProfile{ID: "u1"}))
	require.NoError(t, st.StashNote(api.Note{ID: "n1"}))

	require.NoError(t, st.Clear())

	assert.False(t, st.Read().LoggedIn())
	_, ok := st.TakeNote()
	assert.False(t, ok)

	// clearing twice is fine
	require.NoError(t, st.Clear())
}

func TestCorruptSessionReadsAnonymous(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	require.NoError(t, st.Write("tok", api.UserProfile{ID: "u1"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0600))

	assert.False(t, st.Read().LoggedIn())
}

func TestStashTakeNote(t *testing.T) {
	st := NewStore(t.TempDir())

	_, ok := st.TakeNote()
	assert.False(t, ok)

	n := api.Note{ID: "n42", Title: "t", Content: "c"}
	require.NoError(t, st.StashNote(n))

	got, ok := st.TakeNote()
	require.True(t, ok)
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.Title, got.Title)
}

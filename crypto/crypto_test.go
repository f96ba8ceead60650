package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	secret := []byte("keyfile-material")
	plaintext := []byte(`{"token":"abc123"}`)

	env, err := Seal(plaintext, secret)
	require.NoError(t, err)
	assert.NotEmpty(t, env.Salt)
	assert.NotEmpty(t, env.Nonce)
	assert.NotEqual(t, plaintext, env.Ciphertext)

	out, err := Open(*env, secret)
	require.NoError(t, err)
	assert.Equal(t, plaintext, out)
}

func TestOpenWrongSecret(t *testing.T) {
	env, err := Seal([]byte("hello"), []byte("right"))
	require.NoError(t, err)

	_, err = Open(*env, []byte("wrong"))
	assert.Error(t, err)
}

func TestSealFreshSaltPerCall(t *testing.T) {
	secret := []byte("s")
	a, err := Seal([]byte("x"), secret)
	require.NoError(t, err)
	b, err := Seal([]byte("x"), secret)
	require.NoError(t, err)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

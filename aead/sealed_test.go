package aead_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/aead"
)

// shortKeyAES embeds a parameter type and shadows its exported sizes.
type shortKeyAES struct{ aead.AES256GCMParams }

func (shortKeyAES) Name() string { return "AES-128-GCM" }
func (shortKeyAES) KeySize() int { return 16 }

// shortNonceX shadows the extended nonce size.
type shortNonceX struct{ aead.XChaCha20Poly1305Params }

func (shortNonceX) NonceSize() int { return 12 }

func TestEmbeddedParamsCannotChangeScheme(t *testing.T) {
	var weak aead.Scheme[shortKeyAES]
	assert.Equal(t, "AES-256-GCM", weak.Name())
	assert.Equal(t, aead.AES256GCM{}.ID(), weak.ID())
	assert.Equal(t, 32, weak.KeySize())

	_, err := weak.KeyFromBytes(make([]byte, 16))
	assert.ErrorIs(t, err, cryptocore.ErrInvalidKeySize)

	short, err := cryptocore.NewSymmetricKey(make([]byte, 16))
	require.NoError(t, err)
	_, err = weak.Encrypt(short, make([]byte, 12), []byte("msg"), nil)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidKeySize)
}

func TestEmbeddedParamsCannotChangeNonceSize(t *testing.T) {
	var s aead.Scheme[shortNonceX]
	assert.Equal(t, 24, s.NonceSize())

	key, err := s.GenerateKey()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = s.Encrypt(key, make([]byte, 12), []byte("msg"), nil)
	})
	assert.ErrorIs(t, err, cryptocore.ErrInvalidNonceSize)

	// The embedded scheme interoperates with the real one.
	nonce := bytes.Repeat([]byte{0x07}, 24)
	ct, err := s.Encrypt(key, nonce, []byte("msg"), nil)
	require.NoError(t, err)
	pt, err := aead.XChaCha20Poly1305{}.Decrypt(key, nonce, ct, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("msg"), pt)
}

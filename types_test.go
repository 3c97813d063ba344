package cryptocore

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

func TestSignature_String(t *testing.T) {
	sig := Signature{0xfb, 0xff, 0x00}
	assert.Equal(t, "-_8A", sig.String())

	parsed, err := ParseSignature("-_8A")
	require.NoError(t, err)
	assert.Equal(t, sig, parsed)

	parsed, err = ParseSignature("+/8A")
	require.NoError(t, err)
	assert.Equal(t, sig, parsed)

	_, err = ParseSignature("!!!")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSignature_BytesCopies(t *testing.T) {
	sig := Signature{1, 2, 3}
	b := sig.Bytes()
	b[0] = 9
	assert.Equal(t, byte(1), sig[0])
}

func TestDerivedKey(t *testing.T) {
	dk := DerivedKey{1, 2, 3, 4}
	assert.Equal(t, 4, dk.Len())
	assert.True(t, dk.Equal(DerivedKey{1, 2, 3, 4}))
	assert.False(t, dk.Equal(DerivedKey{1, 2, 3, 5}))
	assert.Equal(t, "[REDACTED]", fmt.Sprint(dk))

	key, err := dk.AsSymmetricKey()
	require.NoError(t, err)

	dk.Wipe()
	assert.Equal(t, DerivedKey{0, 0, 0, 0}, dk)
	assert.Equal(t, []byte{1, 2, 3, 4}, key.Expose())
}

func TestNewSalt(t *testing.T) {
	_, err := NewSalt(nil)
	assert.ErrorIs(t, err, ErrMissingSalt)

	_, err = NewSalt([]byte{})
	assert.ErrorIs(t, err, ErrMissingSalt)

	src := []byte("NaCl")
	salt, err := NewSalt(src)
	require.NoError(t, err)
	src[0] = 'X'
	assert.Equal(t, []byte("NaCl"), salt.Bytes())
	assert.False(t, salt.IsZero())
	assert.True(t, Salt{}.IsZero())
}

func TestGenerateSalt(t *testing.T) {
	restore := entropy.SetReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{7}, 16)))
	defer restore()

	salt, err := GenerateSalt(16)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{7}, 16), salt.Bytes())

	_, err = GenerateSalt(0)
	assert.ErrorIs(t, err, ErrMissingSalt)
}

func TestGenerateSalt_EntropyFailure(t *testing.T) {
	restore := entropy.SetReaderForTesting(bytes.NewReader(nil))
	defer restore()

	_, err := GenerateSalt(16)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateNonce(t *testing.T) {
	a, err := GenerateNonce(24)
	require.NoError(t, err)
	b, err := GenerateNonce(24)
	require.NoError(t, err)

	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)
}

func TestNormalizeAAD(t *testing.T) {
	assert.NotNil(t, NormalizeAAD(nil))
	assert.Empty(t, NormalizeAAD(nil))
	aad := []byte("hdr")
	assert.Equal(t, aad, NormalizeAAD(aad))
}

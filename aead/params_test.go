package aead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkParams[P Params](t *testing.T) {
	t.Helper()
	var p P
	spec := p.spec()
	t.Run(p.Name(), func(t *testing.T) {
		c, err := spec.newCipher(make([]byte, spec.keySize))
		require.NoError(t, err, "declared key size rejected by provider")
		assert.Equal(t, spec.nonceSize, c.NonceSize())
		assert.Equal(t, spec.tagSize, c.Overhead())

		_, err = spec.newCipher(make([]byte, spec.keySize-1))
		assert.Error(t, err)
	})
}

func TestParamsMatchProvider(t *testing.T) {
	checkParams[ChaCha20Poly1305Params](t)
	checkParams[XChaCha20Poly1305Params](t)
	checkParams[AES256GCMParams](t)
}

func TestParamsSizes(t *testing.T) {
	assert.Equal(t, 32, ChaCha20Poly1305Params{}.KeySize())
	assert.Equal(t, 12, ChaCha20Poly1305Params{}.NonceSize())
	assert.Equal(t, 24, XChaCha20Poly1305Params{}.NonceSize())
	assert.Equal(t, 16, XChaCha20Poly1305Params{}.TagSize())
	assert.Equal(t, 32, AES256GCMParams{}.KeySize())
	assert.Equal(t, 12, AES256GCMParams{}.NonceSize())
}

func TestParamsIDs(t *testing.T) {
	assert.Equal(t, uint32(0x02020101), ChaCha20Poly1305Params{}.ID())
	assert.Equal(t, uint32(0x02020201), XChaCha20Poly1305Params{}.ID())
	assert.Equal(t, uint32(0x02020301), AES256GCMParams{}.ID())
}

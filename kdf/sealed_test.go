package kdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/kdf"
)

// unboundedHKDF shadows the HKDF output ceiling.
type unboundedHKDF struct{ kdf.HKDFSHA256Params }

func (unboundedHKDF) Name() string       { return "HKDF-UNBOUNDED" }
func (unboundedHKDF) MaxOutputSize() int { return 0 }

// cheapArgon shadows the default cost and minimum output.
type cheapArgon struct{ kdf.Argon2idParams }

func (cheapArgon) DefaultCost() kdf.Cost { return kdf.Cost{Time: 1, MemoryKiB: 8, Threads: 1} }
func (cheapArgon) MinOutputSize() int    { return 1 }

func TestEmbeddedParamsCannotLiftOutputLimit(t *testing.T) {
	var d kdf.Deriver[unboundedHKDF]
	assert.Equal(t, kdf.HKDFSHA256{}.Name(), d.Name())
	assert.Equal(t, kdf.HKDFSHA256{}.ID(), d.ID())
	assert.Equal(t, 255*32, d.MaxOutputSize())

	_, err := d.Derive([]byte("ikm"), nil, nil, 255*32+1)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidOutputLength)

	got, err := d.Derive([]byte("ikm"), []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	want, err := kdf.HKDFSHA256{}.Derive([]byte("ikm"), []byte("salt"), []byte("info"), 32)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestEmbeddedParamsCannotWeakenPasswordCost(t *testing.T) {
	p := kdf.NewPassword[cheapArgon]()
	assert.Equal(t, kdf.Argon2idParams{}.DefaultCost(), p.Cost())
	assert.Equal(t, kdf.Argon2id{}.Name(), p.Name())

	salt, err := cryptocore.NewSalt([]byte("saltsaltsaltsalt"))
	require.NoError(t, err)
	_, err = kdf.NewPassword[cheapArgon](kdf.WithArgon2Time(1), kdf.WithArgon2Memory(64), kdf.WithArgon2Threads(1)).
		Derive(cryptocore.NewSecret([]byte("pw")), salt, 1)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidOutputLength)
}

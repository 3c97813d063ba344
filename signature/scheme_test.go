package signature

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

// runSchemeTests exercises one instantiation through the generic capability
// interface.
func runSchemeTests[P Params](t *testing.T) {
	var s Scheme[P]
	t.Run(s.Name(), func(t *testing.T) {
		t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, s) })
		t.Run("TamperedMessage", func(t *testing.T) { testTamperedMessage(t, s) })
		t.Run("MalformedSignature", func(t *testing.T) { testMalformedSignature(t, s) })
		t.Run("WrongKey", func(t *testing.T) { testWrongKey(t, s) })
		t.Run("KeyEncoding", func(t *testing.T) { testKeyEncoding(t, s) })
		t.Run("PublicKeyOf", func(t *testing.T) { testPublicKeyOf(t, s) })
		t.Run("Destroy", func(t *testing.T) { testDestroy(t, s) })
	})
}

func TestSchemes_All(t *testing.T) {
	runSchemeTests[MLDSA44Params](t)
	runSchemeTests[MLDSA65Params](t)
	runSchemeTests[MLDSA87Params](t)
	runSchemeTests[Ed25519Params](t)
	runSchemeTests[Ed448Params](t)
}

func testRoundTrip[P Params](t *testing.T, s Scheme[P]) {
	pk, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)
	defer sk.Destroy()

	messages := []struct {
		name string
		msg  []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"short", []byte("hello")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", bytes.Repeat([]byte("x"), 1<<16)},
	}

	for _, m := range messages {
		t.Run(m.name, func(t *testing.T) {
			sig, err := s.Sign(sk, m.msg)
			require.NoError(t, err)
			assert.Len(t, sig, s.SignatureSize())

			assert.NoError(t, s.Verify(pk, m.msg, sig))
		})
	}
}

func testTamperedMessage[P Params](t *testing.T, s Scheme[P]) {
	pk, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("transfer 10 coins")
	sig, err := s.Sign(sk, msg)
	require.NoError(t, err)

	err = s.Verify(pk, []byte("transfer 99 coins"), sig)
	assert.ErrorIs(t, err, cryptocore.ErrVerification)

	tampered := sig.Bytes()
	tampered[len(tampered)/2] ^= 0x01
	err = s.Verify(pk, msg, tampered)
	assert.Error(t, err)
}

func testMalformedSignature[P Params](t *testing.T, s Scheme[P]) {
	pk, _, err := s.GenerateKeyPair()
	require.NoError(t, err)

	for _, sig := range []cryptocore.Signature{
		nil,
		{},
		make([]byte, s.SignatureSize()-1),
		make([]byte, s.SignatureSize()+1),
	} {
		err := s.Verify(pk, []byte("msg"), sig)
		assert.ErrorIs(t, err, cryptocore.ErrInvalidSignature, "len %d", len(sig))
	}

	garbage := bytes.Repeat([]byte{0xFF}, s.SignatureSize())
	assert.NotPanics(t, func() {
		assert.Error(t, s.Verify(pk, []byte("msg"), garbage))
	})

	assert.ErrorIs(t, s.Verify(nil, []byte("msg"), garbage), cryptocore.ErrVerification)
}

func testWrongKey[P Params](t *testing.T, s Scheme[P]) {
	_, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)
	otherPK, _, err := s.GenerateKeyPair()
	require.NoError(t, err)

	sig, err := s.Sign(sk, []byte("msg"))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Verify(otherPK, []byte("msg"), sig), cryptocore.ErrVerification)
}

func testKeyEncoding[P Params](t *testing.T, s Scheme[P]) {
	pk, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)

	pkBytes, err := pk.Bytes()
	require.NoError(t, err)
	assert.Len(t, pkBytes, s.PublicKeySize())

	skBytes, err := sk.Bytes()
	require.NoError(t, err)
	assert.Len(t, skBytes, s.PrivateKeySize())
	defer cryptocore.Wipe(skBytes)

	pk2, err := s.PublicKeyFromBytes(pkBytes)
	require.NoError(t, err)
	assert.True(t, pk.Equal(pk2))

	sk2, err := s.PrivateKeyFromBytes(skBytes)
	require.NoError(t, err)

	sig, err := s.Sign(sk2, []byte("restored"))
	require.NoError(t, err)
	assert.NoError(t, s.Verify(pk2, []byte("restored"), sig))

	_, err = s.PublicKeyFromBytes(pkBytes[:len(pkBytes)-1])
	assert.ErrorIs(t, err, cryptocore.ErrInvalidEncoding)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidLength)
	_, err = s.PublicKeyFromBytes(append(pkBytes, 0))
	assert.ErrorIs(t, err, cryptocore.ErrInvalidLength)
	_, err = s.PrivateKeyFromBytes(skBytes[:10])
	assert.ErrorIs(t, err, cryptocore.ErrInvalidEncoding)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidLength)
	_, err = s.PrivateKeyFromBytes(nil)
	assert.ErrorIs(t, err, cryptocore.ErrInvalidLength)
}

func testPublicKeyOf[P Params](t *testing.T, s Scheme[P]) {
	pk, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)

	derived, err := s.PublicKeyOf(sk)
	require.NoError(t, err)
	assert.True(t, pk.Equal(derived))
}

func testDestroy[P Params](t *testing.T, s Scheme[P]) {
	_, sk, err := s.GenerateKeyPair()
	require.NoError(t, err)

	sk.Destroy()
	sk.Destroy()

	_, err = s.Sign(sk, []byte("msg"))
	assert.ErrorIs(t, err, cryptocore.ErrSigning)

	_, err = sk.Bytes()
	assert.ErrorIs(t, err, cryptocore.ErrInvalidLength)
}

func TestPublicKey_EqualAcrossSchemes(t *testing.T) {
	pk44, _, err := MLDSA44{}.GenerateKeyPair()
	require.NoError(t, err)
	pk65, _, err := MLDSA65{}.GenerateKeyPair()
	require.NoError(t, err)

	assert.False(t, pk44.Equal(pk65))
	assert.True(t, pk44.Equal(pk44))
}

func TestGenerateKeyPair_DeterministicFromEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5A}, 64)

	restore := entropy.SetReaderForTesting(bytes.NewReader(seed))
	pk1, _, err := Ed25519{}.GenerateKeyPair()
	restore()
	require.NoError(t, err)

	restore = entropy.SetReaderForTesting(bytes.NewReader(seed))
	pk2, _, err := Ed25519{}.GenerateKeyPair()
	restore()
	require.NoError(t, err)

	assert.True(t, pk1.Equal(pk2))
}

func TestGenerateKeyPair_EntropyFailure(t *testing.T) {
	restore := entropy.SetReaderForTesting(bytes.NewReader(nil))
	defer restore()

	_, _, err := MLDSA65{}.GenerateKeyPair()
	assert.ErrorIs(t, err, cryptocore.ErrGenerationFailed)
}

func TestPrivateKey_Redacted(t *testing.T) {
	_, sk, err := Ed25519{}.GenerateKeyPair()
	require.NoError(t, err)
	assert.Equal(t, "[REDACTED]", sk.String())
}

func TestSignature_Base64(t *testing.T) {
	pk, sk, err := Ed25519{}.GenerateKeyPair()
	require.NoError(t, err)

	sig, err := Ed25519{}.Sign(sk, []byte("encoded"))
	require.NoError(t, err)

	parsed, err := cryptocore.ParseSignature(sig.String())
	require.NoError(t, err)
	assert.NoError(t, Ed25519{}.Verify(pk, []byte("encoded"), parsed))
}

func TestSchemes(t *testing.T) {
	infos := Schemes()
	require.Len(t, infos, 5)

	ids := make(map[uint32]bool)
	for _, info := range infos {
		assert.Equal(t, cryptocore.FamilyAsymmetric, info.Family())
		assert.False(t, ids[info.ID], info.Name)
		ids[info.ID] = true
	}
}

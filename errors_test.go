package cryptocore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds() []Kind {
	return []Kind{
		KindGenerationFailed, KindInvalidEncoding, KindInvalidLength,
		KindInvalidKeySize, KindInvalidNonceSize, KindOutputTooSmall,
		KindInvalidCiphertext, KindEncryption, KindDecryption,
		KindSigning, KindVerification, KindInvalidSignature,
		KindInvalidPeerPublicKey, KindEncapsulation, KindDecapsulation,
		KindInvalidOutputLength, KindMissingSalt, KindInvalidCost,
	}
}

func TestSentinelErrors(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			require.NotNil(t, k.Sentinel())
			assert.NotEmpty(t, k.Sentinel().Error())
			assert.NotZero(t, k.Category(), "kind has no category")

			prev, dup := seen[k.Sentinel().Error()]
			assert.False(t, dup, "message shared with %d", prev)
			seen[k.Sentinel().Error()] = k
		})
	}
}

func TestKind_Category(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindGenerationFailed, CategoryKey},
		{KindInvalidEncoding, CategoryKey},
		{KindOutputTooSmall, CategorySymmetric},
		{KindDecryption, CategorySymmetric},
		{KindInvalidSignature, CategorySignature},
		{KindInvalidPeerPublicKey, CategoryKeyAgreement},
		{KindDecapsulation, CategoryKEM},
		{KindMissingSalt, CategoryKDF},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Category())
		})
	}
}

func TestKind_Unknown(t *testing.T) {
	k := Kind(999)
	assert.Nil(t, k.Sentinel())
	assert.Equal(t, "unknown error kind 999", k.String())
	assert.Equal(t, "unknown", k.Category().String())
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      &Error{Kind: KindDecryption},
			expected: "decryption failed",
		},
		{
			name:     "with scheme",
			err:      &Error{Kind: KindInvalidNonceSize, Scheme: "AES-256-GCM"},
			expected: "AES-256-GCM: invalid nonce size",
		},
		{
			name:     "with cause",
			err:      &Error{Kind: KindInvalidEncoding, Scheme: "ECDH-P256", Err: errors.New("asn1: syntax error")},
			expected: "ECDH-P256: invalid key encoding: asn1: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("provider said no")
	err := NewError(KindSigning, "ML-DSA-65", cause)

	assert.ErrorIs(t, err, ErrSigning)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrVerification)

	wrapped := fmt.Errorf("sign transcript: %w", err)
	assert.ErrorIs(t, wrapped, ErrSigning)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindSigning, kind)
}

func TestError_CryptoErrorInterface(t *testing.T) {
	var err error = Errorf(KindInvalidLength, "X25519", "got %d bytes", 3)

	var ce CryptoError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Error(), "got 3 bytes")
}

func TestKindOf_ForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestError_LengthIsAnEncodingFailure(t *testing.T) {
	err := Errorf(KindInvalidEncoding, "ML-KEM-768", "%w: public key is %d bytes, want %d", ErrInvalidLength, 3, 1184)

	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.NotErrorIs(t, err, ErrGenerationFailed)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidEncoding, kind)
	assert.Contains(t, err.Error(), "want 1184")
}

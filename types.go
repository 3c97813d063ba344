package cryptocore

import (
	"crypto/subtle"

	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

// Signature is an encoded signature. Its length is fixed per scheme.
type Signature []byte

// Bytes returns a copy of the signature.
func (s Signature) Bytes() []byte {
	return append([]byte(nil), s...)
}

// String returns the signature as URL-safe base64 without padding.
func (s Signature) String() string {
	return ToBase64URL(s)
}

// ParseSignature decodes a base64 signature in any of the accepted alphabets.
func ParseSignature(s string) (Signature, error) {
	b, err := DecodeBase64(s)
	if err != nil {
		return nil, NewError(KindInvalidSignature, "", err)
	}
	return Signature(b), nil
}

// DerivedKey is KDF output. The caller owns it and decides how long it lives.
type DerivedKey []byte

// Len returns the key length.
func (k DerivedKey) Len() int {
	return len(k)
}

// Equal compares two derived keys in constant time.
func (k DerivedKey) Equal(other DerivedKey) bool {
	return subtle.ConstantTimeCompare(k, other) == 1
}

// AsSymmetricKey copies the derived bytes into a SymmetricKey.
func (k DerivedKey) AsSymmetricKey() (*SymmetricKey, error) {
	return NewSymmetricKey(k)
}

// Wipe zeroes the derived key in place.
func (k DerivedKey) Wipe() {
	Wipe(k)
}

func (k DerivedKey) String() string   { return redacted }
func (k DerivedKey) GoString() string { return redacted }

// Salt is a non-empty salt for password-based derivation. The zero Salt is
// rejected by every PasswordDeriver.
type Salt struct {
	b []byte
}

// NewSalt copies b into a Salt. An empty b is rejected.
func NewSalt(b []byte) (Salt, error) {
	if len(b) == 0 {
		return Salt{}, &Error{Kind: KindMissingSalt}
	}
	return Salt{b: append([]byte(nil), b...)}, nil
}

// GenerateSalt returns n random bytes as a Salt.
func GenerateSalt(n int) (Salt, error) {
	if n <= 0 {
		return Salt{}, &Error{Kind: KindMissingSalt}
	}
	b, err := entropy.Bytes(n)
	if err != nil {
		return Salt{}, NewError(KindGenerationFailed, "", err)
	}
	return Salt{b: b}, nil
}

// Bytes returns the salt bytes. The slice must not be modified.
func (s Salt) Bytes() []byte {
	return s.b
}

// Len returns the salt length.
func (s Salt) Len() int {
	return len(s.b)
}

// IsZero reports whether s carries no bytes.
func (s Salt) IsZero() bool {
	return len(s.b) == 0
}

// String returns the salt as URL-safe base64 without padding.
func (s Salt) String() string {
	return ToBase64URL(s.b)
}

// GenerateNonce returns n random bytes for use as an AEAD nonce. Uniqueness
// per key remains the caller's obligation.
func GenerateNonce(n int) ([]byte, error) {
	b, err := entropy.Bytes(n)
	if err != nil {
		return nil, NewError(KindGenerationFailed, "", err)
	}
	return b, nil
}

// NormalizeAAD maps nil associated data to an empty slice so that absent and
// empty associated data authenticate identically.
func NormalizeAAD(aad []byte) []byte {
	if aad == nil {
		return []byte{}
	}
	return aad
}

package aead

import (
	"crypto/cipher"
	"runtime"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

// Scheme is the AEAD implementation shared by every parameter set. The zero
// value is ready to use.
type Scheme[P Params] struct{}

type (
	ChaCha20Poly1305  = Scheme[ChaCha20Poly1305Params]
	XChaCha20Poly1305 = Scheme[XChaCha20Poly1305Params]
	AES256GCM         = Scheme[AES256GCMParams]
)

var (
	_ cryptocore.AEAD = ChaCha20Poly1305{}
	_ cryptocore.AEAD = XChaCha20Poly1305{}
	_ cryptocore.AEAD = AES256GCM{}
)

// Schemes lists the identities of all AEAD schemes.
func Schemes() []cryptocore.Info {
	return []cryptocore.Info{
		cryptocore.InfoOf(ChaCha20Poly1305{}),
		cryptocore.InfoOf(XChaCha20Poly1305{}),
		cryptocore.InfoOf(AES256GCM{}),
	}
}

func (Scheme[P]) spec() aeadSpec {
	var p P
	return p.spec()
}

func (s Scheme[P]) Name() string   { return s.spec().name }
func (s Scheme[P]) ID() uint32     { return s.spec().id }
func (s Scheme[P]) KeySize() int   { return s.spec().keySize }
func (s Scheme[P]) NonceSize() int { return s.spec().nonceSize }
func (s Scheme[P]) TagSize() int   { return s.spec().tagSize }

// GenerateKey returns a fresh random key.
func (s Scheme[P]) GenerateKey() (*cryptocore.SymmetricKey, error) {
	b, err := entropy.Bytes(s.KeySize())
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(b)
	return cryptocore.NewSymmetricKey(b)
}

// KeyFromBytes copies b into a key after checking its length.
func (s Scheme[P]) KeyFromBytes(b []byte) (*cryptocore.SymmetricKey, error) {
	if len(b) != s.KeySize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidKeySize, s.Name(),
			"got %d, want %d", len(b), s.KeySize())
	}
	return cryptocore.NewSymmetricKey(b)
}

// Encrypt seals plaintext and returns ciphertext followed by the tag.
func (s Scheme[P]) Encrypt(key *cryptocore.SymmetricKey, nonce, plaintext, aad []byte) ([]byte, error) {
	c, err := s.cipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return c.Seal(nil, nonce, plaintext, cryptocore.NormalizeAAD(aad)), nil
}

// Decrypt authenticates and opens ciphertext.
func (s Scheme[P]) Decrypt(key *cryptocore.SymmetricKey, nonce, ciphertext, aad []byte) ([]byte, error) {
	c, err := s.cipher(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < s.TagSize() {
		return nil, s.shortCiphertext(ciphertext)
	}
	plaintext, err := c.Open(nil, nonce, ciphertext, cryptocore.NormalizeAAD(aad))
	if err != nil {
		return nil, &cryptocore.Error{Kind: cryptocore.KindDecryption, Scheme: s.Name()}
	}
	return plaintext, nil
}

// EncryptTo seals plaintext into output. Nothing is written unless every
// size check passes. output must not partially overlap plaintext.
func (s Scheme[P]) EncryptTo(key *cryptocore.SymmetricKey, nonce, plaintext, output, aad []byte) (int, error) {
	c, err := s.cipher(key, nonce)
	if err != nil {
		return 0, err
	}
	need := len(plaintext) + s.TagSize()
	if len(output) < need {
		return 0, cryptocore.Errorf(cryptocore.KindOutputTooSmall, s.Name(),
			"got %d, need %d", len(output), need)
	}
	sealed := c.Seal(output[:0], nonce, plaintext, cryptocore.NormalizeAAD(aad))
	return len(sealed), nil
}

// DecryptTo opens ciphertext into output. On authentication failure the
// contents of output are unspecified.
func (s Scheme[P]) DecryptTo(key *cryptocore.SymmetricKey, nonce, ciphertext, output, aad []byte) (int, error) {
	c, err := s.cipher(key, nonce)
	if err != nil {
		return 0, err
	}
	if len(ciphertext) < s.TagSize() {
		return 0, s.shortCiphertext(ciphertext)
	}
	need := len(ciphertext) - s.TagSize()
	if len(output) < need {
		return 0, cryptocore.Errorf(cryptocore.KindOutputTooSmall, s.Name(),
			"got %d, need %d", len(output), need)
	}
	opened, err := c.Open(output[:0], nonce, ciphertext, cryptocore.NormalizeAAD(aad))
	if err != nil {
		return 0, &cryptocore.Error{Kind: cryptocore.KindDecryption, Scheme: s.Name()}
	}
	return len(opened), nil
}

// cipher validates key and nonce sizes and builds the primitive.
func (s Scheme[P]) cipher(key *cryptocore.SymmetricKey, nonce []byte) (cipher.AEAD, error) {
	var k []byte
	if key != nil {
		k = key.Expose()
	}
	if len(k) != s.KeySize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidKeySize, s.Name(),
			"got %d, want %d", len(k), s.KeySize())
	}
	if len(nonce) != s.NonceSize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidNonceSize, s.Name(),
			"got %d, want %d", len(nonce), s.NonceSize())
	}
	c, err := s.spec().newCipher(k)
	runtime.KeepAlive(key)
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindEncryption, s.Name(), err)
	}
	return c, nil
}

func (s Scheme[P]) shortCiphertext(ciphertext []byte) error {
	return cryptocore.Errorf(cryptocore.KindInvalidCiphertext, s.Name(),
		"%d bytes is shorter than the %d-byte tag", len(ciphertext), s.TagSize())
}

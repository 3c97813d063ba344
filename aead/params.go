package aead

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/vaultsandbox/cryptocore"
)

// Params binds a Scheme to one AEAD primitive. It is implemented only by the
// parameter types in this package. A Scheme reads every constant through the
// unexported spec, so a type embedding a parameter type cannot change them.
type Params interface {
	cryptocore.SchemeParams
	spec() aeadSpec
}

type aeadSpec struct {
	name      string
	id        uint32
	keySize   int
	nonceSize int
	tagSize   int
	newCipher func(key []byte) (cipher.AEAD, error)
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

var (
	chacha20Poly1305Spec = aeadSpec{
		name:      "ChaCha20-Poly1305",
		id:        cryptocore.MakeID(cryptocore.FamilySymmetric, cryptocore.ClassAEAD, 0x01),
		keySize:   chacha20poly1305.KeySize,
		nonceSize: chacha20poly1305.NonceSize,
		tagSize:   chacha20poly1305.Overhead,
		newCipher: chacha20poly1305.New,
	}
	xchacha20Poly1305Spec = aeadSpec{
		name:      "XChaCha20-Poly1305",
		id:        cryptocore.MakeID(cryptocore.FamilySymmetric, cryptocore.ClassAEAD, 0x02),
		keySize:   chacha20poly1305.KeySize,
		nonceSize: chacha20poly1305.NonceSizeX,
		tagSize:   chacha20poly1305.Overhead,
		newCipher: chacha20poly1305.NewX,
	}
	aes256GCMSpec = aeadSpec{
		name:      "AES-256-GCM",
		id:        cryptocore.MakeID(cryptocore.FamilySymmetric, cryptocore.ClassAEAD, 0x03),
		keySize:   32,
		nonceSize: 12,
		tagSize:   16,
		newCipher: newAESGCM,
	}
)

// ChaCha20Poly1305Params is RFC 8439 ChaCha20-Poly1305.
type ChaCha20Poly1305Params struct{}

func (ChaCha20Poly1305Params) spec() aeadSpec   { return chacha20Poly1305Spec }
func (p ChaCha20Poly1305Params) Name() string   { return p.spec().name }
func (p ChaCha20Poly1305Params) ID() uint32     { return p.spec().id }
func (p ChaCha20Poly1305Params) KeySize() int   { return p.spec().keySize }
func (p ChaCha20Poly1305Params) NonceSize() int { return p.spec().nonceSize }
func (p ChaCha20Poly1305Params) TagSize() int   { return p.spec().tagSize }

// XChaCha20Poly1305Params is ChaCha20-Poly1305 with a 192-bit nonce.
type XChaCha20Poly1305Params struct{}

func (XChaCha20Poly1305Params) spec() aeadSpec   { return xchacha20Poly1305Spec }
func (p XChaCha20Poly1305Params) Name() string   { return p.spec().name }
func (p XChaCha20Poly1305Params) ID() uint32     { return p.spec().id }
func (p XChaCha20Poly1305Params) KeySize() int   { return p.spec().keySize }
func (p XChaCha20Poly1305Params) NonceSize() int { return p.spec().nonceSize }
func (p XChaCha20Poly1305Params) TagSize() int   { return p.spec().tagSize }

// AES256GCMParams is AES-256 in Galois/Counter Mode.
type AES256GCMParams struct{}

func (AES256GCMParams) spec() aeadSpec   { return aes256GCMSpec }
func (p AES256GCMParams) Name() string   { return p.spec().name }
func (p AES256GCMParams) ID() uint32     { return p.spec().id }
func (p AES256GCMParams) KeySize() int   { return p.spec().keySize }
func (p AES256GCMParams) NonceSize() int { return p.spec().nonceSize }
func (p AES256GCMParams) TagSize() int   { return p.spec().tagSize }

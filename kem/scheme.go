package kem

import (
	"runtime"

	circlkem "github.com/cloudflare/circl/kem"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

// Scheme is the KEM implementation shared by every parameter set. The zero
// value is ready to use.
type Scheme[P Params] struct{}

type (
	MLKEM512  = Scheme[MLKEM512Params]
	MLKEM768  = Scheme[MLKEM768Params]
	MLKEM1024 = Scheme[MLKEM1024Params]
	XWing     = Scheme[XWingParams]
)

var (
	_ cryptocore.KEM[*PublicKey[MLKEM512Params], *PrivateKey[MLKEM512Params]]   = MLKEM512{}
	_ cryptocore.KEM[*PublicKey[MLKEM768Params], *PrivateKey[MLKEM768Params]]   = MLKEM768{}
	_ cryptocore.KEM[*PublicKey[MLKEM1024Params], *PrivateKey[MLKEM1024Params]] = MLKEM1024{}
	_ cryptocore.KEM[*PublicKey[XWingParams], *PrivateKey[XWingParams]]         = XWing{}
)

// Schemes lists the identities of all KEM schemes.
func Schemes() []cryptocore.Info {
	return []cryptocore.Info{
		cryptocore.InfoOf(MLKEM512{}),
		cryptocore.InfoOf(MLKEM768{}),
		cryptocore.InfoOf(MLKEM1024{}),
		cryptocore.InfoOf(XWing{}),
	}
}

func (Scheme[P]) spec() kemSpec {
	var p P
	return p.spec()
}

func (s Scheme[P]) Name() string          { return s.spec().name }
func (s Scheme[P]) ID() uint32            { return s.spec().id }
func (s Scheme[P]) PublicKeySize() int    { return s.spec().publicKeySize }
func (s Scheme[P]) PrivateKeySize() int   { return s.spec().privateKeySize }
func (s Scheme[P]) CiphertextSize() int   { return s.spec().ciphertextSize }
func (s Scheme[P]) SharedSecretSize() int { return s.spec().sharedSecretSize }

// GenerateKeyPair derives a key pair from a fresh random seed.
func (s Scheme[P]) GenerateKeyPair() (*PublicKey[P], *PrivateKey[P], error) {
	provider := s.spec().provider

	seed, err := entropy.Bytes(provider.SeedSize())
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(seed)

	pk, sk := provider.DeriveKeyPair(seed)

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(skBytes)

	return &PublicKey[P]{b: pkBytes}, &PrivateKey[P]{secret: cryptocore.NewSecret(skBytes)}, nil
}

// PublicKeyFromBytes validates and copies a raw public key.
func (s Scheme[P]) PublicKeyFromBytes(b []byte) (*PublicKey[P], error) {
	if len(b) != s.PublicKeySize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(),
			"%w: public key is %d bytes, want %d", cryptocore.ErrInvalidLength, len(b), s.PublicKeySize())
	}
	if _, err := s.spec().provider.UnmarshalBinaryPublicKey(b); err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PublicKey[P]{b: append([]byte(nil), b...)}, nil
}

// PrivateKeyFromBytes validates and copies a raw private key.
func (s Scheme[P]) PrivateKeyFromBytes(b []byte) (*PrivateKey[P], error) {
	if len(b) != s.PrivateKeySize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(),
			"%w: private key is %d bytes, want %d", cryptocore.ErrInvalidLength, len(b), s.PrivateKeySize())
	}
	if _, err := s.spec().provider.UnmarshalBinaryPrivateKey(b); err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PrivateKey[P]{secret: cryptocore.NewSecret(b)}, nil
}

// PublicKeyOf returns the public key matching sk.
func (s Scheme[P]) PublicKeyOf(sk *PrivateKey[P]) (*PublicKey[P], error) {
	priv, err := s.unmarshalPrivate(sk, cryptocore.KindInvalidEncoding)
	if err != nil {
		return nil, err
	}
	b, err := priv.Public().MarshalBinary()
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PublicKey[P]{b: b}, nil
}

// Encapsulate generates a shared secret for the holder of pk and returns it
// with the ciphertext to send them.
func (s Scheme[P]) Encapsulate(pk *PublicKey[P]) (*cryptocore.SharedSecret, []byte, error) {
	if pk == nil {
		return nil, nil, cryptocore.Errorf(cryptocore.KindEncapsulation, s.Name(), "nil public key")
	}
	provider := s.spec().provider

	pub, err := provider.UnmarshalBinaryPublicKey(pk.b)
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindEncapsulation, s.Name(), err)
	}

	seed, err := entropy.Bytes(provider.EncapsulationSeedSize())
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(seed)

	ct, ss, err := provider.EncapsulateDeterministically(pub, seed)
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindEncapsulation, s.Name(), err)
	}
	defer cryptocore.Wipe(ss)

	return cryptocore.NewSharedSecret(ss), ct, nil
}

// Decapsulate recovers the shared secret carried by ciphertext. ML-KEM uses
// implicit rejection: a tampered ciphertext yields an unrelated secret rather
// than an error.
func (s Scheme[P]) Decapsulate(sk *PrivateKey[P], ciphertext []byte) (*cryptocore.SharedSecret, error) {
	if len(ciphertext) != s.CiphertextSize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidCiphertext, s.Name(),
			"ciphertext is %d bytes, want %d", len(ciphertext), s.CiphertextSize())
	}
	priv, err := s.unmarshalPrivate(sk, cryptocore.KindDecapsulation)
	if err != nil {
		return nil, err
	}
	ss, err := s.spec().provider.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindDecapsulation, s.Name(), err)
	}
	defer cryptocore.Wipe(ss)

	return cryptocore.NewSharedSecret(ss), nil
}

func (s Scheme[P]) unmarshalPrivate(sk *PrivateKey[P], kind cryptocore.Kind) (circlkem.PrivateKey, error) {
	b := sk.expose()
	if len(b) != s.PrivateKeySize() {
		return nil, cryptocore.Errorf(kind, s.Name(), "private key unavailable")
	}
	priv, err := s.spec().provider.UnmarshalBinaryPrivateKey(b)
	runtime.KeepAlive(sk)
	if err != nil {
		return nil, cryptocore.NewError(kind, s.Name(), err)
	}
	return priv, nil
}

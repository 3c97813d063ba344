package agreement

import (
	"errors"
	"runtime"

	"github.com/vaultsandbox/cryptocore"
)

// Scheme is the key agreement implementation shared by every curve. The zero
// value is ready to use.
type Scheme[P Params] struct{}

type (
	ECDHP256  = Scheme[P256Params]
	ECDHP384  = Scheme[P384Params]
	ECDHP521  = Scheme[P521Params]
	X25519    = Scheme[X25519Params]
	Secp256k1 = Scheme[Secp256k1Params]
)

var (
	_ cryptocore.KeyAgreement[*PublicKey[P256Params], *PrivateKey[P256Params]]           = ECDHP256{}
	_ cryptocore.KeyAgreement[*PublicKey[P384Params], *PrivateKey[P384Params]]           = ECDHP384{}
	_ cryptocore.KeyAgreement[*PublicKey[P521Params], *PrivateKey[P521Params]]           = ECDHP521{}
	_ cryptocore.KeyAgreement[*PublicKey[X25519Params], *PrivateKey[X25519Params]]       = X25519{}
	_ cryptocore.KeyAgreement[*PublicKey[Secp256k1Params], *PrivateKey[Secp256k1Params]] = Secp256k1{}
)

// Schemes lists the identities of all key agreement schemes.
func Schemes() []cryptocore.Info {
	return []cryptocore.Info{
		cryptocore.InfoOf(ECDHP256{}),
		cryptocore.InfoOf(ECDHP384{}),
		cryptocore.InfoOf(ECDHP521{}),
		cryptocore.InfoOf(X25519{}),
		cryptocore.InfoOf(Secp256k1{}),
	}
}

func (Scheme[P]) spec() curveSpec {
	var p P
	return p.spec()
}

func (s Scheme[P]) Name() string          { return s.spec().name }
func (s Scheme[P]) ID() uint32            { return s.spec().id }
func (s Scheme[P]) SharedSecretSize() int { return s.spec().sharedSecretSize }

// GenerateKeyPair returns a fresh key pair.
func (s Scheme[P]) GenerateKeyPair() (*PublicKey[P], *PrivateKey[P], error) {
	pub, priv, err := s.spec().backend.generate()
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(priv)

	return &PublicKey[P]{b: pub}, &PrivateKey[P]{secret: cryptocore.NewSecret(priv)}, nil
}

// PublicKeyFromBytes decodes and validates an encoded public key.
func (s Scheme[P]) PublicKeyFromBytes(b []byte) (*PublicKey[P], error) {
	if len(b) == 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(), "%w: empty public key", cryptocore.ErrInvalidLength)
	}
	if err := s.spec().backend.parsePublic(b); err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PublicKey[P]{b: append([]byte(nil), b...)}, nil
}

// PrivateKeyFromBytes decodes and validates an encoded private key.
func (s Scheme[P]) PrivateKeyFromBytes(b []byte) (*PrivateKey[P], error) {
	if len(b) == 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(), "%w: empty private key", cryptocore.ErrInvalidLength)
	}
	if err := s.spec().backend.parsePrivate(b); err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PrivateKey[P]{secret: cryptocore.NewSecret(b)}, nil
}

// PublicKeyOf returns the public key matching sk.
func (s Scheme[P]) PublicKeyOf(sk *PrivateKey[P]) (*PublicKey[P], error) {
	b := sk.expose()
	if len(b) == 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(), "private key unavailable")
	}
	pub, err := s.spec().backend.publicOf(b)
	runtime.KeepAlive(sk)
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PublicKey[P]{b: pub}, nil
}

// Agree computes the shared secret between sk and the peer's public key.
func (s Scheme[P]) Agree(sk *PrivateKey[P], peer *PublicKey[P]) (*cryptocore.SharedSecret, error) {
	if peer == nil || len(peer.b) == 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidPeerPublicKey, s.Name(), "missing peer public key")
	}
	b := sk.expose()
	if len(b) == 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(), "private key unavailable")
	}

	secret, err := s.spec().backend.agree(b, peer.b)
	runtime.KeepAlive(sk)
	if err != nil {
		var pe errPeer
		if errors.As(err, &pe) {
			return nil, cryptocore.NewError(cryptocore.KindInvalidPeerPublicKey, s.Name(), pe.err)
		}
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	defer cryptocore.Wipe(secret)

	if len(secret) != s.SharedSecretSize() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(),
			"shared secret is %d bytes, want %d", len(secret), s.SharedSecretSize())
	}
	return cryptocore.NewSharedSecret(secret), nil
}

package signature

import (
	"fmt"
	"runtime"

	"github.com/cloudflare/circl/sign"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

// Scheme is the signature implementation shared by every parameter set. The
// zero value is ready to use.
type Scheme[P Params] struct{}

type (
	MLDSA44 = Scheme[MLDSA44Params]
	MLDSA65 = Scheme[MLDSA65Params]
	MLDSA87 = Scheme[MLDSA87Params]
	Ed25519 = Scheme[Ed25519Params]
	Ed448   = Scheme[Ed448Params]
)

var (
	_ cryptocore.SignatureScheme[*PublicKey[MLDSA44Params], *PrivateKey[MLDSA44Params]] = MLDSA44{}
	_ cryptocore.SignatureScheme[*PublicKey[MLDSA65Params], *PrivateKey[MLDSA65Params]] = MLDSA65{}
	_ cryptocore.SignatureScheme[*PublicKey[MLDSA87Params], *PrivateKey[MLDSA87Params]] = MLDSA87{}
	_ cryptocore.SignatureScheme[*PublicKey[Ed25519Params], *PrivateKey[Ed25519Params]] = Ed25519{}
	_ cryptocore.SignatureScheme[*PublicKey[Ed448Params], *PrivateKey[Ed448Params]]     = Ed448{}
)

// Schemes lists the identities of all signature schemes.
func Schemes() []cryptocore.Info {
	return []cryptocore.Info{
		cryptocore.InfoOf(MLDSA44{}),
		cryptocore.InfoOf(MLDSA65{}),
		cryptocore.InfoOf(MLDSA87{}),
		cryptocore.InfoOf(Ed25519{}),
		cryptocore.InfoOf(Ed448{}),
	}
}

func (Scheme[P]) spec() signatureSpec {
	var p P
	return p.spec()
}

func (s Scheme[P]) Name() string        { return s.spec().name }
func (s Scheme[P]) ID() uint32          { return s.spec().id }
func (s Scheme[P]) PublicKeySize() int  { return s.spec().publicKeySize }
func (s Scheme[P]) PrivateKeySize() int { return s.spec().privateKeySize }
func (s Scheme[P]) SignatureSize() int  { return s.spec().signatureSize }

// GenerateKeyPair derives a key pair from a fresh random seed.
func (s Scheme[P]) GenerateKeyPair() (*PublicKey[P], *PrivateKey[P], error) {
	provider := s.spec().provider

	seed, err := entropy.Bytes(provider.SeedSize())
	if err != nil {
		return nil, nil, cryptocore.NewError(cryptocore.KindGenerationFailed, s.Name(), err)
	}
	defer cryptocore.Wipe(seed)

	pk, sk := provider.DeriveKey(seed)
	defer wipeProviderKey(sk)

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
	sk, err := s.spec().provider.UnmarshalBinaryPrivateKey(b)
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	wipeProviderKey(sk)
	return &PrivateKey[P]{secret: cryptocore.NewSecret(b)}, nil
}

// PublicKeyOf returns the public key matching sk.
func (s Scheme[P]) PublicKeyOf(sk *PrivateKey[P]) (*PublicKey[P], error) {
	priv, err := s.unmarshalPrivate(sk, cryptocore.KindInvalidEncoding)
	if err != nil {
		return nil, err
	}
	defer wipeProviderKey(priv)

	pub, ok := priv.Public().(sign.PublicKey)
	if !ok {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidEncoding, s.Name(), "unexpected public key type %T", priv.Public())
	}
	b, err := pub.MarshalBinary()
	if err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidEncoding, s.Name(), err)
	}
	return &PublicKey[P]{b: b}, nil
}

// Sign returns a detached signature over message. An empty message is valid.
func (s Scheme[P]) Sign(sk *PrivateKey[P], message []byte) (sig cryptocore.Signature, err error) {
	priv, err := s.unmarshalPrivate(sk, cryptocore.KindSigning)
	if err != nil {
		return nil, err
	}
	defer wipeProviderKey(priv)

	defer func() {
		if r := recover(); r != nil {
			sig, err = nil, cryptocore.NewError(cryptocore.KindSigning, s.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()

	out := s.spec().provider.Sign(priv, message, nil)
	if len(out) != s.SignatureSize() {
		return nil, cryptocore.Errorf(cryptocore.KindSigning, s.Name(),
			"provider returned %d bytes, want %d", len(out), s.SignatureSize())
	}
	return cryptocore.Signature(out), nil
}

// Verify checks sig over message. It returns nil only for a valid signature.
// Malformed signatures yield ErrInvalidSignature, well-formed but wrong ones
// ErrVerification.
func (s Scheme[P]) Verify(pk *PublicKey[P], message []byte, sig cryptocore.Signature) (err error) {
	if pk == nil {
		return cryptocore.Errorf(cryptocore.KindVerification, s.Name(), "nil public key")
	}
	if len(sig) != s.SignatureSize() {
		return cryptocore.Errorf(cryptocore.KindInvalidSignature, s.Name(),
			"signature is %d bytes, want %d", len(sig), s.SignatureSize())
	}

	provider := s.spec().provider
	pub, err := provider.UnmarshalBinaryPublicKey(pk.b)
	if err != nil {
		return cryptocore.NewError(cryptocore.KindVerification, s.Name(), err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = cryptocore.NewError(cryptocore.KindInvalidSignature, s.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()

	if !provider.Verify(pub, message, sig, nil) {
		return &cryptocore.Error{Kind: cryptocore.KindVerification, Scheme: s.Name()}
	}
	return nil
}

func (s Scheme[P]) unmarshalPrivate(sk *PrivateKey[P], kind cryptocore.Kind) (sign.PrivateKey, error) {
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

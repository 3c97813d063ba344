package signature

import (
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/cloudflare/circl/sign/ed448"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"

	"github.com/vaultsandbox/cryptocore"
)

// Params binds a Scheme to one signature primitive. It is implemented only by
// the parameter types in this package. A Scheme reads every constant through
// the unexported spec, so a type embedding a parameter type cannot change them.
type Params interface {
	cryptocore.SchemeParams
	spec() signatureSpec
}

type signatureSpec struct {
	name           string
	id             uint32
	publicKeySize  int
	privateKeySize int
	signatureSize  int
	provider       sign.Scheme
}

func signatureID(variant uint8) uint32 {
	return cryptocore.MakeID(cryptocore.FamilyAsymmetric, cryptocore.ClassSignature, variant)
}

var (
	mldsa44Spec = signatureSpec{
		name:           "ML-DSA-44",
		id:             signatureID(0x01),
		publicKeySize:  mldsa44.PublicKeySize,
		privateKeySize: mldsa44.PrivateKeySize,
		signatureSize:  mldsa44.SignatureSize,
		provider:       mldsa44.Scheme(),
	}
	mldsa65Spec = signatureSpec{
		name:           "ML-DSA-65",
		id:             signatureID(0x02),
		publicKeySize:  mldsa65.PublicKeySize,
		privateKeySize: mldsa65.PrivateKeySize,
		signatureSize:  mldsa65.SignatureSize,
		provider:       mldsa65.Scheme(),
	}
	mldsa87Spec = signatureSpec{
		name:           "ML-DSA-87",
		id:             signatureID(0x03),
		publicKeySize:  mldsa87.PublicKeySize,
		privateKeySize: mldsa87.PrivateKeySize,
		signatureSize:  mldsa87.SignatureSize,
		provider:       mldsa87.Scheme(),
	}
	ed25519Spec = signatureSpec{
		name:           "Ed25519",
		id:             signatureID(0x10),
		publicKeySize:  ed25519.PublicKeySize,
		privateKeySize: ed25519.PrivateKeySize,
		signatureSize:  ed25519.SignatureSize,
		provider:       ed25519.Scheme(),
	}
	ed448Spec = signatureSpec{
		name:           "Ed448",
		id:             signatureID(0x11),
		publicKeySize:  ed448.PublicKeySize,
		privateKeySize: ed448.PrivateKeySize,
		signatureSize:  ed448.SignatureSize,
		provider:       ed448.Scheme(),
	}
)

// MLDSA44Params is ML-DSA-44, NIST security category 2.
type MLDSA44Params struct{}

func (MLDSA44Params) spec() signatureSpec   { return mldsa44Spec }
func (p MLDSA44Params) Name() string        { return p.spec().name }
func (p MLDSA44Params) ID() uint32          { return p.spec().id }
func (p MLDSA44Params) PublicKeySize() int  { return p.spec().publicKeySize }
func (p MLDSA44Params) PrivateKeySize() int { return p.spec().privateKeySize }
func (p MLDSA44Params) SignatureSize() int  { return p.spec().signatureSize }

// MLDSA65Params is ML-DSA-65, NIST security category 3.
type MLDSA65Params struct{}

func (MLDSA65Params) spec() signatureSpec   { return mldsa65Spec }
func (p MLDSA65Params) Name() string        { return p.spec().name }
func (p MLDSA65Params) ID() uint32          { return p.spec().id }
func (p MLDSA65Params) PublicKeySize() int  { return p.spec().publicKeySize }
func (p MLDSA65Params) PrivateKeySize() int { return p.spec().privateKeySize }
func (p MLDSA65Params) SignatureSize() int  { return p.spec().signatureSize }

// MLDSA87Params is ML-DSA-87, NIST security category 5.
type MLDSA87Params struct{}

func (MLDSA87Params) spec() signatureSpec   { return mldsa87Spec }
func (p MLDSA87Params) Name() string        { return p.spec().name }
func (p MLDSA87Params) ID() uint32          { return p.spec().id }
func (p MLDSA87Params) PublicKeySize() int  { return p.spec().publicKeySize }
func (p MLDSA87Params) PrivateKeySize() int { return p.spec().privateKeySize }
func (p MLDSA87Params) SignatureSize() int  { return p.spec().signatureSize }

// Ed25519Params is pure Ed25519.
type Ed25519Params struct{}

func (Ed25519Params) spec() signatureSpec   { return ed25519Spec }
func (p Ed25519Params) Name() string        { return p.spec().name }
func (p Ed25519Params) ID() uint32          { return p.spec().id }
func (p Ed25519Params) PublicKeySize() int  { return p.spec().publicKeySize }
func (p Ed25519Params) PrivateKeySize() int { return p.spec().privateKeySize }
func (p Ed25519Params) SignatureSize() int  { return p.spec().signatureSize }

// Ed448Params is pure Ed448 with an empty context.
type Ed448Params struct{}

func (Ed448Params) spec() signatureSpec   { return ed448Spec }
func (p Ed448Params) Name() string        { return p.spec().name }
func (p Ed448Params) ID() uint32          { return p.spec().id }
func (p Ed448Params) PublicKeySize() int  { return p.spec().publicKeySize }
func (p Ed448Params) PrivateKeySize() int { return p.spec().privateKeySize }
func (p Ed448Params) SignatureSize() int  { return p.spec().signatureSize }

// wipeProviderKey zeroes provider private keys that are plain byte slices.
func wipeProviderKey(sk sign.PrivateKey) {
	switch k := sk.(type) {
	case ed25519.PrivateKey:
		cryptocore.Wipe(k)
	case ed448.PrivateKey:
		cryptocore.Wipe(k)
	}
}

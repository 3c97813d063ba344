package agreement

import (
	"github.com/vaultsandbox/cryptocore"
)

// Params binds a Scheme to one curve. It is implemented only by the parameter
// types in this package. A Scheme reads every constant through the unexported
// spec, so a type embedding a parameter type cannot change them.
type Params interface {
	cryptocore.SchemeParams
	spec() curveSpec
}

type curveSpec struct {
	name             string
	id               uint32
	sharedSecretSize int
	backend          curveBackend
}

// curveBackend is the provider contract: encodings in, encodings out.
// Errors from parsePublic are reported as invalid peer keys during agreement
// and as invalid encodings when restoring keys.
type curveBackend interface {
	generate() (pub, priv []byte, err error)
	parsePublic(b []byte) error
	parsePrivate(b []byte) error
	publicOf(priv []byte) ([]byte, error)
	agree(priv, peer []byte) ([]byte, error)
}

// errPeer marks agree failures caused by the peer's public key.
type errPeer struct{ err error }

func (e errPeer) Error() string { return e.err.Error() }
func (e errPeer) Unwrap() error { return e.err }

func agreementID(variant uint8) uint32 {
	return cryptocore.MakeID(cryptocore.FamilyAsymmetric, cryptocore.ClassAgreement, variant)
}

var (
	p256Spec      = curveSpec{name: "ECDH-P256", id: agreementID(0x01), sharedSecretSize: 32, backend: nistP256}
	p384Spec      = curveSpec{name: "ECDH-P384", id: agreementID(0x02), sharedSecretSize: 48, backend: nistP384}
	p521Spec      = curveSpec{name: "ECDH-P521", id: agreementID(0x03), sharedSecretSize: 66, backend: nistP521}
	x25519Spec    = curveSpec{name: "X25519", id: agreementID(0x10), sharedSecretSize: 32, backend: x25519}
	secp256k1Spec = curveSpec{name: "ECDH-secp256k1", id: agreementID(0x20), sharedSecretSize: 32, backend: secp256k1Backend{}}
)

// P256Params is ECDH over NIST P-256.
type P256Params struct{}

func (P256Params) spec() curveSpec         { return p256Spec }
func (p P256Params) Name() string          { return p.spec().name }
func (p P256Params) ID() uint32            { return p.spec().id }
func (p P256Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// P384Params is ECDH over NIST P-384.
type P384Params struct{}

func (P384Params) spec() curveSpec         { return p384Spec }
func (p P384Params) Name() string          { return p.spec().name }
func (p P384Params) ID() uint32            { return p.spec().id }
func (p P384Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// P521Params is ECDH over NIST P-521.
type P521Params struct{}

func (P521Params) spec() curveSpec         { return p521Spec }
func (p P521Params) Name() string          { return p.spec().name }
func (p P521Params) ID() uint32            { return p.spec().id }
func (p P521Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// X25519Params is X25519 (RFC 7748).
type X25519Params struct{}

func (X25519Params) spec() curveSpec         { return x25519Spec }
func (p X25519Params) Name() string          { return p.spec().name }
func (p X25519Params) ID() uint32            { return p.spec().id }
func (p X25519Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// Secp256k1Params is ECDH over secp256k1. The shared secret is the x
// coordinate of the shared point.
type Secp256k1Params struct{}

func (Secp256k1Params) spec() curveSpec         { return secp256k1Spec }
func (p Secp256k1Params) Name() string          { return p.spec().name }
func (p Secp256k1Params) ID() uint32            { return p.spec().id }
func (p Secp256k1Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

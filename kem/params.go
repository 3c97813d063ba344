package kem

import (
	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/kem/xwing"

	"github.com/vaultsandbox/cryptocore"
)

// Params binds a Scheme to one KEM primitive. It is implemented only by the
// parameter types in this package. A Scheme reads every constant through the
// unexported spec, so a type embedding a parameter type cannot change them.
type Params interface {
	cryptocore.SchemeParams
	spec() kemSpec
}

type kemSpec struct {
	name             string
	id               uint32
	publicKeySize    int
	privateKeySize   int
	ciphertextSize   int
	sharedSecretSize int
	provider         circlkem.Scheme
}

func kemID(variant uint8) uint32 {
	return cryptocore.MakeID(cryptocore.FamilyAsymmetric, cryptocore.ClassKEM, variant)
}

var (
	mlkem512Spec = kemSpec{
		name:             "ML-KEM-512",
		id:               kemID(0x01),
		publicKeySize:    mlkem512.PublicKeySize,
		privateKeySize:   mlkem512.PrivateKeySize,
		ciphertextSize:   mlkem512.CiphertextSize,
		sharedSecretSize: mlkem512.SharedKeySize,
		provider:         mlkem512.Scheme(),
	}
	mlkem768Spec = kemSpec{
		name:             "ML-KEM-768",
		id:               kemID(0x02),
		publicKeySize:    mlkem768.PublicKeySize,
		privateKeySize:   mlkem768.PrivateKeySize,
		ciphertextSize:   mlkem768.CiphertextSize,
		sharedSecretSize: mlkem768.SharedKeySize,
		provider:         mlkem768.Scheme(),
	}
	mlkem1024Spec = kemSpec{
		name:             "ML-KEM-1024",
		id:               kemID(0x03),
		publicKeySize:    mlkem1024.PublicKeySize,
		privateKeySize:   mlkem1024.PrivateKeySize,
		ciphertextSize:   mlkem1024.CiphertextSize,
		sharedSecretSize: mlkem1024.SharedKeySize,
		provider:         mlkem1024.Scheme(),
	}
	xwingSpec = kemSpec{
		name:             "X-Wing",
		id:               kemID(0x10),
		publicKeySize:    xwing.PublicKeySize,
		privateKeySize:   xwing.PrivateKeySize,
		ciphertextSize:   xwing.CiphertextSize,
		sharedSecretSize: xwing.SharedKeySize,
		provider:         xwing.Scheme(),
	}
)

// MLKEM512Params is ML-KEM-512.
type MLKEM512Params struct{}

func (MLKEM512Params) spec() kemSpec           { return mlkem512Spec }
func (p MLKEM512Params) Name() string          { return p.spec().name }
func (p MLKEM512Params) ID() uint32            { return p.spec().id }
func (p MLKEM512Params) PublicKeySize() int    { return p.spec().publicKeySize }
func (p MLKEM512Params) PrivateKeySize() int   { return p.spec().privateKeySize }
func (p MLKEM512Params) CiphertextSize() int   { return p.spec().ciphertextSize }
func (p MLKEM512Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// MLKEM768Params is ML-KEM-768.
type MLKEM768Params struct{}

func (MLKEM768Params) spec() kemSpec           { return mlkem768Spec }
func (p MLKEM768Params) Name() string          { return p.spec().name }
func (p MLKEM768Params) ID() uint32            { return p.spec().id }
func (p MLKEM768Params) PublicKeySize() int    { return p.spec().publicKeySize }
func (p MLKEM768Params) PrivateKeySize() int   { return p.spec().privateKeySize }
func (p MLKEM768Params) CiphertextSize() int   { return p.spec().ciphertextSize }
func (p MLKEM768Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// MLKEM1024Params is ML-KEM-1024.
type MLKEM1024Params struct{}

func (MLKEM1024Params) spec() kemSpec           { return mlkem1024Spec }
func (p MLKEM1024Params) Name() string          { return p.spec().name }
func (p MLKEM1024Params) ID() uint32            { return p.spec().id }
func (p MLKEM1024Params) PublicKeySize() int    { return p.spec().publicKeySize }
func (p MLKEM1024Params) PrivateKeySize() int   { return p.spec().privateKeySize }
func (p MLKEM1024Params) CiphertextSize() int   { return p.spec().ciphertextSize }
func (p MLKEM1024Params) SharedSecretSize() int { return p.spec().sharedSecretSize }

// XWingParams is the X-Wing hybrid KEM.
type XWingParams struct{}

func (XWingParams) spec() kemSpec           { return xwingSpec }
func (p XWingParams) Name() string          { return p.spec().name }
func (p XWingParams) ID() uint32            { return p.spec().id }
func (p XWingParams) PublicKeySize() int    { return p.spec().publicKeySize }
func (p XWingParams) PrivateKeySize() int   { return p.spec().privateKeySize }
func (p XWingParams) CiphertextSize() int   { return p.spec().ciphertextSize }
func (p XWingParams) SharedSecretSize() int { return p.spec().sharedSecretSize }

package kdf

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/vaultsandbox/cryptocore"
)

// PasswordParams binds a Password scheme to one primitive. It is implemented
// only by the parameter types in this package. A Password reads every
// constant through the unexported spec, so a type embedding a parameter type
// cannot change them.
type PasswordParams interface {
	cryptocore.SchemeParams
	spec() passwordSpec
}

type passwordSpec struct {
	name        string
	id          uint32
	defaultCost Cost
	minOutput   int
	validate    func(c Cost) error
	derive      func(password, salt []byte, c Cost, outputLen int) []byte
}

var errIterations = errors.New("iteration count must be at least 1")

func passwordID(variant uint8) uint32 {
	return cryptocore.MakeID(cryptocore.FamilyKDF, cryptocore.ClassPassword, variant)
}

func validateIterations(c Cost) error {
	if c.Iterations < 1 {
		return errIterations
	}
	return nil
}

func pbkdf2SHA256(password, salt []byte, c Cost, outputLen int) []byte {
	return pbkdf2.Key(password, salt, c.Iterations, outputLen, sha256.New)
}

func pbkdf2SHA512(password, salt []byte, c Cost, outputLen int) []byte {
	return pbkdf2.Key(password, salt, c.Iterations, outputLen, sha512.New)
}

func validateArgon2(c Cost) error {
	switch {
	case c.Time < 1:
		return errors.New("time must be at least 1")
	case c.Threads < 1:
		return errors.New("threads must be at least 1")
	case c.MemoryKiB < 8*uint32(c.Threads):
		return fmt.Errorf("memory must be at least %d KiB for %d threads", 8*uint32(c.Threads), c.Threads)
	}
	return nil
}

func argon2id(password, salt []byte, c Cost, outputLen int) []byte {
	return argon2.IDKey(password, salt, c.Time, c.MemoryKiB, c.Threads, uint32(outputLen))
}

// PBKDF2SHA256Params is PBKDF2 with HMAC-SHA256.
type PBKDF2SHA256Params struct{}

func (PBKDF2SHA256Params) spec() passwordSpec {
	return passwordSpec{
		name:        "PBKDF2-SHA256",
		id:          passwordID(0x01),
		defaultCost: Cost{Iterations: DefaultPBKDF2SHA256Iterations},
		minOutput:   1,
		validate:    validateIterations,
		derive:      pbkdf2SHA256,
	}
}

func (p PBKDF2SHA256Params) Name() string       { return p.spec().name }
func (p PBKDF2SHA256Params) ID() uint32         { return p.spec().id }
func (p PBKDF2SHA256Params) DefaultCost() Cost  { return p.spec().defaultCost }
func (p PBKDF2SHA256Params) MinOutputSize() int { return p.spec().minOutput }

// PBKDF2SHA512Params is PBKDF2 with HMAC-SHA512.
type PBKDF2SHA512Params struct{}

func (PBKDF2SHA512Params) spec() passwordSpec {
	return passwordSpec{
		name:        "PBKDF2-SHA512",
		id:          passwordID(0x02),
		defaultCost: Cost{Iterations: DefaultPBKDF2SHA512Iterations},
		minOutput:   1,
		validate:    validateIterations,
		derive:      pbkdf2SHA512,
	}
}

func (p PBKDF2SHA512Params) Name() string       { return p.spec().name }
func (p PBKDF2SHA512Params) ID() uint32         { return p.spec().id }
func (p PBKDF2SHA512Params) DefaultCost() Cost  { return p.spec().defaultCost }
func (p PBKDF2SHA512Params) MinOutputSize() int { return p.spec().minOutput }

// Argon2idParams is Argon2id version 0x13.
type Argon2idParams struct{}

func (Argon2idParams) spec() passwordSpec {
	return passwordSpec{
		name: "Argon2id",
		id:   passwordID(0x03),
		defaultCost: Cost{
			Time:      DefaultArgon2Time,
			MemoryKiB: DefaultArgon2MemoryKiB,
			Threads:   DefaultArgon2Threads,
		},
		minOutput: 4,
		validate:  validateArgon2,
		derive:    argon2id,
	}
}

func (p Argon2idParams) Name() string       { return p.spec().name }
func (p Argon2idParams) ID() uint32         { return p.spec().id }
func (p Argon2idParams) DefaultCost() Cost  { return p.spec().defaultCost }
func (p Argon2idParams) MinOutputSize() int { return p.spec().minOutput }

// Password is the password-based KDF shared by every parameter set. The zero
// value uses the parameter set's default cost.
type Password[P PasswordParams] struct {
	cost *Cost
}

type (
	PBKDF2SHA256 = Password[PBKDF2SHA256Params]
	PBKDF2SHA512 = Password[PBKDF2SHA512Params]
	Argon2id     = Password[Argon2idParams]
)

var (
	_ cryptocore.PasswordDeriver = PBKDF2SHA256{}
	_ cryptocore.PasswordDeriver = PBKDF2SHA512{}
	_ cryptocore.PasswordDeriver = Argon2id{}
)

// NewPassword returns a scheme whose cost starts at the default and is then
// adjusted by opts.
func NewPassword[P PasswordParams](opts ...Option) Password[P] {
	var p P
	c := p.spec().defaultCost
	for _, opt := range opts {
		opt(&c)
	}
	return Password[P]{cost: &c}
}

func (Password[P]) spec() passwordSpec {
	var p P
	return p.spec()
}

func (s Password[P]) Name() string { return s.spec().name }
func (s Password[P]) ID() uint32   { return s.spec().id }

// Cost returns the work factor bound to this instance.
func (s Password[P]) Cost() Cost {
	if s.cost == nil {
		return s.spec().defaultCost
	}
	return *s.cost
}

// Derive stretches password into outputLen bytes. The call blocks for as long
// as the configured cost requires. A nil or destroyed password is rejected.
func (s Password[P]) Derive(password *cryptocore.Secret, salt cryptocore.Salt, outputLen int) (cryptocore.DerivedKey, error) {
	spec := s.spec()
	if password == nil || password.Destroyed() {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidLength, s.Name(), "password unavailable")
	}
	if salt.IsZero() {
		return nil, &cryptocore.Error{Kind: cryptocore.KindMissingSalt, Scheme: s.Name()}
	}
	if outputLen < spec.minOutput || outputLen > math.MaxInt32 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidOutputLength, s.Name(),
			"output length %d out of range", outputLen)
	}
	cost := s.Cost()
	if err := spec.validate(cost); err != nil {
		return nil, cryptocore.NewError(cryptocore.KindInvalidCost, s.Name(), err)
	}

	out := spec.derive(password.Expose(), salt.Bytes(), cost, outputLen)
	runtime.KeepAlive(password)
	return cryptocore.DerivedKey(out), nil
}

package kdf

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/vaultsandbox/cryptocore"
)

// HighEntropyParams binds a Deriver to one primitive. It is implemented only
// by the parameter types in this package. A Deriver reads every constant
// through the unexported spec, so a type embedding a parameter type cannot
// change them.
type HighEntropyParams interface {
	cryptocore.SchemeParams
	spec() deriverSpec
}

type deriverSpec struct {
	name string
	id   uint32
	// maxOutput is the largest output the primitive can produce, or zero
	// when it is unbounded.
	maxOutput int
	derive    func(ikm, salt, info, out []byte) error
}

func highEntropyID(class, variant uint8) uint32 {
	return cryptocore.MakeID(cryptocore.FamilyKDF, class, variant)
}

// hkdfDerive runs HKDF with the given hash. A nil salt is replaced with a
// hash-length run of zeros as RFC 5869 specifies.
func hkdfDerive(h func() hash.Hash, size int, ikm, salt, info, out []byte) error {
	if len(salt) == 0 {
		salt = make([]byte, size)
	}
	reader := hkdf.New(h, ikm, salt, info)
	if _, err := io.ReadFull(reader, out); err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}
	return nil
}

// HKDFSHA256Params is HKDF with SHA-256.
type HKDFSHA256Params struct{}

func (HKDFSHA256Params) spec() deriverSpec {
	return deriverSpec{
		name:      "HKDF-SHA256",
		id:        highEntropyID(cryptocore.ClassHighEntropy, 0x01),
		maxOutput: 255 * sha256.Size,
		derive:    hkdfSHA256,
	}
}

func (p HKDFSHA256Params) Name() string       { return p.spec().name }
func (p HKDFSHA256Params) ID() uint32         { return p.spec().id }
func (p HKDFSHA256Params) MaxOutputSize() int { return p.spec().maxOutput }

func hkdfSHA256(ikm, salt, info, out []byte) error {
	return hkdfDerive(sha256.New, sha256.Size, ikm, salt, info, out)
}

// HKDFSHA384Params is HKDF with SHA-384.
type HKDFSHA384Params struct{}

func (HKDFSHA384Params) spec() deriverSpec {
	return deriverSpec{
		name:      "HKDF-SHA384",
		id:        highEntropyID(cryptocore.ClassHighEntropy, 0x02),
		maxOutput: 255 * sha512.Size384,
		derive:    hkdfSHA384,
	}
}

func (p HKDFSHA384Params) Name() string       { return p.spec().name }
func (p HKDFSHA384Params) ID() uint32         { return p.spec().id }
func (p HKDFSHA384Params) MaxOutputSize() int { return p.spec().maxOutput }

func hkdfSHA384(ikm, salt, info, out []byte) error {
	return hkdfDerive(sha512.New384, sha512.Size384, ikm, salt, info, out)
}

// HKDFSHA512Params is HKDF with SHA-512.
type HKDFSHA512Params struct{}

func (HKDFSHA512Params) spec() deriverSpec {
	return deriverSpec{
		name:      "HKDF-SHA512",
		id:        highEntropyID(cryptocore.ClassHighEntropy, 0x03),
		maxOutput: 255 * sha512.Size,
		derive:    hkdfSHA512,
	}
}

func (p HKDFSHA512Params) Name() string       { return p.spec().name }
func (p HKDFSHA512Params) ID() uint32         { return p.spec().id }
func (p HKDFSHA512Params) MaxOutputSize() int { return p.spec().maxOutput }

func hkdfSHA512(ikm, salt, info, out []byte) error {
	return hkdfDerive(sha512.New, sha512.Size, ikm, salt, info, out)
}

// absorb writes each field prefixed with its 64-bit big-endian length so that
// field boundaries are unambiguous.
func absorb(w io.Writer, fields ...[]byte) {
	var n [8]byte
	for _, f := range fields {
		binary.BigEndian.PutUint64(n[:], uint64(len(f)))
		_, _ = w.Write(n[:])
		_, _ = w.Write(f)
	}
}

// SHAKE128Params squeezes SHAKE128.
type SHAKE128Params struct{}

func (SHAKE128Params) spec() deriverSpec {
	return deriverSpec{
		name:      "SHAKE128",
		id:        highEntropyID(cryptocore.ClassXOF, 0x01),
		maxOutput: 0,
		derive:    shake128,
	}
}

func (p SHAKE128Params) Name() string       { return p.spec().name }
func (p SHAKE128Params) ID() uint32         { return p.spec().id }
func (p SHAKE128Params) MaxOutputSize() int { return p.spec().maxOutput }

func shake128(ikm, salt, info, out []byte) error {
	h := sha3.NewShake128()
	absorb(h, ikm, salt, info)
	_, err := io.ReadFull(h, out)
	return err
}

// SHAKE256Params squeezes SHAKE256.
type SHAKE256Params struct{}

func (SHAKE256Params) spec() deriverSpec {
	return deriverSpec{
		name:      "SHAKE256",
		id:        highEntropyID(cryptocore.ClassXOF, 0x02),
		maxOutput: 0,
		derive:    shake256,
	}
}

func (p SHAKE256Params) Name() string       { return p.spec().name }
func (p SHAKE256Params) ID() uint32         { return p.spec().id }
func (p SHAKE256Params) MaxOutputSize() int { return p.spec().maxOutput }

func shake256(ikm, salt, info, out []byte) error {
	h := sha3.NewShake256()
	absorb(h, ikm, salt, info)
	_, err := io.ReadFull(h, out)
	return err
}

// BLAKE3Params squeezes the BLAKE3 extendable output.
type BLAKE3Params struct{}

func (BLAKE3Params) spec() deriverSpec {
	return deriverSpec{
		name:      "BLAKE3",
		id:        highEntropyID(cryptocore.ClassXOF, 0x03),
		maxOutput: 0,
		derive:    blake3XOF,
	}
}

func (p BLAKE3Params) Name() string       { return p.spec().name }
func (p BLAKE3Params) ID() uint32         { return p.spec().id }
func (p BLAKE3Params) MaxOutputSize() int { return p.spec().maxOutput }

func blake3XOF(ikm, salt, info, out []byte) error {
	h := blake3.New(32, nil)
	absorb(h, ikm, salt, info)
	_, err := io.ReadFull(h.XOF(), out)
	return err
}

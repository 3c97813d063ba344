package kdf

import (
	"github.com/vaultsandbox/cryptocore"
)

// Deriver is the high-entropy KDF shared by every parameter set. The zero
// value is ready to use.
type Deriver[P HighEntropyParams] struct{}

type (
	HKDFSHA256 = Deriver[HKDFSHA256Params]
	HKDFSHA384 = Deriver[HKDFSHA384Params]
	HKDFSHA512 = Deriver[HKDFSHA512Params]
	SHAKE128   = Deriver[SHAKE128Params]
	SHAKE256   = Deriver[SHAKE256Params]
	BLAKE3     = Deriver[BLAKE3Params]
)

var (
	_ cryptocore.KeyDeriver = HKDFSHA256{}
	_ cryptocore.KeyDeriver = HKDFSHA384{}
	_ cryptocore.KeyDeriver = HKDFSHA512{}
	_ cryptocore.KeyDeriver = SHAKE128{}
	_ cryptocore.KeyDeriver = SHAKE256{}
	_ cryptocore.KeyDeriver = BLAKE3{}
)

func (Deriver[P]) spec() deriverSpec {
	var p P
	return p.spec()
}

func (d Deriver[P]) Name() string { return d.spec().name }
func (d Deriver[P]) ID() uint32   { return d.spec().id }

// MaxOutputSize is the largest output Derive accepts, or zero when it is
// unbounded.
func (d Deriver[P]) MaxOutputSize() int { return d.spec().maxOutput }

// Derive expands ikm into outputLen bytes. salt and info may be nil.
func (d Deriver[P]) Derive(ikm, salt, info []byte, outputLen int) (cryptocore.DerivedKey, error) {
	if outputLen <= 0 {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidOutputLength, d.Name(),
			"output length %d must be positive", outputLen)
	}
	if limit := d.MaxOutputSize(); limit > 0 && outputLen > limit {
		return nil, cryptocore.Errorf(cryptocore.KindInvalidOutputLength, d.Name(),
			"output length %d exceeds %d", outputLen, limit)
	}

	out := make([]byte, outputLen)
	if err := d.spec().derive(ikm, salt, info, out); err != nil {
		cryptocore.Wipe(out)
		return nil, cryptocore.NewError(cryptocore.KindInvalidOutputLength, d.Name(), err)
	}
	return cryptocore.DerivedKey(out), nil
}

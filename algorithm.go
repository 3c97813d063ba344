package cryptocore

import "fmt"

// Algorithm is the identity every scheme exposes. The identity is for logging
// and tagging only; nothing in this module dispatches on it.
type Algorithm interface {
	// Name returns the stable algorithm name, e.g. "ChaCha20-Poly1305".
	Name() string
	// ID returns the stable numeric identifier.
	ID() uint32
}

// SchemeParams is embedded by every family's parameter constraint. Parameter
// types are zero-size markers; their methods return constants.
type SchemeParams interface {
	Algorithm
}

// Algorithm families, the top byte of an ID.
const (
	FamilyAsymmetric uint8 = 0x01
	FamilySymmetric  uint8 = 0x02
	FamilyKDF        uint8 = 0x03
)

// Classes within a family, the second byte of an ID.
const (
	ClassSignature   uint8 = 0x01
	ClassKEM         uint8 = 0x02
	ClassAgreement   uint8 = 0x03
	ClassAEAD        uint8 = 0x02
	ClassHighEntropy uint8 = 0x01
	ClassPassword    uint8 = 0x02
	ClassXOF         uint8 = 0x03
)

// MakeID packs an algorithm identifier. The low byte is a format version.
func MakeID(family, class, variant uint8) uint32 {
	return uint32(family)<<24 | uint32(class)<<16 | uint32(variant)<<8 | 0x01
}

// Info is a copyable snapshot of an algorithm identity.
type Info struct {
	Name string
	ID   uint32
}

// InfoOf returns the identity of a.
func InfoOf(a Algorithm) Info {
	return Info{Name: a.Name(), ID: a.ID()}
}

// String formats the identity as "Name (0xID)".
func (i Info) String() string {
	return fmt.Sprintf("%s (0x%08x)", i.Name, i.ID)
}

// Family returns the family byte of the identifier.
func (i Info) Family() uint8 {
	return uint8(i.ID >> 24)
}

package cryptocore

import (
	"errors"
	"fmt"
)

// Category groups error kinds by the capability that produces them.
type Category int

const (
	CategoryKey Category = iota + 1
	CategorySymmetric
	CategorySignature
	CategoryKeyAgreement
	CategoryKEM
	CategoryKDF
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryKey:
		return "key"
	case CategorySymmetric:
		return "symmetric"
	case CategorySignature:
		return "signature"
	case CategoryKeyAgreement:
		return "key agreement"
	case CategoryKEM:
		return "kem"
	case CategoryKDF:
		return "kdf"
	default:
		return "unknown"
	}
}

// Kind identifies a failure independently of the algorithm that raised it.
type Kind int

const (
	KindGenerationFailed Kind = iota + 1
	KindInvalidEncoding
	KindInvalidLength

	KindInvalidKeySize
	KindInvalidNonceSize
	KindOutputTooSmall
	KindInvalidCiphertext
	KindEncryption
	KindDecryption

	KindSigning
	KindVerification
	KindInvalidSignature

	KindInvalidPeerPublicKey

	KindEncapsulation
	KindDecapsulation

	KindInvalidOutputLength
	KindMissingSalt
	KindInvalidCost
)

// Sentinel errors for errors.Is() checks. Every *Error matches the sentinel of
// its kind.
var (
	// ErrGenerationFailed is returned when key material could not be generated.
	ErrGenerationFailed = errors.New("key generation failed")

	// ErrInvalidEncoding is returned when bytes are not a valid key encoding.
	ErrInvalidEncoding = errors.New("invalid key encoding")

	// ErrInvalidLength is returned when key bytes have the wrong length.
	// Decoding a wrong-length key reports ErrInvalidEncoding with
	// ErrInvalidLength as its cause, so both match.
	ErrInvalidLength = errors.New("invalid key length")

	// ErrInvalidKeySize is returned when a symmetric key does not match the scheme's key size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce does not match the scheme's nonce size.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrOutputTooSmall is returned when a caller-supplied output buffer cannot
	// hold the result. Nothing is written in that case.
	ErrOutputTooSmall = errors.New("output buffer too small")

	// ErrInvalidCiphertext is returned when a ciphertext is structurally invalid,
	// for example shorter than the authentication tag.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrEncryption is returned when sealing fails inside the primitive.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption is returned when authentication fails or the input is malformed.
	ErrDecryption = errors.New("decryption failed")

	// ErrSigning is returned when a signature could not be produced.
	ErrSigning = errors.New("signing failed")

	// ErrVerification is returned when a signature does not verify.
	ErrVerification = errors.New("signature verification failed")

	// ErrInvalidSignature is returned when signature bytes are malformed.
	ErrInvalidSignature = errors.New("invalid signature encoding")

	// ErrInvalidPeerPublicKey is returned when a peer's public key is not a valid point.
	ErrInvalidPeerPublicKey = errors.New("invalid peer public key")

	// ErrEncapsulation is returned when KEM encapsulation fails.
	ErrEncapsulation = errors.New("encapsulation failed")

	// ErrDecapsulation is returned when KEM decapsulation fails.
	ErrDecapsulation = errors.New("decapsulation failed")

	// ErrInvalidOutputLength is returned when a KDF cannot produce the requested length.
	ErrInvalidOutputLength = errors.New("invalid output length")

	// ErrMissingSalt is returned when password-based derivation receives an empty salt.
	ErrMissingSalt = errors.New("salt is required")

	// ErrInvalidCost is returned when a password-based scheme's work factor
	// cannot be used by the primitive.
	ErrInvalidCost = errors.New("invalid cost parameters")
)

var kindSentinels = map[Kind]error{
	KindGenerationFailed:     ErrGenerationFailed,
	KindInvalidEncoding:      ErrInvalidEncoding,
	KindInvalidLength:        ErrInvalidLength,
	KindInvalidKeySize:       ErrInvalidKeySize,
	KindInvalidNonceSize:     ErrInvalidNonceSize,
	KindOutputTooSmall:       ErrOutputTooSmall,
	KindInvalidCiphertext:    ErrInvalidCiphertext,
	KindEncryption:           ErrEncryption,
	KindDecryption:           ErrDecryption,
	KindSigning:              ErrSigning,
	KindVerification:         ErrVerification,
	KindInvalidSignature:     ErrInvalidSignature,
	KindInvalidPeerPublicKey: ErrInvalidPeerPublicKey,
	KindEncapsulation:        ErrEncapsulation,
	KindDecapsulation:        ErrDecapsulation,
	KindInvalidOutputLength:  ErrInvalidOutputLength,
	KindMissingSalt:          ErrMissingSalt,
	KindInvalidCost:          ErrInvalidCost,
}

// Sentinel returns the sentinel error for the kind, or nil for an unknown kind.
func (k Kind) Sentinel() error {
	return kindSentinels[k]
}

// String returns the sentinel message for the kind.
func (k Kind) String() string {
	if err := k.Sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Category returns the capability group the kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindGenerationFailed, KindInvalidEncoding, KindInvalidLength:
		return CategoryKey
	case KindInvalidKeySize, KindInvalidNonceSize, KindOutputTooSmall,
		KindInvalidCiphertext, KindEncryption, KindDecryption:
		return CategorySymmetric
	case KindSigning, KindVerification, KindInvalidSignature:
		return CategorySignature
	case KindInvalidPeerPublicKey:
		return CategoryKeyAgreement
	case KindEncapsulation, KindDecapsulation:
		return CategoryKEM
	case KindInvalidOutputLength, KindMissingSalt, KindInvalidCost:
		return CategoryKDF
	default:
		return 0
	}
}

// CryptoError is implemented by every error returned from a capability method.
type CryptoError interface {
	error
	CryptoError() // marker method
}

// Error is the single error type that crosses capability boundaries. Provider
// failures are kept as the Err cause so no provider-specific type leaks.
type Error struct {
	Kind   Kind
	Scheme string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Scheme != "" {
		msg = e.Scheme + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	sentinel := e.Kind.Sentinel()
	return sentinel != nil && target == sentinel
}

// CryptoError implements the CryptoError interface.
func (e *Error) CryptoError() {}

// NewError builds an *Error for the given scheme. A non-nil cause is logged at
// debug level; causes never carry secret material.
func NewError(kind Kind, scheme string, cause error) *Error {
	if cause != nil {
		logProviderFailure(kind, scheme, cause)
	}
	return &Error{Kind: kind, Scheme: scheme, Err: cause}
}

// Errorf builds an *Error whose cause is a formatted message.
func Errorf(kind Kind, scheme string, format string, args ...any) *Error {
	return &Error{Kind: kind, Scheme: scheme, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err if it is, or wraps, an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

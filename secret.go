package cryptocore

import (
	"crypto/subtle"
	"fmt"
	"runtime"
	"sync"

	"github.com/awnumar/memguard"
)

const redacted = "[REDACTED]"

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

// Secret holds sensitive bytes. The buffer is wiped on Destroy and, as a
// backstop, when the Secret becomes unreachable. Formatting a Secret never
// prints its contents.
type Secret struct {
	mu      sync.Mutex
	buf     []byte
	cleanup runtime.Cleanup
}

// NewSecret copies b into a new Secret. The caller keeps ownership of b.
func NewSecret(b []byte) *Secret {
	buf := make([]byte, len(b))
	copy(buf, b)
	s := &Secret{buf: buf}
	if len(buf) > 0 {
		s.cleanup = runtime.AddCleanup(s, Wipe, buf)
	}
	return s
}

// Expose returns the secret bytes without copying. The slice is only valid
// while the Secret is reachable and not destroyed: once the Secret can be
// collected its buffer is wiped. Callers that read the slice after their last
// use of the Secret must call runtime.KeepAlive on it.
func (s *Secret) Expose() []byte {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf
}

// Len returns the number of secret bytes, zero after Destroy.
func (s *Secret) Len() int {
	return len(s.Expose())
}

// Clone returns an independent copy.
func (s *Secret) Clone() *Secret {
	c := NewSecret(s.Expose())
	runtime.KeepAlive(s)
	return c
}

// Equal compares two secrets in constant time.
func (s *Secret) Equal(other *Secret) bool {
	eq := subtle.ConstantTimeCompare(s.Expose(), other.Expose()) == 1
	runtime.KeepAlive(s)
	runtime.KeepAlive(other)
	return eq
}

// Destroy wipes the secret. It is safe to call more than once.
func (s *Secret) Destroy() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return
	}
	Wipe(s.buf)
	s.cleanup.Stop()
	s.buf = nil
}

// Destroyed reports whether Destroy has been called.
func (s *Secret) Destroyed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf == nil
}

func (s *Secret) String() string   { return redacted }
func (s *Secret) GoString() string { return redacted }

// Format prints the redaction marker for every verb.
func (s *Secret) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

// SymmetricKey is a secret key for an AEAD scheme. Its length is checked
// against the scheme on every use.
type SymmetricKey struct {
	*Secret
}

// NewSymmetricKey copies b into a new key. Scheme-specific length checks are
// done by the scheme's KeyFromBytes.
func NewSymmetricKey(b []byte) (*SymmetricKey, error) {
	if len(b) == 0 {
		return nil, Errorf(KindInvalidLength, "", "empty symmetric key")
	}
	return &SymmetricKey{Secret: NewSecret(b)}, nil
}

// Bytes returns a copy of the key bytes. The caller should Wipe it when done.
func (k *SymmetricKey) Bytes() ([]byte, error) {
	b := k.Expose()
	if b == nil {
		return nil, Errorf(KindInvalidLength, "", "symmetric key destroyed")
	}
	out := make([]byte, len(b))
	copy(out, b)
	runtime.KeepAlive(k)
	return out, nil
}

// SharedSecret is the raw output of key agreement or encapsulation. It is not
// a uniformly random key; pass it through a KeyDeriver before use.
type SharedSecret struct {
	*Secret
}

// NewSharedSecret copies b into a new shared secret.
func NewSharedSecret(b []byte) *SharedSecret {
	return &SharedSecret{Secret: NewSecret(b)}
}

// Derive feeds the shared secret into kdf as input keying material. A nil or
// destroyed shared secret is rejected.
func (s *SharedSecret) Derive(kdf KeyDeriver, salt, info []byte, outputLen int) (DerivedKey, error) {
	if s == nil || s.Secret.Destroyed() {
		return nil, Errorf(KindInvalidLength, kdf.Name(), "shared secret unavailable")
	}
	out, err := kdf.Derive(s.Expose(), salt, info, outputLen)
	runtime.KeepAlive(s.Secret)
	return out, err
}

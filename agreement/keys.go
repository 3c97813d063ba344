package agreement

import (
	"bytes"
	"runtime"

	"github.com/vaultsandbox/cryptocore"
)

// PublicKey is a key agreement public key for the scheme selected by P.
type PublicKey[P Params] struct {
	b []byte
}

// Bytes returns a copy of the raw key encoding.
func (k *PublicKey[P]) Bytes() ([]byte, error) {
	return append([]byte(nil), k.b...), nil
}

// Equal reports whether other is the same key of the same scheme.
func (k *PublicKey[P]) Equal(other cryptocore.PublicKey) bool {
	o, ok := other.(*PublicKey[P])
	if !ok || k == nil || o == nil {
		return false
	}
	return bytes.Equal(k.b, o.b)
}

// String returns the key as URL-safe base64 without padding.
func (k *PublicKey[P]) String() string {
	return cryptocore.ToBase64URL(k.b)
}

// PrivateKey is a key agreement private key for the scheme selected by P.
type PrivateKey[P Params] struct {
	secret *cryptocore.Secret
}

// Bytes returns a copy of the raw key encoding. The caller should Wipe it.
func (k *PrivateKey[P]) Bytes() ([]byte, error) {
	b := k.expose()
	if b == nil {
		var p P
		return nil, cryptocore.Errorf(cryptocore.KindInvalidLength, p.spec().name, "private key destroyed")
	}
	out := append([]byte(nil), b...)
	runtime.KeepAlive(k)
	return out, nil
}

// Destroy wipes the key.
func (k *PrivateKey[P]) Destroy() {
	if k != nil {
		k.secret.Destroy()
	}
}

func (k *PrivateKey[P]) expose() []byte {
	if k == nil {
		return nil
	}
	return k.secret.Expose()
}

func (k *PrivateKey[P]) String() string   { return "[REDACTED]" }
func (k *PrivateKey[P]) GoString() string { return "[REDACTED]" }

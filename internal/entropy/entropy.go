// Package entropy is the process-wide source of cryptographic randomness.
//
// Every key, seed, salt and nonce generated by cryptocore is drawn from here.
// The default source is crypto/rand; each call performs an independent draw.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync/atomic"
)

type source struct {
	r io.Reader
}

var current atomic.Pointer[source]

func init() {
	current.Store(&source{r: rand.Reader})
}

// Reader returns the active random source.
func Reader() io.Reader {
	return current.Load().r
}

// Fill fills b entirely with random bytes.
func Fill(b []byte) error {
	if _, err := io.ReadFull(Reader(), b); err != nil {
		return fmt.Errorf("read %d random bytes: %w", len(b), err)
	}
	return nil
}

// Bytes returns n fresh random bytes.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative length %d", n)
	}
	b := make([]byte, n)
	if err := Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

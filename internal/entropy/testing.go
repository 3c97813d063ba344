package entropy

import (
	"crypto/rand"
	"io"
)

// SetReaderForTesting replaces the random source and returns a function that
// restores the previous one. A nil reader restores crypto/rand.
// Since this package is internal, this function cannot be accessed by external code.
func SetReaderForTesting(r io.Reader) func() {
	if r == nil {
		r = rand.Reader
	}
	previous := current.Swap(&source{r: r})
	return func() { current.Store(previous) }
}

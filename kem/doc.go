// Package kem provides key encapsulation mechanisms behind [cryptocore.KEM].
//
//   - [MLKEM512], [MLKEM768], [MLKEM1024]: ML-KEM (NIST FIPS 203).
//   - [XWing]: the X-Wing hybrid of ML-KEM-768 and X25519.
//
// Encapsulate returns a 32-byte shared secret and a ciphertext for the key
// holder. The shared secret should still be passed through a KDF with
// protocol-specific context before use.
package kem

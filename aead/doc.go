// Package aead provides authenticated encryption schemes behind
// [cryptocore.AEAD].
//
// One generic [Scheme] is instantiated per algorithm:
//
//   - [ChaCha20Poly1305]: 32-byte key, 12-byte nonce, 16-byte tag.
//   - [XChaCha20Poly1305]: 32-byte key, 24-byte nonce, 16-byte tag. The
//     extended nonce is safe to generate at random.
//   - [AES256GCM]: 32-byte key, 12-byte nonce, 16-byte tag.
//
// Ciphertexts are the encrypted plaintext followed by the tag. Nonces MUST be
// unique for each encryption with the same key; the scheme does not track them.
package aead

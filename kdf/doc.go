// Package kdf provides key derivation in two deliberately different shapes.
//
// High-entropy derivation, [cryptocore.KeyDeriver], for key exchange outputs
// and other uniformly random input. Salt and info are optional:
//
//   - [HKDFSHA256], [HKDFSHA384], [HKDFSHA512]: HKDF (RFC 5869).
//   - [SHAKE128], [SHAKE256], [BLAKE3]: extendable-output functions over a
//     length-prefixed encoding of ikm, salt and info.
//
// Password-based derivation, [cryptocore.PasswordDeriver], for low-entropy
// secrets. A [cryptocore.Salt] is a required argument and the work factor is
// fixed when the scheme is constructed:
//
//   - [PBKDF2SHA256], [PBKDF2SHA512]: PBKDF2 (RFC 8018).
//   - [Argon2id]: Argon2id (RFC 9106).
//
// Password derivation is CPU and memory bound and cannot be cancelled. Run
// it on its own goroutine if the caller needs a timeout.
//
// Both shapes are deterministic: the same inputs and cost always produce the
// same bytes.
package kdf

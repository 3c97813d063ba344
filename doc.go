// Package cryptocore is a uniform capability layer over cryptographic
// algorithm families. Application code works against a small set of
// interfaces while each concrete algorithm enforces its own sizes and
// structural rules at the interface boundary.
//
// # Capabilities
//
//   - [AEAD]: authenticated encryption with associated data, in allocating
//     and caller-buffer forms. See package aead.
//   - [SignatureScheme]: key generation, detached signing and verification.
//     See package signature.
//   - [KeyAgreement]: Diffie-Hellman style shared secrets. See package agreement.
//   - [KEM]: key encapsulation. See package kem.
//   - [KeyDeriver] and [PasswordDeriver]: key derivation from high-entropy
//     input and from passwords. See package kdf.
//
// # Scheme Parameters
//
// Every family package is generic over a parameter type. Parameter types are
// zero-size markers defined inside the family package and cannot be declared
// elsewhere, so the set of algorithms is closed:
//
//	var s aead.ChaCha20Poly1305
//	key, _ := s.GenerateKey()
//	ct, _ := s.Encrypt(key, nonce, plaintext, aad)
//
// Schemes are also distinct types, so a key from one algorithm cannot be
// passed to another.
//
// # Secrets
//
// Private keys, symmetric keys and shared secrets keep their bytes in a
// [Secret]. Call Destroy as soon as a value is no longer needed; a cleanup
// wipes any Secret that is collected without it. Secrets print as
// "[REDACTED]".
//
// A [SharedSecret] is raw keying material. Pass it through a [KeyDeriver]
// before using it as a key.
//
// # Randomness
//
// Keys, seeds, salts and nonces are drawn from crypto/rand.
//
// AEAD nonces MUST be unique for each encryption with the same key. This
// package does not track nonces.
//
// # Errors
//
// Every failure is an [*Error] whose Kind matches one of the Err sentinels
// via errors.Is. Provider errors are kept as the cause and are never exposed
// as their own types.
package cryptocore

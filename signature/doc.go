// Package signature provides detached signature schemes behind
// [cryptocore.SignatureScheme].
//
// Post-quantum:
//
//   - [MLDSA44], [MLDSA65], [MLDSA87]: ML-DSA (NIST FIPS 204) at the three
//     security levels.
//
// Classical:
//
//   - [Ed25519] and [Ed448] (RFC 8032).
//
// All keys and signatures are raw fixed-length encodings whose sizes are
// exposed by the scheme. Keys are typed by scheme, so a key generated for
// ML-DSA-44 cannot be passed to ML-DSA-65.
package signature

// Package agreement provides Diffie-Hellman key agreement behind
// [cryptocore.KeyAgreement].
//
//   - [ECDHP256], [ECDHP384], [ECDHP521] and [X25519]: public keys are DER
//     SubjectPublicKeyInfo, private keys are DER PKCS #8.
//   - [Secp256k1]: public keys are 33-byte SEC 1 compressed points, private
//     keys are 32-byte big-endian scalars.
//
// For any two key pairs A and B,
//
//	Agree(A.private, B.public) == Agree(B.private, A.public)
//
// Peer public keys are decoded and checked before use. The resulting
// [cryptocore.SharedSecret] is raw keying material and must go through a KDF.
package agreement

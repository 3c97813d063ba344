package kdf

import "github.com/vaultsandbox/cryptocore"

// Schemes lists the identities of all key derivation schemes.
func Schemes() []cryptocore.Info {
	return []cryptocore.Info{
		cryptocore.InfoOf(HKDFSHA256{}),
		cryptocore.InfoOf(HKDFSHA384{}),
		cryptocore.InfoOf(HKDFSHA512{}),
		cryptocore.InfoOf(SHAKE128{}),
		cryptocore.InfoOf(SHAKE256{}),
		cryptocore.InfoOf(BLAKE3{}),
		cryptocore.InfoOf(PBKDF2SHA256{}),
		cryptocore.InfoOf(PBKDF2SHA512{}),
		cryptocore.InfoOf(Argon2id{}),
	}
}

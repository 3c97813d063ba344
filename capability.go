package cryptocore

// Key is any serialisable key.
type Key interface {
	// Bytes returns the canonical encoding of the key. Encodings of private
	// keys are secret and owned by the caller.
	Bytes() ([]byte, error)
}

// PublicKey is a key that may be shared freely.
type PublicKey interface {
	Key
	// Equal reports whether other is the same key of the same scheme.
	Equal(other PublicKey) bool
}

// PrivateKey is a key whose material is wiped on Destroy.
type PrivateKey interface {
	Key
	Destroy()
}

// KeyPairGenerator produces fresh key pairs from the process entropy source.
type KeyPairGenerator[PK PublicKey, SK PrivateKey] interface {
	GenerateKeyPair() (PK, SK, error)
}

// KeyCodec restores keys from their canonical encodings.
type KeyCodec[PK PublicKey, SK PrivateKey] interface {
	PublicKeyFromBytes(b []byte) (PK, error)
	PrivateKeyFromBytes(b []byte) (SK, error)
}

// Signer produces signatures with private keys of one scheme.
type Signer[SK PrivateKey] interface {
	Sign(sk SK, message []byte) (Signature, error)
}

// Verifier checks signatures with public keys of one scheme. A nil error
// means the signature is valid.
type Verifier[PK PublicKey] interface {
	Verify(pk PK, message []byte, sig Signature) error
}

// SignatureScheme is the full signature capability.
type SignatureScheme[PK PublicKey, SK PrivateKey] interface {
	Algorithm
	KeyPairGenerator[PK, SK]
	KeyCodec[PK, SK]
	Signer[SK]
	Verifier[PK]
	PublicKeySize() int
	PrivateKeySize() int
	SignatureSize() int
}

// KeyAgreement is a Diffie-Hellman style capability. Both parties obtain the
// same SharedSecret from their own private key and the peer's public key.
type KeyAgreement[PK PublicKey, SK PrivateKey] interface {
	Algorithm
	KeyPairGenerator[PK, SK]
	KeyCodec[PK, SK]
	Agree(sk SK, peer PK) (*SharedSecret, error)
	SharedSecretSize() int
}

// KEM is a key encapsulation capability.
type KEM[PK PublicKey, SK PrivateKey] interface {
	Algorithm
	KeyPairGenerator[PK, SK]
	KeyCodec[PK, SK]
	// Encapsulate returns a fresh shared secret and the ciphertext that
	// carries it to the holder of sk.
	Encapsulate(pk PK) (*SharedSecret, []byte, error)
	Decapsulate(sk SK, ciphertext []byte) (*SharedSecret, error)
	PublicKeySize() int
	PrivateKeySize() int
	CiphertextSize() int
	SharedSecretSize() int
}

// AEAD is authenticated encryption with associated data. Ciphertexts are the
// encrypted plaintext followed by the tag. A nil aad is treated as empty.
//
// A nonce must never be reused with the same key.
type AEAD interface {
	Algorithm
	KeySize() int
	NonceSize() int
	TagSize() int

	GenerateKey() (*SymmetricKey, error)
	KeyFromBytes(b []byte) (*SymmetricKey, error)

	Encrypt(key *SymmetricKey, nonce, plaintext, aad []byte) ([]byte, error)
	Decrypt(key *SymmetricKey, nonce, ciphertext, aad []byte) ([]byte, error)

	// EncryptTo writes into output and returns the number of bytes written.
	// output must hold len(plaintext)+TagSize() bytes.
	EncryptTo(key *SymmetricKey, nonce, plaintext, output, aad []byte) (int, error)
	// DecryptTo writes into output and returns the number of bytes written.
	// output must hold len(ciphertext)-TagSize() bytes.
	DecryptTo(key *SymmetricKey, nonce, ciphertext, output, aad []byte) (int, error)
}

// KeyDeriver derives keys from high-entropy input keying material.
type KeyDeriver interface {
	Algorithm
	Derive(ikm, salt, info []byte, outputLen int) (DerivedKey, error)
}

// PasswordDeriver derives keys from low-entropy passwords. A salt is
// mandatory and the work factor is fixed per scheme instance.
type PasswordDeriver interface {
	Algorithm
	Derive(password *Secret, salt Salt, outputLen int) (DerivedKey, error)
}

package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/aead"
	"github.com/vaultsandbox/cryptocore/agreement"
	"github.com/vaultsandbox/cryptocore/kdf"
	"github.com/vaultsandbox/cryptocore/kem"
	"github.com/vaultsandbox/cryptocore/signature"
)

type check struct {
	name string
	run  func() error
}

var checks = []check{
	aeadCheck(aead.ChaCha20Poly1305{}),
	aeadCheck(aead.XChaCha20Poly1305{}),
	aeadCheck(aead.AES256GCM{}),

	signatureCheck[signature.MLDSA44Params](),
	signatureCheck[signature.MLDSA65Params](),
	signatureCheck[signature.MLDSA87Params](),
	signatureCheck[signature.Ed25519Params](),
	signatureCheck[signature.Ed448Params](),

	agreementCheck[agreement.P256Params](),
	agreementCheck[agreement.P384Params](),
	agreementCheck[agreement.P521Params](),
	agreementCheck[agreement.X25519Params](),
	agreementCheck[agreement.Secp256k1Params](),

	kemCheck[kem.MLKEM512Params](),
	kemCheck[kem.MLKEM768Params](),
	kemCheck[kem.MLKEM1024Params](),
	kemCheck[kem.XWingParams](),

	deriverCheck(kdf.HKDFSHA256{}),
	deriverCheck(kdf.HKDFSHA384{}),
	deriverCheck(kdf.HKDFSHA512{}),
	deriverCheck(kdf.SHAKE128{}),
	deriverCheck(kdf.SHAKE256{}),
	deriverCheck(kdf.BLAKE3{}),

	// Self tests exercise the plumbing, not the work factor.
	passwordCheck(kdf.NewPassword[kdf.PBKDF2SHA256Params](kdf.WithIterations(1000))),
	passwordCheck(kdf.NewPassword[kdf.PBKDF2SHA512Params](kdf.WithIterations(1000))),
	passwordCheck(kdf.NewPassword[kdf.Argon2idParams](
		kdf.WithArgon2Time(1), kdf.WithArgon2Memory(64), kdf.WithArgon2Threads(1))),
}

var errMismatch = errors.New("round trip mismatch")

func aeadCheck(s cryptocore.AEAD) check {
	return check{name: s.Name(), run: func() error {
		key, err := s.GenerateKey()
		if err != nil {
			return err
		}
		defer key.Destroy()

		nonce, err := cryptocore.GenerateNonce(s.NonceSize())
		if err != nil {
			return err
		}
		plaintext := []byte("self test plaintext")
		aad := []byte("self test aad")

		ct, err := s.Encrypt(key, nonce, plaintext, aad)
		if err != nil {
			return err
		}
		pt, err := s.Decrypt(key, nonce, ct, aad)
		if err != nil {
			return err
		}
		if !bytes.Equal(pt, plaintext) {
			return errMismatch
		}

		ct[0] ^= 0x01
		if _, err := s.Decrypt(key, nonce, ct, aad); !errors.Is(err, cryptocore.ErrDecryption) {
			return fmt.Errorf("tampered ciphertext accepted: %v", err)
		}
		return nil
	}}
}

func signatureCheck[P signature.Params]() check {
	var s cryptocore.SignatureScheme[*signature.PublicKey[P], *signature.PrivateKey[P]] = signature.Scheme[P]{}
	return check{name: s.Name(), run: func() error {
		pk, sk, err := s.GenerateKeyPair()
		if err != nil {
			return err
		}
		defer sk.Destroy()

		msg := []byte("self test message")
		sig, err := s.Sign(sk, msg)
		if err != nil {
			return err
		}
		if err := s.Verify(pk, msg, sig); err != nil {
			return err
		}
		if err := s.Verify(pk, []byte("other message"), sig); !errors.Is(err, cryptocore.ErrVerification) {
			return fmt.Errorf("signature over a different message accepted: %v", err)
		}

		raw, err := pk.Bytes()
		if err != nil {
			return err
		}
		pk2, err := s.PublicKeyFromBytes(raw)
		if err != nil {
			return err
		}
		if !pk.Equal(pk2) {
			return errMismatch
		}
		return nil
	}}
}

func agreementCheck[P agreement.Params]() check {
	var s cryptocore.KeyAgreement[*agreement.PublicKey[P], *agreement.PrivateKey[P]] = agreement.Scheme[P]{}
	return check{name: s.Name(), run: func() error {
		pkA, skA, err := s.GenerateKeyPair()
		if err != nil {
			return err
		}
		defer skA.Destroy()
		pkB, skB, err := s.GenerateKeyPair()
		if err != nil {
			return err
		}
		defer skB.Destroy()

		ab, err := s.Agree(skA, pkB)
		if err != nil {
			return err
		}
		defer ab.Destroy()
		ba, err := s.Agree(skB, pkA)
		if err != nil {
			return err
		}
		defer ba.Destroy()

		if !ab.Equal(ba.Secret) {
			return errMismatch
		}
		return nil
	}}
}

func kemCheck[P kem.Params]() check {
	var s cryptocore.KEM[*kem.PublicKey[P], *kem.PrivateKey[P]] = kem.Scheme[P]{}
	return check{name: s.Name(), run: func() error {
		pk, sk, err := s.GenerateKeyPair()
		if err != nil {
			return err
		}
		defer sk.Destroy()

		sent, ct, err := s.Encapsulate(pk)
		if err != nil {
			return err
		}
		defer sent.Destroy()
		got, err := s.Decapsulate(sk, ct)
		if err != nil {
			return err
		}
		defer got.Destroy()

		if !sent.Equal(got.Secret) {
			return errMismatch
		}
		return nil
	}}
}

func deriverCheck(d cryptocore.KeyDeriver) check {
	return check{name: d.Name(), run: func() error {
		a, err := d.Derive([]byte("self test ikm"), []byte("salt"), []byte("info"), 32)
		if err != nil {
			return err
		}
		defer a.Wipe()
		b, err := d.Derive([]byte("self test ikm"), []byte("salt"), []byte("info"), 32)
		if err != nil {
			return err
		}
		defer b.Wipe()

		if !a.Equal(b) {
			return errMismatch
		}
		return nil
	}}
}

func passwordCheck(d cryptocore.PasswordDeriver) check {
	return check{name: d.Name(), run: func() error {
		pw := cryptocore.NewSecret([]byte("self test password"))
		defer pw.Destroy()

		salt, err := cryptocore.GenerateSalt(16)
		if err != nil {
			return err
		}
		a, err := d.Derive(pw, salt, 32)
		if err != nil {
			return err
		}
		defer a.Wipe()
		b, err := d.Derive(pw, salt, 32)
		if err != nil {
			return err
		}
		defer b.Wipe()

		if !a.Equal(b) {
			return errMismatch
		}
		if _, err := d.Derive(pw, cryptocore.Salt{}, 32); !errors.Is(err, cryptocore.ErrMissingSalt) {
			return fmt.Errorf("missing salt accepted: %v", err)
		}
		return nil
	}}
}

// signatureOps exposes a signature scheme over raw encodings for the
// keygen, sign and verify commands.
type signatureOps interface {
	keygen() (pub, priv []byte, err error)
	sign(priv, msg []byte) (cryptocore.Signature, error)
	verify(pub, msg []byte, sig cryptocore.Signature) error
}

type signatureAdapter[P signature.Params] struct {
	s signature.Scheme[P]
}

func (a signatureAdapter[P]) keygen() ([]byte, []byte, error) {
	pk, sk, err := a.s.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	defer sk.Destroy()

	pub, err := pk.Bytes()
	if err != nil {
		return nil, nil, err
	}
	priv, err := sk.Bytes()
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

func (a signatureAdapter[P]) sign(priv, msg []byte) (cryptocore.Signature, error) {
	sk, err := a.s.PrivateKeyFromBytes(priv)
	if err != nil {
		return nil, err
	}
	defer sk.Destroy()
	return a.s.Sign(sk, msg)
}

func (a signatureAdapter[P]) verify(pub, msg []byte, sig cryptocore.Signature) error {
	pk, err := a.s.PublicKeyFromBytes(pub)
	if err != nil {
		return err
	}
	return a.s.Verify(pk, msg, sig)
}

var signers = map[string]signatureOps{
	"ML-DSA-44": signatureAdapter[signature.MLDSA44Params]{},
	"ML-DSA-65": signatureAdapter[signature.MLDSA65Params]{},
	"ML-DSA-87": signatureAdapter[signature.MLDSA87Params]{},
	"Ed25519":   signatureAdapter[signature.Ed25519Params]{},
	"Ed448":     signatureAdapter[signature.Ed448Params]{},
}

package agreement

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

var (
	nistP256 = ecdhBackend{curve: ecdh.P256()}
	nistP384 = ecdhBackend{curve: ecdh.P384()}
	nistP521 = ecdhBackend{curve: ecdh.P521()}
	x25519   = ecdhBackend{curve: ecdh.X25519()}
)

var errCurveMismatch = errors.New("key is for a different curve")

// ecdhBackend serves the crypto/ecdh curves with DER encodings.
type ecdhBackend struct {
	curve ecdh.Curve
}

func (b ecdhBackend) generate() ([]byte, []byte, error) {
	priv, err := b.curve.GenerateKey(entropy.Reader())
	if err != nil {
		return nil, nil, err
	}
	pub, err := x509.MarshalPKIXPublicKey(priv.PublicKey())
	if err != nil {
		return nil, nil, err
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return pub, der, nil
}

func (b ecdhBackend) parsePublic(der []byte) error {
	_, err := b.decodePublic(der)
	return err
}

func (b ecdhBackend) parsePrivate(der []byte) error {
	_, err := b.decodePrivate(der)
	return err
}

func (b ecdhBackend) publicOf(der []byte) ([]byte, error) {
	priv, err := b.decodePrivate(der)
	if err != nil {
		return nil, err
	}
	return x509.MarshalPKIXPublicKey(priv.PublicKey())
}

func (b ecdhBackend) agree(privDER, peerDER []byte) ([]byte, error) {
	priv, err := b.decodePrivate(privDER)
	if err != nil {
		return nil, err
	}
	peer, err := b.decodePublic(peerDER)
	if err != nil {
		return nil, errPeer{err}
	}
	secret, err := priv.ECDH(peer)
	if err != nil {
		// low-order X25519 points end up here
		return nil, errPeer{err}
	}
	return secret, nil
}

func (b ecdhBackend) decodePublic(der []byte) (*ecdh.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	var pub *ecdh.PublicKey
	switch k := key.(type) {
	case *ecdh.PublicKey:
		pub = k
	case *ecdsa.PublicKey:
		if pub, err = k.ECDH(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unexpected public key type %T", key)
	}
	if pub.Curve() != b.curve {
		return nil, errCurveMismatch
	}
	return pub, nil
}

func (b ecdhBackend) decodePrivate(der []byte) (*ecdh.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	var priv *ecdh.PrivateKey
	switch k := key.(type) {
	case *ecdh.PrivateKey:
		priv = k
	case *ecdsa.PrivateKey:
		if priv, err = k.ECDH(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unexpected private key type %T", key)
	}
	if priv.Curve() != b.curve {
		return nil, errCurveMismatch
	}
	return priv, nil
}

package agreement

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/vaultsandbox/cryptocore/internal/entropy"
)

const secp256k1PrivateKeySize = 32

var errInvalidScalar = errors.New("private scalar is zero or not below the group order")

// secp256k1Backend uses SEC 1 compressed public keys and raw 32-byte scalars.
type secp256k1Backend struct{}

func (secp256k1Backend) generate() ([]byte, []byte, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(entropy.Reader())
	if err != nil {
		return nil, nil, err
	}
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), priv.Serialize(), nil
}

func (secp256k1Backend) parsePublic(b []byte) error {
	_, err := secp256k1.ParsePubKey(b)
	return err
}

func (secp256k1Backend) parsePrivate(b []byte) error {
	_, err := decodeSecp256k1Private(b)
	return err
}

func (secp256k1Backend) publicOf(b []byte) ([]byte, error) {
	priv, err := decodeSecp256k1Private(b)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

func (secp256k1Backend) agree(privBytes, peerBytes []byte) ([]byte, error) {
	priv, err := decodeSecp256k1Private(privBytes)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	peer, err := secp256k1.ParsePubKey(peerBytes)
	if err != nil {
		return nil, errPeer{err}
	}
	return secp256k1.GenerateSharedSecret(priv, peer), nil
}

func decodeSecp256k1Private(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1PrivateKeySize {
		return nil, errors.New("private key must be 32 bytes")
	}
	var scalar secp256k1.ModNScalar
	defer scalar.Zero()
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, errInvalidScalar
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsMatchProvider(t *testing.T) {
	tests := []struct {
		params               Params
		pub, priv, signature int
	}{
		{MLDSA44Params{}, 1312, 2560, 2420},
		{MLDSA65Params{}, 1952, 4032, 3309},
		{MLDSA87Params{}, 2592, 4896, 4627},
		{Ed25519Params{}, 32, 64, 64},
		{Ed448Params{}, 57, 114, 114},
	}

	for _, tt := range tests {
		t.Run(tt.params.Name(), func(t *testing.T) {
			spec := tt.params.spec()
			p := spec.provider
			assert.Equal(t, p.Name(), spec.name)

			assert.Equal(t, p.PublicKeySize(), spec.publicKeySize)
			assert.Equal(t, p.PrivateKeySize(), spec.privateKeySize)
			assert.Equal(t, p.SignatureSize(), spec.signatureSize)

			assert.Equal(t, tt.pub, spec.publicKeySize)
			assert.Equal(t, tt.priv, spec.privateKeySize)
			assert.Equal(t, tt.signature, spec.signatureSize)
		})
	}
}

package kem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsMatchProvider(t *testing.T) {
	tests := []struct {
		params        Params
		pub, priv, ct int
	}{
		{MLKEM512Params{}, 800, 1632, 768},
		{MLKEM768Params{}, 1184, 2400, 1088},
		{MLKEM1024Params{}, 1568, 3168, 1568},
		{XWingParams{}, 1216, 32, 1120},
	}

	for _, tt := range tests {
		t.Run(tt.params.Name(), func(t *testing.T) {
			spec := tt.params.spec()
			p := spec.provider
			assert.Equal(t, p.Name(), spec.name)

			assert.Equal(t, p.PublicKeySize(), spec.publicKeySize)
			assert.Equal(t, p.PrivateKeySize(), spec.privateKeySize)
			assert.Equal(t, p.CiphertextSize(), spec.ciphertextSize)
			assert.Equal(t, p.SharedKeySize(), spec.sharedSecretSize)

			assert.Equal(t, tt.pub, spec.publicKeySize)
			assert.Equal(t, tt.priv, spec.privateKeySize)
			assert.Equal(t, tt.ct, spec.ciphertextSize)
			assert.Equal(t, 32, spec.sharedSecretSize)
		})
	}
}

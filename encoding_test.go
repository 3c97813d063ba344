package cryptocore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase64URL_FromBase64URL(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"one byte", []byte{0x00}, "AA"},
		{"url-safe chars", []byte{0xfb, 0xff}, "-_8"},
		{"text", []byte("hello"), "aGVsbG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBase64URL(tt.data)
			assert.Equal(t, tt.want, got)

			back, err := FromBase64URL(got)
			require.NoError(t, err)
			assert.Equal(t, tt.data, back)
		})
	}
}

func TestDecodeBase64_Lenient(t *testing.T) {
	want := []byte{0xfb, 0xff}
	for _, in := range []string{"-_8", "-_8=", "+/8", "+/8="} {
		t.Run(in, func(t *testing.T) {
			got, err := DecodeBase64(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := DecodeBase64("not base64 at all!")
	assert.Error(t, err)
}

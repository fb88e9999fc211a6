package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
			assert.True(t, Verify(tt.data, tt.sum))
		})
	}
}

func TestVerify_DetectsFlip(t *testing.T) {
	data := []byte{0xAA, 0xAA, 0x99, 0x99}
	sum := Checksum(data)

	data[2] ^= 0x01
	require.False(t, Verify(data, sum))
}

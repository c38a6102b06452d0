package rootstream

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	eta := []byte{0xcd, 0x3b, 0x7f, 0x66, 0x9e, 0xa0, 0xe6, 0x3f}
	for i := 0; i < SeedSize; i += len(eta) {
		assert.Equal(t, eta, DefaultSeed[i:i+len(eta)], "offset %d", i)
	}
	assert.Equal(t, strings.Repeat("cd3b7f669ea0e63f", 4), DefaultSeed.String())
	assert.Equal(t, SeedFrom(1/math.Sqrt2), DefaultSeed)
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(DefaultSeed.String())
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed, seed)

	seed, err = ParseSeed(strings.ToUpper(DefaultSeed.String()))
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed, seed)

	testCases := []string{
		"",
		"cd3b7f669ea0e63f",
		strings.Repeat("cd3b7f669ea0e63f", 4) + "00",
		strings.Repeat("zz", SeedSize),
	}
	for _, tc := range testCases {
		_, err := ParseSeed(tc)
		assert.Error(t, err, "input %q", tc)
	}
}

func TestSeedFromDiffers(t *testing.T) {
	assert.NotEqual(t, SeedFrom(math.Pi), SeedFrom(math.E))
	assert.Equal(t, Seed{}, SeedFrom(0))
}

func TestChunkString(t *testing.T) {
	c := Chunk{0x00, 0x0f, 0xa0, 0xff}
	assert.Equal(t, "000fa0ff000000000000000000000000", c.String())
}

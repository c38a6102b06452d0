package rootstream

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Eta is 1/√2, the constant the default seed is derived from.
const Eta = 0.7071067811865476

// Seed is the fixed 32-byte root a stream is derived from. Seeds are not secret.
type Seed [SeedSize]byte

// DefaultSeed is SeedFrom(Eta): the bytes cd 3b 7f 66 9e a0 e6 3f repeated four times.
var DefaultSeed = SeedFrom(Eta)

// SeedFrom derives a Seed from any float64 (e.g. math.Pi) by repeating its
// little-endian IEEE 754 representation four times.
func SeedFrom(value float64) Seed {
	var seed Seed
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(value))
	for i := 0; i < SeedSize; i += len(buf) {
		copy(seed[i:], buf[:])
	}
	return seed
}

// ParseSeed decodes a seed given as exactly 64 hex digits.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	if len(s) != 2*SeedSize {
		return seed, fmt.Errorf("seed must be %d hex digits, got %d", 2*SeedSize, len(s))
	}
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return Seed{}, fmt.Errorf("invalid seed: %w", err)
	}
	return seed, nil
}

// String returns the seed as 64 lowercase hex digits.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// String returns the chunk as 32 lowercase hex digits without separators.
func (c Chunk) String() string {
	return hex.EncodeToString(c[:])
}

// Package rootstream derives a reproducible stream of 16-byte chunks from a single 32-byte seed.
// It is NOT FOR CRYPTOGRAPHIC USE.
package rootstream

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	// SeedSize is the size of a Seed in bytes.
	SeedSize = 32
	// ChunkSize is the size of one output Chunk in bytes.
	ChunkSize = 16

	harvestBits = 256
	foldBits    = harvestBits / 2
	stateSize   = 32
	messageSize = stateSize + 4
)

// ErrCounterExhausted is returned by NextChecked when another harvesting round
// would wrap the 32-bit round counter.
var ErrCounterExhausted = errors.New("rootstream: round counter exhausted")

// Chunk is one 16-byte unit of output.
type Chunk [ChunkSize]byte

// Rootstream is a deterministic byte stream generator that ratchets a 32-byte state
// forward by hashing state‖counter, sifts one bit out of every accepted digest byte
// and folds 256 sifted bits into a 16-byte Chunk.
// Two instances created from the same Seed (and hash) produce identical Chunk sequences.
// This generator is NOT cryptographically secure. Do not use it where unpredictability matters.
// This generator is not thread-safe. Independent instances may be used in parallel.
type Rootstream struct {
	state   [stateSize]byte
	counter uint32
	hash    HashFunc
}

// New creates a Rootstream from seed using SHA-256, the only hash that
// reproduces the published test vectors.
func New(seed Seed) *Rootstream {
	return NewWithHash(seed, SHA256)
}

// NewWithHash creates a Rootstream from seed using h as hash primitive.
// A nil h selects SHA256.
func NewWithHash(seed Seed, h HashFunc) *Rootstream {
	if h == nil {
		h = SHA256
	}
	return &Rootstream{
		state: h(seed[:]),
		hash:  h,
	}
}

// Counter returns the number of hash rounds performed since construction.
func (rs *Rootstream) Counter() uint32 {
	return rs.counter
}

// State returns a copy of the current ratchet state.
func (rs *Rootstream) State() [stateSize]byte {
	return rs.state
}

// Next returns the next Chunk of the stream and advances state and counter.
// The counter is not guarded and wraps silently after 2^32 rounds.
func (rs *Rootstream) Next() Chunk {
	var bits bitBuffer
	rs.harvest(&bits)
	return bits.fold()
}

// NextChecked works like Next but returns ErrCounterExhausted instead of
// wrapping the round counter.
// If it returns an error, state and counter are unchanged.
func (rs *Rootstream) NextChecked() (Chunk, error) {
	var bits bitBuffer
	state, counter := rs.state, rs.counter
	for bits.n < harvestBits {
		if rs.counter == math.MaxUint32 {
			rs.state, rs.counter = state, counter
			return Chunk{}, ErrCounterExhausted
		}
		rs.round(&bits)
	}
	return bits.fold(), nil
}

// harvest runs rounds until 256 bits are accepted.
func (rs *Rootstream) harvest(bits *bitBuffer) {
	for bits.n < harvestBits {
		rs.round(bits)
	}
}

// round performs exactly one ratchet step. State and counter always advance,
// no matter how many bits the digest yields.
func (rs *Rootstream) round(bits *bitBuffer) {
	var msg [messageSize]byte
	copy(msg[:stateSize], rs.state[:])
	binary.BigEndian.PutUint32(msg[stateSize:], rs.counter)

	h := rs.hash
	if h == nil {
		h = SHA256
	}
	digest := h(msg[:])
	rs.state = digest
	rs.counter++

	for _, b := range digest {
		if bits.sift(b) && bits.n == harvestBits {
			break
		}
	}
}

// bitBuffer holds the harvested bits in acceptance order, one bit per byte.
type bitBuffer struct {
	bits [harvestBits]byte
	n    int
}

// sift accepts bit 0 of b iff bits 1 and 2 of b are equal.
// It reports whether a bit was accepted.
func (buf *bitBuffer) sift(b byte) bool {
	if (b>>1)&1 != (b>>2)&1 {
		return false
	}
	buf.bits[buf.n] = b & 1
	buf.n++
	return true
}

// fold XORs the first 128 bits with the second 128 bits and packs the result MSB first.
func (buf *bitBuffer) fold() Chunk {
	var out Chunk
	for i := range foldBits {
		bit := buf.bits[i] ^ buf.bits[i+foldBits]
		out[i/8] |= bit << (7 - (i % 8))
	}
	return out
}

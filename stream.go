package rootstream

import "encoding/binary"

// Stream turns the chunk sequence of a Rootstream into a continuous byte stream
// and reads typed values from it. Values are decoded big-endian from consecutive
// stream bytes, so a given seed always yields the same values regardless of
// the platform.
// Stream implements io.Reader.
// Stream is not thread-safe, and the underlying Rootstream must not be advanced
// by anyone else while the Stream is in use.
type Stream struct {
	gen    *Rootstream
	buf    Chunk
	bufPos int
}

// NewStream wraps g. The first chunk is drawn lazily.
func NewStream(g *Rootstream) *Stream {
	return &Stream{gen: g, bufPos: ChunkSize}
}

// Read fills p with the next len(p) stream bytes. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.bufPos == ChunkSize {
			s.refill()
		}
		c := copy(p[n:], s.buf[s.bufPos:])
		s.bufPos += c
		n += c
	}
	return n, nil
}

func (s *Stream) refill() {
	s.buf = s.gen.Next()
	s.bufPos = 0
}

// take returns the next n stream bytes (n <= 8).
func (s *Stream) take(n int) []byte {
	var b [8]byte
	_, _ = s.Read(b[:n])
	return b[:n]
}

// Uint8 returns the next stream byte.
func (s *Stream) Uint8() uint8 {
	if s.bufPos == ChunkSize {
		s.refill()
	}
	v := s.buf[s.bufPos]
	s.bufPos++
	return v
}

// Uint16 returns a uniformly distributed uint16.
func (s *Stream) Uint16() uint16 {
	return binary.BigEndian.Uint16(s.take(2))
}

// Uint32 returns a uniformly distributed uint32.
func (s *Stream) Uint32() uint32 {
	return binary.BigEndian.Uint32(s.take(4))
}

// Uint64 returns a uniformly distributed uint64.
func (s *Stream) Uint64() uint64 {
	return binary.BigEndian.Uint64(s.take(8))
}

// Float64 returns Uint64()/2^64, the float stream other Rootstream ports produce.
// The result lies in [0, 1], where 1.0 only occurs through rounding of the
// largest uint64 values.
// If you need a strictly half-open interval, use Float64Open.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()) / (1 << 64)
}

// Float64Open returns a uniformly distributed float64 in [0.0, 1.0) built from
// the top 53 bits of Uint64().
// This function will never return 1.0, -0.0, NaN or Inf.
func (s *Stream) Float64Open() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// UInt32N returns a non-negative pseudo-random number in the half-open interval [0,n).
// It compensates for bias.
// For n=0 and n=1, UInt32N returns 0.
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
func (s *Stream) UInt32N(n uint32) uint32 {
	v := s.Uint32()
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			v = s.Uint32()
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

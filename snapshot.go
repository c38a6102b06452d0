package rootstream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const snapshotSize = 4 + 32 + 4

var snapshotMagic = [4]byte{'R', 'S', 0x00, 0x01}

// ErrBadSnapshot is wrapped by UnmarshalBinary for malformed input.
var ErrBadSnapshot = errors.New("rootstream: bad snapshot")

// MarshalBinary encodes state and counter so that a stream can be resumed later.
// The hash primitive is not part of the snapshot.
func (rs *Rootstream) MarshalBinary() ([]byte, error) {
	out := make([]byte, snapshotSize)
	copy(out[:4], snapshotMagic[:])
	copy(out[4:36], rs.state[:])
	binary.BigEndian.PutUint32(out[36:], rs.counter)
	return out, nil
}

// UnmarshalBinary restores state and counter from a snapshot produced by MarshalBinary.
// A zero Rootstream restored this way uses SHA256.
func (rs *Rootstream) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotSize {
		return fmt.Errorf("%w: length %d, want %d", ErrBadSnapshot, len(data), snapshotSize)
	}
	if [4]byte(data[:4]) != snapshotMagic {
		return fmt.Errorf("%w: magic %x", ErrBadSnapshot, data[:4])
	}
	copy(rs.state[:], data[4:36])
	rs.counter = binary.BigEndian.Uint32(data[36:])
	if rs.hash == nil {
		rs.hash = SHA256
	}
	return nil
}

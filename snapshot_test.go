package rootstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotResumesSequence(t *testing.T) {
	rs := New(DefaultSeed)
	rs.Next()
	rs.Next()
	snap, err := rs.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, snap, snapshotSize)

	var resumed Rootstream
	require.NoError(t, resumed.UnmarshalBinary(snap))
	assert.Equal(t, rs.Counter(), resumed.Counter())
	assert.Equal(t, rs.State(), resumed.State())
	for i := 2; i < len(Vectors); i++ {
		assert.Equal(t, Vectors[i], resumed.Next().String(), "chunk %d", i)
	}
}

func TestSnapshotKeepsHash(t *testing.T) {
	rs := NewWithHash(DefaultSeed, BLAKE3)
	snap, err := rs.MarshalBinary()
	require.NoError(t, err)

	other := NewWithHash(SeedFrom(1), BLAKE3)
	require.NoError(t, other.UnmarshalBinary(snap))
	assert.Equal(t, rs.Next(), other.Next())
}

func TestSnapshotRejectsMalformed(t *testing.T) {
	snap, err := New(DefaultSeed).MarshalBinary()
	require.NoError(t, err)

	var rs Rootstream
	assert.ErrorIs(t, rs.UnmarshalBinary(snap[:snapshotSize-1]), ErrBadSnapshot)
	assert.ErrorIs(t, rs.UnmarshalBinary(append(snap, 0)), ErrBadSnapshot)

	bad := append([]byte(nil), snap...)
	bad[0] = 'X'
	assert.ErrorIs(t, rs.UnmarshalBinary(bad), ErrBadSnapshot)
	assert.Equal(t, [32]byte{}, rs.State(), "failed restore must not touch state")
}

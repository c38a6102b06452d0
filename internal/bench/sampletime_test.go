package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiffTimeStamps(t *testing.T) {
	t1 := SampleTime()
	time.Sleep(20 * time.Millisecond)
	t2 := SampleTime()
	diff := DiffTimeStamps(t1, t2)
	assert.GreaterOrEqual(t, diff, int64(20*time.Millisecond))
	assert.Less(t, diff, int64(5*time.Second))
	assert.LessOrEqual(t, DiffTimeStamps(t2, t1), int64(0))
}

func TestGetSampleTimePrecisionRespectsCachedValue(t *testing.T) {
	prev := precision
	defer func() { precision = prev }()

	precision = int64(123456)
	assert.Equal(t, int64(123456), GetSampleTimePrecision())

	precision = int64(-1)
	p1 := GetSampleTimePrecision()
	assert.Greater(t, p1, int64(0))
	assert.Equal(t, p1, GetSampleTimePrecision(), "value must be cached")
}

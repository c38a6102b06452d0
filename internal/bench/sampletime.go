package bench

import (
	"math"
)

const iterationsForCalibration = 1_000_000

var (
	// precision holds the precision of time measurements obtained via SampleTime() on the runtime system in nanoseconds.
	precision = int64(-1)
)

// GetSampleTimePrecision returns the precision of time measurements obtained via SampleTime()
// on the runtime system in nanoseconds. The value is computed once and cached.
// Expect 100ns on Windows systems, and typically between 20ns and 100ns on Linux and MacOS systems.
func GetSampleTimePrecision() int64 {
	if precision == int64(-1) {
		precision = calcMinTimeSample()
	}
	return precision
}

func calcMinTimeSample() int64 {
	var minDiff = int64(math.MaxInt64)
	for range iterationsForCalibration {
		t1 := SampleTime()
		t2 := SampleTime()
		diff := DiffTimeStamps(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}

//go:build !windows

package bench

import "time"

// TimeStamp is a relative point in time with the highest precision available on the current system.
// TimeStamps are only comparable within the same process.
type TimeStamp = time.Time

// SampleTime returns the current TimeStamp.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns tLater - tEarlier in nanoseconds. The result is negative
// if tLater is in fact the earlier of the two.
func DiffTimeStamps(tEarlier, tLater TimeStamp) int64 {
	return tLater.Sub(tEarlier).Nanoseconds()
}

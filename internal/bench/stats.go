package bench

import (
	"math"
	"sort"

	"github.com/TomTonic/rootstream"
)

// pivotSeed seeds the pivot choice of QuickMedian, which keeps its runtime reproducible.
var pivotSeed = rootstream.SeedFrom(math.Pi)

func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	sort.Float64s(dataCopy)

	l := len(dataCopy)
	if l%2 == 0 {
		return (dataCopy[l/2-1] + dataCopy[l/2]) / 2
	}
	return dataCopy[l/2]
}

// Statistics returns mean, population variance and standard deviation of data.
// For empty data it returns (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))
	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// partition rearranges xs[low:high+1] around xs[high] and returns the pivot's final index
func partition(xs []float64, low, high uint32) uint32 {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based index) in expected O(n) time.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k uint32, rng *rootstream.Stream) float64 {
	low, high := uint32(0), uint32(len(xs)-1)
	for low < high {
		pivotIndex := rng.UInt32N(high-low+1) + low
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex]
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median in expected O(n) time.
// For an even number of elements it returns the higher of the two middle ones.
// For empty input it returns NaN.
// Note: This function reorders the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	rng := rootstream.NewStream(rootstream.New(pivotSeed))
	return quickselect(xs, uint32(len(xs)/2), rng)
}

package bench

import (
	"fmt"
	"math"
	"slices"

	"github.com/TomTonic/rootstream"
)

type ComparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

const MinimumDataPoints = 11

// CompareSamples computes the confidence that sample A is faster than sample B by at least
// each of the given relative speedups. The precisionLevel parameter is the number of
// bootstrap repetitions. Resampling is driven by a Rootstream built from seed, so
// identical inputs and seed yield identical confidences.
// If there are not enough data points in either sample, an error is returned.
func CompareSamples(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64, seed rootstream.Seed) ([]ComparisonResult, error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return nil, fmt.Errorf("not enough data points: need at least %d samples for each of A and B, got %d and %d",
			MinimumDataPoints, len(sampleA), len(sampleB))
	}
	if len(relativeSpeedupsToTest) == 0 {
		relativeSpeedupsToTest = []float64{0.0}
	}
	thresholds := slices.Clone(relativeSpeedupsToTest)
	slices.Sort(thresholds)

	conf := BootstrapConfidence(sampleA, sampleB, thresholds, precisionLevel, seed)

	result := make([]ComparisonResult, 0, len(thresholds))
	for _, t := range thresholds {
		result = append(result, ComparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		})
	}
	return result, nil
}

// bootstrapSample draws len(xs) elements from xs with replacement using rng.
// The input slice is not modified.
func bootstrapSample(xs []float64, rng *rootstream.Stream) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	for i := range n {
		sample[i] = xs[rng.UInt32N(uint32(n))]
	}
	return sample
}

// BootstrapConfidence estimates the probability that the relative speedup of A over B
// meets or exceeds each threshold.
//
// Each of the reps replicates draws a bootstrap sample from A and from B and evaluates
//
//	delta = 1 - median(A_sample)/median(B_sample)
//
// A positive delta means A is faster than B by that relative amount. The returned map holds,
// per threshold, the fraction of replicates with delta >= threshold.
//
//   - If reps is zero every threshold maps to NaN.
//   - A replicate with a NaN median counts towards no threshold.
//   - A median(B_sample) that is (nearly) zero is replaced by a scale-aware epsilon.
//   - Equal medians (including equal infinities) give delta = 0.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, seed rootstream.Seed) map[float64]float64 {
	confidenceForThreshold := make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	rng := rootstream.NewStream(rootstream.New(seed))
	counts := make(map[float64]uint64, len(thresholds))

	for range reps {
		delta := relativeSpeedup(QuickMedian(bootstrapSample(A, rng)), QuickMedian(bootstrapSample(B, rng)))
		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}

func relativeSpeedup(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB:
		return 0.0
	}
	const rel = 1e-12
	eps := math.Max(math.Abs(medB)*rel, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}

package bench

import "github.com/TomTonic/rootstream"

// TimeChunks measures the runtime of n consecutive g.Next() calls in nanoseconds.
func TimeChunks(g *rootstream.Rootstream, n int) []float64 {
	samples := make([]float64, n)
	for i := range n {
		t1 := SampleTime()
		g.Next()
		t2 := SampleTime()
		samples[i] = float64(DiffTimeStamps(t1, t2))
	}
	return samples
}

// HashComparison is the outcome of CompareHashes.
type HashComparison struct {
	MedianA, MedianB float64
	Results          []ComparisonResult
}

// CompareHashes times n chunks from a generator using hashA and n chunks from one using
// hashB, both built from seed, and reports how confidently A outpaces B.
func CompareHashes(seed rootstream.Seed, hashA, hashB rootstream.HashFunc, n int, thresholds []float64, reps uint64) (HashComparison, error) {
	a := TimeChunks(rootstream.NewWithHash(seed, hashA), n)
	b := TimeChunks(rootstream.NewWithHash(seed, hashB), n)
	results, err := CompareSamples(a, b, thresholds, reps, seed)
	if err != nil {
		return HashComparison{}, err
	}
	return HashComparison{MedianA: Median(a), MedianB: Median(b), Results: results}, nil
}

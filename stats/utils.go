package stats

import (
	"math"
	"sort"
)

// sortedCopy returns an ascending copy of samples. NaN sorts before every
// number so the order is total and the sort never panics.
func sortedCopy(samples []float64) []float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return sorted
}

func sampleMean(samples []float64) float64 {
	sum := 0.0
	for _, sample := range samples {
		sum += sample
	}
	return sum / float64(len(samples))
}

// Bessel-corrected standard deviation around a precomputed mean.
// Callers guarantee len(samples) >= 2.
func sampleSD(samples []float64, mean float64) float64 {
	squares := 0.0
	for _, sample := range samples {
		delta := sample - mean
		squares += delta * delta
	}
	return math.Sqrt(squares / float64(len(samples)-1))
}

func float64Ptr(value float64) *float64 {
	return &value
}

package stats

// Metrics holds the central tendency of a batch of latency samples.
// Percentiles are sample-rank values, not interpolated.
type Metrics struct {
	Mean   float64
	Median float64
	P25    float64
	P75    float64
}

// ComputeMetrics returns the mean, median, p25 and p75 of samples. It
// reports false for fewer than two samples. samples is never modified.
func ComputeMetrics(samples []float64) (Metrics, bool) {
	if len(samples) < 2 {
		return Metrics{}, false
	}
	return computeMetrics(sortedCopy(samples), sampleMean(samples)), true
}

// computeMetrics picks sample-rank percentiles out of an ascending slice.
func computeMetrics(sorted []float64, mean float64) Metrics {
	n := len(sorted)
	return Metrics{
		Mean:   mean,
		Median: sorted[n/2],
		P25:    sorted[n/4],
		P75:    sorted[3*n/4],
	}
}

// ComputeJitter returns the sample standard deviation of samples, or false
// for fewer than two samples.
func ComputeJitter(samples []float64) (float64, bool) {
	if len(samples) < 2 {
		return 0, false
	}
	return sampleSD(samples, sampleMean(samples)), true
}

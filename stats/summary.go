package stats

// LatencySummary aggregates one reporting interval. Min through Max are
// either all set or all nil; they are nil when no samples were available.
type LatencySummary struct {
	Sent     uint64   `json:"sent"`
	Received uint64   `json:"received"`
	Loss     float64  `json:"loss"`
	Min      *float64 `json:"min_ms,omitempty"`
	Mean     *float64 `json:"mean_ms,omitempty"`
	Median   *float64 `json:"median_ms,omitempty"`
	P25      *float64 `json:"p25_ms,omitempty"`
	P75      *float64 `json:"p75_ms,omitempty"`
	Max      *float64 `json:"max_ms,omitempty"`
	Jitter   *float64 `json:"jitter_ms,omitempty"`
}

func (summary *LatencySummary) HasData() bool {
	return summary.Mean != nil
}

// Loss is (sent - received) / sent, or 0 when nothing was sent. It is not
// clamped, so received > sent yields a negative ratio.
func Loss(sent, received uint64) float64 {
	if sent == 0 {
		return 0
	}
	return (float64(sent) - float64(received)) / float64(sent)
}

// BuildSummary combines packet counts and latency samples into a
// LatencySummary. A non-nil jitterHint is used as-is instead of computing
// jitter from samples. samples is never modified.
func BuildSummary(sent, received uint64, samples []float64, jitterHint *float64) LatencySummary {
	summary := LatencySummary{
		Sent:     sent,
		Received: received,
		Loss:     Loss(sent, received),
	}
	if jitterHint != nil {
		summary.Jitter = float64Ptr(*jitterHint)
	}
	if len(samples) < 2 {
		// Nothing to summarize; a single sample has no spread either.
		return summary
	}

	sorted := sortedCopy(samples)
	mean := sampleMean(samples)
	metrics := computeMetrics(sorted, mean)

	summary.Min = float64Ptr(sorted[0])
	summary.Max = float64Ptr(sorted[len(sorted)-1])
	summary.Mean = float64Ptr(metrics.Mean)
	summary.Median = float64Ptr(metrics.Median)
	summary.P25 = float64Ptr(metrics.P25)
	summary.P75 = float64Ptr(metrics.P75)
	if jitterHint == nil {
		summary.Jitter = float64Ptr(sampleSD(samples, mean))
	}
	return summary
}

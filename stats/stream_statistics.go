package stats

// StreamStatistics tracks one probe stream without buffering latencies.
// Use one instance per stream; it has no internal locking.
type StreamStatistics struct {
	FirstArrivalTimestamp int64
	LastArrivalTimestamp  int64
	Sent                  uint64
	Received              uint64
	IntervalStats         *Welford
	LatencyStats          *Welford
}

func NewStreamStatistics() *StreamStatistics {
	return &StreamStatistics{
		FirstArrivalTimestamp: -1,
		LastArrivalTimestamp:  -1,
		Sent:                  0,
		Received:              0,
		IntervalStats:         NewWelford(),
		LatencyStats:          NewWelford(),
	}
}

func (stream *StreamStatistics) RecordSent() {
	stream.Sent++
}

// RecordReply registers a reply arriving at timestamp with the given
// round-trip latency in milliseconds.
func (stream *StreamStatistics) RecordReply(timestamp int64, latencyMs float64) {
	if stream.FirstArrivalTimestamp == -1 {
		stream.FirstArrivalTimestamp = timestamp
	} else {
		interval := timestamp - stream.LastArrivalTimestamp
		stream.IntervalStats.Observe(float64(interval))
	}

	stream.LatencyStats.Observe(latencyMs)
	stream.Received++
	stream.LastArrivalTimestamp = timestamp
}

func (stream *StreamStatistics) jitterHint() *float64 {
	sd, ok := stream.LatencyStats.GetSD()
	if !ok {
		return nil
	}
	return &sd
}

// Summary reports counts, loss and the running jitter. Distribution fields
// are absent since no samples are retained.
func (stream *StreamStatistics) Summary() LatencySummary {
	return BuildSummary(stream.Sent, stream.Received, nil, stream.jitterHint())
}

// SummaryWithSamples is Summary with distribution fields computed from
// samples the caller chose to keep.
func (stream *StreamStatistics) SummaryWithSamples(samples []float64) LatencySummary {
	return BuildSummary(stream.Sent, stream.Received, samples, stream.jitterHint())
}

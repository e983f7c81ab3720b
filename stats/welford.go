package stats

import "math"

// Welford keeps a running mean and variance without retaining values.
// The zero value is an empty accumulator. Not safe for concurrent writers.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (welford *Welford) Observe(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

func (welford *Welford) GetCount() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() (float64, bool) {
	if welford.count < 1 {
		return 0, false
	}
	return welford.mean, true
}

func (welford *Welford) GetSampleVariance() (float64, bool) {
	if welford.count < 2 {
		return 0, false
	}
	return welford.m2 / float64(welford.count-1), true
}

// GetSD returns the sample standard deviation; false until two values
// have been observed.
func (welford *Welford) GetSD() (float64, bool) {
	variance, ok := welford.GetSampleVariance()
	if !ok {
		return 0, false
	}
	return math.Sqrt(variance), true
}

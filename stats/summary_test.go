package stats

import (
	"encoding/json"
	"latencystats/utils"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary_NoSamples(t *testing.T) {
	summary := BuildSummary(10, 8, nil, nil)

	expected := LatencySummary{Sent: 10, Received: 8, Loss: 0.2}
	utils.AssertTrue(t, cmp.Equal(expected, summary))
	assert.False(t, summary.HasData())
	assert.Nil(t, summary.Jitter)
}

func TestBuildSummary_NoSamplesKeepsHint(t *testing.T) {
	hint := 2.5
	summary := BuildSummary(4, 4, []float64{}, &hint)

	assert.Equal(t, 0.0, summary.Loss)
	assert.False(t, summary.HasData())
	utils.AssertPtrClose(t, summary.Jitter, 2.5, 0)

	// The record owns its own copy.
	hint = 9
	utils.AssertPtrClose(t, summary.Jitter, 2.5, 0)
}

func TestBuildSummary_ZeroSent(t *testing.T) {
	samples := []float64{5, 1, 3}
	summary := BuildSummary(0, 0, samples, nil)

	assert.Equal(t, 0.0, summary.Loss)
	assert.True(t, summary.HasData())
	utils.AssertPtrClose(t, summary.Min, 1.0, 0)
	utils.AssertPtrClose(t, summary.Max, 5.0, 0)
	utils.AssertPtrClose(t, summary.Mean, 3.0, 1e-12)
	utils.AssertPtrClose(t, summary.Median, 3.0, 0)
	utils.AssertPtrClose(t, summary.P25, 1.0, 0)
	utils.AssertPtrClose(t, summary.P75, 5.0, 0)

	jitter, _ := ComputeJitter(samples)
	utils.AssertPtrClose(t, summary.Jitter, jitter, 1e-12)

	assert.Equal(t, []float64{5, 1, 3}, samples)
}

func TestBuildSummary_HintOverridesJitter(t *testing.T) {
	hint := 0.75
	summary := BuildSummary(5, 5, []float64{1, 2, 3, 4, 5}, &hint)

	utils.AssertPtrClose(t, summary.Jitter, 0.75, 0)
	utils.AssertPtrClose(t, summary.Mean, 3.0, 1e-12)
	utils.AssertPtrClose(t, summary.P25, 2.0, 0)
	utils.AssertPtrClose(t, summary.P75, 4.0, 0)
}

func TestBuildSummary_SingleSample(t *testing.T) {
	hint := 1.0
	summary := BuildSummary(2, 1, []float64{12.5}, &hint)

	jitter := 1.0
	expected := LatencySummary{Sent: 2, Received: 1, Loss: 0.5, Jitter: &jitter}
	utils.AssertTrue(t, cmp.Equal(expected, summary))
	assert.False(t, summary.HasData())

	summary = BuildSummary(1, 1, []float64{12.5}, nil)
	assert.Nil(t, summary.Min)
	assert.Nil(t, summary.Jitter)
}

func TestBuildSummary_NegativeLoss(t *testing.T) {
	summary := BuildSummary(4, 5, nil, nil)
	assert.InDelta(t, -0.25, summary.Loss, 1e-12)
}

func TestBuildSummary_AgreesWithBatch(t *testing.T) {
	samples := []float64{12, 9.5, 30, 11, 10.25, 14, 13}
	summary := BuildSummary(8, 7, samples, nil)

	metrics, ok := ComputeMetrics(samples)
	assert.True(t, ok)
	jitter, _ := ComputeJitter(samples)

	assert.Equal(t, metrics.Mean, *summary.Mean)
	assert.Equal(t, metrics.Median, *summary.Median)
	assert.Equal(t, metrics.P25, *summary.P25)
	assert.Equal(t, metrics.P75, *summary.P75)
	assert.Equal(t, jitter, *summary.Jitter)
	assert.InDelta(t, 0.125, summary.Loss, 1e-12)
}

func TestLatencySummary_JSON(t *testing.T) {
	buf, err := json.Marshal(BuildSummary(10, 8, nil, nil))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"sent":10,"received":8,"loss":0.2}`, string(buf))

	buf, err = json.Marshal(BuildSummary(2, 2, []float64{1, 3}, nil))
	assert.NoError(t, err)
	var decoded map[string]float64
	assert.NoError(t, json.Unmarshal(buf, &decoded))
	assert.Equal(t, 1.0, decoded["min_ms"])
	assert.Equal(t, 3.0, decoded["max_ms"])
	assert.Equal(t, 2.0, decoded["mean_ms"])
}

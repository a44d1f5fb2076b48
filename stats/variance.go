package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SampleVariance is the unbiased variance (sum of squared deviations / (n-1)).
func SampleVariance(samples []float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("%w: have %d, need at least 2", ErrInsufficientSamples, len(samples))
	}
	return stat.Variance(samples, nil), nil
}

// Summary describes one metric across runs.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Summarize computes a Summary; it needs at least 2 samples, like SampleVariance.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, fmt.Errorf("%w: have %d, need at least 2", ErrInsufficientSamples, len(samples))
	}
	mean, variance := stat.MeanVariance(samples, nil)
	return Summary{
		Count:    len(samples),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      floats.Min(samples),
		Max:      floats.Max(samples),
	}, nil
}

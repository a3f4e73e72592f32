// Package tuner estimates the pitch of a sampled string and reports how far
// it is from the nearest note.
package tuner

import (
	"math"
)

const (
	MinFrequency = 60.0
	MaxFrequency = 1200.0

	// SilenceRMS is the loudness below which a buffer is treated as silence.
	SilenceRMS = 0.01

	// PeakThreshold is how close to the strongest correlation the first
	// accepted peak must be. Lower values favor shorter periods.
	PeakThreshold = 0.9

	BufferSize = 2048

	// MaxSamples bounds the work of one Detect call; longer input is cut.
	MaxSamples = 4 * BufferSize

	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Detect estimates the fundamental frequency of samples by autocorrelation
// over the lags for MinFrequency..MaxFrequency. It reports false for silence,
// for buffers too short to hold the longest period and when nothing in range
// correlates. Only the first MaxSamples samples are used and sample rates
// outside MinSampleRate..MaxSampleRate are refused.
func Detect(samples []float32, sampleRate int) (float64, bool) {
	if !ValidSampleRate(sampleRate) || len(samples) == 0 {
		return 0, false
	}
	if len(samples) > MaxSamples {
		samples = samples[:MaxSamples]
	}
	if rms(samples) < SilenceRMS {
		return 0, false
	}
	minLag := int(math.Ceil(float64(sampleRate) / MaxFrequency))
	maxLag := int(math.Floor(float64(sampleRate) / MinFrequency))
	if maxLag > len(samples)/2 {
		maxLag = len(samples) / 2
	}
	if minLag < 1 {
		minLag = 1
	}
	if maxLag <= minLag+1 {
		return 0, false
	}
	window := len(samples) - maxLag - 1

	var energy float64
	for i := 0; i < window; i++ {
		energy += float64(samples[i]) * float64(samples[i])
	}
	if energy == 0 {
		return 0, false
	}

	corr := make([]float64, maxLag+2)
	for lag := minLag; lag <= maxLag+1; lag++ {
		var sum float64
		for i := 0; i < window; i++ {
			sum += float64(samples[i]) * float64(samples[i+lag])
		}
		corr[lag] = sum / energy
	}

	// Skip the lobe around lag 0: it is not a period.
	start := minLag
	for start < maxLag && corr[start+1] <= corr[start] {
		start++
	}
	if start >= maxLag {
		return 0, false
	}
	best := 0.0
	for lag := start; lag <= maxLag; lag++ {
		best = math.Max(best, corr[lag])
	}
	if best <= 0 {
		return 0, false
	}

	lag := start
	for lag <= maxLag && corr[lag] < PeakThreshold*best {
		lag++
	}
	for lag < maxLag && corr[lag+1] > corr[lag] {
		lag++
	}

	period := float64(lag)
	if lag > minLag {
		y0, y1, y2 := corr[lag-1], corr[lag], corr[lag+1]
		if d := y0 - 2*y1 + y2; d != 0 {
			period += 0.5 * (y0 - y2) / d
		}
	}

	hz := float64(sampleRate) / period
	if hz < MinFrequency || hz > MaxFrequency {
		return 0, false
	}
	return hz, true
}

func ValidSampleRate(rate int) bool {
	return rate >= MinSampleRate && rate <= MaxSampleRate
}

func rms(samples []float32) float64 {
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

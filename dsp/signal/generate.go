package signal

import (
	"fmt"
	"math"
)

// Impulse returns a unit impulse: sample 0 is 1, the rest are 0.
func Impulse(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	out[0] = 1
	return out, nil
}

// Sine generates a sine wave of freqHz at the given amplitude.
func Sine(freqHz, amplitude, sampleRate float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", sampleRate)
	}
	if freqHz < 0 || freqHz >= sampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, Nyquist): %f", freqHz)
	}

	out := make([]float64, samples)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out, nil
}

// Constant returns a signal holding the same value for every sample.
func Constant(value float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("constant samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

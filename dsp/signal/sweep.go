package signal

import (
	"fmt"
	"math"
)

// LogSweep generates a logarithmic sine sweep across the given sample count.
//
// The instantaneous frequency rises exponentially from startHz to endHz:
//
//	f(t) = f1 * exp(t/T * ln(f2/f1))
//
// so each octave takes the same amount of time. The phase integral gives
//
//	x(t) = sin(2*pi * f1 * T / ln(f2/f1) * (exp(t/T * ln(f2/f1)) - 1))
func (g *Generator) LogSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validateSweep(startHz, endHz, samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)

	T := float64(samples) / g.sampleRate
	lnRatio := math.Log(endHz / startHz)

	for i := range out {
		t := float64(i) / g.sampleRate
		phase := 2 * math.Pi * startHz * T / lnRatio * (math.Exp(t/T*lnRatio) - 1)
		out[i] = amplitude * math.Sin(phase)
	}

	return out, nil
}

// LinearSweep generates a linear chirp across the given sample count.
//
// The instantaneous frequency rises linearly:
//
//	f(t) = f1 + (f2-f1) * t / T
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validateSweep(startHz, endHz, samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)

	T := float64(samples) / g.sampleRate
	k := (endHz - startHz) / T

	for i := range out {
		t := float64(i) / g.sampleRate
		phase := 2 * math.Pi * (startHz*t + 0.5*k*t*t)
		out[i] = amplitude * math.Sin(phase)
	}

	return out, nil
}

func (g *Generator) validateSweep(startHz, endHz float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("sweep samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return fmt.Errorf("sweep sample rate must be > 0: %f", g.sampleRate)
	}
	if startHz <= 0 || endHz <= 0 {
		return fmt.Errorf("sweep frequencies must be > 0: %f, %f", startHz, endHz)
	}
	if startHz >= endHz {
		return fmt.Errorf("sweep start frequency must be below end frequency: %f >= %f", startHz, endHz)
	}
	return nil
}

package multitaper

import "math"

// segmentStarts returns the start index of every analysis window: multiples
// of step whose full window still fits in signalLen samples. Trailing
// samples that do not fill a window are dropped.
func segmentStarts(signalLen, windowSamples, stepSamples int) []int {
	if windowSamples > signalLen {
		return nil
	}
	starts := make([]int, 0, (signalLen-windowSamples)/stepSamples+1)
	for s := 0; s+windowSamples <= signalLen; s += stepSamples {
		starts = append(starts, s)
	}

	return starts
}

// segmentTimes maps window start indexes to center timestamps in seconds.
// The half-window offset rounds to even so that timestamps are stable for
// both parities of the window length.
func segmentTimes(starts []int, windowSamples int, sampleRate float64) []float64 {
	half := math.RoundToEven(float64(windowSamples) / 2)
	times := make([]float64, len(starts))
	for i, s := range starts {
		times[i] = (float64(s) + half) / sampleRate
	}

	return times
}

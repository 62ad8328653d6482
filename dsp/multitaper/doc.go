// Package multitaper computes multitaper spectrogram estimates of
// one-dimensional signals.
//
// The signal is cut into overlapping windows. Each window is detrended,
// multiplied by a family of orthogonal tapers, and transformed; the
// resulting per-taper power spectra are combined into a single estimate per
// window. Averaging several orthogonal views of the same window trades a
// little frequency resolution for a large variance reduction compared to a
// plain periodogram:
//
//   - unity weighting averages the taper spectra with equal weights
//   - eigen weighting favors tapers with better spectral concentration
//   - adaptive weighting reweights per frequency bin, suppressing leakage
//     where the local spectrum is weak
//
// # Usage
//
// Analyze 0-25 Hz of an EEG-rate signal with 4 s windows hopping by 1 s:
//
//	res, err := multitaper.Compute(samples, multitaper.Config{
//	    SampleRate:     200,
//	    RangeUpperFreq: 25,
//	    TimeBandwidth:  3,
//	    WindowSeconds:  4,
//	    StepSeconds:    1,
//	    Parallel:       true,
//	})
//	// res.Power[i][j] is the density at res.Freqs[i] Hz, res.Times[j] s.
//
// Sine tapers are built in. Slepian (DPSS) tapers are not computed here;
// feed precomputed sequences through a taper.StaticSource:
//
//	src, _ := taper.NewStaticSource(taper.Set{Tapers: dpss, Ratios: eigenvalues})
//	res, err := multitaper.Compute(samples, multitaper.Config{
//	    SampleRate: 200,
//	    Tapers:     src,
//	})
//
// Compute never mutates the input signal, and parallel runs return exactly
// the same matrix as sequential ones.
package multitaper

package multitaper

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/cwbudde/algo-spectral/dsp/taper"
)

// DetrendMode selects the trend removed from each segment before tapering.
type DetrendMode int

const (
	// DetrendLinear removes a least-squares line from each segment.
	DetrendLinear DetrendMode = iota
	// DetrendConstant removes the segment mean.
	DetrendConstant
	// DetrendOff leaves segments untouched.
	DetrendOff
)

// String returns the canonical name of the mode.
func (m DetrendMode) String() string {
	switch m {
	case DetrendLinear:
		return "linear"
	case DetrendConstant:
		return "constant"
	case DetrendOff:
		return "off"
	default:
		return fmt.Sprintf("DetrendMode(%d)", int(m))
	}
}

// ParseDetrendMode maps a textual detrend option to a DetrendMode. Matching
// is case-insensitive and accepts the aliases "const" for constant and
// "none" or "false" for off. The empty string selects the linear default.
func ParseDetrendMode(name string) (DetrendMode, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return DetrendLinear, nil
	case "const", "constant":
		return DetrendConstant, nil
	case "none", "false", "off":
		return DetrendOff, nil
	default:
		return 0, fmt.Errorf("%w: detrend mode %q not recognized", ErrConfig, name)
	}
}

// Weighting selects how the per-taper spectra of a segment are combined.
type Weighting int

const (
	// WeightUnity averages the taper spectra with equal weights.
	WeightUnity Weighting = iota
	// WeightEigen weights each taper spectrum by its concentration ratio.
	WeightEigen
	// WeightAdapt derives per-frequency weights iteratively so that tapers
	// with less broadband leakage dominate where the spectrum is weak.
	WeightAdapt
)

// String returns the canonical name of the weighting policy.
func (w Weighting) String() string {
	switch w {
	case WeightUnity:
		return "unity"
	case WeightEigen:
		return "eigen"
	case WeightAdapt:
		return "adapt"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// ParseWeighting maps a textual weighting option to a Weighting. Matching is
// case-insensitive; the empty string selects the unity default.
func ParseWeighting(name string) (Weighting, error) {
	switch strings.ToLower(name) {
	case "", "unity":
		return WeightUnity, nil
	case "eigen":
		return WeightEigen, nil
	case "adapt":
		return WeightAdapt, nil
	default:
		return 0, fmt.Errorf("%w: weighting %q not recognized", ErrConfig, name)
	}
}

// Config controls a spectrogram computation. The zero value of every field
// selects a documented default, so Config{SampleRate: fs} is a complete
// configuration.
type Config struct {
	// SampleRate is the signal sample rate in Hz. Required, must be > 0.
	SampleRate float64

	// RangeLowerFreq and RangeUpperFreq bound the analyzed frequency range
	// in Hz, inclusive. Leaving both zero analyzes 0 up to Nyquist. An
	// upper bound beyond Nyquist is clamped with a warning.
	RangeLowerFreq float64
	RangeUpperFreq float64

	// TimeBandwidth is the taper time-half-bandwidth product. Defaults to 5.
	TimeBandwidth float64

	// TaperCount is the number of tapers per segment. Zero derives the
	// optimum floor(2*TimeBandwidth)-1; any other value is used as given,
	// with a warning when it differs from the optimum.
	TaperCount int

	// WindowSeconds and StepSeconds give the analysis window length and
	// hop in seconds. They default to 5 and 1. Durations that do not land
	// on an integral sample count are rounded with a warning.
	WindowSeconds float64
	StepSeconds   float64

	// MinNFFT forces a minimum transform length. The transform length is
	// the smallest power of two at or above both the window length in
	// samples and MinNFFT.
	MinNFFT int

	// Detrend selects the per-segment detrending. Defaults to linear.
	Detrend DetrendMode

	// Weighting selects how taper spectra combine. Defaults to unity.
	Weighting Weighting

	// TimeMajor transposes the output so rows are segments and columns are
	// frequency bins. The default layout is one row per frequency bin.
	TimeMajor bool

	// Parallel distributes segments across a worker pool. The result is
	// identical to a sequential run.
	Parallel bool

	// Workers caps the pool size when Parallel is set. Zero or negative
	// uses the number of CPUs minus one, at least one.
	Workers int

	// Tapers supplies the taper family. Nil selects sine tapers; use a
	// taper.StaticSource to feed precomputed Slepian sequences.
	Tapers taper.Source

	// Transform supplies the forward DFT. Nil selects the built-in FFT.
	Transform TransformFactory

	// Logger receives resolved properties, warnings, and completion notes.
	// Nil disables logging.
	Logger *slog.Logger
}

// Params is the fully resolved form of a Config: every default applied,
// durations converted to sample counts, and the transform length fixed.
type Params struct {
	SampleRate     float64
	RangeLowerFreq float64
	RangeUpperFreq float64
	TimeBandwidth  float64
	TaperCount     int
	WindowSeconds  float64
	StepSeconds    float64
	WindowSamples  int
	StepSamples    int
	NFFT           int
	Detrend        DetrendMode
	Weighting      Weighting

	// Warnings lists non-fatal adjustments made while resolving, in the
	// order they were detected.
	Warnings []string
}

// SpectralResolution returns the half-power bandwidth 2*TW/window in Hz.
func (p Params) SpectralResolution() float64 {
	return 2 * p.TimeBandwidth / p.WindowSeconds
}

// resolveParams validates cfg against the signal length and fills in every
// default. All fatal conditions surface here so the segment loop cannot
// fail on configuration.
func resolveParams(cfg Config, signalLen int) (Params, error) {
	var p Params

	if cfg.SampleRate <= 0 {
		return p, fmt.Errorf("%w: sample rate must be > 0: %v", ErrConfig, cfg.SampleRate)
	}
	p.SampleRate = cfg.SampleRate
	nyquist := cfg.SampleRate / 2

	switch {
	case cfg.RangeLowerFreq == 0 && cfg.RangeUpperFreq == 0:
		p.RangeLowerFreq, p.RangeUpperFreq = 0, nyquist
	case cfg.RangeLowerFreq < 0:
		return p, fmt.Errorf("%w: lower frequency must be >= 0: %v", ErrConfig, cfg.RangeLowerFreq)
	case cfg.RangeUpperFreq <= cfg.RangeLowerFreq:
		return p, fmt.Errorf("%w: upper frequency %v must exceed lower frequency %v",
			ErrConfig, cfg.RangeUpperFreq, cfg.RangeLowerFreq)
	default:
		p.RangeLowerFreq, p.RangeUpperFreq = cfg.RangeLowerFreq, cfg.RangeUpperFreq
	}
	if p.RangeUpperFreq > nyquist {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"upper frequency %g Hz exceeds Nyquist, clamped to %g Hz", p.RangeUpperFreq, nyquist))
		p.RangeUpperFreq = nyquist
	}

	switch cfg.Detrend {
	case DetrendLinear, DetrendConstant, DetrendOff:
		p.Detrend = cfg.Detrend
	default:
		return p, fmt.Errorf("%w: detrend mode %d out of range", ErrConfig, int(cfg.Detrend))
	}
	switch cfg.Weighting {
	case WeightUnity, WeightEigen, WeightAdapt:
		p.Weighting = cfg.Weighting
	default:
		return p, fmt.Errorf("%w: weighting %d out of range", ErrConfig, int(cfg.Weighting))
	}

	p.TimeBandwidth = cfg.TimeBandwidth
	if p.TimeBandwidth == 0 {
		p.TimeBandwidth = 5
	}
	if p.TimeBandwidth < 0 {
		return p, fmt.Errorf("%w: time-bandwidth product must be > 0: %v", ErrConfig, cfg.TimeBandwidth)
	}

	optimal := int(math.Floor(2*p.TimeBandwidth)) - 1
	switch {
	case cfg.TaperCount < 0:
		return p, fmt.Errorf("%w: taper count must be >= 0: %d", ErrConfig, cfg.TaperCount)
	case cfg.TaperCount == 0:
		if optimal < 1 {
			return p, fmt.Errorf("%w: time-bandwidth product %v yields no usable taper count",
				ErrConfig, p.TimeBandwidth)
		}
		p.TaperCount = optimal
	default:
		p.TaperCount = cfg.TaperCount
		if p.TaperCount != optimal {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"taper count %d differs from the optimum floor(2*TW)-1 = %d", p.TaperCount, optimal))
		}
	}

	p.WindowSeconds = cfg.WindowSeconds
	if p.WindowSeconds == 0 {
		p.WindowSeconds = 5
	}
	p.StepSeconds = cfg.StepSeconds
	if p.StepSeconds == 0 {
		p.StepSeconds = 1
	}
	if p.WindowSeconds < 0 {
		return p, fmt.Errorf("%w: window length must be > 0: %v", ErrConfig, cfg.WindowSeconds)
	}
	if p.StepSeconds < 0 {
		return p, fmt.Errorf("%w: window step must be > 0: %v", ErrConfig, cfg.StepSeconds)
	}

	var err error
	p.WindowSamples, err = durationSamples(p.WindowSeconds, p.SampleRate, "window length", &p.Warnings)
	if err != nil {
		return p, err
	}
	p.StepSamples, err = durationSamples(p.StepSeconds, p.SampleRate, "window step", &p.Warnings)
	if err != nil {
		return p, err
	}

	if signalLen < p.WindowSamples {
		return p, fmt.Errorf("%w: %d samples, window needs %d",
			ErrSignalTooShort, signalLen, p.WindowSamples)
	}

	if cfg.MinNFFT < 0 {
		return p, fmt.Errorf("%w: minimum transform length must be >= 0: %d", ErrConfig, cfg.MinNFFT)
	}
	p.NFFT = nextPowerOfTwo(max(p.WindowSamples, cfg.MinNFFT))

	return p, nil
}

// durationSamples converts a duration in seconds to a sample count, warning
// when the product is not integral and must be rounded. Midpoints round to
// even, the same convention segment timestamps use.
func durationSamples(seconds, sampleRate float64, what string, warnings *[]string) (int, error) {
	exact := seconds * sampleRate
	n := int(math.RoundToEven(exact))
	if exact != math.Trunc(exact) {
		*warnings = append(*warnings, fmt.Sprintf(
			"%s %g s is not an integral sample count at %g Hz, rounded to %d samples",
			what, seconds, sampleRate, n))
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s %g s spans no samples at %g Hz", ErrConfig, what, seconds, sampleRate)
	}

	return n, nil
}

// nextPowerOfTwo returns the smallest power of two >= n, treating n < 1 as 1.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Flatten reduces a rowwise two-dimensional signal to the single dimension
// the spectrogram operates on. Exactly one dimension may be longer than one;
// a genuinely two-dimensional input returns ErrSignalShape.
func Flatten(rows [][]float64) ([]float64, error) {
	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("%w: empty input", ErrSignalShape)
	case 1:
		return rows[0], nil
	}
	flat := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("%w: got %d rows of length %d", ErrSignalShape, len(rows), len(row))
		}
		flat[i] = row[0]
	}

	return flat, nil
}

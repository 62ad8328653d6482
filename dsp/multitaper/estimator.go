package multitaper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectral/dsp/taper"
)

// segmentEstimator turns one window of samples into one spectral column.
// It owns its transform and scratch buffers, so each worker gets its own
// instance; estimate itself never mutates the input signal.
type segmentEstimator struct {
	tapers  taper.Set
	grid    frequencyGrid
	xform   Transform
	det     *detrender
	comb    *combiner
	adapt   bool
	samples int

	// scratch, reused across segments
	seg     []float64     // detrended copy of the segment
	tapered []float64     // segment * taper k
	in      []complex128  // zero-padded transform input
	out     []complex128  // transform output
	re, im  []float64     // unpacked spectrum parts
	power   [][]float64   // per-taper power spectra, count x nfft
}

func newSegmentEstimator(p Params, set taper.Set, grid frequencyGrid, factory TransformFactory) (*segmentEstimator, error) {
	xform, err := factory(p.NFFT)
	if err != nil {
		return nil, err
	}
	if xform.Length() != p.NFFT {
		return nil, fmt.Errorf("%w: transform length %d, want %d", ErrConfig, xform.Length(), p.NFFT)
	}

	e := &segmentEstimator{
		tapers:  set,
		grid:    grid,
		xform:   xform,
		det:     newDetrender(p.Detrend, p.WindowSamples),
		comb:    &combiner{weighting: p.Weighting, ratios: set.Ratios},
		adapt:   p.Weighting == WeightAdapt,
		samples: p.WindowSamples,
		seg:     make([]float64, p.WindowSamples),
		tapered: make([]float64, p.WindowSamples),
		in:      make([]complex128, p.NFFT),
		out:     make([]complex128, p.NFFT),
		re:      make([]float64, p.NFFT),
		im:      make([]float64, p.NFFT),
		power:   make([][]float64, set.Count()),
	}
	for k := range e.power {
		e.power[k] = make([]float64, p.NFFT)
	}

	return e, nil
}

// estimate computes the combined power spectrum of one segment at the
// selected bins. A silent segment yields all zeros and a segment with
// non-finite samples yields all NaN, keeping one bad window from bleeding
// into its neighbors.
func (e *segmentEstimator) estimate(segment []float64) ([]float64, error) {
	if len(segment) != e.samples {
		return nil, fmt.Errorf("%w: segment length %d, want %d", ErrSignalShape, len(segment), e.samples)
	}
	column := make([]float64, len(e.grid.bins))

	silent := true
	for _, v := range segment {
		if v != 0 {
			silent = false
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			for i := range column {
				column[i] = math.NaN()
			}

			return column, nil
		}
	}
	if silent {
		return column, nil
	}

	copy(e.seg, segment)
	e.det.apply(e.seg)

	var tpower float64
	if e.adapt {
		tpower = floats.Dot(e.seg, e.seg) / float64(len(e.seg))
	}

	for k := 0; k < e.tapers.Count(); k++ {
		vecmath.MulBlock(e.tapered, e.seg, e.tapers.Tapers[k])
		for i, v := range e.tapered {
			e.in[i] = complex(v, 0)
		}
		if err := e.xform.Forward(e.out, e.in); err != nil {
			return nil, fmt.Errorf("multitaper: forward transform failed: %w", err)
		}
		for i, c := range e.out {
			e.re[i] = real(c)
			e.im[i] = imag(c)
		}
		vecmath.Power(e.power[k], e.re, e.im)
	}

	e.comb.combine(column, e.power, e.grid.bins, tpower)

	return column, nil
}

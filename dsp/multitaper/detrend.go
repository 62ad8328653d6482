package multitaper

import "gonum.org/v1/gonum/stat"

// detrender removes a fitted trend from fixed-length segments in place.
type detrender struct {
	mode DetrendMode
	// xs is the sample index axis 0..n-1 shared by every linear fit.
	xs []float64
}

func newDetrender(mode DetrendMode, length int) *detrender {
	d := &detrender{mode: mode}
	if mode == DetrendLinear {
		d.xs = make([]float64, length)
		for i := range d.xs {
			d.xs[i] = float64(i)
		}
	}

	return d
}

func (d *detrender) apply(seg []float64) {
	switch d.mode {
	case DetrendLinear:
		alpha, beta := stat.LinearRegression(d.xs, seg, nil, false)
		for i := range seg {
			seg[i] -= alpha + beta*d.xs[i]
		}
	case DetrendConstant:
		mean := stat.Mean(seg, nil)
		for i := range seg {
			seg[i] -= mean
		}
	}
}

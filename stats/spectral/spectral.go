// Package spectral provides summary statistics over spectrogram matrices:
// decibel conversion, robust outlier masking, dynamic-range limits for
// display, and per-segment peak tracking.
package spectral

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrShape reports a matrix whose dimensions do not match its axes.
var ErrShape = errors.New("spectral: matrix shape does not match axes")

// madScale converts a median absolute deviation to a consistent estimate
// of the standard deviation under normality, 1/Phi^-1(3/4).
const madScale = 1.4826

// ToDB converts a linear power value to decibels. Non-positive and
// non-finite powers have no decibel representation and map to NaN, so
// silent cells drop out of downstream statistics instead of skewing them.
func ToDB(power float64) float64 {
	if power <= 0 || math.IsNaN(power) || math.IsInf(power, 0) {
		return math.NaN()
	}

	return 10 * math.Log10(power)
}

// MatrixToDB applies ToDB cell by cell, returning a new matrix of the same
// shape.
func MatrixToDB(power [][]float64) [][]float64 {
	out := make([][]float64, len(power))
	for i, row := range power {
		dst := make([]float64, len(row))
		for j, v := range row {
			dst[j] = ToDB(v)
		}
		out[i] = dst
	}

	return out
}

// Outliers flags values more than three scaled median absolute deviations
// away from the median. Non-finite values are always flagged. The returned
// mask has one entry per input value.
func Outliers(values []float64) []bool {
	mask := make([]bool, len(values))

	finite := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			mask[i] = true

			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return mask
	}

	sort.Float64s(finite)
	median := stat.Quantile(0.5, stat.LinInterp, finite, nil)

	dev := make([]float64, len(finite))
	for i, v := range finite {
		dev[i] = math.Abs(v - median)
	}
	sort.Float64s(dev)
	mad := stat.Quantile(0.5, stat.LinInterp, dev, nil)

	limit := 3 * madScale * mad
	for i, v := range values {
		if mask[i] {
			continue
		}
		if math.Abs(v-median) > limit {
			mask[i] = true
		}
	}

	return mask
}

// Summary describes the dynamic range of a spectrogram in decibels.
type Summary struct {
	Bins     int
	Segments int

	// Finite counts the cells with a decibel representation; Outliers
	// counts how many of those the robust mask rejected.
	Finite   int
	Outliers int

	// LimLow and LimHigh are the 5th and 98th percentiles of the inlier
	// cells, the conventional color limits for rendering.
	LimLow  float64
	LimHigh float64

	// MedianDB is the median of the inlier cells.
	MedianDB float64

	// PeakDB is the largest finite cell, at PeakFreq Hz and PeakTime s.
	PeakDB   float64
	PeakFreq float64
	PeakTime float64
}

// Summarize converts a frequency-major power matrix to decibels and
// condenses it: robust display limits, median level, and the location of
// the global peak. Cells without a decibel representation are skipped; a
// matrix with no such cells yields a Summary whose levels are all NaN.
func Summarize(power [][]float64, freqs, times []float64) (Summary, error) {
	if len(power) != len(freqs) {
		return Summary{}, fmt.Errorf("%w: %d rows, %d frequencies", ErrShape, len(power), len(freqs))
	}

	s := Summary{
		Bins:     len(freqs),
		Segments: len(times),
		LimLow:   math.NaN(),
		LimHigh:  math.NaN(),
		MedianDB: math.NaN(),
		PeakDB:   math.NaN(),
		PeakFreq: math.NaN(),
		PeakTime: math.NaN(),
	}

	cells := make([]float64, 0, len(freqs)*len(times))
	for fi, row := range power {
		if len(row) != len(times) {
			return Summary{}, fmt.Errorf("%w: row %d has %d cells, %d timestamps",
				ErrShape, fi, len(row), len(times))
		}
		for ti, v := range row {
			db := ToDB(v)
			if math.IsNaN(db) {
				continue
			}
			cells = append(cells, db)
			if math.IsNaN(s.PeakDB) || db > s.PeakDB {
				s.PeakDB = db
				s.PeakFreq = freqs[fi]
				s.PeakTime = times[ti]
			}
		}
	}
	s.Finite = len(cells)
	if len(cells) == 0 {
		return s, nil
	}

	mask := Outliers(cells)
	inliers := make([]float64, 0, len(cells))
	for i, v := range cells {
		if mask[i] {
			s.Outliers++

			continue
		}
		inliers = append(inliers, v)
	}
	if len(inliers) == 0 {
		return s, nil
	}

	sort.Float64s(inliers)
	s.LimLow = stat.Quantile(0.05, stat.LinInterp, inliers, nil)
	s.LimHigh = stat.Quantile(0.98, stat.LinInterp, inliers, nil)
	s.MedianDB = stat.Quantile(0.5, stat.LinInterp, inliers, nil)

	return s, nil
}

// ColumnPeaks returns the frequency of the strongest bin in every segment
// column of a frequency-major power matrix. Columns without any finite
// power yield NaN.
func ColumnPeaks(power [][]float64, freqs []float64) ([]float64, error) {
	if len(power) != len(freqs) {
		return nil, fmt.Errorf("%w: %d rows, %d frequencies", ErrShape, len(power), len(freqs))
	}
	if len(power) == 0 {
		return nil, nil
	}

	segments := len(power[0])
	for fi, row := range power {
		if len(row) != segments {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrShape, fi, len(row), segments)
		}
	}

	peaks := make([]float64, segments)
	for ti := range peaks {
		best := math.Inf(-1)
		peaks[ti] = math.NaN()
		for fi, row := range power {
			v := row[ti]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v > best {
				best = v
				peaks[ti] = freqs[fi]
			}
		}
	}

	return peaks, nil
}

package spectral

import (
	"errors"
	"math"
	"testing"
)

func TestToDB(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"unit power", 1, 0},
		{"power of ten", 10, 10},
		{"fraction", 0.001, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDB(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("ToDB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ToDB(bad); !math.IsNaN(got) {
			t.Errorf("ToDB(%v) = %v, want NaN", bad, got)
		}
	}
}

func TestMatrixToDB(t *testing.T) {
	got := MatrixToDB([][]float64{{1, 100}, {0, 10}})

	if got[0][0] != 0 || math.Abs(got[0][1]-20) > 1e-12 {
		t.Errorf("row 0 = %v, want [0 20]", got[0])
	}
	if !math.IsNaN(got[1][0]) {
		t.Errorf("got[1][0] = %v, want NaN", got[1][0])
	}
	if math.Abs(got[1][1]-10) > 1e-12 {
		t.Errorf("got[1][1] = %v, want 10", got[1][1])
	}
}

func TestOutliersFlagsSpike(t *testing.T) {
	values := []float64{10, 10.5, 9.5, 10.2, 9.8, 10.1, 9.9, 500}

	mask := Outliers(values)

	if !mask[len(mask)-1] {
		t.Error("spike not flagged")
	}
	for i := 0; i < len(mask)-1; i++ {
		if mask[i] {
			t.Errorf("values[%d] = %v flagged, want inlier", i, values[i])
		}
	}
}

func TestOutliersFlagsNonFinite(t *testing.T) {
	values := []float64{1, 2, math.NaN(), 3, math.Inf(1), 2.5}

	mask := Outliers(values)

	want := []bool{false, false, true, false, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("mask = %v, want %v", mask, want)
		}
	}
}

func TestOutliersAllNonFinite(t *testing.T) {
	mask := Outliers([]float64{math.NaN(), math.Inf(-1)})
	if !mask[0] || !mask[1] {
		t.Fatalf("mask = %v, want all true", mask)
	}
}

func TestSummarize(t *testing.T) {
	// Two bins, three segments. All powers are decades, so the dB values
	// are exact.
	power := [][]float64{
		{1, 10, 100},
		{0.1, 1, 10},
	}
	freqs := []float64{5, 10}
	times := []float64{0.5, 1.5, 2.5}

	s, err := Summarize(power, freqs, times)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if s.Bins != 2 || s.Segments != 3 {
		t.Errorf("dims = %dx%d, want 2x3", s.Bins, s.Segments)
	}
	if s.Finite != 6 {
		t.Errorf("Finite = %d, want 6", s.Finite)
	}
	if s.Outliers != 0 {
		t.Errorf("Outliers = %d, want 0", s.Outliers)
	}
	if s.PeakDB != 20 {
		t.Errorf("PeakDB = %v, want 20", s.PeakDB)
	}
	if s.PeakFreq != 5 || s.PeakTime != 2.5 {
		t.Errorf("peak at (%v Hz, %v s), want (5, 2.5)", s.PeakFreq, s.PeakTime)
	}
	if s.LimLow >= s.LimHigh {
		t.Errorf("limits = [%v, %v], want increasing", s.LimLow, s.LimHigh)
	}
	if s.MedianDB < -10 || s.MedianDB > 20 {
		t.Errorf("MedianDB = %v, want within data range", s.MedianDB)
	}
}

func TestSummarizeSilentMatrix(t *testing.T) {
	power := [][]float64{{0, 0}, {0, 0}}

	s, err := Summarize(power, []float64{1, 2}, []float64{0, 1})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if s.Finite != 0 {
		t.Errorf("Finite = %d, want 0", s.Finite)
	}
	if !math.IsNaN(s.LimLow) || !math.IsNaN(s.LimHigh) || !math.IsNaN(s.PeakDB) {
		t.Errorf("limits = [%v, %v], peak = %v, want NaN", s.LimLow, s.LimHigh, s.PeakDB)
	}
}

func TestSummarizeShapeMismatch(t *testing.T) {
	power := [][]float64{{1, 2}, {3, 4}}

	if _, err := Summarize(power, []float64{1}, []float64{0, 1}); !errors.Is(err, ErrShape) {
		t.Fatalf("row mismatch error = %v, want ErrShape", err)
	}
	if _, err := Summarize(power, []float64{1, 2}, []float64{0}); !errors.Is(err, ErrShape) {
		t.Fatalf("column mismatch error = %v, want ErrShape", err)
	}
}

func TestColumnPeaks(t *testing.T) {
	power := [][]float64{
		{9, 1, math.NaN()},
		{2, 8, math.NaN()},
		{1, 3, math.NaN()},
	}
	freqs := []float64{10, 20, 30}

	peaks, err := ColumnPeaks(power, freqs)
	if err != nil {
		t.Fatalf("ColumnPeaks error: %v", err)
	}

	if peaks[0] != 10 {
		t.Errorf("peaks[0] = %v, want 10", peaks[0])
	}
	if peaks[1] != 20 {
		t.Errorf("peaks[1] = %v, want 20", peaks[1])
	}
	if !math.IsNaN(peaks[2]) {
		t.Errorf("peaks[2] = %v, want NaN", peaks[2])
	}
}

func TestColumnPeaksShapeMismatch(t *testing.T) {
	power := [][]float64{{1, 2}, {3}}

	if _, err := ColumnPeaks(power, []float64{1, 2}); !errors.Is(err, ErrShape) {
		t.Fatalf("ragged matrix error = %v, want ErrShape", err)
	}
	if _, err := ColumnPeaks(power, []float64{1}); !errors.Is(err, ErrShape) {
		t.Fatalf("axis mismatch error = %v, want ErrShape", err)
	}
}

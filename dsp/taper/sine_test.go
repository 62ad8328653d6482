package taper

import (
	"errors"
	"math"
	"testing"
)

func TestSineSourceShape(t *testing.T) {
	set, err := SineSource{}.Tapers(256, 4, 7)
	if err != nil {
		t.Fatalf("Tapers: %v", err)
	}

	if set.Count() != 7 {
		t.Fatalf("count=%d, want 7", set.Count())
	}

	if set.Length() != 256 {
		t.Fatalf("length=%d, want 256", set.Length())
	}

	if err := set.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	for k, r := range set.Ratios {
		if r != 1 {
			t.Fatalf("ratio %d = %v, want 1", k, r)
		}
	}
}

func TestSineSourceOrthonormal(t *testing.T) {
	set, err := SineSource{}.Tapers(128, 3, 5)
	if err != nil {
		t.Fatalf("Tapers: %v", err)
	}

	for j := range set.Tapers {
		for k := range set.Tapers {
			dot := 0.0
			for n := range set.Tapers[j] {
				dot += set.Tapers[j][n] * set.Tapers[k][n]
			}

			want := 0.0
			if j == k {
				want = 1.0
			}

			if math.Abs(dot-want) > 1e-12 {
				t.Fatalf("dot(v%d, v%d) = %v, want %v", j, k, dot, want)
			}
		}
	}
}

func TestSineSourceSymmetry(t *testing.T) {
	set, err := SineSource{}.Tapers(65, 3, 2)
	if err != nil {
		t.Fatalf("Tapers: %v", err)
	}

	n := set.Length()

	// The first taper is symmetric, the second antisymmetric.
	for i := 0; i < n/2; i++ {
		if math.Abs(set.Tapers[0][i]-set.Tapers[0][n-1-i]) > 1e-12 {
			t.Fatalf("taper 0 not symmetric at %d", i)
		}

		if math.Abs(set.Tapers[1][i]+set.Tapers[1][n-1-i]) > 1e-12 {
			t.Fatalf("taper 1 not antisymmetric at %d", i)
		}
	}
}

func TestSineSourceFirstTaperPositive(t *testing.T) {
	set, err := SineSource{}.Tapers(32, 3, 1)
	if err != nil {
		t.Fatalf("Tapers: %v", err)
	}

	for i, v := range set.Tapers[0] {
		if v <= 0 {
			t.Fatalf("taper 0 sample %d = %v, want > 0", i, v)
		}
	}
}

func TestSineSourceValidation(t *testing.T) {
	if _, err := (SineSource{}).Tapers(0, 3, 2); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("zero length: got %v, want ErrInvalidLength", err)
	}

	if _, err := (SineSource{}).Tapers(16, 3, 0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("zero count: got %v, want ErrInvalidCount", err)
	}

	if _, err := (SineSource{}).Tapers(4, 3, 5); !errors.Is(err, ErrCountTooLarge) {
		t.Fatalf("oversized count: got %v, want ErrCountTooLarge", err)
	}
}

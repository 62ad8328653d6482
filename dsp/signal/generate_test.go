package signal

import (
	"math"
	"testing"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineQuarterPeriod(t *testing.T) {
	g := NewGenerator(WithSampleRate(1000))
	s, err := g.Sine(250, 1, 5)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	want := []float64{0, 1, 0, -1, 0}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("s[%d]=%v, want %v", i, s[i], want[i])
		}
	}
}

func TestMultisineSumsComponents(t *testing.T) {
	g := NewGenerator(WithSampleRate(48000))
	out, err := g.Multisine([]float64{1000, 2000}, 1, 64)
	if err != nil {
		t.Fatalf("Multisine() error = %v", err)
	}
	if len(out) != 64 {
		t.Fatalf("len = %d, want 64", len(out))
	}

	a, _ := g.Sine(1000, 1, 64)
	b, _ := g.Sine(2000, 1, 64)
	for i := range out {
		if math.Abs(out[i]-(a[i]+b[i])) > 1e-12 {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], a[i]+b[i])
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestValidation(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected sample count validation error")
	}
	if _, err := g.Multisine(nil, 1, 8); err == nil {
		t.Fatal("expected empty frequency list error")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected amplitude validation error")
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected empty input error")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected target peak validation error")
	}
}

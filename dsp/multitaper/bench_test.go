package multitaper

import (
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func BenchmarkCompute(b *testing.B) {
	sig := signal.NewGenerator(signal.WithSampleRate(200), signal.WithSeed(3))
	noise, err := sig.WhiteNoise(1, 200*30)
	if err != nil {
		b.Fatalf("WhiteNoise error: %v", err)
	}

	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			cfg := Config{
				SampleRate:    200,
				TimeBandwidth: 3,
				WindowSeconds: 1,
				StepSeconds:   0.25,
				Parallel:      parallel,
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Compute(noise, cfg); err != nil {
					b.Fatalf("Compute error: %v", err)
				}
			}
		})
	}
}

func BenchmarkComputeWeighting(b *testing.B) {
	sig := signal.NewGenerator(signal.WithSampleRate(200), signal.WithSeed(3))
	noise, err := sig.WhiteNoise(1, 200*30)
	if err != nil {
		b.Fatalf("WhiteNoise error: %v", err)
	}

	for _, w := range []Weighting{WeightUnity, WeightEigen, WeightAdapt} {
		b.Run(w.String(), func(b *testing.B) {
			cfg := Config{
				SampleRate:    200,
				TimeBandwidth: 3,
				WindowSeconds: 1,
				StepSeconds:   0.25,
				Weighting:     w,
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Compute(noise, cfg); err != nil {
					b.Fatalf("Compute error: %v", err)
				}
			}
		})
	}
}

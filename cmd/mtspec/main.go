// Command mtspec computes the multitaper spectrogram of a synthesized test
// signal and prints the resolved analysis properties and summary statistics.
//
// Usage:
//
//	mtspec [flags]
//
// Examples:
//
//	mtspec
//	mtspec -signal sweep -from 1 -to 25 -fs 200 -tw 3 -win 4 -step 1
//	mtspec -signal sine -freq 10 -weighting adapt
//	mtspec -signal noise -seed 7 -parallel -peaks
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/multitaper"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/stats/spectral"
)

func main() {
	fs := flag.Float64("fs", 200, "sample rate in Hz")
	duration := flag.Float64("duration", 60, "signal length in seconds")
	kind := flag.String("signal", "sweep", "test signal: sweep, sine, or noise")
	freq := flag.Float64("freq", 10, "sine frequency in Hz")
	from := flag.Float64("from", 1, "sweep start frequency in Hz")
	to := flag.Float64("to", 25, "sweep end frequency in Hz")
	seed := flag.Int64("seed", 1, "noise generator seed")
	lo := flag.Float64("lo", 0, "lower analysis frequency in Hz")
	hi := flag.Float64("hi", 0, "upper analysis frequency in Hz (0 selects Nyquist)")
	tw := flag.Float64("tw", 5, "time-half-bandwidth product")
	tapers := flag.Int("tapers", 0, "taper count (0 derives floor(2*tw)-1)")
	win := flag.Float64("win", 5, "window length in seconds")
	step := flag.Float64("step", 1, "window step in seconds")
	minNFFT := flag.Int("min-nfft", 0, "minimum transform length")
	detrend := flag.String("detrend", "linear", "detrend mode: linear, constant, off")
	weighting := flag.String("weighting", "unity", "taper weighting: unity, eigen, adapt")
	parallel := flag.Bool("parallel", false, "estimate segments on a worker pool")
	workers := flag.Int("workers", 0, "worker count (0 selects CPUs-1)")
	peaks := flag.Bool("peaks", false, "print the per-segment peak frequency table")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mtspec [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes a multitaper spectrogram of a synthesized test signal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mtspec -signal sweep -from 1 -to 25 -fs 200 -tw 3 -win 4 -step 1\n")
		fmt.Fprintf(os.Stderr, "  mtspec -signal sine -freq 10 -weighting adapt\n")
		fmt.Fprintf(os.Stderr, "  mtspec -signal noise -seed 7 -parallel -peaks\n")
	}
	flag.Parse()

	detrendMode, err := multitaper.ParseDetrendMode(*detrend)
	if err != nil {
		fatalf("%v", err)
	}
	weightMode, err := multitaper.ParseWeighting(*weighting)
	if err != nil {
		fatalf("%v", err)
	}

	samples, err := buildSignal(*kind, *fs, *duration, *freq, *from, *to, *seed)
	if err != nil {
		fatalf("%v", err)
	}

	if *hi == 0 {
		*hi = *fs / 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	res, err := multitaper.Compute(samples, multitaper.Config{
		SampleRate:     *fs,
		RangeLowerFreq: *lo,
		RangeUpperFreq: *hi,
		TimeBandwidth:  *tw,
		TaperCount:     *tapers,
		WindowSeconds:  *win,
		StepSeconds:    *step,
		MinNFFT:        *minNFFT,
		Detrend:        detrendMode,
		Weighting:      weightMode,
		Parallel:       *parallel,
		Workers:        *workers,
		Logger:         logger,
	})
	if err != nil {
		fatalf("%v", err)
	}

	printProperties(res, len(samples))
	if err := printSummary(res); err != nil {
		fatalf("%v", err)
	}
	if *peaks {
		if err := printPeaks(res); err != nil {
			fatalf("%v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func buildSignal(kind string, fs, duration, freq, from, to float64, seed int64) ([]float64, error) {
	n := int(math.Round(duration * fs))
	gen := signal.NewGenerator(signal.WithSampleRate(fs), signal.WithSeed(seed))

	switch kind {
	case "sweep":
		return gen.LogSweep(from, to, 1, n)
	case "sine":
		return gen.Sine(freq, 1, n)
	case "noise":
		return gen.WhiteNoise(1, n)
	default:
		return nil, fmt.Errorf("unknown signal %q (use sweep, sine, or noise)", kind)
	}
}

func printProperties(res *multitaper.Result, samples int) {
	p := res.Params
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Property\tValue\n")
	fmt.Fprintf(tw, "--------\t-----\n")
	fmt.Fprintf(tw, "Samples\t%d @ %g Hz\n", samples, p.SampleRate)
	fmt.Fprintf(tw, "Spectral resolution\t%.4g Hz\n", p.SpectralResolution())
	fmt.Fprintf(tw, "Window\t%g s (%d samples)\n", p.WindowSeconds, p.WindowSamples)
	fmt.Fprintf(tw, "Step\t%g s (%d samples)\n", p.StepSeconds, p.StepSamples)
	fmt.Fprintf(tw, "Time-bandwidth\t%g\n", p.TimeBandwidth)
	fmt.Fprintf(tw, "Tapers\t%d\n", p.TaperCount)
	fmt.Fprintf(tw, "Range\t%g-%g Hz\n", p.RangeLowerFreq, p.RangeUpperFreq)
	fmt.Fprintf(tw, "Transform length\t%d\n", p.NFFT)
	fmt.Fprintf(tw, "Detrend\t%s\n", p.Detrend)
	fmt.Fprintf(tw, "Weighting\t%s\n", p.Weighting)
	fmt.Fprintf(tw, "Segments\t%d\n", len(res.Times))
	fmt.Fprintf(tw, "Bins\t%d\n", len(res.Freqs))
	fmt.Fprintf(tw, "Elapsed\t%s\n", res.Elapsed)
	if err := tw.Flush(); err != nil {
		fatalf("failed to flush output: %v", err)
	}

	for _, w := range p.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if res.AllZero {
		fmt.Println("spectrogram is all zeros")
	}
}

func printSummary(res *multitaper.Result) error {
	s, err := spectral.Summarize(res.Power, res.Freqs, res.Times)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nSummary\tValue\n")
	fmt.Fprintf(tw, "-------\t-----\n")
	fmt.Fprintf(tw, "Finite cells\t%d of %d\n", s.Finite, s.Bins*s.Segments)
	fmt.Fprintf(tw, "Outliers\t%d\n", s.Outliers)
	fmt.Fprintf(tw, "Peak\t%.2f dB at %.3g Hz, %.3g s\n", s.PeakDB, s.PeakFreq, s.PeakTime)
	fmt.Fprintf(tw, "Median\t%.2f dB\n", s.MedianDB)
	fmt.Fprintf(tw, "Display limits\t%.2f to %.2f dB\n", s.LimLow, s.LimHigh)

	return tw.Flush()
}

func printPeaks(res *multitaper.Result) error {
	ridge, err := spectral.ColumnPeaks(res.Power, res.Freqs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nTime [s]\tPeak [Hz]\n")
	fmt.Fprintf(tw, "--------\t---------\n")
	for i, f := range ridge {
		fmt.Fprintf(tw, "%.3f\t%.4g\n", res.Times[i], f)
	}

	return tw.Flush()
}

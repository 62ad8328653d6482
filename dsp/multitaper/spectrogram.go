package multitaper

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/cwbudde/algo-spectral/dsp/taper"
)

// Result is a computed multitaper spectrogram.
type Result struct {
	// Freqs is the analyzed frequency axis in Hz, ascending.
	Freqs []float64

	// Times holds the center timestamp of each segment in seconds.
	Times []float64

	// Power is the spectrogram as power spectral density, Power[i][j] at
	// Freqs[i] and Times[j]. With Config.TimeMajor the axes swap, so rows
	// are segments.
	Power [][]float64

	// Params are the fully resolved parameters the spectrogram was
	// computed with, including any warnings raised while resolving.
	Params Params

	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration

	// AllZero reports that every spectrogram value is zero, which usually
	// means the input itself was silent.
	AllZero bool
}

// Compute calculates the multitaper spectrogram of samples under cfg. The
// signal is split into overlapping segments, each segment is detrended,
// tapered, and transformed, the per-taper spectra are combined according to
// the weighting policy, and the columns are assembled into a one-sided
// power spectral density matrix.
//
// Segments are independent, so with cfg.Parallel they are distributed over
// a worker pool; the result is bit-identical to a sequential run.
func Compute(samples []float64, cfg Config) (*Result, error) {
	start := time.Now()

	p, err := resolveParams(cfg, len(samples))
	if err != nil {
		return nil, err
	}

	starts := segmentStarts(len(samples), p.WindowSamples, p.StepSamples)
	grid := selectFrequencies(p.NFFT, p.SampleRate, p.RangeLowerFreq, p.RangeUpperFreq)

	log := cfg.Logger
	if log != nil {
		log = log.With("component", "multitaper")
		for _, w := range p.Warnings {
			log.Warn(w)
		}
		log.Info("resolved spectrogram parameters",
			"resolution_hz", p.SpectralResolution(),
			"window_s", p.WindowSeconds,
			"step_s", p.StepSeconds,
			"time_bandwidth", p.TimeBandwidth,
			"tapers", p.TaperCount,
			"range_lo_hz", p.RangeLowerFreq,
			"range_hi_hz", p.RangeUpperFreq,
			"nfft", p.NFFT,
			"detrend", p.Detrend.String(),
			"weighting", p.Weighting.String(),
			"segments", len(starts),
		)
	}

	set, err := resolveTapers(cfg.Tapers, p)
	if err != nil {
		return nil, err
	}
	factory := cfg.Transform
	if factory == nil {
		factory = NewFFTTransform
	}

	columns, err := computeColumns(samples, starts, p, set, grid, factory, workerCount(cfg, len(starts)))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Freqs:   grid.freqs,
		Times:   segmentTimes(starts, p.WindowSamples, p.SampleRate),
		Params:  p,
		AllZero: allZero(columns),
	}
	res.Power = aggregate(columns, grid, p.SampleRate, cfg.TimeMajor)
	res.Elapsed = time.Since(start)

	if log != nil {
		if res.AllZero {
			log.Info("spectrogram is all zeros")
		}
		log.Debug("spectrogram computed",
			"segments", len(starts), "bins", len(grid.freqs), "elapsed", res.Elapsed)
	}

	return res, nil
}

// resolveTapers obtains the taper set from the configured source, or sine
// tapers by default, and checks it against the resolved parameters.
func resolveTapers(src taper.Source, p Params) (taper.Set, error) {
	if src == nil {
		src = taper.SineSource{}
	}
	set, err := src.Tapers(p.WindowSamples, p.TimeBandwidth, p.TaperCount)
	if err != nil {
		return taper.Set{}, fmt.Errorf("%w: taper source failed: %v", ErrConfig, err)
	}
	if err := set.Validate(); err != nil {
		return taper.Set{}, fmt.Errorf("%w: taper source returned an invalid set: %v", ErrConfig, err)
	}
	if set.Length() != p.WindowSamples || set.Count() != p.TaperCount {
		return taper.Set{}, fmt.Errorf("%w: taper source returned %dx%d, want %dx%d",
			ErrConfig, set.Count(), set.Length(), p.TaperCount, p.WindowSamples)
	}

	return set, nil
}

// workerCount resolves the pool size: 1 when parallelism is off, otherwise
// the configured count or CPUs-1, capped at the number of segments.
func workerCount(cfg Config, segments int) int {
	if !cfg.Parallel {
		return 1
	}
	n := cfg.Workers
	if n <= 0 {
		n = runtime.NumCPU() - 1
	}
	if n < 1 {
		n = 1
	}
	if n > segments {
		n = segments
	}

	return n
}

// computeColumns estimates every segment, sequentially or on a pool of
// workers. Column order follows segment order regardless of worker count:
// each worker writes only the slots of the jobs it drew.
func computeColumns(samples []float64, starts []int, p Params, set taper.Set,
	grid frequencyGrid, factory TransformFactory, workers int,
) ([][]float64, error) {
	columns := make([][]float64, len(starts))

	if workers <= 1 {
		est, err := newSegmentEstimator(p, set, grid, factory)
		if err != nil {
			return nil, err
		}
		for i, s := range starts {
			columns[i], err = est.estimate(samples[s : s+p.WindowSamples])
			if err != nil {
				return nil, err
			}
		}

		return columns, nil
	}

	ests := make([]*segmentEstimator, workers)
	for w := range ests {
		est, err := newSegmentEstimator(p, set, grid, factory)
		if err != nil {
			return nil, err
		}
		ests[w] = est
	}

	jobs := make(chan int, len(starts))
	for i := range starts {
		jobs <- i
	}
	close(jobs)

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			est := ests[w]
			for i := range jobs {
				s := starts[i]
				col, err := est.estimate(samples[s : s+p.WindowSamples])
				if err != nil {
					errs[w] = err

					return
				}
				columns[i] = col
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return columns, nil
}

// aggregate assembles per-segment columns into the output matrix, scaling
// to a one-sided density: every bin is divided by the sample rate and all
// bins except DC and Nyquist are doubled to fold in the negative
// frequencies.
func aggregate(columns [][]float64, grid frequencyGrid, sampleRate float64, timeMajor bool) [][]float64 {
	scale := make([]float64, len(grid.bins))
	for i := range scale {
		scale[i] = 2 / sampleRate
	}
	if grid.dc >= 0 {
		scale[grid.dc] = 1 / sampleRate
	}
	if grid.nyquist >= 0 {
		scale[grid.nyquist] = 1 / sampleRate
	}

	if timeMajor {
		for _, col := range columns {
			for i := range col {
				col[i] *= scale[i]
			}
		}

		return columns
	}

	out := make([][]float64, len(grid.bins))
	for f := range out {
		row := make([]float64, len(columns))
		for t, col := range columns {
			row[t] = col[f] * scale[f]
		}
		out[f] = row
	}

	return out
}

func allZero(columns [][]float64) bool {
	for _, col := range columns {
		for _, v := range col {
			if v != 0 {
				return false
			}
		}
	}

	return true
}

package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/multitaper"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/stats/spectral"
)

// AnalysisParams are the user-tunable spectrogram settings of the demo.
// Zero values select the library defaults; out-of-range window settings are
// clamped to keep the demo responsive.
type AnalysisParams struct {
	RangeLowerFreq float64
	RangeUpperFreq float64
	TimeBandwidth  float64
	TaperCount     int
	WindowSeconds  float64
	StepSeconds    float64
	Detrend        string
	Weighting      string
	Parallel       bool
}

// Frame is a computed spectrogram flattened for transfer to JavaScript:
// Bins rows of Segments decibel cells in row-major order, plus the display
// limits for the color scale.
type Frame struct {
	Freqs    []float64
	Times    []float64
	DB       []float64
	Bins     int
	Segments int
	LimLow   float64
	LimHigh  float64
}

// Engine runs the spectrogram demo pipeline in Go.
type Engine struct {
	sampleRate float64
	params     AnalysisParams
	detrend    multitaper.DetrendMode
	weighting  multitaper.Weighting
	gen        *signal.Generator
}

// NewEngine creates a demo engine for the given sample rate.
func NewEngine(sampleRate float64) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	e := &Engine{
		sampleRate: sampleRate,
		gen:        signal.NewGenerator(signal.WithSampleRate(sampleRate)),
	}
	if err := e.SetAnalysis(AnalysisParams{}); err != nil {
		return nil, err
	}

	return e, nil
}

// SetAnalysis updates the spectrogram settings used by Analyze.
func (e *Engine) SetAnalysis(p AnalysisParams) error {
	cfg := sanitizeAnalysisParams(p)

	detrend, err := multitaper.ParseDetrendMode(cfg.Detrend)
	if err != nil {
		return err
	}
	weighting, err := multitaper.ParseWeighting(cfg.Weighting)
	if err != nil {
		return err
	}

	e.params = cfg
	e.detrend = detrend
	e.weighting = weighting

	return nil
}

// Synthesize renders a demo input signal: a logarithmic sweep from 1 Hz up
// to freq, a sine at freq, or seeded white noise.
func (e *Engine) Synthesize(kind string, seconds, freq float64) ([]float64, error) {
	n := int(seconds * e.sampleRate)
	switch kind {
	case "sweep":
		return e.gen.LogSweep(1, freq, 1, n)
	case "sine":
		return e.gen.Sine(freq, 1, n)
	case "noise":
		return e.gen.WhiteNoise(1, n)
	default:
		return nil, fmt.Errorf("unknown demo signal: %s", kind)
	}
}

// Analyze computes the spectrogram of samples and flattens it for the
// JavaScript side.
func (e *Engine) Analyze(samples []float64) (*Frame, error) {
	res, err := multitaper.Compute(samples, multitaper.Config{
		SampleRate:     e.sampleRate,
		RangeLowerFreq: e.params.RangeLowerFreq,
		RangeUpperFreq: e.params.RangeUpperFreq,
		TimeBandwidth:  e.params.TimeBandwidth,
		TaperCount:     e.params.TaperCount,
		WindowSeconds:  e.params.WindowSeconds,
		StepSeconds:    e.params.StepSeconds,
		Detrend:        e.detrend,
		Weighting:      e.weighting,
		Parallel:       e.params.Parallel,
	})
	if err != nil {
		return nil, err
	}

	sum, err := spectral.Summarize(res.Power, res.Freqs, res.Times)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		Freqs:    res.Freqs,
		Times:    res.Times,
		Bins:     len(res.Freqs),
		Segments: len(res.Times),
		DB:       make([]float64, 0, len(res.Freqs)*len(res.Times)),
		LimLow:   sum.LimLow,
		LimHigh:  sum.LimHigh,
	}
	for _, row := range res.Power {
		for _, v := range row {
			frame.DB = append(frame.DB, spectral.ToDB(v))
		}
	}

	return frame, nil
}

func sanitizeAnalysisParams(p AnalysisParams) AnalysisParams {
	cfg := p
	if cfg.WindowSeconds != 0 {
		cfg.WindowSeconds = clamp(cfg.WindowSeconds, 0.25, 30)
	}
	if cfg.StepSeconds != 0 {
		upper := cfg.WindowSeconds
		if upper == 0 {
			upper = 5
		}
		cfg.StepSeconds = clamp(cfg.StepSeconds, 0.05, upper)
	}
	if cfg.TimeBandwidth != 0 {
		cfg.TimeBandwidth = clamp(cfg.TimeBandwidth, 1, 10)
	}
	if cfg.TaperCount < 0 {
		cfg.TaperCount = 0
	}

	return cfg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-spectral/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 200.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setAnalysis", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		err := engine.SetAnalysis(webdemo.AnalysisParams{
			RangeLowerFreq: floatField(p, "lo"),
			RangeUpperFreq: floatField(p, "hi"),
			TimeBandwidth:  floatField(p, "tw"),
			TaperCount:     intField(p, "tapers"),
			WindowSeconds:  floatField(p, "win"),
			StepSeconds:    floatField(p, "step"),
			Detrend:        stringField(p, "detrend"),
			Weighting:      stringField(p, "weighting"),
			Parallel:       boolField(p, "parallel"),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("synthesize", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Global().Get("Float64Array").New(0)
		}
		samples, err := engine.Synthesize(args[0].String(), args[1].Float(), args[2].Float())
		if err != nil {
			return err.Error()
		}
		return toFloat64Array(samples)
	}))

	api.Set("analyze", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		input := args[0]
		samples := make([]float64, input.Length())
		for i := 0; i < input.Length(); i++ {
			samples[i] = input.Index(i).Float()
		}
		frame, err := engine.Analyze(samples)
		if err != nil {
			return err.Error()
		}

		out := js.Global().Get("Object").New()
		out.Set("freqs", toFloat64Array(frame.Freqs))
		out.Set("times", toFloat64Array(frame.Times))
		out.Set("db", toFloat64Array(frame.DB))
		out.Set("bins", frame.Bins)
		out.Set("segments", frame.Segments)
		out.Set("limLow", frame.LimLow)
		out.Set("limHigh", frame.LimHigh)
		return out
	}))

	js.Global().Set("AlgoSpectralDemo", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func toFloat64Array(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func floatField(v js.Value, key string) float64 {
	f := v.Get(key)
	if f.Type() != js.TypeNumber {
		return 0
	}
	return f.Float()
}

func intField(v js.Value, key string) int {
	f := v.Get(key)
	if f.Type() != js.TypeNumber {
		return 0
	}
	return f.Int()
}

func stringField(v js.Value, key string) string {
	f := v.Get(key)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

func boolField(v js.Value, key string) bool {
	f := v.Get(key)
	if f.Type() != js.TypeBoolean {
		return false
	}
	return f.Bool()
}

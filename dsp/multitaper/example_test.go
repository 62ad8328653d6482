package multitaper_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/multitaper"
	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func ExampleCompute() {
	sig := signal.NewGenerator(signal.WithSampleRate(200))
	sweep, _ := sig.LogSweep(1, 25, 1, 200*30)

	res, err := multitaper.Compute(sweep, multitaper.Config{
		SampleRate:     200,
		RangeUpperFreq: 25,
		TimeBandwidth:  3,
		WindowSeconds:  4,
		StepSeconds:    1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bins x %d segments\n", len(res.Freqs), len(res.Times))
	fmt.Printf("first window centered at %v s\n", res.Times[0])
	// Output:
	// 129 bins x 27 segments
	// first window centered at 2 s
}

func ExampleFlatten() {
	flat, _ := multitaper.Flatten([][]float64{{1}, {2}, {3}})
	fmt.Println(flat)
	// Output: [1 2 3]
}

package multitaper

// frequencyGrid holds the analyzed subset of the transform's frequency axis.
type frequencyGrid struct {
	// freqs are the selected bin frequencies in Hz, ascending.
	freqs []float64
	// bins are the transform bin indexes behind freqs.
	bins []int
	// dc and nyquist index into freqs, -1 when the bin is outside the
	// selection. They mark the bins excluded from one-sided doubling.
	dc      int
	nyquist int
}

// selectFrequencies restricts the nfft-point transform axis to [lo, hi] Hz,
// inclusive on both ends. Bin i sits at i*sampleRate/nfft; only bins up to
// Nyquist are candidates.
func selectFrequencies(nfft int, sampleRate, lo, hi float64) frequencyGrid {
	grid := frequencyGrid{dc: -1, nyquist: -1}
	df := sampleRate / float64(nfft)
	for bin := 0; bin <= nfft/2; bin++ {
		f := float64(bin) * df
		if f < lo || f > hi {
			continue
		}
		if bin == 0 {
			grid.dc = len(grid.freqs)
		}
		if nfft%2 == 0 && bin == nfft/2 {
			grid.nyquist = len(grid.freqs)
		}
		grid.freqs = append(grid.freqs, f)
		grid.bins = append(grid.bins, bin)
	}

	return grid
}

package multitaper

// adaptIterations is the fixed number of refinement passes of the adaptive
// weighting loop, after Percival & Walden.
const adaptIterations = 3

// combiner folds the per-taper power spectra of one segment into a single
// estimate per selected bin.
type combiner struct {
	weighting Weighting
	ratios    []float64
}

// combine writes one value per selected bin into dst. power holds one
// full-length power spectrum per taper, bins maps dst positions to
// transform bins, and tpower is the mean squared amplitude of the
// detrended segment, used only by the adaptive policy.
func (c *combiner) combine(dst []float64, power [][]float64, bins []int, tpower float64) {
	count := float64(len(c.ratios))
	switch c.weighting {
	case WeightEigen:
		for i, bin := range bins {
			var sum float64
			for k, ratio := range c.ratios {
				sum += ratio * power[k][bin]
			}
			dst[i] = sum / count
		}
	case WeightAdapt:
		for i, bin := range bins {
			dst[i] = c.adaptBin(power, bin, tpower)
		}
	default:
		for i, bin := range bins {
			var sum float64
			for k := range c.ratios {
				sum += power[k][bin]
			}
			dst[i] = sum / count
		}
	}
}

// adaptBin runs the adaptive weight iteration for a single bin. The
// estimate is seeded with the mean power of the two most concentrated
// tapers and refined a fixed number of times: tapers whose leakage floor
// (1-ratio)*tpower dominates the current estimate are damped.
func (c *combiner) adaptBin(power [][]float64, bin int, tpower float64) float64 {
	s := power[0][bin]
	if len(c.ratios) > 1 {
		s = (power[0][bin] + power[1][bin]) / 2
	}
	for iter := 0; iter < adaptIterations; iter++ {
		var num, den float64
		for k, ratio := range c.ratios {
			b := s / (s*ratio + tpower*(1-ratio))
			w := b * b * ratio
			num += w * power[k][bin]
			den += w
		}
		s = num / den
	}

	return s
}

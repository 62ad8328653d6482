package taper

import "math"

// SineSource generates the sine-taper basis of Riedel and Sidorenko.
//
// The k-th taper of length N is
//
//	v_k[n] = sqrt(2/(N+1)) * sin(pi*(k+1)*(n+1)/(N+1))
//
// The basis is exactly orthonormal and its concentration ratios are close
// enough to unity that they are reported as 1, so eigenvalue and adaptive
// weighting reduce to a plain average over the tapers.
type SineSource struct{}

// Tapers returns count sine tapers of the given length. The timeBandwidth
// argument is ignored; the sine basis has no free parameter.
func (SineSource) Tapers(length int, _ float64, count int) (Set, error) {
	if length <= 0 {
		return Set{}, ErrInvalidLength
	}

	if count <= 0 {
		return Set{}, ErrInvalidCount
	}

	if count > length {
		return Set{}, ErrCountTooLarge
	}

	norm := math.Sqrt(2 / float64(length+1))
	step := math.Pi / float64(length+1)

	set := Set{
		Tapers: make([][]float64, count),
		Ratios: make([]float64, count),
	}

	for k := range set.Tapers {
		tp := make([]float64, length)
		for n := range tp {
			tp[n] = norm * math.Sin(step*float64(k+1)*float64(n+1))
		}

		set.Tapers[k] = tp
		set.Ratios[k] = 1
	}

	return set, nil
}

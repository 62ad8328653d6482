package taper

import "fmt"

// Set holds K data tapers and their concentration ratios.
//
// Tapers[k] is the k-th taper, all tapers share one length. Ratios[k] is the
// spectral concentration of Tapers[k] in [0,1]; sets are expected ordered by
// descending concentration.
type Set struct {
	Tapers [][]float64
	Ratios []float64
}

// Count returns the number of tapers in the set.
func (s Set) Count() int {
	return len(s.Tapers)
}

// Length returns the sample length shared by all tapers, or 0 for an empty set.
func (s Set) Length() int {
	if len(s.Tapers) == 0 {
		return 0
	}

	return len(s.Tapers[0])
}

// Validate checks the structural invariants of the set.
func (s Set) Validate() error {
	if len(s.Tapers) == 0 {
		return ErrEmptySet
	}

	n := len(s.Tapers[0])
	if n == 0 {
		return ErrInvalidLength
	}

	for k, tp := range s.Tapers {
		if len(tp) != n {
			return fmt.Errorf("%w: taper %d has length %d, want %d", ErrLengthMismatch, k, len(tp), n)
		}
	}

	if len(s.Ratios) != len(s.Tapers) {
		return fmt.Errorf("%w: %d ratios for %d tapers", ErrRatioCount, len(s.Ratios), len(s.Tapers))
	}

	for k, r := range s.Ratios {
		if r < 0 || r > 1 {
			return fmt.Errorf("%w: ratio %d is %v", ErrRatioRange, k, r)
		}
	}

	return nil
}

// Source produces taper sets for spectral estimation.
//
// Implementations return count tapers of the given sample length plus their
// concentration ratios. timeBandwidth is the time-bandwidth product the
// caller resolved; sources for parameter-free bases may ignore it.
type Source interface {
	Tapers(length int, timeBandwidth float64, count int) (Set, error)
}

// StaticSource serves one precomputed taper set, validating each request
// against the stored shape. Use it to feed externally generated tapers
// (e.g. DPSS) into an estimator.
type StaticSource struct {
	set Set
}

// NewStaticSource validates set and wraps it as a Source.
func NewStaticSource(set Set) (*StaticSource, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	return &StaticSource{set: set}, nil
}

// Set returns the wrapped taper set.
func (s *StaticSource) Set() Set {
	return s.set
}

// Tapers returns the stored set if it matches the requested length and count.
// timeBandwidth is ignored; the stored basis already encodes it.
func (s *StaticSource) Tapers(length int, _ float64, count int) (Set, error) {
	if length != s.set.Length() || count != s.set.Count() {
		return Set{}, fmt.Errorf("%w: have %dx%d, requested %dx%d",
			ErrSetMismatch, s.set.Count(), s.set.Length(), count, length)
	}

	return s.set, nil
}

package multitaper

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform computes unnormalized forward DFTs of one fixed length. dst and
// src always hold Length() values; implementations may transform in place
// when dst and src alias.
type Transform interface {
	Length() int
	Forward(dst, src []complex128) error
}

// TransformFactory builds a Transform for the given length. Compute calls
// the factory once per worker, so the returned Transform does not need to
// be safe for concurrent use.
type TransformFactory func(length int) (Transform, error)

// NewFFTTransform is the default TransformFactory, backed by an FFT plan.
// The spectrogram only requests power-of-two lengths.
func NewFFTTransform(length int) (Transform, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: transform length must be > 0: %d", ErrConfig, length)
	}
	plan, err := algofft.NewPlan64(length)
	if err != nil {
		return nil, fmt.Errorf("multitaper: failed to create FFT plan: %w", err)
	}

	return &fftTransform{plan: plan, length: length}, nil
}

type fftTransform struct {
	plan   *algofft.Plan[complex128]
	length int
}

func (t *fftTransform) Length() int { return t.length }

func (t *fftTransform) Forward(dst, src []complex128) error {
	return t.plan.Forward(dst, src)
}

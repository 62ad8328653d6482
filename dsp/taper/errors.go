package taper

import "errors"

// Errors returned by taper sources and set validation.
var (
	ErrInvalidLength  = errors.New("taper: length must be positive")
	ErrInvalidCount   = errors.New("taper: taper count must be positive")
	ErrCountTooLarge  = errors.New("taper: taper count must not exceed taper length")
	ErrEmptySet       = errors.New("taper: set must contain at least one taper")
	ErrLengthMismatch = errors.New("taper: tapers must share a single length")
	ErrRatioCount     = errors.New("taper: ratio count must match taper count")
	ErrRatioRange     = errors.New("taper: concentration ratios must be in [0,1]")
	ErrSetMismatch    = errors.New("taper: static set does not match requested shape")
)

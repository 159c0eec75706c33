package spectrum

import "errors"

var (
	// ErrInvalidParameter indicates a depth or threshold that is negative,
	// NaN, or infinite.
	ErrInvalidParameter = errors.New("spectrum: depth and threshold must be finite and non-negative")
	// ErrEmptySpectrum indicates that the threshold and depth leave no
	// density to sample from.
	ErrEmptySpectrum = errors.New("spectrum: truncated spectrum has zero total density")
	// ErrUninitializedTable indicates a sampling request before any
	// successful table build.
	ErrUninitializedTable = errors.New("spectrum: sampling requested before a successful table build")
	// ErrUnknownSpectrum indicates a lookup of a shape name that was never
	// registered with the store.
	ErrUnknownSpectrum = errors.New("spectrum: unknown spectrum name")
)

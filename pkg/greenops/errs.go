package greenops

import "errors"

var (
	// ErrNegative is returned for a negative energy or CO₂ figure.
	ErrNegative = errors.New("greenops: negative energy or carbon figure")

	// ErrNotFinite is returned when a figure or a derived value is NaN or ±Inf.
	ErrNotFinite = errors.New("greenops: figure is not a finite number")
)

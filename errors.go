package longset

import "errors"

var (
	// ErrInvalidCapacity is returned when a capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrInvalidLoadFactor is returned when a load factor is not a positive finite number.
	ErrInvalidLoadFactor = errors.New("load factor must be positive and finite")

	// ErrNilHasher is returned when WithHasher is given a nil function.
	ErrNilHasher = errors.New("hasher must not be nil")
)

package citygrid

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedVariant is returned when an operation is asked of a
	// layout variant that has no implementation for it (yet).
	ErrUnsupportedVariant = errors.New("unsupported city layout variant")

	// ErrInvalidLayout implies block counts or block size are out of range.
	ErrInvalidLayout = errors.New("invalid city layout")

	// ErrDegenerateSampling is returned by the samplers when there is nothing
	// to sample from (ie. a 1x1 city has no entry points).
	ErrDegenerateSampling = errors.New("cannot sample from an empty sequence")

	// ErrClassificationGap means some cell classified as Unknown.
	// This is always a bug in the classifier, never a runtime condition.
	ErrClassificationGap = errors.New("cell classified as unknown tile")

	// ErrNegativePosition is returned when subtraction would take a
	// position component below zero.
	ErrNegativePosition = errors.New("position component would be negative")

	// ErrOutOfBounds implies a row / column outside of the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrBadSnapshot is returned when decoding a snapshot fails or the decoded
	// city doesn't match what the layout generates.
	ErrBadSnapshot = errors.New("bad city snapshot")
)

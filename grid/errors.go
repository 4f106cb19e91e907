package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyShape indicates a shape with no axes.
	ErrEmptyShape = errors.New("grid: shape must have at least one axis")
	// ErrNonPositiveExtent indicates an axis with extent < 1.
	ErrNonPositiveExtent = errors.New("grid: every axis extent must be positive")
	// ErrRadiusRank indicates radius and shape have different lengths.
	ErrRadiusRank = errors.New("grid: radius rank does not match shape rank")
	// ErrNegativeRadius indicates a negative radius component.
	ErrNegativeRadius = errors.New("grid: radius components must be non-negative")
	// ErrRadiusTooLarge indicates a radius component larger than its axis extent.
	ErrRadiusTooLarge = errors.New("grid: radius exceeds image extent")
	// ErrEmptyNeighborhood indicates a radius that selects no neighbours.
	ErrEmptyNeighborhood = errors.New("grid: neighbourhood has no positions besides the centre")
)

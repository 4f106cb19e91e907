// Package volume holds the N-dimensional pixel buffers exchanged between the
// propagation engine and its callers.
//
// Image is a read-only grid of float64 intensities with spacing and origin
// metadata. Labels is a mutable grid of Label values in which one value acts as
// the background/unlabeled sentinel. Both store their pixels in a flat slice in
// raster order (axis 0 fastest) and are addressed with grid.Shape.
//
// The engine never allocates or frees caller buffers; it mutates Labels in place.
package volume

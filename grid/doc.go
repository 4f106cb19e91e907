// Package grid computes the addressing tables used to walk N-dimensional
// pixel buffers stored in a flat slice.
//
// What:
//
//   - Shape describes an N-dimensional extent; axis 0 varies fastest in memory.
//   - Strides gives the number of elements to skip to advance one unit per axis.
//   - BuildOffsetTable precomputes, once per shape, the signed linear delta for
//     every neighbour position within a per-axis Radius (centre excluded).
//   - Cursor turns a linear index into its in-bounds neighbour indices.
//
// Why:
//
//	Linear offsets make neighbour access a single addition, but linear arithmetic
//	alone cannot detect wrap-around across an image face: index+1 on the last
//	column of a row is the first column of the next row. Cursor therefore checks
//	every candidate against its coordinate, never against the linear address, and
//	skips the per-neighbour checks only for interior pixels that are at least
//	Radius away from every face.
//
// Connectivity:
//
//   - ConnFull: every position of the (2r+1)^N box (3×3×3 minus centre = 26 in 3D).
//   - ConnFace: only positions displaced along a single axis (6 in 3D with r=1).
//
// Complexity:
//
//   - BuildOffsetTable: O(K×N), Memory: O(K×N)  (K = neighbourhood size, N = rank).
//   - Cursor.Neighbors: O(N + K) interior, O(N + K×N) near a face.
//
// Errors:
//
//   - ErrEmptyShape: shape has no axes.
//   - ErrNonPositiveExtent: an axis has extent < 1.
//   - ErrRadiusRank: radius and shape disagree on the number of axes.
//   - ErrNegativeRadius: a radius component is negative.
//   - ErrRadiusTooLarge: a radius component exceeds the extent of its axis.
//   - ErrEmptyNeighborhood: the radius selects no neighbour at all.
//
// A Neighborhood is valid only for the shape it was built from; Matches reports
// whether it can be reused for another buffer.
package grid

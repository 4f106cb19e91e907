// Package raster converts between in-memory image.Image values and the
// engine's volume buffers.
//
// What:
//
//   - FromImage: any image.Image → 2-D intensity volume (luma via imaging.Grayscale)
//   - Mask: image.Image → 2-D label volume by luminance threshold (bild segment)
//   - Smooth: slice-wise Gaussian smoothing of an intensity volume (bild blur)
//   - Slice: one z-plane of an intensity volume as *image.Gray
//   - Palette / Overlay: label colouring in CIE-Lab space (go-colorful)
//
// Volumes of rank 2 are treated as a single plane; rank-3 volumes are
// handled one plane at a time along axis 2. Axis 0 maps to x, axis 1 to y.
//
// File decoding and encoding stay with the caller.
package raster

// Package palette implements the color extraction engine: it reduces a
// decoded pixel buffer to a small, perceptually diverse set of representative
// colors suitable for UI accents and theming.
//
// The pipeline is sampling -> sRGB-to-Lab conversion -> k-means clustering
// with the CIEDE2000 color difference as the assignment metric -> greedy
// diverse selection with threshold relaxation and, if needed, synthesis of
// complement colors so the palette always reaches its requested size.
//
// # Purity
//
// The engine performs no I/O: it consumes a PixelBuffer (raw 8-bit RGB or
// RGBA bytes plus dimensions) and returns RGB triples. Decoding image files
// into a PixelBuffer is the job of the imaging package.
//
// # Determinism
//
// Centroid seeding, empty-cluster reseeding, sample capping and color
// synthesis all draw from the Engine's own random generator. Inject a fixed
// source through Options.Rand to make a whole extraction reproducible; with
// a nil Rand the engine seeds itself from the wall clock.
//
// # Error Handling
//
// Errors fall into two categories, each anchored by a sentinel usable with
// errors.Is:
//   - ErrInvalidInput: buffer geometry inconsistent with the byte payload,
//     unsupported channel count, or non-positive dimensions.
//   - ErrInsufficientPixels: fewer than 10 pixels survive the alpha and
//     brightness filters.
//
// Degenerate but decodable inputs (a solid-color image, for instance) are
// not errors; reseeding and synthesis still produce a full palette.
package palette

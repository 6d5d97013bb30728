// Package imaging is the decoding collaborator for the palette engine.
//
// The engine itself never touches a filesystem or a decoder; this package
// does both. It loads and caches image files (PNG, JPEG, GIF), flattens
// decoded images into the raw pixel buffers the engine consumes, and
// produces aspect-preserving thumbnails for preview panes.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. The conversion and thumbnail
// functions are stateless and may be called concurrently on different
// images.
//
// # Memory Management
//
// Cached images stay in memory until removed with Evict or Clear. Long
// sessions that browse many assets should clear the cache periodically to
// bound memory growth.
package imaging

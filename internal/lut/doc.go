// Package lut implements the color-grading preview renderer: it parses
// .cube lookup tables and applies them to downscaled copies of an image
// so a browser pane can show what a grade would look like without
// touching the original asset.
//
// Both 3D tables (trilinear interpolation across the color cube) and 1D
// tables (independent per-channel curves) are supported. Lookup and
// interpolation are pure functions over the parsed table; nothing in
// this package holds mutable state between calls.
package lut

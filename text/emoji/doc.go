// Package emoji parses the color glyph tables of OpenType fonts.
//
// Three table families are supported, in the order a rasterizer should try
// them for a glyph:
//
//   - COLR version 0 with CPAL: a color glyph is a stack of outline layers,
//     each painted with a palette color or with the foreground color.
//   - CBDT/CBLC (Google): embedded PNG bitmaps at one or more strikes.
//   - sbix (Apple): embedded PNG or JPEG bitmaps at one or more strikes.
//
// The parsers only read table bytes; locating the tables inside a font file
// is left to the caller. Parsed tables are immutable and may be shared.
//
// # Strike Selection
//
// Bitmap tables store each glyph at a handful of fixed sizes (strikes).
// [BestFit] picks the smallest strike at least as large as the requested
// pixels-per-em, falling back to the largest strike, so that bitmaps are
// scaled down rather than up whenever possible.
package emoji

// Package blend provides the fixed-point glyph compositing kernels.
//
// A glyph mask holds one coverage byte per channel (4 channels per pixel).
// Compositing blends a constant text color over a constant, flat background
// color, weighted by that coverage, and bakes the result into a new buffer:
//
//	out = ((a*m) + (b*((0xff00 - ta*m) >> 8))) >> 8
//
// where a is the text channel, b the background channel, m the mask byte of
// the same channel and ta the text alpha. Every intermediate is a uint16 and
// wraps modulo 65536, exactly like a 16-bit SIMD lane.
//
// The narrowing is a shift by 8, not a division by 255. The resulting
// truncation bias is part of the output format: existing glyph images are
// compared byte-for-byte, so the formula must not be "corrected".
//
// Two kernels implement "composite one row": a scalar reference and a wide
// kernel built on [wide.U16x16] that processes four pixels per step. The
// wide kernel is selected at init time from CPU features; both produce
// identical bytes for every input.
package blend

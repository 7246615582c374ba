// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// The U16x16 type holds 16 uint16 lanes, one lane per byte of a 16-byte
// block. Four interleaved 4-channel pixels fit exactly in one block, so a
// constant per-channel color can be broadcast with SplatPixel and combined
// lane-by-lane with pixel data loaded by LoadBytes, without converting the
// buffer to a Structure-of-Arrays layout first.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Arithmetic wraps modulo 2^16, exactly like 16-bit SIMD lanes
//
// # Usage Example
//
//	m := wide.LoadBytes(block)              // 16 mask bytes
//	color := wide.SplatPixel(r, g, b, a)    // r,g,b,a,r,g,b,a,...
//	wide.StoreBytes(out, color.Mul(m).Shr(8))
package wide

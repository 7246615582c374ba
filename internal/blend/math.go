package blend

// fixedOne is the fixed-point representation of 1.0 used by the glyph
// formula: 255 << 8.
const fixedOne uint16 = 0xff00

// CompositeChannel composites one channel.
//
//   - a:  text color channel (0-255)
//   - ta: text color alpha (0-255)
//   - m:  mask coverage for this channel (0-255)
//   - b:  background color channel (0-255)
//
// Formula: ((a*m) + (b*((0xff00 - ta*m) >> 8))) >> 8, in uint16 arithmetic.
//
// Boundary values keep the shift bias: m=0 gives (b*255)>>8 and
// m=255, ta=255 gives (a*255)>>8, so both are one below the input for
// any nonzero channel.
func CompositeChannel(a, ta, m, b uint8) uint8 {
	left := uint16(a) * uint16(m)
	inv := (fixedOne - uint16(ta)*uint16(m)) >> 8
	// Intentional narrowing - the sum is shifted into byte range
	return uint8((left + uint16(b)*inv) >> 8) // #nosec G115
}

// compositePixel composites one 4-channel pixel. The alpha channel uses the
// mask's own alpha byte as its coverage operand.
func compositePixel(dst, src []byte, text, dest [4]uint8) {
	_ = dst[3] // bounds check hint
	_ = src[3]
	ta := text[3]
	dst[0] = CompositeChannel(text[0], ta, src[0], dest[0])
	dst[1] = CompositeChannel(text[1], ta, src[1], dest[1])
	dst[2] = CompositeChannel(text[2], ta, src[2], dest[2])
	dst[3] = CompositeChannel(text[3], ta, src[3], dest[3])
}

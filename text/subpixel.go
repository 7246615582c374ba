package text

// SubpixelMode selects how the three horizontal subpixel samples taken
// for every output pixel become the pixel's R, G and B coverage.
//
// Outlines are rasterized at three times the horizontal resolution, so
// pixel x covers samples 3x, 3x+1 and 3x+2 (left, center, right).
type SubpixelMode int

const (
	// SubpixelDefault gives each channel exactly its own sample:
	// R = s[3x], G = s[3x+1], B = s[3x+2].
	SubpixelDefault SubpixelMode = iota

	// SubpixelSymmetric filters each channel's sample with its neighbors
	// using the symmetric (1, 2, 1)/4 kernel, which reduces color fringes.
	// Samples outside the glyph count as zero coverage.
	SubpixelSymmetric
)

// String returns the string representation of the subpixel mode.
func (m SubpixelMode) String() string {
	switch m {
	case SubpixelDefault:
		return "Default"
	case SubpixelSymmetric:
		return "Symmetric"
	default:
		return unknownStr
	}
}

// subpixelPad is the number of zero samples kept on each side of a row so
// that the symmetric filter can read one sample past either edge.
const subpixelPad = 1

// resolveSubpixels turns a row of 3*len(dst)/4 coverage samples into
// 4-byte pixels. src must hold the samples plus subpixelPad zeros at each
// end. The alpha channel copies the green (center) coverage.
func resolveSubpixels(dst, src []byte, mode SubpixelMode) {
	n := len(dst) / 4
	if n == 0 {
		return
	}
	_ = src[3*n+2*subpixelPad-1] // bounds check hint

	for x := 0; x < n; x++ {
		p := dst[x*4 : x*4+4 : x*4+4]
		s := 3*x + subpixelPad
		switch mode {
		case SubpixelSymmetric:
			p[0] = filter121(src[s-1], src[s], src[s+1])
			p[1] = filter121(src[s], src[s+1], src[s+2])
			p[2] = filter121(src[s+1], src[s+2], src[s+3])
		default:
			p[0] = src[s]
			p[1] = src[s+1]
			p[2] = src[s+2]
		}
		p[3] = p[1]
	}
}

// filter121 returns (a + 2b + c) / 4, rounded to nearest.
func filter121(a, b, c byte) byte {
	return byte((uint16(a) + 2*uint16(b) + uint16(c) + 2) >> 2)
}

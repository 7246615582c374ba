package blend

import "github.com/gogpu/glyph/internal/wide"

// CompositeRowScalar is the scalar reference kernel. It composites
// min(len(dst), len(src)) bytes of src into dst. Byte i belongs to channel
// i%4 of its pixel. dst and src may be the same slice.
func CompositeRowScalar(dst, src []byte, text, dest [4]uint8) {
	n := min(len(dst), len(src))
	i := 0

	// Whole pixels
	for ; i+4 <= n; i += 4 {
		compositePixel(dst[i:i+4], src[i:i+4], text, dest)
	}

	// Trailing bytes of a partial pixel
	compositeTail(dst[:n], src[:n], i, text, dest)
}

// CompositeRowWide is the wide kernel. It processes 16 bytes (four pixels)
// per step on U16x16 lanes and falls back to the scalar formula for the
// trailing bytes, so it never reads or writes past min(len(dst), len(src)).
// dst and src may be the same slice.
func CompositeRowWide(dst, src []byte, text, dest [4]uint8) {
	n := min(len(dst), len(src))
	blocks := n - n%wide.Lanes

	if blocks > 0 {
		textVec := wide.SplatPixel(text[0], text[1], text[2], text[3])
		destVec := wide.SplatPixel(dest[0], dest[1], dest[2], dest[3])
		alphaVec := wide.SplatU16(uint16(text[3]))
		oneVec := wide.SplatU16(fixedOne)

		for i := 0; i < blocks; i += wide.Lanes {
			m := wide.LoadBytes(src[i : i+wide.Lanes])

			// a*m
			left := textVec.Mul(m)
			// (0xff00 - ta*m) >> 8
			inv := oneVec.Sub(alphaVec.Mul(m)).Shr(8)
			// (a*m + b*inv) >> 8
			out := left.Add(destVec.Mul(inv)).Shr(8)

			wide.StoreBytes(dst[i:i+wide.Lanes], out)
		}
	}

	compositeTail(dst[:n], src[:n], blocks, text, dest)
}

// compositeTail composites bytes [from, len(dst)) one channel at a time.
// len(dst) must not exceed len(src).
func compositeTail(dst, src []byte, from int, text, dest [4]uint8) {
	for i := from; i < len(dst); i++ {
		c := i & 3
		dst[i] = CompositeChannel(text[c], text[3], src[i], dest[c])
	}
}

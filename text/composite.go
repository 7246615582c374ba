package text

import "github.com/gogpu/glyph/internal/blend"

// Composite colors a mask: every byte of the result is
//
//	out = (a*m + b*((0xff00 - ta*m) >> 8)) >> 8
//
// where a and b are the text and destination values of the byte's channel,
// m the mask byte, and ta the text alpha. Intermediates are 16-bit and
// wrap, exactly as 16-bit vector lanes do, and the final shift is kept
// even though it biases full-coverage results one step low.
//
// Composite is pure: it does not modify mask and returns a newly allocated
// image with the mask's size and placement.
func Composite(mask GlyphMask, text, dest Color) GlyphImage {
	img := GlyphImage{
		Width:  mask.Width,
		Height: mask.Height,
		Left:   mask.Left,
		Top:    mask.Top,
	}
	if len(mask.pix) == 0 {
		return img
	}
	img.Pix = make([]byte, len(mask.pix))
	// Rows are contiguous, so the whole mask is one row for the kernel.
	blend.CompositeRow(img.Pix, mask.pix, [4]uint8(text), [4]uint8(dest))
	return img
}

// CompositeKernel names the row kernel selected for this CPU, for
// diagnostics ("scalar" or "wide").
func CompositeKernel() string {
	return blend.SelectedKernel().String()
}

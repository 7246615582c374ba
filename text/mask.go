package text

import (
	"image"
)

// Color is a 4-channel color in the channel order of the output surface.
// Channel 3 is alpha. Values are used as-is; no premultiplication is
// applied or assumed.
type Color [4]uint8

// RGBA returns a Color with channels in R, G, B, A order.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// MaskKind records which rasterization path produced a mask.
type MaskKind uint8

const (
	// KindOutline is a subpixel coverage mask from a monochrome outline.
	KindOutline MaskKind = iota

	// KindColor is a premultiplied color image from COLR layers or an
	// embedded bitmap.
	KindColor
)

// String returns the string representation of the mask kind.
func (k MaskKind) String() string {
	switch k {
	case KindOutline:
		return "Outline"
	case KindColor:
		return "Color"
	default:
		return unknownStr
	}
}

// GlyphMask is the color-independent rasterization of one glyph at one size.
//
// Pixels are 4 bytes each, row-major, with a stride of Width*4 and no
// padding. Left and Top place the mask relative to the glyph origin on the
// baseline: Left is the offset of the first column, Top the distance from
// the baseline up to the first row.
//
// A GlyphMask is immutable. Its pixels are reachable only through Pix,
// which copies, so masks can be shared through a cache without a caller
// being able to change what the next caller sees. A mask with zero area is
// valid and means there is nothing to draw.
type GlyphMask struct {
	Width, Height int
	Left, Top     int
	Kind          MaskKind

	pix []byte
}

// NewGlyphMask builds a mask from caller-provided pixels, for Rasterizer
// implementations outside this package. pix is copied and must hold
// exactly width*height*4 bytes.
func NewGlyphMask(width, height, left, top int, kind MaskKind, pix []byte) (GlyphMask, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return GlyphMask{}, errorf("mask size %dx%d does not match %d bytes", width, height, len(pix))
	}
	m := GlyphMask{Width: width, Height: height, Left: left, Top: top, Kind: kind}
	if len(pix) > 0 {
		m.pix = append([]byte(nil), pix...)
	}
	return m, nil
}

// Empty reports whether the mask has no pixels.
func (m GlyphMask) Empty() bool {
	return m.Width <= 0 || m.Height <= 0
}

// Stride returns the number of bytes per row.
func (m GlyphMask) Stride() int {
	return m.Width * 4
}

// Pix returns a copy of the mask's pixels.
func (m GlyphMask) Pix() []byte {
	if len(m.pix) == 0 {
		return nil
	}
	return append([]byte(nil), m.pix...)
}

// Bytes returns the size of the mask's pixel buffer.
func (m GlyphMask) Bytes() int {
	return len(m.pix)
}

// GlyphImage is a composited glyph, owned by the caller.
//
// The layout matches GlyphMask. Pix is freshly allocated for every image
// and never shared with a cache. Zero-size images carry placement only and
// should be skipped when drawing.
type GlyphImage struct {
	Width, Height int
	Left, Top     int
	Pix           []byte
}

// Empty reports whether the image has no pixels.
func (img GlyphImage) Empty() bool {
	return img.Width <= 0 || img.Height <= 0
}

// Stride returns the number of bytes per row.
func (img GlyphImage) Stride() int {
	return img.Width * 4
}

// ToRGBA wraps a copy of the pixels as an *image.RGBA, for surfaces whose
// channel order is R, G, B, A. The image's bounds start at (0, 0).
func (img GlyphImage) ToRGBA() *image.RGBA {
	w, h := max(img.Width, 0), max(img.Height, 0)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(dst.Pix, img.Pix)
	return dst
}

// SwizzleABGR returns a copy with the bytes of every pixel reversed, for
// surfaces whose channel order is A, B, G, R.
func (img GlyphImage) SwizzleABGR() GlyphImage {
	out := img
	out.Pix = make([]byte, len(img.Pix))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		s := img.Pix[i : i+4 : i+4]
		d := out.Pix[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = s[3], s[2], s[1], s[0]
	}
	return out
}

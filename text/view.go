package text

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontView is a lightweight, read-only handle to a loaded face.
//
// A view is a value built by FontSource.View from data stored at load
// time. It may be copied freely and used from multiple goroutines.
// The zero FontView refers to no font: queries return zero values and
// rendering fails with ErrFontClosed.
type FontView struct {
	face *fontData
}

// IsValid reports whether the view refers to a loaded face.
func (v FontView) IsValid() bool {
	return v.face != nil
}

// ID returns the FontID allocated when the face was loaded.
func (v FontView) ID() FontID {
	if v.face == nil {
		return 0
	}
	return v.face.id
}

// Index returns the face index within the font file.
func (v FontView) Index() int {
	if v.face == nil {
		return 0
	}
	return v.face.index
}

// Offset returns the byte offset of the face's table directory within
// Data: 0 for single fonts, the collection entry for TTC/OTC files.
func (v FontView) Offset() uint32 {
	if v.face == nil {
		return 0
	}
	return v.face.offset
}

// Data returns the whole font file. The slice must not be modified.
func (v FontView) Data() []byte {
	if v.face == nil {
		return nil
	}
	return v.face.data
}

// NumGlyphs returns the number of glyphs in the face.
func (v FontView) NumGlyphs() int {
	if v.face == nil {
		return 0
	}
	return v.face.outlines.NumGlyphs()
}

// UnitsPerEm returns the face's design units per em.
func (v FontView) UnitsPerEm() int {
	if v.face == nil {
		return 0
	}
	return int(v.face.outlines.UnitsPerEm())
}

// Attributes returns the face's family, style, weight and stretch.
func (v FontView) Attributes() Attributes {
	if v.face == nil {
		return Attributes{}
	}
	return v.face.attrs
}

// Charmap returns the face's character to glyph mapping.
func (v FontView) Charmap() Charmap {
	if v.face == nil {
		return Charmap{}
	}
	return Charmap{font: v.face.cmap}
}

// HasColorGlyphs reports whether any color table was loaded for the face.
func (v FontView) HasColorGlyphs() bool {
	return v.face != nil && !v.face.color.empty()
}

// Advance returns the horizontal advance of gid at size pixels per em,
// rounded to whole pixels. It allocates a scratch buffer per call.
func (v FontView) Advance(size uint32, gid GlyphID) (int, error) {
	if v.face == nil {
		return 0, ErrFontClosed
	}
	if size == 0 || size > MaxPixelSize {
		return 0, fmt.Errorf("%w: %d", ErrSizeOutOfRange, size)
	}
	adv, err := v.face.outlines.GlyphAdvance(nil, sfnt.GlyphIndex(gid), fixed.I(int(size)), xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("%w: glyph %d: %v", ErrGlyphOutOfRange, gid, err)
	}
	return adv.Round(), nil
}

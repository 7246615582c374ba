package text

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MaxPixelSize is the largest pixel size a DefaultRasterizer accepts.
const MaxPixelSize = 2048

// Rasterizer turns one glyph of a font at one pixel size into a mask.
//
// Implementations return a zero-size mask and a nil error for glyphs
// with nothing to draw, such as spaces. Errors are reserved for glyph
// indices outside the font and for data that cannot be decoded.
type Rasterizer interface {
	Rasterize(view FontView, size uint32, gid GlyphID) (GlyphMask, error)
}

// DefaultRasterizer rasterizes glyphs from the font's own data, trying in
// order:
//
//  1. COLR layers painted with the CPAL palette (KindColor),
//  2. CBDT then sbix bitmaps from the best-fit strike (KindColor),
//  3. the monochrome outline with subpixel sampling (KindOutline).
//
// The first source that has the glyph wins. Color sources that fail to
// decode are logged and skipped.
//
// A DefaultRasterizer reuses scratch buffers and is not safe for
// concurrent use.
type DefaultRasterizer struct {
	config rasterizerConfig

	buf    sfnt.Buffer
	raster vector.Rasterizer
}

// NewDefaultRasterizer creates a rasterizer with the given options.
func NewDefaultRasterizer(opts ...RasterizerOption) *DefaultRasterizer {
	config := defaultRasterizerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &DefaultRasterizer{config: config}
}

// SubpixelMode returns the mode fixed at construction.
func (r *DefaultRasterizer) SubpixelMode() SubpixelMode {
	return r.config.subpixel
}

// Rasterize implements Rasterizer.
func (r *DefaultRasterizer) Rasterize(view FontView, size uint32, gid GlyphID) (GlyphMask, error) {
	face := view.face
	if face == nil {
		return GlyphMask{}, ErrFontClosed
	}
	if size == 0 || size > MaxPixelSize {
		return GlyphMask{}, fmt.Errorf("%w: %d", ErrSizeOutOfRange, size)
	}
	if n := face.outlines.NumGlyphs(); int(gid) >= n {
		return GlyphMask{}, fmt.Errorf("%w: glyph %d, font has %d", ErrGlyphOutOfRange, gid, n)
	}

	if mask, ok := r.rasterizeColor(face, size, gid); ok {
		return mask, nil
	}
	return r.rasterizeOutline(face, size, gid)
}

// loadOutline returns the glyph's segments at size, in pixels with y down.
func (r *DefaultRasterizer) loadOutline(f *sfnt.Font, size uint32, gid GlyphID) (sfnt.Segments, error) {
	ppem := fixed.I(int(size))
	segs, err := f.LoadGlyph(&r.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, fmt.Errorf("%w: glyph %d", ErrGlyphOutOfRange, gid)
		}
		return nil, fmt.Errorf("text: glyph %d outline: %w", gid, err)
	}
	return segs, nil
}

// pixelBounds returns the smallest whole-pixel rectangle containing b.
func pixelBounds(b fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// rasterizeOutline renders the glyph outline at 3x horizontal resolution
// and resolves the samples into a subpixel mask.
func (r *DefaultRasterizer) rasterizeOutline(face *fontData, size uint32, gid GlyphID) (GlyphMask, error) {
	segs, err := r.loadOutline(face.outlines, size, gid)
	if err != nil {
		return GlyphMask{}, err
	}
	if len(segs) == 0 {
		return GlyphMask{Kind: KindOutline}, nil
	}

	bounds := pixelBounds(segs.Bounds())
	if bounds.Empty() {
		return GlyphMask{Kind: KindOutline, Left: bounds.Min.X, Top: -bounds.Min.Y}, nil
	}
	w, h := bounds.Dx(), bounds.Dy()

	// Sample space: x scaled by 3 with one zero sample of padding per side.
	sw := 3*w + 2*subpixelPad
	origin := [2]float32{
		float32(3*-bounds.Min.X + subpixelPad),
		float32(-bounds.Min.Y),
	}
	samples := r.fill(segs, sw, h, 3, origin)

	mask := GlyphMask{
		Width:  w,
		Height: h,
		Left:   bounds.Min.X,
		Top:    -bounds.Min.Y,
		Kind:   KindOutline,
		pix:    make([]byte, w*h*4),
	}
	for y := 0; y < h; y++ {
		resolveSubpixels(mask.pix[y*w*4:(y+1)*w*4], samples.Pix[y*samples.Stride:y*samples.Stride+sw], r.config.subpixel)
	}
	return mask, nil
}

// fill rasterizes segs into a new w×h coverage image, after scaling x by
// sx and translating by origin.
func (r *DefaultRasterizer) fill(segs sfnt.Segments, w, h int, sx float32, origin [2]float32) *image.Alpha {
	r.raster.Reset(w, h)
	r.raster.DrawOp = draw.Src

	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64*sx + origin[0], float32(p.Y)/64 + origin[1]
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.raster.ClosePath()
			}
			r.raster.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.raster.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.raster.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.raster.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.raster.ClosePath()
	}

	// The destination must be tightly packed: with bounds equal to the
	// rasterizer's, vector writes rows without consulting the stride.
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.raster.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// roundPx rounds a scaled length to whole pixels.
func roundPx(v float64) int {
	return int(math.Round(v))
}

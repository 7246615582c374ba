package text

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyph/text/emoji"
)

// foreground is the color of COLR layers that take the text color. The
// compositor multiplies it by the text color later, so it must be white.
var foreground = emoji.Color{R: 255, G: 255, B: 255, A: 255}

// rasterizeColor tries the face's color sources in priority order.
// It reports false when none of them has the glyph.
func (r *DefaultRasterizer) rasterizeColor(face *fontData, size uint32, gid GlyphID) (GlyphMask, bool) {
	ct := &face.color
	if ct.empty() {
		return GlyphMask{}, false
	}
	log := slogger()

	if ct.colr != nil {
		if layers := ct.colr.Layers(uint16(gid)); len(layers) > 0 {
			mask, err := r.rasterizeLayers(face.outlines, ct.palette, size, layers)
			if err == nil {
				return mask, true
			}
			log.Warn("text: COLR glyph failed, trying next source", "gid", gid, "err", err)
		}
	}

	ppem := uint16(size) // #nosec G115 -- size <= MaxPixelSize
	for _, src := range []struct {
		name  string
		glyph func(gid, ppem uint16) (*emoji.BitmapGlyph, error)
	}{
		{"CBDT", cbdtGlyph(ct.cbdt)},
		{"sbix", sbixGlyph(ct.sbix)},
	} {
		if src.glyph == nil {
			continue
		}
		bg, err := src.glyph(uint16(gid), ppem)
		if err != nil {
			if !errors.Is(err, emoji.ErrGlyphNotInBitmap) && !errors.Is(err, emoji.ErrNoStrikeAvailable) {
				log.Warn("text: bitmap glyph failed, trying next source", "table", src.name, "gid", gid, "err", err)
			}
			continue
		}
		mask, err := scaleBitmap(bg, size)
		if err != nil {
			log.Warn("text: bitmap glyph failed, trying next source", "table", src.name, "gid", gid, "err", err)
			continue
		}
		return mask, true
	}

	return GlyphMask{}, false
}

func cbdtGlyph(t *emoji.CBDT) func(gid, ppem uint16) (*emoji.BitmapGlyph, error) {
	if t == nil {
		return nil
	}
	return t.Glyph
}

func sbixGlyph(t *emoji.SBIX) func(gid, ppem uint16) (*emoji.BitmapGlyph, error) {
	if t == nil {
		return nil
	}
	return t.Glyph
}

// rasterizeLayers paints COLR layers bottom to top into one premultiplied
// image covering the union of the layer outlines.
func (r *DefaultRasterizer) rasterizeLayers(f *sfnt.Font, palette emoji.Palette, size uint32, layers []emoji.Layer) (GlyphMask, error) {
	segs := make([]sfnt.Segments, len(layers))
	var bounds image.Rectangle
	for i, l := range layers {
		if int(l.GlyphID) >= f.NumGlyphs() {
			return GlyphMask{}, ErrGlyphOutOfRange
		}
		s, err := r.loadOutline(f, size, GlyphID(l.GlyphID))
		if err != nil {
			return GlyphMask{}, err
		}
		// LoadGlyph results alias the buffer; keep a copy per layer.
		segs[i] = append(sfnt.Segments(nil), s...)
		if len(s) > 0 {
			bounds = bounds.Union(pixelBounds(s.Bounds()))
		}
	}
	if bounds.Empty() {
		return GlyphMask{Kind: KindColor}, nil
	}

	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	origin := [2]float32{float32(-bounds.Min.X), float32(-bounds.Min.Y)}
	for i, l := range layers {
		if len(segs[i]) == 0 {
			continue
		}
		coverage := r.fill(segs[i], w, h, 1, origin)
		c := palette.Resolve(l, foreground)
		draw.DrawMask(dst, dst.Bounds(), image.NewUniform(color.NRGBA(c)), image.Point{}, coverage, image.Point{}, draw.Over)
	}

	return GlyphMask{
		Width:  w,
		Height: h,
		Left:   bounds.Min.X,
		Top:    -bounds.Min.Y,
		Kind:   KindColor,
		pix:    dst.Pix,
	}, nil
}

// scaleBitmap decodes an embedded bitmap and scales it from its strike
// to size pixels per em.
func scaleBitmap(bg *emoji.BitmapGlyph, size uint32) (GlyphMask, error) {
	src, err := bg.Decode()
	if err != nil {
		return GlyphMask{}, err
	}
	sb := src.Bounds()
	if sb.Empty() || bg.PPEM == 0 {
		return GlyphMask{Kind: KindColor}, nil
	}

	scale := float64(size) / float64(bg.PPEM)
	w := max(roundPx(float64(sb.Dx())*scale), 1)
	h := max(roundPx(float64(sb.Dy())*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}

	return GlyphMask{
		Width:  w,
		Height: h,
		Left:   roundPx(float64(bg.BearingX) * scale),
		Top:    roundPx(float64(bg.BearingY) * scale),
		Kind:   KindColor,
		pix:    dst.Pix,
	}, nil
}

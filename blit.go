package glyph

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/glyph/text"
)

// GlyphRect returns the rectangle img covers on a surface when its glyph
// origin is placed at origin, a point on the baseline.
func GlyphRect(origin image.Point, img text.GlyphImage) image.Rectangle {
	p := image.Pt(origin.X+img.Left, origin.Y-img.Top)
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(img.Width, img.Height))}
}

// Blit copies img onto dst with its glyph origin at origin. Pixels are
// copied, not blended: the image was already composited over the
// background color. The copy is clipped to dst's bounds, and zero-size
// images are skipped.
func Blit(dst *image.RGBA, origin image.Point, img text.GlyphImage) {
	if img.Empty() {
		return
	}
	r := GlyphRect(origin, img)
	draw.Draw(dst, r, img.ToRGBA(), image.Point{}, draw.Src)
}

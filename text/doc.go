// Package text renders individual glyphs into ready-to-copy pixels.
//
// The pipeline has four stages, each usable on its own:
//
//   - FontSource: owns the bytes of one face of a font file and the FontID
//     allocated when it was loaded. FontView is the cheap, read-only handle
//     that every other stage takes.
//   - Rasterizer: turns (font, size, glyph) into a color-independent
//     GlyphMask. DefaultRasterizer uses COLR, CBDT or sbix color data when
//     present and the subpixel-sampled outline otherwise.
//   - GlyphCache: a fixed-capacity LRU cache of masks keyed by GlyphKey.
//   - Composite: applies text and destination colors to a mask with 8.8
//     fixed-point arithmetic, using a vectorized kernel when the CPU has one.
//
// GlyphRenderer ties the stages together.
//
// # Example usage
//
//	source, err := text.LoadFontFile("DejaVuSansMono.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	view := source.View()
//	r := text.NewGlyphRenderer()
//	gid := view.Charmap().Map('g')
//	img, err := r.Render(view, 16, gid,
//	    text.RGBA(0xee, 0xee, 0xee, 0xff), // text
//	    text.RGBA(0x20, 0x20, 0x20, 0xff)) // background
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !img.Empty() {
//	    draw.Draw(dst, image.Rect(x+img.Left, baseline-img.Top, ...), img.ToRGBA(), image.Point{}, draw.Src)
//	}
//
// # Pixel Format
//
// Masks and images are 4 bytes per pixel, row-major, stride Width*4. For
// outline glyphs the first three bytes hold the coverage of the pixel's
// left, center and right thirds and the fourth repeats the center. The
// channel order of the output is therefore the order of the colors passed
// to Render; GlyphImage.ToRGBA and GlyphImage.SwizzleABGR adapt it to
// common surfaces.
//
// # Concurrency
//
// FontSource and FontView are safe for concurrent use. GlyphCache,
// DefaultRasterizer and GlyphRenderer are single-owner; SyncRenderer is
// the shared form.
package text

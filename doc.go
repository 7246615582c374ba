// Package glyph renders font glyphs into color-composited pixel images
// ready to be copied onto a display surface.
//
// # Overview
//
// The work happens in the text sub-package. A [text.FontSource] owns the
// bytes of one face and the [text.FontID] allocated when it was loaded. A
// [text.GlyphRenderer] turns (font, pixel size, glyph index, text color,
// background color) into a [text.GlyphImage]: it rasterizes each glyph once
// per font and size into a color-independent mask, keeps masks in a
// bounded LRU cache, and composites a fresh image for every call with a
// fixed-point formula whose vector and scalar kernels agree bit for bit.
//
// # Quick Start
//
//	source, err := text.LoadFontFile("DejaVuSans.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	view := source.View()
//	r := text.NewGlyphRenderer()
//	img, err := r.Render(view, 16, view.Charmap().Map('A'),
//	    text.RGBA(0, 0, 0, 255), text.RGBA(255, 255, 255, 255))
//
//	dst := image.NewRGBA(image.Rect(0, 0, 64, 32))
//	glyph.Blit(dst, image.Pt(4, 24), img)
//
// # Architecture
//
// The library is organized into:
//   - glyph: logging configuration and surface helpers
//   - text: font sources, rasterization, the glyph cache and renderer
//   - text/emoji: COLR/CPAL, CBDT/CBLC and sbix color glyph tables
//   - internal/cache: generic fixed-capacity LRU cache
//   - internal/blend: the compositing formula and its row kernels
//   - internal/wide: 16-lane uint16 arithmetic used by the vector kernel
//
// # Logging
//
// glyph is silent by default. [SetLogger] installs a [log/slog] logger for
// this package and its sub-packages.
package glyph

package text

import (
	"log/slog"
)

// GlyphRenderer turns (font, size, glyph, colors) into ready-to-copy
// pixels. It rasterizes each glyph once per font and size, keeps the
// color-independent mask in a private GlyphCache, and composites a fresh
// image for every call.
//
// GlyphRenderer is not safe for concurrent use; wrap it in a SyncRenderer
// to share it between goroutines.
type GlyphRenderer struct {
	cache      *GlyphCache
	rasterizer Rasterizer
	logger     *slog.Logger

	// composite is replaceable in tests.
	composite func(GlyphMask, Color, Color) GlyphImage
}

// NewGlyphRenderer creates a renderer with its own cache.
func NewGlyphRenderer(opts ...RendererOption) *GlyphRenderer {
	config := defaultRendererConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.rasterizer == nil {
		config.rasterizer = NewDefaultRasterizer()
	}

	r := &GlyphRenderer{
		cache:      NewGlyphCache(config.capacity),
		rasterizer: config.rasterizer,
		logger:     config.logger,
		composite:  Composite,
	}
	r.cache.OnEvict(func(key GlyphKey, mask GlyphMask) {
		r.log().Debug("text: glyph evicted", "key", key, "bytes", mask.Bytes())
	})
	return r
}

// log returns the renderer's logger, or the package logger at call time.
func (r *GlyphRenderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slogger()
}

// Render returns the glyph composited with the text color over the
// destination color.
//
// The glyph is rasterized only if its (font, size, glyph) mask is not
// already cached; colors never cause a rasterization. A glyph with nothing
// to draw yields a zero-size image carrying the mask's placement. On a
// rasterization error nothing is cached and the error is returned.
func (r *GlyphRenderer) Render(view FontView, size uint32, gid GlyphID, text, dest Color) (GlyphImage, error) {
	mask, err := r.RenderMask(view, size, gid)
	if err != nil {
		return GlyphImage{}, err
	}
	if mask.Empty() {
		return GlyphImage{Left: mask.Left, Top: mask.Top}, nil
	}
	return r.composite(mask, text, dest), nil
}

// RenderMask returns the cached mask for the glyph, rasterizing it on a
// miss. It is for callers that composite themselves; the mask is
// immutable.
func (r *GlyphRenderer) RenderMask(view FontView, size uint32, gid GlyphID) (GlyphMask, error) {
	if !view.IsValid() {
		return GlyphMask{}, ErrFontClosed
	}

	key := GlyphKey{Font: view.ID(), Size: size, GID: gid}
	if mask, ok := r.cache.Lookup(key); ok {
		return mask, nil
	}

	mask, err := r.rasterizer.Rasterize(view, size, gid)
	if err != nil {
		return GlyphMask{}, err
	}

	r.cache.Insert(key, mask)
	r.log().Debug("text: glyph rasterized",
		"key", key, "kind", mask.Kind, "width", mask.Width, "height", mask.Height)
	return mask, nil
}

// RenderString renders the nominal glyph of every character of s, in
// order. Characters the font lacks render as NotDef. It stops at the
// first error.
func (r *GlyphRenderer) RenderString(view FontView, size uint32, s string, text, dest Color) ([]GlyphImage, error) {
	gids := view.Charmap().MapString(s)
	images := make([]GlyphImage, 0, len(gids))
	for _, gid := range gids {
		img, err := r.Render(view, size, gid, text, dest)
		if err != nil {
			return images, err
		}
		images = append(images, img)
	}
	return images, nil
}

// Cache returns the renderer's cache, for inspection.
func (r *GlyphRenderer) Cache() *GlyphCache {
	return r.cache
}

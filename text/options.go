package text

import "log/slog"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	colorTables bool
	palette     int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		colorTables: true,
		palette:     0,
	}
}

// WithColorTables controls whether COLR/CPAL, CBDT/CBLC and sbix tables
// are loaded. When disabled, every glyph renders from its outline.
// Enabled by default.
func WithColorTables(enabled bool) SourceOption {
	return func(c *sourceConfig) {
		c.colorTables = enabled
	}
}

// WithPalette selects the CPAL palette used for COLR layers.
// Out-of-range indices fall back to palette 0. Default: 0.
func WithPalette(index int) SourceOption {
	return func(c *sourceConfig) {
		c.palette = index
	}
}

// RasterizerOption configures a DefaultRasterizer.
type RasterizerOption func(*rasterizerConfig)

type rasterizerConfig struct {
	subpixel SubpixelMode
}

func defaultRasterizerConfig() rasterizerConfig {
	return rasterizerConfig{subpixel: SubpixelDefault}
}

// WithSubpixelMode sets how the three subpixel samples of each pixel are
// turned into R, G and B coverage. Default: SubpixelDefault.
func WithSubpixelMode(m SubpixelMode) RasterizerOption {
	return func(c *rasterizerConfig) {
		c.subpixel = m
	}
}

// RendererOption configures a GlyphRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	capacity   int
	rasterizer Rasterizer
	logger     *slog.Logger
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		capacity: DefaultGlyphCacheCapacity,
	}
}

// WithCacheCapacity sets the number of glyph masks kept by the renderer.
// Values <= 0 select DefaultGlyphCacheCapacity.
func WithCacheCapacity(n int) RendererOption {
	return func(c *rendererConfig) {
		c.capacity = n
	}
}

// WithRasterizer replaces the default rasterizer.
func WithRasterizer(r Rasterizer) RendererOption {
	return func(c *rendererConfig) {
		c.rasterizer = r
	}
}

// WithLogger sets a logger for this renderer only. By default the renderer
// logs through the package logger installed with SetLogger.
func WithLogger(l *slog.Logger) RendererOption {
	return func(c *rendererConfig) {
		c.logger = l
	}
}

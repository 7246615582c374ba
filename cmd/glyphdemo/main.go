// Command glyphdemo renders a line of text with the glyph renderer and
// writes it to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/text"
)

type options struct {
	text     string
	fontPath string
	sysFont  string
	index    int
	size     uint
	subpixel string
	output   string
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.text, "text", "Hello, glyphs!", "text to render")
	flag.StringVar(&opts.fontPath, "font", "", "font file (default: Go Regular)")
	flag.StringVar(&opts.sysFont, "sysfont", "", "installed font name, e.g. DejaVuSans")
	flag.IntVar(&opts.index, "index", 0, "face index within a collection")
	flag.UintVar(&opts.size, "size", 32, "pixel size")
	flag.StringVar(&opts.subpixel, "subpixel", "default", "subpixel mode: default or symmetric")
	flag.StringVar(&opts.output, "output", "glyphs.png", "output file")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	subpixel, err := parseSubpixel(opts.subpixel)
	if err != nil {
		return err
	}
	if opts.size == 0 || opts.size > text.MaxPixelSize {
		return fmt.Errorf("size %d out of range 1..%d", opts.size, text.MaxPixelSize)
	}

	if opts.verbose {
		glyph.SetLogger(newLogger())
	}

	source, err := openFont(opts.fontPath, opts.sysFont, opts.index)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	defer source.Close()

	r := text.NewGlyphRenderer(
		text.WithRasterizer(text.NewDefaultRasterizer(text.WithSubpixelMode(subpixel))),
	)

	img, err := renderLine(r, source.View(), uint32(opts.size), opts.text) // #nosec G115 -- range checked above
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if err := savePNG(opts.output, img); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	s := r.Cache().Stats()
	log.Printf("Saved %s (%dx%d), %d glyphs cached, hit rate %.0f%%, kernel %s\n",
		opts.output, img.Bounds().Dx(), img.Bounds().Dy(), s.Len, 100*s.HitRate(), text.CompositeKernel())
	return nil
}

// parseSubpixel maps the -subpixel flag to a mode.
func parseSubpixel(name string) (text.SubpixelMode, error) {
	switch name {
	case "default", "":
		return text.SubpixelDefault, nil
	case "symmetric":
		return text.SubpixelSymmetric, nil
	default:
		return 0, fmt.Errorf("unknown subpixel mode %q (want default or symmetric)", name)
	}
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if term.IsTerminal(int(os.Stderr.Fd())) { // #nosec G115 -- file descriptor
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func openFont(path, name string, index int) (*text.FontSource, error) {
	switch {
	case path != "":
		return text.LoadFontFile(path, index)
	case name != "":
		return text.LoadSystemFont(name, index)
	default:
		return text.NewFontSource(goregular.TTF, 0)
	}
}

// renderLine renders s left to right on one baseline, dark on light.
func renderLine(r *text.GlyphRenderer, view text.FontView, size uint32, s string) (*image.RGBA, error) {
	fg := text.RGBA(0x20, 0x20, 0x30, 0xff)
	bg := text.RGBA(0xfa, 0xfa, 0xf5, 0xff)

	gids := view.Charmap().MapString(s)
	images := make([]text.GlyphImage, len(gids))
	x, ascent, descent := 0, 0, 0
	xs := make([]int, len(gids))
	for i, gid := range gids {
		img, err := r.Render(view, size, gid, fg, bg)
		if err != nil {
			return nil, err
		}
		adv, err := view.Advance(size, gid)
		if err != nil {
			return nil, err
		}
		images[i], xs[i] = img, x
		x += adv
		if !img.Empty() {
			ascent = max(ascent, img.Top)
			descent = max(descent, img.Height-img.Top)
		}
	}

	pad := int(size) / 4
	dst := image.NewRGBA(image.Rect(0, 0, x+2*pad, ascent+descent+2*pad))
	for i := range dst.Pix {
		dst.Pix[i] = bg[i%4]
	}
	for i, img := range images {
		glyph.Blit(dst, image.Pt(pad+xs[i], pad+ascent), img)
	}
	return dst, nil
}

func savePNG(path string, img image.Image) error {
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

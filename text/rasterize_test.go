package text

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRasterizer_Outline(t *testing.T) {
	view := regularView(t)
	r := NewDefaultRasterizer()

	mask, err := r.Rasterize(view, 64, view.Charmap().Map('A'))
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if mask.Empty() {
		t.Fatal("mask for 'A' is empty")
	}
	if mask.Kind != KindOutline {
		t.Errorf("Kind = %v, want Outline", mask.Kind)
	}
	if mask.Top <= 0 || mask.Top > 64 {
		t.Errorf("Top = %d, want within (0, 64]", mask.Top)
	}
	if mask.Bytes() != mask.Width*mask.Height*4 {
		t.Errorf("Bytes() = %d, want %d", mask.Bytes(), mask.Width*mask.Height*4)
	}

	pix := mask.Pix()
	full := false
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] != pix[i+1] {
			t.Fatalf("pixel %d: alpha %d != green %d", i/4, pix[i+3], pix[i+1])
		}
		if pix[i+1] == 255 {
			full = true
		}
	}
	if !full {
		t.Error("no fully covered pixel in 'A' at 64px")
	}
}

func TestDefaultRasterizer_Descender(t *testing.T) {
	view := regularView(t)
	mask, err := NewDefaultRasterizer().Rasterize(view, 32, view.Charmap().Map('g'))
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	// The mask extends below the baseline.
	if mask.Height <= mask.Top {
		t.Errorf("Height %d <= Top %d for 'g'", mask.Height, mask.Top)
	}
}

func TestDefaultRasterizer_Space(t *testing.T) {
	view := regularView(t)
	mask, err := NewDefaultRasterizer().Rasterize(view, 16, view.Charmap().Map(' '))
	if err != nil {
		t.Fatalf("Rasterize(space) error = %v", err)
	}
	if !mask.Empty() || mask.Bytes() != 0 {
		t.Errorf("space mask = %dx%d, %d bytes, want empty", mask.Width, mask.Height, mask.Bytes())
	}
}

func TestDefaultRasterizer_Errors(t *testing.T) {
	view := regularView(t)
	gidA := view.Charmap().Map('A')

	tests := []struct {
		name string
		view FontView
		size uint32
		gid  GlyphID
		want error
	}{
		{"glyph out of range", view, 16, GlyphID(view.NumGlyphs()), ErrGlyphOutOfRange},
		{"max glyph", view, 16, 0xFFFF, ErrGlyphOutOfRange},
		{"size zero", view, 0, gidA, ErrSizeOutOfRange},
		{"size too large", view, 4096, gidA, ErrSizeOutOfRange},
		{"zero view", FontView{}, 16, gidA, ErrFontClosed},
	}

	r := NewDefaultRasterizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Rasterize(tt.view, tt.size, tt.gid)
			if !errors.Is(err, tt.want) {
				t.Errorf("Rasterize() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefaultRasterizer_MaxSize(t *testing.T) {
	view := regularView(t)
	mask, err := NewDefaultRasterizer().Rasterize(view, MaxPixelSize, view.Charmap().Map('.'))
	if err != nil {
		t.Fatalf("Rasterize(MaxPixelSize) error = %v", err)
	}
	if mask.Empty() {
		t.Error("'.' at MaxPixelSize is empty")
	}
}

func TestDefaultRasterizer_Deterministic(t *testing.T) {
	view := regularView(t)
	gid := view.Charmap().Map('R')

	first, err := NewDefaultRasterizer().Rasterize(view, 24, gid)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	r := NewDefaultRasterizer()
	// Scratch state left by another glyph must not leak into the result.
	if _, err := r.Rasterize(view, 40, view.Charmap().Map('W')); err != nil {
		t.Fatalf("Rasterize('W') error = %v", err)
	}
	second, err := r.Rasterize(view, 24, gid)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	if diff := cmp.Diff(first.Pix(), second.Pix()); diff != "" {
		t.Errorf("pixels differ between runs (-first +second):\n%s", diff)
	}
	if first.Left != second.Left || first.Top != second.Top {
		t.Errorf("placement differs: (%d,%d) vs (%d,%d)", first.Left, first.Top, second.Left, second.Top)
	}
}

func TestDefaultRasterizer_Symmetric(t *testing.T) {
	view := regularView(t)
	gid := view.Charmap().Map('W')

	def, err := NewDefaultRasterizer().Rasterize(view, 20, gid)
	if err != nil {
		t.Fatalf("Rasterize(default) error = %v", err)
	}
	sym, err := NewDefaultRasterizer(WithSubpixelMode(SubpixelSymmetric)).Rasterize(view, 20, gid)
	if err != nil {
		t.Fatalf("Rasterize(symmetric) error = %v", err)
	}

	if def.Width != sym.Width || def.Height != sym.Height || def.Left != sym.Left || def.Top != sym.Top {
		t.Fatalf("geometry differs: %+v vs %+v", def, sym)
	}

	// The default mask holds the raw samples of each pixel, so the
	// symmetric mask can be recomputed from it.
	dp, sp := def.Pix(), sym.Pix()
	stride := def.Stride()
	for y := 0; y < def.Height; y++ {
		row := dp[y*stride : (y+1)*stride]
		sample := func(i int) byte {
			if i < 0 || i >= 3*def.Width {
				return 0
			}
			return row[(i/3)*4+i%3]
		}
		for x := 0; x < def.Width; x++ {
			for c := 0; c < 3; c++ {
				i := 3*x + c
				want := filter121(sample(i-1), sample(i), sample(i+1))
				if got := sp[y*stride+x*4+c]; got != want {
					t.Fatalf("pixel (%d,%d) channel %d = %d, want %d", x, y, c, got, want)
				}
			}
		}
	}

	if got := NewDefaultRasterizer(WithSubpixelMode(SubpixelSymmetric)).SubpixelMode(); got != SubpixelSymmetric {
		t.Errorf("SubpixelMode() = %v, want Symmetric", got)
	}
}

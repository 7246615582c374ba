package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/glyph/internal/blend"
)

// patternMask returns a w×h mask whose bytes cycle through all values.
func patternMask(t testing.TB, w, h int) GlyphMask {
	t.Helper()
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	m, err := NewGlyphMask(w, h, -1, 9, KindOutline, pix)
	if err != nil {
		t.Fatalf("NewGlyphMask() error = %v", err)
	}
	return m
}

func TestComposite_MatchesFormula(t *testing.T) {
	mask := patternMask(t, 37, 5) // odd width exercises the kernel tail
	colors := []struct {
		name       string
		text, dest Color
	}{
		{"black on white", RGBA(0, 0, 0, 255), RGBA(255, 255, 255, 255)},
		{"white on black", RGBA(255, 255, 255, 255), RGBA(0, 0, 0, 255)},
		{"translucent", RGBA(200, 40, 90, 128), RGBA(10, 250, 60, 0)},
		{"transparent text", RGBA(255, 255, 255, 0), RGBA(255, 255, 255, 255)},
	}

	src := mask.Pix()
	for _, tt := range colors {
		t.Run(tt.name, func(t *testing.T) {
			img := Composite(mask, tt.text, tt.dest)
			if img.Width != 37 || img.Height != 5 || img.Left != -1 || img.Top != 9 {
				t.Fatalf("geometry = %dx%d at (%d,%d)", img.Width, img.Height, img.Left, img.Top)
			}
			for i, m := range src {
				c := i % 4
				want := blend.CompositeChannel(tt.text[c], tt.text[3], m, tt.dest[c])
				if img.Pix[i] != want {
					t.Fatalf("byte %d = %d, want %d (m=%d)", i, img.Pix[i], want, m)
				}
			}
		})
	}
}

func TestComposite_BoundaryBias(t *testing.T) {
	full, _ := NewGlyphMask(1, 1, 0, 0, KindOutline, []byte{255, 255, 255, 255})
	none, _ := NewGlyphMask(1, 1, 0, 0, KindOutline, []byte{0, 0, 0, 0})

	// Full coverage and zero coverage both land one step below the input.
	if got := Composite(full, RGBA(200, 100, 50, 255), RGBA(0, 0, 0, 255)).Pix; !cmp.Equal(got, []byte{199, 99, 49, 254}) {
		t.Errorf("full coverage = %v, want [199 99 49 254]", got)
	}
	if got := Composite(none, RGBA(200, 100, 50, 255), RGBA(10, 20, 30, 40)).Pix; !cmp.Equal(got, []byte{9, 19, 29, 39}) {
		t.Errorf("zero coverage = %v, want [9 19 29 39]", got)
	}
}

func TestComposite_Pure(t *testing.T) {
	mask := patternMask(t, 4, 4)
	before := mask.Pix()

	a := Composite(mask, RGBA(1, 2, 3, 255), RGBA(4, 5, 6, 255))
	b := Composite(mask, RGBA(1, 2, 3, 255), RGBA(4, 5, 6, 255))

	if diff := cmp.Diff(before, mask.Pix()); diff != "" {
		t.Errorf("mask modified (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(a.Pix, b.Pix); diff != "" {
		t.Errorf("results differ (-a +b):\n%s", diff)
	}
	a.Pix[0] ^= 0xFF
	if a.Pix[0] == b.Pix[0] {
		t.Error("results share a buffer")
	}
}

func TestComposite_Empty(t *testing.T) {
	img := Composite(GlyphMask{Left: 3, Top: 4}, RGBA(0, 0, 0, 255), RGBA(255, 255, 255, 255))
	if !img.Empty() || img.Pix != nil || img.Left != 3 || img.Top != 4 {
		t.Errorf("Composite(empty) = %+v", img)
	}
}

func TestCompositeKernel(t *testing.T) {
	switch k := CompositeKernel(); k {
	case "scalar", "wide":
	default:
		t.Errorf("CompositeKernel() = %q", k)
	}
}

func TestNewGlyphMask(t *testing.T) {
	if _, err := NewGlyphMask(2, 2, 0, 0, KindOutline, make([]byte, 15)); err == nil {
		t.Error("NewGlyphMask with short pixels succeeded")
	}
	if _, err := NewGlyphMask(-1, 0, 0, 0, KindOutline, nil); err == nil {
		t.Error("NewGlyphMask with negative width succeeded")
	}

	pix := []byte{1, 2, 3, 4}
	m, err := NewGlyphMask(1, 1, 0, 0, KindColor, pix)
	if err != nil {
		t.Fatalf("NewGlyphMask() error = %v", err)
	}
	pix[0] = 99
	if m.Pix()[0] != 1 {
		t.Error("mask aliases the caller's slice")
	}
	m.Pix()[1] = 99
	if m.Pix()[1] != 2 {
		t.Error("Pix() exposes the mask's buffer")
	}
	if m.Stride() != 4 || m.Bytes() != 4 {
		t.Errorf("Stride() = %d, Bytes() = %d", m.Stride(), m.Bytes())
	}
}

func TestGlyphImage_ToRGBA(t *testing.T) {
	img := GlyphImage{Width: 2, Height: 1, Pix: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	rgba := img.ToRGBA()
	if rgba.Bounds().Dx() != 2 || rgba.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", rgba.Bounds())
	}
	if diff := cmp.Diff(img.Pix, rgba.Pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
	rgba.Pix[0] = 0
	if img.Pix[0] != 1 {
		t.Error("ToRGBA shares the image buffer")
	}
}

func TestGlyphImage_SwizzleABGR(t *testing.T) {
	img := GlyphImage{Width: 2, Height: 1, Left: 5, Pix: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	got := img.SwizzleABGR()
	if diff := cmp.Diff([]byte{4, 3, 2, 1, 8, 7, 6, 5}, got.Pix); diff != "" {
		t.Errorf("SwizzleABGR mismatch (-want +got):\n%s", diff)
	}
	if got.Left != 5 || img.Pix[0] != 1 {
		t.Error("SwizzleABGR changed placement or the source")
	}
}

func TestMaskKind_String(t *testing.T) {
	if KindOutline.String() != "Outline" || KindColor.String() != "Color" || MaskKind(7).String() != "Unknown" {
		t.Error("MaskKind.String() mismatch")
	}
}

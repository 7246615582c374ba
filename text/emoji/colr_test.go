package emoji

import (
	"errors"
	"reflect"
	"testing"
)

type baseSpec struct {
	gid    uint16
	layers []Layer
}

// makeCOLR builds a version 0 COLR table with bases in the given order.
func makeCOLR(bases []baseSpec) []byte {
	numLayers := 0
	for _, b := range bases {
		numLayers += len(b.layers)
	}

	w := &tableWriter{}
	w.u16(0)
	w.u16(uint16(len(bases)))
	w.u32(14)
	w.u32(uint32(14 + 6*len(bases)))
	w.u16(uint16(numLayers))

	first := 0
	for _, b := range bases {
		w.u16(b.gid)
		w.u16(uint16(first))
		w.u16(uint16(len(b.layers)))
		first += len(b.layers)
	}
	for _, b := range bases {
		for _, l := range b.layers {
			w.u16(l.GlyphID)
			w.u16(l.PaletteIndex)
		}
	}
	return w.buf
}

// makeCPAL builds a CPAL table; palettes share one record array.
func makeCPAL(palettes [][]Color) []byte {
	numEntries := 0
	if len(palettes) > 0 {
		numEntries = len(palettes[0])
	}

	w := &tableWriter{}
	w.u16(0)
	w.u16(uint16(numEntries))
	w.u16(uint16(len(palettes)))
	w.u16(uint16(numEntries * len(palettes)))
	w.u32(uint32(12 + 2*len(palettes)))
	for i := range palettes {
		w.u16(uint16(i * numEntries))
	}
	for _, p := range palettes {
		for _, c := range p {
			w.u8(c.B)
			w.u8(c.G)
			w.u8(c.R)
			w.u8(c.A)
		}
	}
	return w.buf
}

func TestColor_RGBA(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0, A: 128}
	r, g, b, a := c.RGBA()

	// Straight alpha, so RGBA() premultiplies.
	if a != 128*257 {
		t.Errorf("a = %d, want %d", a, 128*257)
	}
	if r != 255*257*(128*257)/0xffff {
		t.Errorf("r = %d, want premultiplied", r)
	}
	if g >= 128*257 || b != 0 {
		t.Errorf("g, b = %d, %d, want premultiplied", g, b)
	}
}

func TestLayer_IsForeground(t *testing.T) {
	tests := []struct {
		name string
		idx  uint16
		want bool
	}{
		{"foreground", ForegroundIndex, true},
		{"palette 0", 0, false},
		{"palette 10", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Layer{PaletteIndex: tt.idx}).IsForeground(); got != tt.want {
				t.Errorf("IsForeground() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCOLR(t *testing.T) {
	data := makeCOLR([]baseSpec{
		{gid: 5, layers: []Layer{{GlyphID: 50, PaletteIndex: 0}, {GlyphID: 51, PaletteIndex: ForegroundIndex}}},
		{gid: 9, layers: []Layer{{GlyphID: 90, PaletteIndex: 1}}},
	})

	c, err := ParseCOLR(data)
	if err != nil {
		t.Fatalf("ParseCOLR() error = %v", err)
	}
	if c.Version() != 0 {
		t.Errorf("Version() = %d, want 0", c.Version())
	}
	if c.NumBaseGlyphs() != 2 {
		t.Errorf("NumBaseGlyphs() = %d, want 2", c.NumBaseGlyphs())
	}

	want := []Layer{{GlyphID: 50, PaletteIndex: 0}, {GlyphID: 51, PaletteIndex: ForegroundIndex}}
	if got := c.Layers(5); !reflect.DeepEqual(got, want) {
		t.Errorf("Layers(5) = %v, want %v", got, want)
	}
	if got := c.Layers(9); len(got) != 1 || got[0].GlyphID != 90 {
		t.Errorf("Layers(9) = %v", got)
	}
	if got := c.Layers(6); got != nil {
		t.Errorf("Layers(6) = %v, want nil", got)
	}
}

func TestParseCOLR_Unsorted(t *testing.T) {
	data := makeCOLR([]baseSpec{
		{gid: 30, layers: []Layer{{GlyphID: 300}}},
		{gid: 10, layers: []Layer{{GlyphID: 100}}},
		{gid: 20, layers: []Layer{{GlyphID: 200}}},
	})

	c, err := ParseCOLR(data)
	if err != nil {
		t.Fatalf("ParseCOLR() error = %v", err)
	}
	for _, gid := range []uint16{10, 20, 30} {
		layers := c.Layers(gid)
		if len(layers) != 1 || layers[0].GlyphID != gid*10 {
			t.Errorf("Layers(%d) = %v", gid, layers)
		}
	}
}

func TestParseCOLR_Errors(t *testing.T) {
	valid := makeCOLR([]baseSpec{{gid: 1, layers: []Layer{{GlyphID: 2}}}})

	badVersion := append([]byte(nil), valid...)
	badVersion[1] = 2

	badRange := append([]byte(nil), valid...)
	badRange[14+5] = 9 // numLayers of the only base glyph

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrNoCOLRTable},
		{"short header", valid[:10], ErrInvalidCOLRData},
		{"truncated records", valid[:len(valid)-1], ErrInvalidCOLRData},
		{"version 2", badVersion, ErrUnsupportedCOLRVersion},
		{"layer range", badRange, ErrInvalidCOLRData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCOLR(tt.data); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseCOLR() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCPAL(t *testing.T) {
	red := Color{R: 255, A: 255}
	blue := Color{B: 255, A: 128}
	data := makeCPAL([][]Color{{red, blue}, {blue, red}})

	p, err := ParseCPAL(data)
	if err != nil {
		t.Fatalf("ParseCPAL() error = %v", err)
	}
	if p.NumPalettes() != 2 {
		t.Fatalf("NumPalettes() = %d, want 2", p.NumPalettes())
	}
	if got := p.Palette(0); !reflect.DeepEqual(got, Palette{red, blue}) {
		t.Errorf("Palette(0) = %v", got)
	}
	if got := p.Palette(1); !reflect.DeepEqual(got, Palette{blue, red}) {
		t.Errorf("Palette(1) = %v", got)
	}
	if p.Palette(2) != nil || p.Palette(-1) != nil {
		t.Error("Palette() out of range should be nil")
	}
}

func TestParseCPAL_Errors(t *testing.T) {
	valid := makeCPAL([][]Color{{{R: 1, A: 255}}})

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrNoCPALTable},
		{"short header", valid[:8], ErrInvalidCPALData},
		{"truncated records", valid[:len(valid)-2], ErrInvalidCPALData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCPAL(tt.data); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseCPAL() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPalette_Resolve(t *testing.T) {
	white := Color{R: 255, G: 255, B: 255, A: 255}
	pal := Palette{{R: 10, A: 255}, {G: 20, A: 255}}

	tests := []struct {
		name  string
		layer Layer
		want  Color
	}{
		{"entry 0", Layer{PaletteIndex: 0}, pal[0]},
		{"entry 1", Layer{PaletteIndex: 1}, pal[1]},
		{"foreground", Layer{PaletteIndex: ForegroundIndex}, white},
		{"out of range", Layer{PaletteIndex: 7}, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.Resolve(tt.layer, white); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

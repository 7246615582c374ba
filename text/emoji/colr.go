package emoji

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// COLR/CPAL table errors.
var (
	// ErrNoCOLRTable indicates the font doesn't have a COLR table.
	ErrNoCOLRTable = errors.New("emoji: font has no COLR table")

	// ErrNoCPALTable indicates the font doesn't have a CPAL table.
	ErrNoCPALTable = errors.New("emoji: font has no CPAL table")

	// ErrInvalidCOLRData indicates the COLR table data is malformed.
	ErrInvalidCOLRData = errors.New("emoji: invalid COLR table data")

	// ErrInvalidCPALData indicates the CPAL table data is malformed.
	ErrInvalidCPALData = errors.New("emoji: invalid CPAL table data")

	// ErrUnsupportedCOLRVersion indicates a COLR version newer than 1.
	ErrUnsupportedCOLRVersion = errors.New("emoji: unsupported COLR version")
)

// ForegroundIndex is the palette index that selects the text color.
const ForegroundIndex = 0xFFFF

// Color is a straight-alpha color from a CPAL palette.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color. CPAL colors are not premultiplied, so the
// color channels are scaled by alpha here.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Layer is one outline of a COLR color glyph.
type Layer struct {
	// GlyphID is the outline glyph painted by this layer.
	GlyphID uint16

	// PaletteIndex selects the layer color, or ForegroundIndex.
	PaletteIndex uint16
}

// IsForeground reports whether the layer is painted with the text color.
func (l Layer) IsForeground() bool {
	return l.PaletteIndex == ForegroundIndex
}

// COLR holds the version 0 layer records of a COLR table.
// Version 1 tables are accepted; their paint graphs are ignored and only
// the version 0 base glyph list is used.
type COLR struct {
	version uint16
	bases   []baseGlyphRecord
	layers  []Layer
}

type baseGlyphRecord struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

// ParseCOLR parses the header, base glyph records and layer records of a
// COLR table. Every base glyph's layer range is validated here, so lookups
// never fail afterwards.
func ParseCOLR(data []byte) (*COLR, error) {
	if len(data) == 0 {
		return nil, ErrNoCOLRTable
	}
	if len(data) < 14 {
		return nil, ErrInvalidCOLRData
	}

	c := &COLR{version: binary.BigEndian.Uint16(data[0:2])}
	if c.version > 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCOLRVersion, c.version)
	}

	numBase := int(binary.BigEndian.Uint16(data[2:4]))
	baseOffset := int(binary.BigEndian.Uint32(data[4:8]))
	layerOffset := int(binary.BigEndian.Uint32(data[8:12]))
	numLayers := int(binary.BigEndian.Uint16(data[12:14]))

	if baseOffset+numBase*6 > len(data) || layerOffset+numLayers*4 > len(data) {
		return nil, ErrInvalidCOLRData
	}

	c.layers = make([]Layer, numLayers)
	for i := range c.layers {
		rec := data[layerOffset+i*4:]
		c.layers[i] = Layer{
			GlyphID:      binary.BigEndian.Uint16(rec[0:2]),
			PaletteIndex: binary.BigEndian.Uint16(rec[2:4]),
		}
	}

	c.bases = make([]baseGlyphRecord, numBase)
	for i := range c.bases {
		rec := data[baseOffset+i*6:]
		b := baseGlyphRecord{
			glyphID:    binary.BigEndian.Uint16(rec[0:2]),
			firstLayer: binary.BigEndian.Uint16(rec[2:4]),
			numLayers:  binary.BigEndian.Uint16(rec[4:6]),
		}
		if int(b.firstLayer)+int(b.numLayers) > numLayers {
			return nil, fmt.Errorf("%w: glyph %d layers out of range", ErrInvalidCOLRData, b.glyphID)
		}
		c.bases[i] = b
	}

	// The table is required to be sorted; fonts in the wild occasionally aren't.
	if !slices.IsSortedFunc(c.bases, compareBase) {
		slices.SortFunc(c.bases, compareBase)
	}

	return c, nil
}

func compareBase(a, b baseGlyphRecord) int {
	return int(a.glyphID) - int(b.glyphID)
}

// Version returns the table version.
func (c *COLR) Version() uint16 {
	return c.version
}

// NumBaseGlyphs returns the number of color glyphs in the table.
func (c *COLR) NumBaseGlyphs() int {
	return len(c.bases)
}

// Layers returns the layers of a color glyph, bottom to top.
// Returns nil if gid is not a color glyph. The slice must not be modified.
func (c *COLR) Layers(gid uint16) []Layer {
	i, found := slices.BinarySearchFunc(c.bases, gid, func(b baseGlyphRecord, id uint16) int {
		return int(b.glyphID) - int(id)
	})
	if !found {
		return nil
	}
	b := c.bases[i]
	return c.layers[b.firstLayer : int(b.firstLayer)+int(b.numLayers) : int(b.firstLayer)+int(b.numLayers)]
}

// Palette is one CPAL color palette.
type Palette []Color

// Resolve returns the color of a layer. Foreground layers and indices
// outside the palette take the foreground color.
func (p Palette) Resolve(l Layer, foreground Color) Color {
	if l.IsForeground() || int(l.PaletteIndex) >= len(p) {
		return foreground
	}
	return p[l.PaletteIndex]
}

// CPAL holds the palettes of a CPAL table.
type CPAL struct {
	palettes []Palette
}

// ParseCPAL parses the palettes of a CPAL table (version 0 or 1; the
// version 1 label arrays are not read).
func ParseCPAL(data []byte) (*CPAL, error) {
	if len(data) == 0 {
		return nil, ErrNoCPALTable
	}
	if len(data) < 12 {
		return nil, ErrInvalidCPALData
	}

	numEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	numRecords := int(binary.BigEndian.Uint16(data[6:8]))
	recordsOffset := int(binary.BigEndian.Uint32(data[8:12]))

	if 12+numPalettes*2 > len(data) || recordsOffset+numRecords*4 > len(data) {
		return nil, ErrInvalidCPALData
	}

	p := &CPAL{palettes: make([]Palette, numPalettes)}
	for i := range p.palettes {
		first := int(binary.BigEndian.Uint16(data[12+i*2:]))
		if first+numEntries > numRecords {
			return nil, fmt.Errorf("%w: palette %d out of range", ErrInvalidCPALData, i)
		}
		pal := make(Palette, numEntries)
		for j := range pal {
			rec := data[recordsOffset+(first+j)*4:]
			// Records are stored blue, green, red, alpha.
			pal[j] = Color{B: rec[0], G: rec[1], R: rec[2], A: rec[3]}
		}
		p.palettes[i] = pal
	}

	return p, nil
}

// NumPalettes returns the number of palettes.
func (p *CPAL) NumPalettes() int {
	return len(p.palettes)
}

// Palette returns palette i, or nil if out of range.
func (p *CPAL) Palette(i int) Palette {
	if i < 0 || i >= len(p.palettes) {
		return nil
	}
	return p.palettes[i]
}

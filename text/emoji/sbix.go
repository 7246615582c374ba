package emoji

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// sbix table errors.
var (
	// ErrNoSBIXTable indicates the font doesn't have an sbix table.
	ErrNoSBIXTable = errors.New("emoji: font has no sbix table")

	// ErrInvalidSBIXData indicates the sbix table data is malformed.
	ErrInvalidSBIXData = errors.New("emoji: invalid sbix table data")
)

// SBIX reads glyph images from an sbix table.
type SBIX struct {
	data      []byte
	numGlyphs int
	strikes   []sbixStrike
}

type sbixStrike struct {
	ppem    uint16
	offset  int
	offsets []uint32 // relative to the strike, numGlyphs+1 entries
}

// ParseSBIX parses the strike list of an sbix table. numGlyphs is the
// font's glyph count from maxp; it sizes each strike's offset array.
func ParseSBIX(data []byte, numGlyphs int) (*SBIX, error) {
	if len(data) == 0 {
		return nil, ErrNoSBIXTable
	}
	if len(data) < 8 || numGlyphs < 0 {
		return nil, ErrInvalidSBIXData
	}
	if v := binary.BigEndian.Uint16(data[0:2]); v != 1 {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidSBIXData, v)
	}

	numStrikes := int(binary.BigEndian.Uint32(data[4:8]))
	if 8+numStrikes*4 > len(data) {
		return nil, ErrInvalidSBIXData
	}

	p := &SBIX{data: data, numGlyphs: numGlyphs, strikes: make([]sbixStrike, numStrikes)}
	for i := range p.strikes {
		off := int(binary.BigEndian.Uint32(data[8+i*4:]))
		if off+4+(numGlyphs+1)*4 > len(data) {
			return nil, fmt.Errorf("%w: strike %d out of range", ErrInvalidSBIXData, i)
		}
		s := &p.strikes[i]
		s.offset = off
		s.ppem = binary.BigEndian.Uint16(data[off:])
		s.offsets = make([]uint32, numGlyphs+1)
		for g := range s.offsets {
			s.offsets[g] = binary.BigEndian.Uint32(data[off+4+g*4:])
		}
	}

	return p, nil
}

// NumStrikes returns the number of bitmap strikes.
func (p *SBIX) NumStrikes() int {
	return len(p.strikes)
}

// PPEMs returns the pixels-per-em of every strike, in table order.
func (p *SBIX) PPEMs() []uint16 {
	ppems := make([]uint16, len(p.strikes))
	for i := range p.strikes {
		ppems[i] = p.strikes[i].ppem
	}
	return ppems
}

// HasGlyph reports whether strike index has a record for gid.
func (p *SBIX) HasGlyph(gid uint16, index int) bool {
	_, ok := p.record(gid, index)
	return ok
}

func (p *SBIX) record(gid uint16, index int) ([]byte, bool) {
	if index < 0 || index >= len(p.strikes) || int(gid) >= p.numGlyphs {
		return nil, false
	}
	s := &p.strikes[index]
	start, end := uint64(s.offsets[gid]), uint64(s.offsets[gid+1])
	// A record needs the 8-byte header plus some data.
	if end <= start || end-start <= 8 || uint64(s.offset)+end > uint64(len(p.data)) {
		return nil, false
	}
	return p.data[uint64(s.offset)+start : uint64(s.offset)+end], true
}

// Glyph returns the image for gid from the best-fit strike for ppem,
// considering only strikes that contain the glyph.
func (p *SBIX) Glyph(gid, ppem uint16) (*BitmapGlyph, error) {
	if len(p.strikes) == 0 {
		return nil, ErrNoStrikeAvailable
	}
	i := BestFit(p.PPEMs(), ppem, func(i int) bool { return p.HasGlyph(gid, i) })
	if i < 0 {
		return nil, ErrGlyphNotInBitmap
	}
	return p.GlyphAtStrike(gid, i)
}

// GlyphAtStrike returns the image for gid from strike index.
// A "dupe" record is followed once to the glyph it references.
func (p *SBIX) GlyphAtStrike(gid uint16, index int) (*BitmapGlyph, error) {
	rec, ok := p.record(gid, index)
	if !ok {
		return nil, ErrGlyphNotInBitmap
	}

	if string(rec[4:8]) == "dupe" {
		if len(rec) < 10 {
			return nil, ErrInvalidSBIXData
		}
		target := binary.BigEndian.Uint16(rec[8:10])
		if rec, ok = p.record(target, index); !ok || string(rec[4:8]) == "dupe" {
			return nil, ErrGlyphNotInBitmap
		}
	}

	var format BitmapFormat
	switch tag := string(rec[4:8]); tag {
	case "png ":
		format = FormatPNG
	case "jpg ":
		format = FormatJPEG
	case "tiff":
		format = FormatTIFF
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBitmapFormat, tag)
	}

	g := &BitmapGlyph{
		GlyphID: gid,
		Data:    rec[8:],
		Format:  format,
		PPEM:    p.strikes[index].ppem,
	}

	// #nosec G115 -- signed font fields
	originX := int(int16(binary.BigEndian.Uint16(rec[0:2])))
	// #nosec G115 -- signed font fields
	originY := int(int16(binary.BigEndian.Uint16(rec[2:4])))

	if format != FormatTIFF {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(g.Data))
		if err != nil {
			return nil, fmt.Errorf("emoji: sbix glyph %d: %w", gid, err)
		}
		g.Width, g.Height = cfg.Width, cfg.Height
	}

	// The origin offset locates the bottom-left corner of the image.
	g.BearingX = originX
	g.BearingY = originY + g.Height

	return g, nil
}

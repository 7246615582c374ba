package emoji

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// CBDT/CBLC table errors.
var (
	// ErrNoCBDTTable indicates the font doesn't have a CBDT table.
	ErrNoCBDTTable = errors.New("emoji: font has no CBDT table")

	// ErrNoCBLCTable indicates the font doesn't have a CBLC table.
	ErrNoCBLCTable = errors.New("emoji: font has no CBLC table")

	// ErrInvalidCBDTData indicates the CBDT table data is malformed.
	ErrInvalidCBDTData = errors.New("emoji: invalid CBDT table data")

	// ErrInvalidCBLCData indicates the CBLC table data is malformed.
	ErrInvalidCBLCData = errors.New("emoji: invalid CBLC table data")

	// ErrUnsupportedIndexFormat indicates an unsupported index subtable format.
	ErrUnsupportedIndexFormat = errors.New("emoji: unsupported index subtable format")

	// ErrUnsupportedImageFormat indicates an image format other than 17, 18 or 19.
	ErrUnsupportedImageFormat = errors.New("emoji: unsupported image format")
)

const (
	cblcMajorVersion     = 3
	bitmapSizeRecordSize = 48
)

// CBDT locates PNG glyph images through a CBLC index. All index subtables
// are parsed up front, so a CBDT is read-only after construction.
type CBDT struct {
	data    []byte // CBDT table
	strikes []cblcStrike
}

type cblcStrike struct {
	ppem       uint16
	startGlyph uint16
	endGlyph   uint16
	subtables  []indexSubtable
}

type indexSubtable struct {
	first, last uint16
	indexFormat uint16
	imageFormat uint16
	imageOffset uint32

	offsets   []uint32          // formats 1 and 3, one past the last glyph
	imageSize uint32            // formats 2 and 5
	metrics   *bigGlyphMetrics  // formats 2 and 5
	pairs     []glyphOffsetPair // format 4, with end marker
	glyphIDs  []uint16          // format 5
}

type glyphOffsetPair struct {
	glyphID uint16
	offset  uint16
}

// bigGlyphMetrics keeps only the horizontal half of BigGlyphMetrics.
type bigGlyphMetrics struct {
	height, width uint8
	bearingX      int8
	bearingY      int8
}

func readBigMetrics(b []byte) bigGlyphMetrics {
	return bigGlyphMetrics{
		height:   b[0],
		width:    b[1],
		bearingX: int8(b[2]), // #nosec G115 -- signed font field
		bearingY: int8(b[3]), // #nosec G115 -- signed font field
	}
}

// ParseCBDT parses a CBLC index and pairs it with its CBDT data table.
func ParseCBDT(cbdtData, cblcData []byte) (*CBDT, error) {
	if len(cbdtData) == 0 {
		return nil, ErrNoCBDTTable
	}
	if len(cblcData) == 0 {
		return nil, ErrNoCBLCTable
	}
	if len(cblcData) < 8 {
		return nil, ErrInvalidCBLCData
	}

	major := binary.BigEndian.Uint16(cblcData[0:2])
	if major != cblcMajorVersion {
		return nil, fmt.Errorf("emoji: unsupported CBLC version %d.%d",
			major, binary.BigEndian.Uint16(cblcData[2:4]))
	}

	numSizes := int(binary.BigEndian.Uint32(cblcData[4:8]))
	if 8+numSizes*bitmapSizeRecordSize > len(cblcData) {
		return nil, ErrInvalidCBLCData
	}

	t := &CBDT{data: cbdtData, strikes: make([]cblcStrike, numSizes)}
	for i := range t.strikes {
		rec := cblcData[8+i*bitmapSizeRecordSize:]
		s := &t.strikes[i]
		listOffset := int(binary.BigEndian.Uint32(rec[0:4]))
		numSubtables := int(binary.BigEndian.Uint32(rec[8:12]))
		// rec[12:40] holds colorRef and the line metrics, which are unused.
		s.startGlyph = binary.BigEndian.Uint16(rec[40:42])
		s.endGlyph = binary.BigEndian.Uint16(rec[42:44])
		s.ppem = uint16(rec[44])

		subtables, err := parseIndexSubtables(cblcData, listOffset, numSubtables)
		if err != nil {
			return nil, fmt.Errorf("emoji: strike %d: %w", i, err)
		}
		s.subtables = subtables
	}

	return t, nil
}

func parseIndexSubtables(data []byte, listOffset, count int) ([]indexSubtable, error) {
	if listOffset+count*8 > len(data) {
		return nil, ErrInvalidCBLCData
	}

	out := make([]indexSubtable, count)
	for i := range out {
		rec := data[listOffset+i*8:]
		ist := &out[i]
		ist.first = binary.BigEndian.Uint16(rec[0:2])
		ist.last = binary.BigEndian.Uint16(rec[2:4])
		if ist.last < ist.first {
			return nil, ErrInvalidCBLCData
		}
		off := listOffset + int(binary.BigEndian.Uint32(rec[4:8]))
		if err := parseIndexSubtable(data, off, ist); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parseIndexSubtable(data []byte, off int, ist *indexSubtable) error {
	if off+8 > len(data) {
		return ErrInvalidCBLCData
	}
	ist.indexFormat = binary.BigEndian.Uint16(data[off:])
	ist.imageFormat = binary.BigEndian.Uint16(data[off+2:])
	ist.imageOffset = binary.BigEndian.Uint32(data[off+4:])

	body := off + 8
	n := int(ist.last) - int(ist.first) + 1

	switch ist.indexFormat {
	case 1: // variable metrics, 32-bit offsets
		if body+(n+1)*4 > len(data) {
			return ErrInvalidCBLCData
		}
		ist.offsets = make([]uint32, n+1)
		for i := range ist.offsets {
			ist.offsets[i] = binary.BigEndian.Uint32(data[body+i*4:])
		}

	case 3: // variable metrics, 16-bit offsets
		if body+(n+1)*2 > len(data) {
			return ErrInvalidCBLCData
		}
		ist.offsets = make([]uint32, n+1)
		for i := range ist.offsets {
			ist.offsets[i] = uint32(binary.BigEndian.Uint16(data[body+i*2:]))
		}

	case 2, 5: // constant metrics
		if body+12 > len(data) {
			return ErrInvalidCBLCData
		}
		ist.imageSize = binary.BigEndian.Uint32(data[body:])
		m := readBigMetrics(data[body+4:])
		ist.metrics = &m
		if ist.indexFormat == 2 {
			return nil
		}
		if body+16 > len(data) {
			return ErrInvalidCBLCData
		}
		count := int(binary.BigEndian.Uint32(data[body+12:]))
		ids := body + 16
		if ids+count*2 > len(data) {
			return ErrInvalidCBLCData
		}
		ist.glyphIDs = make([]uint16, count)
		for i := range ist.glyphIDs {
			ist.glyphIDs[i] = binary.BigEndian.Uint16(data[ids+i*2:])
		}

	case 4: // variable metrics, sparse glyph IDs
		if body+4 > len(data) {
			return ErrInvalidCBLCData
		}
		count := int(binary.BigEndian.Uint32(data[body:])) + 1
		pairs := body + 4
		if pairs+count*4 > len(data) {
			return ErrInvalidCBLCData
		}
		ist.pairs = make([]glyphOffsetPair, count)
		for i := range ist.pairs {
			ist.pairs[i] = glyphOffsetPair{
				glyphID: binary.BigEndian.Uint16(data[pairs+i*4:]),
				offset:  binary.BigEndian.Uint16(data[pairs+i*4+2:]),
			}
		}

	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedIndexFormat, ist.indexFormat)
	}

	return nil
}

// locate returns the CBDT byte range of a glyph's image record.
// The range is computed in 64 bits so that large offsets cannot wrap.
func (ist *indexSubtable) locate(gid uint16) (start, end uint64, ok bool) {
	idx := int(gid) - int(ist.first)

	switch ist.indexFormat {
	case 1, 3:
		if idx < 0 || idx+1 >= len(ist.offsets) {
			return 0, 0, false
		}
		start, end = uint64(ist.offsets[idx]), uint64(ist.offsets[idx+1])
	case 2:
		if idx < 0 || gid > ist.last {
			return 0, 0, false
		}
		start = uint64(idx) * uint64(ist.imageSize) // #nosec G115 -- idx checked non-negative
		end = start + uint64(ist.imageSize)
	case 4:
		for i := 0; i+1 < len(ist.pairs); i++ {
			if ist.pairs[i].glyphID == gid {
				start, end = uint64(ist.pairs[i].offset), uint64(ist.pairs[i+1].offset)
				break
			}
		}
	case 5:
		for i, id := range ist.glyphIDs {
			if id == gid {
				start = uint64(i) * uint64(ist.imageSize) // #nosec G115 -- small array index
				end = start + uint64(ist.imageSize)
				break
			}
		}
	}

	if end <= start {
		return 0, 0, false
	}
	base := uint64(ist.imageOffset)
	return base + start, base + end, true
}

func (s *cblcStrike) find(gid uint16) *indexSubtable {
	if gid < s.startGlyph || gid > s.endGlyph {
		return nil
	}
	for i := range s.subtables {
		ist := &s.subtables[i]
		if gid < ist.first || gid > ist.last {
			continue
		}
		if _, _, ok := ist.locate(gid); ok {
			return ist
		}
	}
	return nil
}

// NumStrikes returns the number of bitmap strikes.
func (t *CBDT) NumStrikes() int {
	return len(t.strikes)
}

// PPEMs returns the pixels-per-em of every strike, in table order.
func (t *CBDT) PPEMs() []uint16 {
	ppems := make([]uint16, len(t.strikes))
	for i := range t.strikes {
		ppems[i] = t.strikes[i].ppem
	}
	return ppems
}

// HasGlyph reports whether any strike has an image for gid.
func (t *CBDT) HasGlyph(gid uint16) bool {
	for i := range t.strikes {
		if t.strikes[i].find(gid) != nil {
			return true
		}
	}
	return false
}

// Glyph returns the image for gid from the best-fit strike for ppem,
// considering only strikes that contain the glyph.
func (t *CBDT) Glyph(gid, ppem uint16) (*BitmapGlyph, error) {
	if len(t.strikes) == 0 {
		return nil, ErrNoStrikeAvailable
	}
	i := BestFit(t.PPEMs(), ppem, func(i int) bool { return t.strikes[i].find(gid) != nil })
	if i < 0 {
		return nil, ErrGlyphNotInBitmap
	}
	return t.GlyphAtStrike(gid, i)
}

// GlyphAtStrike returns the image for gid from strike index.
func (t *CBDT) GlyphAtStrike(gid uint16, index int) (*BitmapGlyph, error) {
	if index < 0 || index >= len(t.strikes) {
		return nil, ErrNoStrikeAvailable
	}
	strike := &t.strikes[index]
	ist := strike.find(gid)
	if ist == nil {
		return nil, ErrGlyphNotInBitmap
	}
	start, end, _ := ist.locate(gid)
	if start >= end || end > uint64(len(t.data)) {
		return nil, ErrInvalidCBDTData
	}
	rec := t.data[start:end]

	g := &BitmapGlyph{GlyphID: gid, Format: FormatPNG, PPEM: strike.ppem}

	var m bigGlyphMetrics
	var payload []byte
	switch ist.imageFormat {
	case 17: // SmallGlyphMetrics + PNG
		if len(rec) < 9 {
			return nil, ErrInvalidCBDTData
		}
		m = readBigMetrics(rec[0:4])
		payload = rec[5:]
	case 18: // BigGlyphMetrics + PNG
		if len(rec) < 12 {
			return nil, ErrInvalidCBDTData
		}
		m = readBigMetrics(rec[0:4])
		payload = rec[8:]
	case 19: // metrics in CBLC, PNG only
		if len(rec) < 4 || ist.metrics == nil {
			return nil, ErrInvalidCBDTData
		}
		m = *ist.metrics
		payload = rec
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedImageFormat, ist.imageFormat)
	}

	n := binary.BigEndian.Uint32(payload[0:4])
	if uint64(n)+4 > uint64(len(payload)) {
		return nil, ErrInvalidCBDTData
	}
	g.Data = payload[4 : 4+n]
	g.Width = int(m.width)
	g.Height = int(m.height)
	g.BearingX = int(m.bearingX)
	g.BearingY = int(m.bearingY)

	return g, nil
}

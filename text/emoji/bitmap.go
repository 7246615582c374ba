package emoji

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // sbix "jpg " graphics
	_ "image/png"  // CBDT and sbix "png " graphics
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Bitmap table errors.
var (
	// ErrGlyphNotInBitmap indicates the glyph has no bitmap data.
	ErrGlyphNotInBitmap = errors.New("emoji: glyph not found in bitmap table")

	// ErrUnsupportedBitmapFormat indicates a bitmap encoding that cannot be decoded.
	ErrUnsupportedBitmapFormat = errors.New("emoji: unsupported bitmap format")

	// ErrNoStrikeAvailable indicates the table has no bitmap strikes.
	ErrNoStrikeAvailable = errors.New("emoji: no bitmap strike available")
)

// BitmapFormat indicates the encoding of embedded bitmap data.
type BitmapFormat int

const (
	// FormatPNG is PNG-compressed bitmap data.
	FormatPNG BitmapFormat = iota

	// FormatJPEG is JPEG-compressed bitmap data.
	FormatJPEG

	// FormatTIFF is TIFF-compressed bitmap data.
	FormatTIFF
)

var bitmapFormatNames = [...]string{
	FormatPNG:  "PNG",
	FormatJPEG: "JPEG",
	FormatTIFF: "TIFF",
}

// String returns the name of the bitmap format.
func (f BitmapFormat) String() string {
	if f >= 0 && int(f) < len(bitmapFormatNames) {
		return bitmapFormatNames[f]
	}
	return unknownStr
}

// BitmapGlyph is one glyph image taken from a CBDT or sbix strike.
//
// Placement is in strike pixels: BearingX is the distance from the glyph
// origin to the left edge of the image, BearingY the distance from the
// baseline up to the top edge.
type BitmapGlyph struct {
	// GlyphID is the glyph this bitmap represents.
	GlyphID uint16

	// Data holds the encoded image. It aliases the table bytes.
	Data []byte

	// Format indicates how Data is encoded.
	Format BitmapFormat

	// Width and Height are the image size in strike pixels.
	Width, Height int

	BearingX, BearingY int

	// PPEM is the pixels-per-em of the strike the bitmap came from.
	PPEM uint16
}

// Decode decodes the bitmap data.
func (b *BitmapGlyph) Decode() (image.Image, error) {
	switch b.Format {
	case FormatPNG, FormatJPEG:
		img, _, err := image.Decode(bytes.NewReader(b.Data))
		if err != nil {
			return nil, err
		}
		return img, nil
	default:
		return nil, ErrUnsupportedBitmapFormat
	}
}

// BestFit returns the index of the strike to use for the requested ppem:
// the smallest eligible strike with ppems[i] >= want, otherwise the largest
// eligible strike. eligible may be nil to consider every strike.
// Returns -1 if no strike is eligible.
func BestFit(ppems []uint16, want uint16, eligible func(i int) bool) int {
	larger, largest := -1, -1
	for i, p := range ppems {
		if eligible != nil && !eligible(i) {
			continue
		}
		if largest < 0 || p > ppems[largest] {
			largest = i
		}
		if p >= want && (larger < 0 || p < ppems[larger]) {
			larger = i
		}
	}
	if larger >= 0 {
		return larger
	}
	return largest
}

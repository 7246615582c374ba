package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFaceIndex is returned when a face index does not name a
	// face in the font file. The concrete error is a *FaceIndexError.
	ErrInvalidFaceIndex = errors.New("text: invalid face index")

	// ErrGlyphOutOfRange is returned when a glyph index is not below the
	// font's glyph count.
	ErrGlyphOutOfRange = errors.New("text: glyph index out of range")

	// ErrSizeOutOfRange is returned for pixel sizes of 0 or above MaxPixelSize.
	ErrSizeOutOfRange = errors.New("text: pixel size out of range")

	// ErrFontNotFound is returned when no installed font matches a name.
	ErrFontNotFound = errors.New("text: system font not found")

	// ErrFontClosed is returned when rendering through a view of a closed
	// or zero FontSource.
	ErrFontClosed = errors.New("text: font source is closed")
)

// FaceIndexError is returned when a face index is outside the file's faces.
type FaceIndexError struct {
	Index    int
	NumFaces int
}

func (e *FaceIndexError) Error() string {
	return fmt.Sprintf("text: face index %d out of range (file has %d faces)", e.Index, e.NumFaces)
}

// Unwrap allows errors.Is(err, ErrInvalidFaceIndex).
func (e *FaceIndexError) Unwrap() error {
	return ErrInvalidFaceIndex
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("text: "+format, args...)
}

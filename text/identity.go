package text

import (
	"strconv"
	"sync/atomic"
)

// FontID identifies a loaded font for the lifetime of the process.
//
// An ID is allocated exactly once, when a FontSource is created, and is
// stored next to the font bytes; it is never derived from the data or from
// addresses. Loading the same file twice yields two IDs. Zero means no font.
type FontID uint64

var lastFontID atomic.Uint64

// nextFontID allocates a fresh, nonzero FontID.
func nextFontID() FontID {
	return FontID(lastFontID.Add(1))
}

// IsValid reports whether id names a loaded font.
func (id FontID) IsValid() bool {
	return id != 0
}

// String returns the decimal form of the ID.
func (id FontID) String() string {
	return "font#" + strconv.FormatUint(uint64(id), 10)
}

package text

import (
	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/norm"
)

// Charmap maps characters to nominal glyphs through the face's cmap table.
//
// It is a lookup, not a shaper: no substitution, positioning or
// contextual forms are applied. The zero Charmap maps everything to NotDef.
type Charmap struct {
	font *font.Font
}

// Map returns the nominal glyph for r, or NotDef if the face lacks it.
func (c Charmap) Map(r rune) GlyphID {
	if c.font == nil {
		return NotDef
	}
	gid, ok := c.font.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return NotDef
	}
	return GlyphID(gid) // #nosec G115 -- checked above
}

// Has reports whether the face maps r to a glyph.
func (c Charmap) Has(r rune) bool {
	return c.Map(r) != NotDef
}

// MapString maps each character of s to its nominal glyph. The string is
// first normalized to NFC so that a base letter followed by a combining
// mark finds the font's precomposed glyph.
func (c Charmap) MapString(s string) []GlyphID {
	s = norm.NFC.String(s)
	gids := make([]GlyphID, 0, len(s))
	for _, r := range s {
		gids = append(gids, c.Map(r))
	}
	return gids
}

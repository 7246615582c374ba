package text

// GlyphID is a glyph index within a font.
type GlyphID uint16

// NotDef is the glyph shown for characters the font does not map.
const NotDef GlyphID = 0

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

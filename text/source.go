package text

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource owns the bytes of one face of a font file together with the
// FontID allocated when it was loaded.
//
// Everything a query needs (the face's table-directory offset, the parsed
// tables, the ID) is derived once, here, and stored. Views handed out by
// View are built from those stored values and never recompute them.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	mu   sync.RWMutex
	face *fontData // nil after Close
}

// fontData is the immutable state shared by a FontSource and its views.
type fontData struct {
	id     FontID
	index  int
	offset uint32
	data   []byte

	outlines *sfnt.Font // glyph outlines and metrics
	cmap     *font.Font // character map
	attrs    Attributes
	color    colorTables
}

// LoadFontFile reads a font file and loads face index from it.
// index is 0 for single-font files; collections (.ttc, .otc) may hold more.
func LoadFontFile(path string, index int, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, index, opts...)
}

// NewFontSource loads face index from font data (TTF, OTF, TTC or OTC).
// The data slice is copied internally and can be reused after this call.
//
// On failure no FontID is consumed and no handle is returned.
func NewFontSource(data []byte, index int, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	loaders, err := opentype.NewLoaders(bytes.NewReader(owned))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if index < 0 || index >= len(loaders) {
		return nil, &FaceIndexError{Index: index, NumFaces: len(loaders)}
	}
	ld := loaders[index]

	cmap, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load face %d: %w", index, err)
	}

	coll, err := sfnt.ParseCollection(owned)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if index >= coll.NumFonts() {
		return nil, &FaceIndexError{Index: index, NumFaces: coll.NumFonts()}
	}
	outlines, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load face %d: %w", index, err)
	}

	offset, err := faceOffset(owned, index)
	if err != nil {
		return nil, err
	}

	face := &fontData{
		index:    index,
		offset:   offset,
		data:     owned,
		outlines: outlines,
		cmap:     cmap,
		attrs:    describe(ld),
	}
	if config.colorTables {
		face.color = loadColorTables(ld, outlines.NumGlyphs(), config.palette)
	}
	// Allocate last so that failed loads never consume an ID.
	face.id = nextFontID()

	s := &FontSource{face: face}
	s.addr = s // Self-reference for copy detection

	slogger().Debug("text: font loaded",
		"id", face.id, "index", index, "family", face.attrs.Family,
		"glyphs", outlines.NumGlyphs(), "color", face.color.String())

	return s, nil
}

// faceOffset returns the table-directory offset of face index: 0 for a
// single font, the index'th entry of the collection header otherwise.
func faceOffset(data []byte, index int) (uint32, error) {
	if len(data) < 4 || string(data[:4]) != "ttcf" {
		return 0, nil
	}
	pos := 12 + 4*index
	if len(data) < pos+4 {
		return 0, fmt.Errorf("text: truncated collection header: %w", ErrInvalidFaceIndex)
	}
	return binary.BigEndian.Uint32(data[pos:]), nil
}

// View returns a read-only view of the font built from the stored offset
// and ID. After Close, View returns the zero FontView.
func (s *FontSource) View() FontView {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return FontView{face: s.face}
}

// ID returns the font's identity, or 0 after Close.
func (s *FontSource) ID() FontID {
	return s.View().ID()
}

// Close releases the font bytes held by the source. Views obtained
// earlier stay usable; new views are zero and render as ErrFontClosed.
// Close is idempotent.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.face = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

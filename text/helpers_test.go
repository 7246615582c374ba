package text

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads face 0 of data and closes it when the test ends.
func loadTestFont(t testing.TB, data []byte, opts ...SourceOption) *FontSource {
	t.Helper()
	s, err := NewFontSource(data, 0, opts...)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// regularView returns a view of Go Regular.
func regularView(t testing.TB) FontView {
	t.Helper()
	return loadTestFont(t, goregular.TTF).View()
}

// writeTempFont writes data to a file in a per-test directory.
func writeTempFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// makeCollection packs single-font files into a TrueType collection,
// rebasing each font's table offsets. It returns the collection and the
// table-directory offset of every face.
func makeCollection(fonts ...[]byte) ([]byte, []uint32) {
	header := 12 + 4*len(fonts)
	offsets := make([]uint32, len(fonts))

	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint16(out[4:], 1) // version 1.0
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, f := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := uint32(len(out))
		offsets[i] = base
		binary.BigEndian.PutUint32(out[12+4*i:], base)

		start := len(out)
		out = append(out, f...)
		numTables := int(binary.BigEndian.Uint16(f[4:6]))
		for n := 0; n < numTables; n++ {
			rec := out[start+12+16*n:]
			binary.BigEndian.PutUint32(rec[8:], binary.BigEndian.Uint32(rec[8:])+base)
		}
	}
	return out, offsets
}

// testCollection is Go Regular followed by Go Mono.
func testCollection() ([]byte, []uint32) {
	return makeCollection(goregular.TTF, gomono.TTF)
}

// countingRasterizer counts calls and delegates to next.
type countingRasterizer struct {
	next  Rasterizer
	calls int
}

func (c *countingRasterizer) Rasterize(view FontView, size uint32, gid GlyphID) (GlyphMask, error) {
	c.calls++
	return c.next.Rasterize(view, size, gid)
}

// funcRasterizer adapts a function to Rasterizer.
type funcRasterizer func(FontView, uint32, GlyphID) (GlyphMask, error)

func (f funcRasterizer) Rasterize(view FontView, size uint32, gid GlyphID) (GlyphMask, error) {
	return f(view, size, gid)
}

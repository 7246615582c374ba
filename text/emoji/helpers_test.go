package emoji

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// makePNG encodes a solid w×h image.
func makePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// tableWriter appends big-endian fields.
type tableWriter struct {
	buf []byte
}

func (w *tableWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *tableWriter) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *tableWriter) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *tableWriter) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}
func (w *tableWriter) len() uint32 { return uint32(len(w.buf)) }

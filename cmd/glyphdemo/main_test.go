package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/glyph/text"
)

func TestParseSubpixel(t *testing.T) {
	tests := []struct {
		in      string
		want    text.SubpixelMode
		wantErr bool
	}{
		{"default", text.SubpixelDefault, false},
		{"", text.SubpixelDefault, false},
		{"symmetric", text.SubpixelSymmetric, false},
		{"Symmetric", 0, true},
		{"lcd", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSubpixel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSubpixel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseSubpixel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "line.png")
	opts := options{text: "Hi", size: 20, subpixel: "symmetric", output: out}
	if err := run(opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf("empty image %v", img.Bounds())
	}
}

func TestRun_RejectsBadFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never.png")
	for _, opts := range []options{
		{text: "x", size: 20, subpixel: "bogus", output: out},
		{text: "x", size: 0, subpixel: "default", output: out},
	} {
		if err := run(opts); err == nil {
			t.Errorf("run(%+v) succeeded", opts)
		}
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("output written despite invalid flags")
	}
}

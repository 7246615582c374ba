package text

import (
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Style is the slant of a face.
type Style int

const (
	// StyleNormal is an upright face.
	StyleNormal Style = iota
	// StyleItalic is an italic or oblique face.
	StyleItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// Common weight values, on the CSS 1-1000 scale.
const (
	WeightNormal float32 = 400
	WeightBold   float32 = 700
)

// Attributes describe a face the way font matching sees it.
type Attributes struct {
	// Family is the typographic family name, e.g. "Go Mono".
	Family string

	Style Style

	// Weight is on the CSS scale: 400 is normal, 700 bold.
	Weight float32

	// Stretch is a width factor: 1 is normal, below 1 condensed.
	Stretch float32
}

// String returns a compact description such as "Go Mono 400 Normal".
func (a Attributes) String() string {
	return fmt.Sprintf("%s %g %s", a.Family, a.Weight, a.Style)
}

// describe reads the attributes from the name, OS/2 and head tables.
func describe(ld *opentype.Loader) Attributes {
	desc, _ := font.Describe(ld, nil)
	attrs := Attributes{
		Family:  desc.Family,
		Style:   StyleNormal,
		Weight:  float32(desc.Aspect.Weight),
		Stretch: float32(desc.Aspect.Stretch),
	}
	if desc.Aspect.Style == font.StyleItalic {
		attrs.Style = StyleItalic
	}
	if attrs.Weight == 0 {
		attrs.Weight = WeightNormal
	}
	if attrs.Stretch == 0 {
		attrs.Stretch = 1
	}
	return attrs
}

package text

import (
	"errors"
	"strings"

	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyph/text/emoji"
)

// colorTables holds the parsed color glyph tables of a face.
// Nil fields mean the table is absent or failed to parse.
type colorTables struct {
	colr    *emoji.COLR
	palette emoji.Palette
	cbdt    *emoji.CBDT
	sbix    *emoji.SBIX
}

var (
	tagCOLR = opentype.MustNewTag("COLR")
	tagCPAL = opentype.MustNewTag("CPAL")
	tagCBDT = opentype.MustNewTag("CBDT")
	tagCBLC = opentype.MustNewTag("CBLC")
	tagSBIX = opentype.MustNewTag("sbix")
)

// loadColorTables reads and parses the color tables of a face. A table
// that fails to parse is logged and skipped: its glyphs then render from
// their outlines.
func loadColorTables(ld *opentype.Loader, numGlyphs, palette int) colorTables {
	var ct colorTables
	log := slogger()

	raw := func(tag opentype.Tag) []byte {
		b, err := ld.RawTable(tag)
		if err != nil {
			return nil
		}
		return b
	}

	if colrData := raw(tagCOLR); colrData != nil {
		colr, err := emoji.ParseCOLR(colrData)
		if err == nil {
			var cpal *emoji.CPAL
			cpal, err = emoji.ParseCPAL(raw(tagCPAL))
			if err == nil {
				ct.colr = colr
				ct.palette = cpal.Palette(palette)
				if ct.palette == nil {
					ct.palette = cpal.Palette(0)
				}
			}
		}
		if err != nil {
			log.Warn("text: ignoring COLR table", "err", err)
		}
	}

	if cbdtData := raw(tagCBDT); cbdtData != nil {
		cbdt, err := emoji.ParseCBDT(cbdtData, raw(tagCBLC))
		if err != nil {
			log.Warn("text: ignoring CBDT table", "err", err)
		} else {
			ct.cbdt = cbdt
		}
	}

	if sbixData := raw(tagSBIX); sbixData != nil {
		sbix, err := emoji.ParseSBIX(sbixData, numGlyphs)
		if err != nil && !errors.Is(err, emoji.ErrNoSBIXTable) {
			log.Warn("text: ignoring sbix table", "err", err)
		} else {
			ct.sbix = sbix
		}
	}

	return ct
}

func (ct *colorTables) empty() bool {
	return ct.colr == nil && ct.cbdt == nil && ct.sbix == nil
}

// String lists the loaded tables, e.g. "COLR+CBDT", or "none".
func (ct *colorTables) String() string {
	var names []string
	if ct.colr != nil {
		names = append(names, "COLR")
	}
	if ct.cbdt != nil {
		names = append(names, "CBDT")
	}
	if ct.sbix != nil {
		names = append(names, "sbix")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// robotomonojp - build tools for the RobotoMonoJP font family
// Copyright (C) 2026  Junya Morioka <mjun@mjunya.com>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"

	"golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
)

// grid gives the allowed advance widths.
type grid struct {
	half, full float64
}

// allowed reports whether a glyph of the given class may have width w.
// Zero width is always allowed, for combining marks.
func (g grid) allowed(k width.Kind, w float64) bool {
	if w == 0 {
		return true
	}
	switch k {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return w == g.full
	case width.EastAsianNarrow, width.EastAsianHalfwidth:
		return w == g.half
	default:
		return w == g.half || w == g.full
	}
}

type violation struct {
	r     rune
	name  string
	kind  width.Kind
	width float64
	msg   string
}

func (v violation) String() string {
	return fmt.Sprintf("U+%04X %s (%s): %s", v.r, v.name, kindName(v.kind), v.msg)
}

type report struct {
	// widths counts the glyphs for each class and advance width.
	widths map[width.Kind]map[float64]int

	violations []violation
}

// checkWidths classifies all encoded glyphs of f and checks their
// advance widths against the grid.
func checkWidths(f *typeface.Font, g grid) *report {
	rep := &report{widths: make(map[width.Kind]map[float64]int)}
	for _, gl := range f.Glyphs() {
		for _, r := range gl.Codepoints() {
			k := width.LookupRune(r).Kind()
			m := rep.widths[k]
			if m == nil {
				m = make(map[float64]int)
				rep.widths[k] = m
			}
			m[gl.Width]++
			if !g.allowed(k, gl.Width) {
				rep.violations = append(rep.violations, violation{
					r:     r,
					name:  gl.Name,
					kind:  k,
					width: gl.Width,
					msg:   fmt.Sprintf("width %g is off the grid", gl.Width),
				})
			}
		}
	}
	slices.SortFunc(rep.violations, func(a, b violation) int { return int(a.r - b.r) })
	return rep
}

// crossCheck parses the font file with an independent sfnt reader and
// compares the code point mapping and the advance widths.
func crossCheck(data []byte, f *typeface.Font) ([]violation, error) {
	ref, err := xsfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	if ref.NumGlyphs() != f.NumGlyphs() {
		return nil, fmt.Errorf("%d glyphs, sfnt reader sees %d", f.NumGlyphs(), ref.NumGlyphs())
	}

	var res []violation
	buf := &xsfnt.Buffer{}
	ppem := fixed.I(int(ref.UnitsPerEm()))
	for _, gl := range f.Glyphs() {
		for _, r := range gl.Codepoints() {
			idx, err := ref.GlyphIndex(buf, r)
			if err != nil || idx == 0 {
				res = append(res, violation{r: r, name: gl.Name, msg: "not mapped by sfnt reader"})
				continue
			}
			adv, err := ref.GlyphAdvance(buf, idx, ppem, font.HintingNone)
			if err != nil {
				return nil, err
			}
			if got := float64(adv) / 64; got != math.Round(gl.Width) {
				res = append(res, violation{r: r, name: gl.Name,
					msg: fmt.Sprintf("sfnt reader sees width %g", got)})
			}
		}
	}
	return res, nil
}

// load reads a font file and returns both the raw data and the parsed
// font.
func load(fname string) ([]byte, *typeface.Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, nil, err
	}
	f, err := ttfio.Read(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return data, f, nil
}

var kindNames = map[width.Kind]string{
	width.Neutral:            "neutral",
	width.EastAsianAmbiguous: "ambiguous",
	width.EastAsianWide:      "wide",
	width.EastAsianNarrow:    "narrow",
	width.EastAsianFullwidth: "fullwidth",
	width.EastAsianHalfwidth: "halfwidth",
}

func kindName(k width.Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return k.String()
}

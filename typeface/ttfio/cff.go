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

package ttfio

import (
	"bytes"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/maxp"

	"github.com/mjunya/robotomonojp/typeface"
)

func (ff *fontWriter) makeCFF() error {
	f := ff.font

	outlines := &cff.Outlines{
		FDSelect: func(glyph.ID) int { return 0 },
	}
	bboxes := make([]funit.Rect16, len(ff.glyphs))
	for i, g := range ff.glyphs {
		cg, err := toCFF(g)
		if err != nil {
			return err
		}
		outlines.Glyphs = append(outlines.Glyphs, cg)
		bboxes[i] = glyphBBox(g)
	}
	ff.setBBoxes(bboxes)
	outlines.Encoding = cff.StandardEncoding(outlines.Glyphs)
	outlines.Private = []*type1.PrivateDict{
		{
			BlueValues: ff.blueValues(),
			BlueScale:  0.039625,
			BlueShift:  7,
			BlueFuzz:   1,
		},
	}

	q := 1 / float64(f.Em)
	fontInfo := &type1.FontInfo{
		FontName:           f.FontName,
		Version:            f.Version,
		Copyright:          f.Copyright,
		FullName:           f.FullName,
		FamilyName:         f.FamilyName,
		Weight:             f.Weight,
		ItalicAngle:        f.ItalicAngle,
		IsFixedPitch:       f.IsFixedPitch || isFixedPitch(ff.glyphs),
		UnderlinePosition:  funit.Float64(f.UnderlinePosition),
		UnderlineThickness: funit.Float64(f.UnderlineThickness),
		FontMatrix:         matrix.Matrix{q, 0, 0, q, 0, 0},
	}
	myCff := &cff.Font{
		FontInfo: fontInfo,
		Outlines: outlines,
	}

	buf := &bytes.Buffer{}
	if err := myCff.Write(buf); err != nil {
		return err
	}
	ff.tables["CFF "] = buf.Bytes()

	ff.tables["maxp"] = (&maxp.Info{NumGlyphs: len(ff.glyphs)}).Encode()
	return nil
}

// toCFF converts a glyph to CFF format.  Quadratic segments are converted
// exactly into cubic ones.
func toCFF(g *typeface.Glyph) (*cff.Glyph, error) {
	res := cff.NewGlyph(g.Name, math.Round(g.Width))
	for _, c := range g.Contours {
		ss := c.Segments()
		if len(ss) == 0 {
			continue
		}
		start := toPt(ss[0].Start)
		res.MoveTo(math.Round(start.x), math.Round(start.y))
		for i, s := range ss {
			p0, p3 := toPt(s.Start), toPt(s.End)
			switch segmentKind(s) {
			case segLine:
				if i == len(ss)-1 {
					// the path is closed implicitly
					continue
				}
				res.LineTo(math.Round(p3.x), math.Round(p3.y))
			case segQuad:
				c1, c2 := quadToCubic(p0, toPt(s.Ctrl[0]), p3)
				curveTo(res, c1, c2, p3)
			case segCubic:
				curveTo(res, toPt(s.Ctrl[0]), toPt(s.Ctrl[1]), p3)
			default:
				return nil, &InvalidFontError{
					SubSystem: "ttfio",
					Reason:    "glyph " + g.Name + ": malformed outline",
				}
			}
		}
	}
	return res, nil
}

func curveTo(g *cff.Glyph, c1, c2, p3 pt) {
	g.CurveTo(
		math.Round(c1.x), math.Round(c1.y),
		math.Round(c2.x), math.Round(c2.y),
		math.Round(p3.x), math.Round(p3.y))
}

// blueValues derives the alignment zones of the private dictionary from
// the bottoms and tops of the capital letters A-Z.  "Q" is excluded from
// the bottom zone because of its tail.
func (ff *fontWriter) blueValues() []funit.Int16 {
	var bottom, top funit.Rect16
	var hasBottom, hasTop bool
	for c := 'A'; c <= 'Z'; c++ {
		gid, ok := ff.codes[c]
		if !ok {
			continue
		}
		b := ff.bboxes[gid]
		if b.IsZero() {
			continue
		}
		if !hasTop {
			top.LLy, top.URy = b.URy, b.URy
			hasTop = true
		}
		top.LLy = min(top.LLy, b.URy)
		top.URy = max(top.URy, b.URy)
		if c == 'Q' {
			continue
		}
		if !hasBottom {
			bottom.LLy, bottom.URy = b.LLy, b.LLy
			hasBottom = true
		}
		bottom.LLy = min(bottom.LLy, b.LLy)
		bottom.URy = max(bottom.URy, b.LLy)
	}
	if !hasTop || !hasBottom {
		return nil
	}
	return []funit.Int16{bottom.LLy, bottom.URy, top.LLy, top.URy}
}

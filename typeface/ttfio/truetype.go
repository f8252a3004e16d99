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
	"fmt"
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/maxp"

	"github.com/mjunya/robotomonojp/typeface"
)

func (ff *fontWriter) makeGlyf() error {
	gg := make(glyf.Glyphs, len(ff.glyphs))
	bboxes := make([]funit.Rect16, len(ff.glyphs))
	ttf := &maxp.TTFInfo{
		MaxZones: 1,
	}
	for i, g := range ff.glyphs {
		outline, err := toGlyf(g)
		if err != nil {
			return err
		}
		if outline == nil {
			continue
		}
		var numPoints int
		for _, c := range outline.Contours {
			numPoints += len(c)
		}
		ttf.MaxPoints = max(ttf.MaxPoints, uint16(min(numPoints, 0xFFFF)))
		ttf.MaxContours = max(ttf.MaxContours, uint16(min(len(outline.Contours), 0xFFFF)))
		ttf.MaxSizeOfInstructions = max(ttf.MaxSizeOfInstructions, uint16(min(len(outline.Instructions), 0xFFFF)))

		tg := outline.AsGlyph()
		gg[i] = &tg
		bboxes[i] = tg.Rect16
	}

	enc := gg.Encode()
	ff.tables["glyf"] = enc.GlyfData
	ff.tables["loca"] = enc.LocaData
	ff.locaFormat = enc.LocaFormat
	ff.setBBoxes(bboxes)

	ff.tables["maxp"] = (&maxp.Info{NumGlyphs: len(gg), TTF: ttf}).Encode()
	return nil
}

type glyfPoint struct {
	pt
	onCurve bool
}

// toGlyf converts a glyph to a simple TrueType glyph.  Cubic segments are
// approximated by quadratic splines.  Coordinates are rounded to the
// integer grid.
func toGlyf(g *typeface.Glyph) (*glyf.SimpleUnpacked, error) {
	if len(g.Contours) == 0 {
		return nil, nil
	}

	res := &glyf.SimpleUnpacked{Instructions: g.Instructions}
	for _, c := range g.Contours {
		var pts []glyfPoint
		for _, s := range c.Segments() {
			pts = append(pts, glyfPoint{toPt(s.Start), true})
			switch segmentKind(s) {
			case segLine:
				// nothing to add
			case segQuad:
				pts = append(pts, glyfPoint{toPt(s.Ctrl[0]), false})
			case segCubic:
				qq := cubicToQuads(toPt(s.Start), toPt(s.Ctrl[0]), toPt(s.Ctrl[1]), toPt(s.End), quadTolerance)
				for i, q := range qq {
					pts = append(pts, glyfPoint{q, i%2 == 1})
				}
			default:
				return nil, &InvalidFontError{
					SubSystem: "ttfio",
					Reason:    fmt.Sprintf("glyph %q: malformed outline", g.Name),
				}
			}
		}
		if cc := roundContour(pts); len(cc) > 0 {
			res.Contours = append(res.Contours, cc)
		}
	}
	if len(res.Contours) == 0 {
		return nil, nil
	}
	return res, nil
}

// roundContour rounds the points of a contour to the integer grid and
// removes on-curve points which lie exactly half way between their two
// off-curve neighbours, since these are implied in the TrueType format.
func roundContour(pts []glyfPoint) glyf.Contour {
	n := len(pts)
	rounded := make(glyf.Contour, n)
	for i, p := range pts {
		rounded[i] = glyf.Point{
			X:       clamp16(p.x),
			Y:       clamp16(p.y),
			OnCurve: p.onCurve,
		}
	}
	if n < 3 {
		return rounded
	}

	res := make(glyf.Contour, 0, n)
	for i, p := range rounded {
		prev := rounded[(i+n-1)%n]
		next := rounded[(i+1)%n]
		if p.OnCurve && !prev.OnCurve && !next.OnCurve &&
			2*int(p.X) == int(prev.X)+int(next.X) &&
			2*int(p.Y) == int(prev.Y)+int(next.Y) {
			continue
		}
		res = append(res, p)
	}
	return res
}

type segKind int

const (
	segInvalid segKind = iota
	segLine
	segQuad
	segCubic
)

func segmentKind(s typeface.Segment) segKind {
	switch len(s.Ctrl) {
	case 0:
		return segLine
	case 1:
		if s.Ctrl[0].Kind == typeface.QuadControl {
			return segQuad
		}
	case 2:
		if s.Ctrl[0].Kind == typeface.CubicControl && s.Ctrl[1].Kind == typeface.CubicControl {
			return segCubic
		}
	}
	return segInvalid
}

// glyphBBox returns the bounding box of the control polygon of a glyph,
// rounded outwards to integers.  Empty glyphs have the zero box.
func glyphBBox(g *typeface.Glyph) funit.Rect16 {
	if len(g.Contours) == 0 {
		return funit.Rect16{}
	}
	b := g.BBox()
	return funit.Rect16{
		LLx: clamp16(math.Floor(b.LLx)),
		LLy: clamp16(math.Floor(b.LLy)),
		URx: clamp16(math.Ceil(b.URx)),
		URy: clamp16(math.Ceil(b.URy)),
	}
}

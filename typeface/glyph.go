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

package typeface

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// PointKind distinguishes on-curve points from the two kinds of control
// points.
type PointKind uint8

// These are the possible kinds of outline points.
const (
	OnCurve PointKind = iota

	// QuadControl is the off-curve point of a quadratic Bézier segment.
	// As in TrueType outlines, two consecutive quadratic control points
	// imply an on-curve point half way between them.
	QuadControl

	// CubicControl is one of the two off-curve points of a cubic Bézier
	// segment.  Cubic control points always come in pairs.
	CubicControl
)

// A Point is a point of a glyph outline, in font design units.
type Point struct {
	X, Y float64
	Kind PointKind
}

// A Contour is a closed part of a glyph outline.
// The contour implicitly returns from the last point to the first.
type Contour []Point

// Unencoded is the code point of glyphs which are reachable only by name.
const Unencoded rune = -1

// Glyph is a single glyph of a Font.
type Glyph struct {
	Name string

	// Unicode is the primary code point of the glyph, or Unencoded.
	Unicode rune

	// AltUni lists additional code points mapped to the glyph.
	AltUni []rune

	// Width is the advance width in font design units.
	Width float64

	Contours []Contour

	// Instructions holds TrueType hinting instructions.  The build
	// discards these, since outline edits invalidate them.
	Instructions []byte

	font *Font
}

// NewGlyph allocates a new, empty glyph.
func NewGlyph(name string, r rune, width float64) *Glyph {
	return &Glyph{
		Name:    name,
		Unicode: r,
		Width:   width,
	}
}

// IsWorthOutputting reports whether the glyph carries any information.
// Empty glyph slots without outline and width are dropped from the output,
// with the exception of ".notdef".
func (g *Glyph) IsWorthOutputting() bool {
	return len(g.Contours) > 0 || g.Width != 0 || g.Name == ".notdef"
}

// IsEncoded reports whether the glyph has a primary code point.
func (g *Glyph) IsEncoded() bool {
	return g.Unicode >= 0
}

// Codepoints returns the primary and all alternate code points of g.
func (g *Glyph) Codepoints() []rune {
	var res []rune
	if g.Unicode >= 0 {
		res = append(res, g.Unicode)
	}
	res = append(res, g.AltUni...)
	return res
}

// Font returns the font the glyph belongs to, or nil for a detached glyph.
func (g *Glyph) Font() *Font {
	return g.font
}

// Clone returns a deep copy of g, not attached to any font.
func (g *Glyph) Clone() *Glyph {
	res := &Glyph{
		Name:         g.Name,
		Unicode:      g.Unicode,
		AltUni:       slices.Clone(g.AltUni),
		Width:        g.Width,
		Instructions: slices.Clone(g.Instructions),
	}
	if g.Contours != nil {
		res.Contours = make([]Contour, len(g.Contours))
		for i, c := range g.Contours {
			res.Contours[i] = slices.Clone(c)
		}
	}
	return res
}

// Transform applies the affine transformation m to all outline points.
// The advance width is not changed.
func (g *Glyph) Transform(m matrix.Matrix) {
	for _, c := range g.Contours {
		for i := range c {
			x, y := c[i].X, c[i].Y
			c[i].X = m[0]*x + m[2]*y + m[4]
			c[i].Y = m[1]*x + m[3]*y + m[5]
		}
	}
}

// Round rounds all outline coordinates and the advance width to integers.
func (g *Glyph) Round() {
	for _, c := range g.Contours {
		for i := range c {
			c[i].X = math.Round(c[i].X)
			c[i].Y = math.Round(c[i].Y)
		}
	}
	g.Width = math.Round(g.Width)
}

// BBox returns the bounding box of the outline control polygon.
// For an empty glyph, the zero rectangle is returned.
func (g *Glyph) BBox() rect.Rect {
	first := true
	var res rect.Rect
	for _, c := range g.Contours {
		for _, p := range c {
			if first {
				res = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			res.LLx = min(res.LLx, p.X)
			res.LLy = min(res.LLy, p.Y)
			res.URx = max(res.URx, p.X)
			res.URy = max(res.URy, p.Y)
		}
	}
	return res
}

// Skew returns the matrix which slants outlines by the given angle, in
// degrees.  Positive angles lean the glyph to the right.
func Skew(angle float64) matrix.Matrix {
	t := math.Tan(angle * math.Pi / 180)
	return matrix.Matrix{1, 0, t, 1, 0, 0}
}

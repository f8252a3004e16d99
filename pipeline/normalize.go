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

package pipeline

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/unirange"
)

// NormalizeOptions describes the target metrics for [Normalize].
type NormalizeOptions struct {
	Ascent  int
	Descent int // positive
	Em      int

	// ScaleBias is added to the ratio between the target ascent and the
	// ascent of the source font to obtain the outline scale factor.
	ScaleBias float64

	// HalfWidth and FullWidth are the advance widths of the two width
	// buckets.  The defaults are Em/2 and Em.
	HalfWidth float64
	FullWidth float64

	// HalfWidthSet and FullWidthSet select the glyphs which are forced
	// into the width buckets.  The defaults are [unirange.HalfWidthKana]
	// and [unirange.FullWidth].
	HalfWidthSet *unirange.Set
	FullWidthSet *unirange.Set
}

func (opt *NormalizeOptions) halfWidth() float64 {
	if opt.HalfWidth > 0 {
		return opt.HalfWidth
	}
	return float64(opt.Em / 2)
}

func (opt *NormalizeOptions) fullWidth() float64 {
	if opt.FullWidth > 0 {
		return opt.FullWidth
	}
	return float64(opt.Em)
}

// Normalize brings a source font to the target metrics, in place.
//
// The metrics of f are replaced by the target values and all outlines are
// scaled by Ascent/f.Ascent + ScaleBias, with advance widths rounded to
// integers.  Glyphs which are not worth outputting are removed.  Finally,
// the advance widths of glyphs in the half-width and full-width sets are
// set to the respective bucket width; all other glyphs keep their scaled
// width.
func Normalize(f *typeface.Font, opt *NormalizeOptions) error {
	if opt.Em <= 0 {
		return errInvalidEm
	}
	if f.Ascent <= 0 {
		return errNoAscent
	}
	scale := float64(opt.Ascent)/float64(f.Ascent) + opt.ScaleBias

	f.Ascent = opt.Ascent
	f.Descent = opt.Descent
	f.Em = opt.Em

	f.Clear(notWorthOutputting)

	m := matrix.Scale(scale, scale)
	for _, g := range f.Glyphs() {
		g.Transform(m)
		g.Width = math.Round(g.Width * scale)
	}
	CoerceWidths(f, opt)

	return f.Flatten()
}

// CoerceWidths sets the advance width of every glyph in the half-width
// and full-width sets to the bucket width.  Outlines are not changed.
func CoerceWidths(f *typeface.Font, opt *NormalizeOptions) {
	half := opt.HalfWidthSet
	if half == nil {
		half = unirange.HalfWidthKana
	}
	full := opt.FullWidthSet
	if full == nil {
		full = unirange.FullWidth
	}
	for _, g := range f.Glyphs() {
		switch {
		case !g.IsEncoded():
		case half.Contains(g.Unicode):
			g.Width = opt.halfWidth()
		case full.Contains(g.Unicode):
			g.Width = opt.fullWidth()
		}
	}
}

func notWorthOutputting(g *typeface.Glyph) bool {
	return !g.IsWorthOutputting()
}

// SetEm changes the em size of f to em, scaling all outlines and widths,
// and sets the ascent and descent to the given values.  Advance widths
// are rounded to integers.
func SetEm(f *typeface.Font, ascent, descent, em int) error {
	err := f.Flatten()
	if err != nil {
		return err
	}
	err = f.ScaleEm(em)
	if err != nil {
		return err
	}
	f.Ascent = ascent
	f.Descent = descent
	for _, g := range f.Glyphs() {
		g.Width = math.Round(g.Width)
	}
	return nil
}

// ResizeGlyphWidth squeezes or stretches g horizontally so that its
// advance width becomes width.
func ResizeGlyphWidth(g *typeface.Glyph, width float64) {
	if g.Width != 0 && g.Width != width {
		g.Transform(matrix.Scale(width/g.Width, 1))
	}
	g.Width = width
}

// ResizeAllGlyphWidth gives every glyph of f the advance width width.
// Glyphs are scaled uniformly, keeping their aspect ratio.  Glyphs with
// zero width only have their width changed.
func ResizeAllGlyphWidth(f *typeface.Font, width float64) {
	for _, g := range f.Glyphs() {
		if g.Width == width {
			continue
		}
		if g.Width != 0 {
			s := width / g.Width
			g.Transform(matrix.Scale(s, s))
		}
		g.Width = width
	}
}

// ResizeAllScale shrinks (scale < 1) or grows the full-width and
// half-width glyphs of f, keeping them centred in their cell.  Full-width
// glyphs are those with advance width Em, half-width glyphs have advance
// width Em/2.  Afterwards, every glyph is moved by (dx, dy).
func ResizeAllScale(f *typeface.Font, scale, dx, dy float64) {
	em := float64(f.Em)
	half := float64(f.Em / 2)
	toCentre := em * (1 - scale) / 2
	full := matrix.Matrix{scale, 0, 0, scale, toCentre, 0}
	halfM := matrix.Matrix{scale, 0, 0, scale, toCentre / 2, 0}

	for _, g := range f.Glyphs() {
		switch g.Width {
		case em:
			g.Transform(full)
		case half:
			g.Transform(halfM)
		}
		if dx != 0 || dy != 0 {
			g.Transform(matrix.Translate(dx, dy))
		}
	}
}

// FixAllGlyphPoints rounds the outlines of all glyphs to integer
// coordinates and adds on-curve points at the extrema of curves.
func FixAllGlyphPoints(f *typeface.Font, round, addExtrema bool) {
	if round {
		f.Round(typeface.All)
	}
	if addExtrema {
		f.AddExtrema(typeface.All)
	}
}

var (
	errInvalidEm = errors.New("pipeline: em size must be positive")
	errNoAscent  = errors.New("pipeline: source font has no ascent")
)

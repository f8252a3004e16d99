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
	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/unirange"
)

// FinishOptions controls [Finish].
type FinishOptions struct {
	// AddExtrema inserts on-curve points at the horizontal and vertical
	// extrema of all curves, as the last step.
	AddExtrema bool
}

// Finish cleans up the outlines of a merged font.
//
// Degenerate and duplicate contours are removed, coordinates are rounded
// and stale hinting instructions are dropped.  For italic styles the
// glyphs selected by [ItalicGlyphs] are slanted by the italic angle of f
// and rounded again.
func Finish(f *typeface.Font, styleName string, opt FinishOptions) error {
	err := f.Flatten()
	if err != nil {
		return err
	}

	f.RemoveOverlap(typeface.All)
	f.Round(typeface.All)
	f.ClearInstructions(typeface.All)

	if style.IsItalic(styleName) && f.ItalicAngle != 0 {
		f.Transform(ItalicGlyphs(f), typeface.Skew(-f.ItalicAngle))
		f.Round(typeface.All)
	}

	if opt.AddExtrema {
		f.AddExtrema(typeface.All)
	}
	return nil
}

// ItalicGlyphs selects the glyphs of f which are slanted in italic
// styles: the code points in [unirange.Italic], and the unencoded glyphs
// from ".notdef" to "uni301F.half" and from "acute.half" to "zero.alt01"
// in glyph order.
func ItalicGlyphs(f *typeface.Font) typeface.Selector {
	named := typeface.Any(
		f.NameRange(".notdef", "uni301F.half"),
		f.NameRange("acute.half", "zero.alt01"),
	)
	return typeface.Any(
		typeface.InSet(unirange.Italic),
		func(g *typeface.Glyph) bool {
			return !g.IsEncoded() && named(g)
		},
	)
}

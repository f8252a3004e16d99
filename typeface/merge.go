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
	"seehuhn.de/go/geom/matrix"
)

// Merge copies all glyphs and layout lookups of src into f.
//
// If the two fonts use different em sizes, the copied outlines and widths
// are scaled to the em size of f.  A copied glyph replaces any glyph of f
// which uses one of its code points, so that for code points present in
// both fonts the glyph from src wins.  The only exception is ".notdef",
// which is copied only if f has none.  The glyphs of src are not modified.
//
// Merge returns the number of copied glyphs.
func (f *Font) Merge(src *Font) (int, error) {
	var m matrix.Matrix
	scale := 1.0
	if src.Em > 0 && f.Em > 0 && src.Em != f.Em {
		scale = float64(f.Em) / float64(src.Em)
		m = matrix.Scale(scale, scale)
	}

	n := 0
	for _, g := range src.Glyphs() {
		if g.Name == ".notdef" && f.byName[".notdef"] != nil {
			// the base font keeps its own .notdef
			continue
		}
		c := g.Clone()
		if scale != 1 {
			c.Transform(m)
			c.Width *= scale
		}
		err := f.ReplaceGlyph(c)
		if err != nil {
			return n, err
		}
		n++
	}

	for _, l := range src.GSUB {
		f.GSUB = append(f.GSUB, l.Clone())
	}
	for _, l := range src.GPOS {
		f.GPOS = append(f.GPOS, l.Clone())
	}
	return n, nil
}

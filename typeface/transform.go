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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Transform applies m to the outlines of all selected glyphs.
// Advance widths are not changed.
func (f *Font) Transform(sel Selector, m matrix.Matrix) {
	for _, g := range f.Select(sel) {
		g.Transform(m)
	}
}

// Round rounds outlines and advance widths of the selected glyphs to the
// integer grid.
func (f *Font) Round(sel Selector) {
	for _, g := range f.Select(sel) {
		g.Round()
	}
}

// ClearInstructions removes the TrueType instructions of the selected
// glyphs.
func (f *Font) ClearInstructions(sel Selector) {
	for _, g := range f.Select(sel) {
		g.Instructions = nil
	}
}

// ScaleEm changes the size of the em square.
//
// All outlines, advance widths and vertical metrics are scaled by
// em/f.Em, so that the design keeps its relative proportions.
func (f *Font) ScaleEm(em int) error {
	if em <= 0 {
		return errInvalidEm
	}
	if f.Em == em {
		return nil
	}
	if f.Em <= 0 {
		f.Em = em
		return nil
	}

	s := float64(em) / float64(f.Em)
	m := matrix.Scale(s, s)
	for _, g := range f.Glyphs() {
		g.Transform(m)
		g.Width *= s
	}

	scale := func(x int) int {
		return int(math.Round(float64(x) * s))
	}
	f.Ascent = scale(f.Ascent)
	f.Descent = scale(f.Descent)
	f.UnderlinePosition = scale(f.UnderlinePosition)
	f.UnderlineThickness = scale(f.UnderlineThickness)
	f.CapHeight = scale(f.CapHeight)
	f.XHeight = scale(f.XHeight)
	f.Em = em
	return nil
}

var errInvalidEm = errors.New("typeface: em size must be positive")

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

package iconpatch

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
)

// SymbolPatcher copies icon glyphs from symbol fonts into the target font.
type SymbolPatcher struct {
	// Sources are searched in order; the first font providing a code
	// point wins.
	Sources []*typeface.Font

	// Sets restricts the code points which are copied.
	// If Sets is empty, [AllSets] is used.
	Sets []*IconSet

	// CellWidth is the advance width of the copied icons.
	// If CellWidth is zero, half the em size of the target font is used.
	CellWidth float64

	// Overwrite allows icons to replace glyphs which already exist in
	// the target font.
	Overwrite bool

	// OnSet, if not nil, is called after each icon set was processed.
	OnSet func(set string, added int)
}

// Result gives the number of glyphs added per icon set.
type Result map[string]int

// NewSymbolPatcher loads the given symbol font files.
func NewSymbolPatcher(fnames ...string) (*SymbolPatcher, error) {
	p := &SymbolPatcher{}
	for _, fname := range fnames {
		f, err := ttfio.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		p.Sources = append(p.Sources, f)
	}
	return p, nil
}

// Patch implements the [Patcher] interface.
func (p *SymbolPatcher) Patch(f *typeface.Font) error {
	_, err := p.Apply(f)
	return err
}

// Apply copies the icons into f and reports the number of glyphs added
// for each icon set.
func (p *SymbolPatcher) Apply(f *typeface.Font) (Result, error) {
	sets := p.Sets
	if len(sets) == 0 {
		sets = AllSets
	}
	cell := p.cell(f)

	res := make(Result, len(sets))
	for _, set := range sets {
		n := 0
		seen := make(map[rune]bool)
		for _, src := range p.Sources {
			for _, g := range src.Select(typeface.InSet(set.Codes)) {
				if seen[g.Unicode] {
					continue
				}
				seen[g.Unicode] = true

				if f.HasCodepoint(g.Unicode) && !p.Overwrite {
					continue
				}
				icon := cell.fit(g, set.Stretch)
				err := f.ReplaceGlyph(icon)
				if err != nil {
					return res, fmt.Errorf("icon U+%04X: %w", g.Unicode, err)
				}
				n++
			}
		}
		res[set.Name()] = n
		if p.OnSet != nil {
			p.OnSet(set.Name(), n)
		}
	}

	return res, f.Flatten()
}

// A cell is the box available for one icon, in the units of the target
// font.
type cell struct {
	width  float64
	bottom float64
	top    float64
}

func (p *SymbolPatcher) cell(f *typeface.Font) cell {
	w := p.CellWidth
	if w <= 0 {
		w = float64(f.Em / 2)
	}
	return cell{
		width:  w,
		bottom: -float64(f.Descent),
		top:    float64(f.Ascent),
	}
}

// fit returns a copy of g, scaled and centred inside the cell.
func (c cell) fit(g *typeface.Glyph, stretch bool) *typeface.Glyph {
	icon := g.Clone()
	icon.AltUni = nil
	icon.Instructions = nil
	icon.Width = c.width
	if len(icon.Contours) == 0 {
		return icon
	}

	bbox := icon.BBox()
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy
	cellH := c.top - c.bottom

	var sx, sy float64
	switch {
	case stretch && w > 0 && h > 0:
		sx = c.width / w
		sy = cellH / h
	case w <= 0 && h <= 0:
		sx, sy = 1, 1
	case w <= 0:
		sx = cellH / h
		sy = sx
	case h <= 0:
		sx = c.width / w
		sy = sx
	default:
		sx = min(c.width/w, cellH/h)
		sy = sx
	}

	dx := (c.width-w*sx)/2 - bbox.LLx*sx
	dy := c.bottom + (cellH-h*sy)/2 - bbox.LLy*sy
	icon.Transform(matrix.Matrix{sx, 0, 0, sy, dx, dy})
	return icon
}

var _ Patcher = (*SymbolPatcher)(nil)

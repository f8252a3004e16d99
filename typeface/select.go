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
	"slices"
	"strings"

	"github.com/mjunya/robotomonojp/unirange"
)

// A Selector picks glyphs from a font.
type Selector func(g *Glyph) bool

// Select returns the glyphs matched by sel, in glyph order.
func (f *Font) Select(sel Selector) []*Glyph {
	var res []*Glyph
	for _, g := range f.glyphs {
		if g.font == f && sel(g) {
			res = append(res, g)
		}
	}
	return res
}

// All selects every glyph.
func All(*Glyph) bool {
	return true
}

// Codepoints selects glyphs whose primary code point is one of rr.
func Codepoints(rr ...rune) Selector {
	return func(g *Glyph) bool {
		return g.Unicode >= 0 && slices.Contains(rr, g.Unicode)
	}
}

// Range selects glyphs with a primary code point between lo and hi,
// both inclusive.
func Range(lo, hi rune) Selector {
	return func(g *Glyph) bool {
		return g.Unicode >= 0 && g.Unicode >= lo && g.Unicode <= hi
	}
}

// InSet selects glyphs whose primary code point belongs to s.
func InSet(s *unirange.Set) Selector {
	return func(g *Glyph) bool {
		return s.Contains(g.Unicode)
	}
}

// Named selects glyphs by name.
func Named(names ...string) Selector {
	return func(g *Glyph) bool {
		return slices.Contains(names, g.Name)
	}
}

// UnencodedSuffix selects unencoded glyphs whose name ends in suffix.
func UnencodedSuffix(suffix string) Selector {
	return func(g *Glyph) bool {
		return g.Unicode < 0 && strings.HasSuffix(g.Name, suffix)
	}
}

// Any selects the glyphs matched by at least one of the given selectors.
func Any(sels ...Selector) Selector {
	return func(g *Glyph) bool {
		for _, sel := range sels {
			if sel(g) {
				return true
			}
		}
		return false
	}
}

// Not inverts a selector.
func Not(sel Selector) Selector {
	return func(g *Glyph) bool {
		return !sel(g)
	}
}

// NameRange selects the glyphs which, in the current glyph order, lie
// between the glyphs named first and last, both inclusive.  If either
// glyph does not exist, nothing is selected.
//
// The range is evaluated when NameRange is called; later changes to the
// glyph order do not affect the returned selector.
func (f *Font) NameRange(first, last string) Selector {
	members := make(map[*Glyph]bool)
	gg := f.Glyphs()
	start := slices.IndexFunc(gg, func(g *Glyph) bool { return g.Name == first })
	end := slices.IndexFunc(gg, func(g *Glyph) bool { return g.Name == last })
	if start >= 0 && end >= start {
		for _, g := range gg[start : end+1] {
			members[g] = true
		}
	}
	return func(g *Glyph) bool {
		return members[g]
	}
}
